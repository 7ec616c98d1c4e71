package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/domain/entities"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Question source kinds.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string `mapstructure:"env"`  // current application environment (local, dev, prod etc)
	TelegramAPIToken string `mapstructure:"-"`    // Telegram API token loaded from environment
	Quiz             Quiz   `mapstructure:"quiz"` // quiz content configuration section
	DB               DB     `mapstructure:"database"`
}

// Quiz configures where chapter questions come from and which chapters exist.
type Quiz struct {
	Source      string             `mapstructure:"source"`       // question source: csv or postgres
	ChaptersDir string             `mapstructure:"chapters_dir"` // directory with per-chapter CSV files
	Chapters    []entities.Chapter `mapstructure:"chapters"`     // chapter catalog shown in the menu
}

// DB contains database-related configuration parameters. Only consulted when
// the postgres question source is selected.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("quiz.source", SourceCSV)
	v.SetDefault("quiz.chapters_dir", "assets/chapters")
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_conn_lifetime", "30s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("quiz.source", "QUIZ_SOURCE")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if cfg.Quiz.Source != SourceCSV && cfg.Quiz.Source != SourcePostgres {
		return nil, fmt.Errorf("unknown quiz source %q", cfg.Quiz.Source)
	}

	// Fall back to the built-in chapter catalog when none is configured.
	if len(cfg.Quiz.Chapters) == 0 {
		cfg.Quiz.Chapters = defaultChapters()
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.DB.URL = v.GetString("database_url")
	if cfg.Quiz.Source == SourcePostgres && cfg.DB.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	return &cfg, nil
}

// defaultChapters is the CFA ESG curriculum catalog used when the config
// file does not override it.
func defaultChapters() []entities.Chapter {
	return []entities.Chapter{
		{ID: "chapter1", Title: "Introduction to ESG Investing", File: "chapter1.csv"},
		{ID: "chapter2", Title: "The ESG Market", File: "chapter2.csv"},
		{ID: "chapter3", Title: "Environmental Factors", File: "chapter3.csv"},
		{ID: "chapter4", Title: "Social Factors", File: "chapter4.csv"},
		{ID: "chapter5", Title: "Governance Factors", File: "chapter5.csv"},
		{ID: "chapter6", Title: "Engagement and Stewardship", File: "chapter6.csv"},
		{ID: "chapter7", Title: "ESG Analysis, Valuation, and Integration", File: "chapter7.csv"},
		{ID: "chapter8", Title: "Integrated Portfolio Construction and Management", File: "chapter8.csv"},
		{ID: "chapter9", Title: "Investment Mandates, Portfolio Analytics, and Client Reporting", File: "chapter9.csv"},
	}
}
