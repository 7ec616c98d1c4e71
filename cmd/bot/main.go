package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/config"
	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/delivery/telegram"
	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/infra/postgres"
	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/logger"
	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/repository"
	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/service"
	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/storage"
)

func main() {
	// Local development keeps secrets in a .env file; in other
	// environments the variables come from the process environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zlog.Fatal("telegram auth failed", zap.Error(err))
	}
	zlog.Info("authorized", zap.String("account", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Start the quiz bot",
		},
		{
			Command:     "chapters",
			Description: "Choose a chapter",
		},
		{
			Command:     "help",
			Description: "How the quiz works",
		},
	}
	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zlog.Warn("failed to set bot commands", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var chapterRepo service.ChapterRepository
	switch cfg.Quiz.Source {
	case config.SourcePostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			zlog.Fatal("database dsn missing", zap.Error(err))
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			zlog.Fatal("postgres connection failed", zap.Error(err))
		}
		defer pool.Close()

		chapterRepo = repository.NewPostgresChapterRepository(pool, cfg.Quiz.Chapters)
	default:
		chapterRepo = repository.NewCSVChapterRepository(cfg.Quiz.ChaptersDir, cfg.Quiz.Chapters)
	}

	sessions := storage.NewSessionStorage()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	quizService := service.NewQuizService(chapterRepo, sessions, rng)

	handler := telegram.NewHandler(bot, zlog, quizService)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zlog.Fatal("bot stopped", zap.Error(err))
	}

	zlog.Info("shutdown signal received")
}
