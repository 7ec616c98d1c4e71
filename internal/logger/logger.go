package logger

import (
	"go.uber.org/zap"

	"github.com/fynhav/CFA-ESG-Quiz-App-v2/internal/config"
)

// New builds the application logger for the configured environment.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
