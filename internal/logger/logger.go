// Package logger builds the application logger.
package logger

import (
	"go.uber.org/zap"

	"github.com/asifr/shikkhok/internal/config"
)

// New returns a zap logger matching the configured environment. Production
// gets JSON output, everything else gets the human-readable console encoder.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
