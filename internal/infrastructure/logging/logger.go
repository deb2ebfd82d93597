package logging

import (
	"io"

	"github.com/casellese/catalog-backend/internal/domain/ports"
	"github.com/casellese/catalog-backend/internal/infrastructure/config"
)

// New escolhe o adapter conforme LOG_FORMAT
func New(cfg config.LoggingConfig) ports.Logger {
	if cfg.Format == "console" {
		return NewConsoleLogger(cfg.Level)
	}
	return NewSlogLogger(cfg.Level)
}

// NewNop descarta tudo
func NewNop() ports.Logger {
	return NewSlogLoggerWithWriter(io.Discard, "error")
}
