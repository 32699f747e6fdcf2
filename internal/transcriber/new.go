package transcriber

import (
	"scribe/internal/config"
	"scribe/internal/logger"
	"scribe/pkg/executor"
)

type implProvider struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Provider backed by a local whisper.cpp binary.
func New(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Provider {
	return &implProvider{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
