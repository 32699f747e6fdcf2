package pipeline

import (
	"scribe/internal/logger"
	"scribe/internal/models"
	"scribe/internal/summarizer"
	"scribe/internal/transcriber"
)

type implService struct {
	transcriber transcriber.Provider
	summarizer  summarizer.Provider
	logger      logger.Logger
	exists      models.ExistsFunc
}

// New creates a Service wired to the given capability providers.
func New(t transcriber.Provider, s summarizer.Provider, log logger.Logger) Service {
	return &implService{
		transcriber: t,
		summarizer:  s,
		logger:      log,
		exists:      models.FileExists,
	}
}
