package summarizer

import (
	"scribe/internal/logger"
)

type implProvider struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// New creates a Provider that calls the Gemini API, rotating through the
// supplied API keys on quota errors.
func New(apiKeys []string, model string, log logger.Logger) Provider {
	return &implProvider{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}
