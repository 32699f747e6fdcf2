package summarizer

import (
	"context"

	"scribe/internal/models"
	"scribe/internal/result"
)

// Provider turns transcript text into a Summary. Implementations must
// report every failure, including missing credentials, through the
// result envelope and never panic past this boundary.
type Provider interface {
	Summarize(ctx context.Context, text string) result.Result[models.Summary]
}
