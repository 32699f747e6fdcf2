package transcriber

import (
	"context"

	"scribe/internal/models"
	"scribe/internal/result"
)

// Provider converts an audio file into a Transcription. Implementations
// must report every failure through the result envelope and never panic
// past this boundary.
type Provider interface {
	Transcribe(ctx context.Context, audioFilePath, model string) result.Result[models.Transcription]
}
