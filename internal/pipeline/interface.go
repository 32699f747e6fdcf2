package pipeline

import (
	"context"

	"scribe/internal/models"
	"scribe/internal/result"
)

// Service orchestrates transcription and optional summarization. Every
// operation validates its command before touching a capability and
// reports its outcome through the result envelope.
type Service interface {
	ProcessAudioFile(ctx context.Context, cmd models.ProcessAudioFileCommand) result.Result[models.ProcessOutcome]
	TranscribeAudio(ctx context.Context, cmd models.TranscribeAudioCommand) result.Result[models.Transcription]
	GenerateSummary(ctx context.Context, cmd models.GenerateSummaryCommand) result.Result[models.Summary]
}
