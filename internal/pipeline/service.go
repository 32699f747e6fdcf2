package pipeline

import (
	"context"
	"fmt"

	"scribe/internal/models"
	"scribe/internal/result"
)

// ProcessAudioFile runs the full pipeline for one command: validate,
// transcribe, then summarize unless skipped. Strictly sequential, one
// stage at a time, and stateless across invocations.
//
// A summarization failure does not fail the pipeline: the transcription
// is still valuable on its own, so the outcome is reported as a success
// carrying the transcription with a warning message and a nil summary.
func (s *implService) ProcessAudioFile(ctx context.Context, cmd models.ProcessAudioFileCommand) result.Result[models.ProcessOutcome] {
	if errs := cmd.Validate(s.exists); len(errs) > 0 {
		s.logger.Warn(ctx, "Command rejected: %d validation error(s)", len(errs))
		return result.ValidationError[models.ProcessOutcome](errs)
	}

	transcriptionResult := s.transcriber.Transcribe(ctx, cmd.AudioFilePath, cmd.Model)
	if transcriptionResult.Failed() {
		// Terminal: summarization is never attempted after a failed
		// transcription. Message and errors pass through unchanged.
		return result.Fail[models.ProcessOutcome](transcriptionResult.Message, transcriptionResult.Errors...)
	}
	transcription := transcriptionResult.Value

	if cmd.SkipSummary {
		return result.Ok(
			models.ProcessOutcome{Transcription: transcription},
			"Transcription completed (summary skipped)",
		)
	}

	summaryResult := s.summarizer.Summarize(ctx, transcription.Text)
	if summaryResult.Failed() {
		s.logger.Warn(ctx, "Summarization failed, keeping transcription: %s", summaryResult.Message)
		return result.Ok(
			models.ProcessOutcome{Transcription: transcription},
			fmt.Sprintf("Transcription completed (summarization failed: %s)", summaryResult.Message),
		)
	}

	summary := summaryResult.Value
	return result.Ok(
		models.ProcessOutcome{Transcription: transcription, Summary: &summary},
		"Audio processing completed successfully",
	)
}

// TranscribeAudio validates the command and delegates to the
// transcription provider.
func (s *implService) TranscribeAudio(ctx context.Context, cmd models.TranscribeAudioCommand) result.Result[models.Transcription] {
	if errs := cmd.Validate(s.exists); len(errs) > 0 {
		return result.ValidationError[models.Transcription](errs)
	}
	return s.transcriber.Transcribe(ctx, cmd.AudioFilePath, cmd.Model)
}

// GenerateSummary validates the command and delegates to the
// summarization provider.
func (s *implService) GenerateSummary(ctx context.Context, cmd models.GenerateSummaryCommand) result.Result[models.Summary] {
	if errs := cmd.Validate(); len(errs) > 0 {
		return result.ValidationError[models.Summary](errs)
	}
	return s.summarizer.Summarize(ctx, cmd.Text)
}
