package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"scribe/internal/models"
	"scribe/internal/result"
)

// Transcribe runs whisper.cpp against the audio file and reads back the
// text output. The model size is resolved to a ggml model file under the
// configured models directory.
func (p *implProvider) Transcribe(ctx context.Context, audioFilePath, model string) (res result.Result[models.Transcription]) {
	defer func() {
		if r := recover(); r != nil {
			res = result.Fail[models.Transcription](
				"Transcription failed: internal error",
				fmt.Sprintf("%v", r),
			)
		}
	}()

	if model == "" {
		model = models.DefaultModel
	}

	modelPath, err := p.resolveModel(model)
	if err != nil {
		return result.Fail[models.Transcription](
			fmt.Sprintf("Failed to load Whisper model '%s'", model),
			err.Error(),
		)
	}

	outDir, err := os.MkdirTemp("", "scribe-*")
	if err != nil {
		return result.Fail[models.Transcription]("Transcription failed: create temp dir", err.Error())
	}
	defer os.RemoveAll(outDir)

	outputPrefix := filepath.Join(outDir, "transcript")

	p.logger.Info(ctx, "Transcribing %s with model %s (%d threads)", audioFilePath, model, p.cfg.Threads)

	// -otxt writes <prefix>.txt, -np suppresses progress output
	args := []string{
		"-m", modelPath,
		"-f", audioFilePath,
		"-otxt",
		"-l", p.cfg.Language,
		"-t", strconv.Itoa(p.cfg.Threads),
		"-np",
		"--output-file", outputPrefix,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.BinaryPath, args...); err != nil {
		return result.Fail[models.Transcription]("Transcription failed: whisper engine error", err.Error())
	}

	raw, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return result.Fail[models.Transcription]("Transcription failed: read engine output", err.Error())
	}

	transcription := models.Transcription{
		// Empty text for silent audio is valid output, not an error.
		Text:            strings.TrimSpace(string(raw)),
		AudioFilePath:   audioFilePath,
		ModelUsed:       model,
		DurationSeconds: p.probeDuration(ctx, audioFilePath),
	}
	if p.cfg.Language != "" && p.cfg.Language != "auto" {
		transcription.Language = p.cfg.Language
	}

	p.logger.Info(ctx, "Transcription completed: %d characters", len(transcription.Text))
	return result.Ok(transcription, "Transcription completed successfully")
}

func (p *implProvider) resolveModel(model string) (string, error) {
	path := filepath.Join(p.cfg.ModelsDir, fmt.Sprintf("ggml-%s.bin", model))
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("model file not found: %s", path)
	}
	return path, nil
}

// probeDuration asks ffprobe for the audio duration. Best effort: the
// pipeline works without it, so failures only log.
func (p *implProvider) probeDuration(ctx context.Context, audioFilePath string) *float64 {
	out, err := p.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioFilePath,
	)
	if err != nil {
		p.logger.Debug(ctx, "ffprobe unavailable for %s: %v", audioFilePath, err)
		return nil
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		p.logger.Debug(ctx, "ffprobe returned non-numeric duration for %s: %q", audioFilePath, out)
		return nil
	}
	return &seconds
}
