package models

import (
	"fmt"
	"os"
	"strings"
)

// Whisper model sizes accepted by the pipeline.
var WhisperModels = []string{"tiny", "base", "small", "medium", "large"}

// DefaultModel is used when a command does not specify one.
const DefaultModel = "base"

// ExistsFunc checks whether a file exists. Injectable so command
// validation can be tested without touching the real filesystem.
type ExistsFunc func(path string) bool

// FileExists is the default ExistsFunc backed by os.Stat.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ProcessAudioFileCommand describes one transcribe-and-summarize job.
// Commands are built once by the CLI layer and never mutated.
type ProcessAudioFileCommand struct {
	AudioFilePath string
	Model         string
	SkipSummary   bool
}

// Validate returns every violated rule, not just the first, so the
// caller can report all problems at once.
func (c ProcessAudioFileCommand) Validate(exists ExistsFunc) []string {
	errs := validatePath(c.AudioFilePath, exists)
	if msg := validateModel(c.Model); msg != "" {
		errs = append(errs, msg)
	}
	return errs
}

// TranscribeAudioCommand describes a transcription-only job.
type TranscribeAudioCommand struct {
	AudioFilePath string
	Model         string
}

func (c TranscribeAudioCommand) Validate(exists ExistsFunc) []string {
	errs := validatePath(c.AudioFilePath, exists)
	if msg := validateModel(c.Model); msg != "" {
		errs = append(errs, msg)
	}
	return errs
}

// GenerateSummaryCommand describes a summarization-only job.
type GenerateSummaryCommand struct {
	Text string
}

func (c GenerateSummaryCommand) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Text) == "" {
		errs = append(errs, "Text is required for summarization")
	}
	return errs
}

func validatePath(path string, exists ExistsFunc) []string {
	var errs []string
	if path == "" {
		errs = append(errs, "Audio file path is required")
		return errs
	}
	if exists != nil && !exists(path) {
		errs = append(errs, fmt.Sprintf("File not found: %s", path))
	}
	return errs
}

func validateModel(model string) string {
	if model == "" {
		return ""
	}
	for _, m := range WhisperModels {
		if model == m {
			return ""
		}
	}
	return fmt.Sprintf("Invalid model: %s. Must be one of: %s", model, strings.Join(WhisperModels, ", "))
}
