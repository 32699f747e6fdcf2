package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"scribe/internal/models"
)

const lineWidth = 80

// FormatConsole renders a pipeline outcome for terminal display.
func FormatConsole(outcome models.ProcessOutcome) string {
	t := outcome.Transcription

	var b strings.Builder
	rule := strings.Repeat("=", lineWidth)
	thin := strings.Repeat("-", lineWidth)

	b.WriteString(rule + "\n")
	b.WriteString("TRANSCRIPTION RESULTS\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "File: %s\n", t.AudioFilePath)
	fmt.Fprintf(&b, "Model: %s\n", t.ModelUsed)
	if t.Language != "" {
		fmt.Fprintf(&b, "Language: %s\n", t.Language)
	}
	if t.DurationSeconds != nil {
		fmt.Fprintf(&b, "Duration: %.1fs\n", *t.DurationSeconds)
	}
	b.WriteString("\nTRANSCRIPTION:\n")
	b.WriteString(thin + "\n")
	b.WriteString(t.Text + "\n")

	if outcome.Summary != nil {
		b.WriteString("\n" + rule + "\n")
		b.WriteString("SUMMARY\n")
		b.WriteString(rule + "\n")
		b.WriteString(outcome.Summary.ConversationSummary + "\n")
		b.WriteString("\nACTION ITEMS:\n")
		b.WriteString(thin + "\n")
		if len(outcome.Summary.ActionItems) == 0 {
			b.WriteString("No action items identified\n")
		}
		for i, item := range outcome.Summary.ActionItems {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item)
		}
		b.WriteString(rule)
	} else {
		b.WriteString(rule)
	}

	return b.String()
}

// SaveToFile writes the outcome to path, picking the format from the
// file extension: .json, .md, .docx, anything else plain text.
func SaveToFile(outcome models.ProcessOutcome, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return saveJSON(outcome, path)
	case ".md":
		return saveMarkdown(outcome, path)
	case ".docx":
		return saveDocx(outcome, path)
	default:
		return os.WriteFile(path, []byte(FormatConsole(outcome)+"\n"), 0644)
	}
}

func saveJSON(outcome models.ProcessOutcome, path string) error {
	data, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal outcome: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

func saveMarkdown(outcome models.ProcessOutcome, path string) error {
	return os.WriteFile(path, []byte(FormatMarkdown(outcome)), 0644)
}

// FormatMarkdown renders a pipeline outcome as a markdown document.
func FormatMarkdown(outcome models.ProcessOutcome) string {
	t := outcome.Transcription

	var b strings.Builder
	b.WriteString("# Transcription Results\n\n")
	b.WriteString("## Metadata\n")
	fmt.Fprintf(&b, "- **File:** %s\n", t.AudioFilePath)
	fmt.Fprintf(&b, "- **Model:** %s\n", t.ModelUsed)
	if t.Language != "" {
		fmt.Fprintf(&b, "- **Language:** %s\n", t.Language)
	}
	b.WriteString("\n## Transcription\n\n")
	b.WriteString(t.Text + "\n")

	if outcome.Summary != nil {
		b.WriteString("\n## Summary\n\n")
		b.WriteString(outcome.Summary.ConversationSummary + "\n")
		b.WriteString("\n## Action Items\n\n")
		if len(outcome.Summary.ActionItems) == 0 {
			b.WriteString("- No action items identified\n")
		}
		for _, item := range outcome.Summary.ActionItems {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}

	return b.String()
}
