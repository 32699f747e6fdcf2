package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scribe/internal/models"
)

func testOutcome(withSummary bool) models.ProcessOutcome {
	outcome := models.ProcessOutcome{
		Transcription: models.Transcription{
			Text:          "Hello world, this is a test.",
			AudioFilePath: "recording.mp3",
			ModelUsed:     "base",
			Language:      "en",
		},
	}
	if withSummary {
		outcome.Summary = &models.Summary{
			ConversationSummary: "A short greeting.",
			ActionItems:         []string{"Say hello back"},
		}
	}
	return outcome
}

func TestFormatConsole(t *testing.T) {
	out := FormatConsole(testOutcome(true))

	for _, want := range []string{
		"TRANSCRIPTION RESULTS",
		"File: recording.mp3",
		"Model: base",
		"Language: en",
		"Hello world, this is a test.",
		"SUMMARY",
		"A short greeting.",
		"1. Say hello back",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q", want)
		}
	}
}

func TestFormatConsoleWithoutSummary(t *testing.T) {
	out := FormatConsole(testOutcome(false))

	if strings.Contains(out, "SUMMARY") {
		t.Error("console output should not contain a summary section")
	}
	if !strings.Contains(out, "Hello world") {
		t.Error("console output missing transcription text")
	}
}

func TestFormatConsoleNoActionItems(t *testing.T) {
	outcome := testOutcome(true)
	outcome.Summary.ActionItems = nil

	out := FormatConsole(outcome)
	if !strings.Contains(out, "No action items identified") {
		t.Error("console output missing empty action items note")
	}
}

func TestFormatMarkdown(t *testing.T) {
	out := FormatMarkdown(testOutcome(true))

	for _, want := range []string{
		"# Transcription Results",
		"- **File:** recording.mp3",
		"## Transcription",
		"## Summary",
		"- Say hello back",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}
}

func TestSaveToFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	if err := SaveToFile(testOutcome(true), path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var outcome models.ProcessOutcome
	if err := json.Unmarshal(data, &outcome); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if outcome.Transcription.Text != "Hello world, this is a test." {
		t.Errorf("text = %q", outcome.Transcription.Text)
	}
	if outcome.Summary == nil || outcome.Summary.ConversationSummary != "A short greeting." {
		t.Errorf("summary = %+v", outcome.Summary)
	}
}

func TestSaveToFileTxtDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	if err := SaveToFile(testOutcome(false), path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "TRANSCRIPTION RESULTS") {
		t.Error("txt output missing console banner")
	}
}

func TestSaveToFileMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")

	if err := SaveToFile(testOutcome(true), path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# Transcription Results") {
		t.Error("md output missing title")
	}
}

func TestSaveToFileDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.docx")

	if err := SaveToFile(testOutcome(true), path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("docx output is empty")
	}
}
