package transcriber

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scribe/internal/config"
	"scribe/internal/logger"
)

// fakeExecutor simulates whisper.cpp by writing the transcript file the
// real binary would produce, and ffprobe by returning a fixed duration.
type fakeExecutor struct {
	transcript  string
	whisperErr  error
	ffprobeOut  string
	ffprobeErr  error
	invocations []string
}

func (f *fakeExecutor) Execute(_ context.Context, name string, args ...string) (string, error) {
	f.invocations = append(f.invocations, name)

	if name == "ffprobe" {
		return f.ffprobeOut, f.ffprobeErr
	}

	if f.whisperErr != nil {
		return "", f.whisperErr
	}
	for i, a := range args {
		if a == "--output-file" && i+1 < len(args) {
			if err := os.WriteFile(args[i+1]+".txt", []byte(f.transcript), 0644); err != nil {
				return "", err
			}
		}
	}
	return "", nil
}

func (f *fakeExecutor) LookPath(name string) (string, error) {
	return name, nil
}

func testProvider(t *testing.T, exec *fakeExecutor) Provider {
	t.Helper()

	modelsDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(modelsDir, "ggml-base.bin"), []byte("model"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.WhisperConfig{
		BinaryPath: "whisper-cli",
		ModelsDir:  modelsDir,
		Language:   "en",
		Threads:    4,
	}
	return New(cfg, exec, logger.NewWithWriter("error", io.Discard))
}

func TestTranscribeSuccess(t *testing.T) {
	exec := &fakeExecutor{transcript: "  hello from whisper  \n", ffprobeOut: "12.5\n"}
	p := testProvider(t, exec)

	res := p.Transcribe(context.Background(), "audio.mp3", "base")

	if !res.Success {
		t.Fatalf("expected success, got %s %v", res.Message, res.Errors)
	}
	if res.Value.Text != "hello from whisper" {
		t.Errorf("text = %q", res.Value.Text)
	}
	if res.Value.ModelUsed != "base" {
		t.Errorf("model = %q", res.Value.ModelUsed)
	}
	if res.Value.Language != "en" {
		t.Errorf("language = %q", res.Value.Language)
	}
	if res.Value.DurationSeconds == nil || *res.Value.DurationSeconds != 12.5 {
		t.Errorf("duration = %v, want 12.5", res.Value.DurationSeconds)
	}
}

func TestTranscribeDefaultsModel(t *testing.T) {
	exec := &fakeExecutor{transcript: "text"}
	p := testProvider(t, exec)

	res := p.Transcribe(context.Background(), "audio.mp3", "")
	if !res.Success {
		t.Fatalf("expected success, got %s", res.Message)
	}
	if res.Value.ModelUsed != "base" {
		t.Errorf("model = %q, want default base", res.Value.ModelUsed)
	}
}

func TestTranscribeEmptyOutputIsNotAnError(t *testing.T) {
	// Silent audio produces an empty transcript; that is valid output.
	exec := &fakeExecutor{transcript: "\n"}
	p := testProvider(t, exec)

	res := p.Transcribe(context.Background(), "silence.wav", "base")
	if !res.Success {
		t.Fatalf("expected success for empty transcript, got %s", res.Message)
	}
	if res.Value.Text != "" {
		t.Errorf("text = %q, want empty", res.Value.Text)
	}
}

func TestTranscribeMissingModelFile(t *testing.T) {
	exec := &fakeExecutor{transcript: "text"}
	p := testProvider(t, exec)

	res := p.Transcribe(context.Background(), "audio.mp3", "large")

	if res.Success {
		t.Fatal("expected failure for missing model file")
	}
	if !strings.Contains(res.Message, "large") {
		t.Errorf("message = %q, should name the model", res.Message)
	}
	if len(exec.invocations) != 0 {
		t.Errorf("engine invoked %d times before model resolution, want 0", len(exec.invocations))
	}
}

func TestTranscribeEngineFailure(t *testing.T) {
	exec := &fakeExecutor{whisperErr: errors.New("unsupported codec")}
	p := testProvider(t, exec)

	res := p.Transcribe(context.Background(), "audio.mp3", "base")

	if res.Success {
		t.Fatal("expected failure when engine errors")
	}
	if !strings.Contains(res.Message, "Transcription failed") {
		t.Errorf("message = %q", res.Message)
	}
	if len(res.Errors) == 0 || !strings.Contains(res.Errors[0], "unsupported codec") {
		t.Errorf("errors = %v, should carry the engine error", res.Errors)
	}
}

func TestTranscribeDurationProbeFailureIsNonFatal(t *testing.T) {
	exec := &fakeExecutor{transcript: "text", ffprobeErr: errors.New("ffprobe not installed")}
	p := testProvider(t, exec)

	res := p.Transcribe(context.Background(), "audio.mp3", "base")
	if !res.Success {
		t.Fatalf("expected success without duration, got %s", res.Message)
	}
	if res.Value.DurationSeconds != nil {
		t.Errorf("duration = %v, want nil", res.Value.DurationSeconds)
	}
}
