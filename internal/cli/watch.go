package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"scribe/internal/models"
	"scribe/internal/output"
	"scribe/internal/pipeline"
	"scribe/internal/watcher"
)

var (
	watchInput  string
	watchOutput string
	watchFormat string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a directory and process new recordings as they appear",
	Long: `Watch monitors an input directory and runs the transcription pipeline
on every new audio file, writing rendered results into the output
directory. Recordings are processed one at a time, in arrival order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchInput, "input", "", "input directory (overrides paths.input)")
	watchCmd.Flags().StringVar(&watchOutput, "output-dir", "", "output directory (overrides paths.output)")
	watchCmd.Flags().StringVar(&watchFormat, "format", "md", "output format (txt, json, md, docx)")
	watchCmd.Flags().StringVar(&modelFlag, "model", models.DefaultModel,
		fmt.Sprintf("Whisper model size (%s)", strings.Join(models.WhisperModels, ", ")))
	watchCmd.Flags().BoolVar(&noSummary, "no-summary", false, "skip summary generation (transcription only)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	inputDir := cfg.Paths.Input
	if watchInput != "" {
		inputDir = watchInput
	}
	outputDir := cfg.Paths.Output
	if watchOutput != "" {
		outputDir = watchOutput
	}

	for _, dir := range []string{inputDir, outputDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error: create directory %s: %v\n", dir, err)
			return err
		}
	}

	svc := buildService(cfg, log)
	handler := makeHandler(svc, outputDir)

	w, err := watcher.New(inputDir, handler, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching %s, writing results to %s", inputDir, outputDir)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		cancel()
		return nil
	case err := <-errChan:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
}

// makeHandler builds the per-file callback for the watcher: run the
// pipeline, then render the outcome next to the other results.
func makeHandler(svc pipeline.Service, outputDir string) watcher.EventHandler {
	return func(ctx context.Context, filePath string) error {
		command := models.ProcessAudioFileCommand{
			AudioFilePath: filePath,
			Model:         modelFlag,
			SkipSummary:   noSummary,
		}

		res := svc.ProcessAudioFile(ctx, command)
		if res.Failed() {
			return fmt.Errorf("%s: %s", res.Message, strings.Join(res.Errors, "; "))
		}

		base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		outPath := filepath.Join(outputDir, base+"."+strings.TrimPrefix(watchFormat, "."))
		return output.SaveToFile(res.Value, outPath)
	}
}
