package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"scribe/internal/config"
	"scribe/internal/logger"
	"scribe/internal/models"
	"scribe/internal/output"
	"scribe/internal/pipeline"
	"scribe/internal/summarizer"
	"scribe/internal/transcriber"
	"scribe/pkg/executor"
)

var (
	configPath string
	modelFlag  string
	noSummary  bool
	outputPath string
)

var rootCmd = &cobra.Command{
	Use:   "scribe <audio-file>",
	Short: "Transcribe and summarize audio recordings",
	Long: `Scribe transcribes audio recordings with a local whisper.cpp engine
and generates structured summaries with action items using the Gemini API.`,
	Example: `  scribe recording.mp3
  scribe recording.mp3 --model small
  scribe recording.mp3 --output results.json
  scribe recording.mp3 --no-summary`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runProcess,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default config.yaml if present)")
	rootCmd.Flags().StringVar(&modelFlag, "model", models.DefaultModel,
		fmt.Sprintf("Whisper model size (%s)", strings.Join(models.WhisperModels, ", ")))
	rootCmd.Flags().BoolVar(&noSummary, "no-summary", false, "skip summary generation (transcription only)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "save results to file (.txt, .json, .md, .docx)")

	rootCmd.AddCommand(watchCmd)
}

// Execute runs the CLI. Exit code 0 means the pipeline succeeded.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	svc := buildService(cfg, log)

	command := models.ProcessAudioFileCommand{
		AudioFilePath: args[0],
		Model:         modelFlag,
		SkipSummary:   noSummary,
	}

	res := svc.ProcessAudioFile(cmd.Context(), command)
	if res.Failed() {
		fmt.Fprintf(os.Stderr, "Error: %s\n", res.Message)
		for _, e := range res.Errors {
			fmt.Fprintf(os.Stderr, "  - %s\n", e)
		}
		return fmt.Errorf("%s", res.Message)
	}

	fmt.Println(output.FormatConsole(res.Value))
	if res.Message != "" {
		fmt.Println("\n" + res.Message)
	}

	if outputPath != "" {
		if err := output.SaveToFile(res.Value, outputPath); err != nil {
			// Not fatal: the results were already displayed.
			fmt.Fprintf(os.Stderr, "Warning: failed to save output file: %v\n", err)
		} else {
			fmt.Printf("Results saved to: %s\n", outputPath)
		}
	}

	return nil
}

// setup loads configuration and builds the logger shared by commands.
func setup() (*config.Config, logger.Logger, error) {
	path := configPath
	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.New(cfg.Logging.Level), nil
}

func buildService(cfg *config.Config, log logger.Logger) pipeline.Service {
	exec := executor.New()
	return pipeline.New(
		transcriber.New(cfg.Whisper, exec, log),
		summarizer.New(cfg.Secrets.GeminiAPIKeys, cfg.Gemini.Model, log),
		log,
	)
}
