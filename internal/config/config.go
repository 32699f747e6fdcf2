package config

import (
	"fmt"
	"os"
	"strings"

	cenv "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Whisper WhisperConfig `yaml:"whisper"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`

	// Secrets come from the environment, never the yaml file.
	Secrets Secrets `yaml:"-"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelsDir  string `yaml:"models_dir"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

// PathsConfig is used by watch mode only.
type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type Secrets struct {
	// GEMINI_API_KEY accepts a comma-separated list; the summarizer
	// rotates through them on quota errors.
	GeminiAPIKeys []string `env:"GEMINI_API_KEY" envSeparator:","`
}

// Load builds the configuration. Priority: yaml file (when path is
// non-empty) > struct defaults; secrets always come from the process
// environment, with a .env file loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := cenv.Parse(&cfg.Secrets); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate applies defaults and rejects unusable values.
func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelsDir == "" {
		c.Whisper.ModelsDir = "models"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads < 0 {
		return fmt.Errorf("whisper.threads must not be negative")
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	// An unset GEMINI_API_KEY parses as a single empty entry.
	keys := c.Secrets.GeminiAPIKeys[:0]
	for _, k := range c.Secrets.GeminiAPIKeys {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	c.Secrets.GeminiAPIKeys = keys

	return nil
}
