package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the process-wide configuration. It is loaded once at startup
// and handed to constructors by value.
type Config struct {
	Speech     SpeechConfig     `yaml:"speech"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Server     ServerConfig     `yaml:"server"`
}

// SpeechConfig configures the transcription client
type SpeechConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
	AudioFormat     string `yaml:"audio_format"`
	SampleRateHertz int    `yaml:"sample_rate_hertz"`
	ChannelCount    int    `yaml:"channel_count"`
	LanguageCode    string `yaml:"language_code"`
	Model           string `yaml:"model"`
	Bucket          string `yaml:"bucket"`
	TimeoutSec      int    `yaml:"timeout_sec"`
}

// Timeout bounds a single recognition call.
func (c SpeechConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// SummarizerConfig configures the summarization client
type SummarizerConfig struct {
	Provider   string `yaml:"provider"`
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Model      string `yaml:"model"`
	Prompt     string `yaml:"prompt"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// Timeout bounds a single completion call. Zero means unbounded.
func (c SummarizerConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// ServerConfig configures the HTTP server
type ServerConfig struct {
	Host               string `yaml:"host"`
	Port               string `yaml:"port"`
	Environment        string `yaml:"environment"`
	LegacyErrorAnswers bool   `yaml:"legacy_error_answers"`
}

// IsProduction reports whether the server runs in production mode.
func (c ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

// Load builds the configuration: defaults, then the optional YAML file at
// path, then environment variables. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	return nil
}
