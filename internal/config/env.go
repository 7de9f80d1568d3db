package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from the first .env file found.
// Variables already present in the environment are not overridden.
// It returns the path of the loaded file, or "" when none exists.
func LoadEnv() (string, error) {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}

	return "", nil
}

// applyEnv overlays environment variables onto cfg.
func applyEnv(cfg *Config) error {
	setString(&cfg.Speech.CredentialsFile, "GOOGLE_SERVICE_ACCOUNT")
	setString(&cfg.Speech.AudioFormat, "AUDIO_FORMAT")
	setString(&cfg.Speech.LanguageCode, "LANGUAGE_CODE")
	setString(&cfg.Speech.Model, "STT_MODEL")
	setString(&cfg.Speech.Bucket, "BUCKET_NAME")
	cfg.Speech.AudioFormat = strings.ToLower(cfg.Speech.AudioFormat)

	setString(&cfg.Summarizer.Provider, "SUMMARIZER_PROVIDER")
	cfg.Summarizer.Provider = strings.ToLower(cfg.Summarizer.Provider)
	switch cfg.Summarizer.Provider {
	case ProviderGemini:
		setString(&cfg.Summarizer.APIKey, "GEMINI_API_KEY")
	default:
		setString(&cfg.Summarizer.APIKey, "OPENAI_API_KEY")
		setString(&cfg.Summarizer.BaseURL, "OPENAI_BASE_URL")
	}
	setString(&cfg.Summarizer.Model, "ENGINE")
	setString(&cfg.Summarizer.Prompt, "DIALOGUE_PROMPT")

	setString(&cfg.Server.Host, "HOST")
	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Server.Environment, "ENVIRONMENT")

	ints := []struct {
		dst *int
		key string
	}{
		{&cfg.Speech.SampleRateHertz, "SAMPLE_RATE_HERTZ"},
		{&cfg.Speech.ChannelCount, "AUDIO_CHANNEL_COUNT"},
		{&cfg.Speech.TimeoutSec, "STT_TIMEOUT_SECONDS"},
		{&cfg.Summarizer.TimeoutSec, "SUMMARIZE_TIMEOUT_SECONDS"},
	}
	for _, i := range ints {
		if err := setInt(i.dst, i.key); err != nil {
			return err
		}
	}

	return setBool(&cfg.Server.LegacyErrorAnswers, "LEGACY_ERROR_ANSWERS")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%s must be an integer: %w", key, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	*dst = b
	return nil
}
