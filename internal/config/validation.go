package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Validate checks the whole configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []error

	s := c.Speech
	if s.CredentialsFile == "" {
		errs = append(errs, fmt.Errorf("GOOGLE_SERVICE_ACCOUNT is required"))
	}
	if !slices.Contains(AudioFormats, s.AudioFormat) {
		errs = append(errs, fmt.Errorf("AUDIO_FORMAT %q is invalid: must be one of %s", s.AudioFormat, strings.Join(AudioFormats, ", ")))
	}
	if s.SampleRateHertz <= 0 {
		errs = append(errs, fmt.Errorf("SAMPLE_RATE_HERTZ must be positive"))
	}
	if s.ChannelCount <= 0 {
		errs = append(errs, fmt.Errorf("AUDIO_CHANNEL_COUNT must be positive"))
	}
	if s.LanguageCode == "" {
		errs = append(errs, fmt.Errorf("LANGUAGE_CODE is required"))
	}
	if s.Bucket == "" {
		errs = append(errs, fmt.Errorf("BUCKET_NAME is required"))
	}
	if err := ValidateTimeout(s.Timeout(), "speech"); err != nil {
		errs = append(errs, err)
	}

	sum := c.Summarizer
	switch sum.Provider {
	case ProviderOpenAI, ProviderGemini:
		if err := ValidateAPIKey(sum.APIKey, sum.Provider, sum.BaseURL != ""); err != nil {
			errs = append(errs, err)
		}
	default:
		errs = append(errs, fmt.Errorf("SUMMARIZER_PROVIDER %q is invalid: must be %s or %s", sum.Provider, ProviderOpenAI, ProviderGemini))
	}
	if sum.Model == "" {
		errs = append(errs, fmt.Errorf("ENGINE is required"))
	}
	if sum.Prompt == "" {
		errs = append(errs, fmt.Errorf("DIALOGUE_PROMPT is required"))
	}
	if sum.TimeoutSec != 0 {
		if err := ValidateTimeout(sum.Timeout(), "summarizer"); err != nil {
			errs = append(errs, err)
		}
	}

	if err := ValidatePort(c.Server.Port, "server"); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ValidateTimeout validates timeout duration
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s timeout must be positive", name)
	}
	if timeout > 30*time.Minute {
		return fmt.Errorf("%s timeout too large (max 30 minutes)", name)
	}
	return nil
}

// ValidateAPIKey validates API key format. Format checks are skipped for
// custom endpoints, which may issue keys of any shape.
func ValidateAPIKey(apiKey string, provider string, customEndpoint bool) error {
	if apiKey == "" {
		return fmt.Errorf("%s API key is required", provider)
	}
	if customEndpoint {
		return nil
	}

	switch provider {
	case ProviderOpenAI:
		if !strings.HasPrefix(apiKey, "sk-") {
			return fmt.Errorf("invalid OpenAI API key format: must start with 'sk-'")
		}
		if len(apiKey) < 20 {
			return fmt.Errorf("invalid OpenAI API key format: too short")
		}
	case ProviderGemini:
		if !strings.HasPrefix(apiKey, "AIza") {
			return fmt.Errorf("invalid Gemini API key format: must start with 'AIza'")
		}
		if len(apiKey) < 30 {
			return fmt.Errorf("invalid Gemini API key format: too short")
		}
	}

	return nil
}

// ValidatePort validates port number
func ValidatePort(port string, name string) error {
	if port == "" {
		return fmt.Errorf("%s port is required", name)
	}
	if len(port) > 5 || strings.Trim(port, "0123456789") != "" {
		return fmt.Errorf("%s port invalid", name)
	}
	return nil
}
