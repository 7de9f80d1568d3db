package testutil

import (
	"speech-summarizer/internal/config"
)

// Sample transcripts used across tests
const (
	TestTranscript = "Welcome to our podcast. Today we're discussing the latest developments in speech recognition."
	TestSummary    = "A podcast episode about speech recognition."
)

// TestConfig returns a complete configuration that passes validation.
func TestConfig() config.Config {
	cfg := config.Defaults()
	cfg.Speech.CredentialsFile = "/secrets/service-account.json"
	cfg.Speech.AudioFormat = "wav"
	cfg.Speech.SampleRateHertz = 16000
	cfg.Speech.ChannelCount = 1
	cfg.Speech.LanguageCode = "en-US"
	cfg.Speech.Bucket = "test-recordings"
	cfg.Summarizer.APIKey = "sk-1234567890abcdef1234567890abcdef"
	cfg.Summarizer.Model = "gpt-4o-mini"
	cfg.Summarizer.Prompt = "Summarize the following dialogue:"
	return cfg
}
