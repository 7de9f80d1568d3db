package config

// Default configuration constants
const (
	DefaultSpeechTimeoutSec    = 600
	DefaultSummarizeTimeoutSec = 120
	DefaultSTTModel            = "default"

	DefaultSummarizerProvider = ProviderOpenAI

	DefaultHost        = "0.0.0.0"
	DefaultPort        = "8000"
	DefaultEnvironment = "development"
)

// Summarization providers
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Supported audio formats
var AudioFormats = []string{"wav", "mp3", "ogg"}

// Defaults returns a configuration holding only default values.
func Defaults() Config {
	return Config{
		Speech: SpeechConfig{
			Model:      DefaultSTTModel,
			TimeoutSec: DefaultSpeechTimeoutSec,
		},
		Summarizer: SummarizerConfig{
			Provider:   DefaultSummarizerProvider,
			TimeoutSec: DefaultSummarizeTimeoutSec,
		},
		Server: ServerConfig{
			Host:        DefaultHost,
			Port:        DefaultPort,
			Environment: DefaultEnvironment,
		},
	}
}
