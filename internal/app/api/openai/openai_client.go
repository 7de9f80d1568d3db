package openai

import (
	"github.com/sashabaranov/go-openai"
)

// NewClient creates an OpenAI client for apiKey. A non-empty baseURL points
// the client at an OpenAI-compatible endpoint.
func NewClient(apiKey, baseURL string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(config)
}
