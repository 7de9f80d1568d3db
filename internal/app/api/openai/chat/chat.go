package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	openai2 "speech-summarizer/internal/app/api/openai"
	apperrors "speech-summarizer/internal/app/errors"
	"speech-summarizer/internal/app/logging"
	"speech-summarizer/internal/config"
)

// GPTSummarizer summarizes text with an OpenAI chat completion.
type GPTSummarizer struct {
	client  *openai.Client
	model   string
	prompt  string
	timeout time.Duration
	logger  *zap.Logger
}

// NewGPTSummarizer creates a summarizer from cfg. A missing API key is
// reported as a completion error.
func NewGPTSummarizer(cfg config.SummarizerConfig, logger *zap.Logger) (*GPTSummarizer, error) {
	logger = logging.Component(logger, "openai")

	if cfg.APIKey == "" {
		err := apperrors.New(apperrors.CodeCompletion, "Failed to connect to OpenAI: OPENAI_API_KEY is not set")
		logger.Error("Failed to connect to OpenAI", zap.Error(err))
		return nil, err
	}

	s := NewGPTSummarizerWithClient(openai2.NewClient(cfg.APIKey, cfg.BaseURL), cfg)
	s.logger = logger
	logger.Info("Connected to OpenAI successfully", zap.String("model", cfg.Model))
	return s, nil
}

// NewGPTSummarizerWithClient creates a summarizer around an existing client.
func NewGPTSummarizerWithClient(client *openai.Client, cfg config.SummarizerConfig) *GPTSummarizer {
	return &GPTSummarizer{
		client:  client,
		model:   cfg.Model,
		prompt:  cfg.Prompt,
		timeout: cfg.Timeout(),
		logger:  zap.NewNop(),
	}
}

// Summarize sends the configured prompt followed by text as a single user
// message and returns the completion unmodified. Status and request errors
// from the API are classified as completion errors; anything else, such as
// a transport failure, is returned as is.
func (s *GPTSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	request := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: s.prompt + " " + text,
			},
		},
	}

	resp, err := s.client.CreateChatCompletion(ctx, request)
	if err != nil {
		var apiErr *openai.APIError
		var reqErr *openai.RequestError
		if errors.As(err, &apiErr) || errors.As(err, &reqErr) {
			s.logger.Error("OpenAI API error", zap.Error(err))
			return "", apperrors.Wrap(apperrors.CodeCompletion,
				fmt.Errorf("failed to summarize text due to an error in the OpenAI API: %w", err))
		}
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned no choices")
	}

	s.logger.Debug("Text summarized",
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
	)

	return resp.Choices[0].Message.Content, nil
}
