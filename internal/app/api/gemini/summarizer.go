package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	apperrors "speech-summarizer/internal/app/errors"
	"speech-summarizer/internal/app/logging"
	"speech-summarizer/internal/config"
)

// Summarizer summarizes text with a Gemini generate-content call.
type Summarizer struct {
	client  *genai.Client
	model   string
	prompt  string
	timeout time.Duration
	logger  *zap.Logger
}

// NewSummarizer creates a Gemini summarizer from cfg. baseURL overrides the
// API endpoint when non-empty. Failures are reported as completion errors.
func NewSummarizer(ctx context.Context, cfg config.SummarizerConfig, logger *zap.Logger) (*Summarizer, error) {
	logger = logging.Component(logger, "gemini")

	if cfg.APIKey == "" {
		err := apperrors.New(apperrors.CodeCompletion, "Failed to connect to Gemini: GEMINI_API_KEY is not set")
		logger.Error("Failed to connect to Gemini", zap.Error(err))
		return nil, err
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		logger.Error("Failed to connect to Gemini", zap.Error(err))
		return nil, apperrors.Wrap(apperrors.CodeCompletion, fmt.Errorf("failed to connect to Gemini: %w", err))
	}

	logger.Info("Connected to Gemini successfully", zap.String("model", cfg.Model))

	return &Summarizer{
		client:  client,
		model:   cfg.Model,
		prompt:  cfg.Prompt,
		timeout: cfg.Timeout(),
		logger:  logger,
	}, nil
}

// Summarize sends the configured prompt followed by text and returns the
// generated text. API errors are classified as completion errors.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(s.prompt+" "+text), nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			s.logger.Error("Gemini API error", zap.Int("code", apiErr.Code), zap.Error(err))
			return "", apperrors.Wrap(apperrors.CodeCompletion,
				fmt.Errorf("failed to summarize text due to an error in the Gemini API: %w", err))
		}
		return "", err
	}

	return result.Text(), nil
}
