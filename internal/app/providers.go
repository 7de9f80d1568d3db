package app

import (
	"context"
	"fmt"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"speech-summarizer/internal/api/server"
	"speech-summarizer/internal/app/api"
	"speech-summarizer/internal/app/api/gemini"
	"speech-summarizer/internal/app/api/google/speech"
	"speech-summarizer/internal/app/api/openai/chat"
	"speech-summarizer/internal/app/orchestrator"
	"speech-summarizer/internal/config"
)

// ProviderSet builds the orchestrator and its clients from a *config.Config
// and a *zap.Logger.
var ProviderSet = wire.NewSet(
	wire.FieldsOf(new(*config.Config), "Speech", "Summarizer"),
	provideTranscriber,
	provideSummarizer,
	provideRegistry,
	provideMetrics,
	orchestrator.New,
)

// ServerSet adds the HTTP server on top of ProviderSet.
var ServerSet = wire.NewSet(
	ProviderSet,
	wire.FieldsOf(new(*config.Config), "Server"),
	server.NewServer,
	wire.Bind(new(api.Executor), new(*orchestrator.Orchestrator)),
	wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
)

// provideTranscriber connects to Google Speech-to-Text; the cleanup closes
// the connection.
func provideTranscriber(ctx context.Context, cfg config.SpeechConfig, logger *zap.Logger) (api.Transcriber, func(), error) {
	stt, err := speech.NewGoogleSpeechToText(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := stt.Close(); err != nil {
			logger.Warn("Failed to close speech client", zap.Error(err))
		}
	}
	return stt, cleanup, nil
}

// provideSummarizer picks the summarization backend named by cfg.Provider
func provideSummarizer(ctx context.Context, cfg config.SummarizerConfig, logger *zap.Logger) (api.Summarizer, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI, "":
		return chat.NewGPTSummarizer(cfg, logger)
	case config.ProviderGemini:
		return gemini.NewSummarizer(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Provider)
	}
}

func provideRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

func provideMetrics(registry *prometheus.Registry) *orchestrator.Metrics {
	return orchestrator.NewMetrics(registry)
}
