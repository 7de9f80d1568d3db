//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"speech-summarizer/internal/api/server"
	"speech-summarizer/internal/app/orchestrator"
	"speech-summarizer/internal/config"
)

// InitializeOrchestrator builds an orchestrator for command-line runs.
func InitializeOrchestrator(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*orchestrator.Orchestrator, func(), error) {
	wire.Build(ProviderSet)
	return nil, nil, nil
}

// InitializeServer builds the HTTP server with its orchestrator and metrics.
func InitializeServer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*server.Server, func(), error) {
	wire.Build(ServerSet)
	return nil, nil, nil
}
