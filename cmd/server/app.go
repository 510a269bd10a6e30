package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/autoanki/autoanki-api/internal/completion"
	"github.com/autoanki/autoanki-api/internal/config"
	"github.com/autoanki/autoanki-api/internal/platform/gemini"
	"github.com/autoanki/autoanki-api/internal/platform/openai"
	"github.com/autoanki/autoanki-api/internal/workflow"
)

// application holds the wired dependencies for the server.
type application struct {
	config       *config.Config
	logger       *slog.Logger
	completer    completion.Completer
	orchestrator *workflow.Orchestrator
}

// newApplication constructs the completion backend and the workflow
// orchestrator from configuration. Provider selection happens exactly
// once, here; the pipeline itself never branches on provider identity.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	completer, err := newCompleter(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion backend: %w", err)
	}

	orchestrator, err := workflow.NewOrchestrator(completer, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create orchestrator: %w", err)
	}

	return &application{
		config:       cfg,
		logger:       logger,
		completer:    completer,
		orchestrator: orchestrator,
	}, nil
}

// newCompleter selects and builds the configured completion backend.
// The "ollama" provider is the OpenAI-compatible adapter pointed at a
// local endpoint.
func newCompleter(
	ctx context.Context,
	cfg config.LLMConfig,
	logger *slog.Logger,
) (completion.Completer, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return gemini.NewCompleter(ctx, logger, cfg)
	case config.ProviderOpenAI, config.ProviderOllama:
		return openai.NewCompleter(logger, cfg)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", completion.ErrInvalidConfig, cfg.Provider)
	}
}
