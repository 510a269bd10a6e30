package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openailib "github.com/sashabaranov/go-openai"

	"github.com/autoanki/autoanki-api/internal/completion"
	"github.com/autoanki/autoanki-api/internal/config"
)

// Completer implements completion.Completer over the OpenAI-compatible
// chat completions API.
type Completer struct {
	logger *slog.Logger
	config config.LLMConfig
	client *openailib.Client
}

// NewCompleter creates a new OpenAI-compatible Completer.
// For the ollama provider no API key is required; for hosted endpoints
// the key must be set.
func NewCompleter(logger *slog.Logger, cfg config.LLMConfig) (*Completer, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", completion.ErrInvalidConfig)
	}

	if cfg.APIKey == "" && cfg.Provider != config.ProviderOllama {
		return nil, fmt.Errorf("%w: API key cannot be empty for provider %s",
			completion.ErrInvalidConfig, cfg.Provider)
	}

	clientConfig := openailib.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Completer{
		logger: logger,
		config: cfg,
		client: openailib.NewClientWithConfig(clientConfig),
	}, nil
}

// Complete sends the prompt as a single user message and returns the
// assistant's reply. Transient transport faults are retried with a linear
// backoff up to the configured maximum.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	req := openailib.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openailib.ChatCompletionMessage{
			{
				Role:    openailib.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}
	if c.config.Temperature > 0 {
		req.Temperature = c.config.Temperature
	}
	if c.config.MaxTokens > 0 {
		req.MaxTokens = c.config.MaxTokens
	}

	var resp openailib.ChatCompletionResponse
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		c.logger.InfoContext(ctx, "making chat completion call",
			"attempt", attempt+1,
			"max_attempts", c.config.MaxRetries+1,
			"model", c.config.Model)

		resp, lastErr = c.client.CreateChatCompletion(ctx, req)
		if lastErr == nil {
			break
		}

		if attempt < c.config.MaxRetries {
			wait := time.Duration(attempt+1) * time.Second
			c.logger.WarnContext(ctx, "chat completion call failed, retrying",
				"attempt", attempt+1,
				"wait", wait.String(),
				"error", lastErr)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %v", completion.ErrTransientFailure, ctx.Err())
			}
		}
	}

	if lastErr != nil {
		return "", fmt.Errorf("%w: call failed after %d retries: %v",
			completion.ErrCompletionFailed, c.config.MaxRetries, lastErr)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", completion.ErrEmptyResponse)
	}

	text := resp.Choices[0].Message.Content
	c.logger.InfoContext(ctx, "chat completion call successful",
		"response_length", len(text))

	return text, nil
}
