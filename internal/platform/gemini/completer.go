package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"google.golang.org/genai"

	"github.com/autoanki/autoanki-api/internal/completion"
	"github.com/autoanki/autoanki-api/internal/config"
)

// Completer implements the completion.Completer interface using Google's
// Gemini API.
type Completer struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// client is the Gemini API client for making requests
	client *genai.Client

	// model is the name of the Gemini model to use
	model string
}

// NewCompleter creates a new Gemini-backed Completer with the provided
// dependencies.
//
// Parameters:
//   - ctx: Context for client initialization, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name, and retry settings
//
// Returns:
//   - A properly initialized Completer or an error if initialization fails
func NewCompleter(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Completer, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", completion.ErrInvalidConfig)
	}

	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", completion.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			completion.ErrInvalidConfig, err)
	}

	return &Completer{
		logger: logger,
		config: cfg,
		client: client,
		model:  cfg.Model,
	}, nil
}

// Complete sends the prompt to the Gemini API and returns the completion
// text. Transient API faults are retried with exponential backoff and
// jitter up to the configured maximum; permanent faults (blocked content,
// empty responses) return immediately.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	maxRetries := c.config.MaxRetries
	baseDelaySeconds := c.config.RetryDelaySeconds
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if maxRetries < 0 {
		c.logger.WarnContext(ctx, "invalid max retries value, using default", "max_retries", 3)
		maxRetries = 3
	}

	if baseDelaySeconds < 1 {
		c.logger.WarnContext(ctx, "invalid retry delay value, using default", "base_delay_seconds", 2)
		baseDelaySeconds = 2
	}

	genConfig := &genai.GenerateContentConfig{}
	if c.config.Temperature > 0 {
		genConfig.Temperature = genai.Ptr(c.config.Temperature)
	}
	if c.config.MaxTokens > 0 {
		genConfig.MaxOutputTokens = int32(c.config.MaxTokens)
	}

	for attempt := 0; attempt <= maxRetries; attempt++ {
		attemptNum := attempt + 1 // For logging (1-based)
		c.logger.InfoContext(ctx, "making Gemini API call",
			"attempt", attemptNum,
			"max_attempts", maxRetries+1,
			"model", c.model)

		text, transient, err := c.generate(ctx, prompt, genConfig)
		if err == nil {
			c.logger.InfoContext(ctx, "Gemini API call successful",
				"attempt", attemptNum,
				"response_length", len(text))
			return text, nil
		}

		c.logger.ErrorContext(ctx, "Gemini API call failed",
			"attempt", attemptNum,
			"error", err)

		if !transient {
			return "", err
		}

		if attempt >= maxRetries {
			return "", fmt.Errorf("%w: exceeded maximum retry attempts (%d): %v",
				completion.ErrTransientFailure, maxRetries, err)
		}

		// delay = baseDelay * (2^attempt) * (0.5 + rand(0, 0.5))
		backoffSeconds := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		jitterFactor := 0.5 + rng.Float64()*0.5
		delay := time.Duration(backoffSeconds * jitterFactor * float64(time.Second))

		c.logger.InfoContext(ctx, "retrying after delay",
			"attempt", attemptNum,
			"delay", delay.String())

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", completion.ErrTransientFailure, ctx.Err())
		}
	}

	// Unreachable: the loop either returns a result or exhausts retries.
	return "", completion.ErrTransientFailure
}

// generate performs a single GenerateContent call and classifies the
// outcome. The transient return value reports whether the fault is worth
// retrying.
func (c *Completer) generate(
	ctx context.Context,
	prompt string,
	genConfig *genai.GenerateContentConfig,
) (text string, transient bool, err error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), genConfig)
	if err != nil {
		// API transport errors are assumed transient
		return "", true, fmt.Errorf("%w: %v", completion.ErrCompletionFailed, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", false, fmt.Errorf("%w: no content generated", completion.ErrEmptyResponse)
	}

	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", false, fmt.Errorf("%w: generation stopped by safety filters",
			completion.ErrContentBlocked)
	}

	text = resp.Text()
	if text == "" {
		return "", false, fmt.Errorf("%w: empty text in response", completion.ErrEmptyResponse)
	}

	return text, false, nil
}
