package gemini

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autoanki/autoanki-api/internal/completion"
	"github.com/autoanki/autoanki-api/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewCompleterValidation(t *testing.T) {
	t.Parallel()

	validCfg := config.LLMConfig{
		Provider: config.ProviderGemini,
		Model:    "gemini-2.0-flash",
		APIKey:   "test-api-key",
	}

	// Nil logger
	_, err := NewCompleter(context.Background(), nil, validCfg)
	assert.Error(t, err)

	// Missing API key
	cfg := validCfg
	cfg.APIKey = ""
	_, err = NewCompleter(context.Background(), testLogger(), cfg)
	assert.ErrorIs(t, err, completion.ErrInvalidConfig)

	// Missing model name
	cfg = validCfg
	cfg.Model = ""
	_, err = NewCompleter(context.Background(), testLogger(), cfg)
	assert.ErrorIs(t, err, completion.ErrInvalidConfig)
}
