package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoanki/autoanki-api/internal/api"
	"github.com/autoanki/autoanki-api/internal/config"
	"github.com/autoanki/autoanki-api/internal/domain"
	"github.com/autoanki/autoanki-api/internal/workflow"
)

// scriptedCompleter returns canned responses in call order.
type scriptedCompleter struct {
	responses []string
	calls     int
}

func (c *scriptedCompleter) Complete(_ context.Context, _ string) (string, error) {
	resp := ""
	if c.calls < len(c.responses) {
		resp = c.responses[c.calls]
	}
	c.calls++
	return resp, nil
}

func testApplication(t *testing.T, completerResponses []string) *application {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	completer := &scriptedCompleter{responses: completerResponses}

	orchestrator, err := workflow.NewOrchestrator(completer, logger)
	require.NoError(t, err)

	return &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 8000, LogLevel: "info"},
			LLM: config.LLMConfig{
				Provider: config.ProviderOllama,
				Model:    "deepseek-r1:8b",
			},
		},
		logger:       logger,
		completer:    completer,
		orchestrator: orchestrator,
	}
}

func TestRouterHealth(t *testing.T) {
	t.Parallel()

	app := testApplication(t, nil)
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestRouterModelInfo(t *testing.T) {
	t.Parallel()

	app := testApplication(t, nil)
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/models", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.ModelInfoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, config.ProviderOllama, resp.Provider)
	assert.Equal(t, "deepseek-r1:8b", resp.Model)
}

func TestRouterGenerateFlashcards(t *testing.T) {
	t.Parallel()

	app := testApplication(t, []string{
		"A mini lesson about the French Revolution.",
		`[{"question":"When did it begin?","answer":"1789","category":"fact"}]`,
	})
	router := app.setupRouter()

	body := `{"instruction": "Generate flashcards about the French Revolution"}`
	req := httptest.NewRequest(http.MethodPost, "/api/flashcards", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.GenerateFlashcardsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Generate flashcards about the French Revolution", resp.Instruction)
	assert.Equal(t, "A mini lesson about the French Revolution.", resp.Lesson)
	assert.Equal(t, string(domain.WorkflowStatusCardsComplete), resp.Status)
	require.Len(t, resp.Flashcards, 1)
	assert.Equal(t, "When did it begin?", resp.Flashcards[0].Question)
	assert.Equal(t, "1789", resp.Flashcards[0].Answer)
}

func TestNewCompleterSelection(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Ollama needs no API key
	c, err := newCompleter(context.Background(), config.LLMConfig{
		Provider: config.ProviderOllama,
		Model:    "deepseek-r1:8b",
	}, logger)
	require.NoError(t, err)
	assert.NotNil(t, c)

	// Unknown provider is rejected
	_, err = newCompleter(context.Background(), config.LLMConfig{
		Provider: "bard",
		Model:    "m",
	}, logger)
	assert.Error(t, err)
}
