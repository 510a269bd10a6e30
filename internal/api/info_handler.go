package api

import (
	"net/http"

	"github.com/autoanki/autoanki-api/internal/api/shared"
	"github.com/autoanki/autoanki-api/internal/config"
)

// HealthResponse represents the health check payload.
type HealthResponse struct {
	Status string `json:"status"`
}

// ModelInfoResponse describes the configured completion backend.
type ModelInfoResponse struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// InfoHandler serves health and model info endpoints.
type InfoHandler struct {
	llmConfig config.LLMConfig
}

// NewInfoHandler creates a new InfoHandler.
func NewInfoHandler(llmConfig config.LLMConfig) *InfoHandler {
	return &InfoHandler{llmConfig: llmConfig}
}

// Health handles GET /health requests
func (h *InfoHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "healthy"})
}

// ModelInfo handles GET /api/models requests
func (h *InfoHandler) ModelInfo(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, ModelInfoResponse{
		Provider: h.llmConfig.Provider,
		Model:    h.llmConfig.Model,
	})
}
