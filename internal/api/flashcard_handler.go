package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/autoanki/autoanki-api/internal/api/shared"
	"github.com/autoanki/autoanki-api/internal/domain"
)

// FlashcardGenerator is the workflow entry point the handler depends on.
// Implemented by workflow.Orchestrator.
type FlashcardGenerator interface {
	GenerateFlashcards(ctx context.Context, instruction string) (*domain.WorkflowState, error)
}

// GenerateFlashcardsRequest represents the request body for generating
// flashcards. The API rejects empty instructions even though the workflow
// core would accept them; validation is a caller-side concern.
type GenerateFlashcardsRequest struct {
	Instruction string `json:"instruction" validate:"required,min=1"`
}

// WorkflowInfo carries run metadata in the response.
type WorkflowInfo struct {
	ID        string    `json:"id"`
	LastStage string    `json:"last_stage"`
	CreatedAt time.Time `json:"created_at"`
	CardCount int       `json:"card_count"`
}

// GenerateFlashcardsResponse represents the response data for a completed
// workflow run.
type GenerateFlashcardsResponse struct {
	Instruction  string             `json:"instruction"`
	Lesson       string             `json:"lesson"`
	Flashcards   []domain.Flashcard `json:"flashcards"`
	Status       string             `json:"status"`
	WorkflowInfo WorkflowInfo       `json:"workflow_info"`
}

// FlashcardHandler handles flashcard generation HTTP requests
type FlashcardHandler struct {
	generator FlashcardGenerator
	validator *validator.Validate
	logger    *slog.Logger
}

// NewFlashcardHandler creates a new FlashcardHandler
func NewFlashcardHandler(generator FlashcardGenerator, logger *slog.Logger) *FlashcardHandler {
	return &FlashcardHandler{
		generator: generator,
		validator: validator.New(),
		logger:    logger,
	}
}

// GenerateFlashcards handles POST /api/flashcards requests
func (h *FlashcardHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	var req GenerateFlashcardsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: instruction is required", err)
		return
	}

	state, err := h.generator.GenerateFlashcards(r.Context(), req.Instruction)
	if err != nil {
		h.logger.Error("flashcard generation failed",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stateToResponse(state))
}

// stateToResponse converts a domain.WorkflowState to the response DTO
func stateToResponse(state *domain.WorkflowState) GenerateFlashcardsResponse {
	return GenerateFlashcardsResponse{
		Instruction: state.Instruction,
		Lesson:      state.Lesson,
		Flashcards:  state.Flashcards,
		Status:      string(state.Status),
		WorkflowInfo: WorkflowInfo{
			ID:        state.ID.String(),
			LastStage: state.LastStage,
			CreatedAt: state.CreatedAt,
			CardCount: len(state.Flashcards),
		},
	}
}
