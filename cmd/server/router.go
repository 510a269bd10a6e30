package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/autoanki/autoanki-api/internal/api"
	apiMiddleware "github.com/autoanki/autoanki-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	flashcardHandler := api.NewFlashcardHandler(app.orchestrator, app.logger)
	infoHandler := api.NewInfoHandler(app.config.LLM)

	r.Route("/api", func(r chi.Router) {
		r.Post("/flashcards", flashcardHandler.GenerateFlashcards)
		r.Get("/models", infoHandler.ModelInfo)
	})

	r.Get("/health", infoHandler.Health)

	return r
}
