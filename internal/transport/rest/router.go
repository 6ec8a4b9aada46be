package rest

import "net/http"

// NewRouter registers the health probes and the study API on a single mux.
func NewRouter(health *HealthHandler, flashcards *FlashcardHandler, concepts *ConceptHandler, sessions *SessionHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /api/flashcards", flashcards.Create)
	mux.HandleFunc("GET /api/flashcards", flashcards.List)
	mux.HandleFunc("GET /api/flashcards/{id}", flashcards.Get)
	mux.HandleFunc("PATCH /api/flashcards/{id}", flashcards.Review)
	mux.HandleFunc("DELETE /api/flashcards/{id}", flashcards.Delete)

	mux.HandleFunc("GET /api/concepts", concepts.List)
	mux.HandleFunc("GET /api/concepts/{id}", concepts.Get)

	mux.HandleFunc("POST /api/interleaved-sessions", sessions.Create)
	mux.HandleFunc("GET /api/interleaved-sessions", sessions.List)
	mux.HandleFunc("GET /api/interleaved-sessions/{id}", sessions.Get)
	mux.HandleFunc("GET /api/interleaved-sessions/{id}/questions", sessions.Questions)
	mux.HandleFunc("POST /api/interleaved-sessions/{id}/complete", sessions.Complete)
	mux.HandleFunc("POST /api/interleaved-questions/{id}/answer", sessions.Answer)

	return mux
}
