package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/studyhub-backend/internal/domain"
)

// conceptService defines the minimal interface needed by ConceptHandler.
type conceptService interface {
	ListConcepts(ctx context.Context) ([]*domain.Concept, error)
	GetConcept(ctx context.Context, conceptID int64) (*domain.Concept, error)
}

// ConceptHandler serves the read-only concept endpoints that sessions are built from.
type ConceptHandler struct {
	svc conceptService
	log *slog.Logger
}

// NewConceptHandler creates a ConceptHandler.
func NewConceptHandler(svc conceptService, logger *slog.Logger) *ConceptHandler {
	return &ConceptHandler{svc: svc, log: logger.With("handler", "concept")}
}

// List handles GET /api/concepts.
func (h *ConceptHandler) List(w http.ResponseWriter, r *http.Request) {
	concepts, err := h.svc.ListConcepts(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toConceptResponses(concepts))
}

// Get handles GET /api/concepts/{id}.
func (h *ConceptHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	concept, err := h.svc.GetConcept(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toConceptResponse(concept))
}
