package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/studyhub-backend/internal/domain"
	"github.com/heartmarshall/studyhub-backend/internal/service/study"
)

//go:generate moq -out services_mock_test.go -pkg rest . studyService conceptService interleavedService

// studyService defines the minimal interface needed by FlashcardHandler.
type studyService interface {
	CreateFlashcard(ctx context.Context, input study.CreateFlashcardInput) (*domain.Flashcard, error)
	GetFlashcard(ctx context.Context, id int64) (*domain.Flashcard, error)
	ListFlashcards(ctx context.Context) ([]*domain.Flashcard, error)
	DeleteFlashcard(ctx context.Context, id int64) error
	ReviewFlashcard(ctx context.Context, input study.ReviewFlashcardInput) (*domain.Flashcard, error)
	DueFlashcards(ctx context.Context, input study.DueFlashcardsInput) ([]*domain.Flashcard, error)
}

// FlashcardHandler serves flashcard REST endpoints.
type FlashcardHandler struct {
	svc studyService
	log *slog.Logger
}

// NewFlashcardHandler creates a FlashcardHandler.
func NewFlashcardHandler(svc studyService, logger *slog.Logger) *FlashcardHandler {
	return &FlashcardHandler{svc: svc, log: logger.With("handler", "flashcard")}
}

// Create handles POST /api/flashcards.
func (h *FlashcardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFlashcardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	card, err := h.svc.CreateFlashcard(r.Context(), study.CreateFlashcardInput{
		Question:  req.Question,
		Answer:    req.Answer,
		ConceptID: req.ConceptID,
		Tags:      req.Tags,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFlashcardResponse(card))
}

// List handles GET /api/flashcards. With due=true only the cards due today are
// returned, in review order.
func (h *FlashcardHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	due := false
	if raw := q.Get("due"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("due", "must be a boolean"))
			return
		}
		due = v
	}

	var (
		cards []*domain.Flashcard
		err   error
	)
	if due {
		limit := 0
		if raw := q.Get("limit"); raw != "" {
			if limit, err = strconv.Atoi(raw); err != nil {
				handleError(w, r, h.log, domain.NewValidationError("limit", "must be an integer"))
				return
			}
		}
		cards, err = h.svc.DueFlashcards(r.Context(), study.DueFlashcardsInput{Limit: limit})
	} else {
		cards, err = h.svc.ListFlashcards(r.Context())
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFlashcardResponses(cards))
}

// Get handles GET /api/flashcards/{id}.
func (h *FlashcardHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	card, err := h.svc.GetFlashcard(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFlashcardResponse(card))
}

// Review handles PATCH /api/flashcards/{id}: grades a recall with quality 0..5.
func (h *FlashcardHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req reviewFlashcardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	card, err := h.svc.ReviewFlashcard(r.Context(), study.ReviewFlashcardInput{
		FlashcardID: id,
		Quality:     *req.Quality,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFlashcardResponse(card))
}

// Delete handles DELETE /api/flashcards/{id}.
func (h *FlashcardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteFlashcard(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
