package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/studyhub-backend/internal/domain"
	"github.com/heartmarshall/studyhub-backend/internal/service/interleaved"
)

// interleavedService defines the minimal interface needed by SessionHandler.
type interleavedService interface {
	CreateSession(ctx context.Context, input interleaved.CreateSessionInput) (*domain.InterleavedSession, error)
	ListSessions(ctx context.Context) ([]*domain.InterleavedSession, error)
	GetSession(ctx context.Context, sessionID int64) (*domain.InterleavedSession, error)
	GetSessionQuestions(ctx context.Context, sessionID int64) ([]domain.QuestionWithConcept, error)
	SubmitAnswer(ctx context.Context, input interleaved.SubmitAnswerInput) (*domain.AnswerResult, error)
	CompleteSession(ctx context.Context, sessionID int64) (*domain.InterleavedSession, error)
}

// SessionHandler serves interleaved session REST endpoints.
type SessionHandler struct {
	svc interleavedService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc interleavedService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "interleaved")}
}

// Create handles POST /api/interleaved-sessions. Difficulty defaults to medium.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	difficulty := domain.Difficulty(req.Difficulty)
	if difficulty == "" {
		difficulty = domain.DifficultyMedium
	}

	session, err := h.svc.CreateSession(r.Context(), interleaved.CreateSessionInput{
		Title:       req.Title,
		Description: req.Description,
		ConceptIDs:  req.ConceptIDs,
		Difficulty:  difficulty,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(session))
}

// List handles GET /api/interleaved-sessions.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.svc.ListSessions(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponses(sessions))
}

// Get handles GET /api/interleaved-sessions/{id}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	session, err := h.svc.GetSession(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// Questions handles GET /api/interleaved-sessions/{id}/questions.
func (h *SessionHandler) Questions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	questions, err := h.svc.GetSessionQuestions(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionResponses(questions))
}

// Answer handles POST /api/interleaved-questions/{id}/answer.
func (h *SessionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req submitAnswerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.SubmitAnswer(r.Context(), interleaved.SubmitAnswerInput{
		SessionID:  req.SessionID,
		QuestionID: id,
		Answer:     req.Answer,
		TimeSpent:  req.TimeSpent,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnswerResponse(result))
}

// Complete handles POST /api/interleaved-sessions/{id}/complete.
func (h *SessionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	session, err := h.svc.CompleteSession(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}
