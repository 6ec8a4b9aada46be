package interleaved

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/studyhub-backend/internal/domain"
	"github.com/heartmarshall/studyhub-backend/pkg/ctxutil"
)

// UnknownConceptTitle is shown for questions whose concept no longer exists.
const UnknownConceptTitle = "Unknown Concept"

// ListSessions returns the caller's sessions, newest first.
func (s *Service) ListSessions(ctx context.Context) ([]*domain.InterleavedSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sessions, err := s.sessions.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// GetSession returns a session owned by the caller.
func (s *Service) GetSession(ctx context.Context, sessionID int64) (*domain.InterleavedSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := validateID("session_id", sessionID); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if err := ownedSession(session, userID); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSessionQuestions returns the questions of a session in presentation order,
// each paired with its concept title.
func (s *Service) GetSessionQuestions(ctx context.Context, sessionID int64) ([]domain.QuestionWithConcept, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questions.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	titles := make(map[int64]string, len(session.ConceptIDs))
	if len(session.ConceptIDs) > 0 {
		concepts, err := s.concepts.GetByIDs(ctx, session.UserID, session.ConceptIDs)
		if err != nil {
			return nil, fmt.Errorf("get concepts: %w", err)
		}
		for _, c := range concepts {
			titles[c.ID] = c.Title
		}
	}

	out := make([]domain.QuestionWithConcept, 0, len(questions))
	for _, q := range questions {
		title, ok := titles[q.ConceptID]
		if !ok {
			title = UnknownConceptTitle
		}
		out = append(out, domain.QuestionWithConcept{InterleavedQuestion: *q, ConceptTitle: title})
	}
	return out, nil
}

// CompleteSession moves a session to its terminal state. Completing an already
// completed session returns it unchanged.
func (s *Service) CompleteSession(ctx context.Context, sessionID int64) (*domain.InterleavedSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := validateID("session_id", sessionID); err != nil {
		return nil, err
	}

	var (
		session      *domain.InterleavedSession
		transitioned bool
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.sessions.GetByIDForUpdate(txCtx, sessionID)
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}
		if err := ownedSession(current, userID); err != nil {
			return err
		}
		if current.IsCompleted() {
			session = current
			return nil
		}

		now := s.clock.Now().UTC()
		duration := max(0, int(now.Sub(current.CreatedAt).Minutes()))

		session, err = s.sessions.Complete(txCtx, current.ID, now, duration)
		if err != nil {
			return fmt.Errorf("complete session: %w", err)
		}
		transitioned = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if transitioned {
		p := session.Progress()
		s.log.InfoContext(ctx, "interleaved session completed",
			slog.String("user_id", userID.String()),
			slog.Int64("session_id", session.ID),
			slog.Int("answered", p.Answered),
			slog.Int("correct", p.Correct),
			slog.Int("total", p.Total),
		)
	}

	return session, nil
}
