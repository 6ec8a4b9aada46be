package interleaved

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/studyhub-backend/internal/domain"
	"github.com/heartmarshall/studyhub-backend/pkg/ctxutil"
)

// SubmitAnswer grades and records the caller's answer to one question, then recomputes
// the session totals from its questions. Answers are write-once and a completed
// session accepts no answers; both cases return ErrConflict.
func (s *Service) SubmitAnswer(ctx context.Context, input SubmitAnswerInput) (*domain.AnswerResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	question, err := s.questions.GetByID(ctx, input.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}
	if input.SessionID != 0 && question.SessionID != input.SessionID {
		return nil, fmt.Errorf("question %d in session %d: %w", input.QuestionID, input.SessionID, domain.ErrNotFound)
	}

	session, err := s.sessions.GetByID(ctx, question.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if err := ownedSession(session, userID); err != nil {
		return nil, err
	}
	if err := answerable(session, question); err != nil {
		return nil, err
	}

	isCorrect, gradedBy := s.grade(ctx, question, input.Answer)

	var updated *domain.InterleavedSession

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		locked, err := s.sessions.GetByIDForUpdate(txCtx, question.SessionID)
		if err != nil {
			return fmt.Errorf("lock session: %w", err)
		}
		if locked.IsCompleted() {
			return fmt.Errorf("session %d: %w: session is completed", locked.ID, domain.ErrConflict)
		}

		if _, err := s.questions.RecordAnswer(txCtx, question.ID, domain.AnswerRecord{
			UserAnswer: input.Answer,
			IsCorrect:  isCorrect,
			TimeSpent:  input.TimeSpent,
		}); err != nil {
			return fmt.Errorf("record answer: %w", err)
		}

		counts, err := s.questions.CountAnswers(txCtx, locked.ID)
		if err != nil {
			return fmt.Errorf("count answers: %w", err)
		}

		updated, err = s.sessions.UpdateCounts(txCtx, locked.ID, counts)
		if err != nil {
			return fmt.Errorf("update session counts: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "interleaved answer submitted",
		slog.String("user_id", userID.String()),
		slog.Int64("session_id", updated.ID),
		slog.Int64("question_id", question.ID),
		slog.Bool("is_correct", isCorrect),
		slog.String("graded_by", gradedBy.String()),
		slog.Int("time_spent", input.TimeSpent),
	)

	return &domain.AnswerResult{
		QuestionID:      question.ID,
		IsCorrect:       isCorrect,
		CanonicalAnswer: question.Answer,
		GradedBy:        gradedBy,
		Progress:        updated.Progress(),
	}, nil
}

func answerable(session *domain.InterleavedSession, question *domain.InterleavedQuestion) error {
	if session.IsCompleted() {
		return fmt.Errorf("session %d: %w: session is completed", session.ID, domain.ErrConflict)
	}
	if question.IsAnswered() {
		return fmt.Errorf("question %d: %w: already answered", question.ID, domain.ErrConflict)
	}
	return nil
}

// grade decides correctness. Closed question types and blank answers use exact match.
// Short answers go to the grading oracle under a timeout; if it fails, exact match is
// used instead.
func (s *Service) grade(ctx context.Context, question *domain.InterleavedQuestion, answer string) (bool, domain.GradedBy) {
	if question.QuestionType.IsClosed() || s.grader == nil || strings.TrimSpace(answer) == "" {
		return domain.AnswersMatch(answer, question.Answer), domain.GradedByExactMatch
	}

	gradeCtx, cancel := context.WithTimeout(ctx, s.cfg.GradingTimeout)
	defer cancel()

	ok, err := s.grader.IsAnswerCorrect(gradeCtx, question.Question, question.Answer, answer)
	if err != nil {
		s.log.WarnContext(ctx, "grading oracle failed, using exact match",
			slog.Int64("question_id", question.ID),
			slog.Bool("grading_fallback", true),
			slog.String("error", err.Error()),
		)
		return domain.AnswersMatch(answer, question.Answer), domain.GradedByFallback
	}
	return ok, domain.GradedByOracle
}
