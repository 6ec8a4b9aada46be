package interleaved

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/studyhub-backend/internal/domain"
	"github.com/heartmarshall/studyhub-backend/pkg/ctxutil"
)

// CreateSession builds a session from the caller's concepts. It asks the generation
// oracle for a fixed number of questions per concept, shuffles the concatenation and
// stores session and questions in one transaction. Any oracle failure aborts the whole
// creation before anything is persisted.
func (s *Service) CreateSession(ctx context.Context, input CreateSessionInput) (*domain.InterleavedSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Title = strings.TrimSpace(input.Title)
	input.ConceptIDs = dedupeIDs(input.ConceptIDs)
	if err := input.Validate(s.cfg.MinConcepts, s.cfg.MaxConcepts); err != nil {
		return nil, err
	}

	concepts, err := s.ownedConcepts(ctx, userID, input.ConceptIDs)
	if err != nil {
		return nil, err
	}

	questions, err := s.generate(ctx, concepts, input.Difficulty)
	if err != nil {
		return nil, err
	}

	s.shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	for i, q := range questions {
		q.OrderInSession = i
	}

	conceptIDs := make([]int64, len(concepts))
	for i, c := range concepts {
		conceptIDs[i] = c.ID
	}

	var session *domain.InterleavedSession

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		session, createErr = s.sessions.Create(txCtx, &domain.InterleavedSession{
			UserID:         userID,
			Title:          input.Title,
			Description:    input.Description,
			ConceptIDs:     conceptIDs,
			Difficulty:     input.Difficulty,
			TotalQuestions: len(questions),
			IsActive:       true,
		})
		if createErr != nil {
			return fmt.Errorf("create session: %w", createErr)
		}

		for _, q := range questions {
			q.SessionID = session.ID
		}
		if _, createErr = s.questions.CreateBatch(txCtx, questions); createErr != nil {
			return fmt.Errorf("create questions: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "interleaved session created",
		slog.String("user_id", userID.String()),
		slog.Int64("session_id", session.ID),
		slog.Int("concepts", len(concepts)),
		slog.Int("total_questions", session.TotalQuestions),
		slog.String("difficulty", input.Difficulty.String()),
	)

	return session, nil
}

// ownedConcepts loads the requested concepts that belong to userID, in request order.
func (s *Service) ownedConcepts(ctx context.Context, userID uuid.UUID, ids []int64) ([]*domain.Concept, error) {
	found, err := s.concepts.GetByIDs(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("get concepts: %w", err)
	}

	byID := make(map[int64]*domain.Concept, len(found))
	for _, c := range found {
		if c.UserID == userID {
			byID[c.ID] = c
		}
	}

	concepts := make([]*domain.Concept, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			concepts = append(concepts, c)
		}
	}

	if len(concepts) < s.cfg.MinConcepts {
		return nil, domain.NewValidationError("concept_ids",
			fmt.Sprintf("at least %d valid concepts required, found %d", s.cfg.MinConcepts, len(concepts)))
	}
	return concepts, nil
}

// generate requests questions for every concept concurrently. The result keeps concept
// order and contains exactly QuestionsPerConcept questions per concept.
func (s *Service) generate(ctx context.Context, concepts []*domain.Concept, difficulty domain.Difficulty) ([]*domain.InterleavedQuestion, error) {
	genCtx, cancel := context.WithTimeout(ctx, s.cfg.GenerationTimeout)
	defer cancel()

	perConcept := make([][]domain.GeneratedQuestion, len(concepts))
	count := s.cfg.QuestionsPerConcept

	g, gctx := errgroup.WithContext(genCtx)
	g.SetLimit(s.cfg.MaxConcurrentGenerations)

	for i, c := range concepts {
		g.Go(func() error {
			items, err := s.generator.GenerateQuestions(gctx, c, difficulty, count)
			if err != nil {
				return asOracleError(c.ID, "question generation failed", err)
			}
			items = usableQuestions(items)
			if len(items) < count {
				return domain.NewOracleError(c.ID,
					fmt.Sprintf("expected %d questions, got %d usable", count, len(items)), nil)
			}
			perConcept[i] = items[:count]
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "question generation failed",
			slog.Int("concepts", len(concepts)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	questions := make([]*domain.InterleavedQuestion, 0, len(concepts)*count)
	for i, items := range perConcept {
		for _, item := range items {
			questions = append(questions, &domain.InterleavedQuestion{
				ConceptID:    concepts[i].ID,
				Question:     item.Question,
				Answer:       item.Answer,
				QuestionType: item.Type,
				Options:      item.Options,
			})
		}
	}
	return questions, nil
}

// usableQuestions drops malformed oracle items. Options are kept only for
// multiple-choice questions, which must carry at least two of them.
func usableQuestions(items []domain.GeneratedQuestion) []domain.GeneratedQuestion {
	out := make([]domain.GeneratedQuestion, 0, len(items))
	for _, item := range items {
		item.Question = strings.TrimSpace(item.Question)
		item.Answer = strings.TrimSpace(item.Answer)
		if item.Question == "" || item.Answer == "" || !item.Type.IsValid() {
			continue
		}
		if item.Type == domain.QuestionTypeMultipleChoice {
			if len(item.Options) < 2 {
				continue
			}
		} else {
			item.Options = nil
		}
		out = append(out, item)
	}
	return out
}

func asOracleError(conceptID int64, reason string, err error) error {
	var oe *domain.OracleError
	if errors.As(err, &oe) {
		return err
	}
	return domain.NewOracleError(conceptID, reason, err)
}
