package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/studyhub-backend/internal/domain"
	"github.com/heartmarshall/studyhub-backend/internal/service/study/sm2"
	"github.com/heartmarshall/studyhub-backend/pkg/ctxutil"
)

// ReviewFlashcard grades one recall attempt and reschedules the card with SM-2.
// The read-modify-write runs under a row lock so concurrent reviews of the same
// card are serialized.
func (s *Service) ReviewFlashcard(ctx context.Context, input ReviewFlashcardInput) (*domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	today := s.today()

	var (
		before  domain.MemoryState
		updated *domain.Flashcard
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		card, err := s.flashcards.GetByIDForUpdate(txCtx, input.FlashcardID)
		if err != nil {
			return fmt.Errorf("get flashcard: %w", err)
		}
		if err := ownedFlashcard(card, userID); err != nil {
			return err
		}
		before = card.Memory

		next, err := sm2.Schedule(sm2.Quality(input.Quality), card.Memory, today)
		if err != nil {
			return err
		}

		updated, err = s.flashcards.UpdateMemory(txCtx, card.ID, next)
		if err != nil {
			return fmt.Errorf("update memory state: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "flashcard reviewed",
		slog.String("user_id", userID.String()),
		slog.Int64("flashcard_id", updated.ID),
		slog.Int("quality", input.Quality),
		slog.Int("old_interval", before.Interval),
		slog.Int("new_interval", updated.Memory.Interval),
		slog.Float64("ease_factor", updated.Memory.EaseFactor),
		slog.String("next_review", updated.Memory.NextReviewDate.Format(time.DateOnly)),
	)

	return updated, nil
}
