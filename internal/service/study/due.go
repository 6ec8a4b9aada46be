package study

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/heartmarshall/studyhub-backend/internal/domain"
	"github.com/heartmarshall/studyhub-backend/pkg/ctxutil"
)

// DueCards yields the cards whose next review date is on or before today, ordered by
// review date and then by id. The input slice is not modified. Each range over the
// returned sequence recomputes the selection.
func DueCards(cards []*domain.Flashcard, today time.Time) iter.Seq[*domain.Flashcard] {
	return func(yield func(*domain.Flashcard) bool) {
		due := make([]*domain.Flashcard, 0, len(cards))
		for _, c := range cards {
			if c != nil && c.Memory.IsDue(today) {
				due = append(due, c)
			}
		}
		slices.SortStableFunc(due, compareDue)

		for _, c := range due {
			if !yield(c) {
				return
			}
		}
	}
}

func compareDue(a, b *domain.Flashcard) int {
	if c := a.Memory.NextReviewDate.Compare(b.Memory.NextReviewDate); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// DueFlashcards returns the caller's cards that are due today.
func (s *Service) DueFlashcards(ctx context.Context, input DueFlashcardsInput) ([]*domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxDueLimit); err != nil {
		return nil, err
	}
	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultDueLimit
	}

	today := s.today()

	cards, err := s.flashcards.ListDue(ctx, userID, today, limit)
	if err != nil {
		return nil, fmt.Errorf("list due flashcards: %w", err)
	}

	return slices.Collect(DueCards(cards, today)), nil
}
