package study

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/studyhub-backend/internal/domain"
	"github.com/heartmarshall/studyhub-backend/pkg/ctxutil"
)

// CreateFlashcard stores a new card with the default memory state. The card is due today.
func (s *Service) CreateFlashcard(ctx context.Context, input CreateFlashcardInput) (*domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Question = strings.TrimSpace(input.Question)
	input.Answer = strings.TrimSpace(input.Answer)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	card, err := s.flashcards.Create(ctx, &domain.Flashcard{
		UserID:    userID,
		ConceptID: input.ConceptID,
		Question:  input.Question,
		Answer:    input.Answer,
		Tags:      domain.NormalizeTags(input.Tags),
		Memory:    domain.NewMemoryState(s.today()),
	})
	if err != nil {
		return nil, fmt.Errorf("create flashcard: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard created",
		slog.String("user_id", userID.String()),
		slog.Int64("flashcard_id", card.ID),
	)

	return card, nil
}

// GetFlashcard returns a card owned by the caller.
func (s *Service) GetFlashcard(ctx context.Context, id int64) (*domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := validateID("flashcard_id", id); err != nil {
		return nil, err
	}

	card, err := s.flashcards.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get flashcard: %w", err)
	}
	if err := ownedFlashcard(card, userID); err != nil {
		return nil, err
	}

	return card, nil
}

// ListFlashcards returns all cards of the caller, newest first.
func (s *Service) ListFlashcards(ctx context.Context) ([]*domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	cards, err := s.flashcards.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	return cards, nil
}

// DeleteFlashcard removes a card together with its memory state.
func (s *Service) DeleteFlashcard(ctx context.Context, id int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := validateID("flashcard_id", id); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		card, err := s.flashcards.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("get flashcard: %w", err)
		}
		if err := ownedFlashcard(card, userID); err != nil {
			return err
		}
		if err := s.flashcards.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete flashcard: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "flashcard deleted",
		slog.String("user_id", userID.String()),
		slog.Int64("flashcard_id", id),
	)

	return nil
}
