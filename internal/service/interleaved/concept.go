package interleaved

import (
	"context"
	"fmt"

	"github.com/heartmarshall/studyhub-backend/internal/domain"
	"github.com/heartmarshall/studyhub-backend/pkg/ctxutil"
)

// ListConcepts returns the concepts the caller can build sessions from.
func (s *Service) ListConcepts(ctx context.Context) ([]*domain.Concept, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	concepts, err := s.concepts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list concepts: %w", err)
	}
	return concepts, nil
}

// GetConcept returns a concept owned by the caller.
func (s *Service) GetConcept(ctx context.Context, conceptID int64) (*domain.Concept, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := validateID("concept_id", conceptID); err != nil {
		return nil, err
	}

	concept, err := s.concepts.GetByID(ctx, conceptID)
	if err != nil {
		return nil, fmt.Errorf("get concept: %w", err)
	}
	if err := ownedConcept(concept, userID); err != nil {
		return nil, err
	}
	return concept, nil
}
