package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/studyhub-backend/internal/domain"
)

//go:generate moq -out flashcard_repo_mock_test.go -pkg study . flashcardRepo
//go:generate moq -out tx_manager_mock_test.go -pkg study . txManager

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type flashcardRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Flashcard, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Flashcard, error)
	Create(ctx context.Context, card *domain.Flashcard) (*domain.Flashcard, error)
	UpdateMemory(ctx context.Context, id int64, memory domain.MemoryState) (*domain.Flashcard, error)
	Delete(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Flashcard, error)
	ListDue(ctx context.Context, userID uuid.UUID, today time.Time, limit int) ([]*domain.Flashcard, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the scheduling settings of the study service.
type Config struct {
	// Timezone decides which calendar day "today" is.
	Timezone        *time.Location
	DefaultDueLimit int
	MaxDueLimit     int
}

// Service implements flashcard management and SM-2 reviews.
type Service struct {
	flashcards flashcardRepo
	tx         txManager
	clock      clockwork.Clock
	cfg        Config
	log        *slog.Logger
}

// NewService creates a new Study service.
func NewService(
	log *slog.Logger,
	flashcards flashcardRepo,
	tx txManager,
	clock clockwork.Clock,
	cfg Config,
) *Service {
	if cfg.Timezone == nil {
		cfg.Timezone = time.UTC
	}
	if cfg.MaxDueLimit <= 0 {
		cfg.MaxDueLimit = 200
	}
	if cfg.DefaultDueLimit <= 0 || cfg.DefaultDueLimit > cfg.MaxDueLimit {
		cfg.DefaultDueLimit = min(50, cfg.MaxDueLimit)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Service{
		flashcards: flashcards,
		tx:         tx,
		clock:      clock,
		cfg:        cfg,
		log:        log.With("service", "study"),
	}
}

// today returns the current calendar date in the configured timezone.
func (s *Service) today() time.Time {
	return domain.Today(s.clock.Now(), s.cfg.Timezone)
}

// ownedFlashcard enforces that card belongs to userID.
func ownedFlashcard(card *domain.Flashcard, userID uuid.UUID) error {
	if card.UserID != userID {
		return domain.ErrForbidden
	}
	return nil
}
