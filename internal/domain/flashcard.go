package domain

import (
	"time"

	"github.com/google/uuid"
)

// SM-2 defaults for a freshly created card.
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
	InitialInterval   = 1
)

// MemoryState holds the SM-2 scheduling parameters of a single flashcard.
// NextReviewDate has day granularity: it is always midnight UTC of a calendar date.
type MemoryState struct {
	Difficulty     int
	Interval       int
	Repetitions    int
	EaseFactor     float64
	NextReviewDate time.Time
}

// NewMemoryState returns the state of a card that has never been reviewed.
// The card is due on the given day.
func NewMemoryState(today time.Time) MemoryState {
	return MemoryState{
		Difficulty:     0,
		Interval:       InitialInterval,
		Repetitions:    0,
		EaseFactor:     DefaultEaseFactor,
		NextReviewDate: DateOnly(today),
	}
}

// IsDue reports whether the card should be reviewed on the given day.
func (m MemoryState) IsDue(today time.Time) bool {
	return !m.NextReviewDate.After(DateOnly(today))
}

// Flashcard is a question/answer pair owned by a user, carrying its MemoryState.
type Flashcard struct {
	ID        int64
	UserID    uuid.UUID
	ConceptID *int64
	Question  string
	Answer    string
	Tags      []string
	Memory    MemoryState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Concept is a unit of study material. Concepts are produced by document processing
// outside this service; here they are read-only.
type Concept struct {
	ID          int64
	UserID      uuid.UUID
	Title       string
	Description string
	Tags        []string
	CreatedAt   time.Time
}
