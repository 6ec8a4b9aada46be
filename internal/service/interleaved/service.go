package interleaved

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/studyhub-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg interleaved . conceptRepo sessionRepo questionRepo questionGenerator answerGrader txManager

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type conceptRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Concept, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Concept, error)
	// GetByIDs returns the concepts among ids that belong to userID, in any order.
	GetByIDs(ctx context.Context, userID uuid.UUID, ids []int64) ([]*domain.Concept, error)
}

type sessionRepo interface {
	Create(ctx context.Context, session *domain.InterleavedSession) (*domain.InterleavedSession, error)
	GetByID(ctx context.Context, id int64) (*domain.InterleavedSession, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.InterleavedSession, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.InterleavedSession, error)
	UpdateCounts(ctx context.Context, id int64, counts domain.SessionCounts) (*domain.InterleavedSession, error)
	Complete(ctx context.Context, id int64, completedAt time.Time, durationMinutes int) (*domain.InterleavedSession, error)
}

type questionRepo interface {
	CreateBatch(ctx context.Context, questions []*domain.InterleavedQuestion) ([]*domain.InterleavedQuestion, error)
	GetByID(ctx context.Context, id int64) (*domain.InterleavedQuestion, error)
	ListBySession(ctx context.Context, sessionID int64) ([]*domain.InterleavedQuestion, error)
	// RecordAnswer writes the answer once; an already answered question yields ErrConflict.
	RecordAnswer(ctx context.Context, id int64, record domain.AnswerRecord) (*domain.InterleavedQuestion, error)
	CountAnswers(ctx context.Context, sessionID int64) (domain.SessionCounts, error)
}

type questionGenerator interface {
	GenerateQuestions(ctx context.Context, concept *domain.Concept, difficulty domain.Difficulty, count int) ([]domain.GeneratedQuestion, error)
}

type answerGrader interface {
	IsAnswerCorrect(ctx context.Context, question, canonical, userAnswer string) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the session-building and grading settings.
type Config struct {
	QuestionsPerConcept      int
	MinConcepts              int
	MaxConcepts              int
	GenerationTimeout        time.Duration
	GradingTimeout           time.Duration
	MaxConcurrentGenerations int
}

// DefaultConfig returns the standard session settings.
func DefaultConfig() Config {
	return Config{
		QuestionsPerConcept:      5,
		MinConcepts:              2,
		MaxConcepts:              10,
		GenerationTimeout:        60 * time.Second,
		GradingTimeout:           10 * time.Second,
		MaxConcurrentGenerations: 4,
	}
}

// ShuffleFunc permutes n elements through swap. rand.Shuffle satisfies it.
type ShuffleFunc func(n int, swap func(i, j int))

// Service implements the interleaved session engine.
type Service struct {
	concepts  conceptRepo
	sessions  sessionRepo
	questions questionRepo
	generator questionGenerator
	grader    answerGrader
	tx        txManager
	clock     clockwork.Clock
	shuffle   ShuffleFunc
	cfg       Config
	log       *slog.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces the wall clock.
func WithClock(c clockwork.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithShuffle replaces the uniform random shuffle.
func WithShuffle(fn ShuffleFunc) Option {
	return func(s *Service) { s.shuffle = fn }
}

// NewService creates a new Interleaved service. grader may be nil, in which case
// every answer is graded by exact match.
func NewService(
	log *slog.Logger,
	concepts conceptRepo,
	sessions sessionRepo,
	questions questionRepo,
	generator questionGenerator,
	grader answerGrader,
	tx txManager,
	cfg Config,
	opts ...Option,
) *Service {
	def := DefaultConfig()
	if cfg.QuestionsPerConcept <= 0 {
		cfg.QuestionsPerConcept = def.QuestionsPerConcept
	}
	if cfg.MinConcepts <= 0 {
		cfg.MinConcepts = def.MinConcepts
	}
	if cfg.MaxConcepts < cfg.MinConcepts {
		cfg.MaxConcepts = max(def.MaxConcepts, cfg.MinConcepts)
	}
	if cfg.GenerationTimeout <= 0 {
		cfg.GenerationTimeout = def.GenerationTimeout
	}
	if cfg.GradingTimeout <= 0 {
		cfg.GradingTimeout = def.GradingTimeout
	}
	if cfg.MaxConcurrentGenerations <= 0 {
		cfg.MaxConcurrentGenerations = def.MaxConcurrentGenerations
	}

	s := &Service{
		concepts:  concepts,
		sessions:  sessions,
		questions: questions,
		generator: generator,
		grader:    grader,
		tx:        tx,
		clock:     clockwork.NewRealClock(),
		shuffle:   rand.Shuffle,
		cfg:       cfg,
		log:       log.With("service", "interleaved"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ownedSession enforces that session belongs to userID.
func ownedSession(session *domain.InterleavedSession, userID uuid.UUID) error {
	if session.UserID != userID {
		return domain.ErrForbidden
	}
	return nil
}

func ownedConcept(concept *domain.Concept, userID uuid.UUID) error {
	if concept.UserID != userID {
		return domain.ErrForbidden
	}
	return nil
}
