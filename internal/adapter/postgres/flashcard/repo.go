// Package flashcard implements the Flashcard repository using PostgreSQL.
// The SM-2 memory state is stored in columns of the flashcards row itself.
package flashcard

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/studyhub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyhub-backend/internal/domain"
)

const table = "flashcards"

var columns = []string{
	"id", "user_id", "concept_id", "question", "answer", "tags",
	"difficulty", "interval_days", "repetitions", "ease_factor", "next_review_date",
	"created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new flashcard repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a flashcard by primary key. Ownership is checked by the caller.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Flashcard, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate is GetByID with a row lock held until the surrounding
// transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Flashcard, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id int64, forUpdate bool) (*domain.Flashcard, error) {
	b := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})
	if forUpdate {
		b = b.Suffix("FOR UPDATE")
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get flashcard query: %w", err)
	}

	card, err := scanFlashcard(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", id)
	}
	return card, nil
}

// ListByUser returns all flashcards of a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Flashcard, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list flashcards query: %w", err)
	}

	return r.list(ctx, "list flashcards", query, args)
}

// ListDue returns the flashcards of a user whose next review date is on or
// before today, ordered by (next_review_date, id). A non-positive limit means no limit.
func (r *Repo) ListDue(ctx context.Context, userID uuid.UUID, today time.Time, limit int) ([]*domain.Flashcard, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.LtOrEq{"next_review_date": domain.DateOnly(today)}).
		OrderBy("next_review_date", "id")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build due flashcards query: %w", err)
	}

	return r.list(ctx, "list due flashcards", query, args)
}

func (r *Repo) list(ctx context.Context, op, query string, args []any) ([]*domain.Flashcard, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	cards := make([]*domain.Flashcard, 0)
	for rows.Next() {
		card, err := scanFlashcard(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cards, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new flashcard with its initial memory state.
func (r *Repo) Create(ctx context.Context, card *domain.Flashcard) (*domain.Flashcard, error) {
	tags := card.Tags
	if tags == nil {
		tags = []string{}
	}
	m := card.Memory

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(
			"user_id", "concept_id", "question", "answer", "tags",
			"difficulty", "interval_days", "repetitions", "ease_factor", "next_review_date",
		).
		Values(
			card.UserID, card.ConceptID, card.Question, card.Answer, tags,
			m.Difficulty, m.Interval, m.Repetitions, m.EaseFactor, domain.DateOnly(m.NextReviewDate),
		).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create flashcard query: %w", err)
	}

	created, err := scanFlashcard(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", "new")
	}
	return created, nil
}

// UpdateMemory replaces the memory state of a flashcard.
func (r *Repo) UpdateMemory(ctx context.Context, id int64, m domain.MemoryState) (*domain.Flashcard, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("difficulty", m.Difficulty).
		Set("interval_days", m.Interval).
		Set("repetitions", m.Repetitions).
		Set("ease_factor", m.EaseFactor).
		Set("next_review_date", domain.DateOnly(m.NextReviewDate)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update memory query: %w", err)
	}

	card, err := scanFlashcard(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", id)
	}
	return card, nil
}

// Delete removes a flashcard and its memory state.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete flashcard query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "flashcard", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("flashcard %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanFlashcard(row pgx.Row) (*domain.Flashcard, error) {
	var c domain.Flashcard
	err := row.Scan(
		&c.ID, &c.UserID, &c.ConceptID, &c.Question, &c.Answer, &c.Tags,
		&c.Memory.Difficulty, &c.Memory.Interval, &c.Memory.Repetitions,
		&c.Memory.EaseFactor, &c.Memory.NextReviewDate,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	c.Memory.NextReviewDate = domain.DateOnly(c.Memory.NextReviewDate)
	return &c, nil
}
