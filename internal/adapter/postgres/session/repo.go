// Package session implements the InterleavedSession repository using PostgreSQL.
// Aggregate counters are written by the service from recomputed question totals.
package session

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

const table = "interleaved_sessions"

var columns = []string{
	"id", "user_id", "title", "description", "concept_ids", "difficulty",
	"total_questions", "questions_answered", "correct_answers", "is_active",
	"duration_minutes", "completed_at", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides interleaved session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a session by primary key. Ownership is checked by the caller.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.InterleavedSession, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate is GetByID with a row lock. Answer submissions and completion
// of the same session serialize on this lock.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.InterleavedSession, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id int64, forUpdate bool) (*domain.InterleavedSession, error) {
	b := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})
	if forUpdate {
		b = b.Suffix("FOR UPDATE")
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get session query: %w", err)
	}

	s, err := scanSession(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "session", id)
	}
	return s, nil
}

// ListByUser returns the sessions of a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.InterleavedSession, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list sessions query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]*domain.InterleavedSession, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("list sessions: scan: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return sessions, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new active session with zeroed counters.
func (r *Repo) Create(ctx context.Context, s *domain.InterleavedSession) (*domain.InterleavedSession, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "title", "description", "concept_ids", "difficulty", "total_questions").
		Values(s.UserID, s.Title, s.Description, s.ConceptIDs, string(s.Difficulty), s.TotalQuestions).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create session query: %w", err)
	}

	created, err := scanSession(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "session", "new")
	}
	return created, nil
}

// UpdateCounts stores the answered/correct totals of a session.
func (r *Repo) UpdateCounts(ctx context.Context, id int64, counts domain.SessionCounts) (*domain.InterleavedSession, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("questions_answered", counts.Answered).
		Set("correct_answers", counts.Correct).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update counts query: %w", err)
	}

	s, err := scanSession(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "session", id)
	}
	return s, nil
}

// Complete moves a session to its terminal state.
func (r *Repo) Complete(ctx context.Context, id int64, completedAt time.Time, durationMinutes int) (*domain.InterleavedSession, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("is_active", false).
		Set("completed_at", completedAt.UTC()).
		Set("duration_minutes", durationMinutes).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build complete session query: %w", err)
	}

	s, err := scanSession(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "session", id)
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanSession(row pgx.Row) (*domain.InterleavedSession, error) {
	var (
		s          domain.InterleavedSession
		difficulty string
	)
	err := row.Scan(
		&s.ID, &s.UserID, &s.Title, &s.Description, &s.ConceptIDs, &difficulty,
		&s.TotalQuestions, &s.QuestionsAnswered, &s.CorrectAnswers, &s.IsActive,
		&s.DurationMinutes, &s.CompletedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Difficulty = domain.Difficulty(difficulty)
	if s.ConceptIDs == nil {
		s.ConceptIDs = []int64{}
	}
	return &s, nil
}
