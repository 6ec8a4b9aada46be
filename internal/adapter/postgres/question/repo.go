// Package question implements the InterleavedQuestion repository using PostgreSQL.
package question

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/studyhub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyhub-backend/internal/domain"
)

const table = "interleaved_questions"

var columns = []string{
	"id", "session_id", "concept_id", "question", "answer", "question_type", "options",
	"order_in_session", "user_answer", "is_correct", "time_spent", "created_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides interleaved question persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new question repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a question by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.InterleavedQuestion, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get question query: %w", err)
	}

	q, err := scanQuestion(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "question", id)
	}
	return q, nil
}

// ListBySession returns the questions of a session in presentation order.
func (r *Repo) ListBySession(ctx context.Context, sessionID int64) ([]*domain.InterleavedQuestion, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("order_in_session").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list questions query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return collect(rows, "list questions")
}

// CountAnswers recomputes the answered and correct totals of a session.
func (r *Repo) CountAnswers(ctx context.Context, sessionID int64) (domain.SessionCounts, error) {
	query, args, err := postgres.Builder().
		Select("COUNT(user_answer)", "COUNT(*) FILTER (WHERE is_correct)").
		From(table).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return domain.SessionCounts{}, fmt.Errorf("build count answers query: %w", err)
	}

	var counts domain.SessionCounts
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	if err := row.Scan(&counts.Answered, &counts.Correct); err != nil {
		return domain.SessionCounts{}, fmt.Errorf("count answers for session %d: %w", sessionID, err)
	}
	return counts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateBatch inserts all questions of a session in one statement and returns
// them ordered by order_in_session.
func (r *Repo) CreateBatch(ctx context.Context, questions []*domain.InterleavedQuestion) ([]*domain.InterleavedQuestion, error) {
	if len(questions) == 0 {
		return []*domain.InterleavedQuestion{}, nil
	}

	b := postgres.Builder().
		Insert(table).
		Columns("session_id", "concept_id", "question", "answer", "question_type", "options", "order_in_session")
	for _, q := range questions {
		b = b.Values(q.SessionID, q.ConceptID, q.Question, q.Answer, string(q.QuestionType), options(q), q.OrderInSession)
	}

	query, args, err := b.Suffix(returning).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create questions query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "questions", "batch")
	}
	created, err := collect(rows, "create questions")
	if err != nil {
		return nil, postgres.MapError(err, "questions", "batch")
	}

	slices.SortFunc(created, func(a, b *domain.InterleavedQuestion) int {
		return a.OrderInSession - b.OrderInSession
	})
	return created, nil
}

// RecordAnswer writes the answer of a question exactly once. A question that is
// already answered yields domain.ErrConflict; a missing one domain.ErrNotFound.
func (r *Repo) RecordAnswer(ctx context.Context, id int64, record domain.AnswerRecord) (*domain.InterleavedQuestion, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Update(table).
		Set("user_answer", record.UserAnswer).
		Set("is_correct", record.IsCorrect).
		Set("time_spent", record.TimeSpent).
		Where(sq.Eq{"id": id, "user_answer": nil}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build record answer query: %w", err)
	}

	q, err := scanQuestion(querier.QueryRow(ctx, query, args...))
	if err == nil {
		return q, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, "question", id)
	}

	var exists bool
	if err := querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+` WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, postgres.MapError(err, "question", id)
	}
	if exists {
		return nil, fmt.Errorf("question %d already answered: %w", id, domain.ErrConflict)
	}
	return nil, fmt.Errorf("question %d: %w", id, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

// options keeps the database invariant: only multiple choice questions carry options.
func options(q *domain.InterleavedQuestion) []string {
	if q.QuestionType != domain.QuestionTypeMultipleChoice {
		return nil
	}
	if q.Options == nil {
		return []string{}
	}
	return q.Options
}

func collect(rows pgx.Rows, op string) ([]*domain.InterleavedQuestion, error) {
	defer rows.Close()

	questions := make([]*domain.InterleavedQuestion, 0)
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return questions, nil
}

func scanQuestion(row pgx.Row) (*domain.InterleavedQuestion, error) {
	var (
		q     domain.InterleavedQuestion
		qType string
	)
	err := row.Scan(
		&q.ID, &q.SessionID, &q.ConceptID, &q.Question, &q.Answer, &qType, &q.Options,
		&q.OrderInSession, &q.UserAnswer, &q.IsCorrect, &q.TimeSpent, &q.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	q.QuestionType = domain.QuestionType(qType)
	return &q, nil
}
