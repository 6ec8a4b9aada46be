// Package concept implements read access to study concepts using PostgreSQL.
// Concepts are written by the document pipeline; this service only reads them.
package concept

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/studyhub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyhub-backend/internal/domain"
)

var columns = []string{"id", "user_id", "title", "description", "tags", "created_at"}

// Repo provides concept lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new concept repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a concept by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Concept, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("concepts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get concept query: %w", err)
	}

	c, err := scanConcept(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "concept", id)
	}
	return c, nil
}

// GetByIDs returns the concepts among ids owned by userID, ordered by id.
// Unknown and foreign ids are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, userID uuid.UUID, ids []int64) ([]*domain.Concept, error) {
	if len(ids) == 0 {
		return []*domain.Concept{}, nil
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From("concepts").
		Where(sq.Eq{"user_id": userID, "id": ids}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get concepts query: %w", err)
	}

	return r.query(ctx, query, args)
}

// ListByUser returns every concept of userID, ordered by title.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Concept, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("concepts").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("title", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list concepts query: %w", err)
	}

	return r.query(ctx, query, args)
}

func (r *Repo) query(ctx context.Context, query string, args []any) ([]*domain.Concept, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query concepts: %w", err)
	}
	defer rows.Close()

	concepts := make([]*domain.Concept, 0)
	for rows.Next() {
		c, err := scanConcept(rows)
		if err != nil {
			return nil, fmt.Errorf("scan concept: %w", err)
		}
		concepts = append(concepts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query concepts: %w", err)
	}

	return concepts, nil
}

func scanConcept(row pgx.Row) (*domain.Concept, error) {
	var c domain.Concept
	if err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.Description, &c.Tags, &c.CreatedAt); err != nil {
		return nil, err
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return &c, nil
}
