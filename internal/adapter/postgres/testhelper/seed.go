package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studyhub-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedConcept inserts a concept owned by userID. Concepts have no write path in
// the application, so tests create them directly.
func SeedConcept(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string) domain.Concept {
	t.Helper()

	if title == "" {
		title = "Concept " + uniqueSuffix()
	}
	c := domain.Concept{
		UserID:      userID,
		Title:       title,
		Description: "Description of " + title,
		Tags:        []string{"seed"},
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO concepts (user_id, title, description, tags)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		c.UserID, c.Title, c.Description, c.Tags,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedConcept insert: %v", err)
	}

	return c
}

// SeedSession inserts an active session over conceptIDs with totalQuestions questions
// announced but none created.
func SeedSession(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, conceptIDs []int64, totalQuestions int) domain.InterleavedSession {
	t.Helper()

	s := domain.InterleavedSession{
		UserID:         userID,
		Title:          "Session " + uniqueSuffix(),
		ConceptIDs:     conceptIDs,
		Difficulty:     domain.DifficultyMedium,
		TotalQuestions: totalQuestions,
		IsActive:       true,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO interleaved_sessions (user_id, title, concept_ids, difficulty, total_questions)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		s.UserID, s.Title, s.ConceptIDs, string(s.Difficulty), s.TotalQuestions,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert: %v", err)
	}

	return s
}
