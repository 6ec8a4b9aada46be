package interleaved

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/studyhub-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
	maxAnswerLen      = 5000
	maxTimeSpent      = 24 * 60 * 60
)

// CreateSessionInput holds the parameters for building a session.
type CreateSessionInput struct {
	Title       string
	Description *string
	ConceptIDs  []int64
	Difficulty  domain.Difficulty
}

// Validate checks all fields and collects all errors. ConceptIDs must already be
// de-duplicated.
func (i *CreateSessionInput) Validate(minConcepts, maxConcepts int) error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.Description != nil && utf8.RuneCountInString(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be easy, medium, or hard"})
	}

	switch {
	case len(i.ConceptIDs) < minConcepts:
		errs = append(errs, domain.FieldError{Field: "concept_ids", Message: fmt.Sprintf("at least %d concepts required", minConcepts)})
	case len(i.ConceptIDs) > maxConcepts:
		errs = append(errs, domain.FieldError{Field: "concept_ids", Message: fmt.Sprintf("at most %d concepts allowed", maxConcepts)})
	}
	for _, id := range i.ConceptIDs {
		if id <= 0 {
			errs = append(errs, domain.FieldError{Field: "concept_ids", Message: "ids must be positive"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SubmitAnswerInput holds the parameters for answering one question.
type SubmitAnswerInput struct {
	// SessionID is optional; when set it must match the question's session.
	SessionID  int64
	QuestionID int64
	Answer     string
	// TimeSpent is in seconds.
	TimeSpent int
}

// Validate checks all fields and collects all errors.
func (i *SubmitAnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID < 0 {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "must be positive"})
	}
	if i.QuestionID <= 0 {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	// A blank answer is a valid "don't know" and is graded as incorrect.
	if utf8.RuneCountInString(i.Answer) > maxAnswerLen {
		errs = append(errs, domain.FieldError{Field: "answer", Message: "too long"})
	}
	if i.TimeSpent < 0 || i.TimeSpent > maxTimeSpent {
		errs = append(errs, domain.FieldError{Field: "time_spent", Message: "must be between 0 and 86400 seconds"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// dedupeIDs drops repeated ids, keeping the first occurrence.
func dedupeIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func validateID(field string, id int64) error {
	if id <= 0 {
		return domain.NewValidationError(field, "required")
	}
	return nil
}
