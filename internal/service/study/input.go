package study

import (
	"unicode/utf8"

	"github.com/heartmarshall/studyhub-backend/internal/domain"
	"github.com/heartmarshall/studyhub-backend/internal/service/study/sm2"
)

const (
	maxQuestionLen = 2000
	maxAnswerLen   = 5000
	maxTags        = 20
	maxTagLen      = 50
)

// CreateFlashcardInput holds the parameters for creating a flashcard.
type CreateFlashcardInput struct {
	Question  string
	Answer    string
	ConceptID *int64
	Tags      []string
}

// Validate checks all fields and collects all errors.
func (i *CreateFlashcardInput) Validate() error {
	var errs []domain.FieldError

	if i.Question == "" {
		errs = append(errs, domain.FieldError{Field: "question", Message: "required"})
	} else if utf8.RuneCountInString(i.Question) > maxQuestionLen {
		errs = append(errs, domain.FieldError{Field: "question", Message: "too long"})
	}
	if i.Answer == "" {
		errs = append(errs, domain.FieldError{Field: "answer", Message: "required"})
	} else if utf8.RuneCountInString(i.Answer) > maxAnswerLen {
		errs = append(errs, domain.FieldError{Field: "answer", Message: "too long"})
	}
	if i.ConceptID != nil && *i.ConceptID <= 0 {
		errs = append(errs, domain.FieldError{Field: "concept_id", Message: "must be positive"})
	}
	if len(i.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many tags"})
	}
	for _, tag := range i.Tags {
		if utf8.RuneCountInString(tag) > maxTagLen {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "tag too long"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReviewFlashcardInput holds the parameters for grading a review.
type ReviewFlashcardInput struct {
	FlashcardID int64
	Quality     int
}

// Validate checks all fields and collects all errors.
func (i *ReviewFlashcardInput) Validate() error {
	var errs []domain.FieldError

	if i.FlashcardID <= 0 {
		errs = append(errs, domain.FieldError{Field: "flashcard_id", Message: "required"})
	}
	if !sm2.Quality(i.Quality).IsValid() {
		errs = append(errs, domain.FieldError{Field: "quality", Message: "must be between 0 and 5"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DueFlashcardsInput holds the parameters for fetching the due set.
type DueFlashcardsInput struct {
	// Limit of 0 means the configured default.
	Limit int
}

// Validate checks all fields and collects all errors.
func (i *DueFlashcardsInput) Validate(maxLimit int) error {
	if i.Limit < 0 || i.Limit > maxLimit {
		return domain.NewValidationError("limit", "out of range")
	}
	return nil
}

func validateID(field string, id int64) error {
	if id <= 0 {
		return domain.NewValidationError(field, "required")
	}
	return nil
}
