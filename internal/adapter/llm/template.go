package llm

import (
	"context"
	"fmt"

	"github.com/heartmarshall/studyhub-backend/internal/domain"
)

// TemplateGenerator builds questions from the concept's own fields without calling a
// model. It is used when no provider is configured.
type TemplateGenerator struct{}

// GenerateQuestions implements the interleaved question generator.
func (TemplateGenerator) GenerateQuestions(_ context.Context, concept *domain.Concept, _ domain.Difficulty, count int) ([]domain.GeneratedQuestion, error) {
	description := concept.Description
	if description == "" {
		description = "A key concept in the course"
	}

	out := make([]domain.GeneratedQuestion, 0, count)
	for i := range count {
		n := i/2 + 1
		if i%2 == 0 {
			out = append(out, domain.GeneratedQuestion{
				Question: fmt.Sprintf("(%d) What is %s?", n, concept.Title),
				Answer:   description,
				Type:     domain.QuestionTypeShortAnswer,
			})
			continue
		}
		out = append(out, domain.GeneratedQuestion{
			Question: fmt.Sprintf("(%d) True or False: %s is an important concept to understand.", n, concept.Title),
			Answer:   "true",
			Type:     domain.QuestionTypeTrueFalse,
		})
	}
	return out, nil
}
