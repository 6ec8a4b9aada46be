package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/studyhub-backend/internal/domain"
)

const graderSystemPrompt = "You are a tutor evaluating student answers. Compare the user's answer with the correct answer. " +
	"Be flexible with wording but strict with accuracy. Return only 'true' if the answer is correct, 'false' otherwise."

// AnswerGrader judges free-text answers with a language model.
type AnswerGrader struct {
	llm Completer
}

// NewAnswerGrader creates a grader backed by c.
func NewAnswerGrader(c Completer) *AnswerGrader {
	return &AnswerGrader{llm: c}
}

// IsAnswerCorrect asks the model whether userAnswer matches canonical. Any reply other
// than true or false is an oracle failure.
func (g *AnswerGrader) IsAnswerCorrect(ctx context.Context, question, canonical, userAnswer string) (bool, error) {
	reply, err := g.llm.Complete(ctx, Request{
		System: graderSystemPrompt,
		User: fmt.Sprintf("Question: %s\nCorrect Answer: %s\nUser Answer: %s\n\nIs the user's answer correct? Respond with only 'true' or 'false'.",
			question, canonical, userAnswer),
		MaxTokens:   10,
		Temperature: 0.1,
	})
	if err != nil {
		return false, fmt.Errorf("%w: grading request: %w", domain.ErrOracleFailure, err)
	}

	verdict := strings.Trim(strings.ToLower(strings.TrimSpace(reply)), `."'`)
	switch verdict {
	case "true", "yes":
		return true, nil
	case "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("%w: unexpected grading reply %q", domain.ErrOracleFailure, reply)
}
