package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/studyhub-backend/internal/domain"
)

// QuestionGenerator produces interleaved practice questions for a concept.
type QuestionGenerator struct {
	llm Completer
	log *slog.Logger
}

// NewQuestionGenerator creates a generator backed by c.
func NewQuestionGenerator(c Completer, log *slog.Logger) *QuestionGenerator {
	return &QuestionGenerator{llm: c, log: log.With("oracle", "question_generator")}
}

type generatedItem struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
}

type generatedEnvelope struct {
	Questions []generatedItem `json:"questions"`
}

// GenerateQuestions asks the model for count questions about concept. Items are
// returned as parsed; the caller decides which of them are usable.
func (g *QuestionGenerator) GenerateQuestions(ctx context.Context, concept *domain.Concept, difficulty domain.Difficulty, count int) ([]domain.GeneratedQuestion, error) {
	reply, err := g.llm.Complete(ctx, Request{
		System:      generationSystemPrompt(concept.Title, difficulty, count),
		User:        generationUserPrompt(concept),
		MaxTokens:   4096,
		Temperature: 0.7,
		JSON:        true,
	})
	if err != nil {
		return nil, domain.NewOracleError(concept.ID, "question generation request failed", err)
	}

	items, err := parseGenerated(reply)
	if err != nil {
		return nil, domain.NewOracleError(concept.ID, "question generation returned malformed output", err)
	}

	out := make([]domain.GeneratedQuestion, 0, len(items))
	for _, item := range items {
		out = append(out, domain.GeneratedQuestion{
			Question: item.Question,
			Answer:   item.Answer,
			Type:     normalizeType(item.Type),
			Options:  item.Options,
		})
	}

	g.log.DebugContext(ctx, "questions generated",
		slog.Int64("concept_id", concept.ID),
		slog.Int("requested", count),
		slog.Int("received", len(out)),
	)

	return out, nil
}

// parseGenerated accepts {"questions": [...]} as well as a bare array.
func parseGenerated(reply string) ([]generatedItem, error) {
	raw, err := extractJSON(reply)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(raw, "[") {
		var items []generatedItem
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return nil, fmt.Errorf("decode question array: %w", err)
		}
		return items, nil
	}

	var env generatedEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, fmt.Errorf("decode question object: %w", err)
	}
	return env.Questions, nil
}

// normalizeType maps the spellings models commonly use onto QuestionType.
func normalizeType(t string) domain.QuestionType {
	t = strings.ToLower(strings.TrimSpace(t))
	t = strings.NewReplacer("-", "_", " ", "_", "/", "_").Replace(t)
	switch t {
	case "mcq", "multiplechoice":
		return domain.QuestionTypeMultipleChoice
	case "truefalse", "boolean":
		return domain.QuestionTypeTrueFalse
	case "short", "shortanswer", "open":
		return domain.QuestionTypeShortAnswer
	}
	return domain.QuestionType(t)
}

func generationSystemPrompt(title string, difficulty domain.Difficulty, count int) string {
	return fmt.Sprintf(`Generate %d diverse questions for interleaved studying about the concept "%s".
Mix question types: multiple choice, short answer, and true/false.
Difficulty: %s.

Output ONLY a JSON object of this exact shape:
{"questions": [{"question": "<text>", "answer": "<canonical answer>", "type": "multiple_choice|short_answer|true_false", "options": ["<option>", "..."]}]}

Rules:
- Return exactly %d questions
- "options" is required for multiple_choice and must contain the answer verbatim; omit it otherwise
- For true_false the answer is "true" or "false"
- Keep short answers to a few words
- Output ONLY the JSON, no markdown, no explanations`, count, title, difficulty, count)
}

func generationUserPrompt(c *domain.Concept) string {
	tags := "none"
	if len(c.Tags) > 0 {
		tags = strings.Join(c.Tags, ", ")
	}
	return fmt.Sprintf("Concept: %s\nDescription: %s\nTags: %s", c.Title, c.Description, tags)
}
