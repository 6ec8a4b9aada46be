package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/studyhub-backend/internal/adapter/llm"
	"github.com/heartmarshall/studyhub-backend/internal/config"
	"github.com/heartmarshall/studyhub-backend/internal/domain"
)

type questionGenerator interface {
	GenerateQuestions(ctx context.Context, concept *domain.Concept, difficulty domain.Difficulty, count int) ([]domain.GeneratedQuestion, error)
}

type answerGrader interface {
	IsAnswerCorrect(ctx context.Context, question, canonical, userAnswer string) (bool, error)
}

// oracles are the external judgment services of the interleaved engine.
// A nil grader means every answer is graded by exact match.
type oracles struct {
	generator questionGenerator
	grader    answerGrader
}

// newOracle builds the generator and grader for the configured provider.
// Provider names are validated by config, so anything unknown here falls back
// to the model-free mode.
func newOracle(cfg config.OracleConfig, logger *slog.Logger) oracles {
	var completer llm.Completer
	switch strings.ToLower(cfg.Provider) {
	case config.ProviderAnthropic:
		completer = llm.NewAnthropicCompleter(cfg.APIKey, cfg.ModelOrDefault(), cfg.BaseURL)
	case config.ProviderOpenAI:
		completer = llm.NewOpenAICompleter(cfg.APIKey, cfg.ModelOrDefault(), cfg.BaseURL)
	default:
		logger.Info("oracle disabled: template questions and exact-match grading")
		return oracles{generator: llm.TemplateGenerator{}}
	}

	completer = llm.NewRateLimited(completer, cfg.RequestsPerMinute, cfg.Burst)
	logger.Info("oracle enabled",
		slog.String("provider", cfg.Provider),
		slog.String("model", cfg.ModelOrDefault()),
		slog.Int("requests_per_minute", cfg.RequestsPerMinute),
	)

	return oracles{
		generator: llm.NewQuestionGenerator(completer, logger),
		grader:    llm.NewAnswerGrader(completer),
	}
}
