// Package llm implements the question-generation and answer-grading oracles on top of
// chat-completion providers.
package llm

import (
	"context"
	"fmt"
	"strings"
)

//go:generate moq -out completer_mock_test.go -pkg llm . Completer

// Request is a single-turn chat completion.
type Request struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
	// JSON asks the provider for a JSON object response when it supports it.
	JSON bool
}

// Completer sends one prompt to a language model and returns its text reply.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// extractJSON returns the outermost JSON object or array found in s.
// Models often wrap JSON in prose or markdown fences.
func extractJSON(s string) (string, error) {
	objStart := strings.Index(s, "{")
	arrStart := strings.Index(s, "[")

	open, closing := "{", "}"
	start := objStart
	if arrStart != -1 && (objStart == -1 || arrStart < objStart) {
		open, closing = "[", "]"
		start = arrStart
	}
	if start == -1 {
		return "", fmt.Errorf("no JSON found in response")
	}

	end := strings.LastIndex(s, closing)
	if end <= start {
		return "", fmt.Errorf("unterminated JSON %s in response", open)
	}
	return s[start : end+1], nil
}
