package domain

import (
	"time"

	"github.com/google/uuid"
)

// InterleavedSession is a quiz that mixes questions from several concepts.
// A session is Active until it is completed; completion is terminal.
type InterleavedSession struct {
	ID                int64
	UserID            uuid.UUID
	Title             string
	Description       *string
	ConceptIDs        []int64
	Difficulty        Difficulty
	TotalQuestions    int
	QuestionsAnswered int
	CorrectAnswers    int
	IsActive          bool
	DurationMinutes   *int
	CompletedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsCompleted reports whether the session reached its terminal state.
func (s *InterleavedSession) IsCompleted() bool {
	return !s.IsActive || s.CompletedAt != nil
}

// Progress derives the running totals of the session.
func (s *InterleavedSession) Progress() SessionProgress {
	p := SessionProgress{
		Answered:  s.QuestionsAnswered,
		Correct:   s.CorrectAnswers,
		Total:     s.TotalQuestions,
		Remaining: max(0, s.TotalQuestions-s.QuestionsAnswered),
		Completed: s.IsCompleted(),
	}
	if s.QuestionsAnswered > 0 {
		p.Accuracy = float64(s.CorrectAnswers) / float64(s.QuestionsAnswered)
	}
	return p
}

// SessionProgress is the aggregate view of an interleaved session.
type SessionProgress struct {
	Answered  int
	Correct   int
	Total     int
	Remaining int
	Accuracy  float64
	Completed bool
}

// InterleavedQuestion is one question of a session. The answer fields are unset
// until the question is answered and are written exactly once.
type InterleavedQuestion struct {
	ID             int64
	SessionID      int64
	ConceptID      int64
	Question       string
	Answer         string
	QuestionType   QuestionType
	Options        []string
	OrderInSession int
	UserAnswer     *string
	IsCorrect      *bool
	TimeSpent      *int
	CreatedAt      time.Time
}

// IsAnswered reports whether an answer was already recorded.
func (q *InterleavedQuestion) IsAnswered() bool {
	return q.UserAnswer != nil
}

// QuestionWithConcept pairs a question with the title of its concept.
type QuestionWithConcept struct {
	InterleavedQuestion
	ConceptTitle string
}

// GeneratedQuestion is one item produced by the question-generation oracle.
type GeneratedQuestion struct {
	Question string
	Answer   string
	Type     QuestionType
	Options  []string
}

// AnswerRecord is the write-once answer data stored on a question.
type AnswerRecord struct {
	UserAnswer string
	IsCorrect  bool
	TimeSpent  int
}

// SessionCounts are the aggregates recomputed from a session's questions.
type SessionCounts struct {
	Answered int
	Correct  int
}

// AnswerResult is returned to the caller after an answer submission.
type AnswerResult struct {
	QuestionID      int64
	IsCorrect       bool
	CanonicalAnswer string
	GradedBy        GradedBy
	Progress        SessionProgress
}
