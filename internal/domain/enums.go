package domain

// Difficulty is the requested difficulty of an interleaved session.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// QuestionType is the presentation format of an interleaved question.
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeShortAnswer    QuestionType = "short_answer"
	QuestionTypeTrueFalse      QuestionType = "true_false"
)

func (t QuestionType) String() string { return string(t) }

func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeMultipleChoice, QuestionTypeShortAnswer, QuestionTypeTrueFalse:
		return true
	}
	return false
}

// IsClosed reports whether answers of this type are checked by exact match only.
func (t QuestionType) IsClosed() bool {
	return t == QuestionTypeMultipleChoice || t == QuestionTypeTrueFalse
}

// GradedBy records which policy produced an answer verdict.
type GradedBy string

const (
	GradedByExactMatch GradedBy = "exact_match"
	GradedByOracle     GradedBy = "oracle"
	// GradedByFallback marks the degraded mode: the grading oracle failed and the
	// exact-match policy was applied instead.
	GradedByFallback GradedBy = "exact_match_fallback"
)

func (g GradedBy) String() string { return string(g) }
