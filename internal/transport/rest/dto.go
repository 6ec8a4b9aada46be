package rest

import (
	"time"

	"github.com/heartmarshall/studyhub-backend/internal/domain"
)

const dateLayout = time.DateOnly

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type createFlashcardRequest struct {
	Question  string   `json:"question" validate:"required,max=2000"`
	Answer    string   `json:"answer" validate:"required,max=5000"`
	ConceptID *int64   `json:"conceptId" validate:"omitempty,gt=0"`
	Tags      []string `json:"tags" validate:"max=20,dive,max=50"`
}

type reviewFlashcardRequest struct {
	Quality *int `json:"quality" validate:"required,gte=0,lte=5"`
}

type createSessionRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	ConceptIDs  []int64 `json:"conceptIds" validate:"required,dive,gt=0"`
	Difficulty  string  `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

type submitAnswerRequest struct {
	SessionID int64  `json:"sessionId" validate:"omitempty,gt=0"`
	Answer    string `json:"answer" validate:"max=5000"`
	TimeSpent int    `json:"timeSpent" validate:"gte=0,lte=86400"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type flashcardResponse struct {
	ID          int64     `json:"id"`
	ConceptID   *int64    `json:"conceptId"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	Tags        []string  `json:"tags"`
	Difficulty  int       `json:"difficulty"`
	Interval    int       `json:"interval"`
	Repetitions int       `json:"repetitions"`
	EaseFactor  float64   `json:"easeFactor"`
	NextReview  string    `json:"nextReview"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toFlashcardResponse(c *domain.Flashcard) flashcardResponse {
	return flashcardResponse{
		ID:          c.ID,
		ConceptID:   c.ConceptID,
		Question:    c.Question,
		Answer:      c.Answer,
		Tags:        nonNil(c.Tags),
		Difficulty:  c.Memory.Difficulty,
		Interval:    c.Memory.Interval,
		Repetitions: c.Memory.Repetitions,
		EaseFactor:  c.Memory.EaseFactor,
		NextReview:  c.Memory.NextReviewDate.Format(dateLayout),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toFlashcardResponses(cards []*domain.Flashcard) []flashcardResponse {
	out := make([]flashcardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toFlashcardResponse(c))
	}
	return out
}

type conceptResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toConceptResponse(c *domain.Concept) conceptResponse {
	return conceptResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Tags:        nonNil(c.Tags),
		CreatedAt:   c.CreatedAt,
	}
}

func toConceptResponses(concepts []*domain.Concept) []conceptResponse {
	out := make([]conceptResponse, 0, len(concepts))
	for _, c := range concepts {
		out = append(out, toConceptResponse(c))
	}
	return out
}

type progressResponse struct {
	Answered  int     `json:"answered"`
	Correct   int     `json:"correct"`
	Total     int     `json:"total"`
	Remaining int     `json:"remaining"`
	Accuracy  float64 `json:"accuracy"`
	Completed bool    `json:"completed"`
}

func toProgressResponse(p domain.SessionProgress) progressResponse {
	return progressResponse(p)
}

type sessionResponse struct {
	ID                int64            `json:"id"`
	Title             string           `json:"title"`
	Description       *string          `json:"description"`
	ConceptIDs        []int64          `json:"conceptIds"`
	Difficulty        string           `json:"difficulty"`
	TotalQuestions    int              `json:"totalQuestions"`
	QuestionsAnswered int              `json:"questionsAnswered"`
	CorrectAnswers    int              `json:"correctAnswers"`
	IsActive          bool             `json:"isActive"`
	SessionDuration   *int             `json:"sessionDuration"`
	CompletedAt       *time.Time       `json:"completedAt"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
	Progress          progressResponse `json:"progress"`
}

func toSessionResponse(s *domain.InterleavedSession) sessionResponse {
	return sessionResponse{
		ID:                s.ID,
		Title:             s.Title,
		Description:       s.Description,
		ConceptIDs:        nonNil(s.ConceptIDs),
		Difficulty:        s.Difficulty.String(),
		TotalQuestions:    s.TotalQuestions,
		QuestionsAnswered: s.QuestionsAnswered,
		CorrectAnswers:    s.CorrectAnswers,
		IsActive:          s.IsActive,
		SessionDuration:   s.DurationMinutes,
		CompletedAt:       s.CompletedAt,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
		Progress:          toProgressResponse(s.Progress()),
	}
}

func toSessionResponses(sessions []*domain.InterleavedSession) []sessionResponse {
	out := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toSessionResponse(s))
	}
	return out
}

// questionResponse carries the canonical answer only after the question was answered.
type questionResponse struct {
	ID             int64     `json:"id"`
	SessionID      int64     `json:"sessionId"`
	ConceptID      int64     `json:"conceptId"`
	ConceptTitle   string    `json:"conceptTitle"`
	Question       string    `json:"question"`
	QuestionType   string    `json:"questionType"`
	Options        []string  `json:"options,omitempty"`
	OrderInSession int       `json:"orderInSession"`
	Answer         *string   `json:"answer,omitempty"`
	UserAnswer     *string   `json:"userAnswer"`
	IsCorrect      *bool     `json:"isCorrect"`
	TimeSpent      *int      `json:"timeSpent"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toQuestionResponses(questions []domain.QuestionWithConcept) []questionResponse {
	out := make([]questionResponse, 0, len(questions))
	for _, q := range questions {
		resp := questionResponse{
			ID:             q.ID,
			SessionID:      q.SessionID,
			ConceptID:      q.ConceptID,
			ConceptTitle:   q.ConceptTitle,
			Question:       q.Question,
			QuestionType:   q.QuestionType.String(),
			Options:        q.Options,
			OrderInSession: q.OrderInSession,
			UserAnswer:     q.UserAnswer,
			IsCorrect:      q.IsCorrect,
			TimeSpent:      q.TimeSpent,
			CreatedAt:      q.CreatedAt,
		}
		if q.IsAnswered() {
			answer := q.Answer
			resp.Answer = &answer
		}
		out = append(out, resp)
	}
	return out
}

type answerResponse struct {
	QuestionID    int64            `json:"questionId"`
	IsCorrect     bool             `json:"isCorrect"`
	CorrectAnswer string           `json:"correctAnswer"`
	GradedBy      string           `json:"gradedBy"`
	Progress      progressResponse `json:"progress"`
}

func toAnswerResponse(r *domain.AnswerResult) answerResponse {
	return answerResponse{
		QuestionID:    r.QuestionID,
		IsCorrect:     r.IsCorrect,
		CorrectAnswer: r.CanonicalAnswer,
		GradedBy:      r.GradedBy.String(),
		Progress:      toProgressResponse(r.Progress),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
