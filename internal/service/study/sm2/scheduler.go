// Package sm2 implements the SM-2 review scheduler. It is a pure package: no clock,
// storage or logging. Callers pass the calendar day of the review explicitly.
package sm2

import (
	"fmt"
	"math"
	"time"

	"github.com/heartmarshall/studyhub-backend/internal/domain"
)

// Quality is the user's 0-5 self-assessment of a recall attempt.
// Ratings of 3 and above count as a successful recall.
type Quality int

const (
	QualityBlackout Quality = 0
	QualityPassing  Quality = 3
	QualityPerfect  Quality = 5
)

// IsValid reports whether q is within [0, 5].
func (q Quality) IsValid() bool {
	return q >= QualityBlackout && q <= QualityPerfect
}

// Successful reports whether q counts as a successful recall.
func (q Quality) Successful() bool {
	return q >= QualityPassing
}

// Schedule applies one graded review to state and returns the new state.
// The input state is never modified; an invalid quality returns an error and a zero
// state. NextReviewDate is today + interval days.
func Schedule(quality Quality, state domain.MemoryState, today time.Time) (domain.MemoryState, error) {
	if !quality.IsValid() {
		return domain.MemoryState{}, domain.NewValidationError("quality", fmt.Sprintf("must be between 0 and 5 (got %d)", quality))
	}

	next := state

	if quality.Successful() {
		switch state.Repetitions {
		case 0:
			next.Interval = 1
		case 1:
			next.Interval = 6
		default:
			next.Interval = NextInterval(state.Interval, state.EaseFactor)
		}
		next.Repetitions = state.Repetitions + 1
	} else {
		next.Repetitions = 0
		next.Interval = 1
	}

	next.EaseFactor = NextEaseFactor(state.EaseFactor, quality)
	next.NextReviewDate = domain.AddDays(today, next.Interval)

	return next, nil
}

// NextEaseFactor applies the SM-2 ease adjustment for the given quality and clamps
// the result at domain.MinEaseFactor.
func NextEaseFactor(ease float64, quality Quality) float64 {
	d := float64(QualityPerfect - quality)
	ease += 0.1 - d*(0.08+d*0.02)
	return math.Max(ease, domain.MinEaseFactor)
}

// NextInterval grows a mature card's interval by its ease factor.
// math.Round rounds half away from zero. The result is never below 1 day.
func NextInterval(interval int, ease float64) int {
	return max(1, int(math.Round(float64(max(1, interval))*ease)))
}
