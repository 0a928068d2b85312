package grading

import "math"

// QuestionResult is the outcome for one question.
type QuestionResult struct {
	QuestionID string `json:"questionId"`
	Response   string `json:"answer"`
	Correct    bool   `json:"isCorrect"`

	// Credit is the share of the question's points earned, 0 to 1.
	Credit float64 `json:"partialCredit"`
	Earned float64 `json:"earnedPoints"`
	Points int     `json:"points"`

	Feedback string `json:"feedback"`

	// NeedsReview marks open answers scored without the model.
	NeedsReview bool `json:"needsReview,omitempty"`
}

// settle clamps Credit, derives Correct from the pass mark when the
// result has no verdict yet and fills Earned.
func (r *QuestionResult) settle(pass float64) {
	r.Credit = math.Max(0, math.Min(1, r.Credit))
	if !r.Correct {
		r.Correct = r.Credit >= pass
	}
	r.Earned = r.Credit * float64(r.Points)
}

// Result is a graded worksheet.
type Result struct {
	Questions       []QuestionResult `json:"questions"`
	OverallFeedback string           `json:"overallFeedback"`
	EarnedPoints    float64          `json:"earnedPoints"`
	TotalPoints     int              `json:"totalPoints"`

	// Score is EarnedPoints / TotalPoints as a whole percentage.
	Score int `json:"score"`

	Answered int `json:"answered"`
	Correct  int `json:"correct"`

	// Reviewed reports whether open answers were reviewed by the model.
	Reviewed bool `json:"reviewed"`
}

// Question returns the result for the given question id.
func (r *Result) Question(id string) (QuestionResult, bool) {
	for _, q := range r.Questions {
		if q.QuestionID == id {
			return q, true
		}
	}
	return QuestionResult{}, false
}

func (r *Result) total() {
	r.EarnedPoints, r.TotalPoints, r.Answered, r.Correct = 0, 0, 0, 0
	for _, q := range r.Questions {
		r.EarnedPoints += q.Earned
		r.TotalPoints += q.Points
		if q.Response != "" {
			r.Answered++
		}
		if q.Correct {
			r.Correct++
		}
	}
	if r.TotalPoints > 0 {
		r.Score = int(math.Round(r.EarnedPoints / float64(r.TotalPoints) * 100))
	}
}
