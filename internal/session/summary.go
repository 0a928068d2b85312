package session

import "time"

// SessionSummary holds the data displayed when a run ends.
type SessionSummary struct {
	Duration       time.Duration
	TotalQuestions int
	Answered       int
	AutoGraded     int
	AutoCorrect    int
	HintsUsed      int
	Retries        int
	TimedOut       bool
}

// BuildSummary creates a SessionSummary from the current session state.
func BuildSummary(s *SessionState) *SessionSummary {
	sum := &SessionSummary{
		Duration:       Elapsed(s),
		TotalQuestions: len(s.Worksheet.Questions),
		HintsUsed:      len(s.HintsShown),
		TimedOut:       s.Options.TimeLimit > 0 && Elapsed(s) >= s.Options.TimeLimit,
	}
	for _, q := range s.Worksheet.Questions {
		if s.Answers[q.ID] != "" {
			sum.Answered++
		}
		if correct, ok := s.Correct[q.ID]; ok {
			sum.AutoGraded++
			if correct {
				sum.AutoCorrect++
			}
		}
		if n := s.Tries[q.ID]; n > 1 {
			sum.Retries += n - 1
		}
	}
	return sum
}
