package session

import "time"

// Summary holds the data displayed on the summary screen.
type Summary struct {
	SessionID string
	Duration  time.Duration
	Correct   int
	Wrong     int
	Presented int
	Accuracy  float64 // Correct / (Correct + Wrong), 0 if nothing was answered
	Outcome   Outcome
}

// Won reports whether the run ended with more correct than wrong answers.
func (s *Summary) Won() bool {
	return s.Outcome == OutcomeWin
}

// buildSummary creates a Summary from the current counters. Duration is
// the number of ticks consumed, not wall-clock time.
func (s *Session) buildSummary() *Summary {
	var accuracy float64
	if answered := s.correct + s.wrong; answered > 0 {
		accuracy = float64(s.correct) / float64(answered)
	}

	return &Summary{
		SessionID: s.id,
		Duration:  time.Duration(s.cfg.Duration-s.remaining) * time.Second,
		Correct:   s.correct,
		Wrong:     s.wrong,
		Presented: s.presented,
		Accuracy:  accuracy,
		Outcome:   s.outcome,
	}
}
