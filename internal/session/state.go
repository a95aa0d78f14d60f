package session

import "time"

// Status is the lifecycle phase of a session.
type Status int

const (
	StatusIdle    Status = iota // Waiting for Start
	StatusRunning               // Serving questions, clock ticking
	StatusEnded                 // Time is up, summary available
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusEnded:
		return "ended"
	default:
		return "idle"
	}
}

// Outcome is the verdict of a finished session.
type Outcome int

const (
	OutcomeNone Outcome = iota // Session has not ended yet
	OutcomeWin                 // More correct than wrong answers
	OutcomeLoss                // Ties count as a loss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "none"
	}
}

// Default session settings.
const (
	DefaultDuration     = 180 // seconds
	DefaultRetries      = 1
	DefaultCorrectDelay = 700 * time.Millisecond
	DefaultWrongDelay   = 1500 * time.Millisecond
)

// Config controls session timing and the retry budget.
type Config struct {
	// Duration is the session length in whole seconds (one tick each).
	Duration int

	// Retries is how many extra tries a question gets after the first
	// wrong answer before it counts as wrong.
	Retries int

	// CorrectDelay is how long the "correct" feedback stays up before the
	// next question. Zero advances immediately.
	CorrectDelay time.Duration

	// WrongDelay is the same for a question that was finally answered wrong.
	WrongDelay time.Duration
}

// DefaultConfig returns a three-minute session with one retry per question.
func DefaultConfig() Config {
	return Config{
		Duration:     DefaultDuration,
		Retries:      DefaultRetries,
		CorrectDelay: DefaultCorrectDelay,
		WrongDelay:   DefaultWrongDelay,
	}
}

// Advance is a deferred request to move on to the next question. The
// presentation layer calls Session.Advance(Token) once Delay has passed.
type Advance struct {
	Token uint64
	Delay time.Duration
}

// Result describes what a Submit call did.
type Result struct {
	// Kind is the feedback produced, FeedbackNone if the call was ignored.
	Kind FeedbackKind

	// Advance is non-nil when the next question has been requested but
	// is waiting for its display delay.
	Advance *Advance
}

// Ignored reports whether the submission had no effect.
func (r Result) Ignored() bool {
	return r.Kind == FeedbackNone
}
