package session

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rechenquiz/rechenquiz/internal/problemgen"
)

// Session is the quiz state machine: Idle -> Running -> Ended -> Idle.
//
// A Session is not safe for concurrent use. The presentation layer owns it
// and serializes Start, Tick, Submit, Advance and Reset on one goroutine.
// Calls made in the wrong state are ignored and report false.
type Session struct {
	cfg    Config
	gen    problemgen.Generator
	logger *slog.Logger
	newID  func() string

	id           string
	status       Status
	remaining    int
	current      *problemgen.Question
	correct      int
	wrong        int
	presented    int
	attemptsLeft int
	feedback     Feedback
	outcome      Outcome
	summary      *Summary

	// pending is the token of the requested advance, 0 if none.
	pending   uint64
	lastToken uint64
}

// Option customizes a Session.
type Option func(*Session)

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDFunc overrides how session IDs are generated.
func WithIDFunc(f func() string) Option {
	return func(s *Session) {
		if f != nil {
			s.newID = f
		}
	}
}

// New creates an idle session. Non-positive durations fall back to
// DefaultDuration and negative retries or delays to zero.
func New(gen problemgen.Generator, cfg Config, opts ...Option) *Session {
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}
	cfg.Retries = max(cfg.Retries, 0)
	cfg.CorrectDelay = max(cfg.CorrectDelay, 0)
	cfg.WrongDelay = max(cfg.WrongDelay, 0)

	s := &Session{
		cfg:    cfg,
		gen:    gen,
		logger: slog.New(slog.DiscardHandler),
		newID:  uuid.NewString,
		status: StatusIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a new run from Idle or Ended.
func (s *Session) Start() bool {
	if s.status == StatusRunning {
		return false
	}

	s.id = s.newID()
	s.status = StatusRunning
	s.remaining = s.cfg.Duration
	s.correct = 0
	s.wrong = 0
	s.presented = 0
	s.outcome = OutcomeNone
	s.summary = nil
	s.pending = 0
	s.nextQuestion(true)

	s.logger.Info("session started",
		"session_id", s.id,
		"duration_secs", s.cfg.Duration,
		"retries", s.cfg.Retries,
	)
	return true
}

// Tick advances the countdown by one second. When the clock reaches zero
// the session ends.
func (s *Session) Tick() bool {
	if s.status != StatusRunning {
		return false
	}
	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining == 0 {
		s.end()
	}
	return true
}

// Submit checks the player's raw input against the current question.
// Input is ignored outside Running and while an advance is pending.
func (s *Session) Submit(raw string) Result {
	if s.status != StatusRunning || s.current == nil || s.pending != 0 {
		return Result{}
	}

	n, err := problemgen.ParseAnswer(raw)
	if err != nil {
		s.feedback = invalidFeedback()
		return Result{Kind: FeedbackInvalid}
	}

	q := s.current
	switch {
	case q.Check(n):
		s.correct++
		s.feedback = correctFeedback()
		s.logger.Debug("answer", "session_id", s.id, "question", q.Text, "input", n, "result", "correct")
		return Result{Kind: FeedbackCorrect, Advance: s.requestAdvance(s.cfg.CorrectDelay)}

	case s.attemptsLeft > 0:
		s.attemptsLeft--
		s.feedback = retryFeedback()
		s.logger.Debug("answer", "session_id", s.id, "question", q.Text, "input", n, "result", "retry")
		return Result{Kind: FeedbackRetry}

	default:
		s.wrong++
		s.feedback = wrongFeedback(q.Answer)
		s.logger.Debug("answer", "session_id", s.id, "question", q.Text, "input", n, "result", "wrong")
		return Result{Kind: FeedbackWrong, Advance: s.requestAdvance(s.cfg.WrongDelay)}
	}
}

// Advance replaces the current question once the feedback delay for the
// given token has elapsed. Tokens from an earlier question or run are
// ignored.
func (s *Session) Advance(token uint64) bool {
	if s.status != StatusRunning || token == 0 || token != s.pending {
		return false
	}
	s.pending = 0
	s.nextQuestion(true)
	return true
}

// Reset returns an ended session to Idle. The counters of the finished run
// stay readable until the next Start.
func (s *Session) Reset() bool {
	if s.status != StatusEnded {
		return false
	}
	s.status = StatusIdle
	s.current = nil
	s.feedback = Feedback{}
	s.pending = 0
	return true
}

// requestAdvance records a pending advance. A zero delay advances at once,
// keeping the feedback of the answered question, and returns nil.
func (s *Session) requestAdvance(delay time.Duration) *Advance {
	if delay <= 0 {
		s.nextQuestion(false)
		return nil
	}
	s.lastToken++
	s.pending = s.lastToken
	return &Advance{Token: s.pending, Delay: delay}
}

func (s *Session) nextQuestion(clearFeedback bool) {
	s.current = s.gen.Generate()
	s.presented++
	s.attemptsLeft = s.cfg.Retries
	if clearFeedback {
		s.feedback = Feedback{}
	}
}

func (s *Session) end() {
	s.status = StatusEnded
	s.pending = 0
	if s.correct > s.wrong {
		s.outcome = OutcomeWin
	} else {
		s.outcome = OutcomeLoss
	}
	s.summary = s.buildSummary()

	s.logger.Info("session ended",
		"session_id", s.id,
		"correct", s.correct,
		"wrong", s.wrong,
		"presented", s.presented,
		"outcome", s.outcome.String(),
	)
}

// ID returns the identifier of the current or most recent run.
func (s *Session) ID() string { return s.id }

// Status returns the lifecycle phase.
func (s *Session) Status() Status { return s.status }

// Remaining returns the seconds left on the clock.
func (s *Session) Remaining() int { return s.remaining }

// Duration returns the configured session length in seconds.
func (s *Session) Duration() int { return s.cfg.Duration }

// Retries returns the configured number of extra attempts per question.
func (s *Session) Retries() int { return s.cfg.Retries }

// Current returns the active question, nil unless Running.
func (s *Session) Current() *problemgen.Question { return s.current }

// Correct returns the number of correctly answered questions.
func (s *Session) Correct() int { return s.correct }

// Wrong returns the number of questions that ran out of tries.
func (s *Session) Wrong() int { return s.wrong }

// Presented returns how many questions have been shown in this run.
func (s *Session) Presented() int { return s.presented }

// AttemptsLeft returns the retries left on the current question.
func (s *Session) AttemptsLeft() int { return s.attemptsLeft }

// Feedback returns the latest feedback.
func (s *Session) Feedback() Feedback { return s.feedback }

// AdvancePending reports whether the session waits for Advance.
func (s *Session) AdvancePending() bool { return s.pending != 0 }

// Outcome returns the verdict of the last finished run.
func (s *Session) Outcome() Outcome { return s.outcome }

// Summary returns the summary of the last finished run, nil before any end.
func (s *Session) Summary() *Summary { return s.summary }
