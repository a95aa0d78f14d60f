// Package countdown provides the one-second clock that drives a quiz
// session and the helpers adapters use to display it.
package countdown

import (
	"fmt"
	"time"
)

// DefaultInterval is the wall-clock length of one tick.
const DefaultInterval = time.Second

// Ticker fires once per interval while started. It wraps a single
// time.Ticker, so ticks never overlap: a slow consumer just misses them.
//
// Ticker is not safe for concurrent use; the goroutine that owns the
// session starts, stops and reads it.
type Ticker struct {
	interval time.Duration
	ticker   *time.Ticker
}

// New creates a stopped Ticker. Non-positive intervals use DefaultInterval.
func New(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Ticker{interval: interval}
}

// Start begins ticking, discarding any previous run.
func (t *Ticker) Start() {
	t.Stop()
	t.ticker = time.NewTicker(t.interval)
}

// Stop releases the underlying ticker. It is safe to call on a stopped Ticker.
func (t *Ticker) Stop() {
	if t.ticker == nil {
		return
	}
	t.ticker.Stop()
	t.ticker = nil
}

// Running reports whether the Ticker is started.
func (t *Ticker) Running() bool {
	return t.ticker != nil
}

// Interval returns the tick interval.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// C returns the tick channel, or nil when stopped so that a select on it
// blocks forever.
func (t *Ticker) C() <-chan time.Time {
	if t.ticker == nil {
		return nil
	}
	return t.ticker.C
}

// Format renders seconds as mm:ss. Negative values show as 00:00.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Fraction returns the share of total still remaining, clamped to [0, 1].
func Fraction(remaining, total int) float64 {
	if total <= 0 {
		return 0
	}
	f := float64(remaining) / float64(total)
	return min(max(f, 0), 1)
}
