// Package plain runs a quiz session line by line on a reader and writer,
// for terminals that cannot host the full-screen UI.
package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rechenquiz/rechenquiz/internal/countdown"
	"github.com/rechenquiz/rechenquiz/internal/session"
)

// Clock drives the session. *countdown.Ticker is the real one.
type Clock interface {
	Start()
	Stop()
	C() <-chan time.Time
}

var _ Clock = (*countdown.Ticker)(nil)

// Options holds the dependencies of a line-mode game.
type Options struct {
	In      io.Reader
	Out     io.Writer
	Session *session.Session
	Ticker  Clock
	Logger  *slog.Logger

	// Replay asks for another round after the summary.
	Replay bool
}

type game struct {
	out    io.Writer
	sess   *session.Session
	ticker Clock
	logger *slog.Logger
	replay bool

	advanceC     <-chan time.Time
	advanceTimer *time.Timer
	advanceToken uint64

	// asking is set while the replay prompt waits for an answer.
	asking bool
}

// Run plays a session, and further rounds when Replay is set. It returns
// nil when the clock runs out with no replay wanted, the input is closed
// or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	g := &game{
		out:    opts.Out,
		sess:   opts.Session,
		ticker: opts.Ticker,
		logger: opts.Logger,
		replay: opts.Replay,
	}
	if g.ticker == nil {
		g.ticker = countdown.New(countdown.DefaultInterval)
	}
	if g.logger == nil {
		g.logger = slog.New(slog.DiscardHandler)
	}

	if !g.sess.Start() {
		return errors.New("session already running")
	}

	done := make(chan struct{})
	defer close(done)
	lines := readLines(opts.In, done)

	g.printRules()
	g.printQuestion()

	g.ticker.Start()
	defer g.ticker.Stop()
	defer g.stopAdvance()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				g.logger.Info("game interrupted", "session_id", g.sess.ID())
				fmt.Fprintln(g.out, "\nTschüss!")
				return nil
			}
			return ctx.Err()

		case <-g.ticker.C():
			g.sess.Tick()
			if g.sess.Status() == session.StatusEnded {
				g.ticker.Stop()
				g.stopAdvance()
				g.printSummary()
				if !g.replay {
					return nil
				}
				g.asking = true
				fmt.Fprint(g.out, "\nNochmal spielen? (j/n) ")
				continue
			}
			if r := g.sess.Remaining(); r%30 == 0 || r <= 5 {
				fmt.Fprintf(g.out, "  Noch %s\n", countdown.Format(r))
			}

		case line, ok := <-lines:
			if !ok {
				g.logger.Info("input closed", "session_id", g.sess.ID())
				fmt.Fprintln(g.out, "\n(Eingabe beendet)")
				return nil
			}
			if g.asking {
				if !wantsReplay(line) {
					return nil
				}
				g.asking = false
				g.restart()
				continue
			}
			g.submit(line)

		case <-g.advanceC:
			g.advanceC = nil
			if g.sess.Advance(g.advanceToken) {
				g.printQuestion()
			}
		}
	}
}

func (g *game) submit(line string) {
	res := g.sess.Submit(line)
	if res.Ignored() {
		return
	}

	fb := g.sess.Feedback()
	switch fb.Category() {
	case session.CategoryCorrect:
		fmt.Fprintf(g.out, "✓ %s\n", fb.Message)
	default:
		fmt.Fprintf(g.out, "✗ %s\n", fb.Message)
	}

	switch {
	case res.Advance != nil:
		g.scheduleAdvance(res.Advance)
	case res.Kind == session.FeedbackCorrect || res.Kind == session.FeedbackWrong:
		// Zero delay: the session already moved on.
		g.printQuestion()
	default:
		fmt.Fprint(g.out, "> ")
	}
}

// restart begins a fresh round on the ended session.
func (g *game) restart() {
	g.sess.Reset()
	g.sess.Start()
	g.logger.Info("replay", "session_id", g.sess.ID())
	g.printQuestion()
	g.ticker.Start()
}

func wantsReplay(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "j", "ja", "y", "yes":
		return true
	}
	return false
}

func (g *game) scheduleAdvance(a *session.Advance) {
	g.stopAdvance()
	g.advanceTimer = time.NewTimer(a.Delay)
	g.advanceC = g.advanceTimer.C
	g.advanceToken = a.Token
}

func (g *game) stopAdvance() {
	if g.advanceTimer != nil {
		g.advanceTimer.Stop()
		g.advanceTimer = nil
	}
	g.advanceC = nil
}

func (g *game) printRules() {
	fmt.Fprintln(g.out, "Rechenquiz")
	fmt.Fprintf(g.out, "Löse in %s Minuten so viele Aufgaben wie möglich. Antworten mit Enter bestätigen.\n\n",
		countdown.Format(g.sess.Duration()))
}

func (g *game) printQuestion() {
	q := g.sess.Current()
	if q == nil {
		return
	}
	fmt.Fprintf(g.out, "\n── Aufgabe %d  [%s] ──\n%s\n> ",
		g.sess.Presented(), countdown.Format(g.sess.Remaining()), q.Text)
}

func (g *game) printSummary() {
	sum := g.sess.Summary()
	if sum == nil {
		return
	}

	fmt.Fprintln(g.out, "\n\nDie Zeit ist abgelaufen!")
	fmt.Fprintf(g.out, "Richtig: %d   Falsch: %d   Aufgaben: %d   Genauigkeit: %.0f%%\n",
		sum.Correct, sum.Wrong, sum.Presented, sum.Accuracy*100)
	if sum.Won() {
		fmt.Fprintln(g.out, "Super gemacht! Du hast gewonnen!")
	} else {
		fmt.Fprintln(g.out, "Knapp daneben! Versuch es gleich nochmal.")
	}
}

// readLines scans r on its own goroutine. The channel is closed at EOF.
func readLines(r io.Reader, done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
	}()
	return lines
}
