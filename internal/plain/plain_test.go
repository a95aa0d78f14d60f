package plain

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rechenquiz/rechenquiz/internal/countdown"
	"github.com/rechenquiz/rechenquiz/internal/problemgen"
	"github.com/rechenquiz/rechenquiz/internal/session"
)

// sequenceGenerator asks 20+1, 20+2, ...
type sequenceGenerator struct {
	calls int
}

func (g *sequenceGenerator) Generate() *problemgen.Question {
	g.calls++
	return problemgen.NewQuestion(problemgen.OpAddition, 20, g.calls)
}

func TestRun_AnswersUntilInputCloses(t *testing.T) {
	sess := session.New(&sequenceGenerator{}, session.Config{Duration: 180, Retries: 1})
	var out bytes.Buffer

	err := Run(context.Background(), Options{
		In:      strings.NewReader("21\nabc\n1\n2\n"),
		Out:     &out,
		Session: sess,
		Ticker:  countdown.New(time.Hour),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"20 + 1 = ?",
		"✓ Korrekt!",
		"20 + 2 = ?",
		"✗ Bitte gib eine Zahl ein.",
		"✗ Falsch. Versuch es nochmal!",
		"✗ Falsch. Die richtige Antwort war 22.",
		"20 + 3 = ?",
		"(Eingabe beendet)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	for _, bad := range []string{"✗ Korrekt", "✓ Falsch", "✓ Bitte"} {
		if strings.Contains(got, bad) {
			t.Errorf("output has wrong glyph %q:\n%s", bad, got)
		}
	}
	if n := strings.Count(got, "✓ "); n != 1 {
		t.Errorf("got %d ✓ lines, want 1:\n%s", n, got)
	}
	if sess.Correct() != 1 || sess.Wrong() != 1 {
		t.Errorf("counts = %d/%d, want 1/1", sess.Correct(), sess.Wrong())
	}
}

func TestRun_ClockEndsSession(t *testing.T) {
	sess := session.New(&sequenceGenerator{}, session.Config{Duration: 3})
	pr, pw := io.Pipe()
	defer pw.Close()
	var out bytes.Buffer

	err := Run(context.Background(), Options{
		In:      pr,
		Out:     &out,
		Session: sess,
		Ticker:  countdown.New(5 * time.Millisecond),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if sess.Status() != session.StatusEnded {
		t.Fatalf("expected ended session, got %v", sess.Status())
	}
	got := out.String()
	if !strings.Contains(got, "Die Zeit ist abgelaufen!") {
		t.Errorf("expected summary in output:\n%s", got)
	}
	if !strings.Contains(got, "Knapp daneben") {
		t.Errorf("expected loss message for 0:0:\n%s", got)
	}
}

func TestRun_DelayedAdvance(t *testing.T) {
	sess := session.New(&sequenceGenerator{}, session.Config{
		Duration:     1,
		CorrectDelay: 5 * time.Millisecond,
	})
	pr, pw := io.Pipe()
	defer pw.Close()
	go func() {
		_, _ = pw.Write([]byte("21\n"))
	}()
	var out bytes.Buffer

	err := Run(context.Background(), Options{
		In:      pr,
		Out:     &out,
		Session: sess,
		Ticker:  countdown.New(500 * time.Millisecond),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "20 + 2 = ?") {
		t.Errorf("expected second question after the delay:\n%s", got)
	}
	if !strings.Contains(got, "Super gemacht") {
		t.Errorf("expected win message:\n%s", got)
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	sess := session.New(&sequenceGenerator{}, session.DefaultConfig())
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, Options{
		In:      pr,
		Out:     io.Discard,
		Session: sess,
		Ticker:  countdown.New(time.Hour),
	})
	if err != nil {
		t.Errorf("err = %v, want nil for an interrupted game", err)
	}
}

func TestRun_DeadlineIsAnError(t *testing.T) {
	sess := session.New(&sequenceGenerator{}, session.DefaultConfig())
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	err := Run(ctx, Options{
		In:      pr,
		Out:     io.Discard,
		Session: sess,
		Ticker:  countdown.New(time.Hour),
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want context.DeadlineExceeded", err)
	}
}

// manualClock ticks only when the test sends on c.
type manualClock struct {
	c       chan time.Time
	started bool
	starts  int
}

func (m *manualClock) Start() {
	m.started = true
	m.starts++
}

func (m *manualClock) Stop() { m.started = false }

func (m *manualClock) C() <-chan time.Time {
	if !m.started {
		return nil
	}
	return m.c
}

func TestRun_Replay(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		rounds  int
	}{
		{"play again then stop", []string{"j", "n"}, 2},
		{"yes in english", []string{"Yes", "nein"}, 2},
		{"stop at once", []string{"n"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := session.New(&sequenceGenerator{}, session.Config{Duration: 1})
			clock := &manualClock{c: make(chan time.Time)}
			pr, pw := io.Pipe()
			defer pw.Close()
			var out bytes.Buffer

			errc := make(chan error, 1)
			go func() {
				errc <- Run(context.Background(), Options{
					In:      pr,
					Out:     &out,
					Session: sess,
					Ticker:  clock,
					Replay:  true,
				})
			}()

			for _, answer := range tt.answers {
				clock.c <- time.Time{}
				if _, err := pw.Write([]byte(answer + "\n")); err != nil {
					t.Fatalf("write: %v", err)
				}
			}

			select {
			case err := <-errc:
				if err != nil {
					t.Fatalf("Run: %v", err)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("Run did not return after the last answer")
			}

			got := out.String()
			if n := strings.Count(got, "Die Zeit ist abgelaufen!"); n != tt.rounds {
				t.Errorf("got %d summaries, want %d:\n%s", n, tt.rounds, got)
			}
			if n := strings.Count(got, "Nochmal spielen? (j/n)"); n != tt.rounds {
				t.Errorf("got %d prompts, want %d", n, tt.rounds)
			}
			if clock.starts != tt.rounds {
				t.Errorf("clock started %d times, want %d", clock.starts, tt.rounds)
			}
			if sess.Status() != session.StatusEnded {
				t.Errorf("status = %v, want ended", sess.Status())
			}
		})
	}
}

func TestWantsReplay(t *testing.T) {
	for line, want := range map[string]bool{
		"j": true, " JA ": true, "y": true, "yes": true,
		"n": false, "": false, "jein": false,
	} {
		if got := wantsReplay(line); got != want {
			t.Errorf("wantsReplay(%q) = %v, want %v", line, got, want)
		}
	}
}

func TestRun_RejectsRunningSession(t *testing.T) {
	sess := session.New(&sequenceGenerator{}, session.DefaultConfig())
	sess.Start()

	err := Run(context.Background(), Options{
		In:      strings.NewReader(""),
		Out:     io.Discard,
		Session: sess,
	})
	if err == nil {
		t.Error("expected error for a session that is already running")
	}
}
