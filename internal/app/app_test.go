package app

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rechenquiz/rechenquiz/internal/problemgen"
	"github.com/rechenquiz/rechenquiz/internal/session"
)

type fixedGenerator struct{}

func (fixedGenerator) Generate() *problemgen.Question {
	return problemgen.NewQuestion(problemgen.OpAddition, 10, 5)
}

func newTestApp() (AppModel, *session.Session) {
	sess := session.New(fixedGenerator{}, session.Config{Duration: 2})
	return New(Options{Session: sess, TickInterval: time.Second}), sess
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("expected AppModel, got %T", next)
	}
	return am, cmd
}

func TestWindowSize(t *testing.T) {
	m, _ := newTestApp()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.width != 100 || m.height != 30 {
		t.Errorf("size = %dx%d, want 100x30", m.width, m.height)
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestApp()
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestStartFlow(t *testing.T) {
	m, sess := newTestApp()

	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command from start screen")
	}
	m, _ = update(t, m, cmd())

	if m.router.Depth() != 2 {
		t.Fatalf("expected quiz pushed, depth = %d", m.router.Depth())
	}
	if m.router.Active().Title() != "Quiz" {
		t.Errorf("active = %q, want Quiz", m.router.Active().Title())
	}
	if sess.Status() != session.StatusRunning {
		t.Errorf("expected running session, got %v", sess.Status())
	}
	if m.headerStatus() == "" {
		t.Error("expected score in header once a run started")
	}
}

func TestHeaderStatus_EmptyBeforeFirstRun(t *testing.T) {
	m, _ := newTestApp()
	if got := m.headerStatus(); got != "" {
		t.Errorf("headerStatus = %q, want empty", got)
	}
}
