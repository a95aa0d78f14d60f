package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rechenquiz/rechenquiz/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
}

// recordingScreen counts forwarded messages.
type recordingScreen struct {
	stubScreen
	received int
}

func (s *recordingScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.received++
	return s, nil
}

func TestNavigationMessages(t *testing.T) {
	s1 := &stubScreen{title: "start"}
	r := New(s1)

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "quiz"}})
	if r.Depth() != 2 || r.Active().Title() != "quiz" {
		t.Fatalf("expected quiz on top at depth 2, got %q at %d", r.Active().Title(), r.Depth())
	}

	r.Update(ReplaceScreenMsg{Screen: &stubScreen{title: "summary"}})
	if r.Depth() != 2 || r.Active().Title() != "summary" {
		t.Fatalf("expected summary on top at depth 2, got %q at %d", r.Active().Title(), r.Depth())
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active().Title() != "start" {
		t.Fatalf("expected start at depth 1, got %q at %d", r.Active().Title(), r.Depth())
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	bottom := &recordingScreen{stubScreen: stubScreen{title: "bottom"}}
	r := New(bottom)
	top := &recordingScreen{stubScreen: stubScreen{title: "top"}}
	r.Push(top)

	r.Update(struct{}{})
	r.Update(struct{}{})

	if top.received != 2 {
		t.Errorf("expected top to receive 2 messages, got %d", top.received)
	}
	if bottom.received != 0 {
		t.Errorf("expected bottom to receive nothing, got %d", bottom.received)
	}
	if r.View(80, 24) != "top" {
		t.Errorf("expected view of active screen, got %q", r.View(80, 24))
	}
}
