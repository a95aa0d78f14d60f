package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// tickMsg is one countdown step for the run identified by SessionID.
type tickMsg struct {
	SessionID string
}

// advanceMsg is sent when the feedback delay for Token has elapsed.
type advanceMsg struct {
	SessionID string
	Token     uint64
}

// tickCmd schedules the next countdown step.
func tickCmd(sessionID string, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{SessionID: sessionID}
	})
}

// advanceCmd schedules the move to the next question.
func advanceCmd(sessionID string, token uint64, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return advanceMsg{SessionID: sessionID, Token: token}
	})
}
