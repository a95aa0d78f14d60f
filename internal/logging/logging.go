// Package logging sets up the structured logger. The terminal belongs to
// the game, so records only ever go to a file.
package logging

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
)

// New returns a text logger appending to path when debug is on and a
// discarding logger otherwise. The returned close func is never nil.
// The standard library logger is redirected to the same file.
func New(debug bool, path string) (*slog.Logger, func() error, error) {
	if !debug {
		return Discard(), func() error { return nil }, nil
	}

	f, err := tea.LogToFile(path, "rechenquiz")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), f.Close, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
