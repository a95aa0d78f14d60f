package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/rechenquiz/rechenquiz/internal/ui/layout"
	"github.com/rechenquiz/rechenquiz/internal/ui/theme"
)

// defaultButtonKeys fire a button when no keys are given.
var defaultButtonKeys = []string{"enter", "space"}

// Button is a single action the player can trigger from the keyboard.
// A disabled button renders dimmed and ignores its keys.
type Button struct {
	Label    string
	Keys     []string
	Disabled bool
	OnPress  func() tea.Cmd
}

// NewButton creates a button fired by keys, or Enter and Space if none are given.
func NewButton(label string, onPress func() tea.Cmd, keys ...string) Button {
	if len(keys) == 0 {
		keys = defaultButtonKeys
	}
	return Button{
		Label:   label,
		Keys:    keys,
		OnPress: onPress,
	}
}

// Pressed reports whether msg is one of the button's keys.
func (b Button) Pressed(msg tea.Msg) bool {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || b.Disabled {
		return false
	}
	key := kmsg.String()
	for _, k := range b.Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Update runs OnPress when one of the button's keys is pressed.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if b.Pressed(msg) && b.OnPress != nil {
		return b, b.OnPress()
	}
	return b, nil
}

// KeyHint describes the button for the footer.
func (b Button) KeyHint() layout.KeyHint {
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		keys[i] = keyLabel(k)
	}
	return layout.KeyHint{Key: strings.Join(keys, "/"), Description: b.Label}
}

// View renders the button with its first key.
func (b Button) View() string {
	label := "▸ " + b.Label
	if len(b.Keys) > 0 {
		label += "  [" + keyLabel(b.Keys[0]) + "]"
	}
	if b.Disabled {
		return theme.ButtonInactive.Render(label)
	}
	return theme.ButtonActive.Render(label)
}

func keyLabel(key string) string {
	switch key {
	case "enter":
		return "Enter"
	case "space":
		return "Leertaste"
	case "esc":
		return "Esc"
	}
	return key
}
