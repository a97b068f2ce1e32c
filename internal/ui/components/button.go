package components

import (
	"github.com/abhisek/baselearn/internal/ui/theme"
)

// Button is a labelled action with an optional key shown next to it.
type Button struct {
	Label    string
	Key      string
	Active   bool
	Disabled bool
}

// NewButton creates a new button.
func NewButton(label, key string) Button {
	return Button{Label: label, Key: key}
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label = "[" + b.Key + "] " + label
	}
	switch {
	case b.Disabled:
		return theme.ButtonDisabled.Render(label)
	case b.Active:
		return theme.ButtonActive.Render("▸ " + label)
	default:
		return theme.ButtonInactive.Render(label)
	}
}
