package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/baselearn/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that show progress
// at the right of the header.
type StatusProvider interface {
	Status() string
}

// Capturer is an optional interface for screens that are currently taking
// free text input. While Capturing is true the app passes every key through
// instead of treating q and esc as global shortcuts.
type Capturer interface {
	Capturing() bool
}
