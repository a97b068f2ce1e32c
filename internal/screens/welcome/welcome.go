package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/baselearn/internal/router"
	"github.com/abhisek/baselearn/internal/screen"
	"github.com/abhisek/baselearn/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// Tagline is shown under the banner.
const Tagline = "Learn how Base scales Ethereum"

// The two layers stacked, with a connector that animates between them.
const (
	layer2Box = `╭──────────────────────╮
│    Base  (Layer 2)   │
╰──────────────────────╯`
	layer1Box = `╭──────────────────────╮
│  Ethereum (Layer 1)  │
╰──────────────────────╯`
)

var connectorFrames = []string{"│", "┃", "║", "┃"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation, then replaces itself with the
// screen produced by next on the first key press.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips whatever is left of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	nextScreen := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: nextScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	// Phase 1+: the Layer 1 box
	l1 := lipgloss.NewStyle().Foreground(theme.Ethereum).Render(layer1Box)

	// Phase 2+: Layer 2 lands on top, joined by a pulsing connector
	if w.elapsed >= phase1End {
		l2 := lipgloss.NewStyle().Foreground(theme.Primary).Render(layer2Box)
		c := connectorFrames[w.tickCount%len(connectorFrames)]
		connector := lipgloss.NewStyle().Foreground(theme.Secondary).Render(c + "\n" + c)
		sections = append(sections, lipgloss.JoinVertical(lipgloss.Center, l2, connector, l1))
	} else {
		sections = append(sections, l1)
	}

	// Phase 3+: banner + tagline + hint
	if w.elapsed >= phase2End {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(Tagline)
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to start")
		sections = append(sections, "", RenderBanner(width), "", tagline, "", hint)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
