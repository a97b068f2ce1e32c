package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/baselearn/internal/course"
	"github.com/abhisek/baselearn/internal/navigator"
	"github.com/abhisek/baselearn/internal/router"
	"github.com/abhisek/baselearn/internal/screen"
	coursescreen "github.com/abhisek/baselearn/internal/screens/course"
	"github.com/abhisek/baselearn/internal/screens/welcome"
	"github.com/abhisek/baselearn/internal/ui/layout"
)

// Options holds the dependencies the app is built from.
type Options struct {
	Course      course.Course
	Navigator   []navigator.Option
	Logger      *slog.Logger
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel builds the navigator and the initial screen stack.
func newAppModel(opts Options) (AppModel, error) {
	if len(opts.Course.Modules) == 0 {
		return AppModel{}, errors.New("no course loaded")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	nav, err := navigator.New(opts.Course, opts.Navigator...)
	if err != nil {
		return AppModel{}, fmt.Errorf("build navigator: %w", err)
	}
	courseFactory := func() screen.Screen {
		return coursescreen.New(opts.Course, nav, logger)
	}

	var initial screen.Screen
	if opts.SkipWelcome {
		initial = courseFactory()
	} else {
		initial = welcome.New(courseFactory)
	}
	return AppModel{router: router.New(initial)}, nil
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.router.Update(msg)

	case router.PushScreenMsg, router.ReplaceScreenMsg:
		// New screens have not seen the terminal size yet.
		return m, tea.Batch(m.router.Update(msg), m.resize())

	case tea.KeyPressMsg:
		capturing := false
		if c, ok := m.router.Active().(screen.Capturer); ok {
			capturing = c.Capturing()
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if !capturing {
				return m, tea.Quit
			}
		case "esc":
			if m.router.Depth() > 1 && !capturing {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) resize() tea.Cmd {
	if m.width == 0 || m.height == 0 {
		return nil
	}
	size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
	return func() tea.Msg { return size }
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}
	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
