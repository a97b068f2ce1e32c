package course

import (
	"fmt"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	crs "github.com/abhisek/baselearn/internal/course"
	"github.com/abhisek/baselearn/internal/navigator"
	"github.com/abhisek/baselearn/internal/screen"
	"github.com/abhisek/baselearn/internal/ui/components"
	"github.com/abhisek/baselearn/internal/ui/layout"
)

const diagramInterval = 400 * time.Millisecond

type focus int

const (
	focusSidebar focus = iota
	focusContent
	focusEditor
)

type column int

const (
	columnTerms column = iota
	columnDescriptions
)

// CourseScreen shows the module list and the active module.
type CourseScreen struct {
	course crs.Course
	nav    navigator.Navigator
	logger *slog.Logger
	keys   keyMap

	sidebar components.Menu
	focus   focus

	// matching game cursor state
	column     column
	termCursor int
	descCursor int
	held       string

	editor     components.Editor
	feedback   string
	feedbackOK bool

	frame int
	width int
}

var _ screen.Screen = (*CourseScreen)(nil)
var _ screen.KeyHintProvider = (*CourseScreen)(nil)
var _ screen.StatusProvider = (*CourseScreen)(nil)
var _ screen.Capturer = (*CourseScreen)(nil)

// New creates the course screen around an already built navigator.
func New(c crs.Course, nav navigator.Navigator, logger *slog.Logger) *CourseScreen {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &CourseScreen{
		course: c,
		nav:    nav,
		logger: logger,
		keys:   defaultKeyMap(),
		editor: components.NewEditor("contract SimpleStorage { ... }", 60, 6),
	}

	items := make([]components.MenuItem, len(c.Modules))
	for i, m := range c.Modules {
		items[i] = components.MenuItem{
			Label:  m.Title,
			Action: selectModule(i),
		}
	}
	s.sidebar = components.NewMenu(items)
	s.sidebar.Selected = nav.Active()
	s.sidebar.Marked = nav.Active()
	s.refreshBadges()
	return s
}

func selectModule(i int) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return selectModuleMsg{Index: i} }
	}
}

func diagramTick() tea.Cmd {
	return tea.Tick(diagramInterval, func(t time.Time) tea.Msg {
		return diagramTickMsg(t)
	})
}

func (s *CourseScreen) Init() tea.Cmd {
	return diagramTick()
}

func (s *CourseScreen) Title() string {
	if m, ok := s.nav.Module(s.nav.Active()); ok {
		return m.Title
	}
	return s.course.Title
}

// Navigator returns the current navigator state.
func (s *CourseScreen) Navigator() navigator.Navigator {
	return s.nav
}

// Capturing reports whether the exercise editor has focus.
func (s *CourseScreen) Capturing() bool {
	return s.focus == focusEditor
}

// Status summarises progress in the active module for the header.
func (s *CourseScreen) Status() string {
	cur := s.nav.Snapshot().Current()
	switch cur.Kind {
	case crs.KindGame:
		return fmt.Sprintf("Score %d/%d", cur.Game.Score, cur.Game.Total)
	case crs.KindTutorial:
		return fmt.Sprintf("Step %d/%d", cur.Tutorial.Index+1, cur.Tutorial.Total)
	default:
		return ""
	}
}

func (s *CourseScreen) KeyHints() []layout.KeyHint {
	k := s.keys
	quit := layout.KeyHint{Key: "q", Description: "Quit"}

	if s.nav.Completion() {
		return hints(k.Dismiss)
	}

	switch s.focus {
	case focusEditor:
		return hints(k.Check, k.Back)
	case focusSidebar:
		return append(hints(k.Up, k.Pick, k.SwitchPane), quit)
	}

	cur := s.nav.Snapshot().Current()
	switch cur.Kind {
	case crs.KindGame:
		if cur.GameVisible {
			return append(hints(k.Up, k.Left, k.Pick, k.ResetGame, k.ToggleGame, k.SwitchPane), quit)
		}
		return append(hints(k.ToggleGame, k.SwitchPane), quit)
	case crs.KindTutorial:
		hs := hints(k.Previous, k.Next, k.Detail)
		if cur.Tutorial.ExerciseOffered {
			hs = append(hs, hints(k.Edit)...)
		}
		return append(append(hs, hints(k.SwitchPane)...), quit)
	default:
		return append(hints(k.SwitchPane), quit)
	}
}

func (s *CourseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		_, main := layout.SplitWidth(msg.Width)
		s.editor.SetSize(components.ContentWidth(main)-2, 6)
		return s, nil

	case diagramTickMsg:
		s.frame++
		return s, diagramTick()

	case selectModuleMsg:
		return s, s.handleSelect(msg.Index)

	case flagExpiredMsg:
		_, cmd := s.dispatch(msg.Event)
		return s, cmd

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}

	if s.focus == focusEditor {
		var cmd tea.Cmd
		s.editor, cmd = s.editor.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *CourseScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	// The completion notice is modal.
	if s.nav.Completion() {
		if key.Matches(msg, s.keys.Dismiss) {
			_, cmd := s.dispatch(navigator.DismissCompletion{})
			return cmd
		}
		return nil
	}

	if s.focus == focusEditor {
		return s.handleEditorKey(msg)
	}

	if i, ok := moduleShortcut(msg); ok {
		return s.handleSelect(i)
	}

	if key.Matches(msg, s.keys.SwitchPane) {
		if s.focus == focusSidebar {
			s.focus = focusContent
		} else {
			s.focus = focusSidebar
			s.sidebar.Selected = s.nav.Active()
		}
		return nil
	}

	if s.focus == focusSidebar {
		var cmd tea.Cmd
		s.sidebar, cmd = s.sidebar.Update(msg)
		return cmd
	}

	if key.Matches(msg, s.keys.Back) {
		if s.held != "" {
			s.held = ""
			s.column = columnTerms
			return nil
		}
		s.focus = focusSidebar
		s.sidebar.Selected = s.nav.Active()
		return nil
	}

	switch s.nav.Snapshot().Current().Kind {
	case crs.KindGame:
		return s.handleGameKey(msg)
	case crs.KindTutorial:
		return s.handleTutorialKey(msg)
	}
	return nil
}

// moduleShortcut maps the digit keys 1-9 to module indexes.
func moduleShortcut(msg tea.KeyPressMsg) (int, bool) {
	k := msg.String()
	if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
		return int(k[0] - '1'), true
	}
	return 0, false
}

func (s *CourseScreen) handleSelect(i int) tea.Cmd {
	eff, cmd := s.dispatch(navigator.SelectModule{Index: i})
	if eff.Err != nil {
		return cmd
	}
	s.sidebar.Marked = s.nav.Active()
	s.sidebar.Selected = s.nav.Active()
	s.focus = focusContent
	s.clearInteraction()
	return cmd
}

func (s *CourseScreen) clearInteraction() {
	s.held = ""
	s.column = columnTerms
	s.termCursor = 0
	s.descCursor = 0
	s.feedback = ""
	s.editor.Blur()
	s.syncCursors()
}

func (s *CourseScreen) handleGameKey(msg tea.KeyPressMsg) tea.Cmd {
	k := s.keys
	if key.Matches(msg, k.ToggleGame) {
		eff, cmd := s.dispatch(navigator.ToggleGame{})
		if eff.Err == nil {
			s.clearInteraction()
		}
		return cmd
	}

	if !s.nav.Snapshot().Current().GameVisible {
		return nil
	}

	switch {
	case key.Matches(msg, k.ResetGame):
		_, cmd := s.dispatch(navigator.ResetGame{})
		s.clearInteraction()
		return cmd
	case key.Matches(msg, k.Left):
		s.column = columnTerms
	case key.Matches(msg, k.Right):
		s.column = columnDescriptions
	case key.Matches(msg, k.Up):
		s.moveCursor(-1)
	case key.Matches(msg, k.Down):
		s.moveCursor(1)
	case key.Matches(msg, k.Pick):
		return s.pick()
	}
	return nil
}

func (s *CourseScreen) moveCursor(step int) {
	terms, descs := s.lists()
	switch s.column {
	case columnTerms:
		if step < 0 {
			terms = terms.Up()
		} else {
			terms = terms.Down()
		}
		s.termCursor = terms.Cursor
	case columnDescriptions:
		if step < 0 {
			descs = descs.Up()
		} else {
			descs = descs.Down()
		}
		s.descCursor = descs.Cursor
	}
}

// pick picks up the term under the cursor, or drops the held term onto the
// description under the cursor.
func (s *CourseScreen) pick() tea.Cmd {
	terms, descs := s.lists()

	if s.column == columnTerms {
		cur, ok := terms.Current()
		if !ok || cur.State == components.PickMatched {
			return nil
		}
		s.held = cur.Label
		s.column = columnDescriptions
		return nil
	}

	cur, ok := descs.Current()
	if !ok || s.held == "" || cur.State == components.PickMatched {
		return nil
	}
	term := s.held
	s.held = ""
	s.column = columnTerms

	_, cmd := s.dispatch(navigator.SubmitPair{Term: term, Description: cur.Label})
	s.syncCursors()
	return cmd
}

func (s *CourseScreen) handleTutorialKey(msg tea.KeyPressMsg) tea.Cmd {
	k := s.keys
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, k.Next):
		_, cmd = s.dispatch(navigator.NextStep{})
	case key.Matches(msg, k.Previous):
		_, cmd = s.dispatch(navigator.PreviousStep{})
	case key.Matches(msg, k.Detail):
		_, cmd = s.dispatch(navigator.ToggleDetail{})
	case key.Matches(msg, k.Edit):
		if s.nav.Snapshot().Current().Tutorial.ExerciseOffered {
			s.focus = focusEditor
			return s.editor.Focus()
		}
	}
	return cmd
}

func (s *CourseScreen) handleEditorKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Back):
		s.editor.Blur()
		s.focus = focusContent
		return nil
	case key.Matches(msg, s.keys.Check):
		eff, cmd := s.dispatch(navigator.SubmitExercise{Text: s.editor.Value()})
		if eff.Err != nil {
			return cmd
		}
		s.feedback = eff.Message
		s.feedbackOK = eff.Correct
		s.editor.Submit(eff.Correct)
		if eff.Correct {
			s.editor.Blur()
			s.focus = focusContent
		}
		return cmd
	}

	var cmd tea.Cmd
	s.editor, cmd = s.editor.Update(msg)
	return cmd
}

// dispatch runs e through the navigator, logs the outcome and schedules
// any transient flag timers.
func (s *CourseScreen) dispatch(e navigator.Event) (navigator.Effects, tea.Cmd) {
	next, eff := s.nav.Dispatch(e)
	s.nav = next
	s.logEffects(e, eff)
	s.refreshBadges()

	cmds := make([]tea.Cmd, 0, len(eff.Timers))
	for _, t := range eff.Timers {
		expire := t.Expire()
		cmds = append(cmds, tea.Tick(t.After, func(time.Time) tea.Msg {
			return flagExpiredMsg{Event: expire}
		}))
	}
	return eff, tea.Batch(cmds...)
}

func (s *CourseScreen) logEffects(e navigator.Event, eff navigator.Effects) {
	cur := s.nav.Snapshot().Current()
	attrs := []any{
		slog.String("event", fmt.Sprintf("%T", e)),
		slog.Int("module", cur.Index),
	}
	if cur.Kind == crs.KindGame {
		attrs = append(attrs, slog.String("game_id", cur.Game.ID))
	}

	switch ev := e.(type) {
	case navigator.SubmitPair:
		attrs = append(attrs, slog.String("term", ev.Term), slog.Bool("correct", eff.Correct))
		if eff.Err != nil {
			attrs = append(attrs, slog.String("reason", eff.Err.Error()))
		}
		s.logger.Info("pair submitted", attrs...)
	case navigator.SubmitExercise:
		attrs = append(attrs, slog.Bool("correct", eff.Correct))
		s.logger.Info("exercise submitted", attrs...)
	default:
		if eff.Err != nil {
			attrs = append(attrs, slog.String("reason", eff.Err.Error()))
		}
		s.logger.Debug("event", attrs...)
	}

	if eff.Completed {
		s.logger.Info("module completed", attrs[:2]...)
	}
}

// refreshBadges marks finished modules in the sidebar. A game dealt
// again loses its mark.
func (s *CourseScreen) refreshBadges() {
	for i, m := range s.nav.Snapshot().Modules {
		badge := ""
		switch m.Kind {
		case crs.KindGame:
			if m.Game.Completed() {
				badge = "✓"
			}
		case crs.KindTutorial:
			if m.Tutorial.ExerciseDone {
				badge = "✓"
			}
		}
		s.sidebar.Items[i].Badge = badge
	}
}

// lists builds the two matching game columns from the current game state.
func (s *CourseScreen) lists() (terms, descs components.PickList) {
	game := s.nav.Snapshot().Current().Game

	termItems := make([]components.PickItem, len(game.Terms))
	for i, t := range game.Terms {
		item := components.PickItem{Label: t.Term}
		switch {
		case game.Matches[t.Term] != "":
			item.State = components.PickMatched
			item.Pulse = game.HasPulse && game.Pulse == t.Term
		case s.held == t.Term:
			item.State = components.PickHeld
		}
		termItems[i] = item
	}

	descItems := make([]components.PickItem, len(game.Descriptions))
	for i, d := range game.Descriptions {
		item := components.PickItem{Label: d}
		if term, ok := game.MatchedTerm(d); ok {
			item.Note = "← " + term
			item.State = components.PickMatched
			item.Pulse = game.HasPulse && game.Pulse == term
		} else if game.HasIncorrect && game.LastIncorrect == d {
			item.State = components.PickIncorrect
		}
		descItems[i] = item
	}

	terms = components.PickList{Title: "Terms", Items: termItems, Cursor: s.termCursor, Focused: s.column == columnTerms}
	descs = components.PickList{Title: "Descriptions", Items: descItems, Cursor: s.descCursor, Focused: s.column == columnDescriptions}
	return terms, descs
}

// syncCursors keeps both cursors off matched items.
func (s *CourseScreen) syncCursors() {
	if s.nav.Snapshot().Current().Kind != crs.KindGame {
		return
	}
	terms, descs := s.lists()
	s.termCursor = terms.Settle().Cursor
	s.descCursor = descs.Settle().Cursor
}
