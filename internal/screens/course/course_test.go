package course

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crs "github.com/abhisek/baselearn/internal/course"
	"github.com/abhisek/baselearn/internal/navigator"
)

const simpleStorage = "contract SimpleStorage { uint256 public number; function set(uint256 _number) public { number = _number; } function get() public view returns (uint256) { return number; } }"

var (
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyEsc   = tea.KeyPressMsg{Code: tea.KeyEscape}
	keyTab   = tea.KeyPressMsg{Code: tea.KeyTab}
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
	keyCtrlS = tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
)

func runeKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestScreen(t *testing.T, opts ...navigator.Option) *CourseScreen {
	t.Helper()
	c, err := crs.Default()
	require.NoError(t, err)
	opts = append([]navigator.Option{navigator.WithIncorrectFlash(time.Millisecond), navigator.WithMatchPulse(time.Millisecond)}, opts...)
	nav, err := navigator.New(c, opts...)
	require.NoError(t, err)
	s := New(c, nav, nil)
	s.Update(tea.WindowSizeMsg{Width: 140, Height: 60})
	return s
}

func press(s *CourseScreen, keys ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = s.Update(k)
	}
	return cmd
}

// drain runs cmd and returns every message it produces, unpacking batches.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestInitialState(t *testing.T) {
	s := newTestScreen(t)

	assert.Equal(t, "Understanding Base", s.Title())
	assert.Equal(t, "Score 0/4", s.Status())
	assert.False(t, s.Capturing())
	assert.NotNil(t, s.Init())

	view := s.View(140, 200)
	assert.Contains(t, view, "Base Learning Modules")
	assert.Contains(t, view, "What is Base?")
	assert.Contains(t, view, "Base (Layer 2)")
	assert.Contains(t, view, "Show Matching Game")
}

func TestModuleShortcuts(t *testing.T) {
	s := newTestScreen(t)

	press(s, runeKey('2'))
	assert.Equal(t, 1, s.Navigator().Active())
	assert.Equal(t, "Smart Contracts on Base", s.Title())
	assert.Equal(t, "Step 1/5", s.Status())

	press(s, runeKey('9'))
	assert.Equal(t, 1, s.Navigator().Active(), "out of range shortcut is ignored")
}

func TestSidebarSelection(t *testing.T) {
	s := newTestScreen(t)

	cmd := press(s, keyDown, keyEnter)
	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	s.Update(msgs[0])

	assert.Equal(t, 1, s.Navigator().Active())
	assert.Equal(t, focusContent, s.focus)
	assert.Equal(t, 1, s.sidebar.Marked)
}

func TestMatchingGameCompletes(t *testing.T) {
	s := newTestScreen(t)
	press(s, keyTab, runeKey('g'))
	require.True(t, s.Navigator().Snapshot().Current().GameVisible)
	assert.Contains(t, s.View(140, 60), "Match the Terms!")

	// Without a shuffler both columns are in answer key order, and the
	// cursors settle on the next open pair after each match.
	for i := range 4 {
		cmd := press(s, keyEnter, keyEnter)
		if i < 3 {
			assert.NotNil(t, cmd, "pulse timer after match %d", i+1)
		}
	}

	nav := s.Navigator()
	assert.True(t, nav.Completion())
	assert.Equal(t, 4, nav.Snapshot().Current().Game.Score)
	assert.Contains(t, s.View(140, 60), SuccessMessage)
	assert.Equal(t, "Close", s.KeyHints()[0].Description)
	assert.Equal(t, "✓", s.sidebar.Items[0].Badge)

	press(s, runeKey('x'))
	assert.True(t, s.Navigator().Completion(), "other keys do not close the notice")

	press(s, keyEnter)
	assert.False(t, s.Navigator().Completion())
}

func TestBadgeClearedByFreshDeal(t *testing.T) {
	s := newTestScreen(t)
	press(s, keyTab, runeKey('g'))
	for range 4 {
		press(s, keyEnter, keyEnter)
	}
	require.Equal(t, "✓", s.sidebar.Items[0].Badge)

	press(s, keyEnter, runeKey('g'))
	require.True(t, s.Navigator().Snapshot().Current().GameVisible)
	assert.Equal(t, 0, s.Navigator().Snapshot().Current().Game.Score)
	assert.Empty(t, s.sidebar.Items[0].Badge)
}

func TestBadgeClearedByResetOnLeave(t *testing.T) {
	s := newTestScreen(t, navigator.WithResetOnLeave(true))
	press(s, keyTab, runeKey('g'))
	for range 4 {
		press(s, keyEnter, keyEnter)
	}
	press(s, keyEnter)
	require.Equal(t, "✓", s.sidebar.Items[0].Badge)

	press(s, runeKey('2'))
	assert.Empty(t, s.sidebar.Items[0].Badge)
}

func TestMatchingGameIncorrectFlash(t *testing.T) {
	s := newTestScreen(t)
	press(s, keyTab, runeKey('g'))

	// Pick "Layer 2", move to the second description, drop.
	cmd := press(s, keyEnter, keyDown, keyEnter)
	game := s.Navigator().Snapshot().Current().Game
	assert.Equal(t, 0, game.Score)
	require.True(t, game.HasIncorrect)
	assert.Equal(t, "Assume transactions are valid", game.LastIncorrect)

	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	s.Update(msgs[0])
	assert.False(t, s.Navigator().Snapshot().Current().Game.HasIncorrect)
}

func TestHoldAndRelease(t *testing.T) {
	s := newTestScreen(t)
	press(s, keyTab, runeKey('g'), keyEnter)
	assert.Equal(t, "Layer 2", s.held)
	assert.Contains(t, s.View(140, 60), "Holding: Layer 2")

	press(s, keyEsc)
	assert.Empty(t, s.held)
	assert.Equal(t, focusContent, s.focus)

	press(s, keyEsc)
	assert.Equal(t, focusSidebar, s.focus)
}

func TestToggleGameHides(t *testing.T) {
	s := newTestScreen(t)
	press(s, keyTab, runeKey('g'), keyEnter, keyEnter)
	require.Equal(t, 1, s.Navigator().Snapshot().Current().Game.Score)

	press(s, runeKey('g'))
	assert.False(t, s.Navigator().Snapshot().Current().GameVisible)

	press(s, runeKey('g'))
	assert.Equal(t, 0, s.Navigator().Snapshot().Current().Game.Score, "showing again deals a fresh game")
}

func TestTutorialNavigation(t *testing.T) {
	s := newTestScreen(t)
	press(s, runeKey('2'))

	view := s.View(140, 200)
	assert.Contains(t, view, "What is a Smart Contract?")
	assert.Contains(t, view, "More Info")

	press(s, runeKey('i'))
	assert.Contains(t, s.View(140, 200), "Hide Info")

	for range 6 {
		press(s, runeKey('n'))
	}
	assert.Equal(t, "Step 5/5", s.Status())
	assert.Contains(t, s.View(140, 200), "Write the Smart Contract")

	press(s, runeKey('p'))
	assert.Equal(t, "Step 4/5", s.Status())
}

// words strips styling and collapses whitespace so wrapped output compares
// against one-line text.
func words(s string) string {
	return strings.Join(strings.Fields(ansi.Strip(s)), " ")
}

func TestExerciseShowsReference(t *testing.T) {
	s := newTestScreen(t)
	press(s, runeKey('2'))
	assert.NotContains(t, words(s.View(140, 200)), "Reference:")

	for range 4 {
		press(s, runeKey('n'))
	}
	view := words(s.View(140, 200))
	assert.Contains(t, view, "Reference:")
	assert.Contains(t, view, simpleStorage)
}

func TestExerciseFlow(t *testing.T) {
	s := newTestScreen(t)
	press(s, runeKey('2'))
	for range 4 {
		press(s, runeKey('n'))
	}

	press(s, runeKey('e'))
	require.True(t, s.Capturing())
	assert.Equal(t, "Check", s.KeyHints()[0].Description)

	s.editor.SetValue("contract Nope {}")
	press(s, keyCtrlS)
	assert.False(t, s.Navigator().Completion())
	assert.False(t, s.feedbackOK)
	assert.True(t, strings.HasPrefix(s.feedback, "Incorrect."))
	assert.True(t, s.Capturing(), "editor keeps focus after a wrong answer")

	s.editor.SetValue("\n  " + simpleStorage + "  \n")
	press(s, keyCtrlS)
	assert.True(t, s.Navigator().Completion())
	assert.True(t, s.feedbackOK)
	assert.True(t, strings.HasPrefix(s.feedback, "Correct!"))
	assert.False(t, s.Capturing())

	press(s, keyEnter)
	assert.False(t, s.Navigator().Completion())
	assert.Contains(t, s.View(140, 200), "Exercise complete")
	assert.Equal(t, "✓", s.sidebar.Items[1].Badge)
}

func TestEditorEscape(t *testing.T) {
	s := newTestScreen(t)
	press(s, runeKey('2'))
	for range 4 {
		press(s, runeKey('n'))
	}
	press(s, runeKey('e'))
	require.True(t, s.Capturing())

	press(s, runeKey('1'))
	assert.Equal(t, 1, s.Navigator().Active(), "digits are typed, not shortcuts, while editing")

	press(s, keyEsc)
	assert.False(t, s.Capturing())
}

func TestEditNotOfferedBeforeLastStep(t *testing.T) {
	s := newTestScreen(t)
	press(s, runeKey('2'), runeKey('e'))
	assert.False(t, s.Capturing())
}

func TestResetOnLeaveThroughScreen(t *testing.T) {
	s := newTestScreen(t, navigator.WithResetOnLeave(true))
	press(s, runeKey('2'), runeKey('n'), runeKey('n'), runeKey('1'), runeKey('2'))
	assert.Equal(t, "Step 1/5", s.Status())
}

func TestCompactLayoutDropsSidebar(t *testing.T) {
	s := newTestScreen(t)
	view := s.View(90, 60)
	assert.NotContains(t, view, "Base Learning Modules")
	assert.Contains(t, view, "Understanding Base")
}
