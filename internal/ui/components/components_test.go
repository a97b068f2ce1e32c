package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chosenMsg struct{ label string }

func TestMenuNavigation(t *testing.T) {
	items := []MenuItem{
		{Label: "One", Action: func() tea.Cmd { return func() tea.Msg { return chosenMsg{"One"} } }},
		{Label: "Two", Disabled: true},
		{Label: "Three", Action: func() tea.Cmd { return func() tea.Msg { return chosenMsg{"Three"} } }},
	}
	m := NewMenu(items)
	assert.Equal(t, 0, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, m.Selected, "disabled items are skipped")

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, m.Selected, "cursor stops at the end")

	m, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, chosenMsg{"Three"}, cmd())

	m, _ = m.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	assert.Equal(t, 0, m.Selected)
}

func TestMenuView(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Understanding Base"}, {Label: "Smart Contracts", Badge: "✓"}})
	m.Marked = 1
	out := m.View(40, true)
	assert.Contains(t, out, "1. Understanding Base")
	assert.Contains(t, out, "2. Smart Contracts ✓")
	assert.Contains(t, out, "▸")
}

func TestProgressBar(t *testing.T) {
	p := NewProgressBar("Score", 3, 4, 40)
	assert.InDelta(t, 0.75, p.Fraction(), 0.001)
	assert.Contains(t, p.View(), "3/4")

	assert.Zero(t, NewProgressBar("", 1, 0, 10).Fraction())
	assert.Equal(t, 1.0, NewProgressBar("", 9, 4, 10).Fraction())
}

func TestButtonView(t *testing.T) {
	assert.Contains(t, NewButton("Next", "→").View(), "[→] Next")

	active := Button{Label: "Close", Active: true}
	assert.Contains(t, active.View(), "▸ Close")
}

func TestPickListSkipsMatched(t *testing.T) {
	p := NewPickList("Terms", []PickItem{
		{Label: "a", State: PickMatched},
		{Label: "b"},
		{Label: "c", State: PickMatched},
		{Label: "d"},
	})
	assert.Equal(t, 1, p.Cursor)

	p = p.Down()
	assert.Equal(t, 3, p.Cursor)
	p = p.Down()
	assert.Equal(t, 3, p.Cursor)
	p = p.Up()
	assert.Equal(t, 1, p.Cursor)

	cur, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, "b", cur.Label)
}

func TestPickListSettle(t *testing.T) {
	p := PickList{Items: []PickItem{{Label: "a"}, {Label: "b", State: PickMatched}}, Cursor: 1}
	p = p.Settle()
	assert.Equal(t, 0, p.Cursor)
}

func TestPickListView(t *testing.T) {
	p := NewPickList("Descriptions", []PickItem{{Label: "first"}, {Label: "second", State: PickIncorrect}})
	p.Focused = true
	out := p.View(30)
	assert.True(t, strings.HasPrefix(out, "Descriptions") || strings.Contains(out, "Descriptions"))
	assert.Contains(t, out, "▸ first")
	assert.Contains(t, out, "second")
}

func TestEditor(t *testing.T) {
	e := NewEditor("type here", 40, 5)
	e.SetValue("contract A {}")
	assert.Equal(t, "contract A {}", e.Value())

	e.Submit(false)
	valid, shown := e.Verdict()
	assert.False(t, valid)
	assert.True(t, shown)
	assert.Contains(t, e.View(), "✗")
}

func TestModalCentersContent(t *testing.T) {
	out := Modal("Success!", 60, 20)
	assert.Contains(t, out, "Success!")
}
