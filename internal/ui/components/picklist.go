package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/baselearn/internal/ui/theme"
)

// PickState is the visual state of a PickList item.
type PickState int

const (
	PickOpen PickState = iota
	PickHeld
	PickMatched
	PickIncorrect
)

// PickItem is one entry of a PickList.
type PickItem struct {
	Label string
	Note  string
	State PickState

	// Pulse highlights a matched item that was just paired.
	Pulse bool
}

// PickList is a column of items with a cursor, used for the two sides of
// the matching game.
type PickList struct {
	Title   string
	Items   []PickItem
	Cursor  int
	Focused bool
}

// NewPickList creates a list with the cursor on the first open item.
func NewPickList(title string, items []PickItem) PickList {
	p := PickList{Title: title, Items: items}
	p.Cursor = p.nextOpen(-1, 1)
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	return p
}

// Up moves the cursor to the previous item that is not matched.
func (p PickList) Up() PickList {
	if i := p.nextOpen(p.Cursor, -1); i >= 0 {
		p.Cursor = i
	}
	return p
}

// Down moves the cursor to the next item that is not matched.
func (p PickList) Down() PickList {
	if i := p.nextOpen(p.Cursor, 1); i >= 0 {
		p.Cursor = i
	}
	return p
}

// Current returns the item under the cursor.
func (p PickList) Current() (PickItem, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return PickItem{}, false
	}
	return p.Items[p.Cursor], true
}

// Settle moves the cursor off a matched item if there is an open one.
func (p PickList) Settle() PickList {
	if cur, ok := p.Current(); ok && cur.State != PickMatched {
		return p
	}
	if i := p.nextOpen(p.Cursor, 1); i >= 0 {
		p.Cursor = i
	} else if i := p.nextOpen(p.Cursor, -1); i >= 0 {
		p.Cursor = i
	}
	return p
}

func (p PickList) nextOpen(from, step int) int {
	for i := from + step; i >= 0 && i < len(p.Items); i += step {
		if p.Items[i].State != PickMatched {
			return i
		}
	}
	return -1
}

// View renders the list at the given width.
func (p PickList) View(width int) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render(p.Title))
	b.WriteString("\n\n")

	for i, item := range p.Items {
		label := item.Label
		if item.Note != "" {
			label += "  " + theme.Hint.Render(item.Note)
		}

		prefix := "  "
		if p.Focused && i == p.Cursor {
			prefix = "▸ "
		}

		var style lipgloss.Style
		switch item.State {
		case PickHeld:
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		case PickMatched:
			style = theme.Correct
			if item.Pulse {
				style = theme.Pulse
			}
			prefix = "✓ "
		case PickIncorrect:
			style = theme.Incorrect
		default:
			if p.Focused && i == p.Cursor {
				style = theme.Selected
			} else {
				style = theme.Unselected
			}
		}

		box := lipgloss.NewStyle().
			Width(width).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderFor(item.State)).
			Render(style.Render(prefix + label))
		b.WriteString(box)
		b.WriteString("\n")
	}
	return b.String()
}

func borderFor(s PickState) color.Color {
	switch s {
	case PickMatched:
		return theme.Success
	case PickIncorrect:
		return theme.Error
	case PickHeld:
		return theme.Accent
	default:
		return theme.Border
	}
}
