package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/baselearn/internal/ui/theme"
)

// Editor wraps bubbles/textarea as a small code editor with a verdict
// marker after submission.
type Editor struct {
	Model     textarea.Model
	submitted bool
	valid     bool
}

// NewEditor creates an unfocused editor of the given size.
func NewEditor(placeholder string, width, height int) Editor {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = true
	ta.SetWidth(width)
	ta.SetHeight(height)
	return Editor{Model: ta}
}

// Focus gives the editor keyboard focus.
func (e *Editor) Focus() tea.Cmd {
	return e.Model.Focus()
}

// Blur removes keyboard focus.
func (e *Editor) Blur() {
	e.Model.Blur()
}

// Focused reports whether the editor has keyboard focus.
func (e Editor) Focused() bool {
	return e.Model.Focused()
}

// SetSize resizes the editor.
func (e *Editor) SetSize(width, height int) {
	e.Model.SetWidth(width)
	e.Model.SetHeight(height)
}

// Update handles messages. Editing clears the previous verdict.
func (e Editor) Update(msg tea.Msg) (Editor, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok && e.Model.Focused() {
		e.submitted = false
	}
	var cmd tea.Cmd
	e.Model, cmd = e.Model.Update(msg)
	return e, cmd
}

// View renders the editor.
func (e Editor) View() string {
	view := e.Model.View()
	if e.submitted {
		if e.valid {
			view += "\n" + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current text.
func (e Editor) Value() string {
	return e.Model.Value()
}

// SetValue replaces the current text.
func (e *Editor) SetValue(s string) {
	e.Model.SetValue(s)
}

// Submit marks the editor as submitted with a validation result.
func (e *Editor) Submit(valid bool) {
	e.submitted = true
	e.valid = valid
}

// Verdict reports the last validation result and whether one is shown.
func (e Editor) Verdict() (valid, shown bool) {
	return e.valid, e.submitted
}
