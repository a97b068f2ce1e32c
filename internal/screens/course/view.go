package course

import (
	"strings"

	"charm.land/lipgloss/v2"

	crs "github.com/abhisek/baselearn/internal/course"
	"github.com/abhisek/baselearn/internal/navigator"
	"github.com/abhisek/baselearn/internal/ui/components"
	"github.com/abhisek/baselearn/internal/ui/layout"
	"github.com/abhisek/baselearn/internal/ui/theme"
)

// SuccessMessage is shown in the completion notice.
const SuccessMessage = "You've completed the module. Great job!"

func (s *CourseScreen) View(width, height int) string {
	if s.nav.Completion() {
		return renderCompletion(width, height)
	}

	sideWidth, mainWidth := layout.SplitWidth(width)
	snap := s.nav.Snapshot()

	main := s.renderModule(snap.Current(), mainWidth)
	main = lipgloss.NewStyle().
		Width(mainWidth).
		MaxHeight(height).
		Padding(0, 1).
		Render(main)

	if sideWidth == 0 {
		return main
	}

	side := s.renderSidebar(sideWidth, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, side, main)
}

func (s *CourseScreen) renderSidebar(width, height int) string {
	title := theme.Title.Render(s.course.Title)
	menu := s.sidebar.View(width-3, s.focus == focusSidebar)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(theme.Border).
		Render(title + "\n\n" + menu)
}

func (s *CourseScreen) renderModule(cur navigator.ModuleSnapshot, width int) string {
	m, _ := s.nav.Module(cur.Index)
	cw := components.ContentWidth(width)

	var sections []string
	heading := m.Heading
	if heading == "" {
		heading = m.Title
	}
	sections = append(sections, theme.Title.Render(heading))

	switch cur.Kind {
	case crs.KindTutorial:
		sections = append(sections, s.renderTutorial(m, cur, cw))
	case crs.KindGame:
		if cur.GameVisible {
			sections = append(sections, s.renderGame(m, cur, cw))
			break
		}
		sections = append(sections, renderReading(m, s.frame, cw))
		sections = append(sections, components.Button{Label: "Show Matching Game", Key: "g", Active: s.focus == focusContent}.View())
	default:
		sections = append(sections, renderReading(m, s.frame, cw))
	}

	return strings.Join(sections, "\n\n")
}

func renderReading(m crs.Module, frame, width int) string {
	var parts []string
	for _, sec := range m.Sections {
		parts = append(parts, renderSection(sec, width))
	}
	if m.Diagram != nil {
		parts = append(parts, renderDiagram(*m.Diagram, frame, width))
	}
	return strings.Join(parts, "\n\n")
}

func renderSection(sec crs.Section, width int) string {
	var b strings.Builder
	if sec.Heading != "" {
		b.WriteString(theme.Heading.Render(sec.Heading))
		b.WriteString("\n")
	}
	body := theme.Body.Width(width)
	for _, p := range sec.Paragraphs {
		b.WriteString(body.Render(p))
		b.WriteString("\n")
	}
	for _, item := range sec.Bullets {
		b.WriteString(body.Render("  • " + item))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderDiagram draws the upper layer on top of the lower one with two
// captioned arrows between them. The arrows pulse with frame.
func renderDiagram(d crs.Diagram, frame, width int) string {
	boxWidth := min(width, 36)

	upper := components.Card(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(d.Upper),
		boxWidth, theme.Primary)
	lower := components.Card(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(d.Lower),
		boxWidth, theme.Ethereum)

	arrowStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if frame%2 == 0 {
		arrowStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	}
	caption := theme.Hint
	arrows := arrowStyle.Render("  ↓ ") + caption.Render(d.Down) + "\n" +
		arrowStyle.Render("  ↑ ") + caption.Render(d.Up)

	return lipgloss.JoinVertical(lipgloss.Left, upper, arrows, lower)
}

func (s *CourseScreen) renderGame(m crs.Module, cur navigator.ModuleSnapshot, width int) string {
	game := cur.Game
	var b strings.Builder

	if m.Game.Title != "" {
		b.WriteString(theme.Heading.Render(m.Game.Title))
		b.WriteString("\n")
	}
	if m.Game.Instructions != "" {
		b.WriteString(theme.Hint.Width(width).Render(m.Game.Instructions))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	colWidth := (width - 4) / 2
	terms, descs := s.lists()
	cols := lipgloss.JoinHorizontal(lipgloss.Top,
		terms.View(colWidth),
		"    ",
		descs.View(colWidth),
	)
	b.WriteString(cols)
	b.WriteString("\n")

	if s.held != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("Holding: " + s.held))
		b.WriteString("\n")
	}

	b.WriteString(components.NewProgressBar("Score", game.Score, game.Total, width).View())
	b.WriteString("\n\n")
	b.WriteString(components.NewButton("Reset", "r").View())
	b.WriteString("  ")
	b.WriteString(components.NewButton("Hide Game", "g").View())
	return b.String()
}

func (s *CourseScreen) renderTutorial(m crs.Module, cur navigator.ModuleSnapshot, width int) string {
	tut := cur.Tutorial
	step := tut.Step
	var b strings.Builder

	b.WriteString(components.NewProgressBar("Step", tut.Index+1, tut.Total, width).View())
	b.WriteString("\n\n")

	var card strings.Builder
	card.WriteString(theme.Heading.Render(step.Title))
	card.WriteString("\n\n")
	card.WriteString(theme.Body.Width(width - 4).Render(step.Body))
	if step.Code != "" {
		card.WriteString("\n\n")
		card.WriteString(theme.Code.Render(step.Code))
	}
	if step.Detail != "" {
		card.WriteString("\n\n")
		if tut.ShowDetail {
			card.WriteString(theme.Hint.Width(width - 4).Render(step.Detail))
			card.WriteString("\n")
			card.WriteString(components.NewButton("Hide Info", "i").View())
		} else {
			card.WriteString(components.NewButton("More Info", "i").View())
		}
	}
	b.WriteString(components.Card(card.String(), width, theme.Border))
	b.WriteString("\n")

	prev := components.Button{Label: "Previous", Key: "←", Disabled: tut.AtFirst}
	next := components.Button{Label: "Next", Key: "→", Disabled: tut.AtLast}
	b.WriteString(prev.View() + "  " + next.View())

	switch {
	case tut.ExerciseOffered && m.Tutorial.Exercise != nil:
		b.WriteString("\n\n")
		b.WriteString(s.renderExercise(m, width))
	case tut.ExerciseDone:
		b.WriteString("\n\n")
		b.WriteString(theme.Correct.Render("✓ Exercise complete"))
		if s.feedback != "" {
			b.WriteString("\n")
			b.WriteString(theme.Correct.Width(width).Render(s.feedback))
		}
	}

	return b.String()
}

func (s *CourseScreen) renderExercise(m crs.Module, width int) string {
	ex := m.Tutorial.Exercise
	var b strings.Builder

	b.WriteString(theme.Heading.Render(ex.Title))
	b.WriteString("\n")
	b.WriteString(theme.Body.Width(width).Render(ex.Prompt))
	b.WriteString("\n")
	for _, r := range ex.Requirements {
		b.WriteString(theme.Body.Render("  • " + r))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.editor.View())
	b.WriteString("\n")

	if s.focus == focusEditor {
		b.WriteString(theme.Hint.Render("Ctrl+S to check, Esc to stop editing"))
	} else {
		b.WriteString(components.NewButton("Write the Smart Contract", "e").View())
	}

	if ex.Reference != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Reference:"))
		b.WriteString("\n")
		b.WriteString(theme.Code.Width(width).Render(ex.Reference))
	}

	if s.feedback != "" {
		style := theme.Incorrect
		if s.feedbackOK {
			style = theme.Correct
		}
		b.WriteString("\n\n")
		b.WriteString(style.Width(width).Render(s.feedback))
	}
	return b.String()
}

func renderCompletion(width, height int) string {
	content := theme.Correct.Render("Success!") + "\n\n" +
		theme.Body.Render(SuccessMessage) + "\n\n" +
		components.Button{Label: "Close", Active: true}.View()
	return components.Modal(content, width, height)
}
