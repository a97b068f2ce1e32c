package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/baselearn/internal/ui/theme"
)

// ContentWidth returns the inner width used for cards in a pane of the
// given width.
func ContentWidth(paneWidth int) int {
	// Leave room for border (2) + padding (4)
	return min(max(paneWidth-6, 20), 96)
}

// Card wraps content in a rounded-border card.
func Card(content string, width int, border color.Color) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width).
		Padding(0, 1).
		Render(content)
}

// Modal renders content in a double-bordered box centered over an area
// of width x height.
func Modal(content string, width, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
