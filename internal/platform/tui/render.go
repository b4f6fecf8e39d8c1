package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(colorStyle(r, startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// colorStyle returns the foreground style for a cell color.
// lipgloss accepts "#rrggbb" directly and degrades it to the terminal's profile.
func colorStyle(r *lipgloss.Renderer, c core.Color) lipgloss.Style {
	if c.IsDefault() {
		return r.NewStyle()
	}
	return r.NewStyle().Foreground(lipgloss.Color(string(c)))
}
