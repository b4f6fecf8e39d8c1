package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// HUD is the status line under the playfield. It is the score and lives
// sink for the game.
type HUD struct {
	score int
	lives int

	title     lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	heart     lipgloss.Style
	separator lipgloss.Style
}

// NewHUD creates a HUD whose styles come from r.
func NewHUD(r *lipgloss.Renderer) *HUD {
	return &HUD{
		title:     r.NewStyle().Foreground(lipgloss.Color(string(core.ColorTeal))).Bold(true),
		label:     r.NewStyle().Foreground(lipgloss.Color("245")),
		value:     r.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		heart:     r.NewStyle().Foreground(lipgloss.Color(string(core.ColorCoral))),
		separator: r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// ScoreChanged implements core.Observer.
func (h *HUD) ScoreChanged(score int) {
	h.score = score
}

// LivesChanged implements core.Observer.
func (h *HUD) LivesChanged(lives int) {
	h.lives = lives
}

// Score returns the last reported score.
func (h *HUD) Score() int { return h.score }

// Lives returns the last reported lives.
func (h *HUD) Lives() int { return h.lives }

// View renders the status line.
func (h *HUD) View() string {
	sep := h.separator.Render(" │ ")
	hearts := strings.Repeat("♥", max(h.lives, 0))

	return h.title.Render("BREAKOUT") + sep +
		h.label.Render("Score ") + h.value.Render(fmt.Sprintf("%d", h.score)) + sep +
		h.label.Render("Lives ") + h.heart.Render(hearts)
}
