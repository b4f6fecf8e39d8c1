package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all registered games.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Println(gamesTable(games).View())
	fmt.Println()
	fmt.Println("Run 'breakout play' to play in this terminal.")
}

// gamesTable renders registered games as a static table.
func gamesTable(games []registry.GameInfo) table.Model {
	idWidth, titleWidth := len("ID"), len("Title")
	rows := make([]table.Row, len(games))
	for i, g := range games {
		idWidth = max(idWidth, len(g.ID))
		titleWidth = max(titleWidth, len(g.Title))
		rows[i] = table.Row{g.ID, g.Title}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: idWidth},
			{Title: "Title", Width: titleWidth},
		}),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2), // Header and its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}
