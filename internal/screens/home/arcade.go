package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgame/internal/session"
	"github.com/abhisek/quizgame/internal/store"
	"github.com/abhisek/quizgame/internal/ui/components"
	"github.com/abhisek/quizgame/internal/ui/theme"
)

// Block-letter title.
const arcadeTitleFull = ` ██████╗ ██╗   ██╗██╗███████╗
██╔═══██╗██║   ██║██║╚══███╔╝
██║   ██║██║   ██║██║  ███╔╝
██║▄▄ ██║██║   ██║██║ ███╔╝
╚██████╔╝╚██████╔╝██║███████╗
 ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const arcadeTitleCompact = "Q · U · I · Z · G · A · M · E"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar summarises the last finished game in a bordered box
// matching content width.
func renderStatsBar(last *store.GameRecord, cw int, compact bool) string {
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if last == nil {
		stats = dimStyle.Render("No games played yet")
	} else {
		outcomeStyle := lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		outcome := "LOST"
		if last.Outcome == session.OutcomeWon {
			outcomeStyle = outcomeStyle.Foreground(theme.Success)
			outcome = "WON"
		}
		scoreStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

		if compact {
			stats = fmt.Sprintf("%s %s",
				outcomeStyle.Render(outcome),
				scoreStyle.Render(fmt.Sprintf("%.0f%%", last.Percentage)),
			)
		} else {
			stats = fmt.Sprintf("%s  %s  %s",
				dimStyle.Render("LAST GAME"),
				outcomeStyle.Render(outcome),
				scoreStyle.Render(fmt.Sprintf("%d/%d  %.0f%%", last.Correct, last.Total, last.Percentage)),
			)
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(menu components.Menu, cw int) string {
	var buttons []string
	for i, label := range menu.Labels() {
		state := components.StateFor(i, menu.Selected, menu.IsDisabled(i))
		buttons = append(buttons, components.ArcadeButton(label, state, theme.ArcadeYellow, buttonWidth))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as numbered text lines (no
// borders) for small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(menu components.Menu, cw int) string {
	var lines []string
	for i, label := range menu.Labels() {
		text := fmt.Sprintf("%d %s", i+1, label)
		var line string
		switch components.StateFor(i, menu.Selected, menu.IsDisabled(i)) {
		case components.ButtonDisabled:
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + text)
		case components.ButtonSelected:
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + text + " ")
		default:
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + text)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
