package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgame/internal/ui/theme"
)

// ButtonState is how an ArcadeButton is drawn.
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonSelected
	ButtonDisabled
)

// ContentWidth is the width shared by every box inside the cabinet so
// that cards, stats and buttons line up.
func ContentWidth(frameWidth int) int {
	// cabinet border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 60)
}

// CabinetFrame centres content inside a double-border frame in the given
// colour. Results use the outcome colour, every other screen theme.Primary.
func CabinetFrame(content string, border color.Color, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(border).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded card at content width cw.
func ArcadeCard(content string, border color.Color, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ArcadeButton renders a bordered button. A selected button is filled
// with accent; a disabled one is dimmed and never shows the cursor.
func ArcadeButton(label string, state ButtonState, accent color.Color, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch state {
	case ButtonSelected:
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(accent).
			BorderForeground(accent).
			Render("▸ " + label)
	case ButtonDisabled:
		return style.
			Foreground(theme.TextDim).
			BorderForeground(theme.Border).
			Render(label)
	default:
		return style.
			Foreground(theme.Text).
			BorderForeground(theme.Border).
			Render(label)
	}
}

// StateFor picks the state of the i-th button of a row or column.
func StateFor(i, selected int, disabled bool) ButtonState {
	switch {
	case disabled:
		return ButtonDisabled
	case i == selected:
		return ButtonSelected
	default:
		return ButtonNormal
	}
}
