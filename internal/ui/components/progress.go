package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgame/internal/ui/theme"
)

// LowSeconds is when the countdown turns to the warning colour.
const LowSeconds = 5

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label   string
	Percent float64
	Suffix  string
	Warn    bool
	Width   int
}

// NewCountdown builds the per-question countdown bar. The bar drains as
// remaining approaches zero.
func NewCountdown(remaining, total, width int) ProgressBar {
	pct := 0.0
	if total > 0 {
		pct = float64(remaining) / float64(total)
	}
	return ProgressBar{
		Label:   "Time",
		Percent: pct,
		Suffix:  fmt.Sprintf("%2ds", remaining),
		Warn:    remaining <= LowSeconds,
		Width:   width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	suffixWidth := 0
	if p.Suffix != "" {
		suffixWidth = lipgloss.Width(p.Suffix) + 2
	}

	barWidth := p.Width - labelWidth - suffixWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fill := theme.ProgressFilled
	if p.Warn {
		fill = theme.ProgressLow
	}
	result += fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	if p.Suffix != "" {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if p.Warn {
			style = style.Foreground(theme.Warning).Bold(true)
		}
		result += "  " + style.Render(p.Suffix)
	}

	return result
}
