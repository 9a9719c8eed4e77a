package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgame/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// Header and footer are a bordered single-line bar each.
	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint is a key binding shown in the footer. Urgent hints, such as the
// confirm key of the quit dialog, are drawn in the warning colour.
type KeyHint struct {
	Key         string
	Description string
	Urgent      bool
}

// Status is the right-hand side of the header. Urgent marks a countdown
// that is about to run out.
type Status struct {
	Text   string
	Urgent bool
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight returns true if the terminal height is in compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsCompact reports whether a screen's content area of width x height
// needs the compact rendering. height excludes header and footer.
func IsCompact(width, height int) bool {
	return IsCompactWidth(width) || IsCompactHeight(height+HeaderHeight+FooterHeight)
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the height left for a screen in a terminal of
// totalHeight rows.
func ContentHeight(totalHeight int) int {
	return max(totalHeight-HeaderHeight-FooterHeight, 0)
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small to play!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// bar draws the bordered strip used by both header and footer.
func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader renders the app name, the screen title centred and the
// screen status on the right.
func RenderHeader(title string, status Status, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Quizgame")
	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	statusStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if status.Urgent {
		statusStyle = statusStyle.Foreground(theme.Warning).Bold(true)
	}
	right := statusStyle.Render(status.Text)

	inner := max(width-4, 0) // border and padding
	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right), 1)

	return bar(left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right, width)
}

// RenderFooter renders the key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		desc := lipgloss.NewStyle().Foreground(theme.TextDim)
		if h.Urgent {
			key = key.Foreground(theme.Warning)
			desc = desc.Foreground(theme.Warning)
		}
		parts = append(parts, key.Render(h.Key)+" "+desc.Render(h.Description))
	}
	return bar("  "+strings.Join(parts, "   "), width)
}

// RenderFrame stacks header, content and footer, padding the content to
// fill the terminal.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)
	return strings.Join([]string{header, body, footer}, "\n")
}
