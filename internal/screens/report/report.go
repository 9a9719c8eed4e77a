package report

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	rpt "github.com/abhisek/quizgame/internal/report"
	"github.com/abhisek/quizgame/internal/router"
	"github.com/abhisek/quizgame/internal/screen"
	"github.com/abhisek/quizgame/internal/ui/components"
	"github.com/abhisek/quizgame/internal/ui/layout"
	"github.com/abhisek/quizgame/internal/ui/theme"
)

// ReportScreen shows the breakdown of one finished game. It is read-only.
type ReportScreen struct {
	report rpt.Report
	offset int

	// Last known content area, from tea.WindowSizeMsg.
	width  int
	height int
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a ReportScreen for r.
func New(r rpt.Report) *ReportScreen {
	return &ReportScreen{report: r}
}

func (s *ReportScreen) Init() tea.Cmd {
	return nil
}

func (s *ReportScreen) Title() string {
	return "Game Report"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	if !s.report.AllAttempted() {
		hints = append([]layout.KeyHint{{Key: "↑↓", Description: "Scroll"}}, hints...)
	}
	return hints
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = layout.ContentHeight(msg.Height)
		s.offset = min(s.offset, s.maxOffset())

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < s.maxOffset() {
				s.offset++
			}
		}
	}
	return s, nil
}

// maxOffset is the last scroll position that still fills the content
// area. It is zero until the terminal size is known.
func (s *ReportScreen) maxOffset() int {
	if s.width <= 0 || s.height <= 0 {
		return 0
	}
	lines := strings.Count(Render(s.report, components.ContentWidth(s.width)), "\n") + 1
	return max(lines-s.height, 0)
}

func (s *ReportScreen) View(width, height int) string {
	lines := strings.Split(Render(s.report, components.ContentWidth(width)), "\n")

	if height > 0 && len(lines) > height {
		offset := min(s.offset, len(lines)-height)
		lines = lines[offset : offset+height]
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n"))
}

// Render draws the report at content width cw: the three counts, then
// either the all-attempted message or every unattempted question with its
// options and the correct ones marked.
func Render(r rpt.Report, cw int) string {
	var b strings.Builder

	b.WriteString(renderCounts(r, cw))
	b.WriteString("\n\n")

	if r.AllAttempted() {
		b.WriteString(lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Attempted all the questions"))
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Unattempted Questions"))
	b.WriteString("\n")

	for i, q := range r.UnattemptedQuestions {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(cw).
			Foreground(theme.Text).
			Bold(true).
			Render(fmt.Sprintf("%d. %s", i+1, q.Text)))
		b.WriteString("\n")
		for _, o := range q.Options {
			style := theme.Dimmed
			if o.Correct {
				style = theme.Correct
			}
			b.WriteString("   " + style.Render(rpt.OptionLine(q.Kind, o)) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderCounts(r rpt.Report, cw int) string {
	count := func(n int, label string, color lipgloss.Style) string {
		return color.Render(fmt.Sprintf("%d", n)) + " " +
			lipgloss.NewStyle().Foreground(theme.Text).Render(label)
	}
	lines := []string{
		count(r.Correct, "Correct answers", theme.Correct),
		count(r.Incorrect, "Incorrect answers", theme.Incorrect),
		count(r.Unattempted, "Unattempted answers", lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)),
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw-2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}
