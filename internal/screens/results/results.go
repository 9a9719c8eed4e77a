package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgame/internal/report"
	"github.com/abhisek/quizgame/internal/router"
	"github.com/abhisek/quizgame/internal/screen"
	reportscreen "github.com/abhisek/quizgame/internal/screens/report"
	"github.com/abhisek/quizgame/internal/session"
	"github.com/abhisek/quizgame/internal/ui/components"
	"github.com/abhisek/quizgame/internal/ui/layout"
	"github.com/abhisek/quizgame/internal/ui/theme"
)

const bannerWon = `__   __            __        __          _
\ \ / /__  _   _   \ \      / /__  _ __ | |
 \ V / _ \| | | |   \ \ /\ / / _ \| '_ \| |
  | | (_) | |_| |    \ V  V / (_) | | | |_|
  |_|\___/ \__,_|     \_/\_/ \___/|_| |_(_)`

const bannerLose = `__   __            _
\ \ / /__  _   _  | |    ___  ___  ___
 \ V / _ \| | | | | |   / _ \/ __|/ _ \
  | | (_) | |_| | | |__| (_) \__ \  __/
  |_|\___/ \__,_| |_____\___/|___/\___|`

// ResultsScreen shows the outcome of a finished game.
type ResultsScreen struct {
	report   report.Report
	selected int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

var buttons = []string{"REPORT", "HOME"}

// New creates a ResultsScreen for a finished game.
func New(r report.Report) *ResultsScreen {
	return &ResultsScreen{report: r}
}

// Outcome returns the outcome this screen was opened with.
func (s *ResultsScreen) Outcome() session.Outcome {
	return s.report.Outcome
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Report"},
		{Key: "←→", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "r", "R":
		return s, s.openReport()
	case "left", "h", "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "right", "l", "down", "j", "tab":
		if s.selected < len(buttons)-1 {
			s.selected++
		}
	case "enter":
		if s.selected == 0 {
			return s, s.openReport()
		}
		return s, home
	case "esc":
		return s, home
	}
	return s, nil
}

func (s *ResultsScreen) openReport() tea.Cmd {
	r := s.report
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: reportscreen.New(r)}
	}
}

// The quiz screen was replaced by this one, so popping lands on home.
func home() tea.Msg {
	return router.PopScreenMsg{}
}

func (s *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	won := s.report.Outcome == session.OutcomeWon

	color := theme.Error
	banner := bannerLose
	if won {
		color = theme.Success
		banner = bannerWon
	}

	var sections []string
	if height >= 20 {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(color).
			Bold(true).
			Render(banner))
	} else {
		text := "YOU LOSE"
		if won {
			text = "YOU WON!"
		}
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(color).
			Bold(true).
			Render(text))
	}

	score := fmt.Sprintf("Your score: %.0f%%\n%d of %d correct", s.report.Percentage, s.report.Correct, s.report.Total)
	if s.report.EndedEarly {
		score += "\nEnded early"
	}
	sections = append(sections, components.ArcadeCard(
		lipgloss.NewStyle().Foreground(theme.Text).Render(score), color, cw))

	var btns []string
	for i, label := range buttons {
		btns = append(btns, components.ArcadeButton(label, components.StateFor(i, s.selected, false), color, 14))
	}
	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.JoinHorizontal(lipgloss.Center, btns...)))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), color, width, height)
}
