package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgame/internal/router"
	"github.com/abhisek/quizgame/internal/screen"
	reportscreen "github.com/abhisek/quizgame/internal/screens/report"
	"github.com/abhisek/quizgame/internal/session"
	"github.com/abhisek/quizgame/internal/store"
	"github.com/abhisek/quizgame/internal/ui/layout"
	"github.com/abhisek/quizgame/internal/ui/theme"
)

// Limit is how many games the screen lists.
const Limit = 50

type historyLoadedMsg struct {
	Games []store.GameRecord
	Err   error
}

// HistoryScreen lists past games, newest first.
type HistoryScreen struct {
	games    store.GameRepo
	records  []store.GameRecord
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(games store.GameRepo) *HistoryScreen {
	return &HistoryScreen{games: games}
}

func (s *HistoryScreen) Init() tea.Cmd {
	games := s.games
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		records, err := games.RecentGames(ctx, store.QueryOpts{Limit: Limit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Games: records}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Report"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Games
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected < len(s.records) {
				r := s.records[s.selected].Report
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: reportscreen.New(r)}
				}
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No games yet. Start a quiz!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, g := range s.records {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		outcome := "lose"
		if g.Outcome == session.OutcomeWon {
			outcome = "won "
		}
		early := ""
		if g.EndedEarly {
			early = "  (ended early)"
		}

		line := fmt.Sprintf("%s%s  %s  %s  %d/%d correct  %3.0f%%%s",
			prefix,
			g.FinishedAt.Local().Format("Jan 02, 2006 15:04"),
			formatDuration(g.FinishedAt.Sub(g.StartedAt)),
			outcome,
			g.Correct, g.Total, g.Percentage, early)

		style := lipgloss.NewStyle().Foreground(outcomeColor(g.Outcome))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func outcomeColor(o session.Outcome) color.Color {
	if o == session.OutcomeWon {
		return theme.Success
	}
	return theme.Text
}
