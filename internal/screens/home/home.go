package home

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizgame/internal/router"
	"github.com/abhisek/quizgame/internal/screen"
	"github.com/abhisek/quizgame/internal/screens/history"
	quizscreen "github.com/abhisek/quizgame/internal/screens/quiz"
	reportscreen "github.com/abhisek/quizgame/internal/screens/report"
	"github.com/abhisek/quizgame/internal/store"
	"github.com/abhisek/quizgame/internal/ui/components"
	"github.com/abhisek/quizgame/internal/ui/layout"
	"github.com/abhisek/quizgame/internal/ui/theme"
)

const queryTimeout = 3 * time.Second

// lastGameMsg carries the most recent finished game, if any.
type lastGameMsg struct {
	Game *store.GameRecord
	Err  error
}

// HomeScreen is the main menu.
type HomeScreen struct {
	quizOpts quizscreen.Options
	games    store.GameRepo
	logger   *zap.Logger
	menu     components.Menu
	last     *store.GameRecord
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

const (
	itemStart = iota
	itemReport
	itemHistory
	itemExit
)

// New creates a HomeScreen. quizOpts configures every game started from
// the menu; its Games repo also backs the report and history items.
func New(quizOpts quizscreen.Options) *HomeScreen {
	logger := quizOpts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &HomeScreen{
		quizOpts: quizOpts,
		games:    quizOpts.Games,
		logger:   logger,
	}

	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(h.quizOpts)}
			}
		}},
		{Label: "LAST REPORT", Disabled: true, Action: func() tea.Cmd {
			if h.last == nil {
				return nil
			}
			r := h.last.Report
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: reportscreen.New(r)}
			}
		}},
		{Label: "HISTORY", Disabled: h.games == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.games)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadLastGame()
}

// Resume refreshes the last game after returning from a quiz.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadLastGame()
}

func (h *HomeScreen) loadLastGame() tea.Cmd {
	games := h.games
	if games == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()
		g, err := games.LatestGame(ctx)
		return lastGameMsg{Game: g, Err: err}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-4", Description: "Jump"},
		{Key: "Enter", Description: "Select"},
	}
}

// LastGame returns the most recent game shown on the stats bar.
func (h *HomeScreen) LastGame() *store.GameRecord {
	return h.last
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(lastGameMsg); ok {
		if msg.Err != nil && !errors.Is(msg.Err, context.Canceled) {
			h.logger.Warn("load last game failed", zap.Error(msg.Err))
		}
		h.last = msg.Game
		h.menu = h.menu.SetDisabled(itemReport, h.last == nil)
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height)
	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.last, cw, compact),
	}
	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menu, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menu, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), theme.Primary, width, height)
}
