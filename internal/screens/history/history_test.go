package history

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizgame/internal/report"
	"github.com/abhisek/quizgame/internal/router"
	reportscreen "github.com/abhisek/quizgame/internal/screens/report"
	"github.com/abhisek/quizgame/internal/session"
	"github.com/abhisek/quizgame/internal/store"
)

// mockGameRepo implements store.GameRepo for testing.
type mockGameRepo struct {
	games []store.GameRecord
	err   error
	opts  store.QueryOpts
}

func (m *mockGameRepo) SaveGame(context.Context, report.Report) error { return nil }
func (m *mockGameRepo) LatestGame(context.Context) (*store.GameRecord, error) {
	return nil, nil
}
func (m *mockGameRepo) GetGame(context.Context, string) (*store.GameRecord, error) {
	return nil, store.ErrNotFound
}
func (m *mockGameRepo) RecentGames(_ context.Context, opts store.QueryOpts) ([]store.GameRecord, error) {
	m.opts = opts
	return m.games, m.err
}
func (m *mockGameRepo) DeleteAll(context.Context) (int64, error) { return 0, nil }

func record(id string, correct int, outcome session.Outcome, early bool) store.GameRecord {
	finished := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return store.GameRecord{
		SessionID:  id,
		StartedAt:  finished.Add(-95 * time.Second),
		FinishedAt: finished,
		Total:      5,
		Correct:    correct,
		Percentage: float64(correct * 20),
		Outcome:    outcome,
		EndedEarly: early,
		Report:     report.Report{SessionID: id, Total: 5, Correct: correct, Outcome: outcome},
	}
}

func loadedHistory(t *testing.T, games *mockGameRepo) *HistoryScreen {
	t.Helper()
	s := New(games)
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
	return s
}

func TestHistoryScreen_Loading(t *testing.T) {
	s := New(&mockGameRepo{})
	assert.Contains(t, s.View(80, 20), "Loading history...")
}

func TestHistoryScreen_Empty(t *testing.T) {
	games := &mockGameRepo{}
	s := loadedHistory(t, games)

	assert.Equal(t, Limit, games.opts.Limit)
	assert.Contains(t, s.View(80, 20), "No games yet")
}

func TestHistoryScreen_Error(t *testing.T) {
	s := loadedHistory(t, &mockGameRepo{err: errors.New("database is locked")})
	assert.Contains(t, s.View(80, 20), "database is locked")
}

func TestHistoryScreen_ListsGames(t *testing.T) {
	s := loadedHistory(t, &mockGameRepo{games: []store.GameRecord{
		record("b", 4, session.OutcomeWon, false),
		record("a", 1, session.OutcomeLose, true),
	}})

	view := ansi.Strip(s.View(120, 20))
	assert.Contains(t, view, "4/5 correct")
	assert.Contains(t, view, " 80%")
	assert.Contains(t, view, "1:35")
	assert.Contains(t, view, "(ended early)")
	assert.Contains(t, view, "> ")
}

func TestHistoryScreen_EnterOpensReport(t *testing.T) {
	s := loadedHistory(t, &mockGameRepo{games: []store.GameRecord{
		record("b", 4, session.OutcomeWon, false),
		record("a", 1, session.OutcomeLose, false),
	}})

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg")
	_, ok = push.Screen.(*reportscreen.ReportScreen)
	assert.True(t, ok, "expected report screen, got %T", push.Screen)
}

func TestHistoryScreen_EnterWithoutGames(t *testing.T) {
	s := loadedHistory(t, &mockGameRepo{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestHistoryScreen_EscPops(t *testing.T) {
	s := New(&mockGameRepo{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00", formatDuration(-time.Second))
	assert.Equal(t, "0:45", formatDuration(45*time.Second))
	assert.Equal(t, "2:05", formatDuration(125*time.Second))
}
