package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/quizgame/internal/quiz"
	"github.com/abhisek/quizgame/internal/report"
	"github.com/abhisek/quizgame/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testReport(id string, finished time.Time, correct int) report.Report {
	total := 5
	pct := float64(correct*100) / float64(total)
	return report.Report{
		SessionID:   id,
		Outcome:     session.OutcomeFor(pct, session.DefaultPassPercent),
		Percentage:  pct,
		Total:       total,
		Correct:     correct,
		Incorrect:   1,
		Unattempted: total - correct - 1,
		UnattemptedQuestions: []quiz.Question{
			{ID: "q5", Text: "Go mascot?", Kind: quiz.KindImage, Options: []quiz.Option{
				{ID: "a", Text: "Gopher", ImageURL: "https://example.com/g.png", Correct: true},
				{ID: "b", Text: "Crab"},
			}},
		},
		StartedAt:  finished.Add(-time.Minute),
		FinishedAt: finished,
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='games'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "games" {
		t.Errorf("table name = %q, want 'games'", name)
	}
}

func TestReopenKeepsGames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.GameRepo().SaveGame(ctx, testReport("s1", time.Now(), 3)); err != nil {
		t.Fatalf("save: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	g, err := s.GameRepo().GetGame(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if g.Correct != 3 {
		t.Errorf("correct = %d, want 3", g.Correct)
	}
}

func TestGameSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.GameRepo()
	ctx := context.Background()

	// No game yet.
	g, err := repo.LatestGame(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if g != nil {
		t.Fatal("expected nil game when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	if err := repo.SaveGame(ctx, testReport("s1", now, 3)); err != nil {
		t.Fatalf("save: %v", err)
	}

	g, err = repo.LatestGame(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if g == nil {
		t.Fatal("expected non-nil game")
	}
	if g.SessionID != "s1" {
		t.Errorf("session = %q, want s1", g.SessionID)
	}
	if g.Outcome != session.OutcomeWon {
		t.Errorf("outcome = %q, want won", g.Outcome)
	}
	if g.Percentage != 60 {
		t.Errorf("percentage = %v, want 60", g.Percentage)
	}
	if !g.FinishedAt.Equal(now) {
		t.Errorf("finished_at = %v, want %v", g.FinishedAt, now)
	}
	if len(g.Report.UnattemptedQuestions) != 1 {
		t.Fatalf("unattempted questions = %d, want 1", len(g.Report.UnattemptedQuestions))
	}
	q := g.Report.UnattemptedQuestions[0]
	if q.Kind != quiz.KindImage {
		t.Errorf("kind = %v, want IMAGE", q.Kind)
	}
	if !q.Options[0].Correct || q.Options[1].Correct {
		t.Errorf("correct flags not preserved: %+v", q.Options)
	}
}

func TestGameLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.GameRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i, id := range []string{"a", "b", "c"} {
		if err := repo.SaveGame(ctx, testReport(id, base.Add(time.Duration(i)*time.Minute), i)); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	g, err := repo.LatestGame(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if g.SessionID != "c" {
		t.Errorf("latest session = %q, want c", g.SessionID)
	}
}

func TestGameSaveSameSessionReplaces(t *testing.T) {
	s := openTestStore(t)
	repo := s.GameRepo()
	ctx := context.Background()

	now := time.Now()
	if err := repo.SaveGame(ctx, testReport("s1", now, 1)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.SaveGame(ctx, testReport("s1", now, 4)); err != nil {
		t.Fatalf("save again: %v", err)
	}

	games, err := repo.RecentGames(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("games = %d, want 1", len(games))
	}
	if games[0].Correct != 4 {
		t.Errorf("correct = %d, want 4", games[0].Correct)
	}
}

func TestGetGameNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GameRepo().GetGame(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRecentGames(t *testing.T) {
	s := openTestStore(t)
	repo := s.GameRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		id := string(rune('a' + i))
		if err := repo.SaveGame(ctx, testReport(id, base.Add(time.Duration(i)*time.Hour), 2)); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	games, err := repo.RecentGames(ctx, QueryOpts{Limit: 3})
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("games = %d, want 3", len(games))
	}
	want := []string{"e", "d", "c"}
	for i, g := range games {
		if g.SessionID != want[i] {
			t.Errorf("games[%d] = %q, want %q", i, g.SessionID, want[i])
		}
	}

	games, err = repo.RecentGames(ctx, QueryOpts{
		From: base.Add(time.Hour),
		To:   base.Add(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("recent range: %v", err)
	}
	if len(games) != 2 {
		t.Errorf("games in range = %d, want 2", len(games))
	}
}

func TestDeleteAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.GameRepo()
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		if err := repo.SaveGame(ctx, testReport(id, time.Now(), 2)); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	n, err := repo.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted = %d, want 2", n)
	}

	g, err := repo.LatestGame(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if g != nil {
		t.Error("expected no games after DeleteAll")
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("env override", func(t *testing.T) {
		want := filepath.Join(dir, "custom", "games.db")
		t.Setenv("QUIZGAME_DB", want)
		got, err := DefaultDBPath()
		if err != nil {
			t.Fatalf("default path: %v", err)
		}
		if got != want {
			t.Errorf("path = %q, want %q", got, want)
		}
	})

	t.Run("xdg data home", func(t *testing.T) {
		t.Setenv("QUIZGAME_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)
		got, err := DefaultDBPath()
		if err != nil {
			t.Fatalf("default path: %v", err)
		}
		want := filepath.Join(dir, "quizgame", "quizgame.db")
		if got != want {
			t.Errorf("path = %q, want %q", got, want)
		}
	})
}
