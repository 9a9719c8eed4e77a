package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/quizgame/internal/report"
	"github.com/abhisek/quizgame/internal/session"
)

// ErrNotFound is returned when a requested game does not exist.
var ErrNotFound = errors.New("game not found")

// QueryOpts configures game queries.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // finished_at >= From
	To    time.Time // finished_at <= To
}

// GameRecord is one finished game as stored.
type GameRecord struct {
	ID          int64
	SessionID   string
	StartedAt   time.Time
	FinishedAt  time.Time
	Total       int
	Correct     int
	Incorrect   int
	Unattempted int
	Percentage  float64
	Outcome     session.Outcome
	EndedEarly  bool
	Report      report.Report
}

// GameRepo persists finished games.
type GameRepo interface {
	// SaveGame stores a finished game's report. Saving the same session
	// twice replaces the earlier row.
	SaveGame(ctx context.Context, r report.Report) error

	// LatestGame returns the most recently finished game, or nil if none exist.
	LatestGame(ctx context.Context) (*GameRecord, error)

	// GetGame returns the game for a session ID, or ErrNotFound.
	GetGame(ctx context.Context, sessionID string) (*GameRecord, error)

	// RecentGames returns games newest first.
	RecentGames(ctx context.Context, opts QueryOpts) ([]GameRecord, error)

	// DeleteAll removes every game and returns how many were deleted.
	DeleteAll(ctx context.Context) (int64, error)
}
