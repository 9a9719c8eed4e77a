package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/quizgame/internal/report"
	"github.com/abhisek/quizgame/internal/session"
)

type gameRepo struct {
	db *sql.DB
}

const gameColumns = `id, session_id, started_at, finished_at, total, correct, incorrect,
	unattempted, percentage, outcome, ended_early, report`

func (r *gameRepo) SaveGame(ctx context.Context, rep report.Report) error {
	body, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	finished := rep.FinishedAt
	if finished.IsZero() {
		finished = time.Now()
	}
	started := rep.StartedAt
	if started.IsZero() {
		started = finished
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO games (session_id, started_at, finished_at, total, correct, incorrect,
			unattempted, percentage, outcome, ended_early, report)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			started_at = excluded.started_at,
			finished_at = excluded.finished_at,
			total = excluded.total,
			correct = excluded.correct,
			incorrect = excluded.incorrect,
			unattempted = excluded.unattempted,
			percentage = excluded.percentage,
			outcome = excluded.outcome,
			ended_early = excluded.ended_early,
			report = excluded.report`,
		rep.SessionID,
		formatTime(started),
		formatTime(finished),
		rep.Total,
		rep.Correct,
		rep.Incorrect,
		rep.Unattempted,
		rep.Percentage,
		string(rep.Outcome),
		rep.EndedEarly,
		string(body),
	)
	if err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	return nil
}

func (r *gameRepo) LatestGame(ctx context.Context) (*GameRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+gameColumns+` FROM games ORDER BY finished_at DESC, id DESC LIMIT 1`)
	rec, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest game: %w", err)
	}
	return rec, nil
}

func (r *gameRepo) GetGame(ctx context.Context, sessionID string) (*GameRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+gameColumns+` FROM games WHERE session_id = ?`, sessionID)
	rec, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("query game: %w", err)
	}
	return rec, nil
}

func (r *gameRepo) RecentGames(ctx context.Context, opts QueryOpts) ([]GameRecord, error) {
	var (
		where []string
		args  []any
	)
	if !opts.From.IsZero() {
		where = append(where, "finished_at >= ?")
		args = append(args, formatTime(opts.From))
	}
	if !opts.To.IsZero() {
		where = append(where, "finished_at <= ?")
		args = append(args, formatTime(opts.To))
	}

	q := `SELECT ` + gameColumns + ` FROM games`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY finished_at DESC, id DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	var out []GameRecord
	for rows.Next() {
		rec, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate games: %w", err)
	}
	return out, nil
}

func (r *gameRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM games`)
	if err != nil {
		return 0, fmt.Errorf("delete games: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(s scanner) (*GameRecord, error) {
	var (
		rec               GameRecord
		started, finished string
		outcome, body     string
	)
	err := s.Scan(
		&rec.ID,
		&rec.SessionID,
		&started,
		&finished,
		&rec.Total,
		&rec.Correct,
		&rec.Incorrect,
		&rec.Unattempted,
		&rec.Percentage,
		&outcome,
		&rec.EndedEarly,
		&body,
	)
	if err != nil {
		return nil, err
	}

	if rec.StartedAt, err = parseTime(started); err != nil {
		return nil, fmt.Errorf("parse started_at: %w", err)
	}
	if rec.FinishedAt, err = parseTime(finished); err != nil {
		return nil, fmt.Errorf("parse finished_at: %w", err)
	}
	rec.Outcome = session.Outcome(outcome)
	if err := json.Unmarshal([]byte(body), &rec.Report); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &rec, nil
}

// Times are stored as fixed-width UTC RFC 3339 so they sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}
