package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// CompletedKind is the event kind counted as a completion in summaries.
const CompletedKind = "session.topic_completed"

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			course TEXT NOT NULL DEFAULT '',
			start_ts TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			topic_id TEXT NOT NULL DEFAULT '',
			section_id TEXT NOT NULL DEFAULT '',
			percent INTEGER NOT NULL DEFAULT 0,
			ts TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS events_session ON events(session_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) StartSession(ctx context.Context, run SessionRun) error {
	id := strings.TrimSpace(run.SessionID)
	if id == "" {
		return fmt.Errorf("start session: empty session id")
	}
	ts := run.StartTS
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO sessions(session_id, course, start_ts) VALUES(?,?,?)`,
		id, run.Course, ts.UTC().Format(timeLayout),
	)
	return err
}

func (s *SQLiteStore) RecordEvent(ctx context.Context, ev Event) error {
	kind := strings.TrimSpace(ev.Kind)
	if kind == "" {
		return fmt.Errorf("record event: empty kind")
	}
	ts := ev.TS
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events(session_id, kind, topic_id, section_id, percent, ts) VALUES(?,?,?,?,?,?)`,
		ev.SessionID, kind, ev.TopicID, ev.SectionID, min(100, max(0, ev.Percent)), ts.UTC().Format(timeLayout),
	)
	return err
}

// RecentEvents returns up to limit events, newest first.
func (s *SQLiteStore) RecentEvents(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, kind, topic_id, section_id, percent, ts
		FROM events
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var (
			ev    Event
			tsRaw string
		)
		if err := rows.Scan(&ev.SessionID, &ev.Kind, &ev.TopicID, &ev.SectionID, &ev.Percent, &tsRaw); err != nil {
			return nil, err
		}
		if t, err := time.Parse(timeLayout, tsRaw); err == nil {
			ev.TS = t
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLiteStore) GetSummary(ctx context.Context) (Summary, error) {
	var out Summary
	row := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM sessions) AS sessions,
			COUNT(*) AS events,
			COALESCE(SUM(CASE WHEN kind = ? THEN 1 ELSE 0 END), 0) AS completions,
			COUNT(DISTINCT CASE WHEN kind = ? THEN topic_id END) AS topics
		FROM events
	`, CompletedKind, CompletedKind)
	if err := row.Scan(&out.Sessions, &out.Events, &out.Completions, &out.TopicsCompleted); err != nil {
		return Summary{}, err
	}
	return out, nil
}

func (s *SQLiteStore) GetLastSession(ctx context.Context) (*SessionRun, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT session_id, course, start_ts
		FROM sessions
		ORDER BY rowid DESC
		LIMIT 1
	`)
	var (
		out   SessionRun
		tsRaw string
	)
	if err := row.Scan(&out.SessionID, &out.Course, &tsRaw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if t, err := time.Parse(timeLayout, tsRaw); err == nil {
		out.StartTS = t
	}
	return &out, nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

const timeLayout = time.RFC3339Nano
