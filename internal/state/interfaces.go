// Package state is the opt-in activity journal. It records what happened in
// each session; nothing is read back into a running session.
package state

import (
	"context"
	"time"
)

type Store interface {
	EnsureSchema(ctx context.Context) error
	StartSession(ctx context.Context, run SessionRun) error
	RecordEvent(ctx context.Context, ev Event) error
	RecentEvents(ctx context.Context, limit int) ([]Event, error)
	GetSummary(ctx context.Context) (Summary, error)
	GetLastSession(ctx context.Context) (*SessionRun, error)
	Close() error
}

type SessionRun struct {
	SessionID string
	Course    string
	StartTS   time.Time
}

type Event struct {
	SessionID string
	Kind      string
	TopicID   string
	SectionID string
	Percent   int
	TS        time.Time
}

type Summary struct {
	Sessions        int
	Events          int
	Completions     int
	TopicsCompleted int
}

// NopStore satisfies Store without touching disk. It is used when no journal
// path is configured.
type NopStore struct{}

func (NopStore) EnsureSchema(context.Context) error                 { return nil }
func (NopStore) StartSession(context.Context, SessionRun) error     { return nil }
func (NopStore) RecordEvent(context.Context, Event) error           { return nil }
func (NopStore) RecentEvents(context.Context, int) ([]Event, error) { return nil, nil }
func (NopStore) GetSummary(context.Context) (Summary, error)        { return Summary{}, nil }
func (NopStore) GetLastSession(context.Context) (*SessionRun, error) {
	return nil, nil
}
func (NopStore) Close() error { return nil }
