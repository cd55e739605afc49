package app

import (
	"context"

	"prereqlab/internal/state"
)

// Journal is the write side of the activity journal.
type Journal interface {
	EnsureSchema(ctx context.Context) error
	StartSession(ctx context.Context, run state.SessionRun) error
	RecordEvent(ctx context.Context, ev state.Event) error
	Close() error
}

var (
	_ Journal = (*state.SQLiteStore)(nil)
	_ Journal = state.NopStore{}
)
