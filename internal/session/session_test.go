package session

import (
	"testing"
	"time"

	"prereqlab/internal/catalog"
)

func twoSections(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(`
kind: catalog
schema_version: 1
sections:
  - id: A
    label: A
    topics: [{id: a1, label: A1}, {id: a2, label: A2}]
  - id: B
    label: B
    topics: [{id: b1, label: B1}]
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return c
}

func TestContinueGatedOnActiveCompletion(t *testing.T) {
	s := New(twoSections(t))
	if err := s.SelectTopic("a2"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, ok := s.ContinueSuggestion(); ok {
		t.Fatalf("suggestion shown before completion")
	}
	if s.Continue() {
		t.Fatalf("continue should be refused before completion")
	}

	s.Complete()
	next, ok := s.ContinueSuggestion()
	if !ok || next.ID != "b1" {
		t.Fatalf("expected b1 suggestion, got %+v %v", next, ok)
	}
	if got := s.Nav().State().ExpandedSectionID; got != "A" {
		t.Fatalf("suggestion must not expand its section, expanded=%q", got)
	}

	if !s.Continue() {
		t.Fatalf("expected continue to advance")
	}
	st := s.Nav().State()
	if st.ActiveTopicID != "b1" || st.ExpandedSectionID != "B" {
		t.Fatalf("unexpected state after continue: %+v", st)
	}
	if _, ok := s.ContinueSuggestion(); ok {
		t.Fatalf("no suggestion expected on the last topic")
	}
}

func TestCompletingOtherTopicDoesNotGate(t *testing.T) {
	s := New(twoSections(t))
	s.CompleteTopic("a2")
	if _, ok := s.ContinueSuggestion(); ok {
		t.Fatalf("active topic a1 is incomplete; suggestion must be hidden")
	}
}

func TestCompleteTwiceCountsOnce(t *testing.T) {
	s := New(twoSections(t))
	if !s.Complete() {
		t.Fatalf("expected first completion to count")
	}
	if s.Complete() {
		t.Fatalf("expected second completion to be a no-op")
	}
	if s.Progress().Count() != 1 {
		t.Fatalf("expected count 1, got %d", s.Progress().Count())
	}
}

func TestEventsCarryProgress(t *testing.T) {
	at := time.Date(2026, time.March, 3, 9, 0, 0, 0, time.UTC)
	s := New(twoSections(t), WithID("sess-1"), WithClock(func() time.Time { return at }))
	var events []Event
	s.OnEvent(func(ev Event) { events = append(events, ev) })

	s.Begin()
	_ = s.ToggleSection("B")
	for _, id := range []string{"a1", "a2", "b1"} {
		s.CompleteTopic(id)
	}
	if err := s.SelectTopic("missing"); err == nil {
		t.Fatalf("expected error for unknown topic")
	}

	kinds := []EventKind{EventStarted, EventSectionToggled, EventTopicCompleted, EventTopicCompleted, EventTopicCompleted, EventAllComplete}
	if len(events) != len(kinds) {
		t.Fatalf("expected %d events, got %d: %+v", len(kinds), len(events), events)
	}
	for i, k := range kinds {
		if events[i].Kind != k {
			t.Fatalf("event %d: got %s want %s", i, events[i].Kind, k)
		}
		if events[i].SessionID != "sess-1" || !events[i].At.Equal(at) {
			t.Fatalf("event %d missing session metadata: %+v", i, events[i])
		}
	}
	if events[2].Percent != 33 || events[4].Percent != 100 {
		t.Fatalf("unexpected percents %d %d", events[2].Percent, events[4].Percent)
	}
	if events[1].SectionID != "B" {
		t.Fatalf("toggle event lost section id")
	}
}
