package nav

import (
	"errors"
	"strings"
	"testing"

	"prereqlab/internal/catalog"
)

const twoSectionDoc = `
kind: catalog
schema_version: 1
sections:
  - id: A
    label: A
    topics: [{id: a1, label: A1}, {id: a2, label: A2}]
  - id: B
    label: B
    topics: [{id: b1, label: B1}]
`

func twoSections(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(twoSectionDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return c
}

func TestNewStartsOnFirstTopic(t *testing.T) {
	c := New(catalog.MustBuiltin())
	st := c.State()
	if st.ActiveTopicID != "variables" || st.ExpandedSectionID != "algebra" {
		t.Fatalf("unexpected initial state: %+v", st)
	}
	if c.CurrentSection().ID != "algebra" {
		t.Fatalf("unexpected current section %q", c.CurrentSection().ID)
	}
}

func TestSelectTopicLeavesExpandedSection(t *testing.T) {
	c := New(twoSections(t))
	if err := c.SelectTopic("b1"); err != nil {
		t.Fatalf("select: %v", err)
	}
	st := c.State()
	if st.ActiveTopicID != "b1" || st.ExpandedSectionID != "A" {
		t.Fatalf("unexpected state: %+v", st)
	}
}

func TestSelectTopicRejectsUnknownID(t *testing.T) {
	c := New(catalog.MustBuiltin())
	before := c.State()
	err := c.SelectTopic("sigmod")
	if !errors.Is(err, ErrInvalidTopicID) {
		t.Fatalf("expected ErrInvalidTopicID, got %v", err)
	}
	if !strings.Contains(err.Error(), `did you mean "sigmoid"`) {
		t.Fatalf("expected suggestion, got %v", err)
	}
	if c.State() != before {
		t.Fatalf("state changed on error")
	}
	if err := c.SelectTopic("zzzzzzzzzzzzzzzzzz"); err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("expected plain error for distant id, got %v", err)
	}
}

func TestToggleSectionKeepsAtMostOneOpen(t *testing.T) {
	c := New(twoSections(t))
	if err := c.ToggleSection("B"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got, _ := c.Expanded(); got != "B" {
		t.Fatalf("expected B expanded, got %q", got)
	}
	if err := c.ToggleSection("B"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, ok := c.Expanded(); ok {
		t.Fatalf("expected all collapsed")
	}
	if err := c.ToggleSection("nope"); !errors.Is(err, ErrInvalidSectionID) {
		t.Fatalf("expected ErrInvalidSectionID, got %v", err)
	}
}

func TestAdvanceToNextExpandsOwningSection(t *testing.T) {
	c := New(twoSections(t))
	if err := c.SelectTopic("a2"); err != nil {
		t.Fatalf("select: %v", err)
	}
	next, ok := c.NextTopic()
	if !ok || next.ID != "b1" {
		t.Fatalf("expected next b1, got %+v %v", next, ok)
	}
	if got, _ := c.Expanded(); got == "B" {
		t.Fatalf("next suggestion must not expand section")
	}
	if !c.AdvanceToNext() {
		t.Fatalf("expected advance")
	}
	st := c.State()
	if st.ActiveTopicID != "b1" || st.ExpandedSectionID != "B" {
		t.Fatalf("unexpected state after advance: %+v", st)
	}
}

func TestAdvanceFromEveryIndex(t *testing.T) {
	cat := catalog.MustBuiltin()
	flat := cat.Flatten()
	for i := 0; i < len(flat)-1; i++ {
		c := New(cat)
		if err := c.SelectTopic(flat[i].ID); err != nil {
			t.Fatalf("select: %v", err)
		}
		if !c.AdvanceToNext() {
			t.Fatalf("index %d: expected advance", i)
		}
		st := c.State()
		if st.ActiveTopicID != flat[i+1].ID || st.ExpandedSectionID != flat[i+1].SectionID {
			t.Fatalf("index %d: got %+v want %s/%s", i, st, flat[i+1].SectionID, flat[i+1].ID)
		}
	}
}

func TestAdvanceOnLastTopicIsNoop(t *testing.T) {
	c := New(twoSections(t))
	_ = c.ToggleSection("A")
	_ = c.SelectTopic("b1")
	before := c.State()
	if c.AdvanceToNext() {
		t.Fatalf("expected no advance from last topic")
	}
	if c.State() != before {
		t.Fatalf("state changed: %+v -> %+v", before, c.State())
	}
	if _, ok := c.NextTopic(); ok {
		t.Fatalf("expected no next topic")
	}
}

func TestRevealTopic(t *testing.T) {
	c := New(catalog.MustBuiltin())
	if err := c.RevealTopic("histogram"); err != nil {
		t.Fatalf("reveal: %v", err)
	}
	st := c.State()
	if st.ActiveTopicID != "histogram" || st.ExpandedSectionID != "stats" {
		t.Fatalf("unexpected state: %+v", st)
	}
	prev, ok := c.PreviousTopic()
	if !ok || prev.ID != "std-dev" {
		t.Fatalf("unexpected previous %+v", prev)
	}
}
