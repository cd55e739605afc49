package devtools

import (
	"errors"
	"strings"
	"testing"

	"prereqlab/internal/catalog"
	"prereqlab/internal/nav"
	"prereqlab/internal/session"
)

func newSession() *session.Session {
	return session.New(catalog.MustBuiltin(), session.WithID("demo"))
}

func TestResolveKnownAndUnknown(t *testing.T) {
	m := NewManager()
	if len(m.Names()) != 6 {
		t.Fatalf("expected 6 scenarios, got %v", m.Names())
	}
	sc, err := m.Resolve("Mobile-Drawer")
	if err != nil || sc.Name != "mobile_drawer" || !sc.DrawerOpen {
		t.Fatalf("resolve mobile drawer = %+v, %v", sc, err)
	}
	_, err = m.Resolve("tablte")
	if err == nil || !strings.Contains(err.Error(), `did you mean "tablet"?`) {
		t.Fatalf("expected suggestion, got %v", err)
	}
	_, err = m.Resolve("zzzzzzzzzzzz")
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("far names should not get a suggestion, got %v", err)
	}
}

func TestApplyContinueScenarioOffersNext(t *testing.T) {
	m := NewManager()
	s := newSession()
	sc, _ := m.Resolve("continue")
	if err := m.Apply(s, sc); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if s.Progress().Count() != 1 {
		t.Fatalf("expected 1 completed, got %d", s.Progress().Count())
	}
	next, ok := s.ContinueSuggestion()
	if !ok || next.ID != "linear-eq" {
		t.Fatalf("expected linear-eq suggestion, got %+v %v", next, ok)
	}
}

func TestApplyCompleteScenario(t *testing.T) {
	m := NewManager()
	s := newSession()
	sc, _ := m.Resolve("complete")
	if err := m.Apply(s, sc); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !s.Progress().AllComplete() || s.Progress().Percent() != 100 {
		t.Fatalf("expected everything complete, got %d%%", s.Progress().Percent())
	}
	if _, ok := s.ContinueSuggestion(); ok {
		t.Fatalf("no suggestion on the last topic")
	}
}

func TestApplyInProgressRevealsWithoutCompleting(t *testing.T) {
	m := NewManager()
	s := newSession()
	sc, _ := m.Resolve("in_progress")
	if err := m.Apply(s, sc); err != nil {
		t.Fatalf("apply: %v", err)
	}
	st := s.Nav().State()
	if st.ActiveTopicID != "matmul" || st.ExpandedSectionID != "linalg" {
		t.Fatalf("unexpected nav state %+v", st)
	}
	if s.Progress().IsComplete("matmul") || s.Progress().Count() != 5 {
		t.Fatalf("matmul should be open, not complete")
	}
}

func TestApplyRejectsUnknownTopic(t *testing.T) {
	m := NewManager()
	err := m.Apply(newSession(), Scenario{Name: "bad", Reveal: "nope"})
	if !errors.Is(err, nav.ErrInvalidTopicID) {
		t.Fatalf("expected invalid topic error, got %v", err)
	}
}
