// Package devtools holds the deterministic demo scenarios used to render
// single frames for docs and visual checks.
package devtools

import (
	"fmt"
	"sort"
	"strings"

	"prereqlab/internal/session"

	"github.com/agnivade/levenshtein"
)

// Scenario is a reproducible lab state. Complete lists topics finished in
// order; a negative CompleteFirst means every topic.
type Scenario struct {
	Name          string
	CompleteFirst int
	Complete      []string
	Reveal        string
	DrawerOpen    bool
	Cols          int
	Rows          int
}

type Manager struct {
	scenarios map[string]Scenario
}

func NewManager() *Manager {
	return &Manager{scenarios: map[string]Scenario{
		"fresh": {Name: "fresh", Cols: 140, Rows: 40},
		"in_progress": {
			Name:          "in_progress",
			CompleteFirst: 5,
			Reveal:        "matmul",
			Cols:          140,
			Rows:          40,
		},
		"continue": {
			Name:          "continue",
			CompleteFirst: 1,
			Cols:          140,
			Rows:          40,
		},
		"complete": {
			Name:          "complete",
			CompleteFirst: -1,
			Reveal:        "control-flow",
			Cols:          140,
			Rows:          40,
		},
		"mobile_drawer": {
			Name:          "mobile_drawer",
			CompleteFirst: 5,
			Reveal:        "matmul",
			DrawerOpen:    true,
			Cols:          60,
			Rows:          30,
		},
		"tablet": {
			Name:          "tablet",
			CompleteFirst: 7,
			Reveal:        "std-dev",
			Cols:          100,
			Rows:          34,
		},
	}}
}

func (m *Manager) Names() []string {
	out := make([]string, 0, len(m.scenarios))
	for name := range m.scenarios {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (m *Manager) Resolve(name string) (Scenario, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if sc, ok := m.scenarios[key]; ok {
		return sc, nil
	}
	msg := fmt.Sprintf("unknown demo scenario %q", name)
	if best := m.closest(key); best != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", best)
	}
	return Scenario{}, fmt.Errorf("%s; known: %s", msg, strings.Join(m.Names(), ", "))
}

func (m *Manager) closest(name string) string {
	best, bestDist := "", -1
	for _, cand := range m.Names() {
		d := levenshtein.ComputeDistance(name, cand)
		if bestDist < 0 || d < bestDist {
			best, bestDist = cand, d
		}
	}
	if bestDist > max(2, len(name)/3) {
		return ""
	}
	return best
}

// Apply plays a scenario onto a fresh session through the same transitions
// a learner would trigger.
func (m *Manager) Apply(s *session.Session, sc Scenario) error {
	flat := s.Catalog().Flatten()
	n := sc.CompleteFirst
	if n < 0 || n > len(flat) {
		n = len(flat)
	}
	for _, t := range flat[:n] {
		if err := s.RevealTopic(t.ID); err != nil {
			return err
		}
		s.Complete()
	}
	for _, id := range sc.Complete {
		if err := s.RevealTopic(id); err != nil {
			return fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		s.Complete()
	}
	switch {
	case sc.Reveal != "":
		if err := s.RevealTopic(sc.Reveal); err != nil {
			return fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
	case n > 0 && n < len(flat):
		// Stay on the last completed topic so the continue row is offered.
		if err := s.RevealTopic(flat[n-1].ID); err != nil {
			return err
		}
	}
	return nil
}
