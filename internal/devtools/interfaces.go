package devtools

import "prereqlab/internal/session"

type Demo interface {
	Names() []string
	Resolve(name string) (Scenario, error)
	Apply(s *session.Session, sc Scenario) error
}
