// Package session composes the catalog, progress tracker and navigation
// controller into the single state object owned by a running lab.
package session

import (
	"time"

	"prereqlab/internal/catalog"
	"prereqlab/internal/nav"
	"prereqlab/internal/progress"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventStarted        EventKind = "session.started"
	EventTopicSelected  EventKind = "session.topic_selected"
	EventSectionToggled EventKind = "session.section_toggled"
	EventTopicCompleted EventKind = "session.topic_completed"
	EventAdvanced       EventKind = "session.advanced"
	EventAllComplete    EventKind = "session.all_complete"
)

type Event struct {
	SessionID string
	Kind      EventKind
	TopicID   string
	SectionID string
	Percent   int
	At        time.Time
}

type Session struct {
	id       string
	cat      *catalog.Catalog
	progress *progress.Tracker
	nav      *nav.Controller
	now      func() time.Time

	listeners []func(Event)
}

type Option func(*Session)

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

func New(cat *catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		cat:      cat,
		progress: progress.NewTracker(cat),
		nav:      nav.New(cat),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() string                  { return s.id }
func (s *Session) Catalog() *catalog.Catalog   { return s.cat }
func (s *Session) Progress() *progress.Tracker { return s.progress }
func (s *Session) Nav() *nav.Controller        { return s.nav }

// OnEvent registers a listener for every transition.
func (s *Session) OnEvent(fn func(Event)) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

// Begin announces the session to listeners. It changes no state.
func (s *Session) Begin() {
	s.emit(EventStarted, s.nav.CurrentTopic())
}

func (s *Session) SelectTopic(id string) error {
	if err := s.nav.SelectTopic(id); err != nil {
		return err
	}
	s.emit(EventTopicSelected, s.nav.CurrentTopic())
	return nil
}

// RevealTopic selects id and expands its section.
func (s *Session) RevealTopic(id string) error {
	if err := s.nav.RevealTopic(id); err != nil {
		return err
	}
	s.emit(EventTopicSelected, s.nav.CurrentTopic())
	return nil
}

func (s *Session) ToggleSection(id string) error {
	if err := s.nav.ToggleSection(id); err != nil {
		return err
	}
	s.emitSection(EventSectionToggled, id)
	return nil
}

// Complete records the active topic as done. It reports whether the
// completion set grew.
func (s *Session) Complete() bool {
	return s.CompleteTopic(s.nav.State().ActiveTopicID)
}

// CompleteTopic is the lesson renderer's completion callback target.
func (s *Session) CompleteTopic(id string) bool {
	if !s.progress.MarkComplete(id) {
		return false
	}
	t, _ := s.cat.Topic(id)
	s.emit(EventTopicCompleted, t)
	if s.progress.AllComplete() {
		s.emit(EventAllComplete, t)
	}
	return true
}

// ContinueSuggestion is the next topic, offered only once the active topic
// is complete.
func (s *Session) ContinueSuggestion() (catalog.FlattenedTopic, bool) {
	next, ok := s.nav.NextTopic()
	if !ok || !s.progress.IsComplete(s.nav.State().ActiveTopicID) {
		return catalog.FlattenedTopic{}, false
	}
	return next, true
}

// Continue follows the suggestion when one is offered.
func (s *Session) Continue() bool {
	if _, ok := s.ContinueSuggestion(); !ok {
		return false
	}
	if !s.nav.AdvanceToNext() {
		return false
	}
	s.emit(EventAdvanced, s.nav.CurrentTopic())
	return true
}

func (s *Session) emit(kind EventKind, t catalog.FlattenedTopic) {
	s.dispatch(Event{Kind: kind, TopicID: t.ID, SectionID: t.SectionID})
}

func (s *Session) emitSection(kind EventKind, sectionID string) {
	s.dispatch(Event{Kind: kind, SectionID: sectionID})
}

func (s *Session) dispatch(ev Event) {
	if len(s.listeners) == 0 {
		return
	}
	ev.SessionID = s.id
	ev.Percent = s.progress.Percent()
	ev.At = s.now()
	for _, fn := range s.listeners {
		fn(ev)
	}
}
