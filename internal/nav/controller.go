// Package nav tracks which topic is active and which sidebar section is
// expanded. It never reads or writes completion state.
package nav

import "prereqlab/internal/catalog"

// State is a snapshot of the navigation. ExpandedSectionID is empty when
// every section is collapsed.
type State struct {
	ActiveTopicID     string
	ExpandedSectionID string
}

type Controller struct {
	cat   *catalog.Catalog
	state State
}

// New starts on the first catalog topic with its section expanded.
func New(cat *catalog.Catalog) *Controller {
	first, _ := cat.At(0)
	return &Controller{
		cat:   cat,
		state: State{ActiveTopicID: first.ID, ExpandedSectionID: first.SectionID},
	}
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Expanded() (string, bool) {
	return c.state.ExpandedSectionID, c.state.ExpandedSectionID != ""
}

// SelectTopic makes id the active topic. The expanded section is left as is.
func (c *Controller) SelectTopic(id string) error {
	if !c.cat.HasTopic(id) {
		return unknownID(ErrInvalidTopicID, id, c.cat.TopicIDs())
	}
	c.state.ActiveTopicID = id
	return nil
}

// RevealTopic selects id and expands the section that owns it.
func (c *Controller) RevealTopic(id string) error {
	t, ok := c.cat.Topic(id)
	if !ok {
		return unknownID(ErrInvalidTopicID, id, c.cat.TopicIDs())
	}
	c.state = State{ActiveTopicID: t.ID, ExpandedSectionID: t.SectionID}
	return nil
}

// ToggleSection collapses id when it is expanded and otherwise expands it,
// collapsing whichever section was open.
func (c *Controller) ToggleSection(id string) error {
	if !c.cat.HasSection(id) {
		return unknownID(ErrInvalidSectionID, id, c.cat.SectionIDs())
	}
	if c.state.ExpandedSectionID == id {
		c.state.ExpandedSectionID = ""
	} else {
		c.state.ExpandedSectionID = id
	}
	return nil
}

// AdvanceToNext moves to the following topic and expands its section. It
// reports false, changing nothing, on the last topic.
func (c *Controller) AdvanceToNext() bool {
	next, ok := c.NextTopic()
	if !ok {
		return false
	}
	c.state = State{ActiveTopicID: next.ID, ExpandedSectionID: next.SectionID}
	return true
}

func (c *Controller) CurrentTopic() catalog.FlattenedTopic {
	t, _ := c.cat.Topic(c.state.ActiveTopicID)
	return t
}

func (c *Controller) CurrentSection() catalog.Section {
	s, _ := c.cat.Section(c.CurrentTopic().SectionID)
	return s
}

func (c *Controller) NextTopic() (catalog.FlattenedTopic, bool) {
	return c.cat.At(c.CurrentTopic().Index + 1)
}

// PreviousTopic is the topic before the active one, if any.
func (c *Controller) PreviousTopic() (catalog.FlattenedTopic, bool) {
	return c.cat.At(c.CurrentTopic().Index - 1)
}
