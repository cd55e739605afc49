// Package progress records which catalog topics the learner has completed
// during the current session.
package progress

import "prereqlab/internal/catalog"

// Tracker holds the session's completion set. Entries are only ever added.
type Tracker struct {
	cat  *catalog.Catalog
	done map[string]struct{}
}

func NewTracker(cat *catalog.Catalog) *Tracker {
	return &Tracker{cat: cat, done: map[string]struct{}{}}
}

// MarkComplete adds topicID to the completion set and reports whether it was
// newly added. Unknown ids are ignored.
func (t *Tracker) MarkComplete(topicID string) bool {
	if !t.cat.HasTopic(topicID) {
		return false
	}
	if _, ok := t.done[topicID]; ok {
		return false
	}
	t.done[topicID] = struct{}{}
	return true
}

func (t *Tracker) IsComplete(topicID string) bool {
	_, ok := t.done[topicID]
	return ok
}

func (t *Tracker) Count() int { return len(t.done) }

func (t *Tracker) Total() int { return t.cat.Len() }

// Percent is round(100*count/total) with halves rounded up.
func (t *Tracker) Percent() int {
	return percent(t.Count(), t.Total())
}

func (t *Tracker) AllComplete() bool {
	return t.Total() > 0 && t.Count() == t.Total()
}

// SectionProgress counts completed topics within one section.
func (t *Tracker) SectionProgress(sectionID string) (done, total int) {
	s, ok := t.cat.Section(sectionID)
	if !ok {
		return 0, 0
	}
	for _, tr := range s.Topics {
		if t.IsComplete(tr.ID) {
			done++
		}
	}
	return done, len(s.Topics)
}

// Completed lists completed ids in catalog order.
func (t *Tracker) Completed() []string {
	out := make([]string, 0, len(t.done))
	for _, id := range t.cat.TopicIDs() {
		if t.IsComplete(id) {
			out = append(out, id)
		}
	}
	return out
}

func percent(count, total int) int {
	if total <= 0 || count <= 0 {
		return 0
	}
	if count >= total {
		return 100
	}
	return (200*count + total) / (2 * total)
}
