package catalog

// Catalog is the immutable, validated topic tree. Build one with Parse or
// Builtin; the zero value is not usable.
type Catalog struct {
	title    string
	course   string
	sections []Section
	flat     []FlattenedTopic
	topics   map[string]int
	secIdx   map[string]int
}

func newCatalog(doc Document) *Catalog {
	c := &Catalog{
		title:    doc.Title,
		course:   doc.Course,
		sections: make([]Section, len(doc.Sections)),
		topics:   map[string]int{},
		secIdx:   map[string]int{},
	}
	for i, s := range doc.Sections {
		s.Topics = append([]TopicRef(nil), s.Topics...)
		c.sections[i] = s
		c.secIdx[s.ID] = i
		for _, t := range s.Topics {
			c.topics[t.ID] = len(c.flat)
			c.flat = append(c.flat, FlattenedTopic{ID: t.ID, Label: t.Label, SectionID: s.ID, Index: len(c.flat)})
		}
	}
	return c
}

func (c *Catalog) Title() string  { return c.title }
func (c *Catalog) Course() string { return c.course }

// Sections returns a copy of the sections in display order.
func (c *Catalog) Sections() []Section {
	out := make([]Section, len(c.sections))
	for i, s := range c.sections {
		s.Topics = append([]TopicRef(nil), s.Topics...)
		out[i] = s
	}
	return out
}

// Flatten returns every topic in section order.
func (c *Catalog) Flatten() []FlattenedTopic {
	return append([]FlattenedTopic(nil), c.flat...)
}

func (c *Catalog) Len() int { return len(c.flat) }

func (c *Catalog) Topic(id string) (FlattenedTopic, bool) {
	i, ok := c.topics[id]
	if !ok {
		return FlattenedTopic{}, false
	}
	return c.flat[i], true
}

// At returns the flattened topic at index i.
func (c *Catalog) At(i int) (FlattenedTopic, bool) {
	if i < 0 || i >= len(c.flat) {
		return FlattenedTopic{}, false
	}
	return c.flat[i], true
}

func (c *Catalog) Section(id string) (Section, bool) {
	i, ok := c.secIdx[id]
	if !ok {
		return Section{}, false
	}
	s := c.sections[i]
	s.Topics = append([]TopicRef(nil), s.Topics...)
	return s, true
}

func (c *Catalog) HasTopic(id string) bool {
	_, ok := c.topics[id]
	return ok
}

func (c *Catalog) HasSection(id string) bool {
	_, ok := c.secIdx[id]
	return ok
}

// TopicIDs lists every topic id in flattened order.
func (c *Catalog) TopicIDs() []string {
	out := make([]string, len(c.flat))
	for i, t := range c.flat {
		out[i] = t.ID
	}
	return out
}

func (c *Catalog) SectionIDs() []string {
	out := make([]string, len(c.sections))
	for i, s := range c.sections {
		out[i] = s.ID
	}
	return out
}
