package catalog

import (
	"errors"
	"fmt"
	"regexp"
)

const (
	Kind                   = "catalog"
	SupportedSchemaVersion = 1
)

var (
	idPattern    = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)
	colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// Document is the on-disk shape of a catalog file.
type Document struct {
	Kind          string    `yaml:"kind"`
	SchemaVersion int       `yaml:"schema_version"`
	Title         string    `yaml:"title"`
	Course        string    `yaml:"course"`
	Sections      []Section `yaml:"sections"`
}

type Section struct {
	ID     string     `yaml:"id"`
	Label  string     `yaml:"label"`
	Icon   string     `yaml:"icon"`
	Color  string     `yaml:"color"`
	Topics []TopicRef `yaml:"topics"`
}

type TopicRef struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// FlattenedTopic is a topic paired with its owning section. Index order
// across the flattened list defines "next".
type FlattenedTopic struct {
	ID        string
	Label     string
	SectionID string
	Index     int
}

func (d Document) Validate() error {
	var errs []error
	if d.Kind != Kind {
		errs = append(errs, fmt.Errorf("kind must be %q", Kind))
	}
	if d.SchemaVersion != SupportedSchemaVersion {
		errs = append(errs, fmt.Errorf("unsupported schema_version %d", d.SchemaVersion))
	}
	if len(d.Sections) == 0 {
		errs = append(errs, errors.New("at least one section is required"))
	}

	sections := map[string]struct{}{}
	owners := map[string]string{}
	for i, s := range d.Sections {
		where := fmt.Sprintf("sections[%d]", i)
		if s.ID != "" {
			where = fmt.Sprintf("section %q", s.ID)
		}
		if !idPattern.MatchString(s.ID) {
			errs = append(errs, fmt.Errorf("%s: invalid id %q", where, s.ID))
		}
		if _, dup := sections[s.ID]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate section id", where))
		}
		sections[s.ID] = struct{}{}
		if s.Label == "" {
			errs = append(errs, fmt.Errorf("%s: label is required", where))
		}
		if s.Color != "" && !colorPattern.MatchString(s.Color) {
			errs = append(errs, fmt.Errorf("%s: color %q must be #rrggbb", where, s.Color))
		}
		if len(s.Topics) == 0 {
			errs = append(errs, fmt.Errorf("%s: at least one topic is required", where))
		}
		for j, t := range s.Topics {
			if !idPattern.MatchString(t.ID) {
				errs = append(errs, fmt.Errorf("%s topics[%d]: invalid id %q", where, j, t.ID))
				continue
			}
			if t.Label == "" {
				errs = append(errs, fmt.Errorf("%s topic %q: label is required", where, t.ID))
			}
			if prev, dup := owners[t.ID]; dup {
				errs = append(errs, fmt.Errorf("%s topic %q: already defined in section %q", where, t.ID, prev))
				continue
			}
			owners[t.ID] = s.ID
		}
	}
	return errors.Join(errs...)
}
