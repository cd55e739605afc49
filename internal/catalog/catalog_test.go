package catalog

import (
	"strings"
	"testing"
)

func TestBuiltinCatalogShape(t *testing.T) {
	c, err := Builtin()
	if err != nil {
		t.Fatalf("builtin: %v", err)
	}
	if got := len(c.Sections()); got != 5 {
		t.Fatalf("expected 5 sections, got %d", got)
	}
	if c.Len() != 17 {
		t.Fatalf("expected 17 topics, got %d", c.Len())
	}
	first, _ := c.At(0)
	if first.ID != "variables" || first.SectionID != "algebra" {
		t.Fatalf("unexpected first topic: %+v", first)
	}
	last, _ := c.At(c.Len() - 1)
	if last.ID != "control-flow" || last.SectionID != "python" {
		t.Fatalf("unexpected last topic: %+v", last)
	}
}

func TestEveryTopicOwnedByExactlyOneSection(t *testing.T) {
	c := MustBuiltin()
	for _, id := range c.TopicIDs() {
		owners := 0
		for _, s := range c.Sections() {
			for _, tr := range s.Topics {
				if tr.ID == id {
					owners++
				}
			}
		}
		if owners != 1 {
			t.Fatalf("topic %q owned by %d sections", id, owners)
		}
	}
}

func TestFlattenPreservesDeclarationOrder(t *testing.T) {
	c := MustBuiltin()
	var want []string
	sum := 0
	for _, s := range c.Sections() {
		sum += len(s.Topics)
		for _, tr := range s.Topics {
			want = append(want, s.ID+"/"+tr.ID)
		}
	}
	flat := c.Flatten()
	if len(flat) != sum {
		t.Fatalf("flattened length %d != section sum %d", len(flat), sum)
	}
	for i, ft := range flat {
		if got := ft.SectionID + "/" + ft.ID; got != want[i] {
			t.Fatalf("index %d: got %s want %s", i, got, want[i])
		}
		if ft.Index != i {
			t.Fatalf("index %d carries Index %d", i, ft.Index)
		}
	}
}

func TestParseRejectsDuplicateTopicAcrossSections(t *testing.T) {
	doc := `
kind: catalog
schema_version: 1
sections:
  - id: aa
    label: A
    topics: [{id: shared, label: One}]
  - id: bb
    label: B
    topics: [{id: shared, label: Two}]
`
	_, err := Parse([]byte(doc))
	if err == nil {
		t.Fatalf("expected duplicate topic error")
	}
	if !strings.Contains(err.Error(), `already defined in section "aa"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseRejectsBadIDsAndEmptySections(t *testing.T) {
	doc := `
kind: catalog
schema_version: 1
sections:
  - id: "bad id"
    label: Bad
    topics: []
`
	_, err := Parse([]byte(doc))
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "invalid id") || !strings.Contains(msg, "at least one topic") {
		t.Fatalf("expected both id and topic errors, got %v", err)
	}
}

func TestParseAcceptsShortAndUppercaseIDs(t *testing.T) {
	doc := `
kind: catalog
schema_version: 1
sections:
  - id: A
    label: A
    topics: [{id: a1, label: A1}, {id: a2, label: A2}]
  - id: B
    label: B
    topics: [{id: b1, label: B1}, {id: x, label: X}]
`
	c, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	b1, ok := c.Topic("b1")
	if !ok || b1.SectionID != "B" || b1.Index != 2 {
		t.Fatalf("unexpected b1: %+v %v", b1, ok)
	}
	if !c.HasTopic("x") || !c.HasSection("A") {
		t.Fatalf("single-character and uppercase ids should resolve")
	}
}

func TestParseAppliesDefaults(t *testing.T) {
	doc := `
kind: catalog
schema_version: 1
sections:
  - id: aa
    label: A
    topics: [{id: t1, label: One}]
`
	c, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	s, ok := c.Section("aa")
	if !ok || s.Color == "" || s.Icon == "" {
		t.Fatalf("expected default color and icon, got %+v", s)
	}
	if c.Title() == "" {
		t.Fatalf("expected default title")
	}
}

func TestSectionsReturnsCopies(t *testing.T) {
	c := MustBuiltin()
	secs := c.Sections()
	secs[0].Topics[0].ID = "mutated"
	if !c.HasTopic("variables") {
		t.Fatalf("catalog mutated through Sections copy")
	}
	again, _ := c.Section("algebra")
	if again.Topics[0].ID != "variables" {
		t.Fatalf("section copy leaked mutation")
	}
}
