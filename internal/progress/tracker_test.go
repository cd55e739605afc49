package progress

import (
	"testing"

	"prereqlab/internal/catalog"
)

func TestPercentOnBuiltinCatalog(t *testing.T) {
	tr := NewTracker(catalog.MustBuiltin())
	if tr.Total() != 17 {
		t.Fatalf("expected 17 topics, got %d", tr.Total())
	}
	if tr.Percent() != 0 {
		t.Fatalf("expected 0%% at start, got %d", tr.Percent())
	}
	tr.MarkComplete("variables")
	if tr.Percent() != 6 {
		t.Fatalf("expected 6%% after one topic, got %d", tr.Percent())
	}
}

func TestMarkCompleteIsIdempotent(t *testing.T) {
	tr := NewTracker(catalog.MustBuiltin())
	if !tr.MarkComplete("variables") {
		t.Fatalf("expected first mark to report added")
	}
	if tr.MarkComplete("variables") {
		t.Fatalf("expected second mark to be a no-op")
	}
	if tr.Count() != 1 {
		t.Fatalf("expected count 1, got %d", tr.Count())
	}
}

func TestMarkCompleteIgnoresUnknownTopic(t *testing.T) {
	tr := NewTracker(catalog.MustBuiltin())
	if tr.MarkComplete("not-a-topic") {
		t.Fatalf("unknown topic should not be added")
	}
	if tr.Count() != 0 || tr.IsComplete("not-a-topic") {
		t.Fatalf("unknown topic leaked into completion set")
	}
}

func TestPercentMonotoneAndRounded(t *testing.T) {
	cat := catalog.MustBuiltin()
	tr := NewTracker(cat)
	prev := tr.Percent()
	for i, id := range cat.TopicIDs() {
		tr.MarkComplete(id)
		got := tr.Percent()
		if got < prev {
			t.Fatalf("percent decreased from %d to %d", prev, got)
		}
		c := i + 1
		want := int(float64(100*c)/float64(17) + 0.5)
		if got != want {
			t.Fatalf("count %d: got %d want %d", c, got, want)
		}
		prev = got
	}
	if !tr.AllComplete() || tr.Percent() != 100 {
		t.Fatalf("expected all complete at 100%%, got %d", tr.Percent())
	}
}

func TestPercentRoundsHalfUp(t *testing.T) {
	cases := []struct{ count, total, want int }{
		{1, 8, 13},
		{1, 16, 6},
		{3, 8, 38},
		{0, 0, 0},
		{1, 200, 1},
		{1, 201, 0},
	}
	for _, tc := range cases {
		if got := percent(tc.count, tc.total); got != tc.want {
			t.Fatalf("percent(%d,%d)=%d want %d", tc.count, tc.total, got, tc.want)
		}
	}
}

func TestSectionProgressAndCompletedOrder(t *testing.T) {
	tr := NewTracker(catalog.MustBuiltin())
	tr.MarkComplete("matmul")
	tr.MarkComplete("sigmoid")
	tr.MarkComplete("variables")

	done, total := tr.SectionProgress("algebra")
	if done != 2 || total != 4 {
		t.Fatalf("algebra progress %d/%d", done, total)
	}
	done, total = tr.SectionProgress("linalg")
	if done != 1 || total != 2 {
		t.Fatalf("linalg progress %d/%d", done, total)
	}
	got := tr.Completed()
	want := []string{"variables", "sigmoid", "matmul"}
	if len(got) != len(want) {
		t.Fatalf("completed %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("completed order %v, want %v", got, want)
		}
	}
}
