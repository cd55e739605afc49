package layout

import (
	"testing"

	"prereqlab/internal/viewport"
)

func TestForCollapsesColumns(t *testing.T) {
	cases := []struct {
		class   viewport.Class
		columns int
		want    int
	}{
		{viewport.Desktop, 3, 3},
		{viewport.Desktop, 2, 2},
		{viewport.Desktop, 1, 1},
		{viewport.Desktop, 0, 1},
		{viewport.Tablet, 3, 2},
		{viewport.Tablet, 2, 1},
		{viewport.Tablet, 1, 1},
		{viewport.Tablet, 4, 2},
		{viewport.Mobile, 3, 1},
		{viewport.Mobile, 2, 1},
	}
	for _, tc := range cases {
		if got := For(tc.class, tc.columns).Columns; got != tc.want {
			t.Fatalf("For(%v,%d).Columns=%d want %d", tc.class, tc.columns, got, tc.want)
		}
	}
}

func TestGapsShrinkWithViewport(t *testing.T) {
	d := For(viewport.Desktop, 2).GapPx
	tb := For(viewport.Tablet, 2).GapPx
	m := For(viewport.Mobile, 2).GapPx
	if !(d > tb && tb > m) {
		t.Fatalf("expected strictly decreasing gaps, got %d %d %d", d, tb, m)
	}
	if g := For(viewport.Mobile, 1).GapCells(8); g != 1 {
		t.Fatalf("expected 1 gap cell on mobile, got %d", g)
	}
	if g := For(viewport.Desktop, 1).GapCells(8); g != 2 {
		t.Fatalf("expected 2 gap cells on desktop, got %d", g)
	}
}

func TestChromeForClass(t *testing.T) {
	if c := ChromeFor(viewport.Mobile); c.Sidebar != SidebarOverlay {
		t.Fatalf("mobile sidebar should overlay, got %v", c.Sidebar)
	}
	desk := ChromeFor(viewport.Desktop)
	tab := ChromeFor(viewport.Tablet)
	if desk.Sidebar != SidebarInline || tab.Sidebar != SidebarInline {
		t.Fatalf("desktop and tablet sidebars should be inline")
	}
	if tab.SidebarWidthPx >= desk.SidebarWidthPx {
		t.Fatalf("tablet sidebar should be narrower than desktop")
	}
	cells := desk.Cells(8)
	if cells.SidebarWidth != 32 || cells.ContentPadding != 4 {
		t.Fatalf("unexpected desktop cells %+v", cells)
	}
}
