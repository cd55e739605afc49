package ui

import (
	"testing"

	"prereqlab/internal/layout"
	"prereqlab/internal/viewport"
)

func TestComputeGeometryPerClass(t *testing.T) {
	desktop := computeGeometry(130, 40, layout.ChromeFor(viewport.Desktop).Cells(8))
	if !desktop.sidebarInline || desktop.sidebarWidth != 32 {
		t.Fatalf("desktop sidebar = %+v", desktop)
	}
	if desktop.contentWidth != 130-32-2*4 {
		t.Fatalf("desktop content width = %d", desktop.contentWidth)
	}
	if desktop.bodyRows != 40-headerRows-statusRows {
		t.Fatalf("body rows = %d", desktop.bodyRows)
	}

	tablet := computeGeometry(100, 30, layout.ChromeFor(viewport.Tablet).Cells(8))
	if !tablet.sidebarInline || tablet.sidebarWidth != 26 || tablet.contentWidth != 100-26-4 {
		t.Fatalf("tablet geometry = %+v", tablet)
	}

	mobile := computeGeometry(60, 30, layout.ChromeFor(viewport.Mobile).Cells(8))
	if mobile.sidebarInline || mobile.sidebarWidth != 0 {
		t.Fatalf("mobile sidebar should overlay: %+v", mobile)
	}
	if mobile.contentWidth != 58 || mobile.contentX != 1 {
		t.Fatalf("mobile content = %+v", mobile)
	}
	if mobile.drawerWidth != 32 {
		t.Fatalf("mobile drawer width = %d", mobile.drawerWidth)
	}
}

func TestContentWidthCapsAtMaximum(t *testing.T) {
	g := computeGeometry(300, 40, layout.ChromeFor(viewport.Desktop).Cells(8))
	if g.contentWidth != 102 {
		t.Fatalf("content width = %d, want 102", g.contentWidth)
	}
	if g.contentX <= g.sidebarWidth+4 {
		t.Fatalf("capped content should be centered, x = %d", g.contentX)
	}
}

func TestTooSmall(t *testing.T) {
	if !tooSmall(20, 30) || !tooSmall(80, 5) || tooSmall(40, 12) {
		t.Fatalf("unexpected tooSmall results")
	}
}
