// Package layout turns a viewport class into concrete arrangement
// decisions: widget grid columns, gaps and the navigation chrome.
package layout

import "prereqlab/internal/viewport"

// Descriptor is the grid a lesson widget should use.
type Descriptor struct {
	Columns int
	GapPx   int
}

var gapPx = map[viewport.Class]int{
	viewport.Desktop: 16,
	viewport.Tablet:  12,
	viewport.Mobile:  8,
}

// For collapses a widget's desktop column count for smaller viewports.
// Tablets drop one column from three-column grids and stack two-column
// grids; mobile always stacks.
func For(class viewport.Class, desktopColumns int) Descriptor {
	n := max(1, desktopColumns)
	switch class {
	case viewport.Desktop:
	case viewport.Tablet:
		if n >= 3 {
			n = 2
		} else {
			n = 1
		}
	default:
		n = 1
		class = viewport.Mobile
	}
	return Descriptor{Columns: n, GapPx: gapPx[class]}
}

// GapCells converts the gap to terminal cells, never less than one.
func (d Descriptor) GapCells(cellPx int) int {
	return pxToCells(d.GapPx, cellPx, 1)
}

type SidebarMode int

const (
	SidebarInline SidebarMode = iota
	SidebarOverlay
)

func (m SidebarMode) String() string {
	if m == SidebarOverlay {
		return "overlay"
	}
	return "inline"
}

// Chrome describes the navigation frame around the lesson content.
type Chrome struct {
	Sidebar           SidebarMode
	SidebarWidthPx    int
	ContentPaddingPx  int
	MaxContentWidthPx int
}

const maxContentWidthPx = 820

func ChromeFor(class viewport.Class) Chrome {
	switch class {
	case viewport.Desktop:
		return Chrome{Sidebar: SidebarInline, SidebarWidthPx: 256, ContentPaddingPx: 32, MaxContentWidthPx: maxContentWidthPx}
	case viewport.Tablet:
		return Chrome{Sidebar: SidebarInline, SidebarWidthPx: 208, ContentPaddingPx: 16, MaxContentWidthPx: maxContentWidthPx}
	default:
		return Chrome{Sidebar: SidebarOverlay, SidebarWidthPx: 256, ContentPaddingPx: 8, MaxContentWidthPx: maxContentWidthPx}
	}
}

// Cells is Chrome measured in terminal cells.
type Cells struct {
	Sidebar         SidebarMode
	SidebarWidth    int
	ContentPadding  int
	MaxContentWidth int
}

func (c Chrome) Cells(cellPx int) Cells {
	return Cells{
		Sidebar:         c.Sidebar,
		SidebarWidth:    pxToCells(c.SidebarWidthPx, cellPx, 16),
		ContentPadding:  pxToCells(c.ContentPaddingPx, cellPx, 1),
		MaxContentWidth: pxToCells(c.MaxContentWidthPx, cellPx, 40),
	}
}

func pxToCells(px, cellPx, floor int) int {
	if cellPx <= 0 {
		cellPx = 8
	}
	return max(floor, px/cellPx)
}
