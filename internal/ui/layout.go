package ui

import "prereqlab/internal/layout"

const (
	headerRows = 2
	statusRows = 1
	minCols    = 24
	minRows    = 8
)

// frameGeometry places the sidebar and lesson column inside the terminal.
type frameGeometry struct {
	cols, rows    int
	bodyRows      int
	sidebarInline bool
	sidebarWidth  int
	drawerWidth   int
	contentX      int
	contentWidth  int
}

func computeGeometry(cols, rows int, c layout.Cells) frameGeometry {
	g := frameGeometry{
		cols:     cols,
		rows:     rows,
		bodyRows: max(1, rows-headerRows-statusRows),
	}
	avail := cols
	if c.Sidebar == layout.SidebarInline {
		g.sidebarInline = true
		g.sidebarWidth = min(c.SidebarWidth, cols/2)
		avail = cols - g.sidebarWidth
	} else {
		g.drawerWidth = min(c.SidebarWidth, max(16, cols-4))
	}
	pad := c.ContentPadding
	if avail-2*pad < 20 {
		pad = max(0, (avail-20)/2)
	}
	g.contentWidth = max(10, min(c.MaxContentWidth, avail-2*pad))
	offset := max(pad, (avail-g.contentWidth)/2)
	g.contentX = g.sidebarWidth + offset
	return g
}

func tooSmall(cols, rows int) bool {
	return cols < minCols || rows < minRows
}
