package lessons

import (
	"fmt"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"

	"prereqlab/internal/layout"
	"prereqlab/internal/viewport"
)

// Context is the per-render contract between the lab and a lesson.
type Context struct {
	TopicID    string
	Class      viewport.Class
	Width      int
	Accent     string
	Complete   bool
	OnComplete func()
}

type Options struct {
	ASCIIOnly bool
	CellPx    int
}

// Renderer turns lessons into terminal text and routes widget keys.
type Renderer struct {
	lessons Registry
	ascii   bool
	cellPx  int

	mdMu sync.Mutex
	md   map[int]*glamour.TermRenderer
}

func NewRenderer(reg Registry, opts Options) *Renderer {
	if opts.CellPx <= 0 {
		opts.CellPx = 8
	}
	return &Renderer{lessons: reg, ascii: opts.ASCIIOnly, cellPx: opts.CellPx, md: map[int]*glamour.TermRenderer{}}
}

func (r *Renderer) Has(topicID string) bool {
	_, ok := r.lessons[topicID]
	return ok
}

// Controls is the widget key help for a topic, empty when the lesson is
// static.
func (r *Renderer) Controls(topicID string) string {
	if in, ok := r.lessons[topicID].(Interactive); ok {
		return in.Controls()
	}
	return ""
}

// HandleKey applies a lesson key. "c" marks the topic complete through the
// context callback, once; everything else goes to the widget.
func (r *Renderer) HandleKey(ctx Context, key string) bool {
	l, ok := r.lessons[ctx.TopicID]
	if !ok {
		return false
	}
	if key == "c" {
		if ctx.Complete || ctx.OnComplete == nil {
			return false
		}
		ctx.OnComplete()
		return true
	}
	if in, ok := l.(Interactive); ok {
		return in.HandleKey(key)
	}
	return false
}

func (r *Renderer) Render(ctx Context) string {
	width := max(20, ctx.Width)
	frame := Frame{Class: ctx.Class, Width: width, CellPx: r.cellPx, ASCII: r.ascii}
	l, ok := r.lessons[ctx.TopicID]
	if !ok {
		return strings.Join(r.box("Missing lesson", []string{fmt.Sprintf("No lesson is registered for %q.", ctx.TopicID)}, width, ""), "\n")
	}
	page := l.Render(frame)

	accent := ctx.Accent
	if accent == "" {
		accent = "#38bdf8"
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent))
	out := []string{title.Render(page.Title), ""}
	if page.Intro != "" {
		out = append(out, r.markdown(page.Intro, width)...)
		out = append(out, "")
	}
	for _, b := range page.Blocks {
		out = append(out, r.grid(frame, b)...)
		out = append(out, "")
	}
	if page.Code != "" {
		out = append(out, r.box("python", highlightPython(page.Code, r.ascii), width, "")...)
		out = append(out, "")
	}
	if page.Callout != nil {
		body := wrap(page.Callout.Body, width-4)
		out = append(out, r.box(page.Callout.Title, body, width, accent)...)
		out = append(out, "")
	}
	out = append(out, r.footer(ctx, accent))
	if help := r.Controls(ctx.TopicID); help != "" {
		out = append(out, lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b")).Render(help))
	}
	for i, line := range out {
		if ansi.StringWidth(line) > width {
			out[i] = ansi.Truncate(line, width, "…")
		}
	}
	return strings.Join(out, "\n")
}

func (r *Renderer) footer(ctx Context, accent string) string {
	if ctx.Complete {
		mark := "✅ Completed!"
		if r.ascii {
			mark = "[x] Completed!"
		}
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#34d399")).Render(mark)
	}
	label := "[c] ✓ Mark Complete"
	if r.ascii {
		label = "[c] Mark Complete"
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)).Render(label)
}

func (r *Renderer) markdown(src string, width int) []string {
	tr := r.termRenderer(width)
	if tr == nil {
		return wrap(plainMarkdown.Replace(src), width)
	}
	out, err := tr.Render(src)
	if err != nil {
		return wrap(plainMarkdown.Replace(src), width)
	}
	return strings.Split(strings.Trim(out, "\n"), "\n")
}

var plainMarkdown = strings.NewReplacer("**", "", "`", "", "*", "")

func (r *Renderer) termRenderer(width int) *glamour.TermRenderer {
	r.mdMu.Lock()
	defer r.mdMu.Unlock()
	if tr, ok := r.md[width]; ok {
		return tr
	}
	style := "dark"
	if r.ascii {
		style = "ascii"
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(20, width-4)),
	)
	if err != nil {
		tr = nil
	}
	r.md[width] = tr
	return tr
}

// grid arranges a block's panels using the layout policy for the frame's
// viewport class.
func (r *Renderer) grid(f Frame, b Block) []string {
	d := layout.For(f.Class, b.Columns)
	gap := d.GapCells(f.CellPx)
	colW := panelOuterWidth(f, b.Columns)

	var out []string
	for start := 0; start < len(b.Panels); start += d.Columns {
		end := min(len(b.Panels), start+d.Columns)
		row := make([][]string, 0, end-start)
		height := 0
		for _, p := range b.Panels[start:end] {
			bx := r.box(p.Title, p.Lines, colW, "")
			height = max(height, len(bx))
			row = append(row, bx)
		}
		for i := range row {
			for len(row[i]) < height {
				row[i] = append(row[i], strings.Repeat(" ", colW))
			}
		}
		for line := 0; line < height; line++ {
			parts := make([]string, len(row))
			for i := range row {
				parts[i] = row[i][line]
			}
			out = append(out, strings.Join(parts, strings.Repeat(" ", gap)))
		}
		if end < len(b.Panels) {
			for g := 0; g < max(0, gap/2); g++ {
				out = append(out, "")
			}
		}
	}
	return out
}

// box draws a bordered panel exactly width cells wide. Content lines may
// carry ANSI styling.
func (r *Renderer) box(title string, lines []string, width int, color string) []string {
	width = max(6, width)
	inner := width - 4

	h, v := "─", "│"
	tl, tr, bl, br := "╭", "╮", "╰", "╯"
	if r.ascii {
		h, v = "-", "|"
		tl, tr, bl, br = "+", "+", "+", "+"
	}
	border := lipgloss.NewStyle().Foreground(lipgloss.Color("#1f2d44"))
	if color != "" {
		border = border.Foreground(lipgloss.Color(color))
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#94a3b8"))
	if color != "" {
		titleStyle = titleStyle.Foreground(lipgloss.Color(color))
	}

	top := border.Render(tl + strings.Repeat(h, width-2) + tr)
	if title != "" {
		t := ansi.Truncate(" "+title+" ", width-4, "…")
		fill := max(0, width-3-ansi.StringWidth(t))
		top = border.Render(tl+h) + titleStyle.Render(t) + border.Render(strings.Repeat(h, fill)+tr)
	}

	out := make([]string, 0, len(lines)+2)
	out = append(out, top)
	for _, line := range lines {
		line = strings.ReplaceAll(line, "\t", "    ")
		line = ansi.Truncate(line, inner, "…")
		pad := max(0, inner-ansi.StringWidth(line))
		out = append(out, border.Render(v)+" "+line+strings.Repeat(" ", pad)+" "+border.Render(v))
	}
	out = append(out, border.Render(bl+strings.Repeat(h, width-2)+br))
	return out
}
