package ui

import (
	"fmt"
	"math"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/harmonica"
	clog "github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"prereqlab/internal/layout"
	"prereqlab/internal/viewport"
)

type animateMsg time.Time

type labKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Continue   key.Binding
	Complete   key.Binding
	Lesson     key.Binding
	Sidebar    key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Help       key.Binding
	Quit       key.Binding
	Close      key.Binding
}

func (k labKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Continue, k.Complete, k.Sidebar, k.Help, k.Quit}
}

func (k labKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Sidebar},
		{k.Continue, k.Complete, k.Lesson},
		{k.ScrollUp, k.ScrollDown, k.Help, k.Quit},
	}
}

func newKeyMap() labKeyMap {
	return labKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Continue:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "continue")),
		Complete:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete")),
		Lesson:     key.NewBinding(key.WithKeys("left", "right", "tab", "space"), key.WithHelp("←/→ tab space", "lesson controls")),
		Sidebar:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "topics")),
		ScrollUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Close:      key.NewBinding(key.WithKeys("esc")),
	}
}

type Root struct {
	theme        Theme
	ascii        bool
	debug        bool
	ctrl         Controller
	styleVariant string
	motionLevel  string

	mu      sync.Mutex
	program *tea.Program
	running bool

	cols int
	rows int

	state      SessionState
	lastTopic  string
	cursor     int
	scroll     int
	helpOpen   bool
	drawerOpen bool

	help      help.Model
	keymap    labKeyMap
	bar       progress.Model
	logger    *clog.Logger
	drawerPos float64
	drawerVel float64
	spring    harmonica.Spring

	statusFlash    string
	lastInputEvent string
}

type Options struct {
	ASCIIOnly    bool
	Debug        bool
	StyleVariant string
	MotionLevel  string
}

func New(opts Options) *Root {
	logger := clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "prereqlab-ui", Level: clog.WarnLevel})
	if opts.Debug {
		logger.SetLevel(clog.DebugLevel)
	}

	h := help.New()
	h.Styles = help.DefaultDarkStyles()
	motionLevel := normalizeMotionLevel(opts.MotionLevel)
	styleVariant := normalizeStyleVariant(opts.StyleVariant)
	theme := ThemeForVariant(styleVariant)
	spring := harmonica.NewSpring(harmonica.FPS(60), 10.0, 0.8)
	switch motionLevel {
	case "reduced":
		spring = harmonica.NewSpring(harmonica.FPS(30), 9.0, 0.92)
	case "off":
		spring = harmonica.NewSpring(harmonica.FPS(60), 1000.0, 1.0)
	}
	bar := progress.New(
		progress.WithWidth(20),
		progress.WithColors(lipgloss.Color(theme.BarFrom), lipgloss.Color(theme.BarTo)),
		progress.WithScaled(true),
		progress.WithoutPercentage(),
	)

	return &Root{
		theme:        theme,
		ascii:        opts.ASCIIOnly,
		debug:        opts.Debug,
		styleVariant: styleVariant,
		motionLevel:  motionLevel,
		cols:         120,
		rows:         32,
		help:         h,
		keymap:       newKeyMap(),
		bar:          bar,
		logger:       logger,
		spring:       spring,
	}
}

func (r *Root) Init() tea.Cmd {
	return nil
}

func (r *Root) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if rec := recover(); rec != nil {
			r.onModelPanic("update", rec, msg)
			model = r
			cmd = nil
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.Resize(msg.Width, msg.Height)
		return r, r.animateIfNeeded()
	case animateMsg:
		target := r.drawerTarget()
		r.drawerPos, r.drawerVel = r.spring.Update(r.drawerPos, r.drawerVel, target)
		if r.shouldAnimate(target) {
			return r, animateTickCmd()
		}
		r.drawerPos = target
		r.drawerVel = 0
		return r, nil
	case tea.KeyPressMsg:
		return r.handleKey(msg)
	}
	return r, nil
}

func (r *Root) View() (view tea.View) {
	defer func() {
		if rec := recover(); rec != nil {
			r.onModelPanic("view", rec, nil)
			width := max(1, r.cols)
			msg := "UI recovered from a rendering panic. Check logs."
			view = tea.NewView(r.theme.Fail.Width(width).Render(trimForWidth(msg, max(1, width-1))))
		}
	}()
	v := tea.NewView(r.Render())
	v.AltScreen = true
	return v
}

func (r *Root) Run() error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil
	}
	p := tea.NewProgram(r)
	r.program = p
	r.running = true
	r.mu.Unlock()

	_, err := p.Run()

	r.mu.Lock()
	r.program = nil
	r.running = false
	r.mu.Unlock()
	return err
}

func (r *Root) Stop() {
	r.mu.Lock()
	p := r.program
	r.mu.Unlock()
	if p != nil {
		p.Quit()
	}
}

func (r *Root) SetController(c Controller) {
	r.ctrl = c
	r.refresh()
	r.syncCursorToActive()
}

// Resize records the terminal size and forwards it to the controller, which
// reclassifies the viewport.
func (r *Root) Resize(cols, rows int) {
	r.cols = cols
	r.rows = rows
	r.dispatchController(func(c Controller) { c.OnResize(cols, rows) })
	if r.state.Chrome.Sidebar == layout.SidebarInline {
		r.drawerOpen = false
		r.drawerPos, r.drawerVel = 0, 0
	}
}

// OpenDrawer opens or closes the mobile topic drawer.
func (r *Root) OpenDrawer(open bool) tea.Cmd {
	if r.state.Chrome.Sidebar != layout.SidebarOverlay {
		return nil
	}
	r.drawerOpen = open
	if open {
		r.syncCursorToActive()
	}
	if !r.isRunning() || r.motionLevel == "off" {
		r.drawerPos, r.drawerVel = r.drawerTarget(), 0
		return nil
	}
	return r.animateIfNeeded()
}

func (r *Root) dispatchController(fn func(Controller)) {
	if fn == nil || r.ctrl == nil {
		return
	}
	fn(r.ctrl)
	r.refresh()
}

func (r *Root) refresh() {
	if r.ctrl == nil {
		return
	}
	r.state = r.ctrl.State()
	if r.state.ActiveTopicID != r.lastTopic {
		r.lastTopic = r.state.ActiveTopicID
		r.scroll = 0
	}
	if r.state.Flash != "" {
		r.statusFlash = r.state.Flash
	}
	r.cursor = clamp(r.cursor, 0, max(0, len(r.sidebarRows())-1))
}

func (r *Root) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	r.recordInputEvent(fmt.Sprintf("key:%s", msg.String()))

	if key.Matches(msg, r.keymap.Quit) {
		r.dispatchController(func(c Controller) { c.OnQuit() })
		return r, tea.Quit
	}

	if r.helpOpen {
		if key.Matches(msg, r.keymap.Help, r.keymap.Close) {
			r.helpOpen = false
		}
		return r, nil
	}

	overlay := r.state.Chrome.Sidebar == layout.SidebarOverlay
	sidebarVisible := !overlay || r.drawerOpen

	switch {
	case key.Matches(msg, r.keymap.Help):
		r.helpOpen = true
	case key.Matches(msg, r.keymap.Close):
		if r.drawerOpen {
			return r, r.OpenDrawer(false)
		}
	case key.Matches(msg, r.keymap.Sidebar):
		if !overlay {
			r.statusFlash = "Topics are always shown at this width"
			return r, nil
		}
		return r, r.OpenDrawer(!r.drawerOpen)
	case key.Matches(msg, r.keymap.Up):
		if !sidebarVisible {
			r.scrollBy(-1)
			return r, nil
		}
		r.cursor = clamp(r.cursor-1, 0, max(0, len(r.sidebarRows())-1))
	case key.Matches(msg, r.keymap.Down):
		if !sidebarVisible {
			r.scrollBy(1)
			return r, nil
		}
		r.cursor = clamp(r.cursor+1, 0, max(0, len(r.sidebarRows())-1))
	case key.Matches(msg, r.keymap.Select):
		if sidebarVisible {
			return r, r.activateCursor()
		}
	case key.Matches(msg, r.keymap.Continue):
		r.dispatchController(func(c Controller) { c.OnContinue() })
		r.syncCursorToActive()
	case key.Matches(msg, r.keymap.ScrollUp):
		r.scrollBy(-max(1, r.bodyRows()-2))
	case key.Matches(msg, r.keymap.ScrollDown):
		r.scrollBy(max(1, r.bodyRows()-2))
	case key.Matches(msg, r.keymap.Complete, r.keymap.Lesson):
		name := msg.String()
		r.dispatchController(func(c Controller) { c.OnLessonKey(name) })
	}
	return r, nil
}

func (r *Root) activateCursor() tea.Cmd {
	rows := r.sidebarRows()
	if r.cursor < 0 || r.cursor >= len(rows) {
		return nil
	}
	row := rows[r.cursor]
	if row.topicID == "" {
		r.dispatchController(func(c Controller) { c.OnToggleSection(row.sectionID) })
		r.cursor = r.indexOf(sidebarRow{sectionID: row.sectionID})
		return nil
	}
	r.dispatchController(func(c Controller) { c.OnSelectTopic(row.topicID) })
	r.cursor = r.indexOf(row)
	if r.drawerOpen {
		return r.OpenDrawer(false)
	}
	return nil
}

type sidebarRow struct {
	sectionID string
	topicID   string
}

// sidebarRows lists every visible sidebar line: each section header and the
// topics of the expanded section.
func (r *Root) sidebarRows() []sidebarRow {
	var out []sidebarRow
	for _, s := range r.state.Sections {
		out = append(out, sidebarRow{sectionID: s.ID})
		if !s.Expanded {
			continue
		}
		for _, t := range s.Topics {
			out = append(out, sidebarRow{sectionID: s.ID, topicID: t.ID})
		}
	}
	return out
}

func (r *Root) indexOf(target sidebarRow) int {
	for i, row := range r.sidebarRows() {
		if row == target {
			return i
		}
	}
	return clamp(r.cursor, 0, max(0, len(r.sidebarRows())-1))
}

func (r *Root) syncCursorToActive() {
	rows := r.sidebarRows()
	for i, row := range rows {
		if row.topicID != "" && row.topicID == r.state.ActiveTopicID {
			r.cursor = i
			return
		}
	}
	for i, row := range rows {
		if row.topicID == "" && row.sectionID == r.state.ActiveSectionID {
			r.cursor = i
			return
		}
	}
}

func (r *Root) scrollBy(delta int) {
	r.scroll = max(0, r.scroll+delta)
}

func (r *Root) bodyRows() int {
	return max(1, r.rows-headerRows-statusRows)
}

// Render draws one full frame. It is what View shows and what demo frames
// print.
func (r *Root) Render() string {
	if r.cols < 1 {
		r.cols = 120
	}
	if r.rows < 1 {
		r.rows = 32
	}
	w, h := r.cols, r.rows
	if tooSmall(w, h) {
		msg := []string{
			"Terminal too small",
			fmt.Sprintf("Current: %dx%d", w, h),
			fmt.Sprintf("Minimum: %dx%d", minCols, minRows),
		}
		panel := r.drawPanel("Resize", msg, min(30, w), min(6, h))
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, panel)
	}

	g := computeGeometry(w, h, r.state.Chrome)
	content := r.contentLines(g)

	var sidebar []string
	if g.sidebarInline {
		sidebar = strings.Split(r.drawPanel(r.sidebarTitle(), r.sidebarLines(g.sidebarWidth-2, g.bodyRows-2), g.sidebarWidth, g.bodyRows), "\n")
	}
	gutter := strings.Repeat(" ", max(0, g.contentX-g.sidebarWidth))

	lines := make([]string, 0, h)
	lines = append(lines, r.headerText(w), r.breadcrumbText(w))
	for i := 0; i < g.bodyRows; i++ {
		left := ""
		if i < len(sidebar) {
			left = sidebar[i]
		}
		right := ""
		if i < len(content) {
			right = content[i]
		}
		lines = append(lines, left+gutter+fitWidth(right, g.contentWidth))
	}
	lines = append(lines, r.statusText(w))
	base := strings.Join(lines, "\n")

	if !g.sidebarInline && r.drawerPos > 0.01 {
		if drawer := r.renderDrawer(g); drawer != "" {
			base = composeOverlayAt(base, drawer, w, h, headerRows, 0)
		}
	}
	if r.helpOpen {
		base = composeOverlay(base, r.helpPanel(w, h), w, h)
	}
	return base
}

func (r *Root) renderDrawer(g frameGeometry) string {
	width := g.drawerWidth
	panel := r.drawPanel(r.sidebarTitle(), r.sidebarLines(width-2, g.bodyRows-2), width, g.bodyRows)
	visible := int(math.Round(r.drawerPos * float64(width)))
	if visible <= 0 {
		return ""
	}
	if visible >= width {
		return panel
	}
	out := strings.Split(ansi.Strip(panel), "\n")
	for i, line := range out {
		runes := []rune(line)
		if len(runes) > visible {
			runes = runes[len(runes)-visible:]
		}
		out[i] = string(runes)
	}
	return strings.Join(out, "\n")
}

func (r *Root) sidebarTitle() string {
	return fmt.Sprintf("Topics %d/%d", r.state.Completed, r.state.Total)
}

func (r *Root) sidebarLines(width, height int) []string {
	rows := r.sidebarRows()
	byID := map[string]SectionRow{}
	for _, s := range r.state.Sections {
		byID[s.ID] = s
	}
	out := make([]string, 0, len(rows))
	for i, row := range rows {
		sec := byID[row.sectionID]
		var text string
		selected := i == r.cursor
		if row.topicID == "" {
			arrow := "▸"
			if sec.Expanded {
				arrow = "▾"
			}
			icon := sec.Icon + " "
			if r.ascii {
				arrow = ">"
				if sec.Expanded {
					arrow = "v"
				}
				icon = ""
			}
			count := fmt.Sprintf("%d/%d", sec.Done, sec.Total)
			label := fmt.Sprintf("%s %s%s", arrow, icon, sec.Label)
			gap := max(1, width-ansi.StringWidth(label)-len(count))
			text = fitWidth(label+strings.Repeat(" ", gap)+count, width)
			style := lipgloss.NewStyle().Bold(true)
			if sec.Color != "" {
				style = style.Foreground(lipgloss.Color(sec.Color))
			}
			if selected {
				style = r.theme.Cursor.Bold(true)
			}
			out = append(out, style.Render(text))
			continue
		}
		var topic TopicRow
		for _, t := range sec.Topics {
			if t.ID == row.topicID {
				topic = t
				break
			}
		}
		mark := "○"
		switch {
		case topic.Complete:
			mark = "✓"
		case topic.Active:
			mark = "●"
		}
		if r.ascii {
			mark = "-"
			switch {
			case topic.Complete:
				mark = "x"
			case topic.Active:
				mark = "*"
			}
		}
		text = fitWidth(fmt.Sprintf("   %s %s", mark, topic.Label), width)
		style := r.theme.PanelBody
		switch {
		case selected:
			style = r.theme.Cursor
		case topic.Active:
			style = r.theme.Active
		case topic.Complete:
			style = r.theme.Pass
		}
		out = append(out, style.Render(text))
	}
	if height > 0 && len(out) > height {
		start := clamp(r.cursor-height+1, 0, len(out)-height)
		out = out[start : start+height]
	}
	return out
}

// contentLines is the lesson column: the pinned continue row or completion
// banner, then the scrolled lesson body.
func (r *Root) contentLines(g frameGeometry) []string {
	var pinned []string
	switch {
	case r.state.AllComplete:
		icon := "🎉 "
		if r.ascii {
			icon = ""
		}
		pinned = append(pinned, r.theme.Banner.Render(fitWidth(fmt.Sprintf("%sAll %d prerequisites mastered! You're ready for ML.", icon, r.state.Total), g.contentWidth-2)))
	case r.state.Next != nil:
		arrow := " →"
		if r.ascii {
			arrow = ""
		}
		label := fmt.Sprintf("Up next: %s", r.state.Next.Label)
		action := "[n] Continue" + arrow
		gap := max(2, g.contentWidth-ansi.StringWidth(label)-ansi.StringWidth(action))
		pinned = append(pinned, r.theme.Muted.Render(label)+strings.Repeat(" ", gap)+r.theme.Accent.Render(action))
	}
	if len(pinned) > 0 {
		pinned = append(pinned, "")
	}

	var lesson []string
	if r.ctrl != nil {
		lesson = strings.Split(r.ctrl.RenderLesson(g.contentWidth), "\n")
	}
	room := max(1, g.bodyRows-len(pinned))
	maxScroll := max(0, len(lesson)-room)
	r.scroll = clamp(r.scroll, 0, maxScroll)
	lesson = lesson[r.scroll:]
	if len(lesson) > room {
		lesson = lesson[:room]
	}
	return append(pinned, lesson...)
}

func (r *Root) headerText(width int) string {
	title := firstNonEmptyStr(r.state.CourseTitle, "Prerequisite Lab")
	count := fmt.Sprintf("%d/%d complete  %d%%", r.state.Completed, r.state.Total, r.state.Percent)
	barW := 20
	if r.state.Class == viewport.Mobile {
		barW = 10
	}
	right := count + "  " + r.progressBar(barW)
	innerW := max(1, width-2)
	if ansi.StringWidth(title)+ansi.StringWidth(right)+2 > innerW {
		right = count
	}
	gap := max(1, innerW-ansi.StringWidth(title)-ansi.StringWidth(right))
	txt := fitWidth(title+strings.Repeat(" ", gap)+right, innerW)
	return r.theme.Header.Width(max(1, width)).Render(txt)
}

func (r *Root) progressBar(width int) string {
	frac := float64(r.state.Percent) / 100
	if r.ascii {
		filled := int(math.Round(frac * float64(width-2)))
		return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-2-filled) + "]"
	}
	m := r.bar
	m.SetWidth(max(4, width))
	return m.ViewAs(frac)
}

func (r *Root) breadcrumbText(width int) string {
	sep := " › "
	if r.ascii {
		sep = " > "
	}
	crumb := r.state.ActiveSectionLabel + sep + r.state.ActiveTopicLabel
	if r.state.ActiveComplete {
		if r.ascii {
			crumb += " (done)"
		} else {
			crumb += " ✓"
		}
	}
	extra := r.statusFlash
	if r.debug {
		extra = strings.TrimSpace(fmt.Sprintf("%s %dx%d %s", extra, r.cols, r.rows, r.state.Class))
	}
	line := " " + crumb
	if extra != "" {
		gap := max(2, width-ansi.StringWidth(line)-ansi.StringWidth(extra)-1)
		line += strings.Repeat(" ", gap) + extra
	}
	return r.theme.Breadcrumb.Render(fitWidth(line, width))
}

func (r *Root) statusText(width int) string {
	keys := r.help.View(r.keymap)
	if keys == "" {
		keys = "↑/↓ move  enter open  n continue  c complete  ? help  q quit"
	}
	if r.state.LessonControls != "" {
		keys = r.state.LessonControls + " | " + keys
	}
	keys = trimForWidth(keys, max(1, width-2))
	return r.theme.Status.Width(max(1, width)).Render(keys)
}

func (r *Root) helpPanel(cols, rows int) string {
	full := r.help
	full.ShowAll = true
	lines := strings.Split(ansi.Strip(full.View(r.keymap)), "\n")
	lines = append(lines, "", "Press ? or esc to close.")
	width := 0
	for _, l := range lines {
		width = max(width, ansi.StringWidth(l))
	}
	return r.drawPanel("Keys", lines, min(cols, width+4), min(rows, len(lines)+2))
}

func (r *Root) drawPanel(title string, lines []string, width, height int) string {
	width = max(4, width)
	height = max(3, height)
	innerW := width - 2
	innerH := height - 2

	h := "─"
	v := "│"
	tl := "┌"
	tr := "┐"
	bl := "└"
	br := "┘"
	if r.ascii {
		h = "-"
		v = "|"
		tl, tr, bl, br = "+", "+", "+", "+"
	}

	top := tl + strings.Repeat(h, innerW) + tr
	if title != "" && innerW > 2 {
		t := " " + title + " "
		runes := []rune(top)
		start := 1
		for i, ch := range []rune(t) {
			pos := start + i
			if pos >= len(runes)-1 {
				break
			}
			runes[pos] = ch
		}
		top = string(runes)
	}

	out := make([]string, 0, height)
	out = append(out, r.theme.PanelBorder.Render(top))
	for row := 0; row < innerH; row++ {
		line := ""
		if row < len(lines) {
			line = lines[row]
		}
		out = append(out, r.theme.PanelBorder.Render(v)+fitWidth(line, innerW)+r.theme.PanelBorder.Render(v))
	}
	out = append(out, r.theme.PanelBorder.Render(bl+strings.Repeat(h, innerW)+br))
	return strings.Join(out, "\n")
}

func (r *Root) isRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *Root) drawerTarget() float64 {
	if r.drawerOpen {
		return 1
	}
	return 0
}

func (r *Root) animateIfNeeded() tea.Cmd {
	if r.shouldAnimate(r.drawerTarget()) {
		return animateTickCmd()
	}
	return nil
}

func (r *Root) shouldAnimate(target float64) bool {
	if r.motionLevel == "off" {
		return false
	}
	if target > 0 {
		return r.drawerPos < 0.999 || math.Abs(r.drawerVel) > 0.001
	}
	return r.drawerPos > 0.001 || math.Abs(r.drawerVel) > 0.001
}

func animateTickCmd() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return animateMsg(t) })
}

func firstNonEmptyStr(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// fitWidth truncates or pads s to exactly width cells. ANSI sequences in s
// are preserved.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\t", "    ")
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "…")
	}
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func padRune(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(strings.ReplaceAll(s, "\t", "    "))
	if len(r) > width {
		r = r[:width]
	}
	if len(r) < width {
		r = append(r, []rune(strings.Repeat(" ", width-len(r)))...)
	}
	return string(r)
}

func composeOverlay(base, overlay string, cols, rows int) string {
	overlayLines := strings.Split(strings.TrimRight(ansi.Strip(overlay), "\n"), "\n")
	ow := 1
	for _, line := range overlayLines {
		ow = max(ow, len([]rune(line)))
	}
	oh := min(len(overlayLines), rows)
	return composeOverlayAt(base, overlay, cols, rows, (rows-oh)/2, max(0, (cols-min(ow, cols))/2))
}

func composeOverlayAt(base, overlay string, cols, rows, startRow, startCol int) string {
	if cols <= 0 || rows <= 0 {
		return base
	}
	base = ansi.Strip(base)
	overlay = ansi.Strip(overlay)
	baseLines := strings.Split(base, "\n")
	if len(baseLines) < rows {
		pad := make([]string, rows-len(baseLines))
		baseLines = append(baseLines, pad...)
	}
	for i := 0; i < rows; i++ {
		baseLines[i] = padRune(baseLines[i], cols)
	}

	overlayLines := strings.Split(strings.TrimRight(overlay, "\n"), "\n")
	ow := 1
	for _, line := range overlayLines {
		ow = max(ow, len([]rune(line)))
	}
	ow = min(ow, cols)
	startRow = max(0, startRow)
	startCol = max(0, startCol)

	for i, line := range overlayLines {
		row := startRow + i
		if row >= rows {
			break
		}
		dst := []rune(baseLines[row])
		src := []rune(line)
		if len(src) > ow {
			src = src[:ow]
		}
		for j := 0; j < ow && startCol+j < len(dst); j++ {
			dst[startCol+j] = ' '
		}
		for j := 0; j < len(src) && startCol+j < len(dst); j++ {
			dst[startCol+j] = src[j]
		}
		baseLines[row] = string(dst)
	}
	return strings.Join(baseLines[:rows], "\n")
}

func trimForWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = strings.ReplaceAll(ansi.Strip(s), "\n", " ")
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

func normalizeStyleVariant(v string) string {
	switch strings.TrimSpace(v) {
	case "lab_dark", "retro_terminal":
		return strings.TrimSpace(v)
	default:
		return "lab_dark"
	}
}

func normalizeMotionLevel(v string) string {
	switch strings.TrimSpace(v) {
	case "off", "reduced", "full":
		return strings.TrimSpace(v)
	default:
		return "full"
	}
}

func (r *Root) recordInputEvent(event string) {
	r.lastInputEvent = trimForWidth(strings.TrimSpace(event), 160)
}

func (r *Root) onModelPanic(where string, recovered any, msg tea.Msg) {
	r.statusFlash = "Recovered UI panic"
	msgType := ""
	if msg != nil {
		msgType = fmt.Sprintf("%T", msg)
	}
	r.logger.Error("ui.panic_recovered",
		"where", where,
		"panic", fmt.Sprintf("%v", recovered),
		"message_type", msgType,
		"topic", r.state.ActiveTopicID,
		"class", r.state.Class.String(),
		"cols", r.cols,
		"rows", r.rows,
		"last_input", r.lastInputEvent,
		"stack", string(debug.Stack()),
	)
}

var _ tea.Model = (*Root)(nil)
