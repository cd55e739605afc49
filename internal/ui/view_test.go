package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"prereqlab/internal/layout"
	"prereqlab/internal/viewport"
)

type mockController struct {
	state         SessionState
	lesson        string
	selected      []string
	toggled       []string
	keys          []string
	continueCalls int
	quitCalls     int
	resizes       [][2]int
	panicOnRender bool
}

func newMockController() *mockController {
	return &mockController{
		lesson: "Lesson body\nsecond line",
		state: SessionState{
			CourseTitle: "ML Prerequisites",
			Sections: []SectionRow{
				{ID: "algebra", Label: "Algebra", Icon: "📐", Expanded: true, Total: 2, Topics: []TopicRow{
					{ID: "variables", Label: "Variables", Active: true},
					{ID: "linear-eq", Label: "Linear Equations"},
				}},
				{ID: "stats", Label: "Statistics", Icon: "📊", Total: 1, Topics: []TopicRow{
					{ID: "mean-median", Label: "Mean & Median"},
				}},
			},
			ActiveTopicID:      "variables",
			ActiveTopicLabel:   "Variables",
			ActiveSectionID:    "algebra",
			ActiveSectionLabel: "Algebra",
			Total:              3,
			Class:              viewport.Desktop,
			Chrome:             layout.ChromeFor(viewport.Desktop).Cells(8),
		},
	}
}

func (m *mockController) OnResize(cols, rows int) {
	m.resizes = append(m.resizes, [2]int{cols, rows})
	class := viewport.Classify(cols * 8)
	m.state.Class = class
	m.state.Chrome = layout.ChromeFor(class).Cells(8)
}
func (m *mockController) OnSelectTopic(id string)   { m.selected = append(m.selected, id) }
func (m *mockController) OnToggleSection(id string) { m.toggled = append(m.toggled, id) }
func (m *mockController) OnContinue()               { m.continueCalls++ }
func (m *mockController) OnLessonKey(k string)      { m.keys = append(m.keys, k) }
func (m *mockController) OnQuit()                   { m.quitCalls++ }
func (m *mockController) State() SessionState       { return m.state }
func (m *mockController) RenderLesson(int) string {
	if m.panicOnRender {
		panic("boom")
	}
	return m.lesson
}

func press(v *Root, code rune, mod tea.KeyMod, text string) tea.Cmd {
	_, cmd := v.Update(tea.KeyPressMsg{Code: code, Mod: mod, Text: text})
	return cmd
}

func newRoot(t *testing.T, ctrl *mockController) *Root {
	t.Helper()
	v := New(Options{MotionLevel: "off"})
	v.SetController(ctrl)
	return v
}

func TestCursorStartsOnActiveTopicAndSelects(t *testing.T) {
	ctrl := newMockController()
	v := newRoot(t, ctrl)
	if v.cursor != 1 {
		t.Fatalf("expected cursor on the active topic row, got %d", v.cursor)
	}
	press(v, tea.KeyDown, 0, "")
	press(v, tea.KeyEnter, 0, "")
	if len(ctrl.selected) != 1 || ctrl.selected[0] != "linear-eq" {
		t.Fatalf("expected linear-eq selected, got %v", ctrl.selected)
	}
	press(v, 'j', 0, "j")
	press(v, tea.KeyEnter, 0, "")
	if len(ctrl.toggled) != 1 || ctrl.toggled[0] != "stats" {
		t.Fatalf("expected stats toggled, got %v", ctrl.toggled)
	}
}

func TestCursorClampsAtEnds(t *testing.T) {
	ctrl := newMockController()
	v := newRoot(t, ctrl)
	for i := 0; i < 10; i++ {
		press(v, tea.KeyUp, 0, "")
	}
	if v.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", v.cursor)
	}
	for i := 0; i < 10; i++ {
		press(v, 'j', 0, "j")
	}
	if v.cursor != 3 {
		t.Fatalf("cursor = %d, want 3", v.cursor)
	}
}

func TestLessonKeysAreForwarded(t *testing.T) {
	ctrl := newMockController()
	v := newRoot(t, ctrl)
	press(v, 'c', 0, "c")
	press(v, tea.KeyLeft, 0, "")
	press(v, tea.KeyRight, 0, "")
	press(v, tea.KeyTab, 0, "")
	press(v, tea.KeySpace, 0, " ")
	want := []string{"c", "left", "right", "tab", "space"}
	if strings.Join(ctrl.keys, ",") != strings.Join(want, ",") {
		t.Fatalf("keys = %v, want %v", ctrl.keys, want)
	}
}

func TestContinueAndQuit(t *testing.T) {
	ctrl := newMockController()
	v := newRoot(t, ctrl)
	press(v, 'n', 0, "n")
	if ctrl.continueCalls != 1 {
		t.Fatalf("expected one continue call, got %d", ctrl.continueCalls)
	}
	cmd := press(v, 'c', tea.ModCtrl, "")
	if ctrl.quitCalls != 1 || cmd == nil {
		t.Fatalf("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
}

func TestRenderShowsUpNextOnlyWhenOffered(t *testing.T) {
	ctrl := newMockController()
	v := newRoot(t, ctrl)
	out := ansi.Strip(v.Render())
	if strings.Contains(out, "Up next") {
		t.Fatalf("up next should be hidden without a suggestion")
	}

	ctrl.state.Next = &NextTopic{ID: "linear-eq", Label: "Linear Equations"}
	ctrl.state.ActiveComplete = true
	v.refresh()
	out = ansi.Strip(v.Render())
	if !strings.Contains(out, "Up next: Linear Equations") || !strings.Contains(out, "[n] Continue") {
		t.Fatalf("expected up next row:\n%s", out)
	}
	if !strings.Contains(out, "Algebra › Variables ✓") {
		t.Fatalf("expected breadcrumb with completion mark:\n%s", out)
	}
}

func TestRenderAllCompleteBanner(t *testing.T) {
	ctrl := newMockController()
	ctrl.state.AllComplete = true
	ctrl.state.Completed, ctrl.state.Percent = 3, 100
	v := newRoot(t, ctrl)
	out := ansi.Strip(v.Render())
	if !strings.Contains(out, "All 3 prerequisites mastered!") {
		t.Fatalf("expected banner:\n%s", out)
	}
	if !strings.Contains(out, "3/3 complete  100%") {
		t.Fatalf("expected header progress:\n%s", out)
	}
}

func TestRenderFitsTerminal(t *testing.T) {
	ctrl := newMockController()
	ctrl.lesson = strings.Repeat("a very long lesson line that should be clipped ", 10)
	v := newRoot(t, ctrl)
	for _, size := range [][2]int{{140, 40}, {100, 30}, {60, 20}} {
		_, _ = v.Update(tea.WindowSizeMsg{Width: size[0], Height: size[1]})
		lines := strings.Split(v.Render(), "\n")
		if len(lines) != size[1] {
			t.Fatalf("%v: rendered %d rows", size, len(lines))
		}
		for i, l := range lines {
			if w := ansi.StringWidth(l); w > size[0] {
				t.Fatalf("%v: row %d is %d wide", size, i, w)
			}
		}
	}
	if len(ctrl.resizes) != 3 {
		t.Fatalf("expected 3 resize calls, got %d", len(ctrl.resizes))
	}
}

func TestMobileDrawer(t *testing.T) {
	ctrl := newMockController()
	v := newRoot(t, ctrl)
	_, _ = v.Update(tea.WindowSizeMsg{Width: 60, Height: 24})
	if v.state.Class != viewport.Mobile {
		t.Fatalf("expected mobile class, got %v", v.state.Class)
	}
	if strings.Contains(ansi.Strip(v.Render()), "Topics 0/3") {
		t.Fatalf("drawer should start closed")
	}

	press(v, tea.KeyDown, 0, "")
	if v.scroll != 1 || v.cursor != 1 {
		t.Fatalf("closed drawer: down should scroll the lesson, not move the cursor")
	}

	press(v, 's', 0, "s")
	if !v.drawerOpen || !strings.Contains(ansi.Strip(v.Render()), "Topics 0/3") {
		t.Fatalf("s should open the drawer")
	}
	press(v, tea.KeyDown, 0, "")
	press(v, tea.KeyEnter, 0, "")
	if len(ctrl.selected) != 1 || ctrl.selected[0] != "linear-eq" {
		t.Fatalf("expected selection from drawer, got %v", ctrl.selected)
	}
	if v.drawerOpen {
		t.Fatalf("selecting a topic should close the drawer")
	}

	_, _ = v.Update(tea.WindowSizeMsg{Width: 140, Height: 30})
	press(v, 's', 0, "s")
	if v.drawerOpen {
		t.Fatalf("drawer is mobile only")
	}
}

func TestHelpOverlay(t *testing.T) {
	ctrl := newMockController()
	v := newRoot(t, ctrl)
	press(v, '?', 0, "?")
	if !strings.Contains(v.Render(), "Press ? or esc to close.") {
		t.Fatalf("expected help overlay")
	}
	press(v, 'n', 0, "n")
	if ctrl.continueCalls != 0 {
		t.Fatalf("keys should not leak through the help overlay")
	}
	press(v, tea.KeyEscape, 0, "")
	if v.helpOpen {
		t.Fatalf("esc should close help")
	}
}

func TestViewRecoversFromPanic(t *testing.T) {
	ctrl := newMockController()
	v := newRoot(t, ctrl)
	ctrl.panicOnRender = true
	_ = v.View()
	if v.statusFlash != "Recovered UI panic" {
		t.Fatalf("expected recovery flash, got %q", v.statusFlash)
	}
	ctrl.panicOnRender = false
	if !strings.Contains(ansi.Strip(v.Render()), "Recovered UI panic") {
		t.Fatalf("flash should show in the next frame")
	}
}

func TestTooSmallTerminal(t *testing.T) {
	ctrl := newMockController()
	v := newRoot(t, ctrl)
	_, _ = v.Update(tea.WindowSizeMsg{Width: 20, Height: 6})
	if !strings.Contains(ansi.Strip(v.Render()), "Terminal too small") {
		t.Fatalf("expected resize notice")
	}
}

func TestASCIISidebar(t *testing.T) {
	ctrl := newMockController()
	ctrl.state.Sections[0].Topics[0].Complete = true
	v := New(Options{ASCIIOnly: true})
	v.SetController(ctrl)
	out := ansi.Strip(v.Render())
	for _, glyph := range []string{"┌", "▾", "✓", "●"} {
		if strings.Contains(out, glyph) {
			t.Fatalf("ascii frame contains %q", glyph)
		}
	}
	if !strings.Contains(out, "v Algebra") || !strings.Contains(out, "x Variables") {
		t.Fatalf("unexpected ascii sidebar:\n%s", out)
	}
}
