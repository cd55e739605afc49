// Package app wires the lab together: it owns the session, feeds terminal
// sizes into the viewport monitor and answers the UI as its controller.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"prereqlab/internal/catalog"
	"prereqlab/internal/devtools"
	"prereqlab/internal/layout"
	"prereqlab/internal/lessons"
	"prereqlab/internal/nav"
	"prereqlab/internal/session"
	"prereqlab/internal/state"
	"prereqlab/internal/telemetry"
	"prereqlab/internal/ui"
	"prereqlab/internal/viewport"
)

const (
	journalTimeout = 2 * time.Second
	defaultCols    = 120
)

type App struct {
	cfg Config

	logger  *telemetry.Logger
	journal Journal
	cat     *catalog.Catalog
	sess    *session.Session
	lessons *lessons.Renderer
	demo    *devtools.Manager

	feed        *viewport.Feed
	monitor     *viewport.Monitor
	unsubscribe func()
	class       viewport.Class

	view  *ui.Root
	flash string
}

type options struct {
	logger   *telemetry.Logger
	journal  Journal
	sessOpts []session.Option
}

type Option func(*options)

// WithLogger replaces the file logger built from Config.LogPath.
func WithLogger(l *telemetry.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithJournal replaces the journal built from Config.JournalPath.
func WithJournal(j Journal) Option {
	return func(o *options) { o.journal = j }
}

// WithSessionOptions passes options through to session.New.
func WithSessionOptions(opts ...session.Option) Option {
	return func(o *options) { o.sessOpts = append(o.sessOpts, opts...) }
}

func New(cfg Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		l, err := telemetry.New(cfg.LogPath, cfg.Debug)
		if err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
		logger = l
	}

	cat, err := catalog.Builtin()
	if err != nil {
		_ = logger.Close()
		return nil, err
	}
	registry := lessons.Builtin()
	if err := registry.Validate(cat); err != nil {
		_ = logger.Close()
		return nil, err
	}

	journal := o.journal
	if journal == nil {
		journal, err = openJournal(cfg.JournalPath)
		if err != nil {
			_ = logger.Close()
			return nil, err
		}
	}

	a := &App{
		cfg:     cfg,
		logger:  logger,
		journal: journal,
		cat:     cat,
		sess:    session.New(cat, o.sessOpts...),
		lessons: lessons.NewRenderer(registry, lessons.Options{ASCIIOnly: cfg.ASCIIOnly, CellPx: cfg.CellWidthPx}),
		demo:    devtools.NewManager(),
		feed:    viewport.NewFeed(defaultCols),
	}
	a.logger = a.logger.With("session", a.sess.ID())
	a.sess.OnEvent(a.onSessionEvent)

	a.monitor = viewport.NewMonitor(a.feed, viewport.WithCellWidth(cfg.CellWidthPx))
	a.unsubscribe = a.monitor.Subscribe(a.onViewportChange)
	a.monitor.Start()

	ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
	defer cancel()
	if err := a.journal.StartSession(ctx, state.SessionRun{SessionID: a.sess.ID(), Course: cat.Course(), StartTS: time.Now()}); err != nil {
		a.logger.Error("journal.start_failed", "error", err.Error())
	}
	a.sess.Begin()

	if cfg.StartTopic != "" {
		if err := a.sess.RevealTopic(cfg.StartTopic); err != nil {
			a.Close()
			return nil, fmt.Errorf("start topic: %w", err)
		}
	}

	a.view = ui.New(ui.Options{
		ASCIIOnly:    cfg.ASCIIOnly,
		Debug:        cfg.Debug,
		StyleVariant: cfg.UI.StyleVariant,
		MotionLevel:  cfg.UI.MotionLevel,
	})
	a.view.SetController(a)
	return a, nil
}

func openJournal(path string) (Journal, error) {
	if strings.TrimSpace(path) == "" {
		return state.NopStore{}, nil
	}
	store, err := state.NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
	defer cancel()
	if err := store.EnsureSchema(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info("app.start", "topic", a.sess.Nav().State().ActiveTopicID, "style", a.cfg.UI.StyleVariant, "motion", a.cfg.UI.MotionLevel)
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			a.view.Stop()
		case <-done:
		}
	}()
	err := a.view.Run()
	a.logger.Info("app.stop", "completed", a.sess.Progress().Count(), "percent", a.sess.Progress().Percent())
	return err
}

func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	a.monitor.Close()
	if err := a.journal.Close(); err != nil {
		a.logger.Error("journal.close_failed", "error", err.Error())
	}
	_ = a.logger.Close()
}

func (a *App) Session() *session.Session { return a.sess }

func (a *App) View() *ui.Root { return a.view }

func (a *App) onSessionEvent(ev session.Event) {
	a.logger.Info(string(ev.Kind), "topic", ev.TopicID, "section", ev.SectionID, "percent", ev.Percent)
	ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
	defer cancel()
	err := a.journal.RecordEvent(ctx, state.Event{
		SessionID: ev.SessionID,
		Kind:      string(ev.Kind),
		TopicID:   ev.TopicID,
		SectionID: ev.SectionID,
		Percent:   ev.Percent,
		TS:        ev.At,
	})
	if err != nil {
		a.logger.Error("journal.record_failed", "kind", string(ev.Kind), "error", err.Error())
	}
}

func (a *App) onViewportChange(ch viewport.Change) {
	a.class = ch.Class
	if ch.Class != ch.Previous {
		a.logger.Debug("viewport.class_changed", "from", ch.Previous.String(), "to", ch.Class.String(), "width_px", ch.Width)
	}
}

func (a *App) OnResize(cols, rows int) {
	a.feed.Resize(cols)
}

func (a *App) OnSelectTopic(id string) {
	a.flash = ""
	if err := a.sess.SelectTopic(id); err != nil {
		a.reportNavError("nav.select_failed", err)
	}
}

func (a *App) OnToggleSection(id string) {
	a.flash = ""
	if err := a.sess.ToggleSection(id); err != nil {
		a.reportNavError("nav.toggle_failed", err)
	}
}

func (a *App) reportNavError(event string, err error) {
	a.logger.Error(event, "error", err.Error())
	switch {
	case errors.Is(err, nav.ErrInvalidTopicID), errors.Is(err, nav.ErrInvalidSectionID):
		a.flash = err.Error()
	default:
		a.flash = "navigation failed"
	}
}

func (a *App) OnContinue() {
	a.flash = ""
	if a.sess.Continue() {
		return
	}
	if _, ok := a.sess.Nav().NextTopic(); !ok {
		a.flash = "This is the last topic"
		return
	}
	a.flash = "Mark this topic complete to continue"
}

func (a *App) OnLessonKey(key string) {
	a.flash = ""
	ctx := a.lessonContext(0)
	if key == "c" && ctx.Complete {
		a.flash = "Already completed"
		return
	}
	a.lessons.HandleKey(ctx, key)
}

func (a *App) OnQuit() {
	a.logger.Info("app.quit", "percent", a.sess.Progress().Percent())
}

func (a *App) lessonContext(width int) lessons.Context {
	active := a.sess.Nav().CurrentTopic()
	accent := ""
	if sec, ok := a.cat.Section(active.SectionID); ok {
		accent = sec.Color
	}
	id := active.ID
	return lessons.Context{
		TopicID:    id,
		Class:      a.class,
		Width:      width,
		Accent:     accent,
		Complete:   a.sess.Progress().IsComplete(id),
		OnComplete: func() { a.sess.CompleteTopic(id) },
	}
}

func (a *App) RenderLesson(width int) string {
	return a.lessons.Render(a.lessonContext(width))
}

func (a *App) State() ui.SessionState {
	nv := a.sess.Nav()
	prog := a.sess.Progress()
	st := nv.State()
	active := nv.CurrentTopic()
	section := nv.CurrentSection()

	out := ui.SessionState{
		CourseTitle:        a.cat.Title(),
		ActiveTopicID:      active.ID,
		ActiveTopicLabel:   active.Label,
		ActiveSectionID:    section.ID,
		ActiveSectionLabel: section.Label,
		ActiveComplete:     prog.IsComplete(active.ID),
		LessonControls:     a.lessons.Controls(active.ID),
		Completed:          prog.Count(),
		Total:              prog.Total(),
		Percent:            prog.Percent(),
		AllComplete:        prog.AllComplete(),
		Class:              a.class,
		Chrome:             layout.ChromeFor(a.class).Cells(a.cfg.CellWidthPx),
		Flash:              a.flash,
	}
	for _, sec := range a.cat.Sections() {
		done, total := prog.SectionProgress(sec.ID)
		row := ui.SectionRow{
			ID:       sec.ID,
			Label:    sec.Label,
			Icon:     sec.Icon,
			Color:    sec.Color,
			Expanded: sec.ID == st.ExpandedSectionID,
			Done:     done,
			Total:    total,
		}
		for _, t := range sec.Topics {
			row.Topics = append(row.Topics, ui.TopicRow{
				ID:       t.ID,
				Label:    t.Label,
				Active:   t.ID == st.ActiveTopicID,
				Complete: prog.IsComplete(t.ID),
			})
		}
		out.Sections = append(out.Sections, row)
	}
	if next, ok := a.sess.ContinueSuggestion(); ok {
		out.Next = &ui.NextTopic{ID: next.ID, Label: next.Label}
	}
	return out
}

// RenderDemo plays a named scenario onto this app's session and returns one
// frame. Zero cols or rows use the scenario's size.
func (a *App) RenderDemo(name string, cols, rows int) (string, error) {
	sc, err := a.demo.Resolve(name)
	if err != nil {
		return "", err
	}
	if err := a.demo.Apply(a.sess, sc); err != nil {
		return "", err
	}
	if cols <= 0 {
		cols = sc.Cols
	}
	if rows <= 0 {
		rows = sc.Rows
	}
	a.view.Resize(cols, rows)
	if sc.DrawerOpen {
		a.view.OpenDrawer(true)
	}
	a.logger.Info("demo.render", "scenario", sc.Name, "cols", cols, "rows", rows, "class", a.class.String())
	return a.view.Render(), nil
}

// DemoNames lists the scenarios RenderDemo accepts.
func (a *App) DemoNames() []string { return a.demo.Names() }

var _ ui.Controller = (*App)(nil)
