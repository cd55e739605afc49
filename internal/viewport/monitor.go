package viewport

import "sync"

// Source is the platform side of the monitor: something that knows the
// current width and can notify on resize.
type Source interface {
	Width() int
	OnResize(fn func()) (cancel func())
}

type Change struct {
	Width    int
	Class    Class
	Previous Class
}

type Option func(*Monitor)

// WithCellWidth scales source units to pixels. Terminal sources report
// columns, so the monitor multiplies by the configured cell width.
func WithCellWidth(px int) Option {
	return func(m *Monitor) {
		if px > 0 {
			m.cellWidth = px
		}
	}
}

// Monitor owns one subscription to its Source between Start and Close.
// Every resize is forwarded synchronously to subscribers, even when the
// class did not change.
type Monitor struct {
	src       Source
	cellWidth int

	width  int
	class  Class
	cancel func()

	subs   map[int]func(Change)
	order  []int
	nextID int
}

func NewMonitor(src Source, opts ...Option) *Monitor {
	m := &Monitor{src: src, cellWidth: 1, subs: map[int]func(Change){}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start subscribes to the source and delivers the initial measurement to
// subscribers registered so far. Calling it twice is a no-op.
func (m *Monitor) Start() {
	if m.cancel != nil || m.src == nil {
		return
	}
	m.cancel = m.src.OnResize(m.handleResize)
	m.handleResize()
}

// Close releases the source subscription. Safe to call more than once or
// before Start.
func (m *Monitor) Close() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	m.cancel = nil
}

func (m *Monitor) Active() bool { return m.cancel != nil }

func (m *Monitor) Width() int { return m.width }

func (m *Monitor) Class() Class { return m.class }

// Subscribe registers fn for change notifications and returns a function
// that removes it. Subscribers added after Start see the next resize, not
// the initial measurement.
func (m *Monitor) Subscribe(fn func(Change)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.order = append(m.order, id)
	return func() {
		delete(m.subs, id)
		for i, v := range m.order {
			if v == id {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
	}
}

func (m *Monitor) measure() Change {
	w := m.src.Width() * m.cellWidth
	if w < 0 {
		w = 0
	}
	prev := m.class
	m.width = w
	m.class = Classify(w)
	return Change{Width: w, Class: m.class, Previous: prev}
}

func (m *Monitor) handleResize() {
	ch := m.measure()
	for _, id := range append([]int(nil), m.order...) {
		if fn, ok := m.subs[id]; ok {
			fn(ch)
		}
	}
}

// Feed is a Source driven by explicit Resize calls, used to bridge
// bubbletea window size messages into the monitor.
type Feed struct {
	mu     sync.Mutex
	width  int
	subs   map[int]func()
	nextID int
}

func NewFeed(initial int) *Feed {
	return &Feed{width: initial, subs: map[int]func(){}}
}

func (f *Feed) Width() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.width
}

func (f *Feed) OnResize(fn func()) func() {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = fn
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

// Resize records the new width and notifies listeners on the caller's
// goroutine.
func (f *Feed) Resize(width int) {
	f.mu.Lock()
	f.width = width
	fns := make([]func(), 0, len(f.subs))
	for i := 0; i < f.nextID; i++ {
		if fn, ok := f.subs[i]; ok {
			fns = append(fns, fn)
		}
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Listeners reports how many resize callbacks are registered.
func (f *Feed) Listeners() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}
