package viewport

import (
	"os"

	"golang.org/x/term"
)

// TermSource reads the width of a real terminal. It has no resize
// notification of its own; interactive sessions use a Feed instead.
type TermSource struct {
	fd       int
	fallback int
}

func NewTermSource(f *os.File, fallback int) *TermSource {
	return &TermSource{fd: int(f.Fd()), fallback: fallback}
}

func (s *TermSource) IsTerminal() bool { return term.IsTerminal(s.fd) }

func (s *TermSource) Width() int {
	w, _ := s.Size()
	return w
}

// Size returns columns and rows, falling back when fd is not a terminal.
func (s *TermSource) Size() (int, int) {
	if !term.IsTerminal(s.fd) {
		return s.fallback, 0
	}
	w, h, err := term.GetSize(s.fd)
	if err != nil || w <= 0 {
		return s.fallback, 0
	}
	return w, h
}

func (s *TermSource) OnResize(func()) func() { return func() {} }
