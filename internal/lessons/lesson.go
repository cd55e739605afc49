// Package lessons renders the per-topic teaching widgets. The core hands a
// topic id and a viewport class in and gets text back; the only thing that
// flows the other way is the completion callback.
package lessons

import (
	"errors"
	"fmt"

	"prereqlab/internal/catalog"
	"prereqlab/internal/layout"
	"prereqlab/internal/viewport"
)

type Lesson interface {
	Render(f Frame) Page
}

// Interactive lessons react to widget keys: left, right, tab and space.
type Interactive interface {
	HandleKey(key string) bool
	Controls() string
}

type Page struct {
	Title   string
	Intro   string
	Blocks  []Block
	Code    string
	Callout *Callout
}

// Block is a row of panels sharing one desktop column count.
type Block struct {
	Columns int
	Panels  []Panel
}

type Panel struct {
	Title string
	Lines []string
}

type Callout struct {
	Title string
	Body  string
}

// Frame is what a lesson knows about the space it renders into.
type Frame struct {
	Class  viewport.Class
	Width  int
	CellPx int
	ASCII  bool
}

// PanelWidth is the usable inner width of one panel in a block declaring
// columns on desktop.
func (f Frame) PanelWidth(columns int) int {
	return max(8, panelOuterWidth(f, columns)-4)
}

func panelOuterWidth(f Frame, columns int) int {
	d := layout.For(f.Class, columns)
	gap := d.GapCells(f.CellPx)
	return max(12, (f.Width-gap*(d.Columns-1))/d.Columns)
}

// Registry maps topic ids to lessons.
type Registry map[string]Lesson

// Builtin returns fresh lesson instances for every built-in topic. Lessons
// hold widget state, so each session gets its own registry.
func Builtin() Registry {
	return Registry{
		"variables":        newVariables(),
		"linear-eq":        newLinearEq(),
		"logarithms":       newLogarithms(),
		"sigmoid":          newSigmoid(),
		"tensors":          newTensors(),
		"matmul":           newMatMul(),
		"mean-median":      newMeanMedian(),
		"std-dev":          newStdDev(),
		"histogram":        newHistogram(),
		"derivatives":      newDerivatives(),
		"gradient":         newGradient(),
		"gradient-descent": newGradientDescent(),
		"chain-rule":       &chainRule{},
		"data-types":       &dataTypes{},
		"functions":        &functionsLesson{},
		"data-structures":  newDataStructures(),
		"control-flow":     &controlFlow{},
	}
}

// Validate reports catalog topics that have no lesson.
func (r Registry) Validate(cat *catalog.Catalog) error {
	var errs []error
	for _, id := range cat.TopicIDs() {
		if _, ok := r[id]; !ok {
			errs = append(errs, fmt.Errorf("topic %q has no lesson", id))
		}
	}
	return errors.Join(errs...)
}
