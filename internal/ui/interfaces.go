package ui

import (
	"prereqlab/internal/layout"
	"prereqlab/internal/viewport"
)

// Controller receives every user intent. Calls are made synchronously from
// Update; the view reads the result back through State.
type Controller interface {
	OnResize(cols, rows int)
	OnSelectTopic(id string)
	OnToggleSection(id string)
	OnContinue()
	OnLessonKey(key string)
	OnQuit()
	State() SessionState
	RenderLesson(width int) string
}

type SessionState struct {
	CourseTitle string
	Sections    []SectionRow

	ActiveTopicID      string
	ActiveTopicLabel   string
	ActiveSectionID    string
	ActiveSectionLabel string
	ActiveComplete     bool
	LessonControls     string

	Completed int
	Total     int
	Percent   int

	// Next is set only while the "Up next" row should be shown.
	Next        *NextTopic
	AllComplete bool

	Class  viewport.Class
	Chrome layout.Cells

	Flash string
}

type SectionRow struct {
	ID       string
	Label    string
	Icon     string
	Color    string
	Expanded bool
	Done     int
	Total    int
	Topics   []TopicRow
}

type TopicRow struct {
	ID       string
	Label    string
	Active   bool
	Complete bool
}

type NextTopic struct {
	ID    string
	Label string
}
