// Package nav is the report card's screen state machine.
//
// States are Main, Subject and Chapter. Main is initial and there is no
// terminal state. Transitions:
//
//	Main    --GoToSubject--> Subject
//	Subject --GoToChapter--> Chapter
//	Chapter --GoBack-------> Subject (subject kept)
//	Subject --GoBack-------> Main    (selections cleared)
//
// Anything else is rejected with ErrInvalidTransition and leaves the state
// untouched.
package nav

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is wrapped by every rejected navigation request.
var ErrInvalidTransition = errors.New("invalid transition")

// Screen identifies which page of the report card is visible.
type Screen string

const (
	ScreenMain    Screen = "main"
	ScreenSubject Screen = "subject"
	ScreenChapter Screen = "chapter"
)

// Depth is the screen's position in the back stack, starting at 1 for Main.
func (s Screen) Depth() int {
	switch s {
	case ScreenSubject:
		return 2
	case ScreenChapter:
		return 3
	default:
		return 1
	}
}

// State is the serializable navigation state. An empty Subject or Chapter
// means none is selected.
type State struct {
	Screen  Screen `json:"screen"`
	Subject string `json:"selectedSubject"`
	Chapter string `json:"selectedChapter"`
}

// Initial returns the Main state with nothing selected.
func Initial() State {
	return State{Screen: ScreenMain}
}

// Valid reports whether the state satisfies the screen invariants: Subject
// needs a subject, Chapter needs both.
func (s State) Valid() bool {
	switch s.Screen {
	case ScreenMain:
		return s.Subject == "" && s.Chapter == ""
	case ScreenSubject:
		return s.Subject != "" && s.Chapter == ""
	case ScreenChapter:
		return s.Subject != "" && s.Chapter != ""
	default:
		return false
	}
}

// TransitionError describes a rejected request.
type TransitionError struct {
	From   Screen
	Op     string
	Target string
}

func (e *TransitionError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s(%q) from %s: %v", e.Op, e.Target, e.From, ErrInvalidTransition)
	}
	return fmt.Sprintf("%s from %s: %v", e.Op, e.From, ErrInvalidTransition)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// SubjectResolver reports whether a subject key exists.
// *dataset.Dataset satisfies it.
type SubjectResolver interface {
	HasSubject(name string) bool
}

// Controller owns the navigation state.
type Controller struct {
	state    State
	subjects SubjectResolver
}

// NewController creates a Controller at Main. A nil resolver accepts any
// non-empty subject name.
func NewController(subjects SubjectResolver) *Controller {
	return &Controller{state: Initial(), subjects: subjects}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Restore replaces the state, e.g. from a serialized view-model.
func (c *Controller) Restore(s State) error {
	if !s.Valid() {
		return fmt.Errorf("restore %+v: %w", s, ErrInvalidTransition)
	}
	if s.Subject != "" && c.subjects != nil && !c.subjects.HasSubject(s.Subject) {
		return &TransitionError{From: c.state.Screen, Op: "Restore", Target: s.Subject}
	}
	c.state = s
	return nil
}

// GoToSubject moves Main to Subject and selects name.
func (c *Controller) GoToSubject(name string) error {
	if c.state.Screen != ScreenMain || name == "" {
		return &TransitionError{From: c.state.Screen, Op: "GoToSubject", Target: name}
	}
	if c.subjects != nil && !c.subjects.HasSubject(name) {
		return &TransitionError{From: c.state.Screen, Op: "GoToSubject", Target: name}
	}
	c.state = State{Screen: ScreenSubject, Subject: name}
	return nil
}

// GoToChapter moves Subject to Chapter and selects name. The chapter key is
// not checked here; an unknown name resolves to a lookup miss when rendered.
func (c *Controller) GoToChapter(name string) error {
	if c.state.Screen != ScreenSubject || name == "" {
		return &TransitionError{From: c.state.Screen, Op: "GoToChapter", Target: name}
	}
	c.state.Screen = ScreenChapter
	c.state.Chapter = name
	return nil
}

// GoBack pops one level: Chapter to Subject, Subject to Main.
func (c *Controller) GoBack() error {
	switch c.state.Screen {
	case ScreenChapter:
		c.state = State{Screen: ScreenSubject, Subject: c.state.Subject}
	case ScreenSubject:
		c.state = Initial()
	default:
		return &TransitionError{From: c.state.Screen, Op: "GoBack"}
	}
	return nil
}
