// Package viewmodel is the report card's explicit view state and the pure
// derivation from that state to a renderable description.
//
// A Session owns the state and mutates it only through Apply. Derive turns
// a Model snapshot into a View without side effects, so the same Model and
// dataset always produce the same View.
package viewmodel

import (
	"errors"
	"fmt"

	"github.com/abhisek/reportcard/internal/chart"
	"github.com/abhisek/reportcard/internal/dataset"
	"github.com/abhisek/reportcard/internal/filter"
	"github.com/abhisek/reportcard/internal/nav"
)

var (
	// ErrUnknownEvent is returned by Apply for event types it does not handle.
	ErrUnknownEvent = errors.New("unknown event")

	// ErrUnknownTab is returned for a SwitchTab naming no pane.
	ErrUnknownTab = errors.New("unknown tab")
)

// Tab is the active pane on the main screen.
type Tab string

const (
	TabOverview    Tab = "overview"
	TabLeaderboard Tab = "leaderboard"
)

// ParseTab converts a flag value into a Tab.
func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case TabOverview, TabLeaderboard:
		return Tab(s), nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownTab)
}

// DefaultCollapsedSubjects is how many subject rows show before "See More".
const DefaultCollapsedSubjects = 4

// Defaults are the values ephemeral selections reset to.
type Defaults struct {
	Quarter           int
	Chart             chart.Metric
	CollapsedSubjects int
}

// DefaultDefaults is Q1, the attendance chart and four visible subjects.
func DefaultDefaults() Defaults {
	return Defaults{Quarter: chart.FirstQuarter, Chart: chart.Attendance, CollapsedSubjects: DefaultCollapsedSubjects}
}

// Model is the complete serializable view state.
type Model struct {
	Nav               nav.State      `json:"nav"`
	Filters           filter.State   `json:"filters"`
	Chart             chart.Selector `json:"chart"`
	Tab               Tab            `json:"tab"`
	ShowAllSubjects   bool           `json:"showAllSubjects"`
	CollapsedSubjects int            `json:"collapsedSubjects"`
}

// NewModel returns the initial state for d.
func NewModel(d Defaults) Model {
	collapsed := d.CollapsedSubjects
	if collapsed < 1 {
		collapsed = DefaultCollapsedSubjects
	}
	return Model{
		Nav:               nav.Initial(),
		Filters:           filter.NewState(),
		Chart:             chart.NewSelector(d.Quarter, d.Chart),
		Tab:               TabOverview,
		CollapsedSubjects: collapsed,
	}
}

// Source supplies the current View. *Session satisfies it.
type Source interface {
	View() View
}

// Session owns a Model and the navigation controller guarding it.
// It is not safe for concurrent use; the Bubble Tea loop is its only caller.
type Session struct {
	ds       *dataset.Dataset
	defaults Defaults
	nav      *nav.Controller
	model    Model
}

// NewSession starts a session at the main screen.
func NewSession(ds *dataset.Dataset, d Defaults) *Session {
	return &Session{
		ds:       ds,
		defaults: d,
		nav:      nav.NewController(ds),
		model:    NewModel(d),
	}
}

// Dataset returns the fixture set the session derives from.
func (s *Session) Dataset() *dataset.Dataset {
	return s.ds
}

// Model returns a snapshot of the current state.
func (s *Session) Model() Model {
	m := s.model
	m.Nav = s.nav.State()
	return m
}

// Restore replaces the state with m, validating navigation first.
func (s *Session) Restore(m Model) error {
	if err := s.nav.Restore(m.Nav); err != nil {
		return err
	}
	if m.CollapsedSubjects < 1 {
		m.CollapsedSubjects = DefaultCollapsedSubjects
	}
	m.Chart = chart.NewSelector(m.Chart.Quarter, m.Chart.Metric)
	s.model = m
	return nil
}

// View derives the renderable description of the current state.
func (s *Session) View() View {
	return Derive(s.Model(), s.ds)
}

// Apply performs ev. A rejected event returns an error and leaves the state
// unchanged.
func (s *Session) Apply(ev Event) error {
	m := &s.model
	switch ev := ev.(type) {
	case SelectSubject:
		if err := s.nav.GoToSubject(ev.Name); err != nil {
			return err
		}
		m.Filters.Dismiss()
	case SelectChapter:
		return s.nav.GoToChapter(ev.Name)
	case GoBack:
		if err := s.nav.GoBack(); err != nil {
			return err
		}
		if s.nav.State().Screen == nav.ScreenMain {
			s.resetEphemeral()
		}
	case SetFilter:
		if err := m.Filters.Set(ev.Dimension, ev.Value); err != nil {
			return err
		}
		m.Filters.Dismiss()
	case ClearFilters:
		m.Filters.Clear()
		m.Filters.Dismiss()
	case SwitchTab:
		if _, err := ParseTab(string(ev.Tab)); err != nil {
			return err
		}
		m.Tab = ev.Tab
		m.Filters.Dismiss()
	case ShiftQuarter:
		switch {
		case ev.Delta < 0:
			m.Chart.PrevQuarter()
		case ev.Delta > 0:
			m.Chart.NextQuarter()
		}
	case SwitchChart:
		return m.Chart.Select(ev.Metric)
	case ToggleDropdown:
		return m.Filters.Toggle(ev.Dimension)
	case DismissDropdown:
		m.Filters.Dismiss()
	case ToggleSubjectList:
		m.ShowAllSubjects = !m.ShowAllSubjects
	default:
		return fmt.Errorf("%T: %w", ev, ErrUnknownEvent)
	}
	return nil
}

// resetEphemeral restores every main-screen selection to its default.
func (s *Session) resetEphemeral() {
	s.model = NewModel(s.defaults)
}
