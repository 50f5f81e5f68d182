package viewmodel

import (
	"github.com/abhisek/reportcard/internal/chart"
	"github.com/abhisek/reportcard/internal/filter"
)

// Event is a named input applied through Session.Apply. Every event is
// also a valid tea.Msg, so screens return them from commands directly.
type Event interface {
	EventName() string
}

// SelectSubject opens the subject screen from main.
type SelectSubject struct{ Name string }

// SelectChapter opens the chapter screen from a subject.
type SelectChapter struct{ Name string }

// GoBack pops one navigation level.
type GoBack struct{}

// SetFilter picks a value for one leaderboard dimension and closes the
// dropdown.
type SetFilter struct {
	Dimension filter.Dimension
	Value     string
}

// ClearFilters resets every leaderboard dimension to Overall.
type ClearFilters struct{}

// SwitchTab flips between the overview and leaderboard panes.
type SwitchTab struct{ Tab Tab }

// ShiftQuarter moves the quarter by Delta: negative for previous,
// positive for next.
type ShiftQuarter struct{ Delta int }

// SwitchChart selects the trend series.
type SwitchChart struct{ Metric chart.Metric }

// ToggleDropdown opens or closes a filter dropdown.
type ToggleDropdown struct{ Dimension filter.Dimension }

// DismissDropdown closes any open dropdown.
type DismissDropdown struct{}

// ToggleSubjectList expands or collapses the subject table.
type ToggleSubjectList struct{}

func (SelectSubject) EventName() string     { return "select_subject" }
func (SelectChapter) EventName() string     { return "select_chapter" }
func (GoBack) EventName() string            { return "go_back" }
func (SetFilter) EventName() string         { return "set_filter" }
func (ClearFilters) EventName() string      { return "clear_filters" }
func (SwitchTab) EventName() string         { return "switch_tab" }
func (ShiftQuarter) EventName() string      { return "shift_quarter" }
func (SwitchChart) EventName() string       { return "switch_chart" }
func (ToggleDropdown) EventName() string    { return "toggle_dropdown" }
func (DismissDropdown) EventName() string   { return "dismiss_dropdown" }
func (ToggleSubjectList) EventName() string { return "toggle_subject_list" }
