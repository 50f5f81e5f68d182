// Package report is the main report card screen: progress, learning stats,
// subject table, trend chart and leaderboard.
package report

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/reportcard/internal/chart"
	"github.com/abhisek/reportcard/internal/filter"
	"github.com/abhisek/reportcard/internal/nav"
	"github.com/abhisek/reportcard/internal/screen"
	"github.com/abhisek/reportcard/internal/ui/components"
	"github.com/abhisek/reportcard/internal/ui/layout"
	"github.com/abhisek/reportcard/internal/viewmodel"
)

// ReportScreen is the root screen.
type ReportScreen struct {
	src    viewmodel.Source
	cursor int

	// dropdown is non-nil while a filter dropdown is open; it intercepts
	// keys until it emits a pick or a dismiss.
	dropdown    *components.Dropdown
	dropdownDim filter.Dimension
}

var _ screen.Screen = (*ReportScreen)(nil)

// New creates the main screen reading from src.
func New(src viewmodel.Source) *ReportScreen {
	return &ReportScreen{src: src}
}

func (r *ReportScreen) Init() tea.Cmd {
	return nil
}

func (r *ReportScreen) Title() string {
	return "Report Card"
}

func (r *ReportScreen) Route() nav.Screen {
	return nav.ScreenMain
}

func (r *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return r, nil
	}
	v := r.src.View()
	r.syncDropdown(v)

	if r.dropdown != nil {
		// Filter bar keys switch dropdowns; everything else belongs to the
		// open list, which dismisses on foreign keys.
		if cmd := r.filterKey(kmsg); cmd != nil {
			return r, cmd
		}
		d, cmd := r.dropdown.Update(kmsg)
		r.dropdown = &d
		return r, cmd
	}

	switch {
	case key.Matches(kmsg, keys.Tab):
		next := viewmodel.TabLeaderboard
		if v.Tab == viewmodel.TabLeaderboard {
			next = viewmodel.TabOverview
		}
		return r, screen.Emit(viewmodel.SwitchTab{Tab: next})
	case key.Matches(kmsg, keys.PrevQuarter):
		return r, screen.Emit(viewmodel.ShiftQuarter{Delta: -1})
	case key.Matches(kmsg, keys.NextQuarter):
		return r, screen.Emit(viewmodel.ShiftQuarter{Delta: 1})
	case key.Matches(kmsg, keys.Chart1):
		return r, screen.Emit(viewmodel.SwitchChart{Metric: chart.Attendance})
	case key.Matches(kmsg, keys.Chart2):
		return r, screen.Emit(viewmodel.SwitchChart{Metric: chart.MCQ})
	case key.Matches(kmsg, keys.Chart3):
		return r, screen.Emit(viewmodel.SwitchChart{Metric: chart.CQ})
	case key.Matches(kmsg, keys.NextChart):
		return r, screen.Emit(viewmodel.SwitchChart{Metric: v.Trend.Series.Metric.Next()})
	}

	if v.Tab == viewmodel.TabLeaderboard {
		if cmd := r.filterKey(kmsg); cmd != nil {
			return r, cmd
		}
		if key.Matches(kmsg, keys.Clear) {
			return r, screen.Emit(viewmodel.ClearFilters{})
		}
		return r, nil
	}

	rows := v.Subjects.Rows
	r.clampCursor(len(rows))
	switch {
	case key.Matches(kmsg, keys.Up):
		if r.cursor > 0 {
			r.cursor--
		}
	case key.Matches(kmsg, keys.Down):
		if r.cursor < len(rows)-1 {
			r.cursor++
		}
	case key.Matches(kmsg, keys.More):
		if !v.Subjects.ShowToggle {
			return r, nil
		}
		return r, screen.Emit(viewmodel.ToggleSubjectList{})
	case key.Matches(kmsg, keys.Open):
		if r.cursor < len(rows) {
			return r, screen.Emit(viewmodel.SelectSubject{Name: rows[r.cursor].Name})
		}
	}
	return r, nil
}

// clampCursor keeps the subject cursor on a visible row after the list
// collapses.
func (r *ReportScreen) clampCursor(n int) {
	if r.cursor >= n {
		r.cursor = n - 1
	}
	if r.cursor < 0 {
		r.cursor = 0
	}
}

// filterKey maps the filter bar toggles to events.
func (r *ReportScreen) filterKey(kmsg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(kmsg, keys.Division):
		return screen.Emit(viewmodel.ToggleDropdown{Dimension: filter.Division})
	case key.Matches(kmsg, keys.District):
		return screen.Emit(viewmodel.ToggleDropdown{Dimension: filter.District})
	case key.Matches(kmsg, keys.Subject):
		return screen.Emit(viewmodel.ToggleDropdown{Dimension: filter.Subject})
	}
	return nil
}

// syncDropdown opens, swaps or closes the dropdown component to match the
// view-model's open token.
func (r *ReportScreen) syncDropdown(v viewmodel.View) {
	var open *viewmodel.FilterControl
	for i := range v.Leaderboard.Filters {
		if v.Leaderboard.Filters[i].Open {
			open = &v.Leaderboard.Filters[i]
		}
	}
	if open == nil {
		r.dropdown, r.dropdownDim = nil, filter.None
		return
	}
	if r.dropdown != nil && r.dropdownDim == open.Dimension {
		return
	}
	dim := open.Dimension
	d := components.NewDropdown(open.Label, open.Options, open.Value,
		func(value string) tea.Cmd {
			return screen.Emit(viewmodel.SetFilter{Dimension: dim, Value: value})
		},
		func() tea.Cmd {
			return screen.Emit(viewmodel.DismissDropdown{})
		},
	)
	r.dropdown, r.dropdownDim = &d, dim
}

// KeyHints returns the key binding hints for the footer.
func (r *ReportScreen) KeyHints() []layout.KeyHint {
	if r.dropdown != nil {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Close"},
		}
	}
	if r.src.View().Tab == viewmodel.TabLeaderboard {
		return layout.HintsFromBindings(keys.Division, keys.District, keys.Subject, keys.Clear, keys.Tab)
	}
	return layout.HintsFromBindings(keys.Up, keys.Open, keys.More, keys.PrevQuarter, keys.NextChart, keys.Tab)
}
