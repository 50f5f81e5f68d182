package viewmodel

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/reportcard/internal/chart"
	"github.com/abhisek/reportcard/internal/dataset"
	"github.com/abhisek/reportcard/internal/filter"
	"github.com/abhisek/reportcard/internal/nav"
)

func newSession() *Session {
	return NewSession(dataset.Default(), DefaultDefaults())
}

func TestNewSession_Initial(t *testing.T) {
	m := newSession().Model()
	assert.Equal(t, nav.Initial(), m.Nav)
	assert.Equal(t, TabOverview, m.Tab)
	assert.Equal(t, 1, m.Chart.Quarter)
	assert.Equal(t, chart.Attendance, m.Chart.Metric)
	assert.True(t, m.Filters.Selection.IsDefault())
	assert.False(t, m.Filters.AnyOpen())
	assert.False(t, m.ShowAllSubjects)
}

func TestApply_NavigationRoundTrip(t *testing.T) {
	s := newSession()
	require.NoError(t, s.Apply(SelectSubject{Name: "Physics"}))
	require.NoError(t, s.Apply(SelectChapter{Name: "Vectors"}))
	assert.Equal(t, nav.State{Screen: nav.ScreenChapter, Subject: "Physics", Chapter: "Vectors"}, s.Model().Nav)

	require.NoError(t, s.Apply(GoBack{}))
	require.NoError(t, s.Apply(GoBack{}))
	assert.Equal(t, nav.Initial(), s.Model().Nav)
}

func TestApply_RejectedLeavesModel(t *testing.T) {
	s := newSession()
	before := s.Model()

	err := s.Apply(SelectChapter{Name: "Vectors"})
	assert.True(t, errors.Is(err, nav.ErrInvalidTransition))
	assert.Equal(t, before, s.Model())

	err = s.Apply(SelectSubject{Name: "Astrology"})
	assert.ErrorIs(t, err, nav.ErrInvalidTransition)
	assert.Equal(t, before, s.Model())

	assert.ErrorIs(t, s.Apply(SwitchTab{Tab: "grades"}), ErrUnknownTab)
	assert.ErrorIs(t, s.Apply(SwitchChart{Metric: "grades"}), chart.ErrUnknownMetric)
	assert.ErrorIs(t, s.Apply(ToggleDropdown{Dimension: "grade"}), filter.ErrUnknownDimension)
	assert.Equal(t, before, s.Model())
}

type bogusEvent struct{}

func (bogusEvent) EventName() string { return "bogus" }

func TestApply_UnknownEvent(t *testing.T) {
	assert.ErrorIs(t, newSession().Apply(bogusEvent{}), ErrUnknownEvent)
}

func TestApply_ReturnToMainResetsSelections(t *testing.T) {
	s := newSession()
	events := []Event{
		ShiftQuarter{Delta: 1},
		SwitchChart{Metric: chart.CQ},
		SwitchTab{Tab: TabLeaderboard},
		SetFilter{Dimension: filter.Subject, Value: "Physics"},
		ToggleSubjectList{},
		ToggleDropdown{Dimension: filter.Division},
	}
	for _, ev := range events {
		require.NoError(t, s.Apply(ev), ev.EventName())
	}
	m := s.Model()
	require.Equal(t, 2, m.Chart.Quarter)
	require.True(t, m.Filters.IsOpen(filter.Division))

	require.NoError(t, s.Apply(SelectSubject{Name: "Physics"}))
	assert.False(t, s.Model().Filters.AnyOpen(), "opening a subject closes the dropdown")
	assert.Equal(t, "Physics", s.Model().Filters.Selection.Subject, "selections survive until back to main")

	require.NoError(t, s.Apply(SelectChapter{Name: "Vectors"}))
	require.NoError(t, s.Apply(GoBack{}))
	assert.Equal(t, 2, s.Model().Chart.Quarter, "chapter to subject keeps selections")

	require.NoError(t, s.Apply(GoBack{}))
	assert.Equal(t, NewModel(DefaultDefaults()), s.Model())
}

func TestApply_ResetUsesConfiguredDefaults(t *testing.T) {
	d := Defaults{Quarter: 3, Chart: chart.MCQ, CollapsedSubjects: 2}
	s := NewSession(dataset.Default(), d)
	assert.Equal(t, 3, s.Model().Chart.Quarter)

	require.NoError(t, s.Apply(ShiftQuarter{Delta: -1}))
	require.NoError(t, s.Apply(SelectSubject{Name: "Chemistry"}))
	require.NoError(t, s.Apply(GoBack{}))

	m := s.Model()
	assert.Equal(t, 3, m.Chart.Quarter)
	assert.Equal(t, chart.MCQ, m.Chart.Metric)
	assert.Equal(t, 2, m.CollapsedSubjects)
}

func TestApply_QuarterBounds(t *testing.T) {
	s := newSession()
	require.NoError(t, s.Apply(ShiftQuarter{Delta: -1}))
	assert.Equal(t, 1, s.Model().Chart.Quarter)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Apply(ShiftQuarter{Delta: 1}))
	}
	assert.Equal(t, 3, s.Model().Chart.Quarter)
	require.NoError(t, s.Apply(ShiftQuarter{}))
	assert.Equal(t, 3, s.Model().Chart.Quarter)
}

func TestApply_FilterClosesDropdown(t *testing.T) {
	s := newSession()
	require.NoError(t, s.Apply(ToggleDropdown{Dimension: filter.District}))
	require.NoError(t, s.Apply(SetFilter{Dimension: filter.District, Value: "Dhaka"}))
	m := s.Model()
	assert.False(t, m.Filters.AnyOpen())
	assert.Equal(t, "Dhaka", m.Filters.Selection.District)

	require.NoError(t, s.Apply(ToggleDropdown{Dimension: filter.Subject}))
	require.NoError(t, s.Apply(DismissDropdown{}))
	assert.False(t, s.Model().Filters.AnyOpen())

	require.NoError(t, s.Apply(ClearFilters{}))
	assert.True(t, s.Model().Filters.Selection.IsDefault())
}

func TestModel_JSONRoundTrip(t *testing.T) {
	s := newSession()
	require.NoError(t, s.Apply(SetFilter{Dimension: filter.Subject, Value: "Physics"}))
	require.NoError(t, s.Apply(ToggleDropdown{Dimension: filter.Division}))
	require.NoError(t, s.Apply(SelectSubject{Name: "Physics"}))
	require.NoError(t, s.Apply(SelectChapter{Name: "Vectors"}))

	raw, err := json.Marshal(s.Model())
	require.NoError(t, err)

	var m Model
	require.NoError(t, json.Unmarshal(raw, &m))

	restored := newSession()
	require.NoError(t, restored.Restore(m))
	assert.Equal(t, s.Model(), restored.Model())
	assert.Equal(t, s.View(), restored.View())
}

func TestRestore_RejectsInvalidNav(t *testing.T) {
	s := newSession()
	m := s.Model()
	m.Nav = nav.State{Screen: nav.ScreenChapter, Subject: "Physics"}
	assert.ErrorIs(t, s.Restore(m), nav.ErrInvalidTransition)
	assert.Equal(t, nav.Initial(), s.Model().Nav)
}

func TestParseTab(t *testing.T) {
	tab, err := ParseTab("leaderboard")
	require.NoError(t, err)
	assert.Equal(t, TabLeaderboard, tab)
	_, err = ParseTab("stats")
	assert.ErrorIs(t, err, ErrUnknownTab)
}
