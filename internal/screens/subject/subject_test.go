package subject

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/reportcard/internal/dataset"
	"github.com/abhisek/reportcard/internal/nav"
	"github.com/abhisek/reportcard/internal/viewmodel"
)

func newTestSubject(t *testing.T, name string) *SubjectScreen {
	t.Helper()
	s := viewmodel.NewSession(dataset.Default(), viewmodel.DefaultDefaults())
	if err := s.Apply(viewmodel.SelectSubject{Name: name}); err != nil {
		t.Fatalf("select %s: %v", name, err)
	}
	return New(s)
}

func send(s *SubjectScreen, msg tea.KeyPressMsg) tea.Msg {
	_, cmd := s.Update(msg)
	if cmd == nil {
		return nil
	}
	return cmd()
}

var (
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
	up    = tea.KeyPressMsg{Code: tea.KeyUp}
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
)

func TestRouteAndTitle(t *testing.T) {
	s := newTestSubject(t, "Physics")
	if s.Route() != nav.ScreenSubject {
		t.Errorf("expected subject route, got %v", s.Route())
	}
	if s.Title() != "Physics" {
		t.Errorf("expected title Physics, got %q", s.Title())
	}
}

func TestCursorWalksChaptersInTierOrder(t *testing.T) {
	tests := []struct {
		downs int
		want  string
	}{
		{0, "Newtonian Mechanics"},
		{1, "Electromagnetism"},
		{2, "Thermodynamics"},
		{3, "Vectors"},
		{4, "Modern Physics"},
		{9, "Modern Physics"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			s := newTestSubject(t, "Physics")
			for i := 0; i < tt.downs; i++ {
				send(s, down)
			}
			msg := send(s, enter)
			got, ok := msg.(viewmodel.SelectChapter)
			if !ok {
				t.Fatalf("expected SelectChapter, got %T", msg)
			}
			if got.Name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got.Name)
			}
		})
	}
}

func TestUpStopsAtFirstChapter(t *testing.T) {
	s := newTestSubject(t, "Physics")
	send(s, up)
	if s.cursor != 0 {
		t.Errorf("expected cursor 0, got %d", s.cursor)
	}
}

func TestEnterWithoutChaptersEmitsNothing(t *testing.T) {
	s := newTestSubject(t, "Chemistry")
	if msg := send(s, enter); msg != nil {
		t.Errorf("expected no event, got %T", msg)
	}
}

func TestViewShowsMetricsAndSections(t *testing.T) {
	s := newTestSubject(t, "Physics")
	view := s.View(120, 200)
	for _, want := range []string{
		"Physics", "Attendance", "MCQ", "CQ",
		"Needs improvement (2)", "Moderate (1)", "Good (2)",
		"Newtonian Mechanics", "Thermodynamics",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewEmptySections(t *testing.T) {
	s := newTestSubject(t, "Chemistry")
	view := s.View(120, 200)
	if !strings.Contains(view, "No chapters") {
		t.Error("empty sections should say so")
	}
}

func TestViewClipsToHeight(t *testing.T) {
	s := newTestSubject(t, "Physics")
	for i := 0; i < 4; i++ {
		send(s, down)
	}
	view := s.View(100, 12)
	if n := strings.Count(view, "\n") + 1; n > 12 {
		t.Errorf("expected at most 12 lines, got %d", n)
	}
	if !strings.Contains(view, "Modern Physics") {
		t.Error("clipped view should keep the selected chapter visible")
	}
}
