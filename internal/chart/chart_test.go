package chart

import (
	"errors"
	"testing"

	"github.com/abhisek/reportcard/internal/dataset"
)

func TestQuarterBounds(t *testing.T) {
	s := NewSelector(1, Attendance)
	if s.CanPrev() {
		t.Error("CanPrev at Q1 should be false")
	}
	s.PrevQuarter()
	if s.Quarter != 1 {
		t.Errorf("PrevQuarter at Q1 moved to %d", s.Quarter)
	}

	s.NextQuarter()
	s.NextQuarter()
	if s.Quarter != 3 {
		t.Fatalf("Quarter = %d, want 3", s.Quarter)
	}
	if s.CanNext() {
		t.Error("CanNext at Q3 should be false")
	}
	s.NextQuarter()
	if s.Quarter != 3 {
		t.Errorf("NextQuarter at Q3 moved to %d", s.Quarter)
	}

	s.PrevQuarter()
	if s.Quarter != 2 || !s.CanPrev() || !s.CanNext() {
		t.Errorf("unexpected Q2 state %+v", s)
	}
}

func TestQuarterStaysInRange(t *testing.T) {
	s := NewSelector(2, MCQ)
	steps := []func(){s.NextQuarter, s.NextQuarter, s.NextQuarter, s.PrevQuarter, s.PrevQuarter, s.PrevQuarter, s.PrevQuarter}
	for i, step := range steps {
		step()
		if s.Quarter < FirstQuarter || s.Quarter > LastQuarter {
			t.Fatalf("step %d: quarter %d out of range", i, s.Quarter)
		}
	}
}

func TestNewSelectorFallbacks(t *testing.T) {
	s := NewSelector(7, Metric("grades"))
	if s.Quarter != 1 || s.Metric != Attendance {
		t.Errorf("got %+v, want Q1 attendance", s)
	}
}

func TestSelect(t *testing.T) {
	s := NewSelector(1, Attendance)
	if err := s.Select(CQ); err != nil {
		t.Fatalf("Select(CQ): %v", err)
	}
	if s.Metric != CQ {
		t.Errorf("Metric = %s, want cq", s.Metric)
	}
	if err := s.Select("grades"); !errors.Is(err, ErrUnknownMetric) {
		t.Errorf("expected ErrUnknownMetric, got %v", err)
	}
	if s.Metric != CQ {
		t.Errorf("rejected select changed metric to %s", s.Metric)
	}
}

func TestSeries_Q1(t *testing.T) {
	tests := []struct {
		metric Metric
		color  string
		label  string
		values []int
	}{
		{Attendance, "#6B49CD", "Class Attendance", []int{15, 38, 58}},
		{MCQ, "#FFC94A", "MCQ Score", []int{45, 55, 50}},
		{CQ, "#2ECC71", "CQ Score", []int{30, 42, 63}},
	}
	for _, tt := range tests {
		t.Run(string(tt.metric), func(t *testing.T) {
			s := NewSelector(1, tt.metric)
			series, err := s.Series(dataset.Default())
			if err != nil {
				t.Fatalf("Series: %v", err)
			}
			if series.Color != tt.color {
				t.Errorf("color = %s, want %s", series.Color, tt.color)
			}
			if series.Label != tt.label {
				t.Errorf("label = %q, want %q", series.Label, tt.label)
			}
			if len(series.Points) != len(tt.values) {
				t.Fatalf("got %d points, want %d", len(series.Points), len(tt.values))
			}
			for i, p := range series.Points {
				if p.Value != tt.values[i] {
					t.Errorf("point %d = %d, want %d", i, p.Value, tt.values[i])
				}
			}
			if series.Points[0].Month != "Jan" {
				t.Errorf("first month = %s, want Jan", series.Points[0].Month)
			}
		})
	}
}

func TestSeries_FollowsQuarter(t *testing.T) {
	s := NewSelector(3, Attendance)
	series, err := s.Series(dataset.Default())
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	if series.Points[0].Month != "Jul" || series.Points[2].Value != 88 {
		t.Errorf("unexpected Q3 series %+v", series.Points)
	}
}

func TestParseMetric(t *testing.T) {
	for _, m := range Metrics() {
		got, err := ParseMetric(string(m))
		if err != nil || got != m {
			t.Errorf("ParseMetric(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := ParseMetric("Attendance"); !errors.Is(err, ErrUnknownMetric) {
		t.Errorf("expected case-sensitive rejection, got %v", err)
	}
}

func TestMetricNextWraps(t *testing.T) {
	if CQ.Next() != Attendance || Attendance.Next() != MCQ {
		t.Error("Next does not cycle attendance -> mcq -> cq -> attendance")
	}
}
