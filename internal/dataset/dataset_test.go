package dataset

import (
	"errors"
	"strings"
	"testing"
)

func TestDefault_Loads(t *testing.T) {
	ds := Default()
	if ds == nil {
		t.Fatal("expected embedded dataset")
	}
	if got := ds.Student().Name; got != "Angona" {
		t.Errorf("student name = %q, want %q", got, "Angona")
	}
	if got := len(ds.Subjects()); got != 8 {
		t.Errorf("got %d subjects, want 8", got)
	}
	if got := len(ds.Leaderboard()); got != 10 {
		t.Errorf("got %d leaderboard entries, want 10", got)
	}
}

func TestSubjectNames_FixtureOrder(t *testing.T) {
	want := []string{"Physics", "Chemistry", "Biology", "Higher Math", "English", "Bangla", "ICT", "History"}
	got := Default().SubjectNames()
	if len(got) != len(want) {
		t.Fatalf("got %d names, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("name[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSubject_LookupMiss(t *testing.T) {
	_, err := Default().Subject("Astrology")
	if !errors.Is(err, ErrLookupMiss) {
		t.Fatalf("expected ErrLookupMiss, got %v", err)
	}
}

func TestChapter_Found(t *testing.T) {
	c, err := Default().Chapter("Physics", "Newtonian Mechanics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Score != 65 {
		t.Errorf("score = %d, want 65", c.Score)
	}
	if len(c.MCQTopics) != 4 || len(c.CQTopics) != 4 {
		t.Errorf("got %d mcq / %d cq topics, want 4/4", len(c.MCQTopics), len(c.CQTopics))
	}
	if c.CQTopics[0].Kind != TopicRatio || c.CQTopics[0].Score != "7/10" {
		t.Errorf("first cq topic = %+v, want ratio 7/10", c.CQTopics[0])
	}
	if c.MCQTopics[1].Kind != TopicPercent || c.MCQTopics[1].Percent != 55 {
		t.Errorf("second mcq topic = %+v, want percent 55", c.MCQTopics[1])
	}
}

func TestChapter_LookupMiss(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		chapter string
	}{
		{"unknown chapter", "Physics", "Optics"},
		{"subject without chapters", "Chemistry", "Organic"},
		{"unknown subject", "Astrology", "Vectors"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Default().Chapter(tt.subject, tt.chapter)
			if !errors.Is(err, ErrLookupMiss) {
				t.Errorf("expected ErrLookupMiss, got %v", err)
			}
		})
	}
}

func TestQuarter(t *testing.T) {
	for q := 1; q <= 3; q++ {
		s, err := Default().Quarter(q)
		if err != nil {
			t.Fatalf("Quarter(%d): %v", q, err)
		}
		if s.Quarter != q {
			t.Errorf("Quarter(%d).Quarter = %d", q, s.Quarter)
		}
		if len(s.Chart.Attendance) != 3 {
			t.Errorf("Quarter(%d) attendance series has %d points, want 3", q, len(s.Chart.Attendance))
		}
	}
	if _, err := Default().Quarter(4); !errors.Is(err, ErrLookupMiss) {
		t.Errorf("Quarter(4): expected ErrLookupMiss, got %v", err)
	}
}

func TestAttendedNeverExceedsTotal(t *testing.T) {
	for _, s := range Default().Subjects() {
		if s.Attendance.Attended > s.Attendance.Total {
			t.Errorf("%s: attendance %d > %d", s.Name, s.Attendance.Attended, s.Attendance.Total)
		}
		if s.MCQ.Attended > s.MCQ.Total {
			t.Errorf("%s: mcq %d > %d", s.Name, s.MCQ.Attended, s.MCQ.Total)
		}
		if s.CQ.Attended > s.CQ.Total {
			t.Errorf("%s: cq %d > %d", s.Name, s.CQ.Attended, s.CQ.Total)
		}
	}
}

const minimalQuarters = `"quarters": [
  {"quarter": 1, "totalScore": 90, "rank": {"position": 1, "total": 2}, "learning": {"attendance": 1, "mcq": 1, "cq": 1}, "focusAreas": {"needsImprovement": 0, "moderate": 0, "good": 0}, "chart": {"attendance": [], "mcq": [], "cq": []}},
  {"quarter": 2, "totalScore": 90, "rank": {"position": 1, "total": 2}, "learning": {"attendance": 1, "mcq": 1, "cq": 1}, "focusAreas": {"needsImprovement": 0, "moderate": 0, "good": 0}, "chart": {"attendance": [], "mcq": [], "cq": []}},
  {"quarter": 3, "totalScore": 90, "rank": {"position": 1, "total": 2}, "learning": {"attendance": 1, "mcq": 1, "cq": 1}, "focusAreas": {"needsImprovement": 0, "moderate": 0, "good": 0}, "chart": {"attendance": [], "mcq": [], "cq": []}}
]`

func minimalDataset(subject string) string {
	return `{"student": {"name": "A", "batch": "B"}, "subjects": [` + subject + `], "leaderboard": [], ` + minimalQuarters + `}`
}

func TestLoad_Minimal(t *testing.T) {
	subject := `{"name": "Physics", "score": 80, "topperScore": 90, "percentile": 50,
		"attendance": {"percent": 50, "attended": 1, "total": 2},
		"mcq": {"percent": 50, "attended": 1, "total": 2, "skipped": 0, "correct": 1, "incorrect": 0},
		"cq": {"percent": 50, "attended": 1, "total": 2}, "chapters": []}`

	ds, err := Load(strings.NewReader(minimalDataset(subject)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ds.HasSubject("Physics") {
		t.Error("expected Physics to be present")
	}
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		subject string
	}{
		{
			name: "attended exceeds total",
			subject: `{"name": "Physics", "score": 80, "topperScore": 90, "percentile": 50,
				"attendance": {"percent": 50, "attended": 3, "total": 2},
				"mcq": {"percent": 50, "attended": 1, "total": 2, "skipped": 0, "correct": 1, "incorrect": 0},
				"cq": {"percent": 50, "attended": 1, "total": 2}, "chapters": []}`,
		},
		{
			name: "score out of range",
			subject: `{"name": "Physics", "score": 180, "topperScore": 90, "percentile": 50,
				"attendance": {"percent": 50, "attended": 1, "total": 2},
				"mcq": {"percent": 50, "attended": 1, "total": 2, "skipped": 0, "correct": 1, "incorrect": 0},
				"cq": {"percent": 50, "attended": 1, "total": 2}, "chapters": []}`,
		},
		{
			name: "topic with both percent and score",
			subject: `{"name": "Physics", "score": 80, "topperScore": 90, "percentile": 50,
				"attendance": {"percent": 50, "attended": 1, "total": 2},
				"mcq": {"percent": 50, "attended": 1, "total": 2, "skipped": 0, "correct": 1, "incorrect": 0},
				"cq": {"percent": 50, "attended": 1, "total": 2},
				"chapters": [{"name": "C", "score": 70, "hint": "", "mcqTopics": [{"name": "T", "percent": 50, "score": "5/10"}], "cqTopics": []}]}`,
		},
		{
			name: "missing required field",
			subject: `{"name": "Physics", "score": 80,
				"attendance": {"percent": 50, "attended": 1, "total": 2},
				"mcq": {"percent": 50, "attended": 1, "total": 2, "skipped": 0, "correct": 1, "incorrect": 0},
				"cq": {"percent": 50, "attended": 1, "total": 2}, "chapters": []}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(minimalDataset(tt.subject)))
			if !errors.Is(err, ErrInvalidDataset) {
				t.Errorf("expected ErrInvalidDataset, got %v", err)
			}
		})
	}
}

func TestLoad_NotJSON(t *testing.T) {
	_, err := Load(strings.NewReader("not json"))
	if !errors.Is(err, ErrInvalidDataset) {
		t.Errorf("expected ErrInvalidDataset, got %v", err)
	}
}
