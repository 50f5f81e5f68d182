package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrLookupMiss is returned when a subject, chapter or quarter key is not
	// present in the dataset.
	ErrLookupMiss = errors.New("not found in dataset")

	// ErrInvalidDataset is returned when fixture data fails schema or
	// invariant validation.
	ErrInvalidDataset = errors.New("invalid dataset")
)

//go:embed fixtures/report.json
var embeddedReport []byte

// Dataset is the read-only report card fixture set. It is built once at
// startup and never mutated.
type Dataset struct {
	student     Student
	subjects    []Subject
	leaderboard []LeaderboardEntry
	quarters    []QuarterSummary

	bySubject map[string]*Subject
	byQuarter map[int]*QuarterSummary
}

type datasetJSON struct {
	Student     Student            `json:"student"`
	Subjects    []Subject          `json:"subjects"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	Quarters    []QuarterSummary   `json:"quarters"`
}

// d is the embedded demo dataset, set by init().
var d *Dataset

func init() {
	ds, err := Load(bytes.NewReader(embeddedReport))
	if err != nil {
		panic(fmt.Sprintf("embedded report fixture: %v", err))
	}
	d = ds
}

// Default returns the embedded demo dataset.
func Default() *Dataset {
	return d
}

// Load reads, schema-validates and indexes a dataset from r.
func Load(r io.Reader) (*Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if err := validateSchema(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}

	var in datasetJSON
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidDataset, err)
	}

	ds, err := build(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	return ds, nil
}

// LoadFile loads a dataset from a JSON file on disk.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// build checks the invariants JSON Schema cannot express and builds indices.
func build(in datasetJSON) (*Dataset, error) {
	ds := &Dataset{
		student:     in.Student,
		subjects:    in.Subjects,
		leaderboard: in.Leaderboard,
		quarters:    in.Quarters,
		bySubject:   make(map[string]*Subject, len(in.Subjects)),
		byQuarter:   make(map[int]*QuarterSummary, len(in.Quarters)),
	}

	for i := range ds.subjects {
		s := &ds.subjects[i]
		if _, dup := ds.bySubject[s.Name]; dup {
			return nil, fmt.Errorf("duplicate subject %q", s.Name)
		}
		if err := checkSubject(s); err != nil {
			return nil, err
		}
		ds.bySubject[s.Name] = s
	}

	for i := range ds.quarters {
		q := &ds.quarters[i]
		if _, dup := ds.byQuarter[q.Quarter]; dup {
			return nil, fmt.Errorf("duplicate quarter %d", q.Quarter)
		}
		ds.byQuarter[q.Quarter] = q
	}
	for q := 1; q <= 3; q++ {
		if _, ok := ds.byQuarter[q]; !ok {
			return nil, fmt.Errorf("missing quarter %d", q)
		}
	}

	return ds, nil
}

func checkSubject(s *Subject) error {
	if s.Attendance.Attended > s.Attendance.Total {
		return fmt.Errorf("subject %q: attendance attended %d > total %d", s.Name, s.Attendance.Attended, s.Attendance.Total)
	}
	if s.MCQ.Attended > s.MCQ.Total {
		return fmt.Errorf("subject %q: mcq attended %d > total %d", s.Name, s.MCQ.Attended, s.MCQ.Total)
	}
	if s.CQ.Attended > s.CQ.Total {
		return fmt.Errorf("subject %q: cq attended %d > total %d", s.Name, s.CQ.Attended, s.CQ.Total)
	}

	seen := make(map[string]bool, len(s.Chapters))
	for _, c := range s.Chapters {
		if seen[c.Name] {
			return fmt.Errorf("subject %q: duplicate chapter %q", s.Name, c.Name)
		}
		seen[c.Name] = true
		if c.ClassStats.Attended > c.ClassStats.TotalClasses {
			return fmt.Errorf("chapter %q: attended %d > total classes %d", c.Name, c.ClassStats.Attended, c.ClassStats.TotalClasses)
		}
	}
	return nil
}

// Student returns the learner the report belongs to.
func (ds *Dataset) Student() Student {
	return ds.student
}

// Subjects returns all subjects in fixture order.
func (ds *Dataset) Subjects() []Subject {
	return ds.subjects
}

// SubjectNames returns subject names in fixture order.
func (ds *Dataset) SubjectNames() []string {
	names := make([]string, len(ds.subjects))
	for i, s := range ds.subjects {
		names[i] = s.Name
	}
	return names
}

// HasSubject reports whether name is a known subject key.
func (ds *Dataset) HasSubject(name string) bool {
	_, ok := ds.bySubject[name]
	return ok
}

// Subject looks up a subject by name.
func (ds *Dataset) Subject(name string) (*Subject, error) {
	s, ok := ds.bySubject[name]
	if !ok {
		return nil, fmt.Errorf("subject %q: %w", name, ErrLookupMiss)
	}
	return s, nil
}

// Chapter looks up a chapter by name within a subject.
func (ds *Dataset) Chapter(subject, chapter string) (*Chapter, error) {
	s, err := ds.Subject(subject)
	if err != nil {
		return nil, err
	}
	for i := range s.Chapters {
		if s.Chapters[i].Name == chapter {
			return &s.Chapters[i], nil
		}
	}
	return nil, fmt.Errorf("chapter %q in %q: %w", chapter, subject, ErrLookupMiss)
}

// Leaderboard returns leaderboard entries in rank order.
func (ds *Dataset) Leaderboard() []LeaderboardEntry {
	return ds.leaderboard
}

// Quarter returns the summary for quarter q (1..3).
func (ds *Dataset) Quarter(q int) (*QuarterSummary, error) {
	s, ok := ds.byQuarter[q]
	if !ok {
		return nil, fmt.Errorf("quarter %d: %w", q, ErrLookupMiss)
	}
	return s, nil
}
