// Package chart selects the trend series shown on the main screen.
package chart

import (
	"errors"
	"fmt"

	"github.com/abhisek/reportcard/internal/dataset"
)

// Quarter bounds.
const (
	FirstQuarter = 1
	LastQuarter  = 3
)

// ErrUnknownMetric is returned when parsing an unrecognized chart name.
var ErrUnknownMetric = errors.New("unknown chart metric")

// Metric names one of the three trend series.
type Metric string

const (
	Attendance Metric = "attendance"
	MCQ        Metric = "mcq"
	CQ         Metric = "cq"
)

// Metrics lists the chart tabs in display order.
func Metrics() []Metric {
	return []Metric{Attendance, MCQ, CQ}
}

// Label is the tab caption.
func (m Metric) Label() string {
	switch m {
	case Attendance:
		return "Class Attendance"
	case MCQ:
		return "MCQ Score"
	case CQ:
		return "CQ Score"
	default:
		return string(m)
	}
}

// Color is the series stroke color as a hex string.
func (m Metric) Color() string {
	switch m {
	case Attendance:
		return "#6B49CD"
	case MCQ:
		return "#FFC94A"
	case CQ:
		return "#2ECC71"
	default:
		return "#6B7280"
	}
}

// Valid reports whether m is one of the known metrics.
func (m Metric) Valid() bool {
	switch m {
	case Attendance, MCQ, CQ:
		return true
	}
	return false
}

// Next cycles to the following tab, wrapping after CQ.
func (m Metric) Next() Metric {
	ms := Metrics()
	for i, x := range ms {
		if x == m {
			return ms[(i+1)%len(ms)]
		}
	}
	return Attendance
}

// ParseMetric converts a flag or config value into a Metric.
func ParseMetric(s string) (Metric, error) {
	m := Metric(s)
	if !m.Valid() {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownMetric)
	}
	return m, nil
}

// Series is the data the trend chart renders.
type Series struct {
	Metric Metric          `json:"metric"`
	Label  string          `json:"label"`
	Color  string          `json:"color"`
	Points []dataset.Point `json:"points"`
}

// SeriesFor picks metric's points out of a quarter's chart data.
func SeriesFor(data dataset.QuarterChartData, m Metric) Series {
	var pts []dataset.Point
	switch m {
	case Attendance:
		pts = data.Attendance
	case MCQ:
		pts = data.MCQ
	case CQ:
		pts = data.CQ
	}
	return Series{Metric: m, Label: m.Label(), Color: m.Color(), Points: pts}
}

// Selector is the active quarter and chart tab.
type Selector struct {
	Quarter int    `json:"quarter"`
	Metric  Metric `json:"activeChart"`
}

// NewSelector returns a selector at quarter q showing m. Out-of-range values
// fall back to quarter 1 and the attendance chart.
func NewSelector(q int, m Metric) Selector {
	if q < FirstQuarter || q > LastQuarter {
		q = FirstQuarter
	}
	if !m.Valid() {
		m = Attendance
	}
	return Selector{Quarter: q, Metric: m}
}

// Select switches the chart tab.
func (s *Selector) Select(m Metric) error {
	if !m.Valid() {
		return fmt.Errorf("select %q: %w", m, ErrUnknownMetric)
	}
	s.Metric = m
	return nil
}

// CanPrev reports whether an earlier quarter exists.
func (s Selector) CanPrev() bool { return s.Quarter > FirstQuarter }

// CanNext reports whether a later quarter exists.
func (s Selector) CanNext() bool { return s.Quarter < LastQuarter }

// PrevQuarter steps back one quarter. It is a no-op at the first quarter.
func (s *Selector) PrevQuarter() {
	if s.CanPrev() {
		s.Quarter--
	}
}

// NextQuarter steps forward one quarter. It is a no-op at the last quarter.
func (s *Selector) NextQuarter() {
	if s.CanNext() {
		s.Quarter++
	}
}

// QuarterLabel is the short caption for the active quarter, e.g. "Q2".
func (s Selector) QuarterLabel() string {
	return fmt.Sprintf("Q%d", s.Quarter)
}

// Series resolves the active series from ds.
func (s Selector) Series(ds *dataset.Dataset) (Series, error) {
	q, err := ds.Quarter(s.Quarter)
	if err != nil {
		return Series{}, err
	}
	return SeriesFor(q.Chart, s.Metric), nil
}
