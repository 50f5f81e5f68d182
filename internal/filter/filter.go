// Package filter holds the leaderboard filter selections and the open
// dropdown token.
package filter

import (
	"errors"
	"fmt"

	"github.com/abhisek/reportcard/internal/dataset"
)

// Overall is the no-op value for every dimension.
const Overall = "Overall"

// ErrUnknownDimension is returned when parsing an unrecognized dimension.
var ErrUnknownDimension = errors.New("unknown filter dimension")

// Dimension names a filterable leaderboard field.
type Dimension string

const (
	None     Dimension = ""
	Division Dimension = "division"
	District Dimension = "district"
	Subject  Dimension = "subject"
)

// Dimensions lists the filter bar controls in display order.
func Dimensions() []Dimension {
	return []Dimension{Division, District, Subject}
}

// Label is the filter bar caption for the dimension.
func (d Dimension) Label() string {
	switch d {
	case Division:
		return "Division"
	case District:
		return "District"
	case Subject:
		return "Subject"
	default:
		return ""
	}
}

// ParseDimension converts a CLI or event string into a Dimension.
func ParseDimension(s string) (Dimension, error) {
	switch Dimension(s) {
	case Division, District, Subject:
		return Dimension(s), nil
	default:
		return None, fmt.Errorf("%q: %w", s, ErrUnknownDimension)
	}
}

// field returns the entry's value for the dimension.
func (d Dimension) field(e dataset.LeaderboardEntry) string {
	switch d {
	case Division:
		return e.Division
	case District:
		return e.District
	case Subject:
		return e.Subject
	default:
		return ""
	}
}

// Selection is the value chosen for each dimension.
type Selection struct {
	Division string `json:"division"`
	District string `json:"district"`
	Subject  string `json:"subject"`
}

// DefaultSelection selects Overall everywhere.
func DefaultSelection() Selection {
	return Selection{Division: Overall, District: Overall, Subject: Overall}
}

// Get returns the selected value for d.
func (s Selection) Get(d Dimension) string {
	switch d {
	case Division:
		return s.Division
	case District:
		return s.District
	case Subject:
		return s.Subject
	default:
		return Overall
	}
}

// IsDefault reports whether no dimension constrains the rows.
func (s Selection) IsDefault() bool {
	return s == DefaultSelection()
}

// Derive returns the entries matching every non-Overall dimension, in their
// input order.
func (s Selection) Derive(entries []dataset.LeaderboardEntry) []dataset.LeaderboardEntry {
	out := make([]dataset.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if s.matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func (s Selection) matches(e dataset.LeaderboardEntry) bool {
	for _, d := range Dimensions() {
		v := s.Get(d)
		if v == Overall || v == "" {
			continue
		}
		if d.field(e) != v {
			return false
		}
	}
	return true
}

// Options returns Overall followed by the distinct values of d across
// entries, in first-seen order.
func Options(d Dimension, entries []dataset.LeaderboardEntry) []string {
	opts := []string{Overall}
	seen := map[string]bool{Overall: true}
	for _, e := range entries {
		v := d.field(e)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		opts = append(opts, v)
	}
	return opts
}

// State is the filter bar: the selection plus which dropdown, if any, is
// expanded.
type State struct {
	Selection Selection `json:"selection"`
	Open      Dimension `json:"openDropdown,omitempty"`
}

// NewState returns a filter bar with everything at Overall and no dropdown
// open.
func NewState() State {
	return State{Selection: DefaultSelection()}
}

// Set overwrites one dimension, leaving the others untouched.
func (s *State) Set(d Dimension, value string) error {
	if value == "" {
		value = Overall
	}
	switch d {
	case Division:
		s.Selection.Division = value
	case District:
		s.Selection.District = value
	case Subject:
		s.Selection.Subject = value
	default:
		return fmt.Errorf("set %q: %w", d, ErrUnknownDimension)
	}
	return nil
}

// Clear resets every dimension to Overall.
func (s *State) Clear() {
	s.Selection = DefaultSelection()
}

// Derive applies the current selection to entries.
func (s State) Derive(entries []dataset.LeaderboardEntry) []dataset.LeaderboardEntry {
	return s.Selection.Derive(entries)
}
