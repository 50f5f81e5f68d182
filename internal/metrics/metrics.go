// Package metrics derives display values from report card fixtures.
//
// Every function here is pure. Ratios go through Ratio, which yields 0 for a
// zero denominator instead of propagating NaN or Inf.
package metrics

import (
	"fmt"
	"math"

	"github.com/abhisek/reportcard/internal/dataset"
)

// Thresholds for chapter tiers and weak topics.
const (
	GoodThreshold     = 85
	ModerateThreshold = 70
	WeakThreshold     = 70
)

// Tier classifies a chapter by score.
type Tier int

const (
	TierNeeds Tier = iota // score < 70
	TierModerate          // 70 <= score < 85
	TierGood              // score >= 85
)

// Label returns the section title used for the tier.
func (t Tier) Label() string {
	switch t {
	case TierGood:
		return "Good"
	case TierModerate:
		return "Moderate"
	default:
		return "Needs improvement"
	}
}

// String implements fmt.Stringer.
func (t Tier) String() string {
	switch t {
	case TierGood:
		return "good"
	case TierModerate:
		return "moderate"
	default:
		return "needs"
	}
}

// MarshalText lets tiers serialize as their short names.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a short tier name.
func (t *Tier) UnmarshalText(b []byte) error {
	switch string(b) {
	case "good":
		*t = TierGood
	case "moderate":
		*t = TierModerate
	case "needs":
		*t = TierNeeds
	default:
		return fmt.Errorf("unknown tier %q", b)
	}
	return nil
}

// TierOf returns the tier for a chapter score.
func TierOf(score int) Tier {
	switch {
	case score >= GoodThreshold:
		return TierGood
	case score >= ModerateThreshold:
		return TierModerate
	default:
		return TierNeeds
	}
}

// Ratio returns num/den*100, or 0 when den is zero.
func Ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) * 100 / float64(den)
}

// AttendancePercent derives attendance from attended/total. It is distinct
// from the stored Attendance.Percent and the two may disagree.
func AttendancePercent(s dataset.Subject) int {
	return int(math.Round(Ratio(s.Attendance.Attended, s.Attendance.Total)))
}

// CQCompletion is the share of CQ exams attended.
func CQCompletion(s dataset.Subject) int {
	return int(math.Round(Ratio(s.CQ.Attended, s.CQ.Total)))
}

// MCQBreakdown holds the stacked-bar segment widths for MCQ results.
type MCQBreakdown struct {
	Correct   float64 `json:"correctPct"`
	Incorrect float64 `json:"incorrectPct"`
	Skipped   float64 `json:"skippedPct"`
}

// MCQBreakdownOf splits MCQ totals into percentages. The segments are not
// normalized and need not sum to 100.
func MCQBreakdownOf(s dataset.Subject) MCQBreakdown {
	return MCQBreakdown{
		Correct:   Ratio(s.MCQ.Correct, s.MCQ.Total),
		Incorrect: Ratio(s.MCQ.Incorrect, s.MCQ.Total),
		Skipped:   Ratio(s.MCQ.Skipped, s.MCQ.Total),
	}
}

// TopicIsWeak reports whether a topic falls below the weak threshold.
// Topics without a usable percentage are never weak.
func TopicIsWeak(t dataset.TopicScore) bool {
	pct, ok := t.NormalizedPercent()
	if !ok {
		return false
	}
	return pct < WeakThreshold
}

// TopicScoreText renders a topic score: percent topics as a mark out of 10,
// ratio topics verbatim.
func TopicScoreText(t dataset.TopicScore) string {
	switch t.Kind {
	case dataset.TopicPercent:
		return fmt.Sprintf("%d/10", int(math.Round(t.Percent/10)))
	case dataset.TopicRatio:
		if t.Score != "" {
			return t.Score
		}
	}
	return "—"
}

// Buckets partitions chapters by tier.
type Buckets struct {
	Good     []dataset.Chapter
	Moderate []dataset.Chapter
	Needs    []dataset.Chapter
}

// Len returns the total number of bucketed chapters.
func (b Buckets) Len() int {
	return len(b.Good) + len(b.Moderate) + len(b.Needs)
}

// BucketChapters classifies each chapter into exactly one tier, keeping the
// input order within each bucket.
func BucketChapters(chapters []dataset.Chapter) Buckets {
	var b Buckets
	for _, c := range chapters {
		switch TierOf(c.Score) {
		case TierGood:
			b.Good = append(b.Good, c)
		case TierModerate:
			b.Moderate = append(b.Moderate, c)
		default:
			b.Needs = append(b.Needs, c)
		}
	}
	return b
}

// IsTopper reports whether the student matched the topper's score exactly.
func IsTopper(s dataset.Subject) bool {
	return s.Score == s.TopperScore
}
