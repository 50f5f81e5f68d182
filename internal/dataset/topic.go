package dataset

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

// TopicKind tags which payload a TopicScore carries.
type TopicKind int

const (
	TopicPercent TopicKind = iota // Percent holds a 0-100 value
	TopicRatio                    // Score holds an "a/b" string
)

// TopicScore is a per-topic result, either a percentage or an "a/b" score.
type TopicScore struct {
	Name    string
	Kind    TopicKind
	Percent float64
	Score   string
}

var ratioPattern = regexp.MustCompile(`^(\d+)/(\d+)$`)

// PercentTopic creates a percentage-scored topic.
func PercentTopic(name string, percent float64) TopicScore {
	return TopicScore{Name: name, Kind: TopicPercent, Percent: percent}
}

// RatioTopic creates a topic scored as "a/b".
func RatioTopic(name, score string) TopicScore {
	return TopicScore{Name: name, Kind: TopicRatio, Score: score}
}

// NormalizedPercent returns the topic's score on a 0-100 scale. ok is false
// when a ratio score is malformed or has a zero denominator.
func (t TopicScore) NormalizedPercent() (pct float64, ok bool) {
	switch t.Kind {
	case TopicPercent:
		return t.Percent, true
	case TopicRatio:
		m := ratioPattern.FindStringSubmatch(t.Score)
		if m == nil {
			return 0, false
		}
		num, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		den, err := strconv.Atoi(m[2])
		if err != nil || den == 0 {
			return 0, false
		}
		return float64(num) * 100 / float64(den), true
	default:
		return 0, false
	}
}

type topicJSON struct {
	Name    string   `json:"name"`
	Percent *float64 `json:"percent,omitempty"`
	Score   *string  `json:"score,omitempty"`
}

// MarshalJSON writes the fixture shape: exactly one of percent or score.
func (t TopicScore) MarshalJSON() ([]byte, error) {
	out := topicJSON{Name: t.Name}
	switch t.Kind {
	case TopicPercent:
		p := t.Percent
		out.Percent = &p
	case TopicRatio:
		s := t.Score
		out.Score = &s
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the fixture shape and picks the variant by which
// field is present.
func (t *TopicScore) UnmarshalJSON(b []byte) error {
	var in topicJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	switch {
	case in.Percent != nil && in.Score != nil:
		return fmt.Errorf("topic %q: both percent and score set", in.Name)
	case in.Percent != nil:
		*t = PercentTopic(in.Name, *in.Percent)
	case in.Score != nil:
		*t = RatioTopic(in.Name, *in.Score)
	default:
		return fmt.Errorf("topic %q: neither percent nor score set", in.Name)
	}
	return nil
}
