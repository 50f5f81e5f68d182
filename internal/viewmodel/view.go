package viewmodel

import (
	"github.com/abhisek/reportcard/internal/chart"
	"github.com/abhisek/reportcard/internal/dataset"
	"github.com/abhisek/reportcard/internal/filter"
	"github.com/abhisek/reportcard/internal/metrics"
	"github.com/abhisek/reportcard/internal/nav"
)

// View is a deterministic description of everything the current state
// shows. Subject and Chapter are set only on their screens.
type View struct {
	Screen      nav.Screen         `json:"screen"`
	Tab         Tab                `json:"tab"`
	Header      HeaderView         `json:"header"`
	Progress    ProgressView       `json:"progress"`
	Learning    LearningView       `json:"learning"`
	FocusAreas  dataset.FocusAreas `json:"focusAreas"`
	Subjects    SubjectListView    `json:"subjects"`
	Trend       TrendView          `json:"trend"`
	Leaderboard LeaderboardView    `json:"leaderboard"`
	Subject     *SubjectView       `json:"subject,omitempty"`
	Chapter     *ChapterView       `json:"chapter,omitempty"`
}

type HeaderView struct {
	Student      string `json:"student"`
	Batch        string `json:"batch"`
	Avatar       string `json:"avatar"`
	Quarter      int    `json:"quarter"`
	QuarterLabel string `json:"quarterLabel"`
	CanPrev      bool   `json:"canPrev"`
	CanNext      bool   `json:"canNext"`
}

type ProgressView struct {
	TotalScore int          `json:"totalScore"`
	Rank       dataset.Rank `json:"rank"`
}

// LearningView carries the quarter's stored percentages.
type LearningView struct {
	Attendance int `json:"attendance"`
	MCQ        int `json:"mcq"`
	CQ         int `json:"cq"`
}

type SubjectRow struct {
	Name        string `json:"name"`
	Initial     string `json:"initial"`
	IconColor   string `json:"iconColor"`
	Score       int    `json:"score"`
	TopperScore int    `json:"topperScore"`
	Topper      bool   `json:"topper"`
}

// SubjectListView is the subject table. Rows holds only the visible rows;
// Hidden counts the ones behind "See More".
type SubjectListView struct {
	Rows        []SubjectRow `json:"rows"`
	Hidden      int          `json:"hidden"`
	Expanded    bool         `json:"expanded"`
	ShowToggle  bool         `json:"showToggle"`
	ToggleLabel string       `json:"toggleLabel,omitempty"`
}

type ChartTab struct {
	Metric chart.Metric `json:"metric"`
	Label  string       `json:"label"`
	Active bool         `json:"active"`
}

type TrendView struct {
	Tabs   []ChartTab   `json:"tabs"`
	Series chart.Series `json:"series"`
}

// FilterControl is one dropdown on the leaderboard filter bar.
type FilterControl struct {
	Dimension filter.Dimension `json:"dimension"`
	Label     string           `json:"label"`
	Value     string           `json:"value"`
	Open      bool             `json:"open"`
	Options   []string         `json:"options"`
}

type LeaderRow struct {
	Rank     int    `json:"rank"`
	Medal    string `json:"medal,omitempty"`
	Name     string `json:"name"`
	Percent  int    `json:"percent"`
	Avatar   string `json:"avatar"`
	Division string `json:"division"`
	District string `json:"district"`
	Subject  string `json:"subject"`
}

type LeaderboardView struct {
	Filters  []FilterControl `json:"filters"`
	Filtered bool            `json:"filtered"`
	Rows     []LeaderRow     `json:"rows"`
}

type AttendanceView struct {
	Percent       int `json:"percent"`
	StoredPercent int `json:"storedPercent"`
	Attended      int `json:"attended"`
	Total         int `json:"total"`
}

type MCQView struct {
	Percent   int                  `json:"percent"`
	Attended  int                  `json:"attended"`
	Total     int                  `json:"total"`
	Breakdown metrics.MCQBreakdown `json:"breakdown"`
}

type CQView struct {
	Percent  int `json:"percent"`
	Attended int `json:"attended"`
	Total    int `json:"total"`
}

type ChapterChip struct {
	Name  string       `json:"name"`
	Hint  string       `json:"hint"`
	Score int          `json:"score"`
	Tier  metrics.Tier `json:"tier"`
}

type ChapterSection struct {
	Tier     metrics.Tier  `json:"tier"`
	Title    string        `json:"title"`
	Chapters []ChapterChip `json:"chapters"`
}

// SubjectView is the subject screen. Missing is set when the selected name
// has no fixture.
type SubjectView struct {
	Name        string           `json:"name"`
	Missing     bool             `json:"missing,omitempty"`
	Score       int              `json:"score"`
	TopperScore int              `json:"topperScore"`
	Percentile  int              `json:"percentile"`
	Attendance  AttendanceView   `json:"attendance"`
	MCQ         MCQView          `json:"mcq"`
	CQ          CQView           `json:"cq"`
	Sections    []ChapterSection `json:"sections"`
}

type TopicRow struct {
	Name  string `json:"name"`
	Score string `json:"score"`
	Weak  bool   `json:"weak"`
}

// ChapterView is the chapter screen.
type ChapterView struct {
	Subject    string             `json:"subject"`
	Name       string             `json:"name"`
	Missing    bool               `json:"missing,omitempty"`
	Score      int                `json:"score"`
	Hint       string             `json:"hint"`
	ClassStats dataset.ClassStats `json:"classStats"`
	MCQTopics  []TopicRow         `json:"mcqTopics"`
	CQTopics   []TopicRow         `json:"cqTopics"`
	WeakAreas  []string           `json:"weakAreas"`
	Videos     []string           `json:"recommendedVideos"`
}

// Medal assets for the top three leaderboard rows.
var medals = map[int]string{
	1: "/first-rank-badge.webp",
	2: "/second-rank-badge.webp",
	3: "/3rd%20place.png",
}

var subjectIconColors = map[string]string{
	"Physics":     "indigo",
	"Chemistry":   "pink",
	"Biology":     "green",
	"Higher Math": "blue",
	"English":     "yellow",
	"Bangla":      "purple",
	"ICT":         "teal",
	"History":     "orange",
}

// IconColor returns the color key for a subject's initial badge.
func IconColor(subject string) string {
	if c, ok := subjectIconColors[subject]; ok {
		return c
	}
	return "gray"
}

// Derive computes the View for m against ds. It has no side effects.
func Derive(m Model, ds *dataset.Dataset) View {
	v := View{
		Screen: m.Nav.Screen,
		Tab:    m.Tab,
	}

	st := ds.Student()
	v.Header = HeaderView{
		Student:      st.Name,
		Batch:        st.Batch,
		Avatar:       st.Avatar,
		Quarter:      m.Chart.Quarter,
		QuarterLabel: m.Chart.QuarterLabel(),
		CanPrev:      m.Chart.CanPrev(),
		CanNext:      m.Chart.CanNext(),
	}

	if q, err := ds.Quarter(m.Chart.Quarter); err == nil {
		v.Progress = ProgressView{TotalScore: q.TotalScore, Rank: q.Rank}
		v.Learning = LearningView{Attendance: q.Learning.Attendance, MCQ: q.Learning.MCQ, CQ: q.Learning.CQ}
		v.FocusAreas = q.FocusAreas
		v.Trend.Series = chart.SeriesFor(q.Chart, m.Chart.Metric)
	} else {
		v.Trend.Series = chart.SeriesFor(dataset.QuarterChartData{}, m.Chart.Metric)
	}
	for _, metric := range chart.Metrics() {
		v.Trend.Tabs = append(v.Trend.Tabs, ChartTab{Metric: metric, Label: metric.Label(), Active: metric == m.Chart.Metric})
	}

	v.Subjects = deriveSubjects(ds.Subjects(), m.CollapsedSubjects, m.ShowAllSubjects)
	v.Leaderboard = deriveLeaderboard(m.Filters, ds.Leaderboard())

	switch m.Nav.Screen {
	case nav.ScreenSubject:
		v.Subject = deriveSubject(ds, m.Nav.Subject)
	case nav.ScreenChapter:
		v.Subject = deriveSubject(ds, m.Nav.Subject)
		v.Chapter = deriveChapter(ds, m.Nav.Subject, m.Nav.Chapter)
	}
	return v
}

func deriveSubjects(subjects []dataset.Subject, collapsed int, expanded bool) SubjectListView {
	if collapsed < 1 {
		collapsed = DefaultCollapsedSubjects
	}
	out := SubjectListView{Expanded: expanded}
	visible := len(subjects)
	if !expanded && visible > collapsed {
		visible = collapsed
	}
	for _, s := range subjects[:visible] {
		out.Rows = append(out.Rows, SubjectRow{
			Name:        s.Name,
			Initial:     initial(s.Name),
			IconColor:   IconColor(s.Name),
			Score:       s.Score,
			TopperScore: s.TopperScore,
			Topper:      metrics.IsTopper(s),
		})
	}
	out.Hidden = len(subjects) - visible
	out.ShowToggle = len(subjects) > collapsed
	if out.ShowToggle {
		if expanded {
			out.ToggleLabel = "See Less"
		} else {
			out.ToggleLabel = "See More"
		}
	}
	return out
}

func initial(name string) string {
	for _, r := range name {
		return string(r)
	}
	return ""
}

func deriveLeaderboard(fs filter.State, entries []dataset.LeaderboardEntry) LeaderboardView {
	out := LeaderboardView{Filtered: !fs.Selection.IsDefault()}
	for _, d := range filter.Dimensions() {
		out.Filters = append(out.Filters, FilterControl{
			Dimension: d,
			Label:     d.Label(),
			Value:     fs.Selection.Get(d),
			Open:      fs.IsOpen(d),
			Options:   filter.Options(d, entries),
		})
	}
	for i, e := range fs.Derive(entries) {
		rank := i + 1
		out.Rows = append(out.Rows, LeaderRow{
			Rank:     rank,
			Medal:    medals[rank],
			Name:     e.Name,
			Percent:  e.Percent,
			Avatar:   e.Avatar,
			Division: e.Division,
			District: e.District,
			Subject:  e.Subject,
		})
	}
	return out
}

func deriveSubject(ds *dataset.Dataset, name string) *SubjectView {
	s, err := ds.Subject(name)
	if err != nil {
		return &SubjectView{Name: name, Missing: true}
	}
	sv := &SubjectView{
		Name:        s.Name,
		Score:       s.Score,
		TopperScore: s.TopperScore,
		Percentile:  s.Percentile,
		Attendance: AttendanceView{
			Percent:       metrics.AttendancePercent(*s),
			StoredPercent: s.Attendance.Percent,
			Attended:      s.Attendance.Attended,
			Total:         s.Attendance.Total,
		},
		MCQ: MCQView{
			Percent:   s.MCQ.Percent,
			Attended:  s.MCQ.Attended,
			Total:     s.MCQ.Total,
			Breakdown: metrics.MCQBreakdownOf(*s),
		},
		CQ: CQView{Percent: s.CQ.Percent, Attended: s.CQ.Attended, Total: s.CQ.Total},
	}

	b := metrics.BucketChapters(s.Chapters)
	for _, sec := range []struct {
		tier     metrics.Tier
		chapters []dataset.Chapter
	}{
		{metrics.TierNeeds, b.Needs},
		{metrics.TierModerate, b.Moderate},
		{metrics.TierGood, b.Good},
	} {
		cs := ChapterSection{Tier: sec.tier, Title: sec.tier.Label(), Chapters: []ChapterChip{}}
		for _, c := range sec.chapters {
			cs.Chapters = append(cs.Chapters, ChapterChip{Name: c.Name, Hint: c.Hint, Score: c.Score, Tier: sec.tier})
		}
		sv.Sections = append(sv.Sections, cs)
	}
	return sv
}

func deriveChapter(ds *dataset.Dataset, subject, name string) *ChapterView {
	c, err := ds.Chapter(subject, name)
	if err != nil {
		return &ChapterView{Subject: subject, Name: name, Missing: true}
	}
	return &ChapterView{
		Subject:    subject,
		Name:       c.Name,
		Score:      c.Score,
		Hint:       c.Hint,
		ClassStats: c.ClassStats,
		MCQTopics:  topicRows(c.MCQTopics),
		CQTopics:   topicRows(c.CQTopics),
		WeakAreas:  c.WeakAreas,
		Videos:     c.RecommendedVideos,
	}
}

func topicRows(topics []dataset.TopicScore) []TopicRow {
	rows := make([]TopicRow, 0, len(topics))
	for _, t := range topics {
		rows = append(rows, TopicRow{Name: t.Name, Score: metrics.TopicScoreText(t), Weak: metrics.TopicIsWeak(t)})
	}
	return rows
}

// ChapterOrder flattens the sections in display order: Needs, then
// Moderate, then Good.
func (sv *SubjectView) ChapterOrder() []ChapterChip {
	if sv == nil {
		return nil
	}
	var out []ChapterChip
	for _, sec := range sv.Sections {
		out = append(out, sec.Chapters...)
	}
	return out
}
