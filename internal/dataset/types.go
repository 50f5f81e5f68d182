package dataset

// Student is the learner the report card belongs to.
type Student struct {
	Name   string `json:"name"`
	Batch  string `json:"batch"`
	Avatar string `json:"avatar"`
}

// Attendance counts live classes attended. Percent is supplied by the
// fixture and is not recomputed from Attended/Total.
type Attendance struct {
	Percent  int `json:"percent"`
	Attended int `json:"attended"`
	Total    int `json:"total"`
}

// MCQStats summarizes multiple-choice exams for a subject.
type MCQStats struct {
	Percent   int `json:"percent"`
	Attended  int `json:"attended"`
	Total     int `json:"total"`
	Skipped   int `json:"skipped"`
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}

// CQStats summarizes constructed-question exams for a subject.
type CQStats struct {
	Percent  int `json:"percent"`
	Attended int `json:"attended"`
	Total    int `json:"total"`
}

// ClassStats counts classes held for a single chapter.
type ClassStats struct {
	TotalClasses int `json:"totalClasses"`
	Attended     int `json:"attended"`
	Absent       int `json:"absent"`
}

// Chapter is a subdivision of a Subject.
type Chapter struct {
	Name              string       `json:"name"`
	Score             int          `json:"score"`
	Hint              string       `json:"hint"`
	ClassStats        ClassStats   `json:"classStats"`
	MCQTopics         []TopicScore `json:"mcqTopics"`
	CQTopics          []TopicScore `json:"cqTopics"`
	WeakAreas         []string     `json:"weakAreas"`
	RecommendedVideos []string     `json:"recommendedVideos"`
}

// Subject is a top-level course tracked by the report.
type Subject struct {
	Name        string     `json:"name"`
	Score       int        `json:"score"`
	TopperScore int        `json:"topperScore"`
	Percentile  int        `json:"percentile"`
	Attendance  Attendance `json:"attendance"`
	MCQ         MCQStats   `json:"mcq"`
	CQ          CQStats    `json:"cq"`
	Chapters    []Chapter  `json:"chapters"`
}

// LeaderboardEntry is one row of the class leaderboard. Entries are ranked
// by their position in the fixture.
type LeaderboardEntry struct {
	Name     string `json:"name"`
	Percent  int    `json:"percent"`
	Avatar   string `json:"avatar"`
	District string `json:"district"`
	Division string `json:"division"`
	Subject  string `json:"subject"`
}

// Point is a single month on a trend series.
type Point struct {
	Month string `json:"month"`
	Value int    `json:"value"`
}

// QuarterChartData holds the three trend series for one quarter.
type QuarterChartData struct {
	Attendance []Point `json:"attendance"`
	MCQ        []Point `json:"mcq"`
	CQ         []Point `json:"cq"`
}

// Rank is the student's class position.
type Rank struct {
	Position int `json:"position"`
	Total    int `json:"total"`
}

// LearningStats are the quarter's live-class and exam percentages.
type LearningStats struct {
	Attendance int `json:"attendance"`
	MCQ        int `json:"mcq"`
	CQ         int `json:"cq"`
}

// FocusAreas counts chapters per performance tier for a quarter.
type FocusAreas struct {
	NeedsImprovement int `json:"needsImprovement"`
	Moderate         int `json:"moderate"`
	Good             int `json:"good"`
}

// QuarterSummary is the per-quarter snapshot shown on the main screen.
type QuarterSummary struct {
	Quarter    int              `json:"quarter"`
	TotalScore int              `json:"totalScore"`
	Rank       Rank             `json:"rank"`
	Learning   LearningStats    `json:"learning"`
	FocusAreas FocusAreas       `json:"focusAreas"`
	Chart      QuarterChartData `json:"chart"`
}
