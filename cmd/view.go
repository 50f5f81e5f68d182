package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/reportcard/internal/chart"
	"github.com/abhisek/reportcard/internal/filter"
	"github.com/abhisek/reportcard/internal/viewmodel"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Print the derived view for a given state",
	Long: "view builds a session from flags, applies them as events in order " +
		"(quarter, chart, tab, filters, subject list, subject, chapter) and " +
		"prints the resulting view.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ds, err := loadDataset(cmd)
		if err != nil {
			return err
		}

		d := defaultsFrom(cfg)
		if q, _ := cmd.Flags().GetInt("quarter"); q != 0 {
			if q < chart.FirstQuarter || q > chart.LastQuarter {
				return fmt.Errorf("--quarter %d: want %d..%d", q, chart.FirstQuarter, chart.LastQuarter)
			}
			d.Quarter = q
		}
		if c, _ := cmd.Flags().GetString("chart"); c != "" {
			m, err := chart.ParseMetric(c)
			if err != nil {
				return fmt.Errorf("--chart: %w", err)
			}
			d.Chart = m
		}

		session := viewmodel.NewSession(ds, d)
		events, err := eventsFromFlags(cmd)
		if err != nil {
			return err
		}
		for _, ev := range events {
			if err := session.Apply(ev); err != nil {
				return fmt.Errorf("%s: %w", ev.EventName(), err)
			}
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(session.View())
		}
		printView(out, session.View())
		return nil
	},
}

func init() {
	f := viewCmd.Flags()
	f.String("subject", "", "Open this subject")
	f.String("chapter", "", "Open this chapter (requires --subject)")
	f.Int("quarter", 0, "Quarter 1-3 (default from config)")
	f.String("chart", "", "Trend chart: attendance, mcq or cq")
	f.String("tab", "", "Main screen tab: overview or leaderboard")
	f.String("division", "", "Leaderboard division filter")
	f.String("district", "", "Leaderboard district filter")
	f.String("filter-subject", "", "Leaderboard subject filter")
	f.Bool("all-subjects", false, "Expand the subject list")
	f.Bool("json", false, "Print the view as JSON")
}

// eventsFromFlags translates flags into the events a user would trigger.
func eventsFromFlags(cmd *cobra.Command) ([]viewmodel.Event, error) {
	f := cmd.Flags()
	var events []viewmodel.Event

	if t, _ := f.GetString("tab"); t != "" {
		tab, err := viewmodel.ParseTab(t)
		if err != nil {
			return nil, fmt.Errorf("--tab: %w", err)
		}
		events = append(events, viewmodel.SwitchTab{Tab: tab})
	}
	filters := []struct {
		flag string
		dim  filter.Dimension
	}{
		{"division", filter.Division},
		{"district", filter.District},
		{"filter-subject", filter.Subject},
	}
	for _, fl := range filters {
		if v, _ := f.GetString(fl.flag); v != "" {
			events = append(events, viewmodel.SetFilter{Dimension: fl.dim, Value: v})
		}
	}
	if all, _ := f.GetBool("all-subjects"); all {
		events = append(events, viewmodel.ToggleSubjectList{})
	}

	subject, _ := f.GetString("subject")
	chapter, _ := f.GetString("chapter")
	if chapter != "" && subject == "" {
		return nil, fmt.Errorf("--chapter requires --subject")
	}
	if subject != "" {
		events = append(events, viewmodel.SelectSubject{Name: subject})
	}
	if chapter != "" {
		events = append(events, viewmodel.SelectChapter{Name: chapter})
	}
	return events, nil
}

func printView(w io.Writer, v viewmodel.View) {
	h := v.Header
	fmt.Fprintf(w, "%s (%s) %s\n", h.Student, h.Batch, h.QuarterLabel)

	switch {
	case v.Chapter != nil:
		printChapter(w, v.Chapter)
	case v.Subject != nil:
		printSubject(w, v.Subject)
	case v.Tab == viewmodel.TabLeaderboard:
		printLeaderboard(w, v.Leaderboard.Rows)
	default:
		fmt.Fprintf(w, "Total score %d%%  rank %d/%d\n", v.Progress.TotalScore, v.Progress.Rank.Position, v.Progress.Rank.Total)
		fmt.Fprintf(w, "Attendance %d%%  MCQ %d%%  CQ %d%%\n", v.Learning.Attendance, v.Learning.MCQ, v.Learning.CQ)
		for _, r := range v.Subjects.Rows {
			topper := ""
			if r.Topper {
				topper = "  [topper]"
			}
			fmt.Fprintf(w, "  %-12s %3d%%  topper %3d%%%s\n", r.Name, r.Score, r.TopperScore, topper)
		}
		if v.Subjects.Hidden > 0 {
			fmt.Fprintf(w, "  (%d more)\n", v.Subjects.Hidden)
		}
		s := v.Trend.Series
		points := make([]string, 0, len(s.Points))
		for _, p := range s.Points {
			points = append(points, fmt.Sprintf("%s %d", p.Month, p.Value))
		}
		fmt.Fprintf(w, "%s: %s\n", s.Label, strings.Join(points, ", "))
	}
}

func printSubject(w io.Writer, s *viewmodel.SubjectView) {
	if s.Missing {
		fmt.Fprintf(w, "%s: no data\n", s.Name)
		return
	}
	fmt.Fprintf(w, "%s  score %d%%  topper %d%%  percentile %d\n", s.Name, s.Score, s.TopperScore, s.Percentile)
	fmt.Fprintf(w, "Attendance %d%% (%d/%d)  MCQ %d%%  CQ %d%%\n",
		s.Attendance.Percent, s.Attendance.Attended, s.Attendance.Total, s.MCQ.Percent, s.CQ.Percent)
	for _, sec := range s.Sections {
		fmt.Fprintf(w, "%s (%d)\n", sec.Title, len(sec.Chapters))
		for _, c := range sec.Chapters {
			fmt.Fprintf(w, "  %-24s %3d%%  %s\n", c.Name, c.Score, c.Hint)
		}
	}
}

func printChapter(w io.Writer, c *viewmodel.ChapterView) {
	if c.Missing {
		fmt.Fprintf(w, "%s › %s: no data\n", c.Subject, c.Name)
		return
	}
	fmt.Fprintf(w, "%s › %s  %d%%\n", c.Subject, c.Name, c.Score)
	fmt.Fprintf(w, "Classes %d attended %d absent %d\n", c.ClassStats.TotalClasses, c.ClassStats.Attended, c.ClassStats.Absent)
	printTopics := func(title string, rows []viewmodel.TopicRow) {
		fmt.Fprintln(w, title)
		for _, r := range rows {
			weak := ""
			if r.Weak {
				weak = "  weak"
			}
			fmt.Fprintf(w, "  %-24s %s%s\n", r.Name, r.Score, weak)
		}
	}
	printTopics("MCQ topics", c.MCQTopics)
	printTopics("CQ topics", c.CQTopics)
	if len(c.WeakAreas) > 0 {
		fmt.Fprintf(w, "Weak areas: %s\n", strings.Join(c.WeakAreas, ", "))
	}
	for _, v := range c.Videos {
		fmt.Fprintf(w, "  ▶ %s\n", v)
	}
}

func printLeaderboard(w io.Writer, rows []viewmodel.LeaderRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No students match these filters.")
		return
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%3d  %-20s %3d%%  %s, %s  %s\n", r.Rank, r.Name, r.Percent, r.District, r.Division, r.Subject)
	}
}
