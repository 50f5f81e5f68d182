package report

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/reportcard/internal/dataset"
	"github.com/abhisek/reportcard/internal/filter"
	"github.com/abhisek/reportcard/internal/ui/components"
	"github.com/abhisek/reportcard/internal/ui/layout"
	"github.com/abhisek/reportcard/internal/ui/theme"
	"github.com/abhisek/reportcard/internal/viewmodel"
)

// View renders the active tab. The dropdown is re-synced here too so a
// restored session with an open filter draws its list.
func (r *ReportScreen) View(width, height int) string {
	v := r.src.View()
	r.syncDropdown(v)
	r.clampCursor(len(v.Subjects.Rows))

	cw := width - 4
	if cw > 96 {
		cw = 96
	}

	var sections []string
	sections = append(sections, renderStudent(v.Header))
	sections = append(sections, components.Tabs([]components.Tab{
		{Label: "Overview", Active: v.Tab == viewmodel.TabOverview},
		{Label: "Leaderboard", Active: v.Tab == viewmodel.TabLeaderboard},
	}))

	focus := 0
	if v.Tab == viewmodel.TabLeaderboard {
		sections = append(sections, r.renderLeaderboard(v.Leaderboard, cw))
	} else {
		sections = append(sections,
			renderProgress(v.Progress, cw),
			renderLearning(v.Learning, v.FocusAreas, cw),
		)
		// Keep the selected subject row on screen when content is clipped.
		focus = lipgloss.Height(strings.Join(sections, "\n\n")) + 3 + r.cursor
		sections = append(sections,
			r.renderSubjects(v.Subjects, cw),
			renderTrend(v.Trend, cw),
		)
	}

	content := strings.Join(sections, "\n\n")
	content = lipgloss.NewStyle().PaddingLeft(2).Render(content)
	return layout.Clip(content, height, focus)
}

func renderStudent(h viewmodel.HeaderView) string {
	prev, next := theme.Disabled.Render("‹"), theme.Disabled.Render("›")
	if h.CanPrev {
		prev = theme.Selected.Render("‹")
	}
	if h.CanNext {
		next = theme.Selected.Render("›")
	}
	name := theme.Section.Render(h.Student)
	quarter := prev + " " + theme.Body.Render(h.QuarterLabel) + " " + next
	return name + "   " + quarter + "\n" + theme.Subtitle.Render(h.Batch)
}

func renderProgress(p viewmodel.ProgressView, cw int) string {
	title := theme.Section.Render("Your Progress")
	cardW := cw/2 - 2
	total := theme.Card.Width(cardW).Render(
		theme.Subtitle.Render("TOTAL SCORE") + "\n" +
			theme.Score.Render(fmt.Sprintf("%d%%", p.TotalScore)))
	rank := theme.Card.Width(cardW).Render(
		theme.Subtitle.Render("CLASS RANK") + "\n" +
			theme.Score.Render(fmt.Sprintf("%d", p.Rank.Position)) +
			theme.Subtitle.Render(fmt.Sprintf("/%d", p.Rank.Total)))
	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, total, " ", rank)
}

func renderLearning(l viewmodel.LearningView, f dataset.FocusAreas, cw int) string {
	title := theme.Section.Render("Learning Stats")
	cardW := cw/3 - 2
	card := func(label string, pct int, c color.Color) string {
		return theme.Card.Width(cardW).Render(
			theme.Subtitle.Render(label) + "\n" +
				lipgloss.NewStyle().Foreground(c).Bold(true).Render(fmt.Sprintf("%d%%", pct)))
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Live Class Attendance", l.Attendance, theme.Primary),
		" ",
		card("Live MCQ Score %", l.MCQ, theme.Topper),
		" ",
		card("Live CQ Score %", l.CQ, theme.Success),
	)
	focusLine := theme.Subtitle.Render("Focus areas  ") +
		lipgloss.NewStyle().Foreground(theme.TierNeeds).Render(fmt.Sprintf("%d needs improvement", f.NeedsImprovement)) + "  " +
		lipgloss.NewStyle().Foreground(theme.TierModerate).Render(fmt.Sprintf("%d moderate", f.Moderate)) + "  " +
		lipgloss.NewStyle().Foreground(theme.TierGood).Render(fmt.Sprintf("%d good", f.Good))
	return title + "\n" + cards + "\n" + focusLine
}

func (r *ReportScreen) renderSubjects(s viewmodel.SubjectListView, cw int) string {
	nameW := cw/2 - 4
	colW := (cw - nameW) / 2

	var b strings.Builder
	b.WriteString(theme.Section.Render("Subject-wise Performance") + "\n")
	b.WriteString(theme.Subtitle.Render(
		padRight("   Subject", nameW+4) + padRight("Your Score", colW) + "Topper's Score"))
	for i, row := range s.Rows {
		b.WriteString("\n")
		marker := "  "
		nameStyle := theme.Unselected
		if i == r.cursor {
			marker = theme.Selected.Render("▸ ")
			nameStyle = theme.Selected
		}
		icon := lipgloss.NewStyle().
			Foreground(theme.BgDark).
			Background(theme.IconColor(row.IconColor)).
			Bold(true).
			Render(" " + row.Initial + " ")
		name := nameStyle.Render(row.Name)
		if row.Topper {
			name += " " + theme.Badge.Render("Topper")
		}
		b.WriteString(marker + icon + " " + padRight(name, nameW-1) +
			padRight(theme.Score.Render(fmt.Sprintf("%d%%", row.Score)), colW) +
			theme.TopperScore.Render(fmt.Sprintf("%d%%", row.TopperScore)))
	}
	if s.ShowToggle {
		arrow := "▾"
		if s.Expanded {
			arrow = "▴"
		}
		label := s.ToggleLabel + " " + arrow
		if s.Hidden > 0 {
			label += fmt.Sprintf(" (%d)", s.Hidden)
		}
		b.WriteString("\n" + lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
			Foreground(theme.Primary).Bold(true).Render(label))
	}
	return b.String()
}

func renderTrend(t viewmodel.TrendView, cw int) string {
	tabs := make([]components.Tab, 0, len(t.Tabs))
	for i, tab := range t.Tabs {
		tabs = append(tabs, components.Tab{Label: tab.Label, Key: fmt.Sprint(i + 1), Active: tab.Active})
	}
	pts := make([]components.TrendPoint, 0, len(t.Series.Points))
	for _, p := range t.Series.Points {
		pts = append(pts, components.TrendPoint{Label: p.Month, Value: p.Value})
	}
	return theme.Section.Render("Performance Trend") + "\n" +
		components.Tabs(tabs) + "\n\n" +
		components.TrendChart(pts, lipgloss.Color(t.Series.Color), cw, 5)
}

func (r *ReportScreen) renderLeaderboard(lb viewmodel.LeaderboardView, cw int) string {
	var controls []string
	for _, fc := range lb.Filters {
		k := keyFor(fc.Dimension)
		label := theme.Subtitle.Render(k+" "+fc.Label+": ") + theme.Body.Render(fc.Value+" ▾")
		if fc.Open {
			label = theme.Selected.Render(k+" "+fc.Label+": "+fc.Value+" ▴")
		}
		controls = append(controls, label)
	}
	bar := strings.Join(controls, "   ")
	if lb.Filtered {
		bar += "   " + theme.Hint.Render("x clear")
	}

	parts := []string{theme.Section.Render("Leaderboard"), bar}
	if r.dropdown != nil {
		parts = append(parts, r.dropdown.View())
	}

	if len(lb.Rows) == 0 {
		parts = append(parts, theme.Hint.Render("No students match these filters."))
		return strings.Join(parts, "\n")
	}

	var rows []string
	for _, row := range lb.Rows {
		rank := medalGlyph(row.Rank)
		line := rank + " " + padRight(theme.Body.Render(row.Name), cw/3) +
			padRight(theme.Subtitle.Render(row.District+", "+row.Division), cw/3) +
			theme.Score.Render(fmt.Sprintf("%d%%", row.Percent))
		rows = append(rows, line)
	}
	parts = append(parts, strings.Join(rows, "\n"))
	return strings.Join(parts, "\n")
}

func keyFor(d filter.Dimension) string {
	switch d {
	case filter.Division:
		return keys.Division.Help().Key
	case filter.District:
		return keys.District.Help().Key
	default:
		return keys.Subject.Help().Key
	}
}

// medalGlyph renders the top three ranks as colored badges.
func medalGlyph(rank int) string {
	var c color.Color
	switch rank {
	case 1:
		c = theme.Topper
	case 2:
		c = lipgloss.Color("#C0C0C0")
	case 3:
		c = lipgloss.Color("#CD7F32")
	default:
		return theme.Subtitle.Render(fmt.Sprintf("%4d", rank))
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true).Render(fmt.Sprintf(" ●%d", rank))
}

func padRight(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
