// Package subject is the per-subject detail screen.
package subject

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/reportcard/internal/metrics"
	"github.com/abhisek/reportcard/internal/nav"
	"github.com/abhisek/reportcard/internal/screen"
	"github.com/abhisek/reportcard/internal/ui/components"
	"github.com/abhisek/reportcard/internal/ui/layout"
	"github.com/abhisek/reportcard/internal/ui/theme"
	"github.com/abhisek/reportcard/internal/viewmodel"
)

var (
	upKey   = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Navigate"))
	downKey = key.NewBinding(key.WithKeys("down", "j"))
	openKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Chapter"))
)

// SubjectScreen shows one subject's metrics and its chapters bucketed by tier.
type SubjectScreen struct {
	src    viewmodel.Source
	cursor int
}

var _ screen.Screen = (*SubjectScreen)(nil)

// New creates the subject screen reading from src.
func New(src viewmodel.Source) *SubjectScreen {
	return &SubjectScreen{src: src}
}

func (s *SubjectScreen) Init() tea.Cmd {
	return nil
}

func (s *SubjectScreen) Title() string {
	if sv := s.src.View().Subject; sv != nil {
		return sv.Name
	}
	return "Subject"
}

func (s *SubjectScreen) Route() nav.Screen {
	return nav.ScreenSubject
}

func (s *SubjectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	chips := s.src.View().Subject.ChapterOrder()
	s.clamp(len(chips))

	switch {
	case key.Matches(kmsg, upKey):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(kmsg, downKey):
		if s.cursor < len(chips)-1 {
			s.cursor++
		}
	case key.Matches(kmsg, openKey):
		if s.cursor < len(chips) {
			return s, screen.Emit(viewmodel.SelectChapter{Name: chips[s.cursor].Name})
		}
	}
	return s, nil
}

func (s *SubjectScreen) clamp(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *SubjectScreen) View(width, height int) string {
	sv := s.src.View().Subject
	if sv == nil || sv.Missing {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Hint.Render("No data for this subject."))
	}
	s.clamp(len(sv.ChapterOrder()))

	cw := width - 4
	if cw > 96 {
		cw = 96
	}

	hero := theme.Card.Width(cw).Render(
		theme.Title.Render(sv.Name) + "\n" +
			theme.Subtitle.Render("Your Score ") + theme.Score.Render(fmt.Sprintf("%d%%", sv.Score)) +
			theme.Subtitle.Render("   Topper's Score ") + theme.TopperScore.Render(fmt.Sprintf("%d%%", sv.TopperScore)) +
			theme.Subtitle.Render("   Percentile ") + theme.Body.Render(fmt.Sprintf("%d", sv.Percentile)))

	top := theme.Section.Render("Overview") + "\n" + hero + "\n" + metricCards(sv, cw)
	focus := lipgloss.Height(top) + 1 + s.focusLine(sv)

	content := top + "\n\n" + s.renderSections(sv)
	content = lipgloss.NewStyle().PaddingLeft(2).Render(content)
	return layout.Clip(content, height, focus)
}

func metricCards(sv *viewmodel.SubjectView, cw int) string {
	cardW := cw/3 - 2
	barW := cardW - 4
	if barW < 6 {
		barW = 6
	}

	att := theme.Card.Width(cardW).Render(
		theme.Subtitle.Render("Attendance") + "\n" +
			theme.Score.Render(fmt.Sprintf("%d%%", sv.Attendance.Percent)) + "\n" +
			components.NewProgressBar("", float64(sv.Attendance.Percent), false, barW, theme.Primary).View() + "\n" +
			theme.Hint.Render(fmt.Sprintf("%d/%d classes", sv.Attendance.Attended, sv.Attendance.Total)))

	b := sv.MCQ.Breakdown
	mcq := theme.Card.Width(cardW).Render(
		theme.Subtitle.Render("MCQ") + "\n" +
			theme.Score.Render(fmt.Sprintf("%d%%", sv.MCQ.Percent)) + "\n" +
			components.StackedBar([]components.Segment{
				{Percent: b.Correct, Color: theme.Success},
				{Percent: b.Incorrect, Color: theme.Error},
				{Percent: b.Skipped, Color: theme.TextDim},
			}, barW) + "\n" +
			theme.Hint.Render(fmt.Sprintf("%d/%d exams", sv.MCQ.Attended, sv.MCQ.Total)))

	cq := theme.Card.Width(cardW).Render(
		theme.Subtitle.Render("CQ") + "\n" +
			theme.Score.Render(fmt.Sprintf("%d%%", sv.CQ.Percent)) + "\n" +
			components.NewProgressBar("", metrics.Ratio(sv.CQ.Attended, sv.CQ.Total), false, barW, theme.Topper).View() + "\n" +
			theme.Hint.Render(fmt.Sprintf("%d/%d exams", sv.CQ.Attended, sv.CQ.Total)))

	return lipgloss.JoinHorizontal(lipgloss.Top, att, " ", mcq, " ", cq)
}

func tierColor(t metrics.Tier) color.Color {
	switch t {
	case metrics.TierGood:
		return theme.TierGood
	case metrics.TierModerate:
		return theme.TierModerate
	default:
		return theme.TierNeeds
	}
}

func (s *SubjectScreen) renderSections(sv *viewmodel.SubjectView) string {
	var b strings.Builder
	b.WriteString(theme.Section.Render("Chapters"))
	idx := 0
	for _, sec := range sv.Sections {
		style := lipgloss.NewStyle().Foreground(tierColor(sec.Tier)).Bold(true)
		b.WriteString("\n" + style.Render(fmt.Sprintf("%s (%d)", sec.Title, len(sec.Chapters))))
		if len(sec.Chapters) == 0 {
			b.WriteString("\n" + theme.Hint.Render("  No chapters"))
		}
		for _, c := range sec.Chapters {
			marker := "  "
			name := theme.Unselected.Render(c.Name)
			if idx == s.cursor {
				marker = theme.Selected.Render("▸ ")
				name = theme.Selected.Render(c.Name)
			}
			line := marker + name + " " + style.Render(fmt.Sprintf("%d%%", c.Score))
			if c.Hint != "" {
				line += "  " + theme.Hint.Render(c.Hint)
			}
			b.WriteString("\n" + line)
			idx++
		}
	}
	return b.String()
}

// focusLine is the line offset of the cursor within renderSections.
func (s *SubjectScreen) focusLine(sv *viewmodel.SubjectView) int {
	line, idx := 0, 0
	for _, sec := range sv.Sections {
		line++
		if len(sec.Chapters) == 0 {
			line++
		}
		for range sec.Chapters {
			line++
			if idx == s.cursor {
				return line
			}
			idx++
		}
	}
	return line
}

// KeyHints returns the key binding hints for the footer.
func (s *SubjectScreen) KeyHints() []layout.KeyHint {
	hints := layout.HintsFromBindings(upKey, openKey)
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}
