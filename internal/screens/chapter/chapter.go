// Package chapter is the chapter detail screen.
package chapter

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/reportcard/internal/nav"
	"github.com/abhisek/reportcard/internal/screen"
	"github.com/abhisek/reportcard/internal/ui/layout"
	"github.com/abhisek/reportcard/internal/ui/theme"
	"github.com/abhisek/reportcard/internal/viewmodel"
)

var (
	upKey   = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Scroll"))
	downKey = key.NewBinding(key.WithKeys("down", "j"))
)

// ChapterScreen shows class stats, topic scores, weak areas and videos for
// one chapter. It has no selectable items; up and down scroll.
type ChapterScreen struct {
	src    viewmodel.Source
	offset int
	lines  int
	height int
}

var _ screen.Screen = (*ChapterScreen)(nil)

// New creates the chapter screen reading from src.
func New(src viewmodel.Source) *ChapterScreen {
	return &ChapterScreen{src: src}
}

func (c *ChapterScreen) Init() tea.Cmd {
	return nil
}

func (c *ChapterScreen) Title() string {
	if cv := c.src.View().Chapter; cv != nil {
		return cv.Subject + " › " + cv.Name
	}
	return "Chapter"
}

func (c *ChapterScreen) Route() nav.Screen {
	return nav.ScreenChapter
}

func (c *ChapterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}
	switch {
	case key.Matches(kmsg, upKey):
		if c.offset > 0 {
			c.offset--
		}
	case key.Matches(kmsg, downKey):
		if c.offset < c.maxOffset() {
			c.offset++
		}
	}
	return c, nil
}

// maxOffset is the last scroll position that still fills the viewport.
// Before the first render it allows any offset.
func (c *ChapterScreen) maxOffset() int {
	if c.height == 0 {
		return c.offset + 1
	}
	if m := c.lines - c.height; m > 0 {
		return m
	}
	return 0
}

func (c *ChapterScreen) View(width, height int) string {
	cv := c.src.View().Chapter
	if cv == nil || cv.Missing {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Hint.Render("No data for this chapter."))
	}

	content := lipgloss.NewStyle().PaddingLeft(2).Render(render(cv, width-4))
	lines := strings.Split(content, "\n")
	c.lines, c.height = len(lines), height
	if c.offset > c.maxOffset() {
		c.offset = c.maxOffset()
	}
	// Clip keeps the focus line as the last visible row.
	return layout.Clip(content, height, c.offset+height-1)
}

func render(cv *viewmodel.ChapterView, cw int) string {
	if cw > 96 {
		cw = 96
	}
	var sections []string

	head := theme.Title.Render(cv.Name) + "  " + theme.Score.Render(fmt.Sprintf("%d%%", cv.Score))
	if cv.Hint != "" {
		head += "\n" + theme.Hint.Render(cv.Hint)
	}
	sections = append(sections, head)

	cs := cv.ClassStats
	stat := func(label string, n int) string {
		return theme.Card.Width(cw/3 - 2).Render(theme.Subtitle.Render(label) + "\n" + theme.Section.Render(fmt.Sprintf("%d", n)))
	}
	sections = append(sections, theme.Section.Render("Class Stats")+"\n"+
		lipgloss.JoinHorizontal(lipgloss.Top,
			stat("Total Classes", cs.TotalClasses), " ",
			stat("Attended", cs.Attended), " ",
			stat("Absent", cs.Absent)))

	sections = append(sections,
		topics("MCQ Topics", cv.MCQTopics, cw),
		topics("CQ Topics", cv.CQTopics, cw),
	)

	if len(cv.WeakAreas) > 0 {
		var b strings.Builder
		b.WriteString(theme.Section.Render("Weak Areas"))
		for _, w := range cv.WeakAreas {
			b.WriteString("\n" + theme.Weak.Render("• ") + theme.Body.Render(w))
		}
		sections = append(sections, b.String())
	}

	if len(cv.Videos) > 0 {
		var b strings.Builder
		b.WriteString(theme.Section.Render("Recommended Videos"))
		for _, v := range cv.Videos {
			b.WriteString("\n" + theme.Selected.Render("▶ ") + theme.Body.Render(v))
		}
		sections = append(sections, b.String())
	}

	return strings.Join(sections, "\n\n")
}

func topics(title string, rows []viewmodel.TopicRow, cw int) string {
	var b strings.Builder
	b.WriteString(theme.Section.Render(title))
	if len(rows) == 0 {
		b.WriteString("\n" + theme.Hint.Render("No topics"))
		return b.String()
	}
	nameW := cw - 12
	for _, r := range rows {
		name := theme.Body.Render(r.Name)
		score := theme.Score.Render(r.Score)
		if r.Weak {
			name = theme.Weak.Render(r.Name)
			score = theme.Weak.Render(r.Score + " weak")
		}
		pad := nameW - lipgloss.Width(name)
		if pad < 1 {
			pad = 1
		}
		b.WriteString("\n" + name + strings.Repeat(" ", pad) + score)
	}
	return b.String()
}

// KeyHints returns the key binding hints for the footer.
func (c *ChapterScreen) KeyHints() []layout.KeyHint {
	hints := layout.HintsFromBindings(upKey)
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}
