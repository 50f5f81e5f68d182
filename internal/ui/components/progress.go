package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/reportcard/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64 // 0..100
	ShowPercent bool
	Width       int
	Color       color.Color
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int, c color.Color) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
		Color:       c,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := cells(p.Percent, barWidth)
	empty := barWidth - filled

	fill := p.Color
	if fill == nil {
		fill = theme.Secondary
	}
	result += lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent+0.5)))
	}

	return result
}

// cells converts a 0..100 percentage into a clamped cell count.
func cells(percent float64, width int) int {
	n := int(float64(width)*percent/100 + 0.5)
	if n > width {
		return width
	}
	if n < 0 {
		return 0
	}
	return n
}

// Segment is one slice of a StackedBar.
type Segment struct {
	Percent float64
	Color   color.Color
}

// StackedBar renders segments side by side in width cells. Segments are not
// normalized; any remainder is drawn empty.
func StackedBar(segments []Segment, width int) string {
	var b strings.Builder
	used := 0
	for _, s := range segments {
		n := cells(s.Percent, width)
		if used+n > width {
			n = width - used
		}
		b.WriteString(lipgloss.NewStyle().Background(s.Color).Render(strings.Repeat(" ", n)))
		used += n
	}
	if used < width {
		b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", width-used)))
	}
	return b.String()
}
