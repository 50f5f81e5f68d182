package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/reportcard/internal/ui/theme"
)

// Tab is one entry of a tab strip.
type Tab struct {
	Label  string
	Key    string
	Active bool
}

// Tabs renders a horizontal tab strip.
func Tabs(tabs []Tab) string {
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		label := t.Label
		if t.Key != "" {
			label = t.Key + " " + label
		}
		if t.Active {
			parts = append(parts, theme.TabActive.Render(label))
		} else {
			parts = append(parts, theme.TabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// TrendPoint is one labeled value on a 0..100 axis.
type TrendPoint struct {
	Label string
	Value int
}

// TrendChart renders points as vertical columns over a 0..100% axis with
// gridlines every 20%. height is the number of plot rows.
func TrendChart(points []TrendPoint, c color.Color, width, height int) string {
	if height < 2 {
		height = 2
	}
	const axisWidth = 5 // "100% "
	colWidth := 6
	if len(points) > 0 {
		if w := (width - axisWidth) / len(points); w < colWidth {
			colWidth = w
		}
	}
	if colWidth < 3 {
		colWidth = 3
	}

	bar := lipgloss.NewStyle().Foreground(c)
	grid := lipgloss.NewStyle().Foreground(theme.Border)
	axis := lipgloss.NewStyle().Foreground(theme.TextDim)

	var rows []string
	for r := height; r >= 1; r-- {
		top := r * 100 / height
		bottom := (r - 1) * 100 / height

		label := "     "
		if r == height || top%20 == 0 && top != bottom {
			label = fmt.Sprintf("%3d%% ", top)
		}

		var line strings.Builder
		line.WriteString(axis.Render(label))
		for _, p := range points {
			cell := strings.Repeat(" ", colWidth)
			switch {
			case p.Value >= top:
				cell = " " + strings.Repeat("█", colWidth-2) + " "
				cell = bar.Render(cell)
			case p.Value > bottom:
				cell = " " + strings.Repeat("▄", colWidth-2) + " "
				cell = bar.Render(cell)
			case top%20 == 0:
				cell = grid.Render(strings.Repeat("┄", colWidth))
			}
			line.WriteString(cell)
		}
		rows = append(rows, line.String())
	}

	var labels strings.Builder
	labels.WriteString(strings.Repeat(" ", axisWidth))
	for _, p := range points {
		labels.WriteString(axis.Width(colWidth).Align(lipgloss.Center).Render(p.Label))
	}
	var values strings.Builder
	values.WriteString(strings.Repeat(" ", axisWidth))
	for _, p := range points {
		values.WriteString(bar.Width(colWidth).Align(lipgloss.Center).Render(fmt.Sprintf("%d%%", p.Value)))
	}

	rows = append(rows, labels.String(), values.String())
	return strings.Join(rows, "\n")
}
