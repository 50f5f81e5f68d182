package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/reportcard/internal/nav"
	"github.com/abhisek/reportcard/internal/screen"
	"github.com/abhisek/reportcard/internal/ui/layout"
	"github.com/abhisek/reportcard/internal/ui/theme"
)

// PlaceholderScreen stands in for a detail screen whose key has no data.
type PlaceholderScreen struct {
	title   string
	message string
	route   nav.Screen
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a PlaceholderScreen shown at route.
func New(title, message string, route nav.Screen) *PlaceholderScreen {
	return &PlaceholderScreen{title: title, message: message, route: route}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("╌╌ " + p.title + " ╌╌\n\n" + theme.Hint.Render(p.message))

	return content
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}

func (p *PlaceholderScreen) Route() nav.Screen {
	return p.route
}

func (p *PlaceholderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}
