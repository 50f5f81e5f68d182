package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/reportcard/internal/nav"
	"github.com/abhisek/reportcard/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string

	// Route is the navigation state this screen presents.
	Route() nav.Screen
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Emit wraps msg in a command. Screens use it to hand view-model events to
// the root model.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
