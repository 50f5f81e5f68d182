package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/reportcard/internal/ui/theme"
)

// Dropdown is an expanded option list for one filter control. While it is
// open it receives every key before its screen does.
type Dropdown struct {
	Label    string
	Options  []string
	Selected int
	OnPick   func(value string) tea.Cmd
	OnClose  func() tea.Cmd
}

// NewDropdown creates a dropdown with the cursor on current.
func NewDropdown(label string, options []string, current string, onPick func(string) tea.Cmd, onClose func() tea.Cmd) Dropdown {
	selected := 0
	for i, o := range options {
		if o == current {
			selected = i
			break
		}
	}
	return Dropdown{
		Label:    label,
		Options:  options,
		Selected: selected,
		OnPick:   onPick,
		OnClose:  onClose,
	}
}

// Update handles option navigation. Enter picks the highlighted option;
// any other key closes the list.
func (d Dropdown) Update(msg tea.Msg) (Dropdown, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if d.Selected > 0 {
			d.Selected--
		}
	case "down", "j":
		if d.Selected < len(d.Options)-1 {
			d.Selected++
		}
	case "enter":
		if d.Selected >= 0 && d.Selected < len(d.Options) && d.OnPick != nil {
			return d, d.OnPick(d.Options[d.Selected])
		}
	default:
		if d.OnClose != nil {
			return d, d.OnClose()
		}
	}
	return d, nil
}

// View renders the option list.
func (d Dropdown) View() string {
	var s string
	for i, o := range d.Options {
		if i == d.Selected {
			s += lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ "+o) + "\n"
		} else {
			s += lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+o) + "\n"
		}
	}
	return theme.Card.Render(s)
}
