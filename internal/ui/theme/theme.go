package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Brand     = lipgloss.Color("#48319D") // Deep Purple, scores
	Topper    = lipgloss.Color("#FFC94A") // Gold
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Score = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	TopperScore = lipgloss.NewStyle().
			Foreground(Topper).
			Bold(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(Border)

	Badge = lipgloss.NewStyle().
		Background(Topper).
		Foreground(BgDark).
		Bold(true).
		Padding(0, 1)

	Weak = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	TabActive = lipgloss.NewStyle().
			Background(Text).
			Foreground(Brand).
			Bold(true).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 2)
)

// Tier colors for the Needs, Moderate and Good chapter sections.
var (
	TierNeeds    = Error
	TierModerate = Warning
	TierGood     = Success
)

var iconColors = map[string]color.Color{
	"indigo": lipgloss.Color("#6366F1"),
	"pink":   lipgloss.Color("#EC4899"),
	"green":  lipgloss.Color("#22C55E"),
	"blue":   lipgloss.Color("#3B82F6"),
	"yellow": lipgloss.Color("#EAB308"),
	"purple": lipgloss.Color("#A855F7"),
	"teal":   lipgloss.Color("#14B8A6"),
	"orange": lipgloss.Color("#F97316"),
}

// IconColor maps a subject icon color key to a terminal color.
func IconColor(key string) color.Color {
	if c, ok := iconColors[key]; ok {
		return c
	}
	return TextDim
}
