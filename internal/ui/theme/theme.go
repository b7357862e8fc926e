package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, calm ink-and-paper tones with a vermilion accent.
var (
	Primary   = lipgloss.Color("#E0572F") // Vermilion
	Secondary = lipgloss.Color("#2F9E8F") // Pine teal
	Accent    = lipgloss.Color("#D4A23C") // Gold ochre
	Success   = lipgloss.Color("#4CAF6E") // Moss green
	Error     = lipgloss.Color("#D94F5C") // Crimson
	Text      = lipgloss.Color("#F4F1EA") // Paper white
	TextDim   = lipgloss.Color("#8C8A85") // Stone grey
	BgDark    = lipgloss.Color("#14141A") // Sumi black
	BgCard    = lipgloss.Color("#22222B") // Charcoal
	Border    = lipgloss.Color("#3A3A46") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
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
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
