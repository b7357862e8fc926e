package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mkobayashi/kanjidrill/internal/ui/theme"
)

// Brush-stroke glyphs for the bar track.
const (
	barFilled = "━"
	barEmpty  = "─"
)

// ProgressBar draws a one-line stroke bar with an optional label on
// the left and an optional percentage on the right.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(theme.Body.Render(p.Label))
		b.WriteString("  ")
	}

	suffix := ""
	if p.ShowPercent {
		suffix = fmt.Sprintf(" %3d%%", int(p.Percent*100))
	}

	track := p.Width - lipgloss.Width(b.String()) - lipgloss.Width(suffix)
	if track < 4 {
		track = 4
	}

	filled := int(float64(track) * p.Percent)
	if filled > track {
		filled = track
	}
	if filled < 0 {
		filled = 0
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render(strings.Repeat(barFilled, filled)))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat(barEmpty, track-filled)))

	if suffix != "" {
		b.WriteString(theme.Hint.Render(suffix))
	}
	return b.String()
}
