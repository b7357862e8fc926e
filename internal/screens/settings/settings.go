package settings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkobayashi/kanjidrill/internal/progress"
	"github.com/mkobayashi/kanjidrill/internal/router"
	"github.com/mkobayashi/kanjidrill/internal/screen"
	"github.com/mkobayashi/kanjidrill/internal/ui/layout"
	"github.com/mkobayashi/kanjidrill/internal/ui/theme"
)

const (
	fieldReadings = iota
	fieldChoices
	fieldMulti
	fieldMax
)

// SettingsScreen edits the study settings. Changes persist immediately.
type SettingsScreen struct {
	tracker *progress.Tracker
	focused int
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a new SettingsScreen.
func New(tracker *progress.Tracker) *SettingsScreen {
	return &SettingsScreen{tracker: tracker}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Field"},
		{Key: "←/→", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.focused > 0 {
			s.focused--
		}
	case "down", "j":
		if s.focused < fieldMax-1 {
			s.focused++
		}
	case "left", "h":
		s.adjust(-1)
	case "right", "l", "enter", " ":
		s.adjust(1)
	}

	return s, nil
}

func (s *SettingsScreen) adjust(delta int) {
	cur := s.tracker.Settings()
	switch s.focused {
	case fieldReadings:
		s.tracker.SetShowReadings(!cur.ShowReadings)
	case fieldChoices:
		s.tracker.SetChoiceCount(cur.ChoiceCount + delta)
	case fieldMulti:
		s.tracker.SetMultiTyping(!cur.MultiTyping)
	}
}

func (s *SettingsScreen) View(width, height int) string {
	cur := s.tracker.Settings()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Settings"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
		hint  string
	}{
		{"Show readings", onOff(cur.ShowReadings), "display かな readings under kanji prompts"},
		{"Choices per question", fmt.Sprintf("%d", cur.ChoiceCount), "options shown in multiple choice"},
		{"Multi-answer typing", onOff(cur.MultiTyping), "one slot per meaning for multi-sense characters"},
	}

	for i, row := range rows {
		line := fmt.Sprintf("%-22s %s", row.label, row.value)
		if i == s.focused {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Selected.Render("▸ "+line)))
			b.WriteString("\n")
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render(row.hint)))
		} else {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Unselected.Render("  "+line)))
			b.WriteString("\n")
		}
		b.WriteString("\n\n")
	}

	return lipgloss.NewStyle().Height(height).Render(b.String())
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
