package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkobayashi/kanjidrill/internal/catalog"
	"github.com/mkobayashi/kanjidrill/internal/progress"
	"github.com/mkobayashi/kanjidrill/internal/router"
	"github.com/mkobayashi/kanjidrill/internal/screen"
	"github.com/mkobayashi/kanjidrill/internal/store"
	"github.com/mkobayashi/kanjidrill/internal/ui/layout"
	"github.com/mkobayashi/kanjidrill/internal/ui/theme"
)

const recentSessionLimit = 5

// StatsScreen shows cumulative accuracy, the hardest characters, the
// per-section breakdown and recent sessions.
type StatsScreen struct {
	cat     *catalog.Catalog
	tracker *progress.Tracker
	events  store.EventRepo

	recent       []store.SessionEventData
	resetConfirm bool
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// recentLoadedMsg delivers the session history query result.
type recentLoadedMsg struct {
	sessions []store.SessionEventData
}

// New creates a new StatsScreen.
func New(cat *catalog.Catalog, tracker *progress.Tracker, events store.EventRepo) *StatsScreen {
	return &StatsScreen{
		cat:     cat,
		tracker: tracker,
		events:  events,
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sessions, err := s.events.RecentSessions(context.Background(), recentSessionLimit)
		if err != nil {
			return recentLoadedMsg{}
		}
		return recentLoadedMsg{sessions: sessions}
	}
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	if s.resetConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset everything"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Reset stats"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recentLoadedMsg:
		s.recent = msg.sessions
		return s, nil

	case tea.KeyMsg:
		key := msg.String()

		if s.resetConfirm {
			switch key {
			case "y", "Y":
				s.tracker.ResetStats()
				s.resetConfirm = false
			case "n", "N", "esc":
				s.resetConfirm = false
			}
			return s, nil
		}

		switch key {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r", "R":
			s.resetConfirm = true
		}
	}

	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.resetConfirm {
		content := theme.Title.Width(width).Render("Reset all statistics?") + "\n\n" +
			lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render("Stars are kept. This cannot be undone. [y]es / [n]o"))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	st := s.tracker.Stats()

	var b strings.Builder
	b.WriteString("\n")

	// Overview cards.
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Answered", fmt.Sprintf("%d", st.Total)),
		card("Correct", fmt.Sprintf("%d", st.Correct)),
		card("Accuracy", fmt.Sprintf("%.0f%%", st.Accuracy()*100)),
		card("Best streak", fmt.Sprintf("%d", st.BestStreak)),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, cards))
	b.WriteString("\n\n")

	left := s.renderHardest()
	right := s.renderSections()
	columns := lipgloss.JoinHorizontal(lipgloss.Top, left, "      ", right)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, columns))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderRecent()))

	return lipgloss.NewStyle().Height(height).Render(b.String())
}

func (s *StatsScreen) renderHardest() string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Hardest characters"))
	b.WriteString("\n")

	hardest := s.tracker.HardestItems(s.cat)
	if len(hardest) == 0 {
		b.WriteString(theme.Hint.Render("Not enough attempts yet."))
		return b.String()
	}

	for _, h := range hardest {
		b.WriteString(fmt.Sprintf("%s  %-18s %3.0f%% missed (%d tries)\n",
			h.Kanji, truncate(h.Meaning, 18), h.MissRate*100, h.Attempts))
	}
	return theme.Body.Render(b.String())
}

func (s *StatsScreen) renderSections() string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Sections"))
	b.WriteString("\n")

	reports := s.tracker.SectionReports()
	if len(reports) == 0 {
		b.WriteString(theme.Hint.Render("No answers recorded yet."))
		return b.String()
	}

	for _, r := range reports {
		b.WriteString(fmt.Sprintf("Section %-4s %4d answers  %3.0f%%\n",
			r.Section, r.Attempts, r.Accuracy*100))
	}
	return theme.Body.Render(b.String())
}

func (s *StatsScreen) renderRecent() string {
	if len(s.recent) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Recent sessions"))
	b.WriteString("\n")

	for _, ev := range s.recent {
		scope := "all"
		if ev.Section != "" {
			scope = ev.Section
		}
		if ev.StarredOnly {
			scope += " ★"
		}
		pct := 0.0
		if ev.Questions > 0 {
			pct = float64(ev.Correct) / float64(ev.Questions) * 100
		}
		b.WriteString(fmt.Sprintf("%s  %-8s %2d/%-3d %3.0f%%  ⚡%d\n",
			ev.Timestamp.Format("Jan 02 15:04"), scope, ev.Correct, ev.Questions, pct, ev.BestStreak))
	}
	return theme.Body.Render(b.String())
}

func card(label, value string) string {
	content := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(value) + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
	return theme.Card.Align(lipgloss.Center).Width(14).Render(content)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return "…"
	}
	return s[:n-1] + "…"
}
