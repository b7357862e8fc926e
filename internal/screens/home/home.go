package home

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkobayashi/kanjidrill/internal/catalog"
	"github.com/mkobayashi/kanjidrill/internal/config"
	"github.com/mkobayashi/kanjidrill/internal/progress"
	"github.com/mkobayashi/kanjidrill/internal/router"
	"github.com/mkobayashi/kanjidrill/internal/screen"
	"github.com/mkobayashi/kanjidrill/internal/screens/browse"
	"github.com/mkobayashi/kanjidrill/internal/screens/settings"
	"github.com/mkobayashi/kanjidrill/internal/screens/stats"
	"github.com/mkobayashi/kanjidrill/internal/screens/study"
	"github.com/mkobayashi/kanjidrill/internal/store"
	"github.com/mkobayashi/kanjidrill/internal/ui/components"
	"github.com/mkobayashi/kanjidrill/internal/ui/layout"
	"github.com/mkobayashi/kanjidrill/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu    components.Menu
	cat     *catalog.Catalog
	tracker *progress.Tracker
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(cat *catalog.Catalog, tracker *progress.Tracker, events store.EventRepo, cfg config.Config) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Study", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: study.New(cat, tracker, events, cfg)}
			}
		}},
		{Label: "Browse characters", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: browse.New(cat, tracker)}
			}
		}},
		{Label: "Statistics", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(cat, tracker, events)}
			}
		}},
		{Label: "Settings", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(tracker)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		cat:     cat,
		tracker: tracker,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "q" {
			return h, tea.Quit
		}
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("漢字ドリル")
	subtitle := theme.Subtitle.Width(width).Render("flashcard drills for kanji")

	st := h.tracker.Stats()
	statsLine := theme.Hint.Width(width).Align(lipgloss.Center).Render(
		fmt.Sprintf("%d characters    %d answers    ★ %d starred",
			h.cat.Len(), st.Total, h.tracker.StarredCount()))

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())

	content := "\n\n" + title + "\n" + subtitle + "\n\n" + statsLine + "\n\n\n" + menu

	return lipgloss.NewStyle().Height(height).Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Q", Description: "Quit"},
	}
}

