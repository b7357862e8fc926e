package browse

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkobayashi/kanjidrill/internal/catalog"
	"github.com/mkobayashi/kanjidrill/internal/progress"
	"github.com/mkobayashi/kanjidrill/internal/router"
	"github.com/mkobayashi/kanjidrill/internal/screen"
	"github.com/mkobayashi/kanjidrill/internal/ui/layout"
	"github.com/mkobayashi/kanjidrill/internal/ui/theme"
)

// BrowseScreen lists the catalog with search, starring and per-item
// typing-mode control.
type BrowseScreen struct {
	cat     *catalog.Catalog
	tracker *progress.Tracker

	search    textinput.Model
	searching bool
	items     []catalog.Item
	selected  int
	offset    int
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)

// New creates a new BrowseScreen showing the whole catalog.
func New(cat *catalog.Catalog, tracker *progress.Tracker) *BrowseScreen {
	ti := textinput.New()
	ti.Placeholder = "kanji, meaning or reading"
	ti.CharLimit = 40
	ti.SetWidth(32)

	return &BrowseScreen{
		cat:     cat,
		tracker: tracker,
		search:  ti,
		items:   cat.Items(),
	}
}

func (b *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (b *BrowseScreen) Title() string {
	return "Browse"
}

func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	if b.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Move"},
		{Key: "S", Description: "Star"},
		{Key: "M", Description: "Single-answer typing"},
		{Key: "/", Description: "Search"},
		{Key: "Esc", Description: "Back"},
	}
}

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if b.searching {
			var cmd tea.Cmd
			b.search, cmd = b.search.Update(msg)
			return b, cmd
		}
		return b, nil
	}

	if b.searching {
		switch kmsg.String() {
		case "enter":
			b.searching = false
			b.search.Blur()
			return b, nil
		case "esc":
			b.searching = false
			b.search.Blur()
			b.search.SetValue("")
			b.refilter()
			return b, nil
		}
		var cmd tea.Cmd
		b.search, cmd = b.search.Update(msg)
		b.refilter()
		return b, cmd
	}

	switch kmsg.String() {
	case "esc", "q":
		return b, func() tea.Msg { return router.PopScreenMsg{} }
	case "/":
		b.searching = true
		return b, b.search.Focus()
	case "up", "k":
		if b.selected > 0 {
			b.selected--
		}
	case "down", "j":
		if b.selected < len(b.items)-1 {
			b.selected++
		}
	case "s", "S":
		if it, ok := b.current(); ok {
			b.tracker.ToggleStar(it.ID)
		}
	case "m", "M":
		if it, ok := b.current(); ok && catalog.HasMultipleMeanings(it) {
			b.tracker.SetMultiTypingExcluded(it.ID, !b.tracker.MultiTypingExcluded(it.ID))
		}
	}

	return b, nil
}

func (b *BrowseScreen) current() (catalog.Item, bool) {
	if b.selected < 0 || b.selected >= len(b.items) {
		return catalog.Item{}, false
	}
	return b.items[b.selected], true
}

func (b *BrowseScreen) refilter() {
	b.items = b.cat.Search(b.search.Value())
	if b.selected >= len(b.items) {
		b.selected = len(b.items) - 1
	}
	if b.selected < 0 {
		b.selected = 0
	}
	b.offset = 0
}

func (b *BrowseScreen) View(width, height int) string {
	var sb strings.Builder

	searchLabel := theme.Hint.Render("Search: ")
	sb.WriteString("  " + searchLabel + b.search.View() + "\n\n")

	visible := height - 5
	if visible < 1 {
		visible = 1
	}

	// Keep the selection in the window.
	if b.selected < b.offset {
		b.offset = b.selected
	}
	if b.selected >= b.offset+visible {
		b.offset = b.selected - visible + 1
	}

	stats := b.tracker.Stats()

	end := b.offset + visible
	if end > len(b.items) {
		end = len(b.items)
	}

	for i := b.offset; i < end; i++ {
		sb.WriteString(b.renderRow(b.items[i], i == b.selected, stats, width))
		sb.WriteString("\n")
	}

	if len(b.items) == 0 {
		sb.WriteString("  " + theme.Hint.Render("No characters match."))
		sb.WriteString("\n")
	}

	return lipgloss.NewStyle().Height(height).Render(sb.String())
}

func (b *BrowseScreen) renderRow(it catalog.Item, selected bool, stats progress.Stats, width int) string {
	star := "  "
	if b.tracker.IsStarred(it.ID) {
		star = lipgloss.NewStyle().Foreground(theme.Accent).Render("★ ")
	}

	tallyStr := "     "
	if tally, ok := stats.ByItem[it.ID]; ok && tally.Attempts() > 0 {
		tallyStr = fmt.Sprintf("%2d/%-2d", tally.Correct, tally.Attempts())
	}

	single := " "
	if catalog.HasMultipleMeanings(it) && b.tracker.MultiTypingExcluded(it.ID) {
		single = "¹"
	}

	readings := strings.Join(it.Readings, " ")
	line := fmt.Sprintf("%s%s %s  §%s  %s  %s  %s",
		star, it.Kanji, single, it.Section, tallyStr, it.Meaning, theme.Hint.Render(readings))

	if selected {
		return theme.Selected.Render("▸ " + line)
	}
	return theme.Unselected.Render("  " + line)
}
