package study

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkobayashi/kanjidrill/internal/catalog"
	"github.com/mkobayashi/kanjidrill/internal/config"
	"github.com/mkobayashi/kanjidrill/internal/progress"
	"github.com/mkobayashi/kanjidrill/internal/quiz"
	"github.com/mkobayashi/kanjidrill/internal/router"
	"github.com/mkobayashi/kanjidrill/internal/screen"
	sessionscreen "github.com/mkobayashi/kanjidrill/internal/screens/session"
	"github.com/mkobayashi/kanjidrill/internal/store"
	"github.com/mkobayashi/kanjidrill/internal/ui/layout"
	"github.com/mkobayashi/kanjidrill/internal/ui/theme"
)

// Form fields, top to bottom.
const (
	fieldSection = iota
	fieldStarred
	fieldMode
	fieldStyle
	fieldCount
	fieldInstant
	fieldStart
	fieldMax
)

var modeCycle = []quiz.Mode{quiz.ModeKanjiToMeaning, quiz.ModeMeaningToKanji, quiz.ModeMixed}
var styleCycle = []quiz.Style{quiz.StyleMultipleChoice, quiz.StyleTyping, quiz.StyleMixed}

// StudyScreen is the session setup form.
type StudyScreen struct {
	cat     *catalog.Catalog
	tracker *progress.Tracker
	events  store.EventRepo

	sections       []string // "all" followed by real sections
	sectionIdx     int
	starredOnly    bool
	modeIdx        int
	styleIdx       int
	autoCount      bool
	count          int
	instantAdvance bool
	focused        int
	errMsg         string
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates the setup form with defaults.
func New(cat *catalog.Catalog, tracker *progress.Tracker, events store.EventRepo, cfg config.Config) *StudyScreen {
	sections := append([]string{quiz.SectionAll}, cat.Sections()...)
	return &StudyScreen{
		cat:            cat,
		tracker:        tracker,
		events:         events,
		sections:       sections,
		autoCount:      true,
		count:          20,
		instantAdvance: cfg.InstantAdvance,
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return nil
}

func (s *StudyScreen) Title() string {
	return "Study"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Field"},
		{Key: "←/→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "S", Description: "Starred run"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
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
		s.cycle(-1)
	case "right", "l":
		s.cycle(1)
	case "s", "S":
		return s.start(quiz.Filter{Section: quiz.SectionAll, StarredOnly: true})
	case "enter":
		return s.start(quiz.Filter{
			Section:     s.sections[s.sectionIdx],
			StarredOnly: s.starredOnly,
		})
	case " ":
		if s.focused == fieldStart {
			return s.start(quiz.Filter{
				Section:     s.sections[s.sectionIdx],
				StarredOnly: s.starredOnly,
			})
		}
		s.cycle(1)
	}

	return s, nil
}

// cycle moves the focused field's value by delta.
func (s *StudyScreen) cycle(delta int) {
	s.errMsg = ""
	switch s.focused {
	case fieldSection:
		s.sectionIdx = wrap(s.sectionIdx+delta, len(s.sections))
	case fieldStarred:
		s.starredOnly = !s.starredOnly
	case fieldMode:
		s.modeIdx = wrap(s.modeIdx+delta, len(modeCycle))
	case fieldStyle:
		s.styleIdx = wrap(s.styleIdx+delta, len(styleCycle))
	case fieldCount:
		if s.autoCount {
			// Leaving auto picks up from the auto value.
			s.autoCount = false
			s.count = s.autoQuestionCount()
			return
		}
		next := s.count + delta*5
		if next < quiz.MinQuestions {
			// Below the minimum wraps back to auto.
			s.autoCount = true
			return
		}
		s.count = quiz.ClampCount(next)
	case fieldInstant:
		s.instantAdvance = !s.instantAdvance
	}
}

func (s *StudyScreen) autoQuestionCount() int {
	pool := quiz.BuildPool(s.cat.Items(), quiz.Filter{
		Section:     s.sections[s.sectionIdx],
		StarredOnly: s.starredOnly,
	}, s.tracker.IsStarred)
	return quiz.AutoCount(len(pool))
}

// start builds the session and navigates to it, or surfaces an empty
// pool inline.
func (s *StudyScreen) start(filter quiz.Filter) (screen.Screen, tea.Cmd) {
	pool := quiz.BuildPool(s.cat.Items(), filter, s.tracker.IsStarred)
	if len(pool) == 0 {
		if filter.StarredOnly {
			s.errMsg = "No starred characters yet. Star some in Browse first."
		} else {
			s.errMsg = "No characters match this selection."
		}
		return s, nil
	}

	count := quiz.AutoCount(len(pool))
	if !s.autoCount {
		count = quiz.ClampCount(s.count)
	}

	cfg := quiz.Config{
		Mode:   modeCycle[s.modeIdx],
		Style:  styleCycle[s.styleIdx],
		Filter: filter,
		Count:  count,
	}

	resolver := quiz.NewResolver(rand.NewSource(time.Now().UnixNano()))
	deps := quiz.Deps{
		Items:    s.cat.Items(),
		Recorder: s.tracker,
		Settings: func() quiz.Settings {
			ps := s.tracker.Settings()
			return quiz.Settings{
				ShowReadings: ps.ShowReadings,
				ChoiceCount:  ps.ChoiceCount,
				MultiTyping:  ps.MultiTyping,
			}
		},
		Excluded: s.tracker.MultiTypingExcluded,
	}

	sess, err := quiz.NewSession(cfg, pool, resolver, deps)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	return s, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: sessionscreen.New(sess, s.tracker, s.events, s.instantAdvance),
		}
	}
}

func (s *StudyScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Set up your drill"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Section", sectionLabel(s.sections[s.sectionIdx])},
		{"Starred only", onOff(s.starredOnly)},
		{"Direction", modeLabel(modeCycle[s.modeIdx])},
		{"Answer style", styleLabel(styleCycle[s.styleIdx])},
		{"Questions", s.countLabel()},
		{"Instant advance", onOff(s.instantAdvance)},
		{"Start", ""},
	}

	for i, row := range rows {
		line := fmt.Sprintf("%-14s %s", row.label, row.value)
		if i == fieldStart {
			line = "▶ Start session"
		}
		if i == s.focused {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Selected.Render("▸ "+line)))
		} else {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Unselected.Render("  "+line)))
		}
		b.WriteString("\n\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(s.errMsg)))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Height(height).Render(b.String())
}

func (s *StudyScreen) countLabel() string {
	if s.autoCount {
		return fmt.Sprintf("auto (%d)", s.autoQuestionCount())
	}
	return fmt.Sprintf("%d", s.count)
}

func sectionLabel(sec string) string {
	if sec == quiz.SectionAll {
		return "All sections"
	}
	return "Section " + sec
}

func modeLabel(m quiz.Mode) string {
	switch m {
	case quiz.ModeKanjiToMeaning:
		return "Kanji → meaning"
	case quiz.ModeMeaningToKanji:
		return "Meaning → kanji"
	default:
		return "Mixed"
	}
}

func styleLabel(st quiz.Style) string {
	switch st {
	case quiz.StyleMultipleChoice:
		return "Multiple choice"
	case quiz.StyleTyping:
		return "Typing"
	default:
		return "Mixed"
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
