package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/mkobayashi/kanjidrill/internal/progress"
	"github.com/mkobayashi/kanjidrill/internal/quiz"
	"github.com/mkobayashi/kanjidrill/internal/router"
	"github.com/mkobayashi/kanjidrill/internal/screen"
	"github.com/mkobayashi/kanjidrill/internal/screens/summary"
	"github.com/mkobayashi/kanjidrill/internal/store"
	"github.com/mkobayashi/kanjidrill/internal/ui/components"
	"github.com/mkobayashi/kanjidrill/internal/ui/layout"
	"github.com/mkobayashi/kanjidrill/internal/ui/theme"
)

// instantAdvanceDelay is how long a correct answer stays on screen
// before auto-advancing.
const instantAdvanceDelay = 650 * time.Millisecond

// advanceTickMsg fires after the instant-advance delay. It carries the
// question index it was scheduled for so a tick that outlives its
// question is dropped instead of skipping the next one.
type advanceTickMsg struct {
	sessionID string
	index     int
}

// SessionScreen runs one active drill.
type SessionScreen struct {
	sess           *quiz.Session
	tracker        *progress.Tracker
	events         store.EventRepo
	instantAdvance bool

	sessionID string
	startedAt time.Time
	askedAt   time.Time

	choice   components.MultiChoice
	form     components.TypingForm
	feedback *quiz.Result

	quitConfirm bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New wraps an already built session.
func New(sess *quiz.Session, tracker *progress.Tracker, events store.EventRepo, instantAdvance bool) *SessionScreen {
	s := &SessionScreen{
		sess:           sess,
		tracker:        tracker,
		events:         events,
		instantAdvance: instantAdvance,
		sessionID:      uuid.New().String(),
		startedAt:      time.Now(),
	}
	s.mountQuestion()
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	filter := s.filter()
	_ = s.events.AppendSession(context.Background(), store.SessionEventData{
		SessionID:   s.sessionID,
		Action:      "start",
		Section:     filter.Section,
		StarredOnly: filter.StarredOnly,
		Questions:   s.sess.Total(),
	})

	if q := s.sess.Current(); q != nil && q.Style == quiz.StyleTyping {
		return s.form.Init()
	}
	return nil
}

func (s *SessionScreen) filter() quiz.Filter {
	return s.sess.Filter()
}

func (s *SessionScreen) Title() string {
	return "Session"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.feedback != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "`", Description: "Star"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	q := s.sess.Current()
	if q != nil && q.Style == quiz.StyleTyping {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Next slot"},
			{Key: "`", Description: "Star"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-6", Description: "Answer"},
		{Key: "↑/↓ Enter", Description: "Pick"},
		{Key: "`", Description: "Star"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceTickMsg:
		return s.handleAdvanceTick(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Typing input receives non-key messages too (cursor blink).
	if q := s.sess.Current(); q != nil && q.Style == quiz.StyleTyping && s.feedback == nil {
		var cmd tea.Cmd
		s.form, cmd = s.form.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *SessionScreen) handleAdvanceTick(msg advanceTickMsg) (screen.Screen, tea.Cmd) {
	// Stale ticks arrive after a manual advance or a new session; the
	// identity check makes them no-ops.
	q := s.sess.Current()
	if msg.sessionID != s.sessionID || q == nil || q.Index != msg.index || s.feedback == nil {
		return s, nil
	}
	return s.advance()
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			return s.end()
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.quitConfirm = true
		return s, nil
	case "`":
		if q := s.sess.Current(); q != nil {
			s.tracker.ToggleStar(q.Item.ID)
		}
		return s, nil
	}

	// Feedback showing: enter or space moves on.
	if s.feedback != nil {
		if key == "enter" || key == " " {
			return s.advance()
		}
		return s, nil
	}

	q := s.sess.Current()
	if q == nil {
		return s, nil
	}

	if q.Style == quiz.StyleMultipleChoice {
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			return s.submitChoice()
		}
		return s, cmd
	}

	// Typing.
	if key == "enter" {
		return s.submitTyping()
	}
	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return s, cmd
}

func (s *SessionScreen) submitChoice() (screen.Screen, tea.Cmd) {
	q := s.sess.Current()
	if q == nil || q.Pack == nil {
		return s, nil
	}

	chosenIdx := -1
	for i, opt := range q.Pack.Options {
		if opt == s.choice.Chosen {
			chosenIdx = i
			break
		}
	}

	res, ok := s.sess.SubmitChoice(chosenIdx)
	if !ok {
		return s, nil
	}
	s.afterGrade(q, s.choice.Chosen, res)

	if res.Correct && s.instantAdvance {
		return s, s.advanceTick(q.Index)
	}
	return s, nil
}

func (s *SessionScreen) submitTyping() (screen.Screen, tea.Cmd) {
	q := s.sess.Current()
	if q == nil {
		return s, nil
	}

	inputs := s.form.Values()
	res, ok := s.sess.SubmitTyping(inputs)
	if !ok {
		return s, nil
	}
	s.form.Submit(res.Correct)
	s.afterGrade(q, strings.Join(inputs, "; "), res)

	// Typed answers always wait for an explicit next, even when
	// instant advance is on. The timer is a multiple-choice affordance.
	return s, nil
}

// afterGrade stores the feedback and appends the answer event.
func (s *SessionScreen) afterGrade(q *quiz.Question, given string, res quiz.Result) {
	s.feedback = &res

	_ = s.events.AppendAnswer(context.Background(), store.AnswerEventData{
		SessionID:   s.sessionID,
		ItemID:      q.Item.ID,
		Section:     q.Item.Section,
		Mode:        string(q.Mode),
		AnswerStyle: string(q.Style),
		Given:       given,
		Expected:    res.Expected,
		Correct:     res.Correct,
		TimeMs:      int(time.Since(s.askedAt).Milliseconds()),
	})
}

func (s *SessionScreen) advanceTick(index int) tea.Cmd {
	id := s.sessionID
	return tea.Tick(instantAdvanceDelay, func(time.Time) tea.Msg {
		return advanceTickMsg{sessionID: id, index: index}
	})
}

func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	s.feedback = nil
	if !s.sess.Advance() {
		return s.end()
	}
	s.mountQuestion()
	if q := s.sess.Current(); q != nil && q.Style == quiz.StyleTyping {
		return s, s.form.Init()
	}
	return s, nil
}

// mountQuestion rebuilds the answer component for the current question.
func (s *SessionScreen) mountQuestion() {
	q := s.sess.Current()
	if q == nil {
		return
	}
	s.askedAt = time.Now()
	if q.Style == quiz.StyleMultipleChoice {
		s.choice = components.NewMultiChoice(q.Pack.Options, q.Pack.Correct)
	} else {
		placeholder := "meaning"
		if q.Mode == quiz.ModeMeaningToKanji {
			placeholder = "kanji"
		}
		s.form = components.NewTypingForm(q.Slots, placeholder)
	}
}

// end finishes the session, records the end event and shows the
// summary.
func (s *SessionScreen) end() (screen.Screen, tea.Cmd) {
	s.sess.Stop()
	sum := s.sess.Summarize()
	filter := s.filter()

	_ = s.events.AppendSession(context.Background(), store.SessionEventData{
		SessionID:    s.sessionID,
		Action:       "end",
		Section:      filter.Section,
		StarredOnly:  filter.StarredOnly,
		Questions:    sum.Questions,
		Correct:      sum.Correct,
		BestStreak:   sum.BestStreak,
		DurationSecs: int(time.Since(s.startedAt).Seconds()),
	})

	warning := ""
	if s.tracker.SaveErr() != nil {
		warning = "Progress could not be saved this session."
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum, time.Since(s.startedAt), warning)}
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.quitConfirm {
		return s.renderQuitConfirm(width, height)
	}

	q := s.sess.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	// Progress line.
	percent := float64(q.Index) / float64(q.Total)
	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", q.Index+1, q.Total),
		percent, false, min(width-8, 56))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))

	streak := s.sess.Streak()
	if streak >= 2 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("⚡ streak %d", streak))))
	}
	b.WriteString("\n\n")

	// Prompt. Kanji prompts render big and centered.
	mainStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if q.Mode == quiz.ModeKanjiToMeaning {
		mainStyle = mainStyle.Foreground(theme.Primary)
	}
	star := ""
	if s.tracker.IsStarred(q.Item.ID) {
		star = lipgloss.NewStyle().Foreground(theme.Accent).Render(" ★")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		mainStyle.Render(q.Prompt.Main)+star))
	b.WriteString("\n")
	if q.Prompt.Sub != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(q.Prompt.Sub)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Answer area.
	if q.Style == quiz.StyleMultipleChoice {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	} else {
		if q.MultiActive {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render(fmt.Sprintf("This character has %d meanings. Enter each one.", q.Slots))))
			b.WriteString("\n\n")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.form.View()))
	}

	// Feedback line.
	if s.feedback != nil {
		b.WriteString("\n")
		if s.feedback.Correct {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Correct.Render("✓ Correct!")))
		} else {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Incorrect.Render("✗ Wrong")+
					theme.Hint.Render("  answer: "+s.feedback.Expected)))
		}
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Height(height).Render(b.String())
}

func (s *SessionScreen) renderQuitConfirm(width, height int) string {
	content := theme.Title.Width(width).Render("End this session?") + "\n\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Progress so far is kept. [y]es / [n]o"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
