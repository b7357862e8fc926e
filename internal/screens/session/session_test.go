package session

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mkobayashi/kanjidrill/internal/catalog"
	"github.com/mkobayashi/kanjidrill/internal/progress"
	"github.com/mkobayashi/kanjidrill/internal/quiz"
	"github.com/mkobayashi/kanjidrill/internal/store"
)

// memPrefs is an in-memory store.PrefRepo.
type memPrefs struct {
	values map[string]json.RawMessage
}

func (m *memPrefs) Load(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := m.values[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, nil
	}
	return true, nil
}

func (m *memPrefs) Save(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = raw
	return nil
}

func (m *memPrefs) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

// memEvents records appended events.
type memEvents struct {
	answers  []store.AnswerEventData
	sessions []store.SessionEventData
}

func (m *memEvents) AppendAnswer(_ context.Context, d store.AnswerEventData) error {
	m.answers = append(m.answers, d)
	return nil
}

func (m *memEvents) AppendSession(_ context.Context, d store.SessionEventData) error {
	m.sessions = append(m.sessions, d)
	return nil
}

func (m *memEvents) RecentSessions(context.Context, int) ([]store.SessionEventData, error) {
	return nil, nil
}

func fixtureItems(n int) []catalog.Item {
	items := make([]catalog.Item, n)
	for i := range items {
		items[i] = catalog.Item{
			ID:      fmt.Sprintf("k%d", i),
			Kanji:   fmt.Sprintf("字%d", i),
			Meaning: fmt.Sprintf("meaning %d", i),
			Section: "1",
		}
	}
	return items
}

func newTestScreen(t *testing.T, instantAdvance bool) (*SessionScreen, *memEvents) {
	t.Helper()
	return newStyledScreen(t, quiz.StyleMultipleChoice, instantAdvance)
}

func newStyledScreen(t *testing.T, style quiz.Style, instantAdvance bool) (*SessionScreen, *memEvents) {
	t.Helper()

	prefs := &memPrefs{values: make(map[string]json.RawMessage)}
	tracker, err := progress.Load(context.Background(), prefs)
	if err != nil {
		t.Fatalf("load tracker: %v", err)
	}

	items := fixtureItems(8)
	cfg := quiz.Config{
		Mode:   quiz.ModeKanjiToMeaning,
		Style:  style,
		Filter: quiz.Filter{Section: quiz.SectionAll},
		Count:  5,
	}
	deps := quiz.Deps{
		Items:    items,
		Recorder: tracker,
		Settings: func() quiz.Settings { return quiz.Settings{ChoiceCount: 4} },
		Excluded: func(string) bool { return false },
	}
	sess, err := quiz.NewSession(cfg, items, quiz.NewResolver(rand.NewSource(17)), deps)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	events := &memEvents{}
	scr := New(sess, tracker, events, instantAdvance)
	scr.Init()
	return scr, events
}

func pressKey(scr *SessionScreen, key rune) *SessionScreen {
	next, _ := scr.Update(tea.KeyPressMsg{Code: key, Text: string(key)})
	return next.(*SessionScreen)
}

func pressSpecial(scr *SessionScreen, code rune) *SessionScreen {
	next, _ := scr.Update(tea.KeyPressMsg{Code: code})
	return next.(*SessionScreen)
}

func submitCorrect(t *testing.T, scr *SessionScreen) *SessionScreen {
	t.Helper()
	q := scr.sess.Current()
	if q == nil || q.Pack == nil {
		t.Fatal("expected a multiple-choice question")
	}
	for i, opt := range q.Pack.Options {
		if opt == q.Pack.Correct {
			return pressKey(scr, rune('1'+i))
		}
	}
	t.Fatal("correct option not found")
	return scr
}

func TestInitRecordsStartEvent(t *testing.T) {
	_, events := newTestScreen(t, false)

	if len(events.sessions) != 1 {
		t.Fatalf("expected 1 session event, got %d", len(events.sessions))
	}
	if events.sessions[0].Action != "start" {
		t.Errorf("expected start action, got %q", events.sessions[0].Action)
	}
	if events.sessions[0].Questions != 5 {
		t.Errorf("expected 5 planned questions, got %d", events.sessions[0].Questions)
	}
}

func TestAnswerRecordsEvent(t *testing.T) {
	scr, events := newTestScreen(t, false)

	scr = submitCorrect(t, scr)

	if len(events.answers) != 1 {
		t.Fatalf("expected 1 answer event, got %d", len(events.answers))
	}
	ev := events.answers[0]
	if !ev.Correct {
		t.Error("expected correct answer event")
	}
	if ev.Mode != "k2m" || ev.AnswerStyle != "mc" {
		t.Errorf("unexpected mode/style %q/%q", ev.Mode, ev.AnswerStyle)
	}
	if scr.feedback == nil {
		t.Error("expected feedback showing after grade")
	}
}

func TestStaleAdvanceTickIgnored(t *testing.T) {
	scr, _ := newTestScreen(t, true)

	scr = submitCorrect(t, scr)
	idx := scr.sess.Current().Index

	// A tick for a different question index must not advance.
	next, _ := scr.Update(advanceTickMsg{sessionID: scr.sessionID, index: idx + 1})
	scr = next.(*SessionScreen)
	if scr.sess.Current().Index != idx {
		t.Fatal("stale tick advanced the session")
	}

	// A tick from another run of the screen must not advance either.
	next, _ = scr.Update(advanceTickMsg{sessionID: "other", index: idx})
	scr = next.(*SessionScreen)
	if scr.sess.Current().Index != idx {
		t.Fatal("foreign tick advanced the session")
	}

	// The matching tick advances.
	next, _ = scr.Update(advanceTickMsg{sessionID: scr.sessionID, index: idx})
	scr = next.(*SessionScreen)
	if scr.sess.Current().Index != idx+1 {
		t.Errorf("expected advance to %d, at %d", idx+1, scr.sess.Current().Index)
	}
	if scr.feedback != nil {
		t.Error("expected feedback cleared after advance")
	}
}

func TestTickAfterManualAdvanceIgnored(t *testing.T) {
	scr, _ := newTestScreen(t, true)

	scr = submitCorrect(t, scr)
	idx := scr.sess.Current().Index

	// Manual advance beats the timer.
	scr = pressSpecial(scr, tea.KeyEnter)
	if scr.sess.Current().Index != idx+1 {
		t.Fatalf("expected manual advance, at %d", scr.sess.Current().Index)
	}

	// The late tick for the old question is dropped: feedback is nil
	// and the index check fails.
	next, _ := scr.Update(advanceTickMsg{sessionID: scr.sessionID, index: idx})
	scr = next.(*SessionScreen)
	if scr.sess.Current().Index != idx+1 {
		t.Error("late tick advanced past the current question")
	}
}

func TestTypingNeverSchedulesInstantAdvance(t *testing.T) {
	scr, _ := newStyledScreen(t, quiz.StyleTyping, true)

	q := scr.sess.Current()
	for _, r := range q.Item.Meaning {
		scr = pressKey(scr, r)
	}
	next, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	scr = next.(*SessionScreen)

	if scr.feedback == nil || !scr.feedback.Correct {
		t.Fatal("expected a correct typed submission")
	}
	if cmd != nil {
		t.Error("typed answer must wait for an explicit next, got a command")
	}
	if scr.sess.Current().Index != q.Index {
		t.Error("typed answer advanced without an explicit next")
	}
}

func TestQuitConfirmFlow(t *testing.T) {
	scr, events := newTestScreen(t, false)

	next, _ := scr.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	scr = next.(*SessionScreen)
	if !scr.quitConfirm {
		t.Fatal("expected quit confirmation after esc")
	}

	// n keeps going.
	scr = pressKey(scr, 'n')
	if scr.quitConfirm {
		t.Fatal("expected n to dismiss the confirmation")
	}

	// esc then y ends the session and records the end event.
	next, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	scr = next.(*SessionScreen)
	scr = pressKey(scr, 'y')

	if len(events.sessions) != 2 {
		t.Fatalf("expected start+end events, got %d", len(events.sessions))
	}
	if events.sessions[1].Action != "end" {
		t.Errorf("expected end action, got %q", events.sessions[1].Action)
	}
}

func TestQuickStarToggle(t *testing.T) {
	scr, _ := newTestScreen(t, false)

	id := scr.sess.Current().Item.ID
	scr = pressKey(scr, '`')
	if !scr.tracker.IsStarred(id) {
		t.Error("expected backtick to star the current item")
	}
	scr = pressKey(scr, '`')
	if scr.tracker.IsStarred(id) {
		t.Error("expected second backtick to unstar")
	}
}
