package quiz

import (
	"math/rand"
	"testing"
)

type recordedStat struct {
	itemID  string
	section string
	correct bool
}

type fakeRecorder struct {
	stats   []recordedStat
	streaks []int
}

func (f *fakeRecorder) RecordStat(itemID, section string, correct bool) {
	f.stats = append(f.stats, recordedStat{itemID, section, correct})
}

func (f *fakeRecorder) ObserveStreak(n int) {
	f.streaks = append(f.streaks, n)
}

func newTestSession(t *testing.T, style Style, count int, rec Recorder) *Session {
	t.Helper()
	items := testItems(10)
	cfg := Config{
		Mode:   ModeKanjiToMeaning,
		Style:  style,
		Filter: Filter{Section: SectionAll},
		Count:  count,
	}
	deps := Deps{
		Items:    items,
		Recorder: rec,
		Settings: func() Settings { return Settings{ChoiceCount: 4} },
		Excluded: func(string) bool { return false },
	}
	s, err := NewSession(cfg, items, NewResolver(rand.NewSource(21)), deps)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func correctIndex(q *Question) int {
	for i, o := range q.Pack.Options {
		if o == q.Pack.Correct {
			return i
		}
	}
	return -1
}

func wrongIndex(q *Question) int {
	for i, o := range q.Pack.Options {
		if o != q.Pack.Correct {
			return i
		}
	}
	return -1
}

func TestNewSessionEmptyPool(t *testing.T) {
	_, err := NewSession(Config{Count: 5}, nil, NewResolver(rand.NewSource(1)), Deps{
		Settings: func() Settings { return Settings{ChoiceCount: 4} },
		Excluded: func(string) bool { return false },
	})
	if err != ErrEmptyPool {
		t.Errorf("expected ErrEmptyPool, got %v", err)
	}
}

func TestSubmitChoiceRecordsOnce(t *testing.T) {
	rec := &fakeRecorder{}
	s := newTestSession(t, StyleMultipleChoice, 5, rec)

	q := s.Current()
	res, ok := s.SubmitChoice(correctIndex(q))
	if !ok || !res.Correct {
		t.Fatalf("expected correct grade, got ok=%v res=%+v", ok, res)
	}

	// A second submission on the locked question is rejected silently.
	if _, ok := s.SubmitChoice(wrongIndex(q)); ok {
		t.Error("expected duplicate submission to be rejected")
	}
	if len(rec.stats) != 1 {
		t.Fatalf("expected exactly 1 recorded stat, got %d", len(rec.stats))
	}
	if !rec.stats[0].correct || rec.stats[0].itemID != q.Item.ID {
		t.Errorf("recorded stat mismatch: %+v", rec.stats[0])
	}
}

func TestSubmitWrongStyleRejected(t *testing.T) {
	rec := &fakeRecorder{}
	s := newTestSession(t, StyleMultipleChoice, 5, rec)

	if _, ok := s.SubmitTyping([]string{"anything"}); ok {
		t.Error("expected typing submission on a choice question to be rejected")
	}
	if len(rec.stats) != 0 {
		t.Errorf("expected no stats recorded, got %d", len(rec.stats))
	}
}

func TestStreakAndBest(t *testing.T) {
	rec := &fakeRecorder{}
	s := newTestSession(t, StyleMultipleChoice, 6, rec)

	// Two correct, one wrong, one correct.
	outcomes := []bool{true, true, false, true}
	for _, want := range outcomes {
		q := s.Current()
		idx := correctIndex(q)
		if !want {
			idx = wrongIndex(q)
		}
		res, ok := s.SubmitChoice(idx)
		if !ok || res.Correct != want {
			t.Fatalf("submission: ok=%v correct=%v want %v", ok, res.Correct, want)
		}
		s.Advance()
	}

	if s.Streak() != 1 {
		t.Errorf("expected streak 1 after wrong then correct, got %d", s.Streak())
	}

	sum := s.Summarize()
	if sum.BestStreak != 2 {
		t.Errorf("expected best streak 2, got %d", sum.BestStreak)
	}
	if sum.Questions != 4 || sum.Correct != 3 {
		t.Errorf("summary %+v, want 4 questions 3 correct", sum)
	}
}

func TestAdvanceWithoutGradeSkips(t *testing.T) {
	rec := &fakeRecorder{}
	s := newTestSession(t, StyleMultipleChoice, 5, rec)

	first := s.Current().Item.ID
	if !s.Advance() {
		t.Fatal("expected more questions after advancing the first")
	}
	if s.Current() == nil {
		t.Fatal("expected a current question after advance")
	}
	if len(rec.stats) != 0 {
		t.Error("skipping must not record a stat")
	}
	_ = first
}

func TestSessionRunsToCompletion(t *testing.T) {
	rec := &fakeRecorder{}
	s := newTestSession(t, StyleTyping, 5, rec)

	for i := 0; i < 5; i++ {
		q := s.Current()
		if q == nil {
			t.Fatalf("nil question at position %d", i)
		}
		if q.Index != i {
			t.Errorf("expected index %d, got %d", i, q.Index)
		}
		if q.Total != 5 {
			t.Errorf("expected total 5, got %d", q.Total)
		}
		if _, ok := s.SubmitTyping([]string{q.Item.Meaning}); !ok {
			t.Fatalf("submit failed at %d", i)
		}
		more := s.Advance()
		if i < 4 && !more {
			t.Fatalf("expected more questions after %d", i)
		}
		if i == 4 && more {
			t.Error("expected exhaustion after the last question")
		}
	}

	if !s.Completed() {
		t.Error("expected session completed")
	}
	if s.Current() != nil {
		t.Error("expected no current question after completion")
	}
	if len(rec.stats) != 5 {
		t.Errorf("expected 5 recorded stats, got %d", len(rec.stats))
	}

	sum := s.Summarize()
	if sum.Accuracy != 1.0 {
		t.Errorf("expected accuracy 1.0, got %f", sum.Accuracy)
	}
}

func TestStopClearsSession(t *testing.T) {
	rec := &fakeRecorder{}
	s := newTestSession(t, StyleMultipleChoice, 5, rec)

	q := s.Current()
	s.SubmitChoice(correctIndex(q))
	s.Stop()

	if s.Current() != nil {
		t.Error("expected no current question after stop")
	}
	if _, ok := s.SubmitChoice(0); ok {
		t.Error("expected submissions after stop to be rejected")
	}

	sum := s.Summarize()
	if sum.Questions != 1 || sum.Correct != 1 {
		t.Errorf("expected partial summary preserved, got %+v", sum)
	}
}

func TestMultiTypingQuestionSlots(t *testing.T) {
	items := testItems(6)
	items[0].Meaning = "sky; heaven"
	cfg := Config{
		Mode:   ModeKanjiToMeaning,
		Style:  StyleTyping,
		Filter: Filter{Section: SectionAll},
		Count:  6,
	}
	rec := &fakeRecorder{}
	deps := Deps{
		Items:    items,
		Recorder: rec,
		Settings: func() Settings { return Settings{ChoiceCount: 4, MultiTyping: true} },
		Excluded: func(string) bool { return false },
	}
	s, err := NewSession(cfg, items, NewResolver(rand.NewSource(2)), deps)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	for {
		q := s.Current()
		if q == nil {
			break
		}
		if q.Item.ID == "k0" {
			if !q.MultiActive {
				t.Error("expected multi-answer typing active for multi-sense item")
			}
			if q.Slots != 2 {
				t.Errorf("expected 2 slots, got %d", q.Slots)
			}
			res, ok := s.SubmitTyping([]string{"heaven", "sky"})
			if !ok || !res.Correct {
				t.Errorf("expected both senses to grade correct, ok=%v res=%+v", ok, res)
			}
			return
		}
		if q.Slots != 1 {
			t.Errorf("expected 1 slot for %s, got %d", q.Item.ID, q.Slots)
		}
		s.Advance()
	}
	t.Fatal("multi-sense item never appeared in a 6-question queue over 6 items")
}
