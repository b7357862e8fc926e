package progress

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// memPrefs is an in-memory PrefRepo for tests.
type memPrefs struct {
	values map[string]json.RawMessage
}

func newMemPrefs() *memPrefs {
	return &memPrefs{values: make(map[string]json.RawMessage)}
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

// failingPrefs loads fine but rejects every save.
type failingPrefs struct {
	memPrefs
	saveErr error
}

func (f *failingPrefs) Save(context.Context, string, any) error {
	return f.saveErr
}

func loadTracker(t *testing.T, prefs *memPrefs) *Tracker {
	t.Helper()
	tr, err := Load(context.Background(), prefs)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return tr
}

func TestLoadDefaults(t *testing.T) {
	tr := loadTracker(t, newMemPrefs())

	if tr.StarredCount() != 0 {
		t.Errorf("expected no stars, got %d", tr.StarredCount())
	}
	s := tr.Settings()
	if s.ChoiceCount != DefaultChoiceCount {
		t.Errorf("expected default choice count %d, got %d", DefaultChoiceCount, s.ChoiceCount)
	}
	if s.ShowReadings {
		t.Error("expected readings hidden by default")
	}
	if !s.MultiTyping {
		t.Error("expected multi-answer typing on by default")
	}
}

func TestLoadIgnoresCorruptValues(t *testing.T) {
	prefs := newMemPrefs()
	prefs.values[PrefKeyStats] = json.RawMessage(`"not an object"`)
	prefs.values[PrefKeyStars] = json.RawMessage(`{"bad": true}`)

	tr := loadTracker(t, prefs)
	if tr.Stats().Total != 0 {
		t.Error("expected empty stats after corrupt value")
	}
	if tr.StarredCount() != 0 {
		t.Error("expected no stars after corrupt value")
	}
}

func TestSaveFailureRetainedNotFatal(t *testing.T) {
	errBroken := errors.New("pref store broken")
	prefs := &failingPrefs{memPrefs: *newMemPrefs(), saveErr: errBroken}

	tr, err := Load(context.Background(), prefs)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tr.SaveErr() != nil {
		t.Fatal("expected no save error before any write")
	}

	tr.ToggleStar("k1")
	if !tr.IsStarred("k1") {
		t.Error("expected star kept in memory despite failed save")
	}
	if !errors.Is(tr.SaveErr(), errBroken) {
		t.Errorf("expected retained save error, got %v", tr.SaveErr())
	}

	tr.RecordStat("k1", "1", true)
	if tr.Stats().Total != 1 {
		t.Error("expected stat recorded in memory despite failed save")
	}
	if !errors.Is(tr.SaveErr(), errBroken) {
		t.Errorf("expected first save error retained, got %v", tr.SaveErr())
	}
}

func TestRecordStatInvariant(t *testing.T) {
	tr := loadTracker(t, newMemPrefs())

	tr.RecordStat("k1", "1", true)
	tr.RecordStat("k1", "1", false)
	tr.RecordStat("k2", "2", true)

	s := tr.Stats()
	if s.Total != 3 || s.Correct != 2 || s.Wrong != 1 {
		t.Errorf("totals %d/%d/%d, want 3/2/1", s.Total, s.Correct, s.Wrong)
	}
	if s.Total != s.Correct+s.Wrong {
		t.Error("total must equal correct + wrong")
	}

	itemSum := 0
	for _, tally := range s.ByItem {
		itemSum += tally.Attempts()
	}
	if itemSum != s.Total {
		t.Errorf("per-item attempts sum to %d, want %d", itemSum, s.Total)
	}

	sectionSum := 0
	for _, tally := range s.BySection {
		sectionSum += tally.Attempts()
	}
	if sectionSum != s.Total {
		t.Errorf("per-section attempts sum to %d, want %d", sectionSum, s.Total)
	}

	if got := s.ByItem["k1"]; got.Correct != 1 || got.Wrong != 1 {
		t.Errorf("k1 tally %+v, want 1/1", got)
	}
}

func TestStatsSnapshotIsDeepCopy(t *testing.T) {
	tr := loadTracker(t, newMemPrefs())
	tr.RecordStat("k1", "1", true)

	snap := tr.Stats()
	snap.ByItem["k1"].Correct = 99

	if tr.Stats().ByItem["k1"].Correct != 1 {
		t.Error("mutating the snapshot must not affect the tracker")
	}
}

func TestObserveStreakOnlyRaises(t *testing.T) {
	tr := loadTracker(t, newMemPrefs())

	tr.ObserveStreak(3)
	tr.ObserveStreak(2)
	if tr.Stats().BestStreak != 3 {
		t.Errorf("best streak %d, want 3", tr.Stats().BestStreak)
	}
	tr.ObserveStreak(5)
	if tr.Stats().BestStreak != 5 {
		t.Errorf("best streak %d, want 5", tr.Stats().BestStreak)
	}
}

func TestResetStats(t *testing.T) {
	prefs := newMemPrefs()
	tr := loadTracker(t, prefs)

	tr.ToggleStar("k1")
	tr.RecordStat("k1", "1", true)
	tr.ObserveStreak(4)
	tr.ResetStats()

	s := tr.Stats()
	if s.Total != 0 || s.BestStreak != 0 || len(s.ByItem) != 0 {
		t.Errorf("expected zeroed stats, got %+v", s)
	}
	if !tr.IsStarred("k1") {
		t.Error("reset must keep stars")
	}

	// Reset persists: a reload sees empty stats too.
	reloaded := loadTracker(t, prefs)
	if reloaded.Stats().Total != 0 {
		t.Error("expected persisted reset")
	}
}

func TestToggleStarPersists(t *testing.T) {
	prefs := newMemPrefs()
	tr := loadTracker(t, prefs)

	tr.ToggleStar("k3")
	tr.ToggleStar("k1")

	reloaded := loadTracker(t, prefs)
	if !reloaded.IsStarred("k1") || !reloaded.IsStarred("k3") {
		t.Error("expected stars to survive reload")
	}

	tr.ToggleStar("k1")
	if tr.IsStarred("k1") {
		t.Error("expected second toggle to unstar")
	}
}

func TestStarredSorted(t *testing.T) {
	tr := loadTracker(t, newMemPrefs())
	tr.ToggleStar("b")
	tr.ToggleStar("a")
	tr.ToggleStar("c")

	got := tr.Starred()
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Starred() = %v, want %v", got, want)
		}
	}
}

func TestSetChoiceCountClamps(t *testing.T) {
	tr := loadTracker(t, newMemPrefs())

	tr.SetChoiceCount(1)
	if tr.Settings().ChoiceCount != MinChoiceCount {
		t.Errorf("expected clamp to %d, got %d", MinChoiceCount, tr.Settings().ChoiceCount)
	}
	tr.SetChoiceCount(9)
	if tr.Settings().ChoiceCount != MaxChoiceCount {
		t.Errorf("expected clamp to %d, got %d", MaxChoiceCount, tr.Settings().ChoiceCount)
	}
	tr.SetChoiceCount(5)
	if tr.Settings().ChoiceCount != 5 {
		t.Errorf("expected 5, got %d", tr.Settings().ChoiceCount)
	}
}

func TestMultiTypingExclusion(t *testing.T) {
	prefs := newMemPrefs()
	tr := loadTracker(t, prefs)

	tr.SetMultiTypingExcluded("k1", true)
	if !tr.MultiTypingExcluded("k1") {
		t.Error("expected k1 excluded")
	}

	reloaded := loadTracker(t, prefs)
	if !reloaded.MultiTypingExcluded("k1") {
		t.Error("expected exclusion to persist")
	}

	tr.SetMultiTypingExcluded("k1", false)
	if tr.MultiTypingExcluded("k1") {
		t.Error("expected exclusion removed")
	}
}
