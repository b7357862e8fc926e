// Package progress holds the learner's mutable state: starred items,
// per-item and per-lesson attempt counts, settings and multi-typing
// exclusions. Every mutation persists immediately through the pref store.
package progress

import (
	"context"
	"sort"

	"github.com/mkobayashi/kanjidrill/internal/store"
)

// Pref store keys.
const (
	PrefKeyStars    = "stars"
	PrefKeyStats    = "stats"
	PrefKeySettings = "settings"
	PrefKeyMultiOff = "multi_typing_off"
)

// Tally counts correct and wrong gradings for one item or section.
type Tally struct {
	Correct int `json:"correct"`
	Wrong   int `json:"wrong"`
}

// Attempts returns the total gradings recorded in this tally.
func (t Tally) Attempts() int {
	return t.Correct + t.Wrong
}

// Stats is the cumulative grading record. Invariant: Total equals
// Correct + Wrong, and the per-item and per-section tallies each sum to
// Total. Counts only increase, except on Reset.
type Stats struct {
	Total      int               `json:"total"`
	Correct    int               `json:"correct"`
	Wrong      int               `json:"wrong"`
	BestStreak int               `json:"bestStreak"`
	ByItem     map[string]*Tally `json:"byItem"`
	BySection  map[string]*Tally `json:"bySection"`
}

func newStats() Stats {
	return Stats{
		ByItem:    make(map[string]*Tally),
		BySection: make(map[string]*Tally),
	}
}

// Settings govern question rendering defaults.
type Settings struct {
	ShowReadings bool `json:"showReadings"`
	ChoiceCount  int  `json:"choiceCount"`
	MultiTyping  bool `json:"multiTyping"`
}

// Choice count bounds.
const (
	MinChoiceCount     = 2
	MaxChoiceCount     = 6
	DefaultChoiceCount = 4
)

// DefaultSettings returns the settings used before any are saved.
func DefaultSettings() Settings {
	return Settings{
		ShowReadings: false,
		ChoiceCount:  DefaultChoiceCount,
		MultiTyping:  true,
	}
}

// Tracker owns the learner state and persists it through prefs.
// Persistence is best-effort: a failed save never blocks study flow,
// but the first failure is retained for the UI to surface.
type Tracker struct {
	prefs    store.PrefRepo
	saveErr  error
	stars    map[string]bool
	stats    Stats
	settings Settings
	multiOff map[string]bool
}

// Load reads all learner state from prefs, applying documented defaults
// for anything absent or unreadable.
func Load(ctx context.Context, prefs store.PrefRepo) (*Tracker, error) {
	t := &Tracker{
		prefs:    prefs,
		stars:    make(map[string]bool),
		stats:    newStats(),
		settings: DefaultSettings(),
		multiOff: make(map[string]bool),
	}

	var starList []string
	if _, err := prefs.Load(ctx, PrefKeyStars, &starList); err != nil {
		return nil, err
	}
	for _, id := range starList {
		t.stars[id] = true
	}

	var stats Stats
	if found, err := prefs.Load(ctx, PrefKeyStats, &stats); err != nil {
		return nil, err
	} else if found {
		if stats.ByItem == nil {
			stats.ByItem = make(map[string]*Tally)
		}
		if stats.BySection == nil {
			stats.BySection = make(map[string]*Tally)
		}
		t.stats = stats
	}

	var settings Settings
	if found, err := prefs.Load(ctx, PrefKeySettings, &settings); err != nil {
		return nil, err
	} else if found {
		settings.ChoiceCount = clampChoiceCount(settings.ChoiceCount)
		t.settings = settings
	}

	var offList []string
	if _, err := prefs.Load(ctx, PrefKeyMultiOff, &offList); err != nil {
		return nil, err
	}
	for _, id := range offList {
		t.multiOff[id] = true
	}

	return t, nil
}

// IsStarred reports whether the item is starred.
func (t *Tracker) IsStarred(id string) bool {
	return t.stars[id]
}

// ToggleStar flips the star for id and persists the set.
func (t *Tracker) ToggleStar(id string) {
	if t.stars[id] {
		delete(t.stars, id)
	} else {
		t.stars[id] = true
	}
	t.saveStars()
}

// Starred returns the starred ids, sorted for stable export.
func (t *Tracker) Starred() []string {
	out := make([]string, 0, len(t.stars))
	for id := range t.stars {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// StarredCount returns the number of starred items.
func (t *Tracker) StarredCount() int {
	return len(t.stars)
}

// RecordStat records one grading outcome for an item and its section,
// then persists. The session engine guarantees exactly one call per
// graded question.
func (t *Tracker) RecordStat(itemID, section string, correct bool) {
	t.stats.Total++
	if correct {
		t.stats.Correct++
	} else {
		t.stats.Wrong++
	}

	bi := t.stats.ByItem[itemID]
	if bi == nil {
		bi = &Tally{}
		t.stats.ByItem[itemID] = bi
	}
	bs := t.stats.BySection[section]
	if bs == nil {
		bs = &Tally{}
		t.stats.BySection[section] = bs
	}
	if correct {
		bi.Correct++
		bs.Correct++
	} else {
		bi.Wrong++
		bs.Wrong++
	}

	t.saveStats()
}

// ObserveStreak raises the best-ever streak to at least n. The value is
// persisted by the RecordStat call that follows each grading.
func (t *Tracker) ObserveStreak(n int) {
	if n > t.stats.BestStreak {
		t.stats.BestStreak = n
	}
}

// Stats returns a snapshot of the cumulative stats.
func (t *Tracker) Stats() Stats {
	snap := t.stats
	snap.ByItem = make(map[string]*Tally, len(t.stats.ByItem))
	for k, v := range t.stats.ByItem {
		c := *v
		snap.ByItem[k] = &c
	}
	snap.BySection = make(map[string]*Tally, len(t.stats.BySection))
	for k, v := range t.stats.BySection {
		c := *v
		snap.BySection[k] = &c
	}
	return snap
}

// ResetStats zeroes the whole stats structure and persists the empty
// state. Irreversible.
func (t *Tracker) ResetStats() {
	t.stats = newStats()
	t.saveStats()
}

// Settings returns the current settings.
func (t *Tracker) Settings() Settings {
	return t.settings
}

// SetShowReadings persists the readings-display toggle.
func (t *Tracker) SetShowReadings(on bool) {
	t.settings.ShowReadings = on
	t.saveSettings()
}

// SetChoiceCount persists the multiple-choice option count, clamped to
// the allowed bounds.
func (t *Tracker) SetChoiceCount(n int) {
	if n < MinChoiceCount {
		n = MinChoiceCount
	}
	if n > MaxChoiceCount {
		n = MaxChoiceCount
	}
	t.settings.ChoiceCount = n
	t.saveSettings()
}

// SetMultiTyping persists the global multi-answer typing toggle.
func (t *Tracker) SetMultiTyping(on bool) {
	t.settings.MultiTyping = on
	t.saveSettings()
}

// MultiTypingExcluded reports whether multi-answer typing is disabled
// for this item, independent of the global setting.
func (t *Tracker) MultiTypingExcluded(id string) bool {
	return t.multiOff[id]
}

// SetMultiTypingExcluded persists the per-item multi-typing exclusion.
func (t *Tracker) SetMultiTypingExcluded(id string, excluded bool) {
	if excluded {
		t.multiOff[id] = true
	} else {
		delete(t.multiOff, id)
	}
	t.saveMultiOff()
}

func clampChoiceCount(n int) int {
	if n < MinChoiceCount || n > MaxChoiceCount {
		return DefaultChoiceCount
	}
	return n
}

// SaveErr returns the first persistence failure since Load, or nil.
// In-memory state stays usable either way.
func (t *Tracker) SaveErr() error {
	return t.saveErr
}

// persist writes one pref key, retaining the first failure.
func (t *Tracker) persist(key string, value any) {
	if err := t.prefs.Save(context.Background(), key, value); err != nil && t.saveErr == nil {
		t.saveErr = err
	}
}

func (t *Tracker) saveStars() {
	t.persist(PrefKeyStars, t.Starred())
}

func (t *Tracker) saveStats() {
	t.persist(PrefKeyStats, t.stats)
}

func (t *Tracker) saveSettings() {
	t.persist(PrefKeySettings, t.settings)
}

func (t *Tracker) saveMultiOff() {
	off := make([]string, 0, len(t.multiOff))
	for id := range t.multiOff {
		off = append(off, id)
	}
	sort.Strings(off)
	t.persist(PrefKeyMultiOff, off)
}
