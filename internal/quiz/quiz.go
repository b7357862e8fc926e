// Package quiz is the session engine: it builds question queues, resolves
// per-question presentation, grades answers and guarantees exactly one
// stat recording per question.
package quiz

import (
	"math/rand"

	"github.com/mkobayashi/kanjidrill/internal/catalog"
)

// Mode is the question direction. The "mixed" value is a policy resolved
// to a concrete direction per question.
type Mode string

const (
	ModeKanjiToMeaning Mode = "k2m"
	ModeMeaningToKanji Mode = "m2k"
	ModeMixed          Mode = "mixed"
)

// Style is how the learner answers. "mixed" is resolved per question.
type Style string

const (
	StyleMultipleChoice Style = "mc"
	StyleTyping         Style = "typing"
	StyleMixed          Style = "mixed"
)

// Settings is the snapshot of rendering settings the engine consults at
// the start of each question build.
type Settings struct {
	ShowReadings bool
	ChoiceCount  int
	MultiTyping  bool
}

// Recorder receives grading outcomes. RecordStat is called exactly once
// per graded question.
type Recorder interface {
	RecordStat(itemID, section string, correct bool)
	ObserveStreak(streak int)
}

// Resolver turns mixed policies into concrete per-question choices using
// an injectable random source, so tests can force deterministic runs.
type Resolver struct {
	rng *rand.Rand
}

// NewResolver creates a Resolver from a rand source.
func NewResolver(src rand.Source) *Resolver {
	return &Resolver{rng: rand.New(src)}
}

// ResolveMode returns policy unchanged unless it is mixed, in which case
// a direction is drawn uniformly. Draws are independent across calls.
func (r *Resolver) ResolveMode(policy Mode) Mode {
	if policy != ModeMixed {
		return policy
	}
	if r.rng.Intn(2) == 0 {
		return ModeKanjiToMeaning
	}
	return ModeMeaningToKanji
}

// ResolveStyle returns policy unchanged unless it is mixed.
func (r *Resolver) ResolveStyle(policy Style) Style {
	if policy != StyleMixed {
		return policy
	}
	if r.rng.Intn(2) == 0 {
		return StyleMultipleChoice
	}
	return StyleTyping
}

// shuffle permutes items in place with an unbiased Fisher-Yates pass.
func (r *Resolver) shuffle(items []catalog.Item) {
	r.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
