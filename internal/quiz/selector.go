package quiz

import (
	"strings"

	"github.com/mkobayashi/kanjidrill/internal/catalog"
)

// Prompt is the question display data.
type Prompt struct {
	Main string
	Sub  string
}

// BuildPrompt renders the prompt for an item under the given mode. In
// kanji-to-meaning mode the readings line is shown only when enabled.
func BuildPrompt(it catalog.Item, mode Mode, showReadings bool) Prompt {
	if mode == ModeMeaningToKanji {
		return Prompt{Main: it.Meaning}
	}
	p := Prompt{Main: it.Kanji}
	if showReadings && len(it.Readings) > 0 {
		p.Sub = "読み: " + strings.Join(it.Readings, " / ")
	}
	return p
}

// ChoicePack is the immutable multiple-choice package for one question:
// the remembered correct value plus the shuffled option list. Grading
// compares by value, never by position.
type ChoicePack struct {
	Correct string
	Options []string
}

// BuildChoices draws count-1 distractor values from other items on the
// answer field for mode, shuffles them with the correct value and
// truncates to count. If truncation dropped the correct value (possible
// only when the catalog has fewer distinct items than count), it is
// re-inserted at a random position.
func (r *Resolver) BuildChoices(items []catalog.Item, it catalog.Item, mode Mode, count int) ChoicePack {
	answerField := func(x catalog.Item) string {
		if mode == ModeMeaningToKanji {
			return x.Kanji
		}
		return x.Meaning
	}
	correct := answerField(it)

	others := make([]catalog.Item, 0, len(items))
	for _, x := range items {
		if x.ID != it.ID {
			others = append(others, x)
		}
	}
	r.shuffle(others)
	if len(others) > count-1 {
		others = others[:count-1]
	}

	options := make([]string, 0, count)
	options = append(options, correct)
	for _, x := range others {
		options = append(options, answerField(x))
	}
	r.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	if len(options) > count {
		options = options[:count]
	}

	if !contains(options, correct) {
		options[r.rng.Intn(len(options))] = correct
	}

	return ChoicePack{Correct: correct, Options: options}
}

func contains(vals []string, v string) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}

// MultiTypingActive reports whether the multi-answer typing variant
// applies: kanji-to-meaning mode, global setting on, multiple senses,
// and the item not individually excluded.
func MultiTypingActive(it catalog.Item, mode Mode, settings Settings, excluded func(id string) bool) bool {
	if mode != ModeKanjiToMeaning {
		return false
	}
	if !settings.MultiTyping {
		return false
	}
	if !catalog.HasMultipleMeanings(it) {
		return false
	}
	return !excluded(it.ID)
}

// TypingSlots returns the number of typing inputs to render: one per
// meaning sense when multi-answer is active, otherwise exactly one.
func TypingSlots(it catalog.Item, multiActive bool) int {
	if !multiActive {
		return 1
	}
	return len(catalog.SplitMeanings(it.Meaning))
}
