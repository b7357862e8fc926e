package quiz

import (
	"strings"

	"github.com/mkobayashi/kanjidrill/internal/catalog"
)

// Result is the outcome of grading one submission.
type Result struct {
	Correct bool
	// Expected is the answer to display on a wrong submission: the full
	// meaning string (all senses) or the kanji.
	Expected string
}

// Normalize prepares typed text for comparison: trim, collapse internal
// whitespace runs to one space, lowercase.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// gradeChoice grades a selected option index against the pack. The
// comparison is by value: reshuffling options never changes the outcome
// for a fixed chosen value.
func gradeChoice(pack ChoicePack, index int) Result {
	res := Result{Expected: pack.Correct}
	if index < 0 || index >= len(pack.Options) {
		return res
	}
	res.Correct = pack.Options[index] == pack.Correct
	return res
}

// gradeTyping grades typed input slots for an item under mode. With
// multiActive, one distinct matching sense is required per slot; the
// slot count must equal the sense count and duplicates never satisfy
// two senses. Otherwise the single slot matches any one sense in
// kanji-to-meaning mode, or the kanji exactly in meaning-to-kanji mode.
func gradeTyping(it catalog.Item, mode Mode, inputs []string, multiActive bool) Result {
	expected := it.Meaning
	if mode == ModeMeaningToKanji {
		expected = it.Kanji
	}
	res := Result{Expected: expected}

	if mode == ModeKanjiToMeaning && multiActive {
		res.Correct = gradeMultiTyping(it.Meaning, inputs)
		return res
	}

	var got string
	if len(inputs) > 0 {
		got = inputs[0]
	}
	normalized := Normalize(got)
	if normalized == "" {
		return res
	}

	if mode == ModeKanjiToMeaning {
		for _, sense := range catalog.SplitMeanings(it.Meaning) {
			if Normalize(sense) == normalized {
				res.Correct = true
				break
			}
		}
	} else {
		res.Correct = Normalize(expected) == normalized
	}
	return res
}

// gradeMultiTyping checks that every slot holds a distinct valid sense
// and every sense is covered.
func gradeMultiTyping(meaning string, inputs []string) bool {
	senses := catalog.SplitMeanings(meaning)
	expected := make(map[string]bool, len(senses))
	for _, s := range senses {
		expected[Normalize(s)] = true
	}

	if len(inputs) != len(senses) {
		return false
	}

	distinct := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		n := Normalize(in)
		if !expected[n] {
			return false
		}
		if n != "" {
			distinct[n] = true
		}
	}
	return len(distinct) == len(senses)
}
