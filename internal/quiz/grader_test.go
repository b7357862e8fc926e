package quiz

import (
	"testing"

	"github.com/mkobayashi/kanjidrill/internal/catalog"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Sun  ", "sun"},
		{"sky   heaven", "sky heaven"},
		{"\tLife \n", "life"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestGradeChoiceByValue(t *testing.T) {
	pack := ChoicePack{
		Correct: "sun",
		Options: []string{"moon", "sun", "star", "cloud"},
	}

	if res := gradeChoice(pack, 1); !res.Correct {
		t.Error("expected choosing the correct value to grade correct")
	}
	if res := gradeChoice(pack, 0); res.Correct {
		t.Error("expected choosing a distractor to grade wrong")
	}
	if res := gradeChoice(pack, 7); res.Correct {
		t.Error("expected out-of-range index to grade wrong")
	}
	if res := gradeChoice(pack, 0); res.Expected != "sun" {
		t.Errorf("expected Expected 'sun', got %q", res.Expected)
	}
}

func TestGradeTypingSingleSenseAny(t *testing.T) {
	it := catalog.Item{ID: "k1", Kanji: "天", Meaning: "sky; heaven"}

	// Either sense alone is accepted in single-slot mode.
	for _, in := range []string{"sky", "Heaven", "  SKY  "} {
		res := gradeTyping(it, ModeKanjiToMeaning, []string{in}, false)
		if !res.Correct {
			t.Errorf("expected %q to be accepted", in)
		}
	}

	res := gradeTyping(it, ModeKanjiToMeaning, []string{"sky heaven"}, false)
	if res.Correct {
		t.Error("expected concatenated senses to be rejected")
	}
	if res.Expected != "sky; heaven" {
		t.Errorf("expected full meaning as Expected, got %q", res.Expected)
	}
}

func TestGradeTypingEmptyIsWrong(t *testing.T) {
	it := catalog.Item{ID: "k1", Kanji: "日", Meaning: "day; sun"}

	if res := gradeTyping(it, ModeKanjiToMeaning, []string{"   "}, false); res.Correct {
		t.Error("expected whitespace-only input to grade wrong")
	}
	if res := gradeTyping(it, ModeKanjiToMeaning, nil, false); res.Correct {
		t.Error("expected missing input to grade wrong")
	}
}

func TestGradeTypingMeaningToKanji(t *testing.T) {
	it := catalog.Item{ID: "k1", Kanji: "天", Meaning: "sky; heaven"}

	if res := gradeTyping(it, ModeMeaningToKanji, []string{"天"}, false); !res.Correct {
		t.Error("expected exact kanji to grade correct")
	}
	if res := gradeTyping(it, ModeMeaningToKanji, []string{"日"}, false); res.Correct {
		t.Error("expected wrong kanji to grade wrong")
	}
}

func TestGradeMultiTyping(t *testing.T) {
	it := catalog.Item{ID: "k1", Kanji: "生", Meaning: "life; birth; raw"}

	cases := []struct {
		name   string
		inputs []string
		want   bool
	}{
		{"all senses any order", []string{"raw", "life", "birth"}, true},
		{"case and spacing ignored", []string{" Life ", "BIRTH", "raw"}, true},
		{"duplicate sense rejected", []string{"life", "life", "birth"}, false},
		{"one invalid entry rejects all", []string{"life", "birth", "cooked"}, false},
		{"missing slot", []string{"life", "birth"}, false},
		{"empty slot", []string{"life", "birth", ""}, false},
	}

	for _, c := range cases {
		res := gradeTyping(it, ModeKanjiToMeaning, c.inputs, true)
		if res.Correct != c.want {
			t.Errorf("%s: got %v, want %v", c.name, res.Correct, c.want)
		}
	}
}

func TestGradeMultiTypingTwoSenses(t *testing.T) {
	it := catalog.Item{ID: "k2", Kanji: "天", Meaning: "sky; heaven"}

	if res := gradeTyping(it, ModeKanjiToMeaning, []string{"heaven", "sky"}, true); !res.Correct {
		t.Error("expected both senses in reverse order to grade correct")
	}
	if res := gradeTyping(it, ModeKanjiToMeaning, []string{"sky", "sky"}, true); res.Correct {
		t.Error("expected the same sense twice to grade wrong")
	}
}
