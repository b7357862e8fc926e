package quiz

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/mkobayashi/kanjidrill/internal/catalog"
)

func TestBuildPromptKanjiToMeaning(t *testing.T) {
	it := catalog.Item{Kanji: "日", Readings: []string{"ニチ", "ひ"}, Meaning: "day; sun"}

	p := BuildPrompt(it, ModeKanjiToMeaning, true)
	if p.Main != "日" {
		t.Errorf("expected kanji prompt, got %q", p.Main)
	}
	if !strings.Contains(p.Sub, "ニチ") || !strings.Contains(p.Sub, "ひ") {
		t.Errorf("expected readings in sub line, got %q", p.Sub)
	}

	p = BuildPrompt(it, ModeKanjiToMeaning, false)
	if p.Sub != "" {
		t.Errorf("expected no readings line when disabled, got %q", p.Sub)
	}
}

func TestBuildPromptMeaningToKanji(t *testing.T) {
	it := catalog.Item{Kanji: "日", Readings: []string{"ニチ"}, Meaning: "day; sun"}

	p := BuildPrompt(it, ModeMeaningToKanji, true)
	if p.Main != "day; sun" {
		t.Errorf("expected meaning prompt, got %q", p.Main)
	}
	if p.Sub != "" {
		t.Errorf("readings must never show in meaning-to-kanji mode, got %q", p.Sub)
	}
}

func TestBuildChoicesContainsCorrect(t *testing.T) {
	r := NewResolver(rand.NewSource(3))
	items := testItems(12)

	for i := 0; i < 20; i++ {
		pack := r.BuildChoices(items, items[i%len(items)], ModeKanjiToMeaning, 4)
		if len(pack.Options) != 4 {
			t.Fatalf("expected 4 options, got %d", len(pack.Options))
		}
		found := false
		for _, o := range pack.Options {
			if o == pack.Correct {
				found = true
			}
		}
		if !found {
			t.Fatal("correct value missing from options")
		}
	}
}

func TestBuildChoicesSmallCatalog(t *testing.T) {
	r := NewResolver(rand.NewSource(9))
	items := testItems(2)

	pack := r.BuildChoices(items, items[0], ModeKanjiToMeaning, 4)
	if len(pack.Options) > 2 {
		t.Errorf("expected at most 2 options from 2 items, got %d", len(pack.Options))
	}
	found := false
	for _, o := range pack.Options {
		if o == pack.Correct {
			found = true
		}
	}
	if !found {
		t.Error("correct value missing from small-catalog options")
	}
}

func TestBuildChoicesMeaningToKanjiUsesKanji(t *testing.T) {
	r := NewResolver(rand.NewSource(5))
	items := testItems(8)

	pack := r.BuildChoices(items, items[0], ModeMeaningToKanji, 4)
	if pack.Correct != items[0].Kanji {
		t.Errorf("expected kanji as correct value, got %q", pack.Correct)
	}
}

func TestMultiTypingActive(t *testing.T) {
	multi := catalog.Item{ID: "m", Meaning: "sky; heaven"}
	single := catalog.Item{ID: "s", Meaning: "tree"}
	on := Settings{MultiTyping: true, ChoiceCount: 4}
	off := Settings{MultiTyping: false, ChoiceCount: 4}
	never := func(string) bool { return false }
	always := func(string) bool { return true }

	if !MultiTypingActive(multi, ModeKanjiToMeaning, on, never) {
		t.Error("expected active for multi-sense item with setting on")
	}
	if MultiTypingActive(multi, ModeMeaningToKanji, on, never) {
		t.Error("expected inactive in meaning-to-kanji mode")
	}
	if MultiTypingActive(multi, ModeKanjiToMeaning, off, never) {
		t.Error("expected inactive with global setting off")
	}
	if MultiTypingActive(single, ModeKanjiToMeaning, on, never) {
		t.Error("expected inactive for single-sense item")
	}
	if MultiTypingActive(multi, ModeKanjiToMeaning, on, always) {
		t.Error("expected inactive for excluded item")
	}
}

func TestTypingSlots(t *testing.T) {
	multi := catalog.Item{Meaning: "life; birth; raw"}

	if got := TypingSlots(multi, true); got != 3 {
		t.Errorf("expected 3 slots, got %d", got)
	}
	if got := TypingSlots(multi, false); got != 1 {
		t.Errorf("expected 1 slot when inactive, got %d", got)
	}
}

func TestResolveModeMixed(t *testing.T) {
	r := NewResolver(rand.NewSource(11))

	seen := map[Mode]bool{}
	for i := 0; i < 100; i++ {
		m := r.ResolveMode(ModeMixed)
		if m != ModeKanjiToMeaning && m != ModeMeaningToKanji {
			t.Fatalf("mixed resolved to %q", m)
		}
		seen[m] = true
	}
	if len(seen) != 2 {
		t.Error("expected mixed mode to produce both directions over 100 draws")
	}

	if r.ResolveMode(ModeKanjiToMeaning) != ModeKanjiToMeaning {
		t.Error("fixed mode must resolve to itself")
	}
}

func TestResolveStyleMixed(t *testing.T) {
	r := NewResolver(rand.NewSource(13))

	seen := map[Style]bool{}
	for i := 0; i < 100; i++ {
		s := r.ResolveStyle(StyleMixed)
		if s != StyleMultipleChoice && s != StyleTyping {
			t.Fatalf("mixed resolved to %q", s)
		}
		seen[s] = true
	}
	if len(seen) != 2 {
		t.Error("expected mixed style to produce both styles over 100 draws")
	}
}
