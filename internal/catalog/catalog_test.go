package catalog

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/mkobayashi/kanjidrill/internal/payload"
)

func TestSplitMeanings(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"sun", []string{"sun"}},
		{"sky; heaven", []string{"sky", "heaven"}},
		{"life;birth ; raw", []string{"life", "birth", "raw"}},
		{"; edge ;", []string{"edge"}},
		{"", []string{}},
	}
	for _, c := range cases {
		if got := SplitMeanings(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("SplitMeanings(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestHasMultipleMeanings(t *testing.T) {
	if HasMultipleMeanings(Item{Meaning: "tree"}) {
		t.Error("single sense must not count as multiple")
	}
	if !HasMultipleMeanings(Item{Meaning: "day; sun"}) {
		t.Error("two senses must count as multiple")
	}
}

func TestItemUnmarshalSectionForms(t *testing.T) {
	var fromString Item
	if err := json.Unmarshal([]byte(`{"id":"a","kanji":"日","meaning":"sun","section":"3"}`), &fromString); err != nil {
		t.Fatalf("string section: %v", err)
	}
	if fromString.Section != "3" {
		t.Errorf("expected section \"3\", got %q", fromString.Section)
	}

	var fromNumber Item
	if err := json.Unmarshal([]byte(`{"id":"b","kanji":"月","meaning":"moon","section":3}`), &fromNumber); err != nil {
		t.Fatalf("numeric section: %v", err)
	}
	if fromNumber.Section != "3" {
		t.Errorf("expected numeric section normalized to \"3\", got %q", fromNumber.Section)
	}

	var bad Item
	if err := json.Unmarshal([]byte(`{"id":"c","kanji":"木","meaning":"tree","section":[1]}`), &bad); err == nil {
		t.Error("expected array section to be rejected")
	}
}

func TestSectionsNumericSort(t *testing.T) {
	c := New([]Item{
		{ID: "a", Section: "10"},
		{ID: "b", Section: "2"},
		{ID: "c", Section: "1"},
		{ID: "d", Section: "2"},
	})
	want := []string{"1", "2", "10"}
	if got := c.Sections(); !reflect.DeepEqual(got, want) {
		t.Errorf("Sections() = %v, want %v", got, want)
	}
}

func TestSearch(t *testing.T) {
	c := New([]Item{
		{ID: "a", Kanji: "日", Readings: []string{"ニチ", "ひ"}, Meaning: "day; sun"},
		{ID: "b", Kanji: "月", Readings: []string{"ゲツ", "つき"}, Meaning: "moon; month"},
	})

	if got := c.Search("sun"); len(got) != 1 || got[0].ID != "a" {
		t.Errorf("meaning search: got %v", got)
	}
	if got := c.Search("つき"); len(got) != 1 || got[0].ID != "b" {
		t.Errorf("reading search: got %v", got)
	}
	if got := c.Search("月"); len(got) != 1 || got[0].ID != "b" {
		t.Errorf("kanji search: got %v", got)
	}
	if got := c.Search("  "); len(got) != 2 {
		t.Errorf("empty search must match everything, got %d", len(got))
	}
	if got := c.Search("MOON"); len(got) != 1 {
		t.Errorf("search must be case-insensitive, got %d", len(got))
	}
}

func TestParseDataPayload(t *testing.T) {
	good := []byte(`{"version":1,"items":[{"id":"a","kanji":"日","meaning":"sun","section":1}]}`)
	p, err := ParseDataPayload(good)
	if err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
	if len(p.Items) != 1 || p.Items[0].Section != "1" {
		t.Errorf("unexpected payload %+v", p)
	}
}

func TestParseDataPayloadRejectsInvalid(t *testing.T) {
	cases := []string{
		`{"version":1,"items":[]}`,
		`{"items":[{"id":"a","kanji":"日","meaning":"sun","section":1}]}`,
		`{"version":1,"items":[{"id":"a","meaning":"sun","section":1}]}`,
		`not json`,
	}
	for _, raw := range cases {
		if _, err := ParseDataPayload([]byte(raw)); !errors.Is(err, payload.ErrInvalid) {
			t.Errorf("payload %q: expected ErrInvalid, got %v", raw, err)
		}
	}
}

func TestBundledCatalogParses(t *testing.T) {
	var p DataPayload
	if err := json.Unmarshal(defaultData, &p); err != nil {
		t.Fatalf("bundled catalog: %v", err)
	}
	if len(p.Items) == 0 {
		t.Fatal("bundled catalog is empty")
	}
	seen := make(map[string]bool)
	for _, it := range p.Items {
		if it.ID == "" || it.Kanji == "" || it.Meaning == "" || it.Section == "" {
			t.Errorf("incomplete item %+v", it)
		}
		if seen[it.ID] {
			t.Errorf("duplicate item id %s", it.ID)
		}
		seen[it.ID] = true
	}
}
