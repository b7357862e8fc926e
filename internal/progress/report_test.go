package progress

import (
	"fmt"
	"testing"

	"github.com/mkobayashi/kanjidrill/internal/catalog"
)

func reportCatalog() *catalog.Catalog {
	return catalog.New([]Item{
		{ID: "k1", Kanji: "日", Meaning: "day; sun", Section: "1"},
		{ID: "k2", Kanji: "月", Meaning: "moon", Section: "1"},
		{ID: "k3", Kanji: "木", Meaning: "tree", Section: "2"},
	})
}

// Item aliases catalog.Item for fixture brevity.
type Item = catalog.Item

func record(tr *Tracker, id, section string, correct, wrong int) {
	for i := 0; i < correct; i++ {
		tr.RecordStat(id, section, true)
	}
	for i := 0; i < wrong; i++ {
		tr.RecordStat(id, section, false)
	}
}

func TestHardestItemsThreshold(t *testing.T) {
	tr := loadTracker(t, newMemPrefs())
	cat := reportCatalog()

	record(tr, "k1", "1", 1, 1) // 2 attempts: below threshold
	record(tr, "k2", "1", 1, 2) // 3 attempts, 67% missed
	record(tr, "k3", "2", 0, 4) // 4 attempts, 100% missed

	hard := tr.HardestItems(cat)
	if len(hard) != 2 {
		t.Fatalf("expected 2 ranked items, got %d", len(hard))
	}
	if hard[0].ID != "k3" {
		t.Errorf("expected k3 first (highest miss rate), got %s", hard[0].ID)
	}
	if hard[1].ID != "k2" {
		t.Errorf("expected k2 second, got %s", hard[1].ID)
	}
	if hard[0].Kanji != "木" {
		t.Errorf("expected catalog lookup for display, got %q", hard[0].Kanji)
	}
}

func TestHardestItemsCap(t *testing.T) {
	tr := loadTracker(t, newMemPrefs())

	items := make([]Item, 15)
	for i := range items {
		id := fmt.Sprintf("k%02d", i)
		items[i] = Item{ID: id, Kanji: "字", Meaning: "x", Section: "1"}
		record(tr, id, "1", 1, 2+i%3)
	}
	cat := catalog.New(items)

	hard := tr.HardestItems(cat)
	if len(hard) != 10 {
		t.Errorf("expected cap at 10, got %d", len(hard))
	}
}

func TestHardestItemsMissingFromCatalog(t *testing.T) {
	tr := loadTracker(t, newMemPrefs())
	record(tr, "gone", "1", 0, 3)

	hard := tr.HardestItems(catalog.New(nil))
	if len(hard) != 1 {
		t.Fatalf("expected 1 ranked item, got %d", len(hard))
	}
	if hard[0].Kanji != "gone" {
		t.Errorf("expected id fallback for display, got %q", hard[0].Kanji)
	}
}

func TestSectionReportsOrderedNumerically(t *testing.T) {
	tr := loadTracker(t, newMemPrefs())

	record(tr, "a", "10", 1, 0)
	record(tr, "b", "2", 3, 1)
	record(tr, "c", "1", 0, 2)

	reports := tr.SectionReports()
	if len(reports) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(reports))
	}
	order := []string{"1", "2", "10"}
	for i, want := range order {
		if reports[i].Section != want {
			t.Fatalf("section order %v, want %v", reports, order)
		}
	}
	if reports[1].Attempts != 4 {
		t.Errorf("section 2 attempts %d, want 4", reports[1].Attempts)
	}
	if reports[1].Accuracy != 0.75 {
		t.Errorf("section 2 accuracy %f, want 0.75", reports[1].Accuracy)
	}
}

func TestAccuracyZeroWhenEmpty(t *testing.T) {
	var s Stats
	if s.Accuracy() != 0 {
		t.Error("expected 0 accuracy with no attempts")
	}
}
