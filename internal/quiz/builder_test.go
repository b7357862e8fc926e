package quiz

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/mkobayashi/kanjidrill/internal/catalog"
)

func testItems(n int) []catalog.Item {
	items := make([]catalog.Item, n)
	for i := range items {
		section := "1"
		if i >= n/2 {
			section = "2"
		}
		items[i] = catalog.Item{
			ID:      fmt.Sprintf("k%d", i),
			Kanji:   fmt.Sprintf("字%d", i),
			Meaning: fmt.Sprintf("meaning %d", i),
			Section: section,
		}
	}
	return items
}

func noStars(string) bool { return false }

func TestBuildPoolSectionFilter(t *testing.T) {
	items := testItems(10)

	all := BuildPool(items, Filter{Section: SectionAll}, noStars)
	if len(all) != 10 {
		t.Errorf("expected 10 items for all sections, got %d", len(all))
	}

	one := BuildPool(items, Filter{Section: "1"}, noStars)
	if len(one) != 5 {
		t.Errorf("expected 5 items for section 1, got %d", len(one))
	}
	for _, it := range one {
		if it.Section != "1" {
			t.Errorf("item %s has section %s, want 1", it.ID, it.Section)
		}
	}
}

func TestBuildPoolStarredOnly(t *testing.T) {
	items := testItems(6)
	starred := func(id string) bool { return id == "k0" || id == "k4" }

	pool := BuildPool(items, Filter{Section: SectionAll, StarredOnly: true}, starred)
	if len(pool) != 2 {
		t.Fatalf("expected 2 starred items, got %d", len(pool))
	}

	// Both filters together.
	pool = BuildPool(items, Filter{Section: "2", StarredOnly: true}, starred)
	if len(pool) != 1 || pool[0].ID != "k4" {
		t.Errorf("expected only k4, got %v", pool)
	}
}

func TestClampCount(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 5}, {4, 5}, {5, 5}, {37, 37}, {200, 200}, {1000, 200},
	}
	for _, c := range cases {
		if got := ClampCount(c.in); got != c.want {
			t.Errorf("ClampCount(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestAutoCount(t *testing.T) {
	cases := []struct{ in, want int }{
		{1, 5}, {5, 5}, {12, 12}, {20, 20}, {50, 20},
	}
	for _, c := range cases {
		if got := AutoCount(c.in); got != c.want {
			t.Errorf("AutoCount(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestBuildQueueExactLength(t *testing.T) {
	r := NewResolver(rand.NewSource(1))
	pool := testItems(7)

	for _, count := range []int{5, 7, 10, 21} {
		queue := r.buildQueue(pool, count)
		if len(queue) != count {
			t.Errorf("count %d: queue length %d", count, len(queue))
		}
	}
}

func TestBuildQueueFullCoverageBeforeRepeats(t *testing.T) {
	r := NewResolver(rand.NewSource(42))
	pool := testItems(8)

	// count == len(pool): every item exactly once.
	queue := r.buildQueue(pool, 8)
	seen := make(map[string]int)
	for _, it := range queue {
		seen[it.ID]++
	}
	for _, it := range pool {
		if seen[it.ID] != 1 {
			t.Errorf("item %s appears %d times, want 1", it.ID, seen[it.ID])
		}
	}
}

func TestBuildQueueWrapsWithReshuffle(t *testing.T) {
	r := NewResolver(rand.NewSource(7))
	pool := testItems(4)

	queue := r.buildQueue(pool, 12)
	if len(queue) != 12 {
		t.Fatalf("queue length %d, want 12", len(queue))
	}

	// Three full passes: each item appears exactly three times.
	seen := make(map[string]int)
	for _, it := range queue {
		seen[it.ID]++
	}
	for _, it := range pool {
		if seen[it.ID] != 3 {
			t.Errorf("item %s appears %d times, want 3", it.ID, seen[it.ID])
		}
	}
}
