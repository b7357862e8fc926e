package progress

import (
	"sort"
	"strconv"

	"github.com/mkobayashi/kanjidrill/internal/catalog"
)

// minAttemptsForRanking is the floor below which an item does not appear
// in the hardest-items ranking.
const minAttemptsForRanking = 3

// hardestLimit caps the hardest-items ranking length.
const hardestLimit = 10

// HardItem is one entry in the hardest-items ranking.
type HardItem struct {
	ID       string
	Kanji    string
	Meaning  string
	Attempts int
	MissRate float64
}

// SectionReport is the per-lesson accuracy summary.
type SectionReport struct {
	Section  string
	Attempts int
	Accuracy float64
}

// Accuracy returns the overall fraction of correct gradings, 0 when
// nothing has been graded.
func (s Stats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// HardestItems ranks items with at least three attempts by miss rate,
// highest first, capped at ten entries. Items absent from the catalog
// (e.g. after a data import) fall back to their id for display.
func (t *Tracker) HardestItems(cat *catalog.Catalog) []HardItem {
	var out []HardItem
	for id, tally := range t.stats.ByItem {
		n := tally.Attempts()
		if n < minAttemptsForRanking {
			continue
		}
		hi := HardItem{
			ID:       id,
			Kanji:    id,
			Attempts: n,
			MissRate: float64(tally.Wrong) / float64(n),
		}
		if it, ok := cat.Get(id); ok {
			hi.Kanji = it.Kanji
			hi.Meaning = it.Meaning
		}
		out = append(out, hi)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].MissRate == out[j].MissRate {
			return out[i].ID < out[j].ID
		}
		return out[i].MissRate > out[j].MissRate
	})
	if len(out) > hardestLimit {
		out = out[:hardestLimit]
	}
	return out
}

// SectionReports returns per-section accuracy, sorted numerically by
// section identifier when possible.
func (t *Tracker) SectionReports() []SectionReport {
	var out []SectionReport
	for sec, tally := range t.stats.BySection {
		n := tally.Attempts()
		var acc float64
		if n > 0 {
			acc = float64(tally.Correct) / float64(n)
		}
		out = append(out, SectionReport{Section: sec, Attempts: n, Accuracy: acc})
	}

	sort.Slice(out, func(i, j int) bool {
		a, aerr := strconv.Atoi(out[i].Section)
		b, berr := strconv.Atoi(out[j].Section)
		if aerr == nil && berr == nil {
			return a < b
		}
		return out[i].Section < out[j].Section
	})
	return out
}
