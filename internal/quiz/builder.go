package quiz

import (
	"errors"

	"github.com/mkobayashi/kanjidrill/internal/catalog"
)

// ErrEmptyPool means the section/star filter matched no items. The
// caller must not start a session; nothing has been mutated.
var ErrEmptyPool = errors.New("no items match the selected filter")

// SectionAll selects every section.
const SectionAll = "all"

// Question count bounds.
const (
	MinQuestions     = 5
	MaxQuestions     = 200
	MaxAutoQuestions = 20
)

// Filter describes the session pool selection.
type Filter struct {
	Section     string // SectionAll or a specific section id
	StarredOnly bool
}

// BuildPool filters items by section and the starred-only flag.
func BuildPool(items []catalog.Item, f Filter, starred func(id string) bool) []catalog.Item {
	pool := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if f.Section != SectionAll && it.Section != f.Section {
			continue
		}
		if f.StarredOnly && !starred(it.ID) {
			continue
		}
		pool = append(pool, it)
	}
	return pool
}

// ClampCount bounds a user-specified question count to [5, 200].
func ClampCount(n int) int {
	if n < MinQuestions {
		return MinQuestions
	}
	if n > MaxQuestions {
		return MaxQuestions
	}
	return n
}

// AutoCount derives a question count from the pool size: the pool length
// clamped to [5, 20].
func AutoCount(poolLen int) int {
	if poolLen < MinQuestions {
		return MinQuestions
	}
	if poolLen > MaxAutoQuestions {
		return MaxAutoQuestions
	}
	return poolLen
}

// buildQueue concatenates independent shuffles of pool until the queue
// reaches count, then truncates to exactly count. Every pool item
// appears at least once before any repeats whenever count <= len(pool).
func (r *Resolver) buildQueue(pool []catalog.Item, count int) []catalog.Item {
	queue := make([]catalog.Item, 0, count+len(pool))
	pass := make([]catalog.Item, len(pool))
	for len(queue) < count {
		copy(pass, pool)
		r.shuffle(pass)
		queue = append(queue, pass...)
	}
	return queue[:count]
}
