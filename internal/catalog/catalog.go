// Package catalog owns the immutable set of study items for the process
// lifetime: the bundled default deck, or a user-imported override kept in
// the pref store.
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mkobayashi/kanjidrill/internal/store"
)

//go:embed data/kanji.json
var defaultData []byte

// PrefKeyData is the pref store key holding a catalog override payload.
const PrefKeyData = "data"

// Item is one flashcard: a kanji, its readings, its meaning (possibly
// several senses joined by ";") and the lesson it belongs to.
type Item struct {
	ID       string   `json:"id"`
	Kanji    string   `json:"kanji"`
	Readings []string `json:"readings"`
	Meaning  string   `json:"meaning"`
	Section  string   `json:"section"`
	Category string   `json:"category"`
}

// UnmarshalJSON accepts section as either a JSON string or number.
func (it *Item) UnmarshalJSON(b []byte) error {
	type alias Item
	aux := struct {
		Section json.RawMessage `json:"section"`
		*alias
	}{alias: (*alias)(it)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if len(aux.Section) > 0 {
		var s string
		if err := json.Unmarshal(aux.Section, &s); err == nil {
			it.Section = s
		} else {
			var n json.Number
			if err := json.Unmarshal(aux.Section, &n); err != nil {
				return fmt.Errorf("item %q: section must be string or number", it.ID)
			}
			it.Section = n.String()
		}
	}
	return nil
}

// DataPayload is the import/export shape for a full catalog.
type DataPayload struct {
	Version int    `json:"version"`
	Items   []Item `json:"items"`
}

// Catalog is the loaded item collection.
type Catalog struct {
	items []Item
	byID  map[string]Item
}

// Load returns the active catalog: the override stored in prefs if one
// exists, otherwise the bundled default. A stored override that no longer
// parses is ignored in favor of the default.
func Load(ctx context.Context, prefs store.PrefRepo) (*Catalog, error) {
	var payload DataPayload
	found, err := prefs.Load(ctx, PrefKeyData, &payload)
	if err != nil {
		return nil, fmt.Errorf("load catalog override: %w", err)
	}
	if found && len(payload.Items) > 0 {
		return New(payload.Items), nil
	}

	if err := json.Unmarshal(defaultData, &payload); err != nil {
		return nil, fmt.Errorf("parse bundled catalog: %w", err)
	}
	return New(payload.Items), nil
}

// New builds a catalog from items.
func New(items []Item) *Catalog {
	byID := make(map[string]Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return &Catalog{items: items, byID: byID}
}

// Items returns all items in catalog order.
func (c *Catalog) Items() []Item {
	return c.items
}

// Get returns the item with the given id.
func (c *Catalog) Get(id string) (Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Sections returns the distinct section identifiers, sorted numerically
// when they parse as integers and lexically otherwise.
func (c *Catalog) Sections() []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range c.items {
		if !seen[it.Section] {
			seen[it.Section] = true
			out = append(out, it.Section)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, aerr := strconv.Atoi(out[i])
		b, berr := strconv.Atoi(out[j])
		if aerr == nil && berr == nil {
			return a < b
		}
		return out[i] < out[j]
	})
	return out
}

// Search returns items matching the query against kanji, meaning or any
// reading, case-insensitively. An empty query matches everything.
func (c *Catalog) Search(query string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.items
	}
	var out []Item
	for _, it := range c.items {
		if strings.Contains(it.Kanji, q) ||
			strings.Contains(strings.ToLower(it.Meaning), q) ||
			readingMatches(it.Readings, q) {
			out = append(out, it)
		}
	}
	return out
}

func readingMatches(readings []string, q string) bool {
	for _, r := range readings {
		if strings.Contains(strings.ToLower(r), q) {
			return true
		}
	}
	return false
}

// Export returns the current items as a versioned payload.
func (c *Catalog) Export() DataPayload {
	return DataPayload{Version: 1, Items: c.items}
}

// SplitMeanings splits a meaning string on ";" into trimmed, non-empty
// senses.
func SplitMeanings(meaning string) []string {
	parts := strings.Split(meaning, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// HasMultipleMeanings reports whether the item's meaning encodes more
// than one sense.
func HasMultipleMeanings(it Item) bool {
	return len(SplitMeanings(it.Meaning)) > 1
}
