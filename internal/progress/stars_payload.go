package progress

import (
	"encoding/json"
	"fmt"

	"github.com/mkobayashi/kanjidrill/internal/payload"
)

// StarsPayload is the import/export shape for the starred set.
type StarsPayload struct {
	Version int      `json:"version"`
	Stars   []string `json:"stars"`
}

// starsPayloadSchema requires a stars array of strings.
var starsPayloadSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{"type": "integer"},
		"stars": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
	"required": []any{"stars"},
}

// ExportStars returns the starred set as a versioned payload.
func (t *Tracker) ExportStars() StarsPayload {
	return StarsPayload{Version: 1, Stars: t.Starred()}
}

// ImportStars validates raw JSON and replaces the starred set wholesale.
// Invalid payloads leave the existing set untouched.
func (t *Tracker) ImportStars(raw []byte) error {
	if err := payload.Validate("stars-payload", starsPayloadSchema, raw); err != nil {
		return err
	}
	var p StarsPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("%w: %v", payload.ErrInvalid, err)
	}

	t.stars = make(map[string]bool, len(p.Stars))
	for _, id := range p.Stars {
		t.stars[id] = true
	}
	t.saveStars()
	return nil
}
