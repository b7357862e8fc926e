package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/mkobayashi/kanjidrill/internal/payload"
)

// dataPayloadSchema validates a catalog override: a version and a
// non-empty items array of objects carrying the required item fields.
var dataPayloadSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{"type": "integer"},
		"items": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":      map[string]any{"type": "string", "minLength": 1},
					"kanji":   map[string]any{"type": "string", "minLength": 1},
					"meaning": map[string]any{"type": "string", "minLength": 1},
					"readings": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"section":  map[string]any{"type": []any{"string", "integer"}},
					"category": map[string]any{"type": "string"},
				},
				"required": []any{"id", "kanji", "meaning", "section"},
			},
		},
	},
	"required": []any{"version", "items"},
}

// ParseDataPayload validates and decodes a catalog override payload.
// Rejected payloads leave the active catalog untouched.
func ParseDataPayload(raw []byte) (DataPayload, error) {
	if err := payload.Validate("data-payload", dataPayloadSchema, raw); err != nil {
		return DataPayload{}, err
	}
	var p DataPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return DataPayload{}, fmt.Errorf("%w: %v", payload.ErrInvalid, err)
	}
	return p, nil
}
