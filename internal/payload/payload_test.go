package payload

import (
	"errors"
	"testing"
)

var testSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name":  map[string]any{"type": "string", "minLength": 1},
		"count": map[string]any{"type": "integer"},
	},
	"required": []any{"name"},
}

func TestValidateAccepts(t *testing.T) {
	if err := Validate("test-ok", testSchema, []byte(`{"name":"x","count":3}`)); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []string{
		`{"count":3}`,
		`{"name":""}`,
		`{"name":"x","count":"three"}`,
		`[1,2,3]`,
		`{broken`,
	}
	for _, raw := range cases {
		err := Validate("test-bad", testSchema, []byte(raw))
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("payload %q: expected ErrInvalid, got %v", raw, err)
		}
	}
}

func TestValidateCachesCompiledSchema(t *testing.T) {
	// Same name twice hits the cache; the result must be identical.
	for i := 0; i < 2; i++ {
		if err := Validate("test-cache", testSchema, []byte(`{"name":"x"}`)); err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
	}
}
