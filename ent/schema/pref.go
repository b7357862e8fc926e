package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Pref is a single persisted preference blob, keyed by name.
// Stars, stats, settings, multi-typing exclusions and the catalog
// override all live here as JSON values.
type Pref struct {
	ent.Schema
}

func (Pref) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Preference name, e.g. stars or stats"),
		field.JSON("value", json.RawMessage{}).
			Comment("JSON-encoded preference value"),
	}
}
