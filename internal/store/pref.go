package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mkobayashi/kanjidrill/ent"
	"github.com/mkobayashi/kanjidrill/ent/pref"
)

// PrefRepo is the JSON key-value capability the rest of the app persists
// through. Loads that find no row, or find a row that no longer decodes,
// report absent so the caller falls back to its default instead of failing.
type PrefRepo interface {
	// Load decodes the stored value for key into dest.
	// Returns false when the key is absent or the stored value is unreadable.
	Load(ctx context.Context, key string, dest any) (bool, error)

	// Save stores value under key, replacing any previous value.
	Save(ctx context.Context, key string, value any) error

	// Delete removes the value for key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}

// prefRepo implements PrefRepo using the ent client.
type prefRepo struct {
	client *ent.Client
}

func (r *prefRepo) Load(ctx context.Context, key string, dest any) (bool, error) {
	p, err := r.client.Pref.Query().
		Where(pref.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("query pref %q: %w", key, err)
	}

	if err := json.Unmarshal(p.Value, dest); err != nil {
		// Corrupt stored value: treat as absent so the caller's
		// fallback applies. The next Save overwrites it.
		return false, nil
	}
	return true, nil
}

func (r *prefRepo) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal pref %q: %w", key, err)
	}

	err = r.client.Pref.Create().
		SetKey(key).
		SetValue(raw).
		OnConflictColumns(pref.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save pref %q: %w", key, err)
	}
	return nil
}

func (r *prefRepo) Delete(ctx context.Context, key string) error {
	_, err := r.client.Pref.Delete().
		Where(pref.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete pref %q: %w", key, err)
	}
	return nil
}
