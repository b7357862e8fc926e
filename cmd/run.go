package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkobayashi/kanjidrill/internal/app"
	"github.com/mkobayashi/kanjidrill/internal/catalog"
	"github.com/mkobayashi/kanjidrill/internal/config"
	"github.com/mkobayashi/kanjidrill/internal/progress"
	"github.com/mkobayashi/kanjidrill/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	prefs := st.PrefRepo()

	// A configured catalog path is imported on every launch so edits to
	// the file take effect without a separate import step.
	if cfg.CatalogPath != "" {
		if err := importCatalogFile(ctx, prefs, cfg.CatalogPath); err != nil {
			fmt.Fprintln(os.Stderr, "catalog import failed:", err)
		}
	}

	cat, err := catalog.Load(ctx, prefs)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	tracker, err := progress.Load(ctx, prefs)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	events, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("open event log: %w", err)
	}

	return app.Run(app.Options{
		Catalog: cat,
		Tracker: tracker,
		Events:  events,
		Config:  *cfg,
	})
}

// importCatalogFile validates a catalog JSON file and stores it as the
// active override.
func importCatalogFile(ctx context.Context, prefs store.PrefRepo, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	payload, err := catalog.ParseDataPayload(raw)
	if err != nil {
		return err
	}
	return prefs.Save(ctx, catalog.PrefKeyData, payload)
}
