package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkobayashi/kanjidrill/internal/catalog"
	"github.com/mkobayashi/kanjidrill/internal/config"
	"github.com/mkobayashi/kanjidrill/internal/progress"
	"github.com/mkobayashi/kanjidrill/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stars or the active catalog as JSON",
}

var exportStarsCmd = &cobra.Command{
	Use:   "stars [file]",
	Short: "Export starred characters",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPrefs(cmd, func(ctx context.Context, prefs store.PrefRepo) (any, error) {
			tracker, err := progress.Load(ctx, prefs)
			if err != nil {
				return nil, fmt.Errorf("load progress: %w", err)
			}
			return tracker.ExportStars(), nil
		}, args)
	},
}

var exportDataCmd = &cobra.Command{
	Use:   "data [file]",
	Short: "Export the active catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPrefs(cmd, func(ctx context.Context, prefs store.PrefRepo) (any, error) {
			cat, err := catalog.Load(ctx, prefs)
			if err != nil {
				return nil, fmt.Errorf("load catalog: %w", err)
			}
			return cat.Export(), nil
		}, args)
	},
}

// withPrefs opens the store, runs fn, and writes its result as indented
// JSON to the optional file argument or stdout.
func withPrefs(cmd *cobra.Command, fn func(context.Context, store.PrefRepo) (any, error), args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	out, err := fn(ctx, st.PrefRepo())
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	raw = append(raw, '\n')

	if len(args) == 1 {
		if err := os.WriteFile(args[0], raw, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}
		fmt.Println("Wrote", args[0])
		return nil
	}

	_, err = os.Stdout.Write(raw)
	return err
}

func init() {
	exportCmd.AddCommand(exportStarsCmd)
	exportCmd.AddCommand(exportDataCmd)
}
