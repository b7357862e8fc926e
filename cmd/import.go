package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkobayashi/kanjidrill/internal/catalog"
	"github.com/mkobayashi/kanjidrill/internal/config"
	"github.com/mkobayashi/kanjidrill/internal/progress"
	"github.com/mkobayashi/kanjidrill/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import stars or a catalog from JSON",
}

var importStarsCmd = &cobra.Command{
	Use:   "stars <file>",
	Short: "Import starred characters, replacing the current set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, prefs store.PrefRepo) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			tracker, err := progress.Load(ctx, prefs)
			if err != nil {
				return fmt.Errorf("load progress: %w", err)
			}
			if err := tracker.ImportStars(raw); err != nil {
				return fmt.Errorf("import stars: %w", err)
			}
			fmt.Printf("Imported %d stars.\n", tracker.StarredCount())
			return nil
		})
	},
}

var importDataCmd = &cobra.Command{
	Use:   "data <file>",
	Short: "Import a catalog override",
	Long:  "Validate a catalog JSON file and store it as the active deck. A rejected file leaves the current deck untouched.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, prefs store.PrefRepo) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			payload, err := catalog.ParseDataPayload(raw)
			if err != nil {
				return fmt.Errorf("import catalog: %w", err)
			}
			if err := prefs.Save(ctx, catalog.PrefKeyData, payload); err != nil {
				return fmt.Errorf("save catalog: %w", err)
			}
			fmt.Printf("Imported %d characters.\n", len(payload.Items))
			return nil
		})
	},
}

// withStore opens the store and runs fn with its pref repo.
func withStore(cmd *cobra.Command, fn func(context.Context, store.PrefRepo) error) error {
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

	return fn(context.Background(), st.PrefRepo())
}

func init() {
	importCmd.AddCommand(importStarsCmd)
	importCmd.AddCommand(importDataCmd)
}
