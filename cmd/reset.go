package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkobayashi/kanjidrill/internal/catalog"
	"github.com/mkobayashi/kanjidrill/internal/config"
	"github.com/mkobayashi/kanjidrill/internal/progress"
	"github.com/mkobayashi/kanjidrill/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete saved progress",
	Long:  "Delete saved stats, and optionally stars, settings and the imported catalog.",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes {
			what := "statistics"
			if all {
				what = "ALL data (stats, stars, settings, imported catalog)"
			}
			fmt.Printf("This deletes your %s. Continue? [y/N] ", what)
			reader := bufio.NewReader(os.Stdin)
			line, _ := reader.ReadString('\n')
			if ans := strings.ToLower(strings.TrimSpace(line)); ans != "y" && ans != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

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

		ctx := context.Background()
		prefs := st.PrefRepo()

		keys := []string{progress.PrefKeyStats}
		if all {
			keys = append(keys,
				progress.PrefKeyStars,
				progress.PrefKeySettings,
				progress.PrefKeyMultiOff,
				catalog.PrefKeyData,
			)
		}
		for _, key := range keys {
			if err := prefs.Delete(ctx, key); err != nil {
				return fmt.Errorf("delete %s: %w", key, err)
			}
		}

		fmt.Println("Done.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "also delete stars, settings and the imported catalog")
	resetCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
}
