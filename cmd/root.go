package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mkobayashi/kanjidrill/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "kanjidrill",
	Short: "Kanji flashcard drills in the terminal",
	Long:  "Kanjidrill is an offline flashcard trainer for kanji with multiple choice and typed answers, stars and per-lesson statistics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KANJIDRILL_DB env var)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then KANJIDRILL_DB, then the default
// XDG path.
func resolveDBPath(cmd *cobra.Command, cfgPath string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfgPath != "" {
		return cfgPath, store.EnsureDir(cfgPath)
	}
	return store.DefaultDBPath()
}
