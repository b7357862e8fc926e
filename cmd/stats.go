package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkobayashi/kanjidrill/internal/catalog"
	"github.com/mkobayashi/kanjidrill/internal/config"
	"github.com/mkobayashi/kanjidrill/internal/progress"
	"github.com/mkobayashi/kanjidrill/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		prefs := st.PrefRepo()
		cat, err := catalog.Load(ctx, prefs)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		tracker, err := progress.Load(ctx, prefs)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		s := tracker.Stats()
		fmt.Printf("Answered:     %d\n", s.Total)
		fmt.Printf("Correct:      %d\n", s.Correct)
		fmt.Printf("Accuracy:     %.0f%%\n", s.Accuracy()*100)
		fmt.Printf("Best streak:  %d\n", s.BestStreak)
		fmt.Printf("Starred:      %d\n", tracker.StarredCount())

		if reports := tracker.SectionReports(); len(reports) > 0 {
			fmt.Println()
			fmt.Println("Sections")
			fmt.Println(strings.Repeat("─", 40))
			for _, r := range reports {
				fmt.Printf("  %-6s %5d answers  %3.0f%%\n", r.Section, r.Attempts, r.Accuracy*100)
			}
		}

		if hardest := tracker.HardestItems(cat); len(hardest) > 0 {
			fmt.Println()
			fmt.Println("Hardest characters")
			fmt.Println(strings.Repeat("─", 40))
			for _, h := range hardest {
				fmt.Printf("  %s  %-20s %3.0f%% missed (%d tries)\n",
					h.Kanji, h.Meaning, h.MissRate*100, h.Attempts)
			}
		}

		events, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}
		sessions, err := events.RecentSessions(ctx, 10)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) > 0 {
			fmt.Println()
			fmt.Println("Recent sessions")
			fmt.Println(strings.Repeat("─", 40))
			for _, ev := range sessions {
				scope := ev.Section
				if ev.StarredOnly {
					scope += " ★"
				}
				fmt.Printf("  %s  %-8s %2d/%-3d  streak %d\n",
					ev.Timestamp.Local().Format("2006-01-02 15:04"),
					scope, ev.Correct, ev.Questions, ev.BestStreak)
			}
		}

		return nil
	},
}
