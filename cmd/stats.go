package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkale/skillforge/internal/ledger"
	"github.com/mkale/skillforge/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show XP, level, streak, and recent challenges",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		profile, err := localProfile(ctx, st.Profiles())
		if err != nil {
			return fmt.Errorf("resolve local profile: %w", err)
		}

		events := st.Events()
		svc := ledger.NewService(events, events, st.Ledgers())

		xp, err := svc.XpStats(ctx, profile.UserID)
		if err != nil {
			return fmt.Errorf("load xp stats: %w", err)
		}
		challenge, err := svc.Stats(ctx, profile.UserID)
		if err != nil {
			return fmt.Errorf("load challenge stats: %w", err)
		}

		fmt.Printf("%s — Level %d (%d XP)\n", profile.Username, xp.Level, xp.TotalXP)
		fmt.Printf("  %d XP to level %d (%.0f%%)\n", xp.XPToNextLevel, xp.Level+1, xp.ProgressToNextLevel)
		fmt.Printf("  Today: %d XP   This week: %d XP\n", xp.DailyXP, xp.WeeklyXP)
		fmt.Printf("  Challenges: %d total, %d today, %d this week\n",
			challenge.TotalCompleted, challenge.DailyCompleted, challenge.WeeklyCompleted)
		fmt.Printf("  Average score: %d%%   Streak: %d day(s)\n",
			challenge.AverageScore, challenge.CurrentStreak)

		completions, err := svc.Completions(ctx, profile.UserID, 10)
		if err != nil {
			return fmt.Errorf("load completions: %w", err)
		}
		if len(completions) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Printf("%-12s  %-30s  %5s  %6s  %s\n", "Date", "Challenge", "Score", "XP", "Badge")
		fmt.Println(strings.Repeat("─", 75))
		for _, rec := range completions {
			name := rec.ChallengeName
			if len(name) > 30 {
				name = name[:27] + "..."
			}
			fmt.Printf("%-12s  %-30s  %4d%%  %6d  %s\n",
				rec.Timestamp.Format("Jan 02 2006"), name, rec.Score, rec.XPEarned, rec.Badge)
		}
		return nil
	},
}
