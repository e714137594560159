package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cyberpath/internal/progress"
)

var (
	flagRuns     int
	flagProfile  string
	flagProfiles bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress and recent runs",
	Long: `Display lifetime statistics, per-level best scores and, when the
progress database is in use, the most recent runs.

Players of "cyberpath serve" keep their progress under their SSH user name.
Use --profiles to list them and --profile to inspect one.

Examples:
  cyberpath stats
  cyberpath stats --runs 25
  cyberpath stats --profiles
  cyberpath stats --profile alice
  cyberpath stats --save ./progress.toml`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of recent runs to show")
	statsCmd.Flags().StringVar(&flagProfile, "profile", "", "Show the progress of this profile (SSH user)")
	statsCmd.Flags().BoolVar(&flagProfiles, "profiles", false, "List every profile in the database")
}

func runStats(_ *cobra.Command, _ []string) error {
	e, err := openEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	if (flagProfiles || flagProfile != "") && e.db == nil {
		return errors.New("profiles need the progress database (drop --save)")
	}
	if flagProfiles {
		return printProfiles(e.db)
	}

	store, db := e.store, e.db
	if flagProfile != "" {
		db = e.db.Profile(flagProfile)
		store = db
	}

	rec := store.Load()

	if db != nil {
		fmt.Printf("Progress (%s)\n", db.ProfileName())
	} else {
		fmt.Println("Progress")
	}
	fmt.Println()
	fmt.Printf("  Max level reached  %d\n", rec.MaxLevelReached)
	fmt.Printf("  Total score        %d\n", rec.TotalScore)
	fmt.Printf("  Total coins        %d\n", rec.TotalCoins)
	fmt.Printf("  Games played       %d\n", rec.GamesPlayed)
	fmt.Printf("  Games won          %d\n", rec.GamesWon)
	fmt.Println()

	fmt.Printf("  %-3s  %-20s  %s\n", "#", "Level", "Best")
	fmt.Printf("  %-3s  %-20s  %s\n", "-", "-----", "----")
	for i := 1; i <= e.levels.Count(); i++ {
		name := "?"
		if lvl, err := e.levels.Level(i); err == nil {
			name = lvl.Name
		}
		fmt.Printf("  %-3d  %-20s  %d\n", i, name, rec.Best(i))
	}

	if db == nil || flagRuns <= 0 {
		return nil
	}

	runs, err := db.RecentRuns(flagRuns)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("  No runs recorded yet.")
		return nil
	}
	fmt.Printf("  %-16s  %-5s  %-8s  %-5s  %s\n", "Date", "Level", "Score", "Coins", "Outcome")
	fmt.Printf("  %-16s  %-5s  %-8s  %-5s  %s\n", "----", "-----", "-----", "-----", "-------")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-5d  %-8d  %-5d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Level, r.Score, r.Coins, r.Outcome)
	}
	return nil
}

// printProfiles lists every stored profile with its headline numbers.
func printProfiles(db *progress.SQLiteStore) error {
	names, err := db.Profiles()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("No profiles yet.")
		return nil
	}

	fmt.Printf("  %-20s  %5s  %8s  %6s  %s\n", "Profile", "Level", "Score", "Played", "Won")
	fmt.Printf("  %-20s  %5s  %8s  %6s  %s\n", "-------", "-----", "-----", "------", "---")
	for _, name := range names {
		rec := db.Profile(name).Load()
		fmt.Printf("  %-20s  %5d  %8d  %6d  %d\n", name, rec.MaxLevelReached, rec.TotalScore, rec.GamesPlayed, rec.GamesWon)
	}
	return nil
}
