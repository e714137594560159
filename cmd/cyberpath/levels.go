package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long: `Shows every level with its time limit and entity counts.

Use --levels to check a custom level directory before playing it.`,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	e, err := openEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	rec := e.store.Load()

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-20s  %5s  %5s  %7s  %7s  %9s  %s\n", "#", "Name", "Time", "Coins", "Enemies", "Hazards", "Platforms", "Best")
	fmt.Printf("  %-3s  %-20s  %5s  %5s  %7s  %7s  %9s  %s\n", "-", "----", "----", "-----", "-------", "-------", "---------", "----")

	for i := 1; i <= e.levels.Count(); i++ {
		lvl, err := e.levels.Level(i)
		if err != nil {
			return err
		}
		best := fmt.Sprintf("%d", rec.Best(i))
		if !rec.Unlocked(i) {
			best = "locked"
		}
		fmt.Printf("  %-3d  %-20s  %5.0f  %5d  %7d  %7d  %9d  %s\n",
			lvl.Index, lvl.Name, lvl.TimeLimit, lvl.Coins, lvl.Enemies, lvl.Hazards, len(lvl.Platforms), best)
	}

	fmt.Println()
	fmt.Println("Run 'cyberpath play <#>' to play a level.")
	return nil
}
