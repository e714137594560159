package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play, starting at a level (default 1)",
	Long: `Start playing right away, skipping the menu.

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Jump
  R                - Restart the level (score and lives are kept)
  Enter            - Continue after a level ends
  Esc              - Back to the menu
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 50% more time, slower enemies
  normal - Default tuning
  hard   - 25% less time, faster enemies

Examples:
  cyberpath play
  cyberpath play 3 --difficulty hard
  cyberpath play --levels ./my-levels --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	level := 1
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid level %q: expected a positive number", args[0])
		}
		level = n
	}
	return runTUI(level)
}
