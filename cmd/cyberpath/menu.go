package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cyberpath/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the level select menu",
	Long: `Start CyberPath in interactive menu mode.

Levels unlock as you reach them. After a game you return to the menu.

Controls:
  Up/Down/j/k  - Choose a level
  1-9          - Start a level by number
  Enter/Space  - Start the selected level
  Mouse click  - Start the clicked level
  S            - Toggle the statistics panel
  T            - Level records and run history
  Ctrl+R       - Reset progress
  Q/Esc        - Quit

Examples:
  cyberpath menu
  cyberpath menu --fps 30
  cyberpath menu --save ./progress.toml`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	return runTUI(0)
}

// runTUI opens the environment and runs the terminal UI, starting at
// level if it is positive.
func runTUI(level int) error {
	e, err := openEnv(true)
	if err != nil {
		return err
	}
	defer e.Close()

	e.logger.Info("starting", "level", level, "levels", e.levels.Count())
	return tui.Run(e.deps(), level)
}
