// cyberpath is a terminal platformer: collect every coin of a level before
// the timer runs out while dodging patrolling enemies and hazards.
//
// Usage:
//
//	cyberpath                  - Start menu (same as "cyberpath menu")
//	cyberpath play [level]     - Play directly, starting at a level
//	cyberpath levels           - List the level catalog
//	cyberpath stats            - Show progress and recent runs
//	cyberpath reset            - Wipe stored progress
//	cyberpath serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Progress database (default: ~/.cyberpath/progress.db)
//	--save <path>         - Keep progress in a TOML file instead of the database
//	--config <path>       - Custom tuning YAML
//	--difficulty <preset> - easy, normal or hard
//	--levels <dir>        - Load levels from a directory of YAML files
//	--watch               - Reload --levels when files change
//	--sound               - Enable sound effects
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagSavePath   string
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagWatch      bool
	flagSound      bool
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cyberpath",
	Short: "CyberPath - a coin-collecting platformer for your terminal",
	Long: `CyberPath is a 2D platformer played in the terminal. Collect every coin
of a level before the timer runs out. Enemies and hazards cost lives.

Available commands:
  menu     - Level select menu (default)
  play     - Start playing at a level directly
  levels   - List the level catalog
  stats    - Show progress and recent runs
  reset    - Wipe stored progress
  serve    - Start SSH server for remote play

Examples:
  cyberpath
  cyberpath play 2 --difficulty hard
  cyberpath levels --levels ./my-levels
  cyberpath serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.cyberpath/progress.db", "Path to progress database")
	pf.StringVar(&flagSavePath, "save", "", "Keep progress in this TOML file instead of the database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLevels, "levels", "", "Directory of level YAML files (default: built-in levels)")
	pf.BoolVar(&flagWatch, "watch", false, "Reload --levels when files change")
	pf.BoolVar(&flagSound, "sound", false, "Enable sound effects")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
}
