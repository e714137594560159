package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe stored progress",
	Long: `Reset best scores, statistics and unlocked levels to a fresh start.

Examples:
  cyberpath reset
  cyberpath reset --yes
  cyberpath reset --save ./progress.toml`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation")
}

func runReset(cmd *cobra.Command, _ []string) error {
	if !flagYes {
		fmt.Fprint(cmd.OutOrStdout(), "Reset all progress? [y/N] ")
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	e, err := openEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	e.store.Reset()
	fmt.Fprintln(os.Stdout, "Progress reset.")
	return nil
}
