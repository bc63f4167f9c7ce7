package cmd

import (
	"github.com/joshyorko/mansion/common"
	"github.com/joshyorko/mansion/interactive"
	"github.com/joshyorko/mansion/mansion"
	"github.com/joshyorko/mansion/pretty"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:     "tui",
	Aliases: []string{"ui"},
	Short:   "Walk the mansion on a full terminal screen.",
	Long: `Walk the mansion on a full terminal screen.

Navigation:
  e / ←      Left passage
  d / →      Right passage
  s / q      Leave
  ?          Help`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		pretty.Guard(pretty.Interactive, 1, "%v", interactive.ErrNotInteractive)

		root := buildMansion()
		defer teardown(root)

		restore := holdLogs()
		walker, err := interactive.Run(mansion.NewWalker(root))
		restore()
		pretty.Guard(err == nil, 1, "UI error: %v", err)
		common.Debug("Walk ended %v in %q after %d rooms.", walker.State(), walker.Current().Name, len(walker.Path()))
	},
}

// holdLogs keeps log lines away from the screen while the TUI owns it. The
// returned function writes them out and restores normal logging.
func holdLogs() func() {
	release := common.HoldLogs(500)
	return func() {
		if dropped := release(); dropped > 0 {
			pretty.Warning("%d log lines were dropped while the walk screen was open.", dropped)
		}
	}
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
