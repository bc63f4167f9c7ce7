package cmd

import (
	"fmt"

	"github.com/joshyorko/mansion/common"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the mansion version.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", common.Product, common.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
