package cmd

import (
	"github.com/joshyorko/mansion/common"
	"github.com/joshyorko/mansion/interactive"
	"github.com/joshyorko/mansion/pretty"
	"github.com/joshyorko/mansion/xviper"

	"github.com/spf13/cobra"
)

var (
	configFile    string
	debugFlag     bool
	traceFlag     bool
	silentFlag    bool
	colorlessFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "mansion",
	Short: "Walk the rooms of a mansion, one passage at a time.",
	Long: `Walk through the rooms of a mansion laid out as a binary tree.
From every room you may take the left passage (e), the right passage (d)
or leave (s). The walk ends by itself when a room has no way onwards.

Without a subcommand this is the same as 'mansion explore'.`,
	Args:              cobra.NoArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return explore(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), movesOption)
	},
}

// Root returns the top level command.
func Root() *cobra.Command {
	return rootCmd
}

func Execute() {
	err := rootCmd.Execute()
	pretty.Guard(err == nil, 1, "Error: %v", err)
}

func setup(cmd *cobra.Command, args []string) error {
	if err := xviper.Load(configFile); err != nil {
		return err
	}
	common.DefineVerbosity(
		xviper.GetBool(xviper.SilentKey),
		xviper.GetBool(xviper.DebugKey),
		xviper.GetBool(xviper.TraceKey))

	pretty.Colorless = xviper.GetBool(xviper.ColorlessKey)
	pretty.Setup()
	if !xviper.GetBool(xviper.IconicKey) {
		pretty.Iconic = false
		pretty.Party = ""
		pretty.Blocked = ""
	}
	interactive.Iconic = pretty.Iconic

	common.Debug("Session %s of %s %s; settings from %q.", common.SessionId, common.Product, common.Version, xviper.ConfigFileUsed())
	return nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Settings file to use (default is $HOME/.mansion.yaml).")
	flags.BoolVarP(&debugFlag, "debug", "", false, "Turn on debugging output.")
	flags.BoolVarP(&traceFlag, "trace", "", false, "Turn on tracing output.")
	flags.BoolVarP(&silentFlag, "silent", "", false, "Be less verbose on output.")
	flags.BoolVarP(&colorlessFlag, "colorless", "", false, "Do not use colors in output.")

	for key, name := range map[string]string{
		xviper.DebugKey:     "debug",
		xviper.TraceKey:     "trace",
		xviper.SilentKey:    "silent",
		xviper.ColorlessKey: "colorless",
	} {
		common.Uncritical("bind flag", xviper.BindFlag(key, flags.Lookup(name)))
	}

	rootCmd.Flags().StringVarP(&movesOption, "moves", "m", "", "Walk these keys instead of asking, for example \"e e d\".")
}
