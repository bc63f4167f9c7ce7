package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joshyorko/mansion/mansion"
	"github.com/joshyorko/mansion/pretty"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	yamlFlag bool
)

var mapCmd = &cobra.Command{
	Use:     "map",
	Aliases: []string{"layout"},
	Short:   "Show the layout of the mansion.",
	Long: `Show the layout of the mansion as an outline, each passage labelled
with the key that takes it. With --yaml the layout is printed as YAML.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showMap(cmd.OutOrStdout(), yamlFlag)
	},
}

func ruleWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return min(width, 60)
		}
	}
	return 40
}

func showMap(out io.Writer, asYaml bool) error {
	if asYaml {
		body, err := mansion.Reference.AsYaml()
		if err != nil {
			return err
		}
		_, err = out.Write(body)
		return err
	}

	root := buildMansion()
	defer teardown(root)

	glyphs := pretty.ActiveBranches()
	fmt.Fprintf(out, "%sMansion, %d rooms%s\n", pretty.Bold, mansion.Count(root), pretty.Reset)
	fmt.Fprintln(out, strings.Repeat(glyphs.Rule, ruleWidth()))
	return mansion.Render(out, root, glyphs)
}

func init() {
	rootCmd.AddCommand(mapCmd)
	mapCmd.Flags().BoolVarP(&yamlFlag, "yaml", "y", false, "Print the layout as YAML.")
}
