package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
	"github.com/joshyorko/mansion/common"
	"github.com/joshyorko/mansion/mansion"
	"github.com/joshyorko/mansion/pretty"
	"github.com/joshyorko/mansion/wizard"

	"github.com/spf13/cobra"
)

var (
	movesOption string
)

var exploreCmd = &cobra.Command{
	Use:     "explore",
	Aliases: []string{"walk", "x"},
	Short:   "Walk the mansion on the console.",
	Long: `Walk the mansion on the console, one key per line:

  e  take the left passage
  d  take the right passage
  s  leave the mansion

Keys are case-insensitive. With --moves the keys are taken from the
given shell-quoted list instead of standard input, one key per word.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return explore(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), movesOption)
	},
}

func buildMansion() *mansion.Room {
	defer common.Stopwatch("Mansion built in").Debug()
	root, err := mansion.Mansion()
	pretty.Guard(err == nil, 2, "Could not build the mansion: %v", err)
	return root
}

func teardown(root *mansion.Room) {
	released := mansion.Release(root, func(room *mansion.Room) {
		common.Trace("Released %q.", room.Name)
	})
	common.Debug("Released %d rooms.", released)
}

func scripted(moves string) (io.Reader, error) {
	keys, err := shlex.Split(moves)
	if err != nil {
		return nil, fmt.Errorf("parsing moves %q: %w", moves, err)
	}
	common.Debug("Scripted walk with %d keys.", len(keys))
	return strings.NewReader(strings.Join(keys, "\n") + "\n"), nil
}

func explore(ctx context.Context, in io.Reader, out io.Writer, moves string) error {
	echo := len(moves) > 0
	if echo {
		source, err := scripted(moves)
		if err != nil {
			return err
		}
		in = source
	}

	root := buildMansion()
	defer teardown(root)

	walker := mansion.NewWalker(root)
	err := wizard.Explore(ctx, walker, in, out, echo)
	common.Debug("Walk ended %v in %q after %d rooms.", walker.State(), walker.Current().Name, len(walker.Path()))
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func init() {
	rootCmd.AddCommand(exploreCmd)
	exploreCmd.Flags().StringVarP(&movesOption, "moves", "m", "", "Walk these keys instead of asking, for example \"e e d\".")
}
