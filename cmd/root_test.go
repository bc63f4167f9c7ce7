package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/joshyorko/mansion/common"
	"github.com/joshyorko/mansion/hamlet"
)

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	movesOption, yamlFlag = "", false

	if args == nil {
		args = []string{}
	}
	var sink bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&sink)
	rootCmd.SetErr(&sink)
	err := rootCmd.Execute()
	return sink.String(), err
}

func TestRootWalksFromStdin(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	output, err := run(t, "e\ne\ne\n")
	must_be.Nil(err)
	must_be.True(strings.Contains(output, "You are in the Entrance Hall."))
	must_be.True(strings.Contains(output, "You found the end of this path: Pantry."))
}

func TestExploreWithMoves(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	output, err := run(t, "", "explore", "--moves", `d 'd'`)
	must_be.Nil(err)
	must_be.True(strings.Contains(output, "Your choice (e/d/s): d\nWalking to: Library\n"))
	must_be.True(strings.Contains(output, "You found the end of this path: Office."))
	must_be.True(strings.Contains(output, "Route: Entrance Hall > Library > Office\n"))
}

func TestExploreMovesRunOut(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	output, err := run(t, "e\ne\ne\n", "walk", "-m", "d e e")
	must_be.Nil(err)
	must_be.True(strings.Contains(output, "The left path is blocked or does not exist here."))
	must_be.True(strings.Contains(output, "Leaving the exploration. Until next time!"))
}

func TestExploreMovesWithinOneWord(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	output, err := run(t, "", "explore", "--moves", "eee")
	must_be.Nil(err)
	must_be.True(strings.Contains(output, "You found the end of this path: Pantry."))
	wont_be.True(strings.Contains(output, "Leaving the exploration"))
}

func TestExploreEndedContextIsAnExit(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	expired, stop := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer stop()

	for name, ctx := range map[string]context.Context{"cancelled": cancelled, "deadline": expired} {
		t.Run(name, func(t *testing.T) {
			must_be, _ := hamlet.Specifications(t)

			var sink bytes.Buffer
			must_be.Nil(explore(ctx, strings.NewReader("e\n"), &sink, ""))
			must_be.True(strings.Contains(sink.String(), "Leaving the exploration. Until next time!"))
			must_be.True(strings.Contains(sink.String(), "Route: Entrance Hall\n"))
		})
	}
}

func TestExploreBrokenMoves(t *testing.T) {
	_, wont_be := hamlet.Specifications(t)

	_, err := run(t, "", "explore", "--moves", `'e`)
	wont_be.Nil(err)
}

func TestExploreRejectsArguments(t *testing.T) {
	_, wont_be := hamlet.Specifications(t)

	_, err := run(t, "", "explore", "library")
	wont_be.Nil(err)
}

func TestMapOutline(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	output, err := run(t, "", "map")
	must_be.Nil(err)
	must_be.True(strings.Contains(output, "Mansion, 12 rooms"))
	must_be.True(strings.Contains(output, "e: Dining Room\n"))
	must_be.True(strings.Contains(output, "d: Porch\n"))
}

func TestMapYaml(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	output, err := run(t, "", "map", "--yaml")
	must_be.Nil(err)
	must_be.True(strings.HasPrefix(output, "mansion:\n- room: Entrance Hall\n"))
	must_be.True(strings.Contains(output, "- room: Office\n  leaf: true\n"))
}

func TestVersion(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	output, err := run(t, "", "version")
	must_be.Nil(err)
	must_be.Equal(common.Product+" "+common.Version+"\n", output)
}

func TestTuiNeedsTerminal(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	var code common.ExitCode
	func() {
		defer func() {
			code, _ = recover().(common.ExitCode)
		}()
		run(t, "", "tui")
	}()
	must_be.Equal(1, code.Code)
}
