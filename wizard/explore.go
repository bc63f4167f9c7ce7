package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/joshyorko/mansion/common"
	"github.com/joshyorko/mansion/mansion"
	"github.com/joshyorko/mansion/pretty"
)

// Explore runs the console walk: it prompts for one key at a time from in
// and writes the story to out until the walker reaches a leaf, the user exits,
// input ends or ctx is cancelled. With echo set, each key read is written
// back after the prompt, which keeps scripted walks readable.
func Explore(ctx context.Context, walker *mansion.Walker, in io.Reader, out io.Writer, echo bool) error {
	keys := newKeyReader(in)

	fmt.Fprintf(out, "\n%s--- Mansion exploration begins ---%s\n", pretty.Bold, pretty.Reset)
	fmt.Fprintf(out, "You are in the %s.\n", walker.Current().Name)

	for {
		if walker.State() == mansion.AtLeaf {
			colored(out, pretty.OutcomeColor("leaf"), "\n%sYou found the end of this path: %s.", pretty.Party, walker.Current().Name)
			route(out, walker)
			return nil
		}
		if err := ctx.Err(); err != nil {
			walker.Step(mansion.CommandExit)
			farewell(out, walker)
			return err
		}

		options(out, walker)
		fmt.Fprintf(out, "Your choice (%c/%c/%c): ", mansion.KeyLeft, mansion.KeyRight, mansion.KeyExit)

		key, err := keys.next()
		switch {
		case errors.Is(err, errMalformed):
			fmt.Fprintln(out)
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(out)
			common.Debug("Input ended in %q, leaving.", walker.Current().Name)
			walker.Step(mansion.CommandExit)
			farewell(out, walker)
			return nil
		case err != nil:
			return fmt.Errorf("reading choice: %w", err)
		}
		if echo {
			fmt.Fprintf(out, "%c\n", key)
		}

		command := mansion.ParseCommand(key)
		outcome := walker.Step(command)
		common.Trace("Key %q in %q: %v.", key, walker.Current().Name, outcome)
		color := pretty.OutcomeColor(outcome.String())
		switch outcome {
		case mansion.Moved:
			colored(out, color, "Walking to: %s", walker.Current().Name)
		case mansion.Blocked:
			colored(out, color, "%sThe %s path is blocked or does not exist here.", pretty.Blocked, direction(command))
		case mansion.Quit:
			farewell(out, walker)
			return nil
		default:
			colored(out, color, "Invalid option. Try '%c', '%c' or '%c'.", mansion.KeyLeft, mansion.KeyRight, mansion.KeyExit)
		}
	}
}

func direction(command mansion.Command) mansion.Direction {
	if command == mansion.CommandRight {
		return mansion.Right
	}
	return mansion.Left
}

func options(out io.Writer, walker *mansion.Walker) {
	left, right := walker.Options()
	choices := []string{}
	if left {
		choices = append(choices, fmt.Sprintf("[%c] Left", mansion.KeyLeft))
	}
	if right {
		choices = append(choices, fmt.Sprintf("[%c] Right", mansion.KeyRight))
	}
	choices = append(choices, fmt.Sprintf("[%c] Exit", mansion.KeyExit))
	fmt.Fprintf(out, "\nPaths: %s\n", strings.Join(choices, " "))
}

func farewell(out io.Writer, walker *mansion.Walker) {
	colored(out, pretty.OutcomeColor("exit"), "Leaving the exploration. Until next time!")
	route(out, walker)
}

func route(out io.Writer, walker *mansion.Walker) {
	fmt.Fprintf(out, "%sRoute: %s%s\n", pretty.Faint, strings.Join(walker.Path(), " > "), pretty.Reset)
}
