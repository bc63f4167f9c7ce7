package pretty

import (
	"fmt"
	"os"

	"github.com/joshyorko/mansion/common"
	"github.com/mattn/go-isatty"
)

// PartyIcon marks the end of a path, on the console and on the walk screen.
const PartyIcon = "🎉 "

var (
	Colorless   bool
	Iconic      bool
	Disabled    bool
	Interactive bool
	Grey        string
	Red         string
	Green       string
	Yellow      string
	Cyan        string
	Reset       string
	Party       string
	Blocked     string
	Bold        string
	Faint       string
)

func csi(value string) string {
	return fmt.Sprintf("\x1b[%s", value)
}

func csif(form string, details ...interface{}) string {
	return csi(fmt.Sprintf(form, details...))
}

// Setup decides interactivity and colors from the terminal. Colorless may be
// set by the caller beforehand to force plain output.
func Setup() {
	stdin := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	stdout := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	if DetectColorMode() == ColorModeNone {
		Colorless = true
	}

	// Prompts need both ends on a terminal; colors only need stdout.
	Interactive = stdin && stdout
	Disabled = !stdout
	Iconic = stdout && !Colorless

	common.Trace("Interactive mode enabled: %v; colors enabled: %v; icons enabled: %v", Interactive, !Disabled && !Colorless, Iconic)
	if !Colorless && !Disabled {
		Grey = csi("90m")
		Red = csi("91m")
		Green = csi("92m")
		Yellow = csi("93m")
		Cyan = csi("96m")
		Reset = csi("0m")
		Bold = csi("1m")
		Faint = csi("2m")
	}
	if Iconic {
		Party = PartyIcon
		Blocked = "❌ "
	}
}
