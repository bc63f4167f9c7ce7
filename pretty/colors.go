package pretty

import (
	"os"
	"strings"
)

// ColorMode represents the level of color support available in the terminal
type ColorMode int

const (
	// ColorModeNone indicates no color support (NO_COLOR set or dumb terminal)
	ColorModeNone ColorMode = iota
	// ColorModeBasic indicates 16 basic ANSI colors
	ColorModeBasic
	// ColorMode256 indicates 256-color palette support
	ColorMode256
	// ColorModeTrueColor indicates 24-bit RGB support
	ColorModeTrueColor
)

var (
	detectedColorMode ColorMode
	colorModeDetected bool
)

// DetectColorMode checks environment variables to determine terminal color capabilities.
// Checks in order: NO_COLOR, COLORTERM, TERM.
func DetectColorMode() ColorMode {
	if colorModeDetected {
		return detectedColorMode
	}
	detectedColorMode = detectColorMode()
	colorModeDetected = true
	return detectedColorMode
}

func detectColorMode() ColorMode {
	if os.Getenv("NO_COLOR") != "" {
		return ColorModeNone
	}
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return ColorModeNone
	}
	if strings.Contains(term, "256color") {
		return ColorMode256
	}
	return ColorModeBasic
}

// OutcomeColor returns the ANSI color code for a walk outcome.
// Mappings: moved→cyan, blocked→yellow, invalid→red, leaf→green, exit→grey
func OutcomeColor(outcome string) string {
	if Colorless || Disabled {
		return ""
	}

	switch strings.ToLower(outcome) {
	case "moved":
		return Cyan
	case "blocked":
		return Yellow
	case "invalid":
		return Red
	case "leaf":
		return Green
	case "exit", "exited":
		return Grey
	default:
		return ""
	}
}
