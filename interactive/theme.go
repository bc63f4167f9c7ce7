package interactive

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette of the walk screen.
// Inspired by Tokyo Night.
type Theme struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	TextBright lipgloss.AdaptiveColor
	Text       lipgloss.AdaptiveColor
	TextMuted  lipgloss.AdaptiveColor
	TextDim    lipgloss.AdaptiveColor

	Border    lipgloss.AdaptiveColor
	BorderDim lipgloss.AdaptiveColor
}

func DefaultTheme() Theme {
	return Theme{
		Primary:   lipgloss.AdaptiveColor{Dark: "#82aaff", Light: "#2e7de9"},
		Secondary: lipgloss.AdaptiveColor{Dark: "#c792ea", Light: "#7847bd"},
		Accent:    lipgloss.AdaptiveColor{Dark: "#89ddff", Light: "#007197"},

		Success: lipgloss.AdaptiveColor{Dark: "#c3e88d", Light: "#587539"},
		Warning: lipgloss.AdaptiveColor{Dark: "#ffcb6b", Light: "#8c6c3e"},
		Error:   lipgloss.AdaptiveColor{Dark: "#ff5370", Light: "#f52a65"},
		Info:    lipgloss.AdaptiveColor{Dark: "#89ddff", Light: "#0891b2"},

		TextBright: lipgloss.AdaptiveColor{Dark: "#eeffff", Light: "#343b58"},
		Text:       lipgloss.AdaptiveColor{Dark: "#bfc7d5", Light: "#4c505e"},
		TextMuted:  lipgloss.AdaptiveColor{Dark: "#697098", Light: "#8990a3"},
		TextDim:    lipgloss.AdaptiveColor{Dark: "#4e5579", Light: "#b4b5b9"},

		Border:    lipgloss.AdaptiveColor{Dark: "#5c6370", Light: "#c4c8da"},
		BorderDim: lipgloss.AdaptiveColor{Dark: "#3e4452", Light: "#dfe1e8"},
	}
}

// Iconic controls whether to use Unicode icons or ASCII fallback.
// Set from pretty.Iconic by the tui command.
var Iconic = true
