package interactive

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds all the key bindings of the walk screen
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Exit  key.Binding
	Help  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("e", "E", "left", "h"),
			key.WithHelp("e/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "D", "right", "l"),
			key.WithHelp("d/→", "right"),
		),
		Exit: key.NewBinding(
			key.WithKeys("s", "S", "q", "esc", "ctrl+c"),
			key.WithHelp("s/q", "exit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Exit, k.Help}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Exit, k.Help},
	}
}

var keys = DefaultKeyMap()
