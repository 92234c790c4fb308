package inspector

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Cycle      key.Binding
	Standalone key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Cycle: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "next breakpoint"),
		),
		Standalone: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle standalone"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cycle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Cycle, k.Standalone},
		{k.Help, k.Quit},
	}
}
