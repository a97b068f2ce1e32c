package course

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/baselearn/internal/ui/layout"
)

type keyMap struct {
	SwitchPane key.Binding
	Back       key.Binding

	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Pick  key.Binding

	ToggleGame key.Binding
	ResetGame  key.Binding

	Next     key.Binding
	Previous key.Binding
	Detail   key.Binding
	Edit     key.Binding
	Check    key.Binding

	Dismiss key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		SwitchPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Modules")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Back")),

		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Move")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↑↓", "Move")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←→", "Column")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←→", "Column")),
		Pick:  key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Pick/Drop")),

		ToggleGame: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "Game")),
		ResetGame:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Reset")),

		Next:     key.NewBinding(key.WithKeys("right", "n"), key.WithHelp("→/n", "Next")),
		Previous: key.NewBinding(key.WithKeys("left", "p"), key.WithHelp("←/p", "Previous")),
		Detail:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "More Info")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "Write Contract")),
		Check:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("Ctrl+S", "Check")),

		Dismiss: key.NewBinding(key.WithKeys("enter", "esc", "space"), key.WithHelp("Enter", "Close")),
	}
}

// hints turns bindings into footer hints, skipping duplicates.
func hints(bindings ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bindings))
	seen := make(map[string]bool, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" || seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return out
}
