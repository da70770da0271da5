// Package keys holds the key bindings shared by screens and footer hints.
package keys

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/statpick/internal/ui/layout"
)

// KeyMap lists every binding the application responds to.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Back    key.Binding
	Restart key.Binding
	Close   key.Binding
	Quit    key.Binding
}

// Default is the application key map.
var Default = KeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "select")),
	Back:    key.NewBinding(key.WithKeys("b", "backspace"), key.WithHelp("b", "previous step")),
	Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "close")),
	Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "quit")),
}

// Hints converts bindings into footer hints, skipping disabled ones.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
