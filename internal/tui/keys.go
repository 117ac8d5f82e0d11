package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/hwgrade/internal/form"
)

// keyMap holds the bindings handled by the program itself, plus the
// form bindings shown in the help footer.
type keyMap struct {
	Move   key.Binding
	Clear  key.Binding
	Enter  key.Binding
	Reload key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Clear, k.Enter, k.Reload, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Clear, k.Enter},
		{k.Reload, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Move: key.NewBinding(
			key.WithKeys("H", "J", "K", "L", "left", "down", "up", "right"),
			key.WithHelp("HJKL", "move"),
		),
		Clear: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "clear search"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "create type"),
		),
		Reload: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("Q", "ctrl+c"),
			key.WithHelp("Q", "finish"),
		),
	}
}

// formKeys translates a key press into the form keys it stands for.
// Keys the form has no use for yield nothing.
func formKeys(msg tea.KeyMsg) []form.Key {
	switch msg.Type {
	case tea.KeyRunes:
		keys := make([]form.Key, len(msg.Runes))
		for i, r := range msg.Runes {
			keys[i] = form.Key(r)
		}
		return keys
	case tea.KeySpace:
		return []form.Key{' '}
	case tea.KeyEnter:
		return []form.Key{form.KeyEnter}
	case tea.KeyBackspace:
		return []form.Key{form.KeyBackspace}
	case tea.KeyLeft:
		return []form.Key{form.KeyLeft}
	case tea.KeyDown:
		return []form.Key{form.KeyDown}
	case tea.KeyUp:
		return []form.Key{form.KeyUp}
	case tea.KeyRight:
		return []form.Key{form.KeyRight}
	}
	return nil
}
