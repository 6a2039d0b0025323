package editor

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/richtext/render"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks). ctrl+i is
// tab on most terminals, so italic lives on alt+i.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding
	Paste             key.Binding

	Undo, Redo key.Binding

	ToggleBold, ToggleItalic, ToggleUnderline, ToggleStrikethrough key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		ToggleBold:          key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bold")),
		ToggleItalic:        key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "italic")),
		ToggleUnderline:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "underline")),
		ToggleStrikethrough: key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "strikethrough")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.ToggleBold, km.ToggleItalic, km.ToggleUnderline, km.Undo, km.Redo}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down, km.Home, km.End},
		{km.Backspace, km.Delete, km.Enter, km.Paste, km.Undo, km.Redo},
		{km.ToggleBold, km.ToggleItalic, km.ToggleUnderline, km.ToggleStrikethrough},
	}
}

type toggleBinding struct {
	binding key.Binding
	attr    string
}

// toggles pairs each attribute toggle with the attribute it flips.
func (km KeyMap) toggles() []toggleBinding {
	return []toggleBinding{
		{km.ToggleBold, render.AttrBold},
		{km.ToggleItalic, render.AttrItalic},
		{km.ToggleUnderline, render.AttrUnderline},
		{km.ToggleStrikethrough, render.AttrStrikethrough},
	}
}
