package editor

import (
	"reflect"

	"github.com/iw2rmb/richtext/render"
	"github.com/iw2rmb/richtext/text"
)

// Config configures the editor Model.
type Config struct {
	// Initial content. Plain text stays plain until attributes are typed.
	Text text.Text

	// Render maps attributes to styles. Zero value: render.DefaultConfig().
	Render render.Config
	// Zero value: DefaultKeyMap().
	KeyMap KeyMap

	// ReadOnly blocks every edit; movement still works.
	ReadOnly bool

	// Clipboard backs the Paste binding. Nil disables it.
	Clipboard Clipboard

	// Forwarded to history.Options.
	HistoryLimit int

	// OnEdit is called after every change to the text, undo and redo
	// included.
	OnEdit func(EditEvent)
}

func normalizeRender(c render.Config) render.Config {
	if reflect.DeepEqual(c, render.Config{}) {
		return render.DefaultConfig()
	}
	return c
}

func normalizeKeyMap(km KeyMap) KeyMap {
	if reflect.DeepEqual(km, KeyMap{}) {
		return DefaultKeyMap()
	}
	return km
}
