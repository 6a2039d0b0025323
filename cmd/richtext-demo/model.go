package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/richtext/editor"
	"github.com/iw2rmb/richtext/render"
	"github.com/iw2rmb/richtext/text"
)

type model struct {
	editor editor.Model
	help   help.Model
	keys   editor.KeyMap
	quit   key.Binding
}

func newModel(opts options, logger *log.Logger) model {
	rcfg := render.DefaultConfig()
	rcfg.TabWidth = opts.TabWidth

	keys := editor.DefaultKeyMap()
	cfg := editor.Config{
		Text:         initialText(opts.Text),
		Render:       rcfg,
		KeyMap:       keys,
		HistoryLimit: opts.HistoryLimit,
		OnEdit:       logEdit(logger),
	}
	return model{
		editor: editor.New(cfg),
		help:   help.New(),
		keys:   keys,
		quit:   key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
	}
}

// initialText returns s as plain text, or a styled sample when s is empty.
func initialText(s string) text.Text {
	if s != "" {
		return text.New(s)
	}
	t := text.New("Hello from richtext.\n\nSome words are bold, some italic.\nType to edit, ctrl+b toggles bold.")
	t.AddAttribute(render.AttrForeground, "212", text.Range{Start: 11, End: 19})
	t.AddAttribute(render.AttrBold, "true", text.Range{Start: 37, End: 41})
	t.AddAttribute(render.AttrItalic, "true", text.Range{Start: 48, End: 54})
	return t
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.quit) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.editor.View(), m.help.View(m.keys))
}
