package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		m.updateKey(msg)
		m.rebuildContent()
		m.followCursor()
		return m, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) {
	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.insert(string(msg.Runes))
		return
	}

	km := m.cfg.KeyMap
	for _, tb := range km.toggles() {
		if key.Matches(msg, tb.binding) {
			m.toggle(tb.attr)
			return
		}
	}

	switch {
	case key.Matches(msg, km.Left):
		m.moveTo(m.cursor - 1)
	case key.Matches(msg, km.Right):
		m.moveTo(m.cursor + 1)
	case key.Matches(msg, km.Up):
		m.moveTo(verticalTarget(splitLines(m.doc.String()), m.cursor, -1))
	case key.Matches(msg, km.Down):
		m.moveTo(verticalTarget(splitLines(m.doc.String()), m.cursor, 1))
	case key.Matches(msg, km.Home):
		lines := splitLines(m.doc.String())
		m.moveTo(lines[lineOf(lines, m.cursor)].Start)
	case key.Matches(msg, km.End):
		lines := splitLines(m.doc.String())
		m.moveTo(lines[lineOf(lines, m.cursor)].End)

	case key.Matches(msg, km.Backspace):
		m.deleteBackward()
	case key.Matches(msg, km.Delete):
		m.deleteForward()
	case key.Matches(msg, km.Enter):
		m.insert("\n")
	case key.Matches(msg, km.Paste):
		m.pasteFromClipboard()

	case key.Matches(msg, km.Undo):
		m.undo()
	case key.Matches(msg, km.Redo):
		m.redo()

	case msg.Type == tea.KeyTab:
		m.insert("\t")
	case msg.Type == tea.KeySpace:
		m.insert(" ")
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		m.insert(string(msg.Runes))
	}
}
