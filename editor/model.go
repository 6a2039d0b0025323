package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/richtext/history"
	"github.com/iw2rmb/richtext/render"
	"github.com/iw2rmb/richtext/text"
)

// Model is a Bubble Tea component editing one attributed text.
type Model struct {
	cfg  Config
	doc  text.Text
	hist *history.Log

	// cursor is a character position in [0, doc.Count()].
	cursor int
	typing text.Attributes

	focused bool

	viewport viewport.Model
}

func New(cfg Config) Model {
	cfg.Render = normalizeRender(cfg.Render)
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)
	m := Model{
		cfg:      cfg,
		doc:      cfg.Text,
		hist:     history.New(history.Options{Limit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.syncTypingAttributes()
	m.rebuildContent()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Text returns the current content. The value is a copy.
func (m Model) Text() text.Text { return m.doc }

func (m Model) Cursor() int { return m.cursor }

func (m Model) History() *history.Log { return m.hist }

func (m Model) CanUndo() bool { return m.hist.CanUndo() }

func (m Model) CanRedo() bool { return m.hist.CanRedo() }

// SetText replaces the content, clamps the cursor and clears the history.
func (m Model) SetText(t text.Text) Model {
	m.doc = t
	m.hist.Clear()
	m.cursor = clampInt(m.cursor, 0, t.Count())
	m.syncTypingAttributes()
	m.rebuildContent()
	m.followCursor()
	return m
}

// SetCursor moves the cursor, clamped to the text, and picks up the
// attributes found there as typing attributes.
func (m Model) SetCursor(pos int) Model {
	m.moveTo(pos)
	m.rebuildContent()
	m.followCursor()
	return m
}

// TypingAttributes returns a copy of the attributes given to inserted text.
func (m Model) TypingAttributes() text.Attributes { return m.typing.Clone() }

func (m Model) SetTypingAttributes(attrs text.Attributes) Model {
	m.typing = attrs.Clone()
	return m
}

// ToggleTypingAttribute removes name from the typing attributes, or sets it
// to "true" when absent.
func (m Model) ToggleTypingAttribute(name string) Model {
	m.toggle(name)
	return m
}

// InsertText inserts s at the cursor with the typing attributes.
func (m Model) InsertText(s string) Model {
	m.insert(s)
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) DeleteBackward() Model {
	m.deleteBackward()
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) DeleteForward() Model {
	m.deleteForward()
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Undo() Model {
	m.undo()
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Redo() Model {
	m.redo()
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) View() string { return m.viewport.View() }

func (m *Model) renderContent() string {
	cursor := render.NoCursor
	if m.focused {
		cursor = m.cursor
	}
	return strings.Join(render.Lines(m.doc, m.cfg.Render, cursor), "\n")
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row := lineOf(splitLines(m.doc.String()), m.cursor)

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
