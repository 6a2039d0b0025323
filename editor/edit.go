package editor

import (
	"github.com/iw2rmb/richtext/history"
	"github.com/iw2rmb/richtext/text"
)

func (m *Model) moveTo(pos int) {
	m.cursor = clampInt(pos, 0, m.doc.Count())
	m.syncTypingAttributes()
}

// syncTypingAttributes adopts the attributes of the character before the
// cursor, or of the first character at the start.
func (m *Model) syncTypingAttributes() {
	m.typing = text.Attributes{}
	if m.doc.IsPlain() || m.doc.IsEmpty() {
		return
	}
	if attrs, ok := m.doc.AttributesAt(m.cursor, text.AffinityUpstream); ok {
		m.typing = attrs
	}
}

func (m *Model) toggle(name string) {
	next := m.typing.Clone()
	if next.Has(name) {
		delete(next, name)
	} else {
		next[name] = "true"
	}
	m.typing = next
}

func (m *Model) insert(s string) {
	if m.cfg.ReadOnly || s == "" {
		return
	}
	ins := text.New(s)
	if len(m.typing) > 0 || m.doc.IsRich() {
		ins = text.NewWithAttributes(s, m.typing)
	}
	m.replace(text.Range{Start: m.cursor, End: m.cursor}, ins)
}

func (m *Model) deleteBackward() {
	if m.cfg.ReadOnly || m.cursor == 0 {
		return
	}
	m.replace(text.Range{Start: m.cursor - 1, End: m.cursor}, text.Text{})
	m.syncTypingAttributes()
}

func (m *Model) deleteForward() {
	if m.cfg.ReadOnly || m.cursor >= m.doc.Count() {
		return
	}
	m.replace(text.Range{Start: m.cursor, End: m.cursor + 1}, text.Text{})
	m.syncTypingAttributes()
}

func (m *Model) replace(r text.Range, s text.Text) {
	e := m.hist.Replace(&m.doc, r, s)
	m.cursor = clampInt(e.At+e.Span, 0, m.doc.Count())
	m.emit(OpEdit, e)
}

func (m *Model) undo() {
	if m.cfg.ReadOnly {
		return
	}
	e, ok := m.hist.Undo(&m.doc)
	if !ok {
		return
	}
	m.moveTo(e.At + e.Replaced.Replaced.Count())
	m.emit(OpUndo, e)
}

func (m *Model) redo() {
	if m.cfg.ReadOnly {
		return
	}
	e, ok := m.hist.Redo(&m.doc)
	if !ok {
		return
	}
	m.moveTo(e.At + e.Span)
	m.emit(OpRedo, e)
}

func (m *Model) emit(op EditOp, e history.Edit) {
	if m.cfg.OnEdit == nil {
		return
	}
	m.cfg.OnEdit(EditEvent{Op: op, Edit: e, Cursor: m.cursor, Text: m.doc})
}
