package history

import "github.com/iw2rmb/richtext/text"

// DefaultLimit is the undo depth used when Options.Limit is zero.
const DefaultLimit = 1000

type Options struct {
	Limit int // default: DefaultLimit; negative disables recording
}

// Edit describes one recorded edit. Span is the number of characters the
// inserted content occupied right after the edit; it is smaller than
// Inserted.Count() when the insertion joined a neighbouring cluster.
type Edit struct {
	text.Replaced
	Span int
}

type entry struct {
	edit   Edit
	before text.Text
	after  text.Text
}

// Log is an undo/redo log. Create one with New.
type Log struct {
	opt  Options
	undo []entry
	redo []entry
}

func New(opt Options) *Log {
	if opt.Limit == 0 {
		opt.Limit = DefaultLimit
	}
	return &Log{opt: opt}
}

func (l *Log) Limit() int { return l.opt.Limit }

func (l *Log) CanUndo() bool { return len(l.undo) > 0 }

func (l *Log) CanRedo() bool { return len(l.redo) > 0 }

// Len returns the number of undoable and redoable entries.
func (l *Log) Len() (undo, redo int) { return len(l.undo), len(l.redo) }

// Clear drops every entry.
func (l *Log) Clear() {
	l.undo = nil
	l.redo = nil
}

// Replace replaces the characters in r with s and records the edit.
func (l *Log) Replace(t *text.Text, r text.Range, s text.Text) Edit {
	return l.Do(t, func(t *text.Text) text.Replaced {
		return t.ReplaceSubrange(r, s)
	})
}

// Do runs fn against t and records the edit it reports. Recording a new edit
// clears the redo stack.
func (l *Log) Do(t *text.Text, fn func(*text.Text) text.Replaced) Edit {
	before := *t
	rec := fn(t)
	e := Edit{
		Replaced: rec,
		Span:     t.Count() - before.Count() + rec.Replaced.Count(),
	}
	if l.opt.Limit < 0 {
		return e
	}
	l.push(entry{edit: e, before: before, after: *t})
	l.redo = nil
	return e
}

// Undo restores t to its state before the most recent edit and returns that
// edit. It reports false when there is nothing to undo.
func (l *Log) Undo(t *text.Text) (Edit, bool) {
	if len(l.undo) == 0 {
		return Edit{}, false
	}
	i := len(l.undo) - 1
	e := l.undo[i]
	l.undo = l.undo[:i]
	l.redo = append(l.redo, e)

	*t = e.before
	return e.edit, true
}

// Redo re-applies the most recently undone edit and returns it.
func (l *Log) Redo(t *text.Text) (Edit, bool) {
	if len(l.redo) == 0 {
		return Edit{}, false
	}
	i := len(l.redo) - 1
	e := l.redo[i]
	l.redo = l.redo[:i]
	l.push(e)

	*t = e.after
	return e.edit, true
}

func (l *Log) push(e entry) {
	l.undo = append(l.undo, e)
	if len(l.undo) > l.opt.Limit {
		l.undo = l.undo[len(l.undo)-l.opt.Limit:]
	}
}
