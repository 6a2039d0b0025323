package history

import (
	"testing"

	"github.com/iw2rmb/richtext/text"
)

func TestLog_UndoRedo_BasicTyping(t *testing.T) {
	l := New(Options{})
	doc := text.New("")
	if l.CanUndo() {
		t.Fatalf("expected CanUndo=false")
	}
	if l.CanRedo() {
		t.Fatalf("expected CanRedo=false")
	}

	l.Replace(&doc, text.Range{Start: 0, End: 0}, text.New("a"))
	l.Replace(&doc, text.Range{Start: 1, End: 1}, text.New("b"))
	if got, want := doc.String(), "ab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	e, ok := l.Undo(&doc)
	if !ok {
		t.Fatalf("expected Undo=true")
	}
	if got, want := doc.String(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := e.At+e.Replaced.Replaced.Count(), 1; got != want {
		t.Fatalf("cursor hint=%d, want %d", got, want)
	}
	if !l.CanRedo() {
		t.Fatalf("expected CanRedo=true")
	}

	e, ok = l.Redo(&doc)
	if !ok {
		t.Fatalf("expected Redo=true")
	}
	if got, want := doc.String(), "ab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := e.At+e.Span, 2; got != want {
		t.Fatalf("cursor hint=%d, want %d", got, want)
	}
}

func TestLog_UndoRedo_EmptyStacks_NoMutation(t *testing.T) {
	l := New(Options{})
	doc := text.NewWithAttributes("hi", text.Attributes{"k": "v"})
	before := doc

	if _, ok := l.Undo(&doc); ok {
		t.Fatalf("expected Undo=false")
	}
	if _, ok := l.Redo(&doc); ok {
		t.Fatalf("expected Redo=false")
	}
	if !doc.Equal(before) {
		t.Fatalf("text=%s, want %s", doc.DebugString(), before.DebugString())
	}
}

func TestLog_UndoRestoresAttributes(t *testing.T) {
	l := New(Options{})
	doc := text.NewWithAttributes("ab", text.Attributes{"a": "1"})
	doc.Append(text.NewWithAttributes("cd", text.Attributes{"b": "1"}))
	orig := doc

	l.Replace(&doc, text.Range{Start: 1, End: 3}, text.New("XYZ"))
	if got, want := doc.DebugString(), "(a/a:1)(XYZ/)(d/b:1)"; got != want {
		t.Fatalf("after edit=%q, want %q", got, want)
	}

	l.Undo(&doc)
	if got, want := doc.DebugString(), orig.DebugString(); got != want {
		t.Fatalf("after undo=%q, want %q", got, want)
	}

	l.Redo(&doc)
	if got, want := doc.DebugString(), "(a/a:1)(XYZ/)(d/b:1)"; got != want {
		t.Fatalf("after redo=%q, want %q", got, want)
	}
}

func TestLog_NewEditClearsRedo(t *testing.T) {
	l := New(Options{})
	doc := text.New("")
	l.Replace(&doc, text.Range{}, text.New("a"))
	l.Undo(&doc)
	if !l.CanRedo() {
		t.Fatalf("expected CanRedo=true")
	}
	l.Replace(&doc, text.Range{}, text.New("b"))
	if l.CanRedo() {
		t.Fatalf("expected CanRedo=false after a new edit")
	}
}

func TestLog_LimitTrimsOldest(t *testing.T) {
	l := New(Options{Limit: 2})
	doc := text.New("")
	for i, s := range []string{"a", "b", "c"} {
		l.Replace(&doc, text.Range{Start: i, End: i}, text.New(s))
	}
	if undo, _ := l.Len(); undo != 2 {
		t.Fatalf("undo depth=%d, want 2", undo)
	}
	for l.CanUndo() {
		l.Undo(&doc)
	}
	if got, want := doc.String(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestLog_DefaultAndDisabled(t *testing.T) {
	if got := New(Options{}).Limit(); got != DefaultLimit {
		t.Fatalf("limit=%d, want %d", got, DefaultLimit)
	}

	l := New(Options{Limit: -1})
	doc := text.New("")
	l.Replace(&doc, text.Range{}, text.New("a"))
	if got, want := doc.String(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if l.CanUndo() {
		t.Fatalf("expected CanUndo=false with recording disabled")
	}
}

func TestLog_UndoIsExactAcrossCombiningMarks(t *testing.T) {
	l := New(Options{})
	doc := text.NewWithAttributes("ab", text.Attributes{"k": "v"})
	orig := doc

	e := l.Replace(&doc, text.Range{Start: 1, End: 1}, text.New("\u0301"))
	if got, want := doc.Count(), 2; got != want {
		t.Fatalf("count=%d, want %d", got, want)
	}
	if e.Span != 0 {
		t.Fatalf("span=%d, want 0", e.Span)
	}

	l.Undo(&doc)
	if !doc.Equal(orig) {
		t.Fatalf("after undo=%s, want %s", doc.DebugString(), orig.DebugString())
	}
	l.Redo(&doc)
	if got, want := doc.String(), "a\u0301b"; got != want {
		t.Fatalf("after redo=%q, want %q", got, want)
	}
}

func TestLog_DoRecordsArbitraryEdits(t *testing.T) {
	l := New(Options{})
	doc := text.New("abc")
	e := l.Do(&doc, func(t *text.Text) text.Replaced {
		return t.Append(text.NewWithAttributes("d", text.Attributes{"b": "1"}))
	})
	if got, want := e.String(), "at: 3, replaced: (), inserted: (d/b:1)"; got != want {
		t.Fatalf("record=%q, want %q", got, want)
	}
	l.Undo(&doc)
	if got, want := doc.DebugString(), "(abc)"; got != want {
		t.Fatalf("after undo=%q, want %q", got, want)
	}
}

func TestLog_Clear(t *testing.T) {
	l := New(Options{})
	doc := text.New("")
	l.Replace(&doc, text.Range{}, text.New("a"))
	l.Undo(&doc)
	l.Replace(&doc, text.Range{}, text.New("b"))
	l.Clear()
	if l.CanUndo() || l.CanRedo() {
		t.Fatalf("expected empty log after Clear")
	}
}
