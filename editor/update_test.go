package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/richtext/text"
)

func typeString(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestUpdate_TypingAndToggles(t *testing.T) {
	m := New(Config{Text: text.New("ab")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	m = typeString(m, "XY")
	if got, want := m.Text().DebugString(), "(ab/)(XY/bold:true)"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	m = typeString(m, "Z")
	if got, want := m.Text().DebugString(), "(ab/)(XY/bold:true)(Z/)"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := m.Cursor(); got != 5 {
		t.Fatalf("cursor=%d, want 5", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.TypingAttributes()["bold"]; got != "true" {
		t.Fatalf("typing bold after moving into run=%q, want true", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}, Alt: true})
	if got := m.TypingAttributes()["italic"]; got != "true" {
		t.Fatalf("typing italic=%q, want true", got)
	}
}

func TestUpdate_PlainTypingStaysPlain(t *testing.T) {
	m := New(Config{})
	m = typeString(m, "hi")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got, want := m.Text().String(), "hi \t\n"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if !m.Text().IsPlain() {
		t.Fatalf("expected plain text")
	}
}

func TestUpdate_DeleteByGrapheme(t *testing.T) {
	m := New(Config{Text: text.New("aéx")})
	m = m.SetCursor(2)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got, want := m.Text().String(), "ax"; got != want {
		t.Fatalf("after backspace=%q, want %q", got, want)
	}
	if got := m.Cursor(); got != 1 {
		t.Fatalf("cursor=%d, want 1", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	if got, want := m.Text().String(), "a"; got != want {
		t.Fatalf("after delete=%q, want %q", got, want)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	if got, want := m.Text().String(), "a"; got != want {
		t.Fatalf("delete at end changed text to %q", got)
	}

	m = m.SetCursor(0)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got, want := m.Text().String(), "a"; got != want {
		t.Fatalf("backspace at start changed text to %q", got)
	}
}

func TestUpdate_CombiningMarkJoinsCluster(t *testing.T) {
	m := New(Config{})
	m = typeString(m, "é")
	if got := m.Text().Count(); got != 1 {
		t.Fatalf("count=%d, want 1", got)
	}
	if got := m.Cursor(); got != 1 {
		t.Fatalf("cursor=%d, want 1", got)
	}
}

func TestUpdate_UndoRedo(t *testing.T) {
	m := New(Config{})
	m = typeString(m, "ab")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got, want := m.Text().String(), "a"; got != want {
		t.Fatalf("after undo=%q, want %q", got, want)
	}
	if got := m.Cursor(); got != 1 {
		t.Fatalf("cursor after undo=%d, want 1", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if got, want := m.Text().String(), "ab"; got != want {
		t.Fatalf("after redo=%q, want %q", got, want)
	}
	if got := m.Cursor(); got != 2 {
		t.Fatalf("cursor after redo=%d, want 2", got)
	}
}

func TestUpdate_Movement(t *testing.T) {
	m := New(Config{Text: text.New("abc\nde")})
	m = m.SetCursor(2)

	steps := []struct {
		key  tea.KeyType
		want int
	}{
		{key: tea.KeyDown, want: 6},
		{key: tea.KeyUp, want: 2},
		{key: tea.KeyEnd, want: 3},
		{key: tea.KeyHome, want: 0},
		{key: tea.KeyLeft, want: 0},
		{key: tea.KeyUp, want: 0},
		{key: tea.KeyDown, want: 4},
		{key: tea.KeyDown, want: 6},
		{key: tea.KeyRight, want: 6},
	}
	for i, st := range steps {
		m, _ = m.Update(tea.KeyMsg{Type: st.key})
		if got := m.Cursor(); got != st.want {
			t.Fatalf("step %d (%v): cursor=%d, want %d", i, st.key, got, st.want)
		}
	}
}

func TestUpdate_ReadOnlyBlocksEdits(t *testing.T) {
	m := New(Config{Text: text.New("ab"), ReadOnly: true})
	m = typeString(m, "x")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	if got, want := m.Text().String(), "ab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Cursor(); got != 1 {
		t.Fatalf("cursor=%d, want 1", got)
	}
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := New(Config{}).Blur()
	m = typeString(m, "x")
	if !m.Text().IsEmpty() {
		t.Fatalf("blurred editor accepted input: %q", m.Text().String())
	}
}

func TestUpdate_PasteInsertsLiterally(t *testing.T) {
	m := New(Config{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ctrl+z"), Paste: true})
	if got, want := m.Text().String(), "ctrl+z"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestOnEdit_ReportsEditsUndoAndRedo(t *testing.T) {
	var events []EditEvent
	m := New(Config{
		OnEdit: func(ev EditEvent) { events = append(events, ev) },
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if len(events) != 0 {
		t.Fatalf("events after move: got %d, want 0", len(events))
	}

	m = typeString(m, "a")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})

	wantOps := []EditOp{OpEdit, OpUndo, OpRedo}
	if len(events) != len(wantOps) {
		t.Fatalf("events=%d, want %d", len(events), len(wantOps))
	}
	for i, op := range wantOps {
		if events[i].Op != op {
			t.Fatalf("event %d op=%v, want %v", i, events[i].Op, op)
		}
	}
	if got, want := events[0].Edit.String(), "at: 0, replaced: (), inserted: (a/)"; got != want {
		t.Fatalf("edit record=%q, want %q", got, want)
	}
	if got := events[1].Text.String(); got != "" {
		t.Fatalf("text after undo=%q, want empty", got)
	}
	if got := events[2].Cursor; got != 1 {
		t.Fatalf("cursor after redo=%d, want 1", got)
	}
}
