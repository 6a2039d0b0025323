package text

import "fmt"

// Replaced records one edit: at character position At, Replaced was removed
// and Inserted put in its place. Inserted is always rich.
//
// A record is best-effort content for an undo log. When an edit joins a
// combining sequence across its edges, re-applying a record does not
// necessarily restore the exact prior cluster layout.
type Replaced struct {
	At       int
	Replaced Text
	Inserted Text
}

func (r Replaced) String() string {
	return fmt.Sprintf("at: %d, replaced: %s, inserted: %s", r.At, r.Replaced.DebugString(), r.Inserted.DebugString())
}

// Insert inserts s before character position at.
func (t *Text) Insert(s Text, at int) Replaced {
	return t.ReplaceSubrange(Range{Start: at, End: at}, s)
}

// Prepend inserts s at the start.
func (t *Text) Prepend(s Text) Replaced {
	return t.ReplaceSubrange(Range{}, s)
}

// ReplaceSubrange replaces the characters in r with s.
func (t *Text) ReplaceSubrange(r Range, s Text) Replaced {
	return t.replaceBytes(t.ByteRange(r), r.Start, s)
}

// ReplaceBytes replaces the bytes in r, which must lie on cluster
// boundaries, with s.
func (t *Text) ReplaceBytes(r Range, s Text) Replaced {
	t.checkByteRange(r)
	return t.replaceBytes(r, t.CharOffset(r.Start), s)
}

func (t *Text) replaceBytes(r Range, at int, s Text) Replaced {
	if s.IsRich() && t.IsPlain() {
		*t = t.AsRich()
	}
	tail := t.splitBytes(r.End)
	replaced := t.splitBytes(r.Start)
	t.Append(s)
	t.Append(tail)
	return Replaced{At: at, Replaced: replaced, Inserted: s.AsRich()}
}

// Split removes the characters from pos onward and returns them.
func (t *Text) Split(pos int) Text {
	return t.splitBytes(t.ByteOffset(pos))
}

// Append adds s to the end. Runs at the seam are realigned when s starts with
// marks that combine with the last character of t.
func (t *Text) Append(s Text) Replaced {
	rec := Replaced{At: t.Count(), Inserted: s.AsRich()}
	if s.IsEmpty() {
		return rec
	}

	seam := len(t.s)
	t.s += s.s
	t.runs = t.runs.appending(s.runs).fixBoundariesAfterAppend(seam, t.s)
	return rec
}

// Appending returns t followed by s, leaving t unchanged.
func (t Text) Appending(s Text) Text {
	t.Append(s)
	return t
}
