package text

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/richtext/internal/grapheme"
)

// Text is a string paired with its attribute runs.
//
// The zero value is an empty plain text. Plain text tracks no attributes;
// it becomes rich on the first attribute write or when rich text is
// inserted, and never turns plain again.
type Text struct {
	s    string
	runs runList
}

// New returns plain text holding s.
func New(s string) Text {
	return Text{s: s, runs: uniformRuns(len(s))}
}

// NewWithAttributes returns rich text holding s with attrs on all of it.
// An empty s yields rich text with no runs.
func NewWithAttributes(s string, attrs Attributes) Text {
	if s == "" {
		return Text{runs: richRuns(nil)}
	}
	return Text{s: s, runs: richRuns([]Run{{ByteLen: len(s), Attrs: attrs.Clone()}})}
}

// String returns the text content.
func (t Text) String() string { return t.s }

func (t Text) IsEmpty() bool { return t.s == "" }

// Count returns the number of characters (grapheme clusters).
func (t Text) Count() int { return grapheme.Count(t.s) }

// ByteLen returns the UTF-8 length of the content.
func (t Text) ByteLen() int { return len(t.s) }

// IsPlain reports whether attribute tracking is off.
func (t Text) IsPlain() bool { return !t.runs.rich }

// IsRich reports whether attribute tracking is on.
func (t Text) IsRich() bool { return t.runs.rich }

// HasAttributes reports whether any run carries a non-empty set.
func (t Text) HasAttributes() bool {
	if !t.runs.rich {
		return false
	}
	for _, r := range t.runs.runs {
		if len(r.Attrs) > 0 {
			return true
		}
	}
	return false
}

// AsPlain returns the content without attributes.
func (t Text) AsPlain() Text {
	if !t.runs.rich {
		return t
	}
	return New(t.s)
}

// AsRich returns t with attribute tracking on. Plain content gets one run
// with an empty set.
func (t Text) AsRich() Text {
	t.runs = t.runs.asRich()
	return t
}

// Equal reports whether t and o hold the same content and runs.
func (t Text) Equal(o Text) bool {
	return t.s == o.s && t.runs.equal(o.runs)
}

// Runs returns a copy of the runs. Plain text reports a single run with an
// empty set, or none when empty.
func (t Text) Runs() []Run {
	runs := t.runs.materialize()
	out := make([]Run, len(runs))
	for i, r := range runs {
		out[i] = Run{ByteLen: r.ByteLen, Attrs: r.Attrs.Clone()}
	}
	return out
}

// RunRanges returns every run with its byte, UTF-16 and character range,
// computed in one pass.
func (t Text) RunRanges() []RunRange {
	runs := t.runs.materialize()
	if len(runs) == 0 {
		return nil
	}
	bounds := grapheme.Boundaries(t.s)

	out := make([]RunRange, 0, len(runs))
	var bytePos, utf16Pos, charPos int
	for _, r := range runs {
		end := bytePos + r.ByteLen
		units := grapheme.UTF16Len(t.s[bytePos:end])
		charEnd, ok := grapheme.IndexOf(bounds, end)
		if !ok {
			panic(fmt.Sprintf("text: run boundary %d inside a grapheme cluster", end))
		}
		out = append(out, RunRange{
			Run:   Run{ByteLen: r.ByteLen, Attrs: r.Attrs.Clone()},
			Bytes: Range{Start: bytePos, End: end},
			UTF16: Range{Start: utf16Pos, End: utf16Pos + units},
			Chars: Range{Start: charPos, End: charEnd},
		})
		bytePos, utf16Pos, charPos = end, utf16Pos+units, charEnd
	}
	return out
}

// RunSubstrings pairs each run with the content it covers.
func (t Text) RunSubstrings() []RunSubstring {
	runs := t.runs.materialize()
	out := make([]RunSubstring, 0, len(runs))
	off := 0
	for _, r := range runs {
		out = append(out, RunSubstring{
			Run:  Run{ByteLen: r.ByteLen, Attrs: r.Attrs.Clone()},
			Text: t.s[off : off+r.ByteLen],
		})
		off += r.ByteLen
	}
	return out
}

// ByteOffset translates a character position into a byte offset.
func (t Text) ByteOffset(pos int) int {
	off, ok := grapheme.ByteOffset(t.s, pos)
	if !ok {
		panic(fmt.Sprintf("text: position %d out of range [0:%d]", pos, t.Count()))
	}
	return off
}

// CharOffset translates a byte offset on a cluster boundary into a
// character position.
func (t Text) CharOffset(off int) int {
	pos, ok := grapheme.CharOffset(t.s, off)
	if !ok {
		panic(fmt.Sprintf("text: byte offset %d is not a character boundary of %d bytes", off, len(t.s)))
	}
	return pos
}

// ByteRange translates a character range into a byte range.
func (t Text) ByteRange(r Range) Range {
	checkOrder(r)
	bounds := grapheme.Boundaries(t.s)
	if r.Start < 0 || r.End >= len(bounds) {
		panic(fmt.Sprintf("text: range [%d:%d] out of range [0:%d]", r.Start, r.End, len(bounds)-1))
	}
	return Range{Start: bounds[r.Start], End: bounds[r.End]}
}

// CharRange translates a byte range on cluster boundaries into a character
// range.
func (t Text) CharRange(r Range) Range {
	checkOrder(r)
	bounds := grapheme.Boundaries(t.s)
	start, ok1 := grapheme.IndexOf(bounds, r.Start)
	end, ok2 := grapheme.IndexOf(bounds, r.End)
	if !ok1 || !ok2 {
		panic(fmt.Sprintf("text: byte range [%d:%d] is not on character boundaries", r.Start, r.End))
	}
	return Range{Start: start, End: end}
}

// Slice returns an independent copy of the characters in r.
func (t Text) Slice(r Range) Text {
	return t.SliceBytes(t.ByteRange(r))
}

// SliceBytes returns an independent copy of the bytes in r, which must lie
// on cluster boundaries.
func (t Text) SliceBytes(r Range) Text {
	t.checkByteRange(r)
	_ = t.splitBytes(r.End)
	return t.splitBytes(r.Start)
}

func checkOrder(r Range) {
	if r.Start > r.End {
		panic(fmt.Sprintf("text: inverted range [%d:%d]", r.Start, r.End))
	}
}

func (t Text) checkByteRange(r Range) {
	checkOrder(r)
	if !grapheme.IsBoundary(t.s, r.Start) || !grapheme.IsBoundary(t.s, r.End) {
		panic(fmt.Sprintf("text: byte range [%d:%d] is not on character boundaries of %d bytes", r.Start, r.End, len(t.s)))
	}
}

// emptyLike returns empty text tracking attributes the way t does.
func (t Text) emptyLike() Text {
	if t.runs.rich {
		return Text{runs: richRuns(nil)}
	}
	return Text{}
}

// splitBytes removes and returns the suffix starting at byte off, which must
// be a cluster boundary. The ends are handled without touching the runs.
func (t *Text) splitBytes(off int) Text {
	switch off {
	case len(t.s):
		return t.emptyLike()
	case 0:
		suffix := *t
		*t = t.emptyLike()
		return suffix
	}
	prefix, suffix := t.runs.split(off)
	rest := Text{s: strings.Clone(t.s[off:]), runs: suffix}
	t.s = strings.Clone(t.s[:off])
	t.runs = prefix
	return rest
}
