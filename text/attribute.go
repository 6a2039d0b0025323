package text

// Attribute returns the value of name at character position pos.
func (t Text) Attribute(name string, pos int, affinity Affinity) (string, bool) {
	attrs, ok := t.AttributesAt(pos, affinity)
	if !ok {
		return "", false
	}
	v, ok := attrs[name]
	return v, ok
}

// AttributesAt returns a copy of the set at character position pos. ok is
// false when t is plain and so tracks no attributes.
func (t Text) AttributesAt(pos int, affinity Affinity) (Attributes, bool) {
	return t.AttributesAtByte(t.ByteOffset(pos), affinity)
}

// AttributesAtByte is AttributesAt addressed by byte offset.
func (t Text) AttributesAtByte(off int, affinity Affinity) (Attributes, bool) {
	attrs, ok := t.runs.attributesAt(off, affinity)
	if !ok {
		return nil, false
	}
	return attrs.Clone(), true
}

// LongestEffectiveRange returns the widest character range around pos whose
// runs all carry exactly the set found at pos.
func (t Text) LongestEffectiveRange(pos int, affinity Affinity) (Range, bool) {
	off := t.ByteOffset(pos)
	seek, _ := t.runs.attributesAt(off, affinity)
	return t.longestEffectiveRange(off, affinity, AttributesEqual(seek))
}

// LongestEffectiveRangeFunc returns the widest character range around pos
// whose runs all satisfy pred. It fails when the run at pos does not.
// pred must not modify the set it is given.
func (t Text) LongestEffectiveRangeFunc(pos int, affinity Affinity, pred func(Attributes) bool) (Range, bool) {
	return t.longestEffectiveRange(t.ByteOffset(pos), affinity, pred)
}

// LongestEffectiveByteRangeFunc is LongestEffectiveRangeFunc addressed and
// answered in bytes.
func (t Text) LongestEffectiveByteRangeFunc(off int, affinity Affinity, pred func(Attributes) bool) (Range, bool) {
	return t.runs.longestEffectiveRange(off, affinity, pred)
}

func (t Text) longestEffectiveRange(off int, affinity Affinity, pred func(Attributes) bool) (Range, bool) {
	r, ok := t.runs.longestEffectiveRange(off, affinity, pred)
	if !ok {
		return Range{}, false
	}
	return t.CharRange(r), true
}

// ModifyAttributes calls fn with a private copy of the set of every run in
// the character range r and stores what fn leaves in it.
func (t *Text) ModifyAttributes(r Range, fn func(Attributes)) {
	t.runs = t.runs.modifyAttributes(t.ByteRange(r), fn)
}

// ModifyAttributesBytes is ModifyAttributes addressed by a byte range on
// cluster boundaries.
func (t *Text) ModifyAttributesBytes(r Range, fn func(Attributes)) {
	t.checkByteRange(r)
	t.runs = t.runs.modifyAttributes(r, fn)
}

func (t *Text) AddAttribute(name, value string, r Range) {
	t.ModifyAttributes(r, func(a Attributes) { a[name] = value })
}

// AddAttributes merges attrs into the sets in r; values in attrs win.
func (t *Text) AddAttributes(attrs Attributes, r Range) {
	t.ModifyAttributes(r, func(a Attributes) {
		for k, v := range attrs {
			a[k] = v
		}
	})
}

func (t *Text) RemoveAttribute(name string, r Range) {
	t.ModifyAttributes(r, func(a Attributes) { delete(a, name) })
}

func (t *Text) RemoveAttributes(names []string, r Range) {
	t.ModifyAttributes(r, func(a Attributes) {
		for _, n := range names {
			delete(a, n)
		}
	})
}

// SetAttributes replaces the sets in r with attrs.
func (t *Text) SetAttributes(attrs Attributes, r Range) {
	t.ModifyAttributes(r, func(a Attributes) {
		clear(a)
		for k, v := range attrs {
			a[k] = v
		}
	})
}

// TransformFunc rewrites one run. It receives the run's content and a
// private copy of its set, which it may modify. Returning ok == false keeps
// the content; otherwise repl replaces it, and an empty repl drops the run.
type TransformFunc func(s string, attrs Attributes) (repl string, ok bool)

// TransformRuns rebuilds the character range r run by run through fn and
// replaces r with the result.
func (t *Text) TransformRuns(r Range, fn TransformFunc) Replaced {
	b := t.ByteRange(r)
	var out Text
	for _, rs := range t.SliceBytes(b).RunSubstrings() {
		attrs := rs.Run.Attrs
		if repl, ok := fn(rs.Text, attrs); ok {
			if repl != "" {
				out.Append(NewWithAttributes(repl, attrs))
			}
			continue
		}
		out.Append(NewWithAttributes(rs.Text, attrs))
	}
	return t.replaceBytes(b, r.Start, out)
}

// TransformAllRuns is TransformRuns over the whole text.
func (t *Text) TransformAllRuns(fn TransformFunc) Replaced {
	return t.TransformRuns(Range{End: t.Count()}, fn)
}
