package text

import "strings"

// DebugString renders every run as (content/key:value,...), sorted by key.
// A rich run with no attributes renders as (content/), a plain one as
// (content), and empty text as ().
func (t Text) DebugString() string {
	if t.s == "" {
		return "()"
	}

	var sb strings.Builder
	for _, rs := range t.RunSubstrings() {
		sb.WriteByte('(')
		sb.WriteString(rs.Text)
		switch {
		case len(rs.Run.Attrs) > 0:
			sb.WriteByte('/')
			for i, k := range rs.Run.Attrs.Keys() {
				if i > 0 {
					sb.WriteByte(',')
				}
				sb.WriteString(k)
				sb.WriteByte(':')
				sb.WriteString(rs.Run.Attrs[k])
			}
		case t.runs.rich:
			sb.WriteByte('/')
		}
		sb.WriteByte(')')
	}
	return sb.String()
}

// Validate checks that the runs cover the content exactly and that every
// run ends on a grapheme cluster boundary. Errors wrap ErrInvalidRuns.
func (t Text) Validate() error {
	return t.runs.validate(t.s)
}
