package editor

import (
	"sort"

	"github.com/rivo/uniseg"
)

// line is one logical line in character positions. End excludes the newline
// cluster.
type line struct {
	Start, End int
}

func (l line) Len() int { return l.End - l.Start }

func splitLines(s string) []line {
	var out []line
	start, pos := 0, 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if isNewline(g.Str()) {
			out = append(out, line{Start: start, End: pos})
			start = pos + 1
		}
		pos++
	}
	return append(out, line{Start: start, End: pos})
}

func isNewline(cluster string) bool {
	return cluster == "\n" || cluster == "\r\n" || cluster == "\r"
}

// lineOf returns the index of the line holding pos. A cursor on a newline
// belongs to the line the newline ends.
func lineOf(lines []line, pos int) int {
	i := sort.Search(len(lines), func(i int) bool { return lines[i].End >= pos })
	return clampInt(i, 0, len(lines)-1)
}

// verticalTarget returns the position dy lines away from pos, keeping the
// character column where the target line is long enough.
func verticalTarget(lines []line, pos, dy int) int {
	row := lineOf(lines, pos)
	col := pos - lines[row].Start
	next := row + dy
	if next < 0 {
		return 0
	}
	if next >= len(lines) {
		return lines[len(lines)-1].End
	}
	return lines[next].Start + min(col, lines[next].Len())
}
