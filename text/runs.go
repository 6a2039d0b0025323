package text

import (
	"errors"
	"fmt"
	"sort"

	"github.com/iw2rmb/richtext/internal/grapheme"
)

// ErrInvalidRuns is wrapped by every error Validate returns.
var ErrInvalidRuns = errors.New("text: invalid run list")

// runList partitions a byte extent into runs. The zero value is a uniform
// list of length zero.
//
// A uniform list (rich == false) tracks no attributes and stores only its
// length. A rich list stores runs; zero-length runs never survive an
// operation. Every method returns a new list and leaves the receiver and its
// backing array untouched, so Text values can share lists freely.
type runList struct {
	rich bool
	n    int
	runs []Run
}

func uniformRuns(n int) runList { return runList{n: n} }

func richRuns(runs []Run) runList { return runList{rich: true, runs: runs} }

func (l runList) byteLen() int {
	if !l.rich {
		return l.n
	}
	total := 0
	for _, r := range l.runs {
		total += r.ByteLen
	}
	return total
}

// materialize returns the runs, presenting a uniform list as a single run
// with an empty set. The slice must not be modified.
func (l runList) materialize() []Run {
	if l.rich {
		return l.runs
	}
	if l.n == 0 {
		return nil
	}
	return []Run{{ByteLen: l.n, Attrs: Attributes{}}}
}

// asRich converts a uniform list into the equivalent rich list.
func (l runList) asRich() runList {
	if l.rich {
		return l
	}
	if l.n == 0 {
		return richRuns(nil)
	}
	return richRuns([]Run{{ByteLen: l.n, Attrs: Attributes{}}})
}

func (l runList) equal(o runList) bool {
	if l.rich != o.rich {
		return false
	}
	if !l.rich {
		return l.n == o.n
	}
	if len(l.runs) != len(o.runs) {
		return false
	}
	for i := range l.runs {
		if l.runs[i].ByteLen != o.runs[i].ByteLen || !l.runs[i].Attrs.Equal(o.runs[i].Attrs) {
			return false
		}
	}
	return true
}

// runIndexAt returns the index of the run holding byte off. On an exact
// boundary, affinity decides; both ends clamp to the outermost run.
func runIndexAt(runs []Run, off int, affinity Affinity) int {
	end := 0
	for i, r := range runs {
		end += r.ByteLen
		if end > off {
			return i
		}
		if end == off {
			if affinity == AffinityDownstream && i+1 < len(runs) {
				return i + 1
			}
			return i
		}
	}
	panic(fmt.Sprintf("text: byte offset %d out of range [0:%d]", off, end))
}

// attributesAt returns the set of the run holding off. ok is false for a
// uniform list, which tracks nothing. An empty rich list yields an empty set.
func (l runList) attributesAt(off int, affinity Affinity) (Attributes, bool) {
	if !l.rich {
		if off < 0 || off > l.n {
			panic(fmt.Sprintf("text: byte offset %d out of range [0:%d]", off, l.n))
		}
		return nil, false
	}
	if len(l.runs) == 0 {
		if off != 0 {
			panic(fmt.Sprintf("text: byte offset %d out of range [0:0]", off))
		}
		return Attributes{}, true
	}
	return l.runs[runIndexAt(l.runs, off, affinity)].Attrs, true
}

// longestEffectiveRange grows the run at off left and right while pred
// holds and returns the covered byte range.
func (l runList) longestEffectiveRange(off int, affinity Affinity, pred func(Attributes) bool) (Range, bool) {
	runs := l.materialize()
	if len(runs) == 0 {
		if off != 0 {
			panic(fmt.Sprintf("text: byte offset %d out of range [0:0]", off))
		}
		return Range{}, false
	}
	i := runIndexAt(runs, off, affinity)
	if !pred(runs[i].Attrs) {
		return Range{}, false
	}

	lo, hi := i, i
	for lo > 0 && pred(runs[lo-1].Attrs) {
		lo--
	}
	for hi < len(runs)-1 && pred(runs[hi+1].Attrs) {
		hi++
	}

	var out Range
	for j := 0; j < lo; j++ {
		out.Start += runs[j].ByteLen
	}
	out.End = out.Start
	for j := lo; j <= hi; j++ {
		out.End += runs[j].ByteLen
	}
	return out, true
}

// appending concatenates l and o. Boundary runs merge when their sets are
// equal. Grapheme alignment at the seam is not checked here; callers follow
// up with fixBoundariesAfterAppend.
func (l runList) appending(o runList) runList {
	if !l.rich && !o.rich {
		return uniformRuns(l.n + o.n)
	}
	return richRuns(joinRuns(l.asRich().runs, o.asRich().runs))
}

func joinRuns(a, b []Run) []Run {
	out := make([]Run, 0, len(a)+len(b))
	for _, r := range a {
		if r.ByteLen > 0 {
			out = append(out, r)
		}
	}
	seam := true
	for _, r := range b {
		if r.ByteLen == 0 {
			continue
		}
		if n := len(out); seam && n > 0 && out[n-1].Attrs.Equal(r.Attrs) {
			out[n-1].ByteLen += r.ByteLen
		} else {
			out = append(out, r)
		}
		seam = false
	}
	return out
}

// split cuts the list at off into the retained prefix and the removed
// suffix. A run straddling off is cut in two.
func (l runList) split(off int) (prefix, suffix runList) {
	total := l.byteLen()
	if off < 0 || off > total {
		panic(fmt.Sprintf("text: split offset %d out of range [0:%d]", off, total))
	}
	if !l.rich {
		return uniformRuns(off), uniformRuns(total - off)
	}

	var pre, suf []Run
	start := 0
	for _, r := range l.runs {
		end := start + r.ByteLen
		switch {
		case end <= off:
			pre = append(pre, r)
		case start >= off:
			suf = append(suf, r)
		default:
			pre = append(pre, Run{ByteLen: off - start, Attrs: r.Attrs})
			suf = append(suf, Run{ByteLen: end - off, Attrs: r.Attrs})
		}
		start = end
	}
	return richRuns(pre), richRuns(suf)
}

// ensureBoundary makes off a run boundary, cutting the run that straddles
// it. Calling it again with the same offset is a no-op.
func (l runList) ensureBoundary(off int) runList {
	if !l.rich {
		panic("text: ensureBoundary on a list without attribute runs")
	}
	if off < 0 {
		panic(fmt.Sprintf("text: byte offset %d out of range", off))
	}
	start := 0
	for i, r := range l.runs {
		end := start + r.ByteLen
		if off == start || off == end {
			return l
		}
		if off < end {
			runs := make([]Run, 0, len(l.runs)+1)
			runs = append(runs, l.runs[:i]...)
			runs = append(runs,
				Run{ByteLen: off - start, Attrs: r.Attrs},
				Run{ByteLen: end - off, Attrs: r.Attrs},
			)
			runs = append(runs, l.runs[i+1:]...)
			return richRuns(runs)
		}
		start = end
	}
	if off != start {
		panic(fmt.Sprintf("text: byte offset %d out of range [0:%d]", off, start))
	}
	return l
}

// modifyAttributes applies fn to a private copy of the set of every run
// inside r. A uniform list becomes rich first, even when r is empty.
func (l runList) modifyAttributes(r Range, fn func(Attributes)) runList {
	if r.IsEmpty() {
		return l.asRich()
	}
	l = l.asRich().ensureBoundary(r.Start).ensureBoundary(r.End)

	runs := make([]Run, len(l.runs))
	start := 0
	for i, run := range l.runs {
		end := start + run.ByteLen
		if start >= r.Start && end <= r.End {
			attrs := run.Attrs.Clone()
			fn(attrs)
			run.Attrs = attrs
		}
		runs[i] = run
		start = end
	}
	return richRuns(runs)
}

// fixBoundariesAfterAppend repairs run boundaries after s was formed by
// appending at byte seam. The cluster holding the last byte before the seam
// may extend past it, for example when the appended text starts with a
// combining mark. The run holding that byte is extended to the cluster end
// and the following runs give up the same number of bytes, in order; runs
// left empty are dropped. Run ends past the seam that no longer fall on a
// cluster boundary move forward to the next one.
func (l runList) fixBoundariesAfterAppend(seam int, s string) runList {
	if !l.rich || seam <= 0 || seam >= len(s) {
		return l
	}
	if _, clusterEnd := grapheme.Cluster(s, seam-1); clusterEnd <= seam {
		return l
	}

	bounds := grapheme.Boundaries(s)
	runs := make([]Run, 0, len(l.runs))
	prev, end := 0, 0
	for _, r := range l.runs {
		end += r.ByteLen
		next := end
		if end >= seam {
			next = bounds[sort.SearchInts(bounds, end)]
		}
		if next > prev {
			runs = append(runs, Run{ByteLen: next - prev, Attrs: r.Attrs})
			prev = next
		}
	}
	return richRuns(runs)
}

// validate checks the list against its owning string.
func (l runList) validate(s string) error {
	if total := l.byteLen(); total != len(s) {
		return fmt.Errorf("%w: runs cover %d bytes, string has %d", ErrInvalidRuns, total, len(s))
	}
	if !l.rich {
		return nil
	}
	bounds := grapheme.Boundaries(s)
	off := 0
	for i, r := range l.runs {
		if r.ByteLen <= 0 {
			return fmt.Errorf("%w: run %d has length %d", ErrInvalidRuns, i, r.ByteLen)
		}
		off += r.ByteLen
		if _, ok := grapheme.IndexOf(bounds, off); !ok {
			return fmt.Errorf("%w: run %d ends at byte %d inside a grapheme cluster", ErrInvalidRuns, i, off)
		}
	}
	return nil
}
