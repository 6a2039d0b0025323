// Package grapheme answers grapheme-cluster boundary questions about strings.
//
// Offsets are UTF-8 byte offsets. A string of length n has boundaries at 0 and
// n and at every cluster start in between.
package grapheme

import (
	"sort"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Boundaries returns the byte offset of every cluster start followed by
// len(text). The result for an empty string is [0].
func Boundaries(text string) []int {
	out := make([]int, 0, len(text)+1)
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		from, _ := g.Positions()
		out = append(out, from)
	}
	return append(out, len(text))
}

// ByteOffset returns the byte offset where cluster n starts. n may equal
// Count(text), which maps to len(text).
func ByteOffset(text string, n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	if n == 0 {
		return 0, true
	}
	idx := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		idx++
		if idx == n {
			_, to := g.Positions()
			return to, true
		}
	}
	return 0, false
}

// CharOffset returns the cluster index of the boundary at byte offset off.
// It fails when off is out of range or falls inside a cluster.
func CharOffset(text string, off int) (int, bool) {
	if off < 0 || off > len(text) {
		return 0, false
	}
	if off == 0 {
		return 0, true
	}
	idx := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		_, to := g.Positions()
		idx++
		if to == off {
			return idx, true
		}
		if to > off {
			return 0, false
		}
	}
	return 0, false
}

// IsBoundary reports whether off is a cluster boundary of text.
func IsBoundary(text string, off int) bool {
	_, ok := CharOffset(text, off)
	return ok
}

// IndexOf returns the cluster index for a boundary taken from bounds, as
// produced by Boundaries. It fails for offsets that are not in bounds.
func IndexOf(bounds []int, off int) (int, bool) {
	i := sort.SearchInts(bounds, off)
	if i == len(bounds) || bounds[i] != off {
		return 0, false
	}
	return i, true
}

// Cluster returns the half-open byte range of the cluster containing the
// byte at off. off must satisfy 0 <= off < len(text).
func Cluster(text string, off int) (start, end int) {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		from, to := g.Positions()
		if off < to {
			return from, to
		}
	}
	return len(text), len(text)
}

// UTF16Len returns the number of UTF-16 code units needed to encode text.
// Invalid UTF-8 bytes count as one unit each, like U+FFFD.
func UTF16Len(text string) int {
	n := 0
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
		text = text[size:]
	}
	return n
}
