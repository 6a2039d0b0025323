package render

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/richtext/text"
)

// RunLayout is the on-screen extent of one run.
type RunLayout struct {
	text.RunRange
	// Width is the number of terminal cells the run occupies, not counting
	// newlines.
	Width int
}

// Layout measures every run of t. Tabs advance to the next multiple of
// cfg.TabWidth on their line.
func Layout(t text.Text, cfg Config) []RunLayout {
	ranges := t.RunRanges()
	out := make([]RunLayout, 0, len(ranges))
	tab := cfg.tabWidth()
	col := 0
	s := t.String()
	for _, rr := range ranges {
		width := 0
		g := uniseg.NewGraphemes(s[rr.Bytes.Start:rr.Bytes.End])
		for g.Next() {
			cluster := g.Str()
			if isNewline(cluster) {
				col = 0
				continue
			}
			cw := cellWidth(cluster, col, tab)
			width += cw
			col += cw
		}
		out = append(out, RunLayout{RunRange: rr, Width: width})
	}
	return out
}

// Width returns the cell width of one cluster starting at column col.
func Width(cluster string, col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return cellWidth(cluster, col, tabWidth)
}

func cellWidth(cluster string, col, tabWidth int) int {
	if cluster == "\t" {
		return tabWidth - col%tabWidth
	}
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		w = max(w, uniseg.StringWidth(cluster))
	}
	return w
}
