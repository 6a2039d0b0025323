package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/richtext/text"
)

// NoCursor disables cursor drawing in Lines.
const NoCursor = -1

// Render returns t styled by cfg. Lines are joined with "\n".
func Render(t text.Text, cfg Config) string {
	return strings.Join(Lines(t, cfg, NoCursor), "\n")
}

// Lines renders t one line per newline cluster. When cursor is a character
// position, that cluster is drawn with cfg.Cursor over its run style; a
// cursor on a newline or at the end of t is drawn as a styled space. Tabs
// are expanded to spaces.
func Lines(t text.Text, cfg Config, cursor int) []string {
	w := lineWriter{cursor: cfg.Cursor}
	tab := cfg.tabWidth()
	pos, col := 0, 0
	st := cfg.StyleFor(nil)
	for _, rs := range t.RunSubstrings() {
		st = cfg.StyleFor(rs.Run.Attrs)
		g := uniseg.NewGraphemes(rs.Text)
		for g.Next() {
			cluster := g.Str()
			if isNewline(cluster) {
				w.flush(st)
				if pos == cursor {
					w.drawCursor(" ", st)
				}
				w.newline()
				pos, col = pos+1, 0
				continue
			}

			cw := cellWidth(cluster, col, tab)
			if cluster == "\t" {
				cluster = strings.Repeat(" ", cw)
			}
			if pos == cursor {
				w.flush(st)
				w.drawCursor(cluster, st)
			} else {
				w.pending.WriteString(cluster)
			}
			pos, col = pos+1, col+cw
		}
		w.flush(st)
	}
	if pos == cursor {
		w.drawCursor(" ", st)
	}
	return w.finish()
}

func isNewline(cluster string) bool {
	return cluster == "\n" || cluster == "\r\n" || cluster == "\r"
}

type lineWriter struct {
	cursor  lipgloss.Style
	lines   []string
	line    strings.Builder
	pending strings.Builder
}

func (w *lineWriter) flush(st lipgloss.Style) {
	if w.pending.Len() == 0 {
		return
	}
	w.line.WriteString(st.Render(w.pending.String()))
	w.pending.Reset()
}

func (w *lineWriter) drawCursor(cluster string, st lipgloss.Style) {
	w.line.WriteString(w.cursor.Inherit(st).Render(cluster))
}

func (w *lineWriter) newline() {
	w.lines = append(w.lines, w.line.String())
	w.line.Reset()
}

func (w *lineWriter) finish() []string {
	return append(w.lines, w.line.String())
}
