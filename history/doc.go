// Package history keeps a bounded undo/redo log of edits to a text.Text.
//
// Each entry pairs the text.Replaced record of an edit with snapshots of the
// text before and after it. Text values never share mutable state, so a
// snapshot is a plain copy and undo restores the prior runs exactly, even
// when the edit joined a combining mark to its neighbour.
package history
