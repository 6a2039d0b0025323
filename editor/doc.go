// Package editor provides a Bubble Tea component that edits one attributed
// text.
//
// The component owns a text.Text, a grapheme cursor, the typing attributes
// applied to inserted text, and a history.Log for undo and redo. Rendering is
// delegated to the render package; hosts observe edits through
// Config.OnEdit.
package editor
