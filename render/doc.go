// Package render draws attributed text in a terminal.
//
// Attribute names are mapped to lipgloss styles by a Config. Runs are styled
// as a whole; lines are split at newline clusters so styles never pad across
// lines. Cell widths follow go-runewidth, with uniseg as the fallback for
// clusters runewidth reports as zero-width.
package render
