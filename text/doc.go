// Package text implements attributed text: a string paired with a
// run-length list mapping attribute sets to contiguous byte spans.
//
// Public positions are grapheme-cluster (character) indices. Run boundaries
// always fall on cluster boundaries, so no run ever splits a user-perceived
// character. Text is a value: copies never observe each other's mutations.
//
// Offsets or ranges outside the text are caller bugs and panic.
package text
