package editor

import (
	"github.com/iw2rmb/richtext/history"
	"github.com/iw2rmb/richtext/text"
)

type EditOp uint8

const (
	OpEdit EditOp = iota
	OpUndo
	OpRedo
)

func (op EditOp) String() string {
	switch op {
	case OpEdit:
		return "edit"
	case OpUndo:
		return "undo"
	case OpRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// EditEvent reports one change to the text.
type EditEvent struct {
	Op EditOp
	// Edit is the recorded edit. For OpUndo it is the edit that was reverted.
	Edit   history.Edit
	Cursor int
	// Text is the content after the change.
	Text text.Text
}
