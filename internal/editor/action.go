package editor

// Action is an editing command produced by the input mapping.
type Action uint8

// Actions understood by Session.Dispatch.
const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionBackspace
	ActionDelete
	ActionNewline
	ActionInsert
	ActionSave
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:      "none",
	ActionMoveUp:    "move-up",
	ActionMoveDown:  "move-down",
	ActionMoveLeft:  "move-left",
	ActionMoveRight: "move-right",
	ActionBackspace: "backspace",
	ActionDelete:    "delete",
	ActionNewline:   "newline",
	ActionInsert:    "insert",
	ActionSave:      "save",
	ActionQuit:      "quit",
}

// String returns the action name.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Printable reports whether ch is accepted by ActionInsert.
func Printable(ch byte) bool {
	return ch >= 0x20 && ch <= 0x7e
}
