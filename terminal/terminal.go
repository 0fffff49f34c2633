package terminal

import "io"

// Backend is the drawing and input surface the game runs against. The
// renderer is the sole writer and follows a strict shape: one MoveTo per
// display row, one WriteRune per display column, one Flush per frame.
type Backend interface {
	Init() error
	Fini()
	Size() (cols, rows int)
	MoveTo(col, row int)
	WriteRune(r rune)
	HideCursor()
	ShowCursor()
	Flush() error
	PollEvent() Event
}

// EventType discriminates Event.
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventClosed
	EventError
)

// Key identifies the non-rune keys the game reacts to.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyCtrlC
)

// Event is one input or lifecycle notification from the backend. Rune is
// set only for Key == KeyRune; Width and Height only for EventResize.
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Width  int
	Height int
}

// resetSequence restores a usable terminal: show cursor, leave the
// alternate screen, reset attributes, re-enable autowrap, full reset.
var resetSequence = []byte("\x1b[?25h\x1b[?1049l\x1b[0m\x1b[?7h\x1bc")

// EmergencyReset writes raw escape sequences without going through a
// Backend, for crash paths where the screen state is unknown.
func EmergencyReset(w io.Writer) {
	w.Write(resetSequence)
}
