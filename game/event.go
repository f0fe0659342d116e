package game

//go:generate stringer -type=Event -trimprefix=Event

// Event is an input or timer event consumed by a Session.
type Event uint8

const (
	EventNone Event = iota
	EventStart
	EventReset
	EventMoveLeft
	EventMoveRight
	EventSoftDrop
	EventHardDrop
	EventRotate
	EventTick
)

var actionEvents = map[string]Event{
	"move-left":  EventMoveLeft,
	"move-right": EventMoveRight,
	"soft-drop":  EventSoftDrop,
	"hard-drop":  EventHardDrop,
	"rotate":     EventRotate,
	"start":      EventStart,
	"reset":      EventReset,
}

// ActionEvent resolves a key-binding action name such as "hard-drop".
// Tick is not bindable.
func ActionEvent(name string) (Event, bool) {
	ev, ok := actionEvents[name]
	return ev, ok
}

// Actions returns every bindable action name.
func Actions() []string {
	return []string{"move-left", "move-right", "soft-drop", "hard-drop", "rotate", "start", "reset"}
}
