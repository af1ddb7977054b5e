package input

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Key is a keyboard key the viewer reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyT
	KeyP
	KeyM
	KeyX
	KeyR
	KeyB
	Key1
	Key2
	Key3
	KeyF12
)

// Mouse buttons.
const (
	ButtonLeft   uint8 = 1
	ButtonMiddle uint8 = 2
	ButtonRight  uint8 = 3
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Repeat bool // key auto-repeat
	Width  int
	Height int
	MouseX int
	MouseY int
	DeltaX int // relative motion or horizontal wheel
	DeltaY int // relative motion or vertical wheel
	Button uint8
	Drag   bool // motion with the left button held
}
