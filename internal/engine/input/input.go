// Package input converts SDL2 events into viewer input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

var keymap = map[sdl.Keycode]Key{
	sdl.K_ESCAPE: KeyEscape,
	sdl.K_SPACE:  KeySpace,
	sdl.K_t:      KeyT,
	sdl.K_p:      KeyP,
	sdl.K_m:      KeyM,
	sdl.K_x:      KeyX,
	sdl.K_r:      KeyR,
	sdl.K_b:      KeyB,
	sdl.K_1:      Key1,
	sdl.K_2:      Key2,
	sdl.K_3:      Key3,
	sdl.K_F12:    KeyF12,
}

// buttonLMask is SDL_BUTTON_LMASK, the left button bit of a motion state.
const buttonLMask = 1 << (ButtonLeft - 1)

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			key, ok := keymap[e.Keysym.Sym]
			if !ok {
				continue
			}
			typ := EventKeyDown
			if e.Type == sdl.KEYUP {
				typ = EventKeyUp
			}
			i.events = append(i.events, Event{
				Type:   typ,
				Key:    key,
				Repeat: e.Repeat != 0,
			})

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				DeltaX: int(e.XRel),
				DeltaY: int(e.YRel),
				Drag:   e.State&buttonLMask != 0,
			})

		case *sdl.MouseButtonEvent:
			typ := EventMouseDown
			if e.Type == sdl.MOUSEBUTTONUP {
				typ = EventMouseUp
			}
			i.events = append(i.events, Event{
				Type:   typ,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
			})

		case *sdl.MouseWheelEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseWheel,
				DeltaX: int(e.X),
				DeltaY: int(e.Y),
			})
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(key Key) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == key && !e.Repeat {
			return true
		}
	}
	return false
}
