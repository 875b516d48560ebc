package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/stickman/internal/engine/input"
)

// Events polls SDL and translates its events for the editor.
// It implements input.Source.
type Events struct {
	events []input.Event
	x, y   float64 // Last pointer position
}

// NewEvents creates an SDL event source. The window must exist.
func NewEvents() *Events {
	return &Events{events: make([]input.Event, 0, 16)}
}

// Update polls SDL events and converts them to editor events.
// Returns true if the editor should quit.
func (s *Events) Update() bool {
	s.events = s.events[:0] // Clear previous events

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		ev, ok := s.translate(event, modifiers(sdl.GetModState()))
		if !ok {
			continue
		}
		s.events = append(s.events, ev)
		if ev.Type == input.EventQuit {
			return true
		}
	}
	return false
}

// Events returns the events from the last Update.
func (s *Events) Events() []input.Event {
	return s.events
}

func (s *Events) translate(event sdl.Event, mods input.Modifiers) (input.Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return input.Event{Type: input.EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED {
			return input.Event{
				Type:   input.EventResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return input.Event{}, false
		}
		t := input.EventKeyDown
		if e.Type == sdl.KEYUP {
			t = input.EventKeyUp
		}
		return input.Event{
			Type: t,
			Key:  key(e.Keysym.Scancode),
			Mods: modifiers(sdl.Keymod(e.Keysym.Mod)),
		}, true

	case *sdl.MouseMotionEvent:
		s.x, s.y = float64(e.X), float64(e.Y)
		return input.Event{
			Type: input.EventPointerMove,
			X:    s.x,
			Y:    s.y,
			Mods: mods,
		}, true

	case *sdl.MouseButtonEvent:
		s.x, s.y = float64(e.X), float64(e.Y)
		t := input.EventPointerDown
		if e.Type == sdl.MOUSEBUTTONUP {
			t = input.EventPointerUp
		}
		return input.Event{
			Type:   t,
			X:      s.x,
			Y:      s.y,
			Button: button(e.Button),
			Mods:   mods,
		}, true

	case *sdl.MouseWheelEvent:
		dy := -float64(e.Y) // SDL reports scroll up as positive
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dy = -dy
		}
		return input.Event{
			Type:   input.EventWheel,
			X:      s.x,
			Y:      s.y,
			WheelY: dy,
			Mods:   mods,
		}, true
	}
	return input.Event{}, false
}

func key(sc sdl.Scancode) input.Key {
	switch sc {
	case sdl.SCANCODE_LSHIFT, sdl.SCANCODE_RSHIFT:
		return input.KeyShift
	case sdl.SCANCODE_LCTRL, sdl.SCANCODE_RCTRL:
		return input.KeyControl
	case sdl.SCANCODE_ESCAPE:
		return input.KeyEscape
	case sdl.SCANCODE_R:
		return input.KeyR
	case sdl.SCANCODE_N:
		return input.KeyN
	case sdl.SCANCODE_M:
		return input.KeyM
	case sdl.SCANCODE_P:
		return input.KeyP
	case sdl.SCANCODE_B:
		return input.KeyB
	case sdl.SCANCODE_F1:
		return input.KeyF1
	default:
		return input.KeyUnknown
	}
}

func button(b uint8) input.Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return input.ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return input.ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return input.ButtonRight
	default:
		return input.ButtonNone
	}
}

func modifiers(m sdl.Keymod) input.Modifiers {
	var out input.Modifiers
	if m&sdl.KMOD_SHIFT != 0 {
		out |= input.ModShift
	}
	if m&sdl.KMOD_CTRL != 0 {
		out |= input.ModCtrl
	}
	return out
}
