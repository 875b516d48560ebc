package window

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/stickman/internal/engine/input"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		event  sdl.Event
		mods   input.Modifiers
		want   input.Event
		wantOK bool
	}{
		{
			name:   "quit",
			event:  &sdl.QuitEvent{Type: sdl.QUIT},
			want:   input.Event{Type: input.EventQuit},
			wantOK: true,
		},
		{
			name:   "resize",
			event:  &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 640, Data2: 480},
			want:   input.Event{Type: input.EventResize, Width: 640, Height: 480},
			wantOK: true,
		},
		{
			name:  "window focus ignored",
			event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_GAINED},
		},
		{
			name:   "key down",
			event:  &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_R}},
			want:   input.Event{Type: input.EventKeyDown, Key: input.KeyR},
			wantOK: true,
		},
		{
			name:   "bend preview key",
			event:  &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_B}},
			want:   input.Event{Type: input.EventKeyUp, Key: input.KeyB},
			wantOK: true,
		},
		{
			name:   "shift up",
			event:  &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_RSHIFT}},
			want:   input.Event{Type: input.EventKeyUp, Key: input.KeyShift},
			wantOK: true,
		},
		{
			name:  "key repeat ignored",
			event: &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_R}},
		},
		{
			name:   "pointer down with ctrl",
			event:  &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 10, Y: 20},
			mods:   input.ModCtrl,
			want:   input.Event{Type: input.EventPointerDown, X: 10, Y: 20, Button: input.ButtonLeft, Mods: input.ModCtrl},
			wantOK: true,
		},
		{
			name:   "pointer up right",
			event:  &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_RIGHT, X: 1, Y: 2},
			want:   input.Event{Type: input.EventPointerUp, X: 1, Y: 2, Button: input.ButtonRight},
			wantOK: true,
		},
		{
			name:   "motion",
			event:  &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 5, Y: 6},
			want:   input.Event{Type: input.EventPointerMove, X: 5, Y: 6},
			wantOK: true,
		},
		{
			name:   "wheel up zooms in",
			event:  &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1},
			want:   input.Event{Type: input.EventWheel, WheelY: -1},
			wantOK: true,
		},
		{
			name:   "flipped wheel",
			event:  &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1, Direction: sdl.MOUSEWHEEL_FLIPPED},
			want:   input.Event{Type: input.EventWheel, WheelY: 1},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewEvents()
			got, ok := s.translate(tt.event, tt.mods)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("translate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWheelUsesLastPointerPosition(t *testing.T) {
	s := NewEvents()
	s.translate(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 30, Y: 40}, 0)

	got, _ := s.translate(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: -2}, 0)
	if got.X != 30 || got.Y != 40 || got.WheelY != 2 {
		t.Errorf("wheel event = %+v", got)
	}
}

func TestModifiers(t *testing.T) {
	if got := modifiers(sdl.KMOD_LSHIFT | sdl.KMOD_RCTRL); got != input.ModShift|input.ModCtrl {
		t.Errorf("modifiers() = %v", got)
	}
	if got := modifiers(sdl.KMOD_NONE); got != 0 {
		t.Errorf("modifiers(none) = %v", got)
	}
}
