package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Event
		ok    bool
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, Event{Type: EventQuit}, true},
		{"resize", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600},
			Event{Type: EventWindowResize, Width: 800, Height: 600}, true},
		{"window focus", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_GAINED}, Event{}, false},
		{"key down", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W}},
			Event{Type: EventKeyDown, Key: sdl.SCANCODE_W}, true},
		{"key repeat", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W}}, Event{}, false},
		{"mouse move", &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 10, Y: 20, XRel: -3, YRel: 4},
			Event{Type: EventMouseMove, MouseX: 10, MouseY: 20, DeltaX: -3, DeltaY: 4}, true},
		{"mouse up", &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, X: 5, Y: 6, Button: sdl.BUTTON_LEFT},
			Event{Type: EventMouseUp, MouseX: 5, MouseY: 6, Button: sdl.BUTTON_LEFT}, true},
		{"wheel", &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: -2}, Event{Type: EventMouseWheel, DeltaY: -2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.event)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("translate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHeldKeys(t *testing.T) {
	in := New()
	in.push(Event{Type: EventKeyDown, Key: sdl.SCANCODE_A})
	if !in.IsKeyHeld(sdl.SCANCODE_A) || !in.IsKeyPressed(sdl.SCANCODE_A) {
		t.Error("A should be pressed and held")
	}

	in.events = in.events[:0]
	if in.IsKeyPressed(sdl.SCANCODE_A) {
		t.Error("A was not pressed this frame")
	}
	if !in.IsKeyHeld(sdl.SCANCODE_A) {
		t.Error("A should still be held")
	}

	in.push(Event{Type: EventKeyUp, Key: sdl.SCANCODE_A})
	if in.IsKeyHeld(sdl.SCANCODE_A) {
		t.Error("A should be released")
	}
}
