package view

import (
	"slices"

	"github.com/veandco/go-sdl2/sdl"
)

// IsLayoutEvent reports whether the event invalidates the layout of the whole tree.
func IsLayoutEvent(event sdl.Event) bool {
	we, ok := event.(*sdl.WindowEvent)
	if !ok {
		return false
	}
	return we.Event == sdl.WINDOWEVENT_RESIZED || we.Event == sdl.WINDOWEVENT_SIZE_CHANGED
}

// PointerEvent extracts the logical position of a mouse button or finger press/release.
// Mouse coordinates are scaled by the display's mouse scale; finger coordinates are
// normalized and are first multiplied by the window size.
func PointerEvent(event sdl.Event, d Display) (x, y int32, down, ok bool) {
	scale := float32(1)
	var w, h int32
	if d != nil {
		scale = d.MouseScale()
		w, h = d.Size()
	}

	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Type != sdl.MOUSEBUTTONDOWN && e.Type != sdl.MOUSEBUTTONUP {
			return 0, 0, false, false
		}
		return int32(float32(e.X) * scale), int32(float32(e.Y) * scale), e.Type == sdl.MOUSEBUTTONDOWN, true
	case *sdl.TouchFingerEvent:
		if e.Type != sdl.FINGERDOWN && e.Type != sdl.FINGERUP {
			return 0, 0, false, false
		}
		return int32(e.X * float32(w) * scale), int32(e.Y * float32(h) * scale), e.Type == sdl.FINGERDOWN, true
	}
	return 0, 0, false, false
}

// HandleEvent is the default dispatch: layout events are broadcast to every child and
// followed by a layout pass; pointer events go to the topmost child first and then to
// this view itself.
func (b *Base) HandleEvent(event sdl.Event) bool {
	children := slices.Clone(b.children)

	if IsLayoutEvent(event) {
		handled := false
		for _, child := range children {
			if child.HandleEvent(event) {
				handled = true
			}
		}
		b.UpdateLayout()
		return handled
	}

	if !b.visible {
		return false
	}
	visited := b.visitedHolder()
	for i := len(children) - 1; i >= 0; i-- {
		if children[i] == visited {
			continue
		}
		if children[i].HandleEvent(event) {
			return true
		}
	}

	x, y, down, ok := PointerEvent(event, b.Display())
	if !ok {
		return false
	}
	return b.handlePointer(x, y, down)
}

// EventPoint converts a pointer event to logical coordinates using this view's display.
func (b *Base) EventPoint(event sdl.Event) (x, y int32, ok bool) {
	x, y, _, ok = PointerEvent(event, b.Display())
	return x, y, ok
}

// visitedHolder is the capture holder the root already offered the current event to.
func (b *Base) visitedHolder() View {
	if r := RootOf(b.self); r != nil {
		return r.visited
	}
	return nil
}

func (b *Base) Display() Display {
	if r := RootOf(b.self); r != nil {
		return r.display
	}
	return nil
}

func (b *Base) handlePointer(x, y int32, down bool) bool {
	if !b.MouseReceive || !b.enabled {
		return false
	}
	inside := b.HitTest(x, y)
	interactive := b.callback != nil || b.Clickable || b.Focusable

	if down {
		if !inside {
			return false
		}
		b.pressed = true
		if b.Focusable {
			if r := RootOf(b.self); r != nil {
				r.SetFocus(b.self)
			}
		}
		if !b.CallbackOnMouseUp {
			b.fire()
		}
		return interactive || b.CaptureOnClick
	}

	wasPressed := b.pressed
	b.pressed = false
	if !inside {
		return false
	}
	if !wasPressed {
		return b.CaptureOnClick
	}
	if b.CallbackOnMouseUp {
		b.fire()
	}
	if b.Clickable && b.OnClick != nil {
		b.OnClick(b.self)
	}
	return interactive || b.CaptureOnClick
}

func (b *Base) fire() {
	if b.callback != nil {
		b.callback(b.self)
	}
}
