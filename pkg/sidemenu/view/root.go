package view

import (
	"time"

	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Root is the top of a view tree. It owns the display, the capture slot, the text
// measurer used during layout and the current keyboard/pointer focus.
type Root struct {
	Base
	display  Display
	capture  *Capture
	measurer Measurer
	focused  View

	// visited is the capture holder during the tree walk that follows it.
	visited View
}

func NewRoot(display Display, capture *Capture) *Root {
	if capture == nil {
		capture = NewCapture()
	}
	r := &Root{display: display, capture: capture}

	var w, h int32
	if display != nil {
		w, h = display.Size()
	}
	r.Init(r, nil, "root", 0, 0, w, h)
	r.SetLayout(constants.LayoutAbsolute)
	r.MouseReceive = false
	return r
}

// RootOf walks up the parents of v and returns the tree's Root, or nil when v is detached.
func RootOf(v View) *Root {
	for v != nil {
		if r, ok := v.(*Root); ok {
			return r
		}
		v = v.ViewBase().parent
	}
	return nil
}

func (r *Root) Capture() *Capture {
	return r.capture
}

func (r *Root) SetMeasurer(m Measurer) {
	r.measurer = m
}

func (r *Root) Measurer() Measurer {
	return r.measurer
}

func (r *Root) Focused() View {
	return r.focused
}

func (r *Root) SetFocus(v View) {
	r.focused = v
}

// Dispatch delivers an event from the host loop. The capture holder sees pointer events
// first; when it does not consume one, the normal tree walk follows without visiting the
// holder again. Layout events only take the tree walk, after the root has been resized.
func (r *Root) Dispatch(event sdl.Event) bool {
	holder := r.capture.Holder()
	if IsLayoutEvent(event) || holder == nil || holder == View(r) {
		return r.HandleEvent(event)
	}

	if holder.HandleEvent(event) {
		return true
	}

	r.visited = holder
	defer func() { r.visited = nil }()
	return r.HandleEvent(event)
}

func (r *Root) HandleEvent(event sdl.Event) bool {
	if IsLayoutEvent(event) && r.display != nil {
		w, h := r.display.Size()
		r.SetSize(w, h)
	}
	return r.Base.HandleEvent(event)
}

// Update advances running animations by one frame.
func (r *Root) Update(dt time.Duration) {
	r.Advance(dt)
}

func (r *Root) Render(c Canvas) {
	r.Draw(c)
}
