// Package view is the small retained view tree the menu widgets are built on.
//
// Every widget embeds Base, which supplies the default behaviour for layout, drawing,
// input dispatch and animated moves. Widgets override the View methods they care about
// and call back into Base explicitly, e.g.
//
//	func (m *Menu) HandleEvent(event sdl.Event) bool {
//	    ...
//	    return m.Base.HandleEvent(event)
//	}
//
// Base keeps a reference to the outer widget so that tree walks (drawing, dispatch)
// reach the overrides.
package view

import (
	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/constants"
	"github.com/veandco/go-sdl2/sdl"
)

type View interface {
	ViewBase() *Base
	Enable()
	Disable()
	PreDraw(c Canvas)
	PostDraw(c Canvas)
	HandleEvent(event sdl.Event) bool
}

// FontSpec names a font by its registered name and point size.
type FontSpec struct {
	Name string
	Size int
}

type Measurer interface {
	MeasureText(text string, font FontSpec) (w, h int32)
}

// Canvas is the drawing surface for a render pass. All coordinates are absolute.
type Canvas interface {
	Measurer
	FillRect(rect sdl.Rect, color sdl.Color)
	StrokeRect(rect sdl.Rect, thickness int32, color sdl.Color)
	HLine(x1, x2, y int32, color sdl.Color)
	Text(text string, font FontSpec, rect sdl.Rect, align constants.Align, color sdl.Color)
}

// Display reports the logical window size and the factor applied to raw pointer coordinates.
type Display interface {
	Size() (w, h int32)
	MouseScale() float32
}

type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

func UniformPadding(p int32) Padding {
	return Padding{Top: p, Right: p, Bottom: p, Left: p}
}

// Insets are the safe-area margins of the screen (notches, rounded corners, home bars).
type Insets struct {
	Top    int32
	Left   int32
	Bottom int32
	Right  int32
}

type InsetsProvider interface {
	SafeAreaInsets() Insets
}

// NoInsets is the InsetsProvider for platforms without a safe area.
type NoInsets struct{}

func (NoInsets) SafeAreaInsets() Insets {
	return Insets{}
}
