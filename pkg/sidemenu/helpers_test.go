package sidemenu

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/constants"
	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/view"
	"github.com/veandco/go-sdl2/sdl"
)

type fakeDisplay struct {
	w, h  int32
	scale float32
}

func (d *fakeDisplay) Size() (int32, int32) { return d.w, d.h }
func (d *fakeDisplay) MouseScale() float32  { return d.scale }

type fakeInsets view.Insets

func (i fakeInsets) SafeAreaInsets() view.Insets { return view.Insets(i) }

func newPanel(parent view.View, x, y, w, h int32) *view.Panel {
	return view.NewPanel(parent, "panel", x, y, w, h)
}

type fakeCanvas struct {
	ops []string
}

func (c *fakeCanvas) MeasureText(text string, font view.FontSpec) (int32, int32) {
	return int32(len(text)) * 10, 20
}

func (c *fakeCanvas) FillRect(rect sdl.Rect, color sdl.Color) {
	c.ops = append(c.ops, fmt.Sprintf("fill %d,%d,%d,%d", rect.X, rect.Y, rect.W, rect.H))
}

func (c *fakeCanvas) StrokeRect(rect sdl.Rect, thickness int32, color sdl.Color) {
	c.ops = append(c.ops, fmt.Sprintf("stroke %d,%d,%d,%d", rect.X, rect.Y, rect.W, rect.H))
}

func (c *fakeCanvas) HLine(x1, x2, y int32, color sdl.Color) {
	c.ops = append(c.ops, fmt.Sprintf("hline %d-%d@%d", x1, x2, y))
}

func (c *fakeCanvas) Text(text string, font view.FontSpec, rect sdl.Rect, align constants.Align, color sdl.Color) {
	c.ops = append(c.ops, fmt.Sprintf("text %s", text))
}

func testMetrics() *Metrics {
	return &Metrics{
		MenuWidth:       200,
		TopBarHeight:    44,
		StatusBarHeight: 0,
		Scale:           1,
		CollapseTime:    200 * time.Millisecond,
		LabelFont:       view.FontSpec{Name: "ui", Size: 24},
		IconFont:        view.FontSpec{Name: "icons", Size: 20},
	}
}

// fixture is a 640x480 window whose content panel starts 40 pixels down.
type fixture struct {
	display *fakeDisplay
	root    *view.Root
	content *view.Panel
}

func newFixture() *fixture {
	display := &fakeDisplay{w: 640, h: 480, scale: 1}
	root := view.NewRoot(display, nil)
	return &fixture{
		display: display,
		root:    root,
		content: newPanel(root, 0, 40, 640, 400),
	}
}

func (f *fixture) menu(mode AnimationMode, insets view.InsetsProvider, callback func(*Menu)) *Menu {
	return NewMenu(f.content, "menu", 0, 0, 0, 300, callback, mode, MenuOptions{
		Metrics: testMetrics(),
		Insets:  insets,
	})
}

func mouseDown(x, y int32) *sdl.MouseButtonEvent {
	return &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, X: x, Y: y}
}

func mouseUp(x, y int32) *sdl.MouseButtonEvent {
	return &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, X: x, Y: y}
}

func fingerDown(x, y float32) *sdl.TouchFingerEvent {
	return &sdl.TouchFingerEvent{Type: sdl.FINGERDOWN, X: x, Y: y}
}

func fingerUp(x, y float32) *sdl.TouchFingerEvent {
	return &sdl.TouchFingerEvent{Type: sdl.FINGERUP, X: x, Y: y}
}

func resized() *sdl.WindowEvent {
	return &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED}
}

// click presses and releases the mouse in the middle of v.
func click(root *view.Root, v view.View) {
	r := v.ViewBase().AbsoluteRect()
	x, y := r.X+r.W/2, r.Y+r.H/2
	root.Dispatch(mouseDown(x, y))
	root.Dispatch(mouseUp(x, y))
}
