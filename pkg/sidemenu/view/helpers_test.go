package view

import (
	"fmt"

	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/constants"
	"github.com/veandco/go-sdl2/sdl"
)

type fakeDisplay struct {
	w, h  int32
	scale float32
}

func (d *fakeDisplay) Size() (int32, int32) { return d.w, d.h }
func (d *fakeDisplay) MouseScale() float32  { return d.scale }

type box struct {
	Base
}

func newBox(parent View, x, y, w, h int32) *box {
	b := &box{}
	b.Init(b, parent, "box", x, y, w, h)
	return b
}

// recorder counts the events it sees and reports them consumed when asked to.
type recorder struct {
	Base
	events  int
	consume bool
}

func newRecorder(parent View, consume bool) *recorder {
	r := &recorder{consume: consume}
	r.Init(r, parent, "recorder", 0, 0, 10, 10)
	return r
}

func (r *recorder) HandleEvent(event sdl.Event) bool {
	r.events++
	return r.consume
}

type fakeCanvas struct {
	ops []string
}

func (c *fakeCanvas) MeasureText(text string, font FontSpec) (int32, int32) {
	return int32(len(text)) * 10, 20
}

func (c *fakeCanvas) FillRect(rect sdl.Rect, color sdl.Color) {
	c.ops = append(c.ops, fmt.Sprintf("fill %d,%d,%d,%d", rect.X, rect.Y, rect.W, rect.H))
}

func (c *fakeCanvas) StrokeRect(rect sdl.Rect, thickness int32, color sdl.Color) {
	c.ops = append(c.ops, fmt.Sprintf("stroke %d,%d,%d,%d/%d", rect.X, rect.Y, rect.W, rect.H, thickness))
}

func (c *fakeCanvas) HLine(x1, x2, y int32, color sdl.Color) {
	c.ops = append(c.ops, fmt.Sprintf("hline %d-%d@%d", x1, x2, y))
}

func (c *fakeCanvas) Text(text string, font FontSpec, rect sdl.Rect, align constants.Align, color sdl.Color) {
	c.ops = append(c.ops, fmt.Sprintf("text %s", text))
}

func mouse(typ uint32, x, y int32) *sdl.MouseButtonEvent {
	return &sdl.MouseButtonEvent{Type: typ, X: x, Y: y}
}

func finger(typ uint32, x, y float32) *sdl.TouchFingerEvent {
	return &sdl.TouchFingerEvent{Type: typ, X: x, Y: y}
}
