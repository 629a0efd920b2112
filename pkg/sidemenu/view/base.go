package view

import (
	"slices"

	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/constants"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// FillParent as a width or height makes the view take the parent's content size.
const FillParent int32 = -1

type Base struct {
	Title string

	// CallbackOnMouseUp fires the callback on release inside the view instead of on press.
	CallbackOnMouseUp bool
	// Clickable enables the generic click mechanism: OnClick runs after a full press/release.
	Clickable    bool
	OnClick      func(View)
	Focusable    bool
	ShowInteract bool
	MouseReceive bool
	FocusBorder  int32
	// CaptureOnClick consumes presses and releases inside the view even when nothing
	// in it reacts, so they never reach the views underneath.
	CaptureOnClick bool

	self     View
	parent   View
	children []View

	rect    sdl.Rect
	wantW   int32
	wantH   int32
	padding Padding
	align   constants.Align
	layout  constants.Layout

	border      int32
	borderColor sdl.Color
	focusColor  sdl.Color
	background  sdl.Color

	visible bool
	enabled bool
	pressed bool

	callback func(View)

	moving atomic.Bool
	anim   animation
}

// Init wires the outer widget into its Base and attaches it to parent when one is given.
// A width or height of FillParent stretches to the parent, 0 sizes to content.
func (b *Base) Init(self View, parent View, title string, x, y, w, h int32) {
	b.self = self
	b.Title = title
	b.rect = sdl.Rect{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
	b.wantW, b.wantH = w, h
	b.visible = true
	b.enabled = true
	b.MouseReceive = true
	b.borderColor = sdl.Color{A: 255}
	b.focusColor = sdl.Color{R: 0x33, G: 0x99, B: 0xFF, A: 255}

	if parent != nil {
		parent.ViewBase().AddChild(self)
	}
}

func (b *Base) ViewBase() *Base {
	return b
}

func (b *Base) Self() View {
	return b.self
}

func (b *Base) Parent() View {
	return b.parent
}

func (b *Base) Children() []View {
	return b.children
}

func (b *Base) AddChild(child View) {
	cb := child.ViewBase()
	if cb.parent != nil {
		if cb.parent == b.self {
			return
		}
		cb.parent.ViewBase().RemoveChild(child)
	}
	cb.parent = b.self
	b.children = append(b.children, child)
}

func (b *Base) RemoveChild(child View) {
	idx := slices.Index(b.children, child)
	if idx < 0 {
		return
	}
	b.children = slices.Delete(b.children, idx, idx+1)
	child.ViewBase().parent = nil
}

func (b *Base) X() int32      { return b.rect.X }
func (b *Base) Y() int32      { return b.rect.Y }
func (b *Base) Width() int32  { return b.rect.W }
func (b *Base) Height() int32 { return b.rect.H }

func (b *Base) SetPosition(x, y int32) {
	b.rect.X, b.rect.Y = x, y
}

func (b *Base) SetSize(w, h int32) {
	b.wantW, b.wantH = w, h
	b.rect.W, b.rect.H = max(w, 0), max(h, 0)
}

func (b *Base) AbsolutePosition() sdl.Point {
	p := sdl.Point{X: b.rect.X, Y: b.rect.Y}
	if b.parent != nil {
		pp := b.parent.ViewBase().AbsolutePosition()
		p.X += pp.X
		p.Y += pp.Y
	}
	return p
}

func (b *Base) AbsoluteRect() sdl.Rect {
	p := b.AbsolutePosition()
	return sdl.Rect{X: p.X, Y: p.Y, W: b.rect.W, H: b.rect.H}
}

// HitTest reports whether the absolute point lies inside this visible view.
func (b *Base) HitTest(x, y int32) bool {
	if !b.visible {
		return false
	}
	r := b.AbsoluteRect()
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (b *Base) SetPadding(top, right, bottom, left int32) {
	b.padding = Padding{Top: top, Right: right, Bottom: bottom, Left: left}
}

func (b *Base) Padding() Padding               { return b.padding }
func (b *Base) SetAlign(align constants.Align) { b.align = align }
func (b *Base) Align() constants.Align         { return b.align }
func (b *Base) SetLayout(l constants.Layout)   { b.layout = l }
func (b *Base) Layout() constants.Layout       { return b.layout }
func (b *Base) SetBorder(width int32)          { b.border = width }
func (b *Base) Border() int32                  { return b.border }
func (b *Base) SetBorderColor(c sdl.Color)     { b.borderColor = c }
func (b *Base) SetBackgroundColor(c sdl.Color) { b.background = c }
func (b *Base) BackgroundColor() sdl.Color     { return b.background }

func (b *Base) SetVisible(v bool) { b.visible = v }
func (b *Base) IsVisible() bool   { return b.visible }
func (b *Base) Show()             { b.visible = true }
func (b *Base) Hide()             { b.visible = false }

func (b *Base) Enable()         { b.enabled = true }
func (b *Base) Disable()        { b.enabled = false }
func (b *Base) IsEnabled() bool { return b.enabled }

func (b *Base) SetCallback(fn func(View)) { b.callback = fn }
func (b *Base) Callback() func(View)      { return b.callback }

func (b *Base) IsPressed() bool {
	return b.pressed
}

func (b *Base) IsFocused() bool {
	r := RootOf(b.self)
	return r != nil && r.Focused() == b.self
}

// contentSizer is implemented by leaf views that know their natural size.
type contentSizer interface {
	ContentSize() (w, h int32)
}

// UpdateLayout sizes and positions the children according to the layout mode, then
// resolves content-sized dimensions of this view.
func (b *Base) UpdateLayout() {
	innerW := b.rect.W - b.padding.Left - b.padding.Right
	cursorX, cursorY := b.padding.Left, b.padding.Top
	var extentW, extentH int32
	laidOut := 0

	for _, child := range b.children {
		cb := child.ViewBase()
		if !cb.visible {
			continue
		}
		if cb.wantW == FillParent {
			cb.rect.W = max(innerW, 0)
		}
		cb.UpdateLayout()

		if cb.align&constants.AlignAbsolute != 0 {
			continue
		}

		switch b.layout {
		case constants.LayoutVertical:
			cb.rect.Y = cursorY
			switch {
			case cb.align&constants.AlignRight != 0:
				cb.rect.X = b.rect.W - b.padding.Right - cb.rect.W
			case cb.align&constants.AlignCenter != 0:
				cb.rect.X = b.padding.Left + (innerW-cb.rect.W)/2
			default:
				cb.rect.X = b.padding.Left
			}
			cursorY += cb.rect.H
			extentW = max(extentW, cb.rect.W)
			extentH = cursorY - b.padding.Top
			laidOut++
		case constants.LayoutHorizontal:
			if cb.align&constants.AlignRight != 0 {
				cb.rect.X = b.rect.W - b.padding.Right - cb.rect.W
			} else {
				cb.rect.X = cursorX
				cursorX += cb.rect.W
			}
			extentW = max(extentW, cursorX-b.padding.Left)
			extentH = max(extentH, cb.rect.H)
			laidOut++
		}
	}

	if laidOut == 0 {
		if cs, ok := b.self.(contentSizer); ok {
			extentW, extentH = cs.ContentSize()
		}
	}
	if b.wantW == 0 {
		b.rect.W = extentW + b.padding.Left + b.padding.Right
	}
	if b.wantH == 0 {
		b.rect.H = extentH + b.padding.Top + b.padding.Bottom
	}

	if b.layout != constants.LayoutHorizontal {
		return
	}
	innerH := b.rect.H - b.padding.Top - b.padding.Bottom
	for _, child := range b.children {
		cb := child.ViewBase()
		if !cb.visible || cb.align&constants.AlignAbsolute != 0 {
			continue
		}
		switch {
		case cb.align&constants.AlignVCenter != 0:
			cb.rect.Y = b.padding.Top + (innerH-cb.rect.H)/2
		case cb.align&constants.AlignBottom != 0:
			cb.rect.Y = b.rect.H - b.padding.Bottom - cb.rect.H
		default:
			cb.rect.Y = b.padding.Top
		}
	}
}

// Draw renders this view and its subtree: PreDraw, children, PostDraw.
func (b *Base) Draw(c Canvas) {
	if !b.visible {
		return
	}
	b.self.PreDraw(c)
	for _, child := range b.children {
		child.ViewBase().Draw(c)
	}
	b.self.PostDraw(c)
}

func (b *Base) PreDraw(c Canvas) {
	bg := b.background
	if b.pressed && b.ShowInteract && bg.A > 0 {
		bg = shade(bg, 0.85)
	}
	if bg.A > 0 {
		c.FillRect(b.AbsoluteRect(), bg)
	}
}

func (b *Base) PostDraw(c Canvas) {
	r := b.AbsoluteRect()
	if b.border > 0 {
		c.StrokeRect(r, b.border, b.borderColor)
	}
	if b.FocusBorder > 0 && b.IsFocused() {
		c.StrokeRect(r, b.FocusBorder, b.focusColor)
	}
}

func shade(c sdl.Color, f float32) sdl.Color {
	return sdl.Color{R: uint8(float32(c.R) * f), G: uint8(float32(c.G) * f), B: uint8(float32(c.B) * f), A: c.A}
}
