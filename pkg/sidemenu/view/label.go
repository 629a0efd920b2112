package view

import (
	"unicode/utf8"

	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// DefaultFont is used by labels created without an explicit font.
var DefaultFont = FontSpec{Name: "ui", Size: 24}

// Label draws a single line of text.
type Label struct {
	Base
	text      string
	textColor sdl.Color
	font      FontSpec
}

func NewLabel(parent View, text string, x, y, w, h int32) *Label {
	l := &Label{
		text:      text,
		textColor: sdl.Color{A: 255},
		font:      DefaultFont,
	}
	l.Init(l, parent, text, x, y, w, h)
	return l
}

func (l *Label) SetText(text string)      { l.text = text }
func (l *Label) Text() string             { return l.text }
func (l *Label) SetTextColor(c sdl.Color) { l.textColor = c }
func (l *Label) TextColor() sdl.Color     { return l.textColor }
func (l *Label) SetFont(font FontSpec)    { l.font = font }
func (l *Label) Font() FontSpec           { return l.font }

func (l *Label) ContentSize() (w, h int32) {
	return measure(l.self, l.text, l.font)
}

func (l *Label) PreDraw(c Canvas) {
	l.Base.PreDraw(c)
	c.Text(l.text, l.font, l.AbsoluteRect(), l.align, l.textColor)
}

// IconView draws a single glyph from an icon font.
type IconView struct {
	Base
	glyph string
	color sdl.Color
	font  FontSpec
}

func NewIconView(parent View, glyph, fontName string, fontSize int, x, y, w, h int32) *IconView {
	iv := &IconView{
		glyph: glyph,
		color: sdl.Color{A: 255},
		font:  FontSpec{Name: fontName, Size: fontSize},
	}
	iv.Init(iv, parent, glyph, x, y, w, h)
	iv.MouseReceive = false
	return iv
}

func (iv *IconView) Glyph() string        { return iv.glyph }
func (iv *IconView) SetColor(c sdl.Color) { iv.color = c }
func (iv *IconView) Color() sdl.Color     { return iv.color }
func (iv *IconView) Font() FontSpec       { return iv.font }

func (iv *IconView) ContentSize() (w, h int32) {
	return measure(iv.self, iv.glyph, iv.font)
}

func (iv *IconView) PreDraw(c Canvas) {
	iv.Base.PreDraw(c)
	c.Text(iv.glyph, iv.font, iv.AbsoluteRect(), constants.AlignCenter|constants.AlignVCenter, iv.color)
}

// measure asks the tree's measurer for the text size and falls back to an estimate from
// the point size when the view is detached or no measurer is installed.
func measure(v View, text string, font FontSpec) (w, h int32) {
	if r := RootOf(v); r != nil && r.measurer != nil {
		return r.measurer.MeasureText(text, font)
	}
	size := int32(font.Size)
	return int32(utf8.RuneCountInString(text)) * size * 3 / 5, size + size/4
}
