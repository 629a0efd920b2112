package view

// Panel is a plain container view. It draws its background and border and lays out its
// children; it has no content of its own.
type Panel struct {
	Base
}

func NewPanel(parent View, title string, x, y, w, h int32) *Panel {
	p := &Panel{}
	p.Init(p, parent, title, x, y, w, h)
	return p
}
