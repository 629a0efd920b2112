package sidemenu

import (
	stderrors "errors"

	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/constants"
	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/internal"
	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/view"
	"github.com/go-errors/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// ErrNoLabel is returned when a row is enabled or disabled before a label was attached.
// It comes wrapped with the caller's stack; match it with errors.Is.
var ErrNoLabel = stderrors.New("menu item has no label")

// MenuItem is a single selectable row of a Menu. It lays its children out horizontally,
// draws a separator under itself and shows a chevron while it has a submenu.
type MenuItem struct {
	view.Base

	// Separator draws a one pixel line along the bottom edge.
	Separator bool

	selected       bool
	label          *view.Label
	labelTextColor sdl.Color
	submenu        view.View
	iconView       *view.IconView
	iconFont       view.FontSpec
}

func NewMenuItem(parent view.View, title string, x, y, w, h int32) *MenuItem {
	theme := internal.GetTheme()

	item := &MenuItem{
		Separator:      true,
		labelTextColor: theme.TextColor,
		iconFont:       GetMetrics().IconFont,
	}
	item.Init(item, parent, title, x, y, w, h)

	item.Clickable = false
	item.CallbackOnMouseUp = true
	item.Focusable = true
	item.ShowInteract = true
	item.MouseReceive = true
	item.FocusBorder = 0

	item.SetBackgroundColor(theme.ItemBackgroundColor)
	item.SetLayout(constants.LayoutHorizontal)
	item.SetBorder(0)

	return item
}

func (mi *MenuItem) SetSelected(selected bool) {
	mi.selected = selected
	if selected {
		mi.SetBackgroundColor(internal.GetTheme().SelectionColor)
	} else {
		mi.SetBackgroundColor(internal.GetTheme().ItemBackgroundColor)
	}
}

func (mi *MenuItem) IsSelected() bool {
	return mi.selected
}

// SetLabel records the label whose colour follows the enabled state. The label is
// attached as a child if it is not one already.
func (mi *MenuItem) SetLabel(label *view.Label) {
	mi.label = label
	if label != nil && label.Parent() != view.View(mi) {
		mi.AddChild(label)
	}
}

func (mi *MenuItem) Label() *view.Label {
	return mi.label
}

// SetLabelTextColor changes the colour the label gets while the row is enabled.
func (mi *MenuItem) SetLabelTextColor(c sdl.Color) {
	mi.labelTextColor = c
	if mi.label != nil && mi.IsEnabled() {
		mi.label.SetTextColor(c)
	}
}

func (mi *MenuItem) SetIconFont(font view.FontSpec) {
	mi.iconFont = font
}

func (mi *MenuItem) SetEnable(enabled bool) error {
	if enabled {
		return mi.enable()
	}
	return mi.disable()
}

func (mi *MenuItem) Enable() {
	mi.report(mi.enable())
}

func (mi *MenuItem) Disable() {
	mi.report(mi.disable())
}

func (mi *MenuItem) enable() error {
	mi.Base.Enable()
	if mi.label == nil {
		return errors.Wrap(ErrNoLabel, 1)
	}
	mi.label.SetTextColor(mi.labelTextColor)
	return nil
}

func (mi *MenuItem) disable() error {
	mi.Base.Disable()
	if mi.label == nil {
		return errors.Wrap(ErrNoLabel, 1)
	}
	mi.label.SetTextColor(internal.GetTheme().DisabledTextColor)
	return nil
}

func (mi *MenuItem) report(err error) {
	if err != nil {
		internal.GetInternalLogger().Error("Menu item enable state changed without a label", "title", mi.Title, "error", err)
	}
}

// SetSubmenu attaches a submenu view, which is hidden until the caller opens it, and
// shows the chevron. The chevron is created on first use and only hidden, never
// destroyed, when the submenu is cleared.
func (mi *MenuItem) SetSubmenu(submenu view.View) {
	mi.submenu = submenu

	if submenu == nil {
		if mi.iconView != nil {
			mi.iconView.SetVisible(false)
		}
		mi.UpdateLayout()
		return
	}

	submenu.ViewBase().Hide()

	if mi.iconView == nil {
		mi.iconView = view.NewIconView(mi, constants.IconChevronRight, mi.iconFont.Name, mi.iconFont.Size, 0, 0, 0, 0)
		mi.iconView.SetAlign(constants.AlignRight | constants.AlignVCenter)
		mi.iconView.SetBorder(0)
		mi.iconView.SetBackgroundColor(internal.Clear)
		mi.iconView.SetColor(internal.GetTheme().IconColor)
	}
	mi.iconView.SetVisible(true)
	mi.UpdateLayout()
}

func (mi *MenuItem) Submenu() view.View {
	return mi.submenu
}

// Icon returns the chevron, or nil if no submenu was ever attached.
func (mi *MenuItem) Icon() *view.IconView {
	return mi.iconView
}

func (mi *MenuItem) PostDraw(c view.Canvas) {
	mi.Base.PostDraw(c)

	if mi.Separator {
		r := mi.AbsoluteRect()
		c.HLine(r.X, r.X+r.W-1, r.Y+r.H-1, internal.GetTheme().SeparatorColor)
	}
}
