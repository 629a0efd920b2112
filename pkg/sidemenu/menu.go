package sidemenu

import (
	"slices"
	"time"

	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/constants"
	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/i18n"
	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/internal"
	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/view"
	"github.com/samber/lo"
	"github.com/veandco/go-sdl2/sdl"
)

// AnimationMode is the screen edge the menu slides in from.
type AnimationMode int

const (
	FromLeft AnimationMode = iota
	FromRight
	FromTop
	FromBottom
)

func (m AnimationMode) String() string {
	switch m {
	case FromLeft:
		return "left"
	case FromRight:
		return "right"
	case FromTop:
		return "top"
	case FromBottom:
		return "bottom"
	}
	return "unknown"
}

// ParseAnimationMode accepts the names produced by AnimationMode.String.
func ParseAnimationMode(s string) (AnimationMode, bool) {
	for _, mode := range []AnimationMode{FromLeft, FromRight, FromTop, FromBottom} {
		if mode.String() == s {
			return mode, true
		}
	}
	return FromLeft, false
}

// MenuOptions carries the collaborators a Menu queries. Zero values fall back to the
// package metrics, no safe-area insets and the capture slot of the view tree.
type MenuOptions struct {
	Metrics *Metrics
	Insets  view.InsetsProvider
	Capture *view.Capture
}

// Menu is a collapsible container of MenuItems that slides in from one screen edge.
//
// While open the menu holds the input capture, so it sees pointer events before the rest
// of the tree and closes itself when one lands outside its bounds. Rows added with Add
// are kept mutually exclusive: activating one selects it, deselects the others and then
// runs the menu callback.
type Menu struct {
	view.Base

	items        []*MenuItem
	selectedItem *MenuItem
	activateView view.View

	isOpen  bool
	mode    AnimationMode
	hidden  sdl.Point
	visible sdl.Point
	offsetY int32

	callback func(*Menu)

	metrics  Metrics
	insets   view.InsetsProvider
	capture  *view.Capture
	detached *view.Capture
}

// NewMenu creates a menu attached to parent. A width of zero or less uses the configured
// menu width. The menu starts logically open; the first layout event (or an explicit
// Close(0)) moves it to its hidden position.
func NewMenu(parent view.View, title string, x, y, w, h int32, callback func(*Menu), mode AnimationMode, opts MenuOptions) *Menu {
	m := &Menu{
		isOpen:   true,
		callback: callback,
		metrics:  GetMetrics(),
		insets:   opts.Insets,
		capture:  opts.Capture,
	}
	if opts.Metrics != nil {
		m.metrics = *opts.Metrics
	}
	if m.insets == nil {
		m.insets = view.NoInsets{}
	}
	if w <= 0 {
		w = m.metrics.MenuWidth
	}

	m.Init(m, parent, title, x, y, w, h)

	m.Clickable = false
	m.CaptureOnClick = m.isOpen
	m.SetAlign(constants.AlignAbsolute)
	m.SetBackgroundColor(internal.GetTheme().MenuBackgroundColor)
	m.SetLayout(constants.LayoutVertical)

	if parent != nil {
		parent.ViewBase().UpdateLayout()
	}

	m.SetMenuAnimationMode(mode)

	return m
}

func (m *Menu) MenuAnimationMode() AnimationMode {
	return m.mode
}

// SetMenuAnimationMode stores the mode and recomputes the hidden and visible targets
// from the parent's current geometry.
func (m *Menu) SetMenuAnimationMode(mode AnimationMode) {
	m.mode = mode

	var parentPos sdl.Point
	var parentW, parentH int32
	if p := m.Parent(); p != nil {
		pb := p.ViewBase()
		parentPos = pb.AbsolutePosition()
		parentW, parentH = pb.Width(), pb.Height()
	}

	// Parent geometry is in layout units and scaled on both axes; the menu width and
	// the safe-area insets are already device pixels.
	insets := m.insets.SafeAreaInsets()
	width := m.metrics.MenuWidth
	baseX := m.scale(parentPos.X)
	baseY := m.scale(parentPos.Y + m.offsetY)
	centerX := baseX + (m.scale(parentW)-width)/2

	switch mode {
	case FromRight:
		m.hidden = sdl.Point{X: m.scale(parentPos.X + parentW), Y: baseY + insets.Top}
		m.visible = sdl.Point{X: m.scale(parentPos.X+parentW) - width, Y: baseY + insets.Top}
	case FromTop:
		m.hidden = sdl.Point{X: centerX, Y: -m.scale(m.Height())}
		m.visible = sdl.Point{X: centerX, Y: baseY}
	case FromBottom:
		m.hidden = sdl.Point{X: centerX, Y: m.scale(parentPos.Y + parentH)}
		m.visible = sdl.Point{X: centerX, Y: baseY}
	default:
		m.hidden = sdl.Point{X: baseX - width, Y: baseY + insets.Top}
		m.visible = sdl.Point{X: baseX, Y: baseY + insets.Top}
	}

	internal.GetInternalLogger().Debug("Menu targets updated",
		"title", m.Title,
		"mode", mode.String(),
		"hidden", m.hidden,
		"visible", m.visible)
}

// HiddenPosition is the absolute position the menu rests at while closed.
func (m *Menu) HiddenPosition() sdl.Point {
	return m.hidden
}

// VisiblePosition is the absolute open position before the safe-area adjustment Open applies.
func (m *Menu) VisiblePosition() sdl.Point {
	return m.visible
}

func (m *Menu) scale(v int32) int32 {
	return internal.ScaleInt32(v, m.metrics.Scale)
}

func (m *Menu) IsOpen() bool {
	return m.isOpen
}

// Open slides the menu to its visible position over duration and takes the input capture.
// It does nothing while a move is still running.
func (m *Menu) Open(duration time.Duration) {
	if m.IsMoving() {
		return
	}
	if m.selectedItem != nil {
		m.selectedItem.SetSelected(false)
	}
	m.isOpen = true
	m.CaptureOnClick = true

	target := m.visible
	insets := m.insets.SafeAreaInsets()
	switch m.mode {
	case FromLeft:
		target.X += insets.Left
	case FromRight:
		target.X -= insets.Right
	case FromTop, FromBottom:
		target.Y += insets.Top
	}
	m.MoveTo(target.X, target.Y, duration)

	m.captureService().Acquire(m)
	internal.GetInternalLogger().Debug("Menu opened", "title", m.Title, "duration", duration)
}

// Close slides the menu to its hidden position over duration and gives up the input
// capture. It does nothing while a move is still running.
func (m *Menu) Close(duration time.Duration) {
	if m.IsMoving() {
		return
	}
	m.isOpen = false
	m.CaptureOnClick = false
	m.MoveTo(m.hidden.X, m.hidden.Y, duration)

	m.captureService().Release(m)
	internal.GetInternalLogger().Debug("Menu closed", "title", m.Title, "duration", duration)
}

func (m *Menu) Toggle(duration time.Duration) {
	if m.isOpen {
		m.Close(duration)
	} else {
		m.Open(duration)
	}
}

func (m *Menu) captureService() *view.Capture {
	if m.capture != nil {
		return m.capture
	}
	if r := view.RootOf(m); r != nil {
		return r.Capture()
	}
	if m.detached == nil {
		m.detached = view.NewCapture()
	}
	return m.detached
}

// SetActivateView registers the view that toggles the menu, typically a hamburger button.
// Presses on it while the menu is open are swallowed so the button does not reopen the
// menu it is about to close.
func (m *Menu) SetActivateView(v view.View) {
	m.activateView = v
}

func (m *Menu) ActivateView() view.View {
	return m.activateView
}

func (m *Menu) SetSelectCallback(callback func(*Menu)) {
	m.callback = callback
}

func (m *Menu) HandleEvent(event sdl.Event) bool {
	if view.IsLayoutEvent(event) {
		return m.relayout(event)
	}

	x, y, down, ok := view.PointerEvent(event, m.Display())
	if !ok || !m.isOpen {
		return m.Base.HandleEvent(event)
	}

	if down && m.activateView != nil && m.activateView.ViewBase().HitTest(x, y) {
		return true
	}

	if !m.HitTest(x, y) {
		m.Close(m.metrics.CollapseTime)
		m.captureService().Release(m)

		// Touches that dismiss the menu still reach the views underneath.
		if _, mouse := event.(*sdl.MouseButtonEvent); mouse {
			return true
		}
	}

	return m.Base.HandleEvent(event)
}

// relayout re-flows the subtree at its open geometry and then parks the menu hidden again.
func (m *Menu) relayout(event sdl.Event) bool {
	m.offsetY = m.metrics.TopBarHeight + m.metrics.StatusBarHeight
	m.SetMenuAnimationMode(m.mode)

	m.Open(0)
	handled := m.Base.HandleEvent(event)
	m.Close(0)

	return handled
}

// Add appends item to the menu and wires its callback into the menu's selection handling.
func (m *Menu) Add(item *MenuItem) {
	if lo.Contains(m.items, item) {
		internal.GetInternalLogger().Warn("Menu item already added", "menu", m.Title, "item", item.Title)
		return
	}

	m.AddChild(item)
	m.items = append(m.items, item)

	item.SetCallback(func(view.View) {
		m.selectItem(item)
	})
}

func (m *Menu) selectItem(trigger *MenuItem) {
	found := false
	for _, item := range slices.Clone(m.items) {
		if item == trigger {
			item.SetSelected(true)
			m.selectedItem = item
			found = true
		} else {
			item.SetSelected(false)
		}
	}

	if !found {
		return
	}

	internal.GetInternalLogger().Debug("Menu item selected", "menu", m.Title, "item", trigger.Title)
	if m.callback != nil {
		m.callback(m)
	}
}

// Remove detaches item from the menu. The item's callback is cleared only if the item
// belonged to the menu's rows.
func (m *Menu) Remove(item *MenuItem) {
	m.RemoveChild(item)

	idx := lo.IndexOf(m.items, item)
	if idx < 0 {
		return
	}
	m.items = slices.Delete(m.items, idx, idx+1)
	item.SetCallback(nil)

	if m.selectedItem == item {
		m.selectedItem = nil
	}
}

// AddSimpleMenu builds a padded row holding a single left-aligned label, adds it and
// re-lays out the menu.
func (m *Menu) AddSimpleMenu(title string, separator bool) *MenuItem {
	item := NewMenuItem(nil, title, 0, 0, view.FillParent, 0)
	item.SetPadding(8, 10, 8, 10)
	item.SetIconFont(m.metrics.IconFont)
	item.Separator = separator

	label := view.NewLabel(item, title, 0, 0, view.FillParent, 0)
	label.SetAlign(constants.AlignLeft | constants.AlignVCenter)
	label.SetBackgroundColor(internal.Clear)
	label.SetFont(m.metrics.LabelFont)
	label.SetTextColor(internal.GetTheme().TextColor)
	item.SetLabel(label)

	m.Add(item)
	m.UpdateLayout()

	return item
}

// AddLocalizedMenu is AddSimpleMenu with the title looked up in the message bundle.
func (m *Menu) AddLocalizedMenu(message *i18n.Message, separator bool) *MenuItem {
	return m.AddSimpleMenu(i18n.Localize(message, nil), separator)
}

// Items returns the rows in display order.
func (m *Menu) Items() []*MenuItem {
	return slices.Clone(m.items)
}

func (m *Menu) SelectedItem() *MenuItem {
	return m.selectedItem
}
