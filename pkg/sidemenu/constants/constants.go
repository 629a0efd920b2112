package constants

import (
	"os"
	"time"
)

const (
	DevModeEnvVar     = "SIDEMENU_DEV"
	ConfigPathEnvVar  = "SIDEMENU_CONFIG"
	MenuWidthEnvVar   = "SIDEMENU_MENU_WIDTH"
	ScaleEnvVar       = "SIDEMENU_SCALE"
	SafeAreaEnvVar    = "SIDEMENU_SAFE_AREA"
	TouchDeviceEnvVar = "SIDEMENU_TOUCH_DEVICE"
)

// DefaultCollapseTime is how long the menu takes to slide away after an outside tap.
const DefaultCollapseTime = 200 * time.Millisecond

// Align is a bit set describing how a view positions itself inside its parent.
type Align int

const AlignNone Align = 0

const (
	AlignLeft Align = 1 << iota
	AlignRight
	AlignCenter
	AlignTop
	AlignBottom
	AlignVCenter
	AlignAbsolute // excluded from the parent's layout pass
)

// Layout is the direction a view stacks its children.
type Layout int

const (
	LayoutAbsolute Layout = iota
	LayoutVertical
	LayoutHorizontal
)

// Icon glyphs from the UI icon font (Font Awesome code points).
const (
	IconChevronRight = "\uf054"
	IconBars         = "\uf0c9"
)

func IsDevMode() bool {
	return os.Getenv(DevModeEnvVar) != ""
}
