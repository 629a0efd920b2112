package cannoli

import (
	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/internal"
)

func InitCannoliTheme(fontPath, iconFontPath string) internal.Theme {
	return internal.Theme{
		SelectionColor:      internal.HexToColor(0x008080),
		ItemBackgroundColor: internal.HexToColor(0xFFFFFF),
		MenuBackgroundColor: internal.HexToColor(0xE6E6E6),
		TextColor:           internal.HexToColor(0x000000),
		DisabledTextColor:   internal.HexToColor(0x808080),
		SeparatorColor:      internal.HexToColor(0x000000),
		IconColor:           internal.HexToColor(0x000000),
		FontPath:            fontPath,
		IconFontPath:        iconFontPath,
	}
}
