package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

type Theme struct {
	SelectionColor      sdl.Color // Row background while selected
	ItemBackgroundColor sdl.Color // Row background otherwise
	MenuBackgroundColor sdl.Color // Menu area not covered by rows
	TextColor           sdl.Color // Enabled label text
	DisabledTextColor   sdl.Color // Disabled label text
	SeparatorColor      sdl.Color // Line under rows
	IconColor           sdl.Color // Submenu chevron
	FontPath            string
	IconFontPath        string
}

var currentTheme = DefaultTheme()

// DefaultTheme is the plain white menu with a light blue selection.
func DefaultTheme() Theme {
	return Theme{
		SelectionColor:      HexToColor(0xC8E1FF),
		ItemBackgroundColor: HexToColor(0xFFFFFF),
		MenuBackgroundColor: HexToColor(0xF0F0F0),
		TextColor:           HexToColor(0x000000),
		DisabledTextColor:   HexToColor(0x808080),
		SeparatorColor:      HexToColor(0x000000),
		IconColor:           HexToColor(0x000000),
	}
}

func SetTheme(theme Theme) {
	currentTheme = theme
}

func GetTheme() Theme {
	return currentTheme
}
