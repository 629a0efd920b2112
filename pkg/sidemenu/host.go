package sidemenu

import (
	"fmt"

	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/internal"
)

type Window = internal.Window

type Canvas = internal.Canvas

type TouchSource = internal.TouchSource

func InitSDL() error {
	return internal.InitSDL()
}

func QuitSDL() {
	internal.QuitSDL()
}

// OpenWindow creates the SDL window; it doubles as the view.Display of a view.Root.
func OpenWindow(title string, cfg Config) (*Window, error) {
	return internal.InitWindow(title, cfg)
}

// NewCanvas returns an SDL canvas with the theme's UI and icon fonts registered under
// the names the metrics refer to.
func NewCanvas(window *Window, theme Theme) (*Canvas, error) {
	if theme.FontPath == "" {
		return nil, fmt.Errorf("no UI font configured")
	}

	fonts := internal.NewFonts()
	fonts.Register(internal.UIFontName, theme.FontPath)
	if theme.IconFontPath != "" {
		fonts.Register(internal.IconFontName, theme.IconFontPath)
	} else {
		fonts.Register(internal.IconFontName, theme.FontPath)
	}

	return internal.NewCanvas(window.Renderer, fonts), nil
}

// ScaledFontSize adapts a font size designed for a 1024 pixel wide screen to the window.
func ScaledFontSize(window *Window, size int) int {
	return internal.CalculateFontSizeForResolution(size, window.GetWidth())
}

func OpenTouchSource(path string) (*TouchSource, error) {
	return internal.OpenTouchSource(path)
}
