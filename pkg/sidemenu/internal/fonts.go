package internal

import (
	"fmt"
	"os"

	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/view"
	"github.com/veandco/go-sdl2/ttf"
)

const (
	UIFontName   = "ui"
	IconFontName = "icons"
)

// Fonts opens TTF files by registered name and caches one *ttf.Font per name and size.
type Fonts struct {
	paths map[string]string
	cache map[view.FontSpec]*ttf.Font
}

func NewFonts() *Fonts {
	return &Fonts{
		paths: make(map[string]string),
		cache: make(map[view.FontSpec]*ttf.Font),
	}
}

func (f *Fonts) Register(name, path string) {
	f.paths[name] = path
}

// Get returns the font for spec, trying FALLBACK_FONT when the registered file fails to open.
func (f *Fonts) Get(spec view.FontSpec) (*ttf.Font, error) {
	if font, ok := f.cache[spec]; ok {
		return font, nil
	}

	path, ok := f.paths[spec.Name]
	if !ok {
		return nil, fmt.Errorf("font %q is not registered", spec.Name)
	}

	font, err := ttf.OpenFont(path, spec.Size)
	if err != nil {
		fallback := os.Getenv("FALLBACK_FONT")
		if fallback == "" {
			return nil, fmt.Errorf("failed to open font %s: %w", path, err)
		}
		GetInternalLogger().Debug("Failed to load font, using fallback", "path", path, "fallback", fallback, "error", err)
		font, err = ttf.OpenFont(fallback, spec.Size)
		if err != nil {
			return nil, fmt.Errorf("failed to open fallback font %s: %w", fallback, err)
		}
	}

	f.cache[spec] = font
	return font, nil
}

func (f *Fonts) Close() {
	for spec, font := range f.cache {
		font.Close()
		delete(f.cache, spec)
	}
}

// CalculateFontSizeForResolution scales a size designed for a 1024 pixel wide screen.
func CalculateFontSizeForResolution(baseSize int, screenWidth int32) int {
	const referenceWidth int32 = 1024
	scaleFactor := float32(screenWidth) / float32(referenceWidth)

	// Apply damping for larger screens to reduce scaling growth
	if screenWidth > referenceWidth {
		scaleFactor = 1.0 + (scaleFactor-1.0)*0.75
	}

	return int(float32(baseSize) * scaleFactor)
}
