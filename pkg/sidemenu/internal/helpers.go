package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Clear is the fully transparent colour; views with a clear background draw nothing.
var Clear = sdl.Color{}

func HexToColor(hex uint32) sdl.Color {
	r := uint8((hex >> 16) & 0xFF)
	g := uint8((hex >> 8) & 0xFF)
	b := uint8(hex & 0xFF)

	return sdl.Color{R: r, G: g, B: b, A: 255}
}

func ScaleInt32(v int32, scale float32) int32 {
	return int32(float32(v) * scale)
}
