package internal

import (
	"fmt"

	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/constants"
	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/view"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
)

// Canvas draws view trees onto an SDL renderer.
type Canvas struct {
	Renderer *sdl.Renderer
	Fonts    *Fonts
	textures map[string]*sdl.Texture
}

func NewCanvas(renderer *sdl.Renderer, fonts *Fonts) *Canvas {
	return &Canvas{
		Renderer: renderer,
		Fonts:    fonts,
		textures: make(map[string]*sdl.Texture),
	}
}

func (c *Canvas) FillRect(rect sdl.Rect, color sdl.Color) {
	c.Renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	c.Renderer.FillRect(&rect)
}

func (c *Canvas) StrokeRect(rect sdl.Rect, thickness int32, color sdl.Color) {
	c.Renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	for i := int32(0); i < thickness && rect.W > 2*i && rect.H > 2*i; i++ {
		c.Renderer.DrawRect(&sdl.Rect{X: rect.X + i, Y: rect.Y + i, W: rect.W - 2*i, H: rect.H - 2*i})
	}
}

func (c *Canvas) HLine(x1, x2, y int32, color sdl.Color) {
	gfx.HlineColor(c.Renderer, x1, x2, y, color)
}

func (c *Canvas) Text(text string, font view.FontSpec, rect sdl.Rect, align constants.Align, color sdl.Color) {
	if text == "" {
		return
	}

	texture, err := c.textTexture(text, font, color)
	if err != nil {
		GetInternalLogger().Error("Failed to render text", "text", text, "error", err)
		return
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}

	dst := sdl.Rect{X: rect.X, Y: rect.Y, W: w, H: h}
	switch {
	case align&constants.AlignRight != 0:
		dst.X = rect.X + rect.W - w
	case align&constants.AlignCenter != 0:
		dst.X = rect.X + (rect.W-w)/2
	}
	switch {
	case align&constants.AlignVCenter != 0:
		dst.Y = rect.Y + (rect.H-h)/2
	case align&constants.AlignBottom != 0:
		dst.Y = rect.Y + rect.H - h
	}

	c.Renderer.Copy(texture, nil, &dst)
}

func (c *Canvas) textTexture(text string, spec view.FontSpec, color sdl.Color) (*sdl.Texture, error) {
	key := fmt.Sprintf("%s_%d_%s_%02x%02x%02x%02x", spec.Name, spec.Size, text, color.R, color.G, color.B, color.A)
	if texture, ok := c.textures[key]; ok {
		return texture, nil
	}

	font, err := c.Fonts.Get(spec)
	if err != nil {
		return nil, err
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil, fmt.Errorf("failed to render %q: %w", text, err)
	}
	defer surface.Free()

	texture, err := c.Renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("failed to create texture: %w", err)
	}

	c.textures[key] = texture
	return texture, nil
}

func (c *Canvas) MeasureText(text string, spec view.FontSpec) (int32, int32) {
	font, err := c.Fonts.Get(spec)
	if err != nil {
		return 0, int32(spec.Size)
	}
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, int32(font.Height())
	}
	return int32(w), int32(h)
}

func (c *Canvas) Clear(color sdl.Color) {
	c.Renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	c.Renderer.Clear()
}

func (c *Canvas) Present() {
	c.Renderer.Present()
}

func (c *Canvas) Destroy() {
	for key, texture := range c.textures {
		texture.Destroy()
		delete(c.textures, key)
	}
	c.Fonts.Close()
}
