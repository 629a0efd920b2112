package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

type Window struct {
	Window     *sdl.Window
	Renderer   *sdl.Renderer
	Title      string
	mouseScale float32
}

var window *Window

// InitSDL brings up the SDL video, event and font subsystems.
func InitSDL() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL: %w", err)
	}
	if err := ttf.Init(); err != nil {
		return fmt.Errorf("failed to initialize SDL_ttf: %w", err)
	}
	return nil
}

func QuitSDL() {
	if window != nil {
		window.Close()
		window = nil
	}
	ttf.Quit()
	sdl.Quit()
}

// InitWindow creates the process window. Outside dev mode it covers the current display;
// in dev mode it is a 1024x768 window unless WINDOW_WIDTH / WINDOW_HEIGHT say otherwise.
func InitWindow(title string, cfg Config) (*Window, error) {
	var width, height int32 = 1024, 768
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)

	if constants.IsDevMode() {
		x, y = 50, 50
		width = envDimension("WINDOW_WIDTH", width)
		height = envDimension("WINDOW_HEIGHT", height)
	} else {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			GetInternalLogger().Error("Failed to get display mode!", "error", err)
		} else {
			width, height = displayMode.W, displayMode.H
		}
	}

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	w, err := sdl.CreateWindow(title, x, y, width, height, flags)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(w, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		w.Destroy()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	window = &Window{
		Window:     w,
		Renderer:   renderer,
		Title:      title,
		mouseScale: cfg.MouseScale,
	}
	return window, nil
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		GetInternalLogger().Warn("Invalid window dimension; using default", "name", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func GetWindow() *Window {
	return window
}

func (window *Window) GetWidth() int32 {
	w, _ := window.Window.GetSize()
	return w
}

func (window *Window) GetHeight() int32 {
	_, h := window.Window.GetSize()
	return h
}

// Size and MouseScale make the window a view.Display.
func (window *Window) Size() (int32, int32) {
	return window.Window.GetSize()
}

func (window *Window) MouseScale() float32 {
	return window.mouseScale
}

func (window *Window) Close() {
	window.Renderer.Destroy()
	window.Window.Destroy()
}
