package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu"
	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/constants"
	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/i18n"
	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/view"
	"github.com/integrii/flaggy"
	"github.com/veandco/go-sdl2/sdl"
)

const version = "0.1.0"

var (
	configPath   string
	modeName     = sidemenu.FromLeft.String()
	touchDevice  string
	language     string
	messageFiles []string
	debugging    bool
)

func main() {
	flaggy.SetName("sidemenu-demo")
	flaggy.SetDescription("Slide-in side menu demo")
	flaggy.String(&configPath, "c", "config", "Path to a TOML config file")
	flaggy.String(&modeName, "m", "mode", "Edge the menu slides in from: left, right, top or bottom")
	flaggy.String(&touchDevice, "t", "touch", "evdev touchscreen device, e.g. /dev/input/event1")
	flaggy.String(&language, "l", "lang", "Language code for menu titles")
	flaggy.StringSlice(&messageFiles, "i", "messages", "Message files for menu titles (JSON or TOML)")
	flaggy.Bool(&debugging, "d", "debug", "Log menu state changes")
	flaggy.SetVersion(version)
	flaggy.Parse()

	if err := run(); err != nil {
		slog.Error("sidemenu-demo failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := sidemenu.Init(sidemenu.Options{ConfigPath: configPath, LogFilename: "sidemenu-demo.log"})
	if err != nil {
		sidemenu.GetLogger().Warn("Continuing with default config", "error", err)
	}
	defer sidemenu.CloseLogger()

	logger := sidemenu.GetLogger()
	if debugging {
		sidemenu.SetLogLevel(slog.LevelDebug)
	}

	mode, ok := sidemenu.ParseAnimationMode(modeName)
	if !ok {
		return fmt.Errorf("unknown animation mode %q", modeName)
	}

	if len(messageFiles) > 0 {
		if err := i18n.InitI18N(messageFiles); err != nil {
			return fmt.Errorf("failed to load messages: %w", err)
		}
		if language != "" {
			if err := i18n.SetWithCode(language); err != nil {
				logger.Warn("Unknown language, keeping English", "lang", language, "error", err)
			}
		}
	}

	if err := sidemenu.InitSDL(); err != nil {
		return err
	}
	defer sidemenu.QuitSDL()

	window, err := sidemenu.OpenWindow("sidemenu", cfg)
	if err != nil {
		return err
	}

	theme := sidemenu.GetTheme()
	canvas, err := sidemenu.NewCanvas(window, theme)
	if err != nil {
		return err
	}
	defer canvas.Destroy()

	metrics := sidemenu.GetMetrics()
	metrics.LabelFont.Size = sidemenu.ScaledFontSize(window, metrics.LabelFont.Size)
	metrics.IconFont.Size = sidemenu.ScaledFontSize(window, metrics.IconFont.Size)
	sidemenu.SetMetrics(metrics)

	root := view.NewRoot(window, nil)
	root.SetMeasurer(canvas)

	d := newDemo(root, cfg, metrics, mode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var touches <-chan sdl.Event
	if touchDevice == "" {
		touchDevice = cfg.TouchDevice
	}
	if touchDevice != "" {
		source, err := sidemenu.OpenTouchSource(touchDevice)
		if err != nil {
			logger.Error("Touch input disabled", "device", touchDevice, "error", err)
		} else {
			touches = source.Events()
			go func() {
				if err := source.Run(ctx); err != nil {
					logger.Error("Touch device stopped", "device", touchDevice, "error", err)
				}
			}()
		}
	}

	// park the menus at their resting positions
	root.Dispatch(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED})

	last := time.Now()
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, quit := event.(*sdl.QuitEvent); quit {
				return nil
			}
			root.Dispatch(event)
		}

	drain:
		for {
			select {
			case event, ok := <-touches:
				if !ok {
					touches = nil
					break drain
				}
				root.Dispatch(event)
			default:
				break drain
			}
		}

		now := time.Now()
		root.Update(now.Sub(last))
		last = now

		d.refresh()
		canvas.Clear(theme.MenuBackgroundColor)
		root.Render(canvas)
		canvas.Present()

		sdl.Delay(16)
	}
}

type demo struct {
	status  *view.Label
	menu    *sidemenu.Menu
	submenu *sidemenu.Menu
	chosen  string
}

func newDemo(root *view.Root, cfg sidemenu.Config, metrics sidemenu.Metrics, mode sidemenu.AnimationMode) *demo {
	d := &demo{chosen: "nothing"}
	theme := sidemenu.GetTheme()
	w, h := root.Width(), root.Height()

	bar := view.NewPanel(root, "top bar", 0, 0, w, metrics.TopBarHeight+metrics.StatusBarHeight)
	bar.SetBackgroundColor(theme.SelectionColor)

	hamburger := view.NewLabel(bar, constants.IconBars, 0, metrics.StatusBarHeight, metrics.TopBarHeight, metrics.TopBarHeight)
	hamburger.SetFont(metrics.IconFont)
	hamburger.SetAlign(constants.AlignCenter | constants.AlignVCenter)
	hamburger.SetTextColor(theme.TextColor)
	hamburger.Clickable = true

	d.status = view.NewLabel(root, "", metrics.TopBarHeight, metrics.TopBarHeight+metrics.StatusBarHeight+20, w-2*metrics.TopBarHeight, 0)
	d.status.SetFont(metrics.LabelFont)
	d.status.SetTextColor(theme.TextColor)

	menuHeight := h - metrics.TopBarHeight - metrics.StatusBarHeight
	opts := sidemenu.MenuOptions{Metrics: &metrics, Insets: cfg}

	d.menu = sidemenu.NewMenu(root, "main", 0, 0, metrics.MenuWidth, menuHeight, d.selected, mode, opts)
	d.menu.SetActivateView(hamburger)
	d.menu.AddLocalizedMenu(&i18n.Message{ID: "menu_home", Other: "Home"}, true)
	d.menu.AddLocalizedMenu(&i18n.Message{ID: "menu_library", Other: "Library"}, true)
	settings := d.menu.AddLocalizedMenu(&i18n.Message{ID: "menu_settings", Other: "Settings"}, true)
	more := d.menu.AddLocalizedMenu(&i18n.Message{ID: "menu_more", Other: "More"}, false)

	if err := settings.SetEnable(false); err != nil {
		sidemenu.GetLogger().Error("Failed to disable row", "error", err)
	}

	d.submenu = sidemenu.NewMenu(root, "more", 0, 0, metrics.MenuWidth, menuHeight, d.selected, sidemenu.FromRight, opts)
	d.submenu.AddLocalizedMenu(&i18n.Message{ID: "menu_about", Other: "About"}, true)
	d.submenu.AddLocalizedMenu(&i18n.Message{ID: "menu_help", Other: "Help"}, false)
	more.SetSubmenu(d.submenu)

	hamburger.OnClick = func(view.View) {
		d.menu.Toggle(metrics.CollapseTime)
	}

	return d
}

func (d *demo) selected(m *sidemenu.Menu) {
	item := m.SelectedItem()
	if item == nil {
		return
	}
	d.chosen = item.Title
	sidemenu.GetLogger().Info("Menu item chosen", "menu", m.Title, "item", item.Title)

	if sub, ok := item.Submenu().(*sidemenu.Menu); ok {
		collapse := sidemenu.GetMetrics().CollapseTime
		m.Close(collapse)
		sub.Show()
		sub.Open(collapse)
		return
	}

	m.Close(sidemenu.GetMetrics().CollapseTime)
}

func (d *demo) refresh() {
	d.status.SetText("Selected: " + d.chosen)
}
