package sidemenu

import (
	"log/slog"
	"os"
	"time"

	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/constants"
	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/internal"
	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/platform/cannoli"
	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/platform/nextui"
	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/view"
)

type Config = internal.Config

type Theme = internal.Theme

// Metrics are the layout and platform measurements the menu widgets query.
type Metrics struct {
	MenuWidth       int32
	TopBarHeight    int32
	StatusBarHeight int32
	Scale           float32
	CollapseTime    time.Duration
	LabelFont       view.FontSpec
	IconFont        view.FontSpec
}

var currentMetrics = MetricsFromConfig(internal.DefaultConfig())

func MetricsFromConfig(cfg Config) Metrics {
	return Metrics{
		MenuWidth:       cfg.MenuWidth,
		TopBarHeight:    cfg.TopBarHeight,
		StatusBarHeight: cfg.StatusBarHeight,
		Scale:           cfg.Scale,
		CollapseTime:    cfg.CollapseTime(),
		LabelFont:       view.FontSpec{Name: internal.UIFontName, Size: cfg.FontSize},
		IconFont:        view.FontSpec{Name: internal.IconFontName, Size: cfg.IconFontSize},
	}
}

func SetMetrics(m Metrics) {
	currentMetrics = m
}

func GetMetrics() Metrics {
	return currentMetrics
}

type Options struct {
	ConfigPath  string
	LogFilename string
}

// Init loads the configuration, sets up logging, the theme and the default metrics.
// It does not touch SDL, so widgets can be built and driven without a window.
func Init(options Options) (Config, error) {
	if options.LogFilename != "" {
		internal.SetLogFilename(options.LogFilename)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	}

	path := options.ConfigPath
	if path == "" {
		path = os.Getenv(constants.ConfigPathEnvVar)
	}

	cfg, err := internal.LoadConfig(path)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to load config, using defaults", "path", path, "error", err)
	}

	internal.SetRawLogLevel(cfg.LogLevel)
	internal.SetTheme(ThemeForConfig(cfg))
	SetMetrics(MetricsFromConfig(cfg))

	return cfg, err
}

// ThemeForConfig picks the platform palette named by cfg.Theme.
func ThemeForConfig(cfg Config) Theme {
	var theme Theme
	switch cfg.Theme {
	case "nextui":
		theme = nextui.InitNextUITheme(cfg.IconFontPath)
	case "cannoli":
		theme = cannoli.InitCannoliTheme(cfg.FontPath, cfg.IconFontPath)
	default:
		theme = internal.DefaultTheme()
		theme.FontPath = cfg.FontPath
		theme.IconFontPath = cfg.IconFontPath
	}
	if theme.FontPath == "" {
		theme.FontPath = cfg.FontPath
	}
	return theme
}

func SetTheme(theme Theme) {
	internal.SetTheme(theme)
}

func GetTheme() Theme {
	return internal.GetTheme()
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

func CloseLogger() {
	internal.CloseLogger()
}
