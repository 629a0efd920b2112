package internal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/constants"
	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/view"
	"github.com/BurntSushi/toml"
)

type SafeArea struct {
	Top    int32 `toml:"top"`
	Left   int32 `toml:"left"`
	Bottom int32 `toml:"bottom"`
	Right  int32 `toml:"right"`
}

type Config struct {
	MenuWidth       int32   `toml:"menu_width"`
	TopBarHeight    int32   `toml:"top_bar_height"`
	StatusBarHeight int32   `toml:"status_bar_height"`
	Scale           float32 `toml:"scale"`
	MouseScale      float32 `toml:"mouse_scale"`
	CollapseTimeMs  int     `toml:"collapse_time_ms"`

	// Mobile enables the safe-area insets below; elsewhere they read as zero.
	Mobile   bool     `toml:"mobile"`
	SafeArea SafeArea `toml:"safe_area"`

	Theme        string `toml:"theme"`
	FontPath     string `toml:"font_path"`
	FontSize     int    `toml:"font_size"`
	IconFontPath string `toml:"icon_font_path"`
	IconFontSize int    `toml:"icon_font_size"`

	LogLevel    string `toml:"log_level"`
	LogFilename string `toml:"log_filename"`
	TouchDevice string `toml:"touch_device"`
}

func DefaultConfig() Config {
	return Config{
		MenuWidth:      250,
		TopBarHeight:   44,
		Scale:          1,
		MouseScale:     1,
		CollapseTimeMs: int(constants.DefaultCollapseTime / time.Millisecond),
		Theme:          "cannoli",
		FontSize:       24,
		IconFontSize:   20,
		LogLevel:       "info",
	}
}

// LoadConfig reads a TOML file over the defaults and then applies environment overrides.
// An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.sanitize()

	return cfg, nil
}

func (c *Config) applyEnv() {
	logger := GetInternalLogger()

	if v := os.Getenv(constants.MenuWidthEnvVar); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			c.MenuWidth = int32(n)
		} else {
			logger.Warn("Invalid menu width; using configured value", "value", v, "error", err)
		}
	}

	if v := os.Getenv(constants.ScaleEnvVar); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			c.Scale = float32(f)
		} else {
			logger.Warn("Invalid scale; using configured value", "value", v, "error", err)
		}
	}

	if v := os.Getenv(constants.SafeAreaEnvVar); v != "" {
		if area, err := parseSafeArea(v); err == nil {
			c.SafeArea = area
			c.Mobile = true
		} else {
			logger.Warn("Invalid safe area; ignoring", "value", v, "error", err)
		}
	}

	if v := os.Getenv(constants.TouchDeviceEnvVar); v != "" {
		c.TouchDevice = v
	}
}

func (c *Config) sanitize() {
	defaults := DefaultConfig()
	logger := GetInternalLogger()

	if c.MenuWidth <= 0 {
		logger.Warn("Menu width must be positive; using default", "value", c.MenuWidth)
		c.MenuWidth = defaults.MenuWidth
	}
	if c.Scale <= 0 {
		logger.Warn("Scale must be positive; using default", "value", c.Scale)
		c.Scale = defaults.Scale
	}
	if c.MouseScale <= 0 {
		c.MouseScale = defaults.MouseScale
	}
	if c.CollapseTimeMs < 0 {
		c.CollapseTimeMs = defaults.CollapseTimeMs
	}
}

// parseSafeArea reads "top,left,bottom,right".
func parseSafeArea(raw string) (SafeArea, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return SafeArea{}, fmt.Errorf("expected 4 comma separated values, got %d", len(parts))
	}

	var values [4]int32
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return SafeArea{}, fmt.Errorf("invalid inset %q: %w", p, err)
		}
		values[i] = int32(n)
	}

	return SafeArea{Top: values[0], Left: values[1], Bottom: values[2], Right: values[3]}, nil
}

func (c Config) CollapseTime() time.Duration {
	return time.Duration(c.CollapseTimeMs) * time.Millisecond
}

// SafeAreaInsets makes Config a view.InsetsProvider. Only mobile configurations report insets.
func (c Config) SafeAreaInsets() view.Insets {
	if !c.Mobile {
		return view.Insets{}
	}
	return view.Insets{Top: c.SafeArea.Top, Left: c.SafeArea.Left, Bottom: c.SafeArea.Bottom, Right: c.SafeArea.Right}
}
