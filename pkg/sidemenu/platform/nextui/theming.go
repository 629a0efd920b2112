package nextui

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/constants"
	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/internal"
	"github.com/go-errors/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// NextVal is the colour/font block printed by NextUI's nextval tool.
type NextVal struct {
	Color1   string `json:"color1"`
	Color2   string `json:"color2"`
	Color3   string `json:"color3"`
	Color4   string `json:"color4"`
	Color5   string `json:"color5"`
	Color6   string `json:"color6"`
	BGColor  string `json:"bgcolor"`
	Font     int    `json:"font"`
	FontPath string `json:"fontpath"`
}

const (
	nextValPathEnvVar = "NEXTVAL_PATH"
	nextValTool       = "/mnt/SDCARD/.system/tg5040/bin/nextval.elf"
	nextValTimeout    = 2 * time.Second
)

// invalidColor marks palette entries nextval printed in a form we can't read.
var invalidColor = sdl.Color{R: 255, A: 255}

var defaultTheme = internal.Theme{
	SelectionColor:      internal.HexToColor(0xFFFFFF),
	ItemBackgroundColor: internal.HexToColor(0x000000),
	MenuBackgroundColor: internal.HexToColor(0x1E2329),
	TextColor:           internal.HexToColor(0xFFFFFF),
	DisabledTextColor:   internal.HexToColor(0x808080),
	SeparatorColor:      internal.HexToColor(0x9B2257),
	IconColor:           internal.HexToColor(0xFFFFFF),
}

// InitNextUITheme reads the system palette, from NEXTVAL_PATH in dev mode and
// from the nextval tool on device. Any failure yields the stock NextUI colours.
func InitNextUITheme(iconFontPath string) internal.Theme {
	read := runNextVal
	if constants.IsDevMode() {
		read = func() (*NextVal, error) { return ReadNextValFile(os.Getenv(nextValPathEnvVar)) }
	}

	nv, err := read()
	if err != nil {
		internal.GetInternalLogger().Error("Falling back to default NextUI palette", "error", err)
		theme := defaultTheme
		theme.IconFontPath = iconFontPath
		return theme
	}

	return themeFromNextVal(nv, iconFontPath)
}

// themeFromNextVal maps NextUI's six palette slots onto the menu palette.
func themeFromNextVal(nv *NextVal, iconFontPath string) internal.Theme {
	return internal.Theme{
		SelectionColor:      parseHexColor(nv.Color1),
		ItemBackgroundColor: parseHexColor(nv.BGColor),
		MenuBackgroundColor: parseHexColor(nv.BGColor),
		TextColor:           parseHexColor(nv.Color4),
		DisabledTextColor:   parseHexColor(nv.Color6),
		SeparatorColor:      parseHexColor(nv.Color2),
		IconColor:           parseHexColor(nv.Color4),
		FontPath:            nv.FontPath,
		IconFontPath:        iconFontPath,
	}
}

// ReadNextValFile decodes a saved nextval dump.
func ReadNextValFile(path string) (*NextVal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading nextval file: %w", err)
	}
	return decodeNextVal(data)
}

func runNextVal() (*NextVal, error) {
	ctx, cancel := context.WithTimeout(context.Background(), nextValTimeout)
	defer cancel()

	output, err := exec.CommandContext(ctx, nextValTool).Output()
	if err != nil {
		return nil, errors.Errorf("running %s: %w", nextValTool, err)
	}
	return decodeNextVal(output)
}

func decodeNextVal(data []byte) (*NextVal, error) {
	var nv NextVal
	if err := json.Unmarshal(bytes.TrimSpace(data), &nv); err != nil {
		return nil, errors.Errorf("decoding nextval: %w", err)
	}
	return &nv, nil
}

func parseHexColor(s string) sdl.Color {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "#")

	hex, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return invalidColor
	}
	return internal.HexToColor(uint32(hex))
}
