package nextui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/sidemenu/pkg/sidemenu/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestParseHexColor(t *testing.T) {
	assert.Equal(t, internal.HexToColor(0x9B2257), parseHexColor("0x9B2257"))
	assert.Equal(t, internal.HexToColor(0xFFFFFF), parseHexColor("#ffffff"))
	assert.Equal(t, internal.HexToColor(0x000001), parseHexColor("000001"))
	assert.Equal(t, sdl.Color{R: 255, A: 255}, parseHexColor("not a colour"))
}

func TestThemeFromNextVal(t *testing.T) {
	theme := themeFromNextVal(&NextVal{
		Color1:   "0xFFFFFF",
		Color2:   "0x9B2257",
		Color4:   "0x000000",
		Color6:   "0x808080",
		BGColor:  "0x1E2329",
		FontPath: "/fonts/next.ttf",
	}, "/fonts/icons.ttf")

	assert.Equal(t, internal.HexToColor(0xFFFFFF), theme.SelectionColor)
	assert.Equal(t, internal.HexToColor(0x1E2329), theme.ItemBackgroundColor)
	assert.Equal(t, internal.HexToColor(0x9B2257), theme.SeparatorColor)
	assert.Equal(t, internal.HexToColor(0x000000), theme.TextColor)
	assert.Equal(t, internal.HexToColor(0x808080), theme.DisabledTextColor)
	assert.Equal(t, "/fonts/next.ttf", theme.FontPath)
	assert.Equal(t, "/fonts/icons.ttf", theme.IconFontPath)
}

func TestReadNextValFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nextval.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"color1":"0xFFFFFF","bgcolor":"0x000000","font":1,"fontpath":"/f.ttf"}`), 0644))

	nv, err := ReadNextValFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0xFFFFFF", nv.Color1)
	assert.Equal(t, 1, nv.Font)

	_, err = ReadNextValFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDecodeNextValTrimsToolOutput(t *testing.T) {
	nv, err := decodeNextVal([]byte("\n  {\"color2\":\"0x9B2257\"}\n"))
	require.NoError(t, err)
	assert.Equal(t, "0x9B2257", nv.Color2)

	_, err = decodeNextVal([]byte("nextval: no such palette"))
	assert.Error(t, err)
}

func TestInitNextUIThemeFallsBack(t *testing.T) {
	t.Setenv("SIDEMENU_DEV", "1")
	t.Setenv(nextValPathEnvVar, filepath.Join(t.TempDir(), "missing.json"))

	theme := InitNextUITheme("/fonts/icons.ttf")
	assert.Equal(t, defaultTheme.SelectionColor, theme.SelectionColor)
	assert.Equal(t, "/fonts/icons.ttf", theme.IconFontPath)
}
