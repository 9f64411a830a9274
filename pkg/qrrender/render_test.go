package qrrender

import (
	"image/color"
	"strings"
	"testing"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelSelection(t *testing.T) {
	// Logo menutup bagian tengah simbol, jadi butuh redundansi High.
	assert.Equal(t, qrcode.High, Options{HasLogo: true}.level())
	assert.Equal(t, qrcode.Medium, Options{}.level())
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ff8800")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x88, B: 0x00, A: 0xff}, c)

	c, err = ParseHexColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)

	_, err = ParseHexColor("black")
	assert.Error(t, err)

	_, err = ParseHexColor("#zzzzzz")
	assert.Error(t, err)
}

func TestRenderPNG(t *testing.T) {
	png, err := RenderPNG("https://example.com", Options{Width: 256, DarkColor: "#000000", LightColor: "#ffffff"})
	require.NoError(t, err)
	require.NotEmpty(t, png)
	// Magic number PNG.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestRenderPNGInvalidColor(t *testing.T) {
	_, err := RenderPNG("https://example.com", Options{Width: 256, DarkColor: "hitam"})
	assert.Error(t, err)
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG("https://example.com", Options{Width: 400, DarkColor: "#112233", LightColor: "#ffffff"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`))
	assert.True(t, strings.HasSuffix(svg, `</svg>`))
	assert.Contains(t, svg, `width="400"`)
	assert.Contains(t, svg, `fill="#112233"`)
	assert.Contains(t, svg, `fill="#ffffff"`)
}

func TestRenderSVGDeterministic(t *testing.T) {
	opts := Options{Width: 400, DarkColor: "#000000", LightColor: "#ffffff"}
	first, err := RenderSVG("WIFI:T:WPA;S:Home;P:secret;;", opts)
	require.NoError(t, err)
	second, err := RenderSVG("WIFI:T:WPA;S:Home;P:secret;;", opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
