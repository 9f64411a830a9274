// Package qrrender adalah adapter di atas library encoding simbol QR
// (skip2/go-qrcode). Matriks QR sepenuhnya urusan library; paket ini hanya
// memilih level error correction, warna, ukuran, dan format keluaran.
package qrrender

import (
	"fmt"
	"image/color"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Options mengatur tampilan hasil render. HasLogo menandakan client akan
// menimpa bagian tengah dengan logo, sehingga level error correction dinaikkan
// ke High untuk mengimbangi modul yang tertutup. Tanpa logo cukup Medium.
type Options struct {
	Width      int
	DarkColor  string
	LightColor string
	HasLogo    bool
}

func (o Options) level() qrcode.RecoveryLevel {
	if o.HasLogo {
		return qrcode.High
	}
	return qrcode.Medium
}

// RenderPNG menghasilkan gambar PNG dari payload.
func RenderPNG(content string, opts Options) ([]byte, error) {
	q, err := newCode(content, opts)
	if err != nil {
		return nil, err
	}
	png, err := q.PNG(opts.Width)
	if err != nil {
		return nil, fmt.Errorf("gagal encode PNG: %w", err)
	}
	return png, nil
}

// RenderSVG menghasilkan dokumen SVG dari payload. skip2 tidak punya penulis
// SVG, jadi adapter menggambar ulang bitmap hasil library sebagai rect.
func RenderSVG(content string, opts Options) (string, error) {
	q, err := newCode(content, opts)
	if err != nil {
		return "", err
	}

	grid := q.Bitmap()
	n := len(grid)
	if n == 0 {
		return "", fmt.Errorf("bitmap QR kosong")
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`,
		opts.Width, opts.Width, n, n)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`, n, n, opts.LightColor)
	for y, row := range grid {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&b, `<rect x="%d" y="%d" width="1" height="1" fill="%s"/>`, x, y, opts.DarkColor)
			}
		}
	}
	b.WriteString(`</svg>`)
	return b.String(), nil
}

func newCode(content string, opts Options) (*qrcode.QRCode, error) {
	q, err := qrcode.New(content, opts.level())
	if err != nil {
		return nil, fmt.Errorf("gagal membuat QR Code: %w", err)
	}

	if opts.DarkColor != "" {
		c, err := ParseHexColor(opts.DarkColor)
		if err != nil {
			return nil, err
		}
		q.ForegroundColor = c
	}
	if opts.LightColor != "" {
		c, err := ParseHexColor(opts.LightColor)
		if err != nil {
			return nil, err
		}
		q.BackgroundColor = c
	}
	return q, nil
}

// ParseHexColor menerima format #rgb atau #rrggbb.
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("panjang warna hex tidak valid: %q", s)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("warna hex %q tidak valid: %w", s, err)
	}
	return c, nil
}
