// Package label renders scannable QR codes and printable 2x1 labels as PNGs.
package label

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Label geometry: 384x192 px is 2x1 inches at 192 DPI, a common thermal
// label size. Renders fine on screen too.
const (
	labelWidth  = 384
	labelHeight = 192
	qrSide      = 160
	// maxNameLen caps the printed name so it fits beside the QR code with
	// the fixed-width face.
	maxNameLen = 22
)

// QRPNG returns a square QR code for url, encoded as a PNG of roughly
// size x size pixels.
func QRPNG(url string, size int) ([]byte, error) {
	if size < 80 {
		size = 80
	}
	data, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return data, nil
}

// LabelPNG composes a 2x1 label: QR code on the left, box name on the right.
func LabelPNG(name, url string) ([]byte, error) {
	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to build qr code: %w", err)
	}

	img := image.NewGray(image.Rect(0, 0, labelWidth, labelHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	qrImg := qr.Image(qrSide)
	draw.Draw(img, image.Rect(10, 16, 10+qrSide, 16+qrSide), qrImg, qrImg.Bounds().Min, draw.Src)

	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}
	d := font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(200, 72),
	}
	d.DrawString(name)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode label: %w", err)
	}
	return buf.Bytes(), nil
}
