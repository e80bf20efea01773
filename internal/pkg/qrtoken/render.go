package qrtoken

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	imageSize     = 300
	marginModules = 2
	dataURLPrefix = "data:image/png;base64,"
)

// Render encodes payload as a 300x300 PNG QR code with high error
// correction and a two module quiet zone, returned as a data URL.
func Render(payload string) (string, error) {
	img, err := renderImage(payload)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}

	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func renderImage(payload string) (image.Image, error) {
	q, err := qrcode.New(payload, qrcode.Highest)
	if err != nil {
		return nil, err
	}
	// the library's quiet zone is four modules; draw our own
	q.DisableBorder = true
	bitmap := q.Bitmap()

	modules := len(bitmap) + 2*marginModules
	scale := imageSize / modules
	size := imageSize
	if scale < 1 {
		scale = 1
		size = modules
	}
	offset := (size-scale*modules)/2 + marginModules*scale

	img := image.NewPaletted(image.Rect(0, 0, size, size), color.Palette{color.White, color.Black})
	for y, row := range bitmap {
		for x, dark := range row {
			if !dark {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetColorIndex(offset+x*scale+dx, offset+y*scale+dy, 1)
				}
			}
		}
	}

	return img, nil
}
