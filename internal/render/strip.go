package render

import (
	"bytes"
	"image"

	"github.com/chai2010/webp"

	"hstin/wxcmap/colormap"
	"hstin/wxcmap/internal/config"
)

type StripJob struct {
	Name string
}

type StripResult struct {
	Palette *colormap.Palette
	Data    []byte
}

// RenderStrip draws p as a lookup texture: one pixel column per bin, height
// rows tall.
func RenderStrip(p *colormap.Palette, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(p.Colors), height))

	for py := 0; py < height; py++ {
		rowOffset := py * img.Stride
		for px, c := range p.Colors {
			idx := rowOffset + px*4
			img.Pix[idx] = c.R
			img.Pix[idx+1] = c.G
			img.Pix[idx+2] = c.B
			img.Pix[idx+3] = c.A
		}
	}

	return img
}

func EncodeStrip(p *colormap.Palette, cfg *config.Config) ([]byte, error) {
	img := RenderStrip(p, cfg.StripHeight)

	var buf bytes.Buffer
	options := &webp.Options{Lossless: cfg.Lossless, Quality: float32(cfg.Quality)}
	err := webp.Encode(&buf, img, options)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
