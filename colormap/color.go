package colormap

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
)

var (
	white            = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	transparentWhite = color.NRGBA{0xff, 0xff, 0xff, 0x00}
)

// TransparentWhite returns a copy of colors in which every pure white entry
// has alpha 0 and every other entry alpha 255.
func TransparentWhite(colors []color.NRGBA) []color.NRGBA {
	return lo.Map(colors, func(c color.NRGBA, _ int) color.NRGBA {
		if c.R == 0xff && c.G == 0xff && c.B == 0xff {
			return transparentWhite
		}
		c.A = 0xff
		return c
	})
}

// Resample picks n colors out of colors the way a boundary norm spreads a
// longer color list over fewer bins: bin i takes entry
// trunc((len(colors)-1)/(n-1) * i). With n == 1 the middle entry is used.
func Resample(colors []color.NRGBA, n int) []color.NRGBA {
	if n <= 0 || len(colors) == 0 {
		return nil
	}
	if n == 1 {
		return []color.NRGBA{colors[(len(colors)-1)/2]}
	}
	scale := float64(len(colors)-1) / float64(n-1)
	return lo.Times(n, func(i int) color.NRGBA {
		return colors[int(scale*float64(i))]
	})
}

func opaque(table [][3]uint8) []color.NRGBA {
	return lo.Map(table, func(c [3]uint8, _ int) color.NRGBA {
		return color.NRGBA{c[0], c[1], c[2], 0xff}
	})
}

func hexColors(codes ...string) []color.NRGBA {
	return lo.Map(codes, func(code string, _ int) color.NRGBA {
		c, err := colorful.Hex(code)
		if err != nil {
			panic(fmt.Sprintf("colormap: bad color table entry %q: %v", code, err))
		}
		r, g, b := c.RGB255()
		return color.NRGBA{r, g, b, 0xff}
	})
}

// arange mirrors a half-open numeric range: start, start+step, ... < stop.
func arange(start, stop, step float64) []float64 {
	n := int(math.Ceil((stop - start) / step))
	return lo.Times(max(n, 0), func(i int) float64 {
		return start + float64(i)*step
	})
}

func ptr(c color.NRGBA) *color.NRGBA {
	return &c
}
