// Package colormap is a catalog of discrete color scales for meteorological
// fields: snowfall, freezing rain, precipitation, precipitation type,
// temperature, precipitable water and the common radar moments.
//
// Every scale is a Palette: an ordered list of colors paired with strictly
// increasing breakpoints (levels), where color i fills the half-open bin
// [Levels[i], Levels[i+1]). Palettes are built fresh by their constructors
// from package-level tables and are never mutated afterwards, so they may be
// shared between goroutines without locking.
package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/samber/lo"
)

var (
	ErrLengthMismatch      = errors.New("levels/colors length mismatch")
	ErrLevelsNotIncreasing = errors.New("levels must be strictly increasing")
	ErrUnknownPalette      = errors.New("unknown palette")
	ErrInvalidEntry        = errors.New("invalid color map entry")
)

// Palette is a piecewise-constant value to color mapping.
type Palette struct {
	Name string

	// Colors holds one color per bin, lowest bin first.
	Colors []color.NRGBA

	// Alpha reports whether the alpha channel of Colors is meaningful.
	// RGB palettes keep every alpha at 255 and export three channels.
	Alpha bool

	// Levels are the bin edges, len(Colors)+1 of them.
	Levels []float64

	// Under is used for values below Levels[0]. Nil leaves them unrendered.
	Under *color.NRGBA

	// Over is used for values at or above the last level. Nil falls back to
	// the last color.
	Over *color.NRGBA

	// Ticks and TickLabels describe categorical palettes, one per bin.
	Ticks      []float64
	TickLabels []string
}

// New builds and validates a palette from its colors and levels.
func New(name string, colors []color.NRGBA, levels []float64) (*Palette, error) {
	p := &Palette{
		Name:   name,
		Colors: slices.Clone(colors),
		Levels: slices.Clone(levels),
		Alpha: lo.SomeBy(colors, func(c color.NRGBA) bool {
			return c.A != 0xff
		}),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the structural invariants of the palette.
func (p *Palette) Validate() error {
	if len(p.Levels) < 2 {
		return fmt.Errorf("%s: need at least 2 levels, got %d: %w", p.Name, len(p.Levels), ErrLevelsNotIncreasing)
	}
	for i, l := range p.Levels {
		if math.IsNaN(l) || math.IsInf(l, 0) {
			return fmt.Errorf("%s: level %d is %v: %w", p.Name, i, l, ErrLevelsNotIncreasing)
		}
		if i > 0 && l <= p.Levels[i-1] {
			return fmt.Errorf("%s: level %d (%v) <= level %d (%v): %w", p.Name, i, l, i-1, p.Levels[i-1], ErrLevelsNotIncreasing)
		}
	}
	if len(p.Colors) != len(p.Levels)-1 {
		return fmt.Errorf("%s: %d colors for %d levels (want %d colors): %w",
			p.Name, len(p.Colors), len(p.Levels), len(p.Levels)-1, ErrLengthMismatch)
	}
	if len(p.TickLabels) > 0 && len(p.TickLabels) != len(p.Colors) {
		return fmt.Errorf("%s: %d tick labels for %d bins: %w", p.Name, len(p.TickLabels), len(p.Colors), ErrLengthMismatch)
	}
	if len(p.Ticks) > 0 && len(p.Ticks) != len(p.Colors) {
		return fmt.Errorf("%s: %d ticks for %d bins: %w", p.Name, len(p.Ticks), len(p.Colors), ErrLengthMismatch)
	}
	return nil
}

// Index returns the bin holding v: i with Levels[i] <= v < Levels[i+1].
// Values below the first level give -1 and values at or above the last give
// len(Colors). ok is false for NaN.
func (p *Palette) Index(v float64) (i int, ok bool) {
	if math.IsNaN(v) {
		return 0, false
	}
	// first level strictly greater than v
	n, found := slices.BinarySearch(p.Levels, v)
	if found {
		n++
	}
	return n - 1, true
}

// Lookup maps v to its color. ok is false when the value is left
// unrendered: NaN, below range with no Under color, or a palette without
// colors.
func (p *Palette) Lookup(v float64) (color.NRGBA, bool) {
	i, ok := p.Index(v)
	switch {
	case !ok, len(p.Colors) == 0:
		return color.NRGBA{}, false
	case i < 0:
		if p.Under == nil {
			return color.NRGBA{}, false
		}
		return *p.Under, true
	case i >= len(p.Colors):
		if p.Over == nil {
			return p.Colors[len(p.Colors)-1], true
		}
		return *p.Over, true
	}
	return p.Colors[i], true
}

// Array returns the colors normalized to [0, 1], three channels per row for
// RGB palettes and four for RGBA palettes. There is one row per bin, so
// palettes resampled from a longer reference list (pwat, rhohv) return the
// resampled colors rather than the full list.
func (p *Palette) Array() [][]float64 {
	return lo.Map(p.Colors, func(c color.NRGBA, _ int) []float64 {
		row := []float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
		if p.Alpha {
			row = append(row, float64(c.A)/255)
		}
		return row
	})
}

// WithLevels returns a copy of p using levels instead of its own.
func (p *Palette) WithLevels(levels []float64) (*Palette, error) {
	q := p.clone()
	q.Levels = slices.Clone(levels)
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

// Slice returns the colors of bins [i, j) together with the matching levels
// [i, j]. Tick metadata is carried along.
func (p *Palette) Slice(i, j int) (*Palette, error) {
	if i < 0 || j > len(p.Colors) || i >= j {
		return nil, fmt.Errorf("%s: slice [%d:%d] of %d colors: %w", p.Name, i, j, len(p.Colors), ErrLengthMismatch)
	}
	q := p.clone()
	q.Colors = q.Colors[i:j]
	q.Levels = q.Levels[i : j+1]
	if len(q.Ticks) > 0 {
		q.Ticks = q.Ticks[i:j]
	}
	if len(q.TickLabels) > 0 {
		q.TickLabels = q.TickLabels[i:j]
	}
	return q, nil
}

func (p *Palette) clone() *Palette {
	q := *p
	q.Colors = slices.Clone(p.Colors)
	q.Levels = slices.Clone(p.Levels)
	q.Ticks = slices.Clone(p.Ticks)
	q.TickLabels = slices.Clone(p.TickLabels)
	if p.Under != nil {
		u := *p.Under
		q.Under = &u
	}
	if p.Over != nil {
		o := *p.Over
		q.Over = &o
	}
	return &q
}
