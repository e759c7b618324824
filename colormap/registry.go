package colormap

import (
	"fmt"
	"slices"
	"sync"

	"github.com/samber/lo"
)

// Options adjust a palette constructor. The zero value selects the curated
// defaults.
type Options struct {
	// Levels overrides the default breakpoints. The override must have one
	// more entry than the palette has colors.
	Levels []float64

	// KeepTrace keeps the white "trace" bin of the precipitation palettes
	// instead of dropping it together with the leading level.
	KeepTrace bool

	// KeepWhite leaves the white zero band of the diverging palettes opaque
	// instead of making it transparent.
	KeepWhite bool
}

func (o Options) levels(def []float64) []float64 {
	if o.Levels != nil {
		return slices.Clone(o.Levels)
	}
	return slices.Clone(def)
}

// Constructor builds a named palette.
type Constructor func(Options) (*Palette, error)

var (
	mu       sync.RWMutex
	registry = map[string]Constructor{
		"snow_nws":              SnowNWS,
		"frzr_nws":              FrzrNWS,
		"precip_nws":            PrecipNWS,
		"precip_wpc":            PrecipWPC,
		"ptype_allmixes":        PTypeAllMixes,
		"temperature_m60f_120f": Temperature,
		"blue_red":              BlueRed,
		"pwat_72mm_every4mm":    PwatEvery4mm,
		"pwat_72mm":             Pwat72mm,
		"refl_codebr":           ReflCodeBR,
		"refl_codebr_ma5":       ReflCodeBRMa5,
		"refl_codebr_m5_85":     ReflCodeBRM5To85,
		"refl_codebr_m5_45":     ReflCodeBRM5To45,
		"rvel_blue_red":         RvelBlueRed,
		"zdr_mrms":              ZdrMRMS,
		"kdp_mrms":              KdpMRMS,
		"rhohv_turbo":           RhohvTurbo,
	}
)

// Register adds or replaces a named palette constructor.
func Register(name string, ctor Constructor) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = ctor
}

// Names lists the registered palettes in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := lo.Keys(registry)
	slices.Sort(names)
	return names
}

// Get builds the palette registered under name.
func Get(name string, opts Options) (*Palette, error) {
	mu.RLock()
	ctor, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownPalette)
	}
	return ctor(opts)
}

// Array builds the named palette and returns its normalized color rows.
func Array(name string, opts Options) ([][]float64, error) {
	p, err := Get(name, opts)
	if err != nil {
		return nil, err
	}
	return p.Array(), nil
}
