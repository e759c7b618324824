package colormap

import (
	"image/color"

	"github.com/samber/lo"
	"golang.org/x/image/colornames"
)

// Accumulation tables. Index 0 of each is the white "trace" color meaning
// no precipitation.

// NWS snowfall, inches. https://www.weather.gov/aly/winter
var snowNWSColors = hexColors(
	"#ffffff", "#c4ddeb", "#77bbdd", "#4394c9", "#246aab", "#363ca6", "#faffa1", "#ffcf00",
	"#ff9200", "#f20002", "#bb0018", "#8b1221", "#5c241d", "#d6cfff", "#b296de", "#9a62b3",
)

var snowNWSLevels = []float64{0, 0.1, 1, 2, 3, 4, 6, 8, 12, 18, 24, 30, 36, 48, 60, 72, 96}

// NWS freezing rain accretion, inches. The 0.5-0.75 bin uses a darker red
// than the NWS table so it stays distinct from 0.25-0.5.
var frzrNWSColors = hexColors(
	"#ffffff", "#f0f34d", "#ffca00", "#ff0000", "#bb0018", "#b665ff", "#9a00d1", "#4f1b75",
)

var frzrNWSLevels = []float64{0, 0.01, 0.1, 0.25, 0.5, 0.75, 1, 2, 5}

// NWS web graphics rainfall, inches. The table carries one color more than
// there are bins; the last one paints totals above 30".
var precipNWSColors = [][3]uint8{
	{255, 255, 255}, {206, 232, 195}, {173, 215, 161}, {135, 194, 126},
	{85, 160, 92}, {46, 107, 52}, {254, 250, 153}, {247, 206, 102},
	{239, 147, 79}, {233, 91, 59}, {197, 50, 42}, {158, 31, 44},
	{102, 16, 39}, {53, 5, 46}, {69, 8, 111}, {249, 220, 253},
}

var precipNWSLevels = []float64{0, 0.01, 0.1, 0.25, 0.5, 1, 1.5, 2, 3, 4, 6, 8, 10, 15, 20, 30}

// WPC QPF, inches. https://www.wpc.ncep.noaa.gov/qpf/day1-7.shtml
var precipWPCColors = [][3]uint8{
	{255, 255, 255}, {159, 252, 78}, {92, 200, 59}, {61, 136, 37},
	{36, 76, 135}, {70, 140, 247}, {80, 175, 234}, {110, 235, 237},
	{135, 106, 200}, {137, 52, 230}, {128, 23, 135}, {128, 23, 14},
	{190, 39, 27}, {221, 79, 37}, {239, 132, 50}, {196, 137, 47},
	{249, 216, 73}, {255, 255, 85}, {244, 177, 182},
}

var precipWPCLevels = []float64{0, 0.01, 0.1, 0.25, 0.5, 0.75, 1, 1.25, 1.5, 1.75, 2, 2.5, 3, 4, 5, 7, 10, 15, 20, 30}

// SnowNWS is the NWS snowfall scale, 0 to 96 inches.
func SnowNWS(opts Options) (*Palette, error) {
	return accumulation("snow_nws", snowNWSColors, snowNWSLevels, opts)
}

// FrzrNWS is the NWS freezing rain scale, 0 to 5 inches.
func FrzrNWS(opts Options) (*Palette, error) {
	return accumulation("frzr_nws", frzrNWSColors, frzrNWSLevels, opts)
}

// PrecipNWS is the NWS rainfall scale, 0 to 30 inches, with a distinct
// color above 30.
func PrecipNWS(opts Options) (*Palette, error) {
	colors := opaque(precipNWSColors)
	p, err := accumulation("precip_nws", colors[:len(colors)-1], precipNWSLevels, opts)
	if err != nil {
		return nil, err
	}
	p.Over = ptr(colors[len(colors)-1])
	return p, nil
}

// PrecipWPC is the WPC rainfall scale, 0 to 30 inches.
func PrecipWPC(opts Options) (*Palette, error) {
	return accumulation("precip_wpc", opaque(precipWPCColors), precipWPCLevels, opts)
}

// accumulation drops the trace bin unless asked to keep it. Values below
// the lowest level are transparent either way.
func accumulation(name string, colors []color.NRGBA, def []float64, opts Options) (*Palette, error) {
	levels := opts.levels(def)
	if !opts.KeepTrace {
		colors = colors[1:]
		if len(levels) > 0 {
			levels = levels[1:]
		}
	}
	p, err := New(name, colors, levels)
	if err != nil {
		return nil, err
	}
	p.Under = ptr(transparentWhite)
	return p, nil
}

// HRRR precipitation type categories: bit 0 snow, bit 1 ice pellets,
// bit 2 freezing rain, bit 3 rain.
var (
	ptypeColors = []color.NRGBA{
		transparentWhite,
		hexColors("#1f77b4")[0], // tab:blue
		nrgba(colornames.Mediumslateblue),
		nrgba(colornames.Darkslateblue),
		nrgba(colornames.Mediumvioletred),
		nrgba(colornames.Mediumorchid),
		nrgba(colornames.Darkmagenta),
		nrgba(colornames.Orchid),
		hexColors("#2ca02c")[0], // tab:green
		nrgba(colornames.Darkturquoise),
		nrgba(colornames.Turquoise),
		nrgba(colornames.Cyan),
	}
	ptypeLevels = []float64{-1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	ptypeLabels = []string{"NP", "SN", "IP", "IP/SN", "ZR", "ZR/SN", "ZR/IP", "ZR/IP/SN", "RA", "RA/SN", "RA/IP", "RA/IP/SN"}
)

// PTypeAllMixes colors every precipitation type combination. Category k
// occupies the bin [k-1, k); ticks sit at bin centers.
func PTypeAllMixes(opts Options) (*Palette, error) {
	levels := opts.levels(ptypeLevels)
	p, err := New("ptype_allmixes", ptypeColors, levels)
	if err != nil {
		return nil, err
	}
	p.Ticks = lo.Times(len(p.Colors), func(i int) float64 {
		return (p.Levels[i] + p.Levels[i+1]) / 2
	})
	p.TickLabels = append([]string(nil), ptypeLabels...)
	return p, nil
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
