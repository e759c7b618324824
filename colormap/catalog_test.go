package colormap

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

var builtins = []string{
	"snow_nws", "frzr_nws", "precip_nws", "precip_wpc", "ptype_allmixes",
	"temperature_m60f_120f", "blue_red", "pwat_72mm_every4mm", "pwat_72mm",
	"refl_codebr", "refl_codebr_ma5", "refl_codebr_m5_85", "refl_codebr_m5_45",
	"rvel_blue_red", "zdr_mrms", "kdp_mrms", "rhohv_turbo",
}

func TestBuiltinsSatisfyInvariants(t *testing.T) {
	require.Subset(t, Names(), builtins)

	for _, name := range builtins {
		for _, opts := range []Options{{}, {KeepTrace: true}, {KeepWhite: true}} {
			p, err := Get(name, opts)
			require.NoError(t, err, name)
			require.Equal(t, name, p.Name)
			require.Len(t, p.Colors, len(p.Levels)-1, name)
			for i := 1; i < len(p.Levels); i++ {
				require.Greater(t, p.Levels[i], p.Levels[i-1], "%s level %d", name, i)
			}

			arr := p.Array()
			require.Len(t, arr, len(p.Colors))
			for _, row := range arr {
				if p.Alpha {
					require.Len(t, row, 4, name)
				} else {
					require.Len(t, row, 3, name)
				}
				for _, v := range row {
					require.GreaterOrEqual(t, v, 0.0)
					require.LessOrEqual(t, v, 1.0)
				}
			}
			if !p.Alpha {
				for _, c := range p.Colors {
					require.Equal(t, uint8(255), c.A, name)
				}
			}
		}
	}
}

func TestBuiltinsAreIdempotent(t *testing.T) {
	for _, name := range builtins {
		a, err := Get(name, Options{})
		require.NoError(t, err)
		b, err := Get(name, Options{})
		require.NoError(t, err)
		require.Equal(t, a, b, name)

		a.Colors[0].R ^= 0xff
		c, err := Get(name, Options{})
		require.NoError(t, err)
		require.Equal(t, b.Colors, c.Colors, "%s: mutating a result must not leak", name)
	}
}

func TestUnknownPalette(t *testing.T) {
	_, err := Get("no_such_palette", Options{})
	require.ErrorIs(t, err, ErrUnknownPalette)

	_, err = Array("no_such_palette", Options{})
	require.ErrorIs(t, err, ErrUnknownPalette)
}

func TestRegister(t *testing.T) {
	Register("test_register", func(opts Options) (*Palette, error) {
		return New("test_register", []color.NRGBA{{1, 2, 3, 255}}, opts.levels([]float64{0, 1}))
	})
	require.Contains(t, Names(), "test_register")

	arr, err := Array("test_register", Options{})
	require.NoError(t, err)
	require.Len(t, arr, 1)
}

func TestLevelsOverride(t *testing.T) {
	p, err := ZdrMRMS(Options{Levels: arange(0, 16, 1)})
	require.NoError(t, err)
	require.Equal(t, 0.0, p.Levels[0])
	require.Equal(t, 15.0, p.Levels[15])

	_, err = ZdrMRMS(Options{Levels: arange(0, 10, 1)})
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Temperature(Options{Levels: []float64{3, 2, 1}})
	require.Error(t, err)

	// the override also loses its leading trace level
	p, err = SnowNWS(Options{Levels: arange(0, 17, 1)})
	require.NoError(t, err)
	require.Equal(t, 1.0, p.Levels[0])
}

func TestOmitTrace(t *testing.T) {
	for _, name := range []string{"snow_nws", "frzr_nws", "precip_nws", "precip_wpc"} {
		omit, err := Get(name, Options{})
		require.NoError(t, err)
		keep, err := Get(name, Options{KeepTrace: true})
		require.NoError(t, err)

		require.Len(t, omit.Colors, len(keep.Colors)-1, name)
		require.Equal(t, keep.Colors[1:], omit.Colors, name)
		require.Equal(t, keep.Levels[1:], omit.Levels, name)
		require.Equal(t, white, keep.Colors[0], name)
		require.Equal(t, transparentWhite, *omit.Under, name)

		c, ok := omit.Lookup(0)
		require.True(t, ok)
		require.Equal(t, uint8(0), c.A, "%s: zero is below the first level once trace is dropped", name)
	}
}

func TestSnowNWS(t *testing.T) {
	p, err := SnowNWS(Options{})
	require.NoError(t, err)
	require.Len(t, p.Colors, 15)
	require.Equal(t, color.NRGBA{0xc4, 0xdd, 0xeb, 0xff}, p.Colors[0])
	require.Equal(t, color.NRGBA{0x9a, 0x62, 0xb3, 0xff}, p.Colors[14])

	c, ok := p.Lookup(12)
	require.True(t, ok)
	require.Equal(t, color.NRGBA{0xff, 0x92, 0x00, 0xff}, c)
}

func TestPrecipNWSOverColor(t *testing.T) {
	p, err := PrecipNWS(Options{})
	require.NoError(t, err)
	require.Len(t, p.Colors, 14)
	require.Len(t, p.Levels, 15)

	c, ok := p.Lookup(45)
	require.True(t, ok)
	require.Equal(t, color.NRGBA{249, 220, 253, 255}, c)

	c, ok = p.Lookup(25)
	require.True(t, ok)
	require.Equal(t, color.NRGBA{69, 8, 111, 255}, c)
}

func TestPTypeAllMixes(t *testing.T) {
	p, err := PTypeAllMixes(Options{})
	require.NoError(t, err)
	require.Len(t, p.Colors, 12)
	require.Len(t, p.Levels, 13)
	require.Len(t, p.TickLabels, 12)
	require.True(t, p.Alpha)

	require.Equal(t, transparentWhite, p.Colors[0])
	require.Equal(t, color.NRGBA{0x1f, 0x77, 0xb4, 0xff}, p.Colors[1])
	require.Equal(t, color.NRGBA{123, 104, 238, 255}, p.Colors[2])
	require.Equal(t, color.NRGBA{0, 255, 255, 255}, p.Colors[11])

	require.Equal(t, -0.5, p.Ticks[0])
	require.Equal(t, 10.5, p.Ticks[11])
	require.Equal(t, "NP", p.TickLabels[0])
	require.Equal(t, "RA/IP/SN", p.TickLabels[11])
}

func TestTemperature(t *testing.T) {
	p, err := Temperature(Options{})
	require.NoError(t, err)
	require.Len(t, p.Colors, 180)
	require.Len(t, p.Levels, 181)

	c, ok := p.Lookup(32)
	require.True(t, ok)
	require.Equal(t, color.NRGBA{0, 200, 195, 255}, c)

	c, ok = p.Lookup(-60)
	require.True(t, ok)
	require.Equal(t, white, c)

	_, ok = p.Lookup(-61)
	require.False(t, ok)
}

func TestDivergingTransparentWhite(t *testing.T) {
	for _, name := range []string{"blue_red", "rvel_blue_red"} {
		p, err := Get(name, Options{})
		require.NoError(t, err)
		require.Len(t, p.Colors, 40)
		require.True(t, p.Alpha)
		require.Equal(t, transparentWhite, p.Colors[19])
		require.Equal(t, transparentWhite, p.Colors[20])
		for i, c := range p.Colors {
			if i != 19 && i != 20 {
				require.Equal(t, uint8(255), c.A, "%s bin %d", name, i)
			}
		}

		opaqueWhite, err := Get(name, Options{KeepWhite: true})
		require.NoError(t, err)
		require.False(t, opaqueWhite.Alpha)
		require.Equal(t, white, opaqueWhite.Colors[19])
		require.Len(t, opaqueWhite.Array()[0], 3)
	}

	p, err := BlueRed(Options{})
	require.NoError(t, err)
	c, ok := p.Lookup(0)
	require.True(t, ok)
	require.Equal(t, uint8(0), c.A)

	p, err = BlueRed(Options{Levels: arange(-20, 21, 1)})
	require.NoError(t, err)
	require.Len(t, p.Levels, 41)
}

func TestReflectivityFamily(t *testing.T) {
	base, err := ReflCodeBR(Options{})
	require.NoError(t, err)
	require.Len(t, base.Colors, 100)
	require.Len(t, base.Levels, 101)

	cases := []struct {
		ctor   Constructor
		offset int
		n      int
		first  float64
	}{
		{ReflCodeBRMa5, 20, 80, 5},
		{ReflCodeBRM5To85, 10, 90, -5},
		{ReflCodeBRM5To45, 10, 50, -5},
	}
	for _, c := range cases {
		p, err := c.ctor(Options{})
		require.NoError(t, err)
		require.Len(t, p.Colors, c.n)
		require.Len(t, p.Levels, c.n+1)
		require.Equal(t, c.first, p.Levels[0])
		require.Equal(t, base.Colors[c.offset:c.offset+c.n], p.Colors)

		// the same dBZ maps to the same color as in the full table
		want, _ := base.Lookup(30)
		got, ok := p.Lookup(30)
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	c, ok := base.Lookup(-20)
	require.True(t, ok)
	require.Equal(t, transparentWhite, c)

	c, ok = base.Lookup(90)
	require.True(t, ok)
	require.Equal(t, color.NRGBA{1, 53, 53, 255}, c)

	c, ok = base.Lookup(50)
	require.True(t, ok)
	require.Equal(t, color.NRGBA{255, 0, 0, 255}, c)
}

func TestPwatComposites(t *testing.T) {
	v := viridis()
	require.Len(t, v, 256)
	require.Equal(t, color.NRGBA{0x44, 0x01, 0x54, 0xff}, v[0])
	require.Equal(t, color.NRGBA{0xfe, 0xe7, 0x24, 0xff}, v[255])

	require.Len(t, sampleReversed(v, 270, 10), 27)
	require.Len(t, sampleReversed(v, 260, 5), 52)

	p, err := PwatEvery4mm(Options{})
	require.NoError(t, err)
	require.Len(t, p.Levels, 19)
	require.Len(t, p.Colors, 18)
	require.Equal(t, color.NRGBA{60, 30, 0, 255}, p.Colors[0])
	require.Equal(t, color.NRGBA{235, 204, 173, 255}, p.Colors[4])
	require.Equal(t, v[255], p.Colors[5])
	require.Equal(t, v[0], p.Colors[17])

	p, err = Pwat72mm(Options{})
	require.NoError(t, err)
	require.Len(t, p.Levels, 37)
	require.Len(t, p.Colors, 36)
	require.Equal(t, color.NRGBA{60, 30, 0, 255}, p.Colors[0])
	require.Equal(t, color.NRGBA{245, 215, 185, 255}, p.Colors[9])
	require.Equal(t, v[255], p.Colors[10])
	require.Equal(t, v[0], p.Colors[35])
}

func TestRhohvTurbo(t *testing.T) {
	lut := turbo()
	require.Len(t, lut, 256)
	require.Equal(t, color.NRGBA{48, 18, 59, 255}, lut[0])
	require.Equal(t, color.NRGBA{122, 4, 3, 255}, lut[255])

	p, err := RhohvTurbo(Options{})
	require.NoError(t, err)
	require.Len(t, p.Colors, 19)
	require.Equal(t, color.NRGBA{48, 18, 59, 255}, p.Colors[0])
	require.Equal(t, color.NRGBA{122, 4, 3, 255}, p.Colors[18])
	require.Equal(t, lut[0], p.Colors[0])
	require.Equal(t, lut[14], p.Colors[1])
	require.Equal(t, lut[255], p.Colors[18])

	p, err = RhohvTurbo(Options{Levels: []float64{0.5, 0.8, 0.9, 0.95, 0.99, 1}})
	require.NoError(t, err)
	require.Len(t, p.Colors, 5)

	_, err = RhohvTurbo(Options{Levels: []float64{1}})
	require.ErrorIs(t, err, ErrLevelsNotIncreasing)
}

func TestKdpMRMS(t *testing.T) {
	p, err := KdpMRMS(Options{})
	require.NoError(t, err)
	require.Len(t, p.Colors, 16)

	c, ok := p.Lookup(-0.505)
	require.True(t, ok)
	require.Equal(t, color.NRGBA{50, 50, 50, 255}, c)

	c, ok = p.Lookup(-0.25)
	require.True(t, ok)
	require.Equal(t, color.NRGBA{68, 7, 4, 255}, c)
}
