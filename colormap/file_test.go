package colormap

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleFile = `# light pollution
-inf 0 0 0 0
0.5  13 26 43 255
1    40 60 90 255

bogus line
2    90 120 160 255
4    200 200 80 255
8    255 255 255 255
`

func TestRead(t *testing.T) {
	p, err := Read("sample", strings.NewReader(sampleFile))
	require.NoError(t, err)

	require.Equal(t, []float64{0.5, 1, 2, 4, 8}, p.Levels)
	require.Len(t, p.Colors, 4)
	require.Equal(t, color.NRGBA{0, 0, 0, 0}, *p.Under)
	require.Equal(t, color.NRGBA{255, 255, 255, 255}, *p.Over)
	require.False(t, p.Alpha)

	c, ok := p.Lookup(1.5)
	require.True(t, ok)
	require.Equal(t, color.NRGBA{40, 60, 90, 255}, c)

	c, ok = p.Lookup(100)
	require.True(t, ok)
	require.Equal(t, color.NRGBA{255, 255, 255, 255}, c)
}

func TestReadRejects(t *testing.T) {
	_, err := Read("empty", strings.NewReader("# nothing\n"))
	require.ErrorIs(t, err, ErrInvalidEntry)

	_, err = Read("single", strings.NewReader("1 2 3 4 255\n"))
	require.ErrorIs(t, err, ErrInvalidEntry)

	_, err = Read("descending", strings.NewReader("2 0 0 0 255\n1 0 0 0 255\n0 0 0 0 255\n"))
	require.ErrorIs(t, err, ErrLevelsNotIncreasing)

	// channel out of range is skipped, leaving too few entries
	_, err = Read("channel", strings.NewReader("0 300 0 0 255\n1 0 0 0 255\n"))
	require.ErrorIs(t, err, ErrInvalidEntry)
}

func TestWriteReadRoundTrip(t *testing.T) {
	for _, name := range []string{"refl_codebr", "blue_red", "ptype_allmixes", "kdp_mrms"} {
		p, err := Get(name, Options{})
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, Write(&buf, p))

		q, err := Read(name, &buf)
		require.NoError(t, err)
		require.Equal(t, p.Colors, q.Colors, name)
		require.Equal(t, p.Levels, q.Levels, name)
		require.Equal(t, p.Under, q.Under, name)
		require.Equal(t, p.Alpha, q.Alpha, name)
		require.Equal(t, p.Colors[len(p.Colors)-1], *q.Over, name)
	}
}
