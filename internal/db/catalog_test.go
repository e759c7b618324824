package db

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"hstin/wxcmap/colormap"
)

func TestCatalogRoundTrip(t *testing.T) {
	database, err := InitDB(filepath.Join(t.TempDir(), "catalog.sqlite"))
	require.NoError(t, err)
	defer database.Close()

	names := []string{"ptype_allmixes", "refl_codebr", "precip_nws", "blue_red"}
	for _, name := range names {
		p, err := colormap.Get(name, colormap.Options{})
		require.NoError(t, err)
		require.NoError(t, InsertPalette(database, p, []byte("strip-"+name)))
	}
	require.NoError(t, UpdateMetadata(database, len(names)))

	stored, err := ListPalettes(database)
	require.NoError(t, err)
	require.Equal(t, []string{"blue_red", "precip_nws", "ptype_allmixes", "refl_codebr"}, stored)

	for _, name := range names {
		want, err := colormap.Get(name, colormap.Options{})
		require.NoError(t, err)
		got, err := LoadPalette(database, name)
		require.NoError(t, err)
		require.Equal(t, want, got, name)

		strip, err := Strip(database, name)
		require.NoError(t, err)
		require.Equal(t, "strip-"+name, string(strip))
	}

	meta, err := Metadata(database)
	require.NoError(t, err)
	require.Equal(t, strconv.Itoa(len(names)), meta["palettes"])
	require.Equal(t, "webp", meta["format"])
	require.NotEqual(t, "?", meta["created"])
}

func TestLoadMissingPalette(t *testing.T) {
	database, err := InitDB(filepath.Join(t.TempDir(), "catalog.sqlite"))
	require.NoError(t, err)
	defer database.Close()

	_, err = LoadPalette(database, "snow_nws")
	require.ErrorIs(t, err, colormap.ErrUnknownPalette)

	_, err = Strip(database, "snow_nws")
	require.ErrorIs(t, err, colormap.ErrUnknownPalette)
}

func TestInsertDuplicateRollsBack(t *testing.T) {
	database, err := InitDB(filepath.Join(t.TempDir(), "catalog.sqlite"))
	require.NoError(t, err)
	defer database.Close()

	p, err := colormap.Get("zdr_mrms", colormap.Options{})
	require.NoError(t, err)
	require.NoError(t, InsertPalette(database, p, nil))
	require.Error(t, InsertPalette(database, p, nil))

	got, err := LoadPalette(database, "zdr_mrms")
	require.NoError(t, err)
	require.Len(t, got.Colors, len(p.Colors))

	_, err = Strip(database, "zdr_mrms")
	require.ErrorIs(t, err, colormap.ErrUnknownPalette)
}
