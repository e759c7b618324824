package filesystem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBackendSwitch(t *testing.T) {
	SetMemMapFs()
	defer SetOsFs()

	require.Equal(t, "MemMapFS", API().Name())
	require.NoError(t, API().WriteFile("/a.txt", []byte("x"), 0o644))

	ok, err := API().Exists("/a.txt")
	require.NoError(t, err)
	require.True(t, ok)

	SetMemMapFs()
	ok, err = API().Exists("/a.txt")
	require.NoError(t, err)
	require.False(t, ok, "a new in-memory backend starts empty")

	SetOsFs()
	require.Equal(t, "OsFs", API().Name())
}
