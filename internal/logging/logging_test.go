package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSetupLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, "debug", true)
	require.Equal(t, log.DebugLevel, log.GetLevel())

	log.WithField("palette", "snow_nws").Debug("built")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "snow_nws", entry["palette"])
	require.Equal(t, "built", entry["msg"])
}

func TestSetupUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, "loud", false)
	require.Equal(t, log.InfoLevel, log.GetLevel())
	require.Contains(t, buf.String(), "unknown log level")
}
