package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_JSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("warn", &buf)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.WithField("trackingId", "SOS-2025-0001").Warn("lookup miss")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "lookup miss", entry["message"])
	assert.Equal(t, "SOS-2025-0001", entry["trackingId"])
}

func TestNewWithOutput_UnknownLevelFallsBackToInfo(t *testing.T) {
	log := NewWithOutput("loud", &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
