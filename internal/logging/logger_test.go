package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/car-rental/internal/config"
)

func TestNew_Defaults(t *testing.T) {
	logger, closer, err := New(&config.LogConfig{Level: "bogus", Format: "text"})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.Equal(t, os.Stderr, logger.Out)
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestNew_FileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rental.log")
	logger, closer, err := New(&config.LogConfig{Level: "warn", Format: "json", Output: path})
	require.NoError(t, err)

	logger.WithField("vehicle_id", "CAR001").Info("dropped below level")
	logger.WithField("vehicle_id", "CAR002").Warn("Car not found.")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "Car not found.", entry["msg"])
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "CAR002", entry["vehicle_id"])
}

func TestNew_BadPath(t *testing.T) {
	_, _, err := New(&config.LogConfig{Output: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	assert.Error(t, err)
}
