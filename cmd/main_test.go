package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/car-rental/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Log:    &config.LogConfig{Level: "debug", Format: "json", Output: filepath.Join(t.TempDir(), "rental.log")},
		Rental: &config.RentalConfig{Currency: "₹"},
	}
}

func TestRun_Session(t *testing.T) {
	cfg := testConfig(t)
	input := strings.NewReader("1\nCAR001\nSedan\n1500\n4\nCAR001\n3\n6\n")
	var out bytes.Buffer

	err := run(cfg, input, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Car added successfully!")
	assert.Contains(t, out.String(), "Car rented successfully!")
	assert.Contains(t, out.String(), "No available cars at the moment.")

	logs, err := os.ReadFile(cfg.Log.Output)
	require.NoError(t, err)
	assert.Contains(t, string(logs), `"vehicle_id":"CAR001"`)
	assert.Contains(t, string(logs), `"session_id"`)
}

func TestRun_SeedFile(t *testing.T) {
	cfg := testConfig(t)
	seedFile := filepath.Join(t.TempDir(), "fleet.hcl")
	seedSrc := `
vehicle "CAR001" {
  model         = "Sedan"
  price_per_day = 1500
}
vehicle "CAR01" {
  model         = "Broken"
  price_per_day = 10
}
`
	require.NoError(t, os.WriteFile(seedFile, []byte(seedSrc), 0o600))
	cfg.Rental.SeedFile = seedFile

	var out bytes.Buffer
	err := run(cfg, strings.NewReader("2\n6\n"), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Car ID: CAR001, Model: Sedan, Price/Day: ₹1500, Available: Yes")
	assert.NotContains(t, out.String(), "Broken")
}

func TestRun_BadSeedFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Rental.SeedFile = filepath.Join(t.TempDir(), "missing.hcl")

	err := run(cfg, strings.NewReader("6\n"), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRun_BadLogOutput(t *testing.T) {
	cfg := testConfig(t)
	cfg.Log.Output = filepath.Join(t.TempDir(), "no", "such", "dir.log")

	err := run(cfg, strings.NewReader("6\n"), &bytes.Buffer{})
	assert.Error(t, err)
}
