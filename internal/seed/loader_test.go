package seed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fleet = `
vehicle "CAR001" {
  model         = "Sedan"
  price_per_day = 1500
}

vehicle "CAR002" {
  model         = "Hatchback"
  price_per_day = 999.5
}
`

func TestParse(t *testing.T) {
	vehicles, err := Parse([]byte(fleet), "fleet.hcl")
	require.NoError(t, err)
	require.Len(t, vehicles, 2)

	assert.Equal(t, "CAR001", vehicles[0].ID)
	assert.Equal(t, "Sedan", vehicles[0].Model)
	assert.Equal(t, 1500.0, vehicles[0].PricePerDay)
	assert.Equal(t, "CAR002", vehicles[1].ID)
	assert.Equal(t, 999.5, vehicles[1].PricePerDay)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax error", `vehicle "CAR001" {`},
		{"missing attribute", `vehicle "CAR001" { model = "Sedan" }`},
		{"wrong type", `vehicle "CAR001" {
  model         = "Sedan"
  price_per_day = "cheap"
}`},
		{"missing label", `vehicle {
  model         = "Sedan"
  price_per_day = 10
}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "fleet.hcl")
			assert.Error(t, err)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	vehicles, err := Parse([]byte(""), "empty.hcl")
	require.NoError(t, err)
	assert.Empty(t, vehicles)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.hcl")
	require.NoError(t, os.WriteFile(path, []byte(fleet), 0o600))

	vehicles, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, vehicles, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	logger, hook := test.NewNullLogger()
	vehicles := []*Vehicle{
		{ID: "CAR001", Model: "Sedan", PricePerDay: 100},
		{ID: "BAD", Model: "Sedan", PricePerDay: 100},
		{ID: "CAR003", Model: "Van", PricePerDay: 250},
	}

	var added []string
	add := func(id, model string, price float64) error {
		if id == "BAD" {
			return errors.New("invalid car ID format")
		}
		added = append(added, id)
		return nil
	}

	n := Apply(vehicles, add, logger)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"CAR001", "CAR003"}, added)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, logrus.WarnLevel, entries[0].Level)
	assert.Equal(t, "BAD", entries[0].Data["vehicle_id"])
	assert.Equal(t, 2, entries[1].Data["seeded"])
	assert.Equal(t, 1, entries[1].Data["rejected"])
}
