// Package seed loads an initial fleet from an HCL file and feeds it through
// the rental service, so seeded vehicles obey the same validation as ones
// added at the console.
package seed

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/sirupsen/logrus"
)

// Vehicle is one `vehicle "CAR001" { ... }` block.
type Vehicle struct {
	ID          string  `hcl:"id,label"`
	Model       string  `hcl:"model"`
	PricePerDay float64 `hcl:"price_per_day"`
}

type fileRoot struct {
	Vehicles []*Vehicle `hcl:"vehicle,block"`
	Remain   hcl.Body   `hcl:",remain"`
}

// Load parses the seed file at path.
func Load(path string) ([]*Vehicle, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, diags)
	}
	return decode(file, path)
}

// Parse parses seed content held in memory; filename is used in diagnostics.
func Parse(src []byte, filename string) ([]*Vehicle, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", filename, diags)
	}
	return decode(file, filename)
}

func decode(file *hcl.File, filename string) ([]*Vehicle, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode seed file %s: %w", filename, diags)
	}
	return root.Vehicles, nil
}

// Apply adds every seeded vehicle through add. Rejected entries are logged
// and skipped; the number of vehicles added is returned.
func Apply(vehicles []*Vehicle, add func(id, model string, price float64) error, logger logrus.FieldLogger) int {
	added := 0
	for _, v := range vehicles {
		if err := add(v.ID, v.Model, v.PricePerDay); err != nil {
			logger.WithError(err).WithField("vehicle_id", v.ID).Warn("Skipping seed vehicle")
			continue
		}
		added++
	}
	logger.WithFields(logrus.Fields{
		"seeded":   added,
		"rejected": len(vehicles) - added,
	}).Info("Seed fleet applied")
	return added
}
