package models

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var vehicleIDPattern = regexp.MustCompile(`^CAR[0-9]{3}$`)

// Vehicle represents a rentable car in the inventory.
type Vehicle struct {
	ID          string
	Model       string
	PricePerDay float64
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewVehicle creates an available vehicle. Inputs are expected to be validated already.
func NewVehicle(id, model string, pricePerDay float64) *Vehicle {
	now := time.Now()
	return &Vehicle{
		ID:          id,
		Model:       model,
		PricePerDay: pricePerDay,
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Rent marks the vehicle as rented.
func (v *Vehicle) Rent() {
	v.Available = false
	v.UpdatedAt = time.Now()
}

// Return marks the vehicle as available again.
func (v *Vehicle) Return() {
	v.Available = true
	v.UpdatedAt = time.Now()
}

// Describe renders the vehicle as a single display line using the given currency label.
func (v *Vehicle) Describe(currency string) string {
	available := "No"
	if v.Available {
		available = "Yes"
	}
	return fmt.Sprintf("Car ID: %s, Model: %s, Price/Day: %s%s, Available: %s",
		v.ID, v.Model, currency, strconv.FormatFloat(v.PricePerDay, 'f', -1, 64), available)
}

// IsValidVehicleID checks the CAR### identifier format
func IsValidVehicleID(id string) bool {
	return vehicleIDPattern.MatchString(id)
}

// IsValidModel checks that the model name is not blank
func IsValidModel(model string) bool {
	return strings.TrimSpace(model) != ""
}

// IsValidPrice checks that a daily price is positive and finite
func IsValidPrice(price float64) bool {
	return price > 0 && !math.IsInf(price, 1)
}
