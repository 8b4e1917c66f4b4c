package db

import (
	"iter"

	"github.com/ukydev/car-rental/internal/models"
)

// VehicleStore defines the interface for vehicle inventory operations.
type VehicleStore interface {
	InsertVehicle(vehicle *models.Vehicle) error
	FindVehicleByID(id string) (*models.Vehicle, error)
	All() iter.Seq[*models.Vehicle]
	FilterAvailable() iter.Seq[*models.Vehicle]
	Count() int
}
