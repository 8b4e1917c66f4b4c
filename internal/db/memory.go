package db

import (
	"errors"
	"fmt"
	"iter"

	"github.com/ukydev/car-rental/internal/models"
)

var (
	ErrDuplicateKey = errors.New("vehicle already exists")
	ErrNotFound     = errors.New("vehicle not found")
	ErrNilVehicle   = errors.New("vehicle is nil")
)

var _ VehicleStore = (*MemoryStore)(nil)

// MemoryStore keeps vehicles in memory keyed by ID, remembering insertion order.
// It is not safe for concurrent use.
type MemoryStore struct {
	vehicles map[string]*models.Vehicle
	order    []string
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		vehicles: make(map[string]*models.Vehicle),
	}
}

// InsertVehicle adds a vehicle under its ID.
func (s *MemoryStore) InsertVehicle(vehicle *models.Vehicle) error {
	if vehicle == nil {
		return ErrNilVehicle
	}
	if _, exists := s.vehicles[vehicle.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, vehicle.ID)
	}
	s.vehicles[vehicle.ID] = vehicle
	s.order = append(s.order, vehicle.ID)
	return nil
}

// FindVehicleByID finds a vehicle by its ID.
func (s *MemoryStore) FindVehicleByID(id string) (*models.Vehicle, error) {
	vehicle, ok := s.vehicles[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return vehicle, nil
}

// All yields every vehicle in insertion order. Each call starts a fresh pass.
func (s *MemoryStore) All() iter.Seq[*models.Vehicle] {
	return func(yield func(*models.Vehicle) bool) {
		for _, id := range s.order {
			if !yield(s.vehicles[id]) {
				return
			}
		}
	}
}

// FilterAvailable yields the vehicles of All that are not rented.
func (s *MemoryStore) FilterAvailable() iter.Seq[*models.Vehicle] {
	return func(yield func(*models.Vehicle) bool) {
		for vehicle := range s.All() {
			if !vehicle.Available {
				continue
			}
			if !yield(vehicle) {
				return
			}
		}
	}
}

// Count returns the number of stored vehicles.
func (s *MemoryStore) Count() int {
	return len(s.order)
}
