package rental

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukydev/car-rental/internal/db"
	"github.com/ukydev/car-rental/internal/models"
)

var (
	ErrInvalidID          = errors.New("invalid car ID format")
	ErrInvalidModel       = errors.New("invalid model name")
	ErrInvalidPrice       = errors.New("price must be greater than 0")
	ErrInvalidPriceFormat = errors.New("invalid price format")
	ErrDuplicateKey       = db.ErrDuplicateKey
	ErrNotFound           = db.ErrNotFound
)

// Service handles the rental workflow on top of a vehicle store
type Service struct {
	store  db.VehicleStore
	logger logrus.FieldLogger
}

// NewService creates a new rental service
func NewService(store db.VehicleStore, logger logrus.FieldLogger) *Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{
		store:  store,
		logger: logger,
	}
}

// CheckID validates the ID format and that no vehicle already uses it.
func (s *Service) CheckID(id string) error {
	if !models.IsValidVehicleID(id) {
		s.logger.WithField("vehicle_id", id).Warn("Invalid Car ID format.")
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	if _, err := s.store.FindVehicleByID(id); err == nil {
		s.logger.WithField("vehicle_id", id).Warn("Car ID already exists.")
		return fmt.Errorf("%w: %s", ErrDuplicateKey, id)
	} else if !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("lookup %s: %w", id, err)
	}
	return nil
}

// CheckModel validates the model name
func (s *Service) CheckModel(model string) error {
	if !models.IsValidModel(model) {
		s.logger.Warn("Invalid model name.")
		return ErrInvalidModel
	}
	return nil
}

// ParsePrice converts user input into a daily price. Malformed input yields
// ErrInvalidPriceFormat, a non-positive value yields ErrInvalidPrice.
func ParsePrice(input string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPriceFormat, input)
	}
	if !models.IsValidPrice(price) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPrice, price)
	}
	return price, nil
}

// Add registers a new vehicle. Checks run in order: ID format, uniqueness,
// model, price.
func (s *Service) Add(id, model string, price float64) (Outcome, error) {
	if err := s.CheckID(id); err != nil {
		return OutcomeNone, err
	}
	if err := s.CheckModel(model); err != nil {
		return OutcomeNone, err
	}
	if !models.IsValidPrice(price) {
		s.logger.WithField("price", price).Warn("Price must be greater than 0.")
		return OutcomeNone, fmt.Errorf("%w: %v", ErrInvalidPrice, price)
	}

	if err := s.store.InsertVehicle(models.NewVehicle(id, model, price)); err != nil {
		return OutcomeNone, fmt.Errorf("failed to add vehicle: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"vehicle_id":    id,
		"model":         model,
		"price_per_day": price,
	}).Info("Car added successfully!")
	return OutcomeAdded, nil
}

// Rent marks an available vehicle as rented.
func (s *Service) Rent(id string) (Outcome, error) {
	vehicle, err := s.find(id)
	if err != nil {
		return OutcomeNone, err
	}
	log := s.logger.WithField("vehicle_id", id)
	if !vehicle.Available {
		log.Warn("Car is already rented.")
		return OutcomeAlreadyRented, nil
	}
	vehicle.Rent()
	log.Info("Car rented successfully!")
	return OutcomeRented, nil
}

// Return makes a rented vehicle available again.
func (s *Service) Return(id string) (Outcome, error) {
	vehicle, err := s.find(id)
	if err != nil {
		return OutcomeNone, err
	}
	log := s.logger.WithField("vehicle_id", id)
	if vehicle.Available {
		log.Warn("This car is already available.")
		return OutcomeAlreadyAvailable, nil
	}
	vehicle.Return()
	log.Info("Car returned successfully!")
	return OutcomeReturned, nil
}

// List returns every vehicle in insertion order, or OutcomeNoVehicles when the
// inventory is empty.
func (s *Service) List() (iter.Seq[*models.Vehicle], Outcome) {
	if s.store.Count() == 0 {
		s.logger.Info("No cars in the system.")
		return s.store.All(), OutcomeNoVehicles
	}
	return s.store.All(), OutcomeListed
}

// ListAvailable returns the vehicles that can be rented right now.
func (s *Service) ListAvailable() (iter.Seq[*models.Vehicle], Outcome) {
	available := s.store.FilterAvailable()
	for range available {
		return available, OutcomeListed
	}
	s.logger.Info("No available cars at the moment.")
	return available, OutcomeNoAvailableVehicles
}

func (s *Service) find(id string) (*models.Vehicle, error) {
	vehicle, err := s.store.FindVehicleByID(id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.logger.WithField("vehicle_id", id).Warn("Car not found.")
		}
		return nil, err
	}
	return vehicle, nil
}
