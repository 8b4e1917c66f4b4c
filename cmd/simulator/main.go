package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/car-rental/internal/config"
	"github.com/ukydev/car-rental/internal/db"
	"github.com/ukydev/car-rental/internal/logging"
	"github.com/ukydev/car-rental/internal/rental"
)

// maxFleetSize is the number of distinct CAR### identifiers.
const maxFleetSize = 999

var fleetModels = []string{
	"F-150", "Silverado", "Camry", "Civic", "X5",
	"Model 3", "Leaf", "Bolt", "Mach-E", "e-tron",
}

// Summary is the state of the fleet after a simulation run.
type Summary struct {
	Fleet     int
	Available int
	Rented    int
	Rentals   int
	Returns   int
}

func vehicleID(n int) string {
	return fmt.Sprintf("CAR%03d", n)
}

func createVehicle(service *rental.Service, rng *rand.Rand, n int) (string, error) {
	id := vehicleID(n)
	model := fleetModels[rng.Intn(len(fleetModels))]
	price := float64(800 + rng.Intn(2200)) // 800-2999 per day

	if _, err := service.Add(id, model, price); err != nil {
		return "", fmt.Errorf("failed to create vehicle %s: %w", id, err)
	}
	return id, nil
}

// simulateStep picks a random vehicle and rents it when available, returns it otherwise.
func simulateStep(service *rental.Service, rng *rand.Rand, ids []string) (rental.Outcome, error) {
	id := ids[rng.Intn(len(ids))]
	outcome, err := service.Rent(id)
	if err != nil {
		return rental.OutcomeNone, err
	}
	if outcome == rental.OutcomeAlreadyRented {
		return service.Return(id)
	}
	return outcome, nil
}

func simulate(service *rental.Service, rng *rand.Rand, cfg *config.SimulatorConfig) (Summary, error) {
	fleetSize := cfg.FleetSize
	if fleetSize > maxFleetSize {
		log.WithField("fleet_size", fleetSize).Warn("Fleet size capped")
		fleetSize = maxFleetSize
	}

	ids := make([]string, 0, fleetSize)
	for i := 1; i <= fleetSize; i++ {
		id, err := createVehicle(service, rng, i)
		if err != nil {
			log.WithError(err).Error("Failed to create vehicle")
			continue
		}
		ids = append(ids, id)
	}

	summary := Summary{Fleet: len(ids)}
	if len(ids) == 0 {
		return summary, errors.New("no vehicles created")
	}

	for step := 0; step < cfg.Steps; step++ {
		outcome, err := simulateStep(service, rng, ids)
		if err != nil {
			return summary, err
		}
		switch outcome {
		case rental.OutcomeRented:
			summary.Rentals++
		case rental.OutcomeReturned:
			summary.Returns++
		}
		if cfg.Tick > 0 {
			time.Sleep(cfg.Tick)
		}
	}

	available, _ := service.ListAvailable()
	for range available {
		summary.Available++
	}
	summary.Rented = summary.Fleet - summary.Available
	return summary, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}
	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		log.WithError(err).Fatal("Failed to configure logging")
	}
	defer closer.Close()
	log.SetOutput(logger.Out)
	log.SetFormatter(logger.Formatter)
	log.SetLevel(logger.GetLevel())

	log.WithFields(log.Fields{
		"fleet_size": cfg.Simulator.FleetSize,
		"steps":      cfg.Simulator.Steps,
		"interval":   cfg.Simulator.Tick,
	}).Info("Starting rental simulation")

	service := rental.NewService(db.NewMemoryStore(), logger)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	summary, err := simulate(service, rng, cfg.Simulator)
	if err != nil {
		log.WithError(err).Error("Simulation aborted")
		return
	}

	log.WithFields(log.Fields{
		"fleet":     summary.Fleet,
		"available": summary.Available,
		"rented":    summary.Rented,
		"rentals":   summary.Rentals,
		"returns":   summary.Returns,
	}).Info("Rental simulation completed")
}
