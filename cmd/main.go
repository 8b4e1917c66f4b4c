package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/car-rental/internal/config"
	"github.com/ukydev/car-rental/internal/console"
	"github.com/ukydev/car-rental/internal/db"
	"github.com/ukydev/car-rental/internal/logging"
	"github.com/ukydev/car-rental/internal/rental"
	"github.com/ukydev/car-rental/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}
	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		log.WithError(err).Fatal("Car rental console stopped")
	}
}

func run(cfg *config.Config, in io.Reader, out io.Writer) error {
	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	service := rental.NewService(db.NewMemoryStore(), logger)

	if cfg.Rental.SeedFile != "" {
		vehicles, err := seed.Load(cfg.Rental.SeedFile)
		if err != nil {
			return fmt.Errorf("seed fleet: %w", err)
		}
		seed.Apply(vehicles, func(id, model string, price float64) error {
			_, err := service.Add(id, model, price)
			return err
		}, logger.WithField("seed_file", cfg.Rental.SeedFile))
	}

	session := console.NewSession(service, console.NewTerminal(in, out), cfg.Rental.Currency, logger)
	return session.Run()
}
