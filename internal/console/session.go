package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/ukydev/car-rental/internal/rental"
)

var menu = []string{
	"",
	"--- Car Rental System ---",
	"1. Add Car",
	"2. View All Cars",
	"3. View Available Cars",
	"4. Rent a Car",
	"5. Return a Car",
	"6. Exit",
}

const (
	invalidChoiceMessage = "Invalid choice. Please try again."
	goodbyeMessage       = "Thank you for using Car Rental System!"
)

type command struct {
	name   string
	action string // used in "An error occurred while <action>."
	run    func() error
}

// Session is one interactive run of the menu loop against a rental service.
type Session struct {
	ID       string
	service  *rental.Service
	io       IO
	currency string
	logger   logrus.FieldLogger
	commands map[string]*command
}

// NewSession wires a menu loop to the given service and terminal.
func NewSession(service *rental.Service, terminal IO, currency string, logger logrus.FieldLogger) *Session {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	id := uuid.NewString()
	s := &Session{
		ID:       id,
		service:  service,
		io:       terminal,
		currency: currency,
		logger:   logger.WithField("session_id", id),
	}

	add := &command{name: "add", action: "adding a car", run: s.addCar}
	viewAll := &command{name: "view-all", action: "viewing cars", run: s.viewCars}
	viewAvailable := &command{name: "view-available", action: "viewing available cars", run: s.viewAvailableCars}
	rent := &command{name: "rent", action: "renting a car", run: s.rentCar}
	ret := &command{name: "return", action: "returning a car", run: s.returnCar}

	s.commands = map[string]*command{
		"1": add, add.name: add,
		"2": viewAll, viewAll.name: viewAll,
		"3": viewAvailable, viewAvailable.name: viewAvailable,
		"4": rent, rent.name: rent,
		"5": ret, ret.name: ret,
	}
	return s
}

// Run shows the menu and dispatches selections until the user exits or the
// input ends. Only terminal read failures are returned.
func (s *Session) Run() error {
	s.logger.Info("Session started")
	defer s.logger.Info("Session ended")

	for {
		for _, line := range menu {
			s.io.WriteLine(line)
		}
		choice, err := s.io.ReadLine("Choose an option: ")
		if err != nil {
			return s.finish(err)
		}

		choice = strings.ToLower(strings.TrimSpace(choice))
		if choice == "6" || choice == "exit" {
			s.io.WriteLine(goodbyeMessage)
			return nil
		}

		cmd, ok := s.commands[choice]
		if !ok {
			s.io.WriteLine(invalidChoiceMessage)
			continue
		}
		if err := s.dispatch(cmd); err != nil {
			return s.finish(err)
		}
	}
}

func (s *Session) finish(err error) error {
	if errors.Is(err, io.EOF) {
		s.io.WriteLine("")
		s.io.WriteLine(goodbyeMessage)
		return nil
	}
	return err
}

// dispatch runs a command, turning a panic into a logged generic failure.
func (s *Session) dispatch(cmd *command) (err error) {
	log := s.logger.WithField("command", cmd.name)
	log.Debug("Dispatching command")

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Errorf("An error occurred while %s", cmd.action)
			s.io.WriteLine(fmt.Sprintf("An error occurred while %s.", cmd.action))
			err = nil
		}
	}()
	return cmd.run()
}

func (s *Session) addCar() error {
	id, err := s.io.ReadLine("Enter Car ID (e.g., CAR001): ")
	if err != nil {
		return err
	}
	if err := s.service.CheckID(id); err != nil {
		s.report(err, "adding a car")
		return nil
	}

	model, err := s.io.ReadLine("Enter Model Name: ")
	if err != nil {
		return err
	}
	if err := s.service.CheckModel(model); err != nil {
		s.report(err, "adding a car")
		return nil
	}

	price, err := s.readPrice("Enter Price per Day: ")
	if err != nil {
		return err
	}

	outcome, err := s.service.Add(id, model, price)
	if err != nil {
		s.report(err, "adding a car")
		return nil
	}
	s.io.WriteLine(outcome.String())
	return nil
}

// readPrice prompts until a positive number is entered.
func (s *Session) readPrice(prompt string) (float64, error) {
	for {
		input, err := s.io.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		price, err := rental.ParsePrice(input)
		if err == nil {
			return price, nil
		}
		s.io.WriteLine(errorMessage(err))
	}
}

func (s *Session) viewCars() error {
	vehicles, outcome := s.service.List()
	if outcome != rental.OutcomeListed {
		s.io.WriteLine(outcome.String())
		return nil
	}
	for v := range vehicles {
		s.io.WriteLine(v.Describe(s.currency))
	}
	return nil
}

func (s *Session) viewAvailableCars() error {
	vehicles, outcome := s.service.ListAvailable()
	if outcome != rental.OutcomeListed {
		s.io.WriteLine(outcome.String())
		return nil
	}
	for v := range vehicles {
		s.io.WriteLine(v.Describe(s.currency))
	}
	return nil
}

func (s *Session) rentCar() error {
	id, err := s.io.ReadLine("Enter Car ID to rent: ")
	if err != nil {
		return err
	}
	outcome, err := s.service.Rent(id)
	if err != nil {
		s.report(err, "renting a car")
		return nil
	}
	s.io.WriteLine(outcome.String())
	return nil
}

func (s *Session) returnCar() error {
	id, err := s.io.ReadLine("Enter Car ID to return: ")
	if err != nil {
		return err
	}
	outcome, err := s.service.Return(id)
	if err != nil {
		s.report(err, "returning a car")
		return nil
	}
	s.io.WriteLine(outcome.String())
	return nil
}

// report shows the user-facing message for a failed operation.
func (s *Session) report(err error, action string) {
	msg := errorMessage(err)
	if msg == "" {
		s.logger.WithError(err).Errorf("An error occurred while %s", action)
		msg = fmt.Sprintf("An error occurred while %s.", action)
	}
	s.io.WriteLine(msg)
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, rental.ErrInvalidID):
		return "Invalid Car ID format. Use CARXXX where XXX are digits."
	case errors.Is(err, rental.ErrDuplicateKey):
		return "Car ID already exists."
	case errors.Is(err, rental.ErrInvalidModel):
		return "Invalid model name."
	case errors.Is(err, rental.ErrInvalidPriceFormat):
		return "Invalid price format. Please enter a valid number."
	case errors.Is(err, rental.ErrInvalidPrice):
		return "Price must be greater than 0."
	case errors.Is(err, rental.ErrNotFound):
		return "Car not found."
	default:
		return ""
	}
}
