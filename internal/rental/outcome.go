package rental

// Outcome is the non-error result of a rental operation.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeAdded
	OutcomeRented
	OutcomeAlreadyRented
	OutcomeReturned
	OutcomeAlreadyAvailable
	OutcomeListed
	OutcomeNoVehicles
	OutcomeNoAvailableVehicles
)

// String returns the message shown to the user for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "Car added successfully!"
	case OutcomeRented:
		return "Car rented successfully!"
	case OutcomeAlreadyRented:
		return "Car is already rented."
	case OutcomeReturned:
		return "Car returned successfully!"
	case OutcomeAlreadyAvailable:
		return "This car is already available."
	case OutcomeNoVehicles:
		return "No cars in the system."
	case OutcomeNoAvailableVehicles:
		return "No available cars at the moment."
	default:
		return ""
	}
}
