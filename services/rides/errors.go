package rides

import "errors"

var (
	// ErrUnknownRideType is returned when no tariff exists for a ride type
	ErrUnknownRideType = errors.New("unknown ride type")
	// ErrNegativeDistance is returned when a ride request has a distance below zero
	ErrNegativeDistance = errors.New("distance must not be negative")
	// ErrInvalidTariff is returned when a tariff has no type or a negative rate
	ErrInvalidTariff = errors.New("invalid tariff")
	// ErrDuplicateTariff is returned when a ride type is declared twice
	ErrDuplicateTariff = errors.New("duplicate tariff")
)
