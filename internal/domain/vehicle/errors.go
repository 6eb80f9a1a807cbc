package vehicle

import "errors"

var (
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrFuelRecordNotFound = errors.New("fuel record not found")
)
