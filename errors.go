package pressure

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for values that are not finite numbers,
	// nil measurements and unknown key types.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownUnit is returned when a unit cannot be resolved.
	ErrUnknownUnit = errors.New("not a known pressure unit")
)

// UnitError records a unit that could not be resolved.
type UnitError struct {
	Unit string
	Err  error
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("%q is %v", e.Unit, e.Err)
}

func (e *UnitError) Unwrap() error {
	return e.Err
}

func errInvalidValue(v float64) error {
	return fmt.Errorf("value %v must be a finite number: %w", v, ErrInvalidArgument)
}

var errNilMeasurement = fmt.Errorf("arguments must be Measurement instances: %w", ErrInvalidArgument)

func errInvalidKeyType(k KeyType) error {
	return fmt.Errorf("key type %d is not valid: %w", uint8(k), ErrInvalidArgument)
}
