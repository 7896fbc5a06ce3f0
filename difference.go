package pressure

import "math"

// Difference is the signed difference a - b of two Measurements in every
// supported unit. Unlike a Measurement, the values of a Difference are not
// conversions of each other: each one is the difference of the values of
// a and b in that unit.
type Difference struct {
	values
}

// Diff returns the Difference a - b. It returns an error wrapping
// [ErrInvalidArgument] if either a or b is nil, or if the difference
// overflows in any unit.
func Diff(a, b *Measurement) (*Difference, error) {
	if a == nil || b == nil {
		return nil, errNilMeasurement
	}
	d := new(Difference)
	for u := range table {
		d.values[u] = a.values[u] - b.values[u]
		if math.IsInf(d.values[u], 0) {
			return nil, errInvalidValue(d.values[u])
		}
	}
	return d, nil
}

// Subtract is an alias of [Diff].
func Subtract(a, b *Measurement) (*Difference, error) {
	return Diff(a, b)
}
