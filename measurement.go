package pressure

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Measurement is a single pressure quantity, expanded into every supported
// unit when it is created. A Measurement is immutable.
type Measurement struct {
	values
}

// New returns a Measurement of value in the unit resolved from unit by
// [ParseUnit]. If unit is empty, value is in pascals.
//
// New returns an error wrapping [ErrInvalidArgument] if value is NaN or
// infinite, or if value overflows when converted to pascals, and an error
// wrapping [ErrUnknownUnit] if unit cannot be resolved.
func New(value float64, unit string) (*Measurement, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, errInvalidValue(value)
	}
	u, err := parseUnitOrSI(unit)
	if err != nil {
		return nil, err
	}
	return NewIn(value, u)
}

// NewIn is like [New] but takes the Unit directly.
func NewIn(value float64, u Unit) (*Measurement, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, errInvalidValue(value)
	}
	if !u.Valid() {
		return nil, &UnitError{Unit: u.String(), Err: ErrUnknownUnit}
	}

	var (
		m    = new(Measurement)
		done [numUnits]bool
	)
	m.values[u] = value
	done[u] = true
	if !u.IsSI() {
		m.values[SI] = table[u].toSI(value)
		done[SI] = true
	}
	si := m.values[SI]
	if math.IsInf(si, 0) {
		return nil, errInvalidValue(si)
	}
	for i := range table {
		if !done[i] {
			m.values[i] = table[i].fromSI(si)
		}
	}
	return m, nil
}

// Parse parses a Measurement from s in the form "<value> [unit]", such as
// "1 bar", "101325Pa" or "14.7 psi". If the unit is omitted, the value is in
// pascals.
func Parse(s string) (*Measurement, error) {
	return ParseIn(s, SI)
}

// ParseIn is like [Parse], but if the unit is omitted the value is in u.
func ParseIn(s string, u Unit) (*Measurement, error) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) && r != 'e' && r != 'E'
	})
	num, unit := s, ""
	if i >= 0 {
		num, unit = strings.TrimSpace(s[:i]), strings.TrimSpace(s[i:])
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %q as a pressure: %w", s, ErrInvalidArgument)
	}
	if unit == "" {
		return NewIn(v, u)
	}
	return New(v, unit)
}

// Convert converts value from one unit to another. Empty units are pascals.
func Convert(value float64, from, to string) (float64, error) {
	m, err := New(value, from)
	if err != nil {
		return 0, err
	}
	return m.Value(to)
}

// Sub returns the Difference m - b. See [Diff].
func (m *Measurement) Sub(b *Measurement) (*Difference, error) {
	return Diff(m, b)
}
