package pressure

import (
	"errors"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// values holds one value per unit, indexed by [Unit]. The json and yaml
// marshalers have value receivers so Measurement and Difference encode the
// same whether or not they are addressed through a pointer.
type values [numUnits]float64

// In returns the value in u, or 0 if u is not valid.
func (v *values) In(u Unit) float64 {
	if !u.Valid() {
		return 0
	}
	return v[u]
}

// Value returns the value in the unit resolved from unit by [ParseUnit].
// The empty string is the SI unit.
func (v *values) Value(unit string) (float64, error) {
	u, err := parseUnitOrSI(unit)
	if err != nil {
		return 0, err
	}
	return v[u], nil
}

// StringASCII returns the value in unit followed by the ASCII symbol of the unit.
func (v *values) StringASCII(unit string) (string, error) {
	u, err := parseUnitOrSI(unit)
	if err != nil {
		return "", err
	}
	return string(v.appendUnit(nil, u, table[u].symbolASCII)), nil
}

// StringStandard returns the value in unit followed by the standard symbol of the unit.
func (v *values) StringStandard(unit string) (string, error) {
	u, err := parseUnitOrSI(unit)
	if err != nil {
		return "", err
	}
	return string(v.appendUnit(nil, u, table[u].symbolStandard)), nil
}

// String returns the value in pascals, e.g. "100000 Pa".
func (v *values) String() string {
	return string(v.appendUnit(nil, SI, table[SI].symbolASCII))
}

// AppendText implements [encoding.TextAppender] by appending the same
// text as [values.String].
func (v *values) AppendText(b []byte) ([]byte, error) {
	return v.appendUnit(b, SI, table[SI].symbolASCII), nil
}

func (v *values) appendUnit(b []byte, u Unit, symbol string) []byte {
	b = AppendValue(b, v[u])
	b = append(b, ' ')
	return append(b, symbol...)
}

// AppendValue appends the shortest decimal representation of f that
// round-trips, without an exponent.
func AppendValue(b []byte, f float64) []byte {
	return strconv.AppendFloat(b, f, 'f', -1, 64)
}

// Map returns the value in every unit keyed by the representation of the
// unit selected by k.
func (v *values) Map(k KeyType) (map[string]float64, error) {
	if !k.Valid() {
		return nil, errInvalidKeyType(k)
	}
	m := make(map[string]float64, numUnits)
	for u := range v {
		m[k.Key(Unit(u))] = v[u]
	}
	return m, nil
}

var errNotFinite = errors.New("value is not finite")

// MarshalJSON implements [encoding/json.Marshaler]. The result is an object
// keyed by the ASCII symbol of every unit, in table order.
func (v values) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 128)
	b = append(b, '{')
	for u := range v {
		if math.IsInf(v[u], 0) || math.IsNaN(v[u]) {
			return nil, errNotFinite
		}
		if u > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendQuote(b, table[u].symbolASCII)
		b = append(b, ':')
		b = appendJSONFloat(b, v[u])
	}
	return append(b, '}'), nil
}

// appendJSONFloat formats f the way encoding/json does.
func appendJSONFloat(b []byte, f float64) []byte {
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	return strconv.AppendFloat(b, f, format, -1, 64)
}

// MarshalYAML implements [yaml.Marshaler]. The result is a mapping keyed by
// the ASCII symbol of every unit, in table order.
func (v values) MarshalYAML() (any, error) {
	node := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: make([]*yaml.Node, 0, 2*numUnits),
	}
	for u := range v {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: table[u].symbolASCII},
			&yaml.Node{Kind: yaml.ScalarNode, Value: string(AppendValue(nil, v[u]))},
		)
	}
	return node, nil
}
