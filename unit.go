package pressure

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Unit is a supported pressure unit. The zero value is [Pascal], the SI unit.
type Unit uint8

// Supported units, in table order.
const (
	Pascal Unit = iota
	Bar
	PoundPerSquareInch
	StandardAtmosphere
	TechnicalAtmosphere
	Torr

	numUnits
)

// Pascals per one of each unit.
const (
	pascalsPerBar  = 1e5
	pascalsPerPSI  = (0.45359237 * 9.80665) / (0.0254 * 0.0254)
	pascalsPerATM  = 101325
	pascalsPerAT   = 98066.5
	pascalsPerTorr = pascalsPerATM / 760.0
)

type descriptor struct {
	nameASCII      string
	nameStandard   string
	symbolASCII    string
	symbolStandard string
	factor         float64 // 0 for the SI unit

	nameRegexp   *regexp.Regexp
	symbolRegexp *regexp.Regexp
}

// toSI and fromSI are exact inverses for the SI unit (identity) and
// inverses up to rounding for the others.
func (d *descriptor) toSI(v float64) float64 {
	if d.factor == 0 {
		return v
	}
	return v * d.factor
}

func (d *descriptor) fromSI(v float64) float64 {
	if d.factor == 0 {
		return v
	}
	return v / d.factor
}

var table = [numUnits]descriptor{
	Pascal: {
		nameASCII:      "Pascal",
		nameStandard:   "Pascal",
		symbolASCII:    "Pa",
		symbolStandard: "Pa",
		nameRegexp:     regexp.MustCompile(`^[Pp]ascal$`),
		symbolRegexp:   regexp.MustCompile(`^Pa$`),
	},
	Bar: {
		nameASCII:      "Bar",
		nameStandard:   "Bar",
		symbolASCII:    "bar",
		symbolStandard: "bar",
		factor:         pascalsPerBar,
		nameRegexp:     regexp.MustCompile(`^[Bb]ar$`),
		symbolRegexp:   regexp.MustCompile(`^bar$`),
	},
	PoundPerSquareInch: {
		nameASCII:      "PoundPerSquareInch",
		nameStandard:   "Pound Per Square Inch",
		symbolASCII:    "psi",
		symbolStandard: "psi",
		factor:         pascalsPerPSI,
		nameRegexp:     regexp.MustCompile(`^[Pp]ound ?[Pp]er ?[Ss]quare ?[Ii]nch$`),
		symbolRegexp:   regexp.MustCompile(`^psi$`),
	},
	StandardAtmosphere: {
		nameASCII:      "StandardAtmosphere",
		nameStandard:   "Standard Atmosphere",
		symbolASCII:    "atm",
		symbolStandard: "atm",
		factor:         pascalsPerATM,
		nameRegexp:     regexp.MustCompile(`^[Ss]tandard ?[Aa]tmosphere$`),
		symbolRegexp:   regexp.MustCompile(`^atm$`),
	},
	TechnicalAtmosphere: {
		nameASCII:      "TechnicalAtmosphere",
		nameStandard:   "Technical Atmosphere",
		symbolASCII:    "at",
		symbolStandard: "at",
		factor:         pascalsPerAT,
		nameRegexp:     regexp.MustCompile(`^[Tt]echnical ?[Aa]tmosphere$`),
		symbolRegexp:   regexp.MustCompile(`^at$`),
	},
	Torr: {
		nameASCII:      "Torr",
		nameStandard:   "Torr",
		symbolASCII:    "Torr",
		symbolStandard: "Torr",
		factor:         pascalsPerTorr,
		nameRegexp:     regexp.MustCompile(`^[Tt]orr$`),
		symbolRegexp:   regexp.MustCompile(`^Torr$`),
	},
}

// SI is the reference unit every conversion goes through.
const SI = Pascal

func (d *descriptor) matches(s string) bool {
	return s == d.nameASCII ||
		s == d.nameStandard ||
		s == d.symbolASCII ||
		s == d.symbolStandard ||
		d.nameRegexp.MatchString(s) ||
		d.symbolRegexp.MatchString(s)
}

// ParseUnit resolves s to a Unit. s may be the ASCII or standard name or
// symbol of the unit. Names also match with the first letter of each word
// in either case and with or without spaces between words, i.e.
// "pound per square inch" and "PoundPerSquareInch" both resolve to
// [PoundPerSquareInch]. The first unit in table order to match is returned.
func ParseUnit(s string) (Unit, error) {
	for u := range table {
		if table[u].matches(s) {
			return Unit(u), nil
		}
	}
	return SI, &UnitError{Unit: s, Err: ErrUnknownUnit}
}

// parseUnitOrSI is [ParseUnit], but the empty string resolves to [SI].
func parseUnitOrSI(s string) (Unit, error) {
	if s == "" {
		return SI, nil
	}
	return ParseUnit(s)
}

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	return u < numUnits
}

func (u Unit) desc() *descriptor {
	if !u.Valid() {
		panic(fmt.Sprintf("pressure: invalid Unit %d", uint8(u)))
	}
	return &table[u]
}

// Name returns the ASCII name of u, e.g. "PoundPerSquareInch".
func (u Unit) Name() string { return u.desc().nameASCII }

// NameStandard returns the standard name of u, e.g. "Pound Per Square Inch".
func (u Unit) NameStandard() string { return u.desc().nameStandard }

// Symbol returns the ASCII symbol of u.
func (u Unit) Symbol() string { return u.desc().symbolASCII }

// SymbolStandard returns the standard symbol of u.
func (u Unit) SymbolStandard() string { return u.desc().symbolStandard }

// IsSI reports whether u is the SI unit.
func (u Unit) IsSI() bool { return u == SI }

// ToSI converts v in u to pascals.
func (u Unit) ToSI(v float64) float64 { return u.desc().toSI(v) }

// FromSI converts v in pascals to u.
func (u Unit) FromSI(v float64) float64 { return u.desc().fromSI(v) }

// String returns the ASCII symbol of u, or "Unknown" if u is not valid.
func (u Unit) String() string {
	if !u.Valid() {
		return "Unknown"
	}
	return table[u].symbolASCII
}

// MarshalText implements [encoding.TextMarshaler] with the ASCII symbol of u.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("unit %d: %w", uint8(u), ErrInvalidArgument)
	}
	return []byte(table[u].symbolASCII), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseUnit].
func (u *Unit) UnmarshalText(b []byte) (err error) {
	*u, err = ParseUnit(string(b))
	return
}

// UnmarshalYAML implements [yaml.Unmarshaler] using [ParseUnit].
func (u *Unit) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return u.UnmarshalText([]byte(s))
}

// UnitInfo is the metadata of a unit.
type UnitInfo struct {
	Unit           Unit   `json:"-" yaml:"-"`
	NameASCII      string `json:"nameASCII" yaml:"name_ascii"`
	NameStandard   string `json:"nameStandard" yaml:"name_standard"`
	SymbolASCII    string `json:"symbolASCII" yaml:"symbol_ascii"`
	SymbolStandard string `json:"symbolStandard" yaml:"symbol_standard"`
	IsSIUnit       bool   `json:"isSIUnit" yaml:"is_si_unit"`
}

// Info returns the metadata of u.
func (u Unit) Info() UnitInfo {
	d := u.desc()
	return UnitInfo{
		Unit:           u,
		NameASCII:      d.nameASCII,
		NameStandard:   d.nameStandard,
		SymbolASCII:    d.symbolASCII,
		SymbolStandard: d.symbolStandard,
		IsSIUnit:       u.IsSI(),
	}
}

// LookupUnit returns the metadata of the unit resolved from s by [ParseUnit].
func LookupUnit(s string) (UnitInfo, error) {
	u, err := ParseUnit(s)
	if err != nil {
		return UnitInfo{}, err
	}
	return u.Info(), nil
}

// Units returns the metadata of every supported unit, in table order.
func Units() []UnitInfo {
	info := make([]UnitInfo, numUnits)
	for u := range info {
		info[u] = Unit(u).Info()
	}
	return info
}

// SIUnit returns the metadata of the SI unit.
func SIUnit() UnitInfo {
	return SI.Info()
}
