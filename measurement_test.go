package pressure

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func approxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-12*math.Max(math.Abs(a), math.Abs(b))
}

var sampleValues = []float64{0, 1, -1, 0.5, 3.14159, 101325, -2.5e4, 1e-7, 6.02e23}

func TestNew(t *testing.T) {
	tests := []struct {
		value float64
		unit  string
		to    string
		want  float64
	}{
		{1, "bar", "Pa", 100000},
		{1, "Bar", "", 100000},
		{100000, "Pa", "bar", 1},
		{100000, "", "Bar", 1},
		{101325, "Pa", "atm", 1},
		{98066.5, "Pa", "at", 1},
		{1, "atm", "Pa", 101325},
		{1, "atm", "bar", 1.01325},
		{2, "at", "Pa", 196133},
	}
	for _, tt := range tests {
		m, err := New(tt.value, tt.unit)
		if err != nil {
			t.Errorf("%v %s: Error %v", tt.value, tt.unit, err)
			continue
		}
		got, err := m.Value(tt.to)
		if err != nil {
			t.Errorf("%v %s -> %s: Error %v", tt.value, tt.unit, tt.to, err)
		} else if got != tt.want {
			t.Errorf("%v %s -> %s: Wanted %v, got %v", tt.value, tt.unit, tt.to, tt.want, got)
		}
	}
}

func TestNewInvalid(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := New(v, "Pa"); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%v: Wanted ErrInvalidArgument, got %v", v, err)
		}
	}
	if _, err := New(1, "xyz"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("xyz: Wanted ErrUnknownUnit, got %v", err)
	}
	if _, err := New(math.MaxFloat64, "bar"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("overflow: Wanted ErrInvalidArgument, got %v", err)
	}
	if _, err := NewIn(1, numUnits); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("NewIn: Wanted ErrUnknownUnit, got %v", err)
	}
}

func TestMeasurementRoundTrip(t *testing.T) {
	for _, info := range Units() {
		for _, v := range sampleValues {
			m, err := New(v, info.SymbolASCII)
			if err != nil {
				t.Fatalf("%v %s: Error %v", v, info.SymbolASCII, err)
			}
			if got := m.In(info.Unit); got != v {
				t.Errorf("%v %s: Wanted %v, got %v", v, info.SymbolASCII, v, got)
			}
		}
	}
}

func TestMeasurementCrossConsistency(t *testing.T) {
	for _, from := range Units() {
		for _, to := range Units() {
			for _, v := range sampleValues {
				m, err := NewIn(v, from.Unit)
				if err != nil {
					t.Fatal(err)
				}
				got := m.In(to.Unit)
				want := v
				if from.Unit != to.Unit {
					want = to.Unit.FromSI(from.Unit.ToSI(v))
				}
				if got != want {
					t.Errorf("%v %v -> %v: Wanted %v, got %v", v, from.Unit, to.Unit, want, got)
				}
			}
		}
	}
}

func TestMeasurementSIIdentity(t *testing.T) {
	for _, v := range sampleValues {
		m, err := New(v, "Pa")
		if err != nil {
			t.Fatal(err)
		}
		if got, _ := m.Value("Pa"); got != v {
			t.Errorf("Wanted %v, got %v", v, got)
		}
	}
}

func TestMeasurementString(t *testing.T) {
	m, err := New(1, "bar")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		unit     string
		ascii    string
		standard string
	}{
		{"", "100000 Pa", "100000 Pa"},
		{"Pa", "100000 Pa", "100000 Pa"},
		{"bar", "1 bar", "1 bar"},
		{"Bar", "1 bar", "1 bar"},
	}
	for _, tt := range tests {
		if s, err := m.StringASCII(tt.unit); err != nil || s != tt.ascii {
			t.Errorf("StringASCII(%q): Wanted %q, got %q (%v)", tt.unit, tt.ascii, s, err)
		}
		if s, err := m.StringStandard(tt.unit); err != nil || s != tt.standard {
			t.Errorf("StringStandard(%q): Wanted %q, got %q (%v)", tt.unit, tt.standard, s, err)
		}
	}
	if s := m.String(); s != "100000 Pa" {
		t.Errorf("String: Wanted %q, got %q", "100000 Pa", s)
	}
	if _, err := m.StringASCII("xyz"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("xyz: Wanted ErrUnknownUnit, got %v", err)
	}
	if _, err := m.Value("xyz"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("xyz: Wanted ErrUnknownUnit, got %v", err)
	}
	b, _ := m.AppendText([]byte("p="))
	if s := string(b); s != "p=100000 Pa" {
		t.Errorf("AppendText: Wanted %q, got %q", "p=100000 Pa", s)
	}
}

func TestMeasurementMap(t *testing.T) {
	m, err := New(1, "atm")
	if err != nil {
		t.Fatal(err)
	}
	got, err := m.Map(KeySymbolASCII)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{
		"Pa":   101325,
		"bar":  1.01325,
		"psi":  14.69594877551345,
		"atm":  1,
		"at":   1.0332274527998857,
		"Torr": 760,
	}
	if len(got) != len(want) {
		t.Fatalf("Wanted %d keys, got %d", len(want), len(got))
	}
	for k, v := range want {
		if !approxEqual(got[k], v) {
			t.Errorf("%s: Wanted %v, got %v", k, v, got[k])
		}
	}
	if got["Pa"] != 101325 || got["bar"] != 1.01325 || got["atm"] != 1 {
		t.Errorf("Wanted exact Pa, bar and atm, got %v", got)
	}

	t.Run("KeyTypes", func(t *testing.T) {
		tests := []struct {
			k   KeyType
			key string
		}{
			{KeySymbolASCII, "psi"},
			{KeySymbolStandard, "psi"},
			{KeyNameASCII, "PoundPerSquareInch"},
			{KeyNameStandard, "Pound Per Square Inch"},
		}
		for _, tt := range tests {
			mm, err := m.Map(tt.k)
			if err != nil {
				t.Fatalf("%v: Error %v", tt.k, err)
			}
			if _, ok := mm[tt.key]; !ok || len(mm) != int(numUnits) {
				t.Errorf("%v: Wanted key %q in %v", tt.k, tt.key, mm)
			}
		}
	})
	t.Run("Invalid", func(t *testing.T) {
		if _, err := m.Map(KeyType(9)); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Wanted ErrInvalidArgument, got %v", err)
		}
	})
}

func TestMeasurementMarshal(t *testing.T) {
	m, err := New(1, "atm")
	if err != nil {
		t.Fatal(err)
	}
	t.Run("JSON", func(t *testing.T) {
		b, err := json.Marshal(m)
		if err != nil {
			t.Fatal(err)
		}
		const prefix = `{"Pa":101325,"bar":1.01325,"psi":`
		if !strings.HasPrefix(string(b), prefix) {
			t.Errorf("Wanted prefix %s, got %s", prefix, b)
		}
		var got map[string]float64
		if err = json.Unmarshal(b, &got); err != nil {
			t.Fatal(err)
		}
		want, _ := m.Map(KeySymbolASCII)
		for k, v := range want {
			if got[k] != v {
				t.Errorf("%s: Wanted %v, got %v", k, v, got[k])
			}
		}
	})
	t.Run("YAML", func(t *testing.T) {
		b, err := yaml.Marshal(m)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(b), "Pa: 101325\nbar: 1.01325\npsi: ") {
			t.Errorf("Unexpected YAML:\n%s", b)
		}
		var got map[string]float64
		if err = yaml.Unmarshal(b, &got); err != nil {
			t.Fatal(err)
		}
		if got["atm"] != 1 || got["Torr"] == 0 {
			t.Errorf("Unexpected values %v", got)
		}
	})
}

func TestMeasurementMarshalValue(t *testing.T) {
	m, err := New(2, "bar")
	if err != nil {
		t.Fatal(err)
	}
	byPtr, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	byVal, err := json.Marshal(*m)
	if err != nil {
		t.Fatal(err)
	}
	if string(byVal) != string(byPtr) {
		t.Errorf("JSON: Wanted %s, got %s", byPtr, byVal)
	}

	yPtr, err := yaml.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	yVal, err := yaml.Marshal(*m)
	if err != nil {
		t.Fatal(err)
	}
	if string(yVal) != string(yPtr) {
		t.Errorf("YAML: Wanted %s, got %s", yPtr, yVal)
	}

	// a field of struct type is encoded by value
	b, err := json.Marshal(struct{ P Measurement }{*m})
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"P":` + string(byPtr) + `}`; string(b) != want {
		t.Errorf("Field: Wanted %s, got %s", want, b)
	}
}

func TestInInvalidUnit(t *testing.T) {
	m, err := New(1, "bar")
	if err != nil {
		t.Fatal(err)
	}
	for _, u := range []Unit{numUnits, 9, 255} {
		if got := m.In(u); got != 0 {
			t.Errorf("%d: Wanted 0, got %v", uint8(u), got)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		unit  Unit
		value float64
	}{
		{"1 bar", Bar, 1},
		{"101325Pa", Pascal, 101325},
		{"  14.7 psi ", PoundPerSquareInch, 14.7},
		{"5", Pascal, 5},
		{"-2.5e3 Torr", Torr, -2500},
		{"1E2 standard atmosphere", StandardAtmosphere, 100},
	}
	for _, tt := range tests {
		m, err := Parse(tt.input)
		if err != nil {
			t.Errorf("%q: Error %v", tt.input, err)
			continue
		}
		if got := m.In(tt.unit); got != tt.value {
			t.Errorf("%q: Wanted %v, got %v", tt.input, tt.value, got)
		}
	}
	for _, s := range []string{"", "bar", "one bar", "NaN", "1.2.3 Pa"} {
		if _, err := Parse(s); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%q: Wanted ErrInvalidArgument, got %v", s, err)
		}
	}
	if _, err := Parse("1 xyz"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("1 xyz: Wanted ErrUnknownUnit, got %v", err)
	}
}

func TestParseIn(t *testing.T) {
	m, err := ParseIn("2", Bar)
	if err != nil {
		t.Fatal(err)
	}
	if got := m.In(Pascal); got != 200000 {
		t.Errorf("Wanted 200000, got %v", got)
	}
	m, err = ParseIn("2 atm", Bar)
	if err != nil {
		t.Fatal(err)
	}
	if got := m.In(Pascal); got != 202650 {
		t.Errorf("Wanted 202650, got %v", got)
	}
}

func TestConvert(t *testing.T) {
	got, err := Convert(1, "bar", "Pa")
	if err != nil || got != 100000 {
		t.Errorf("Wanted 100000, got %v (%v)", got, err)
	}
	if _, err = Convert(1, "bar", "xyz"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("Wanted ErrUnknownUnit, got %v", err)
	}
}
