package pressure

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// KeyType selects which representation of a unit is used as the key when
// exporting values with [Measurement.Map] or [Difference.Map].
type KeyType uint8

const (
	KeySymbolASCII KeyType = iota
	KeySymbolStandard
	KeyNameASCII
	KeyNameStandard

	numKeyTypes
)

var keyTypeNames = [numKeyTypes]string{
	KeySymbolASCII:    "symbolASCII",
	KeySymbolStandard: "symbolStandard",
	KeyNameASCII:      "nameASCII",
	KeyNameStandard:   "nameStandard",
}

// ParseKeyType returns the KeyType named by s. The camel case names
// ("symbolASCII") and snake case names ("symbol_ascii") are both accepted,
// ignoring case.
func ParseKeyType(s string) (KeyType, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "_", "")) {
	case "symbolascii", "symbol", "":
		return KeySymbolASCII, nil
	case "symbolstandard":
		return KeySymbolStandard, nil
	case "nameascii", "name":
		return KeyNameASCII, nil
	case "namestandard":
		return KeyNameStandard, nil
	}
	return 0, fmt.Errorf("%q is not a valid key type: %w", s, ErrInvalidArgument)
}

// Valid reports whether k is one of the recognized key types.
func (k KeyType) Valid() bool {
	return k < numKeyTypes
}

func (k KeyType) String() string {
	if !k.Valid() {
		return "Unknown"
	}
	return keyTypeNames[k]
}

// Key returns the representation of u selected by k. Key types that are not
// valid select the ASCII symbol.
func (k KeyType) Key(u Unit) string {
	d := &table[u]
	switch k {
	case KeySymbolStandard:
		return d.symbolStandard
	case KeyNameASCII:
		return d.nameASCII
	case KeyNameStandard:
		return d.nameStandard
	}
	return d.symbolASCII
}

// MarshalText implements [encoding.TextMarshaler].
func (k KeyType) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("key type %d: %w", uint8(k), ErrInvalidArgument)
	}
	return []byte(keyTypeNames[k]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseKeyType].
func (k *KeyType) UnmarshalText(b []byte) (err error) {
	*k, err = ParseKeyType(string(b))
	return
}

// UnmarshalYAML implements [yaml.Unmarshaler] using [ParseKeyType].
func (k *KeyType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return k.UnmarshalText([]byte(s))
}

// KeyTypeFlag implements the interfaces needed to be used as a command-line flag.
type KeyTypeFlag KeyType

func (kf *KeyTypeFlag) String() string {
	return (KeyType)(*kf).String()
}

func (kf *KeyTypeFlag) Set(s string) error {
	return (*KeyType)(kf).UnmarshalText([]byte(s))
}

func (kf *KeyTypeFlag) Get() any {
	return (KeyType)(*kf)
}

func (kf *KeyTypeFlag) Type() string {
	return "key"
}
