// Package config provides the structures used for configuration of the
// pressure command.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/lone-faerie/pressure"
	"github.com/lone-faerie/pressure/config/secrets"
	"github.com/lone-faerie/pressure/log"
)

// ErrInvalid is wrapped by errors for config values that cannot be used.
var ErrInvalid = errors.New("invalid config")

// Config contains the configuration of the pressure command.
// Config should be created with a call to [Default], [Read], or [Load] as
// some options require further configuration than simply setting.
type Config struct {
	// Unit is the unit of values given without one.
	Unit   pressure.Unit `yaml:"unit"`
	Output OutputConfig  `yaml:"output,omitempty"`
	Log    LogConfig     `yaml:"log,omitempty"`
}

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// OutputConfig is the configuration for printing values.
type OutputConfig struct {
	// Format is one of "text" (default), "json" or "yaml".
	Format string `yaml:"format"`
	// Key is the representation of units used as keys by the json and yaml
	// formats. The default is the ASCII symbol.
	Key pressure.KeyType `yaml:"key"`
	// Standard indicates if the text format uses standard symbols instead
	// of ASCII symbols.
	Standard bool `yaml:"standard"`
	// Precision is the number of digits after the decimal point. The
	// default value of -1 uses the fewest digits that represent the value
	// exactly.
	Precision int `yaml:"precision"`
	// Locale is the (optional) BCP 47 language tag used to format numbers
	// in the text format, i.e. "de-DE". If blank (default) then numbers are
	// formatted without grouping and with a '.' decimal separator.
	Locale string `yaml:"locale,omitempty"`
	// Units are the units to print. If empty (default) then every unit
	// is printed.
	Units []pressure.Unit `yaml:"units,omitempty"`

	tag language.Tag
}

func defaultConfig() *Config {
	return &Config{
		Unit: pressure.SI,
		Output: OutputConfig{
			Format:    FormatText,
			Key:       pressure.KeySymbolASCII,
			Precision: -1,
		},
		Log: LogConfig{
			Level:  log.LevelWarn,
			Output: "stderr",
		},
	}
}

// Default returns the default Config when no config file is provided.
func Default() *Config {
	cfg := defaultConfig()
	cfg.load()
	return cfg
}

// Read returns the Config parsed from the yaml encoded config from r.
func Read(r io.Reader) (*Config, error) {
	cfg := defaultConfig()
	if err := cfg.decode(r); err != nil {
		return nil, err
	}
	if err := cfg.load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) decode(r io.Reader) error {
	err := yaml.NewDecoder(r).Decode(cfg)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	return err
}

// Load returns the Config parsed from the given yaml files. If the first file does
// not exist, the default config is returned. If any of the given paths are
// directories, all the yaml files in the directory are read. Later files
// override the values of earlier ones.
func Load(file ...string) (*Config, error) {
	log.Info("Loading config", "path", file)
	if len(file) == 0 {
		return Default(), nil
	}
	if _, err := os.Stat(file[0]); err != nil {
		log.Debug("Config not found, using defaults", "path", file[0])
		return Default(), nil
	}
	files, err := expandDirs(file)
	if err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	for _, name := range files {
		if err = cfg.decodeFile(name); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	if err = cfg.load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) decodeFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	log.Debug("Reading config", "path", name)
	return cfg.decode(f)
}

func expandDirs(paths []string) ([]string, error) {
	files := make([]string, 0, len(paths))
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			files = append(files, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if isYAML(e) {
				files = append(files, filepath.Join(p, e.Name()))
			}
		}
	}
	return files, nil
}

func isYAML(e fs.DirEntry) bool {
	if !e.Type().IsRegular() {
		return false
	}
	ext := filepath.Ext(e.Name())
	return ext == ".yaml" || ext == ".yml"
}

var formats = []string{FormatText, FormatJSON, FormatYAML}

func (cfg *Config) load() error {
	cfg.Expand()
	if err := cfg.Validate(); err != nil {
		return err
	}
	return cfg.Output.loadLocale()
}

// Validate returns an error wrapping [ErrInvalid] if the output format or
// precision cannot be used. An empty format is replaced by "text".
func (cfg *Config) Validate() error {
	out := &cfg.Output
	out.Format = strings.ToLower(out.Format)
	if out.Format == "" {
		out.Format = FormatText
	}
	if !slices.Contains(formats, out.Format) {
		return fmt.Errorf("output.format %q: %w", out.Format, ErrInvalid)
	}
	if out.Precision < -1 {
		return fmt.Errorf("output.precision %d: %w", out.Precision, ErrInvalid)
	}
	if !out.Key.Valid() {
		return fmt.Errorf("output.key %d: %w", uint8(out.Key), ErrInvalid)
	}
	for _, u := range out.Units {
		if !u.Valid() {
			return fmt.Errorf("output.units %d: %w", uint8(u), ErrInvalid)
		}
	}
	return nil
}

func (cfg *OutputConfig) loadLocale() error {
	cfg.tag = language.Und
	if cfg.Locale == "" {
		return nil
	}
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return fmt.Errorf("output.locale %q: %w (%w)", cfg.Locale, ErrInvalid, err)
	}
	cfg.tag = tag
	log.Debug("Locale", "tag", tag)
	return nil
}

// SetLocale sets the locale used to format numbers. See [OutputConfig.Locale].
func (cfg *OutputConfig) SetLocale(locale string) error {
	cfg.Locale = locale
	return cfg.loadLocale()
}

// Tag returns the language tag of Locale, or [language.Und] if Locale is blank.
func (cfg *OutputConfig) Tag() language.Tag {
	return cfg.tag
}

// Symbol returns the symbol of u to use in the text format.
func (cfg *OutputConfig) Symbol(u pressure.Unit) string {
	if cfg.Standard {
		return u.SymbolStandard()
	}
	return u.Symbol()
}

// SelectedUnits returns Units, or every unit if Units is empty.
func (cfg *OutputConfig) SelectedUnits() []pressure.Unit {
	if len(cfg.Units) > 0 {
		return cfg.Units
	}
	all := pressure.Units()
	units := make([]pressure.Unit, len(all))
	for i := range all {
		units[i] = all[i].Unit
	}
	return units
}

func expandValue(v reflect.Value) {
	switch v.Kind() {
	case reflect.String:
		if v.CanSet() {
			v.SetString(Expand(v.String()))
		}
	case reflect.Struct:
		n := v.NumField()
		for i := 0; i < n; i++ {
			expandValue(v.Field(i))
		}
	case reflect.Slice, reflect.Array:
		n := v.Len()
		for i := 0; i < n; i++ {
			expandValue(v.Index(i))
		}
	case reflect.Pointer:
		expandValue(v.Elem())
	}
}

// Expand replaces ${var} or $var in s according to the values of
// the current environment variables, and replaces !secret var according
// to the file at /run/secrets/<var>.
func Expand(s string) string {
	if secret, ok := secrets.CutPrefix(s); ok {
		return secrets.MustRead(secret, "")
	}
	return os.ExpandEnv(s)
}

// Expand calls [Expand] on every string field of cfg.
func (cfg *Config) Expand() {
	v := reflect.ValueOf(cfg).Elem()
	expandValue(v)
}

// Write writes the yaml encoding of cfg to w.
func (cfg *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	enc.SetIndent(2)
	return enc.Encode(cfg)
}
