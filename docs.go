// Package pressure converts pressure values between units.
//
// The supported units are the pascal (SI), bar, pound per square inch,
// standard atmosphere, technical atmosphere and torr. A [Measurement] is
// created from a value in any one of them and holds the equivalent value in
// all of them:
//
//	m, err := pressure.New(1, "bar")
//	if err != nil {
//		// handle error
//	}
//	pa, _ := m.Value("Pa") // 100000
//
// Units may be given by name or symbol, see [ParseUnit]. The signed
// difference of two measurements in every unit is computed with [Diff].
//
// The pressure command provides the same conversions from the command line.
// Its configuration is loaded from YAML files. If no config file is specified,
// the default path(s) will be determined by the first defined value of
// $PRESSURE_CONFIG_PATH, $XDG_CONFIG_HOME/pressure.yaml, or
// $HOME/.config/pressure.yaml.
//
// Full documentation is available at:
// https://pkg.go.dev/github.com/lone-faerie/pressure
package pressure
