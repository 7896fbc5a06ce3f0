package cmd

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lone-faerie/pressure"
	"github.com/lone-faerie/pressure/config"
	"github.com/lone-faerie/pressure/internal/cleanup"
	"github.com/lone-faerie/pressure/log"
)

func findConfig() {
	const defaultConfigFile = "pressure.yaml"

	if len(ConfigPath) > 0 {
		return
	}

	if env, ok := os.LookupEnv("PRESSURE_CONFIG_PATH"); ok && env != "" {
		ConfigPath = strings.Split(env, ",")
		return
	}

	if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && xdg != "" {
		ConfigPath = []string{filepath.Join(xdg, defaultConfigFile)}
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn("Unable to find home directory, using default config", "cause", err)
		return
	}

	ConfigPath = []string{filepath.Join(home, ".config", defaultConfigFile)}
}

const fullDocsFooter = `Full documentation is available at:
https://pkg.go.dev/github.com/lone-faerie/pressure`

// ExitError is an error that should cause the program to exit with the given code.
type ExitError struct {
	Err  error
	Code int
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Exit codes.
const (
	ExitFailure = 1 // Config or output errors
	ExitInput   = 2 // Values or units that cannot be converted
)

// inputError wraps errors caused by the arguments given by the user. Values
// and units that cannot be converted exit with [ExitInput], anything else
// with [ExitFailure].
func inputError(err error) error {
	if errors.Is(err, pressure.ErrInvalidArgument) || errors.Is(err, pressure.ErrUnknownUnit) {
		return &ExitError{err, ExitInput}
	}
	return &ExitError{err, ExitFailure}
}

func flagsToConfig(cfg *config.Config, cmd *cobra.Command) error {
	flags := cmd.Flags()

	if flags.Changed("log") {
		cfg.Log.Level = log.Level(LogLevel)
	}

	if flags.Changed("unit") {
		u, err := pressure.ParseUnit(Unit)
		if err != nil {
			return err
		}
		cfg.Unit = u
	}

	if flags.Changed("output") {
		cfg.Output.Format = strings.ToLower(Output)
	}

	if flags.Changed("key") {
		cfg.Output.Key = pressure.KeyType(Key)
	}

	if flags.Changed("standard") {
		cfg.Output.Standard = Standard
	}

	if flags.Changed("precision") {
		cfg.Output.Precision = Precision
	}

	if flags.Changed("locale") {
		if err := cfg.Output.SetLocale(Locale); err != nil {
			return err
		}
	}

	if flags.Changed("to") {
		units := make([]pressure.Unit, 0, len(To))
		for _, s := range To {
			u, err := pressure.ParseUnit(strings.TrimSpace(s))
			if err != nil {
				return err
			}
			units = append(units, u)
		}
		cfg.Output.Units = units
	}

	return nil
}

func setLogHandler(cfg *config.Config) {
	var w io.Writer

	log.SetLogLevel(cfg.Log.Level)

	switch strings.ToLower(cfg.Log.Output) {
	case "", "stderr":
	case "stdout":
		w = os.Stdout
	case "discard":
		log.SetHandler(log.DiscardHandler)
		return
	default:
		f, err := os.OpenFile(cfg.Log.Output, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
		if err != nil {
			log.Error(
				"Unable to open log file, deferring to stderr",
				err,
			)

			return
		}

		w = f

		cleanup.Register(func() { f.Close() })
	}

	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		if w == nil {
			w = os.Stderr
		}

		log.SetJSONHandler(w)
	case "text":
		if w == nil {
			w = os.Stderr
		}

		log.SetTextHandler(w)
	default:
		if w != nil {
			log.SetOutput(w)
		}
	}
}
