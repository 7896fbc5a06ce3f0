// Package cmd implements the pressure command line interface.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lone-faerie/pressure"
	"github.com/lone-faerie/pressure/config"
	"github.com/lone-faerie/pressure/internal/build"
	"github.com/lone-faerie/pressure/internal/cleanup"
	"github.com/lone-faerie/pressure/log"
)

// Flags for every command
var (
	ConfigPath []string             // Path(s) to config file/directory (default is first of $PRESSURE_CONFIG_PATH, $XDG_CONFIG_HOME/pressure.yaml, $HOME/.config/pressure.yaml)
	LogLevel   log.LevelFlag        // Log level
	Unit       string               // Unit of values given without one
	Output     string               // Output format
	Key        pressure.KeyTypeFlag // Key of json and yaml output
	Standard   bool                 // Print standard symbols
	Precision  int                  // Digits after the decimal point
	Locale     string               // Locale used to format numbers
)

var cfg *config.Config

// commands are added to the root command by [NewRootCommand].
var commands = []func() *cobra.Command{
	NewCmdConvert,
	NewCmdDiff,
	NewCmdUnits,
}

// NewRootCommand returns the root [cobra.Command] with every subcommand added.
// Flag values are reset to their defaults.
//
// Usage:
//
//	pressure [command]
//
// Flags:
//
//	-c, --config strings   Path(s) to config file/directory
//	-l, --log level        Log level (default WARN)
//	-u, --unit string      Unit of values given without one (default "Pa")
//	-o, --output string    Output format, one of text, json or yaml (default "text")
//	-k, --key key          Key of json and yaml output (default symbolASCII)
//	    --standard         Print standard symbols
//	-p, --precision int    Digits after the decimal point, -1 for the fewest exact digits (default -1)
//	    --locale string    Locale used to format numbers, i.e. de-DE
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "pressure",
		Short:             "Convert values between units of pressure",
		Version:           build.Version(),
		PersistentPreRunE: loadConfig,
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	}

	cmd.AddGroup(
		&cobra.Group{ID: "commands", Title: "Commands:"},
	)

	addPersistentFlags(cmd.PersistentFlags())

	cmd.MarkPersistentFlagFilename("config", "yaml", "yml")
	cmd.RegisterFlagCompletionFunc("unit", completeUnits)
	cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(
		[]cobra.Completion{config.FormatText, config.FormatJSON, config.FormatYAML},
		cobra.ShellCompDirectiveNoFileComp,
	))

	for _, fn := range commands {
		cmd.AddCommand(fn())
	}

	cmd.SetHelpTemplate(cmd.HelpTemplate() + "\n" + fullDocsFooter + "\n")

	return cmd
}

func addPersistentFlags(fs *pflag.FlagSet) {
	ConfigPath = nil
	LogLevel = log.LevelFlag(log.LevelWarn)
	Key = pressure.KeyTypeFlag(pressure.KeySymbolASCII)

	fs.SortFlags = false
	fs.StringSliceVarP(&ConfigPath, "config", "c", nil, "Path(s) to config file/directory")
	fs.VarP(&LogLevel, "log", "l", "Log level")
	fs.StringVarP(&Unit, "unit", "u", pressure.SI.Symbol(), "Unit of values given without one")
	fs.StringVarP(&Output, "output", "o", config.FormatText, "Output format, one of text, json or yaml")
	fs.VarP(&Key, "key", "k", "Key of json and yaml output")
	fs.BoolVar(&Standard, "standard", false, "Print standard symbols")
	fs.IntVarP(&Precision, "precision", "p", -1, "Digits after the decimal point, -1 for the fewest exact digits")
	fs.StringVar(&Locale, "locale", "", "Locale used to format numbers, i.e. de-DE")
}

func completeUnits(_ *cobra.Command, _ []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
	units := pressure.Units()
	comps := make([]cobra.Completion, len(units))
	for i := range units {
		comps[i] = cobra.CompletionWithDesc(units[i].SymbolASCII, units[i].NameStandard)
	}
	return comps, cobra.ShellCompDirectiveNoFileComp
}

func loadConfig(cmd *cobra.Command, _ []string) (err error) {
	findConfig()

	cfg, err = config.Load(ConfigPath...)
	if err != nil {
		return &ExitError{err, ExitFailure}
	}

	if err = flagsToConfig(cfg, cmd); err != nil {
		return inputError(err)
	}

	if err = cfg.Validate(); err != nil {
		return &ExitError{err, ExitFailure}
	}

	setLogHandler(cfg)

	log.Debug("Config loaded",
		"path", ConfigPath,
		"unit", cfg.Unit,
		"format", cfg.Output.Format,
	)

	return nil
}

// Execute runs the root command with the arguments of the process. Functions
// registered for cleanup are run before returning.
func Execute() error {
	defer cleanup.Cleanup()

	return NewRootCommand().Execute()
}
