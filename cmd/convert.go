package cmd

import (
	_ "embed"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lone-faerie/pressure"
)

// Flags for pressure convert and pressure diff
var (
	To []string // Units to print
)

//go:embed help/convert.md
var convertHelp string

// NewCmdConvert returns the [cobra.Command] used for converting a value to
// other units.
//
// Usage:
//
//	pressure convert <value> [unit]... [flags]
//
// Aliases:
//
//	convert, c
//
// Flags:
//
//	-t, --to strings   Units to print (default every unit)
//	-h, --help         help for convert
func NewCmdConvert() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert <value> [unit]...",
		Aliases: []string{"c"},
		Short:   "Convert a pressure to other units",
		Long:    convertHelp,
		Example: `  pressure convert 1 atm
  pressure convert 14.7psi --to bar,Pa
  pressure convert --unit bar 2.5 -o json
  pressure convert --to Pa -- -1 bar`,
		GroupID: "commands",
		Args:    cobra.MinimumNArgs(1),
		RunE:    convert,
	}

	addToFlag(cmd.Flags())

	cmd.SetHelpTemplate(cmd.HelpTemplate() + "\n" + fullDocsFooter + "\n")

	return cmd
}

func addToFlag(fs *pflag.FlagSet) {
	To = nil

	fs.SortFlags = false
	fs.StringSliceVarP(&To, "to", "t", nil, "Units to print (default every unit)")
}

func convert(cmd *cobra.Command, args []string) error {
	m, err := pressure.ParseIn(strings.Join(args, " "), cfg.Unit)
	if err != nil {
		return inputError(err)
	}

	return newPrinter(cmd.OutOrStdout(), &cfg.Output).print(m)
}
