package cmd

import (
	_ "embed"

	"github.com/spf13/cobra"

	"github.com/lone-faerie/pressure"
	"github.com/lone-faerie/pressure/log"
)

//go:embed help/diff.md
var diffHelp string

// NewCmdDiff returns the [cobra.Command] used for printing the difference
// between two values.
//
// Usage:
//
//	pressure diff <value> <value> [flags]
//
// Aliases:
//
//	diff, d
//
// Flags:
//
//	-t, --to strings   Units to print (default every unit)
//	-h, --help         help for diff
func NewCmdDiff() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "diff <value> <value>",
		Aliases: []string{"d"},
		Short:   "Print the difference between two pressures",
		Long:    diffHelp,
		Example: `  pressure diff "2 bar" "1 atm"
  pressure diff --unit psi 30 14.7 --to psi
  pressure diff --to Pa -- -5 3`,
		GroupID: "commands",
		Args:    cobra.ExactArgs(2),
		RunE:    diff,
	}

	addToFlag(cmd.Flags())

	cmd.SetHelpTemplate(cmd.HelpTemplate() + "\n" + fullDocsFooter + "\n")

	return cmd
}

func diff(cmd *cobra.Command, args []string) error {
	var mm [2]*pressure.Measurement

	for i, arg := range args {
		m, err := pressure.ParseIn(arg, cfg.Unit)
		if err != nil {
			return inputError(err)
		}
		mm[i] = m
	}

	log.Debug("Diff", "a", mm[0], "b", mm[1])

	d, err := pressure.Diff(mm[0], mm[1])
	if err != nil {
		return inputError(err)
	}

	return newPrinter(cmd.OutOrStdout(), &cfg.Output).print(d)
}
