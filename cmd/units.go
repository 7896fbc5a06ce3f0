package cmd

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lone-faerie/pressure"
	"github.com/lone-faerie/pressure/config"
)

//go:embed help/units.md
var unitsHelp string

// NewCmdUnits returns the [cobra.Command] used for listing the supported units.
//
// Usage:
//
//	pressure units [unit] [flags]
//
// Aliases:
//
//	units, u, list
//
// Flags:
//
//	-h, --help   help for units
func NewCmdUnits() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "units [unit]",
		Aliases:           []string{"u", "list"},
		Short:             "List supported units",
		Long:              unitsHelp,
		GroupID:           "commands",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeUnits,
		RunE:              listUnits,
	}

	cmd.SetHelpTemplate(cmd.HelpTemplate() + "\n" + fullDocsFooter + "\n")

	return cmd
}

func listUnits(cmd *cobra.Command, args []string) error {
	var units []pressure.UnitInfo

	if len(args) > 0 {
		info, err := pressure.LookupUnit(args[0])
		if err != nil {
			return inputError(err)
		}
		units = []pressure.UnitInfo{info}
	} else {
		units = pressure.Units()
	}

	w := cmd.OutOrStdout()

	switch cfg.Output.Format {
	case config.FormatJSON:
		return printUnitsJSON(w, units)
	case config.FormatYAML:
		return encodeYAML(w, units)
	}
	return printUnitsText(w, units)
}

func printUnitsText(w io.Writer, units []pressure.UnitInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "SYMBOL\tNAME\tSTANDARD SYMBOL\tSTANDARD NAME\tSI")
	for _, u := range units {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n",
			u.SymbolASCII, u.NameASCII, u.SymbolStandard, u.NameStandard, u.IsSIUnit,
		)
	}

	return tw.Flush()
}

func printUnitsJSON(w io.Writer, units []pressure.UnitInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(units)
}
