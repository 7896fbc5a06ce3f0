//go:build docgen

package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// NewCmdDocGen returns the hidden [cobra.Command] used for generating documentation.
func NewCmdDocGen() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "docgen",
		Short:  "Generate documentation",
		Hidden: true,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "man [dir]",
		Short: "Generate man pages",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "docs/man"
			if len(args) > 0 {
				dir = args[0]
			}
			hdr := &doc.GenManHeader{
				Title:   "PRESSURE",
				Section: "1",
			}
			if err := os.MkdirAll(dir, 0750); err != nil {
				return err
			}
			return doc.GenManTree(cmd.Root(), hdr, dir)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "markdown [dir]",
		Short: "Generate markdown documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "docs"
			if len(args) > 0 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0750); err != nil {
				return err
			}
			return doc.GenMarkdownTree(cmd.Root(), dir)
		},
	})

	return cmd
}

func init() {
	commands = append(commands, NewCmdDocGen)
}
