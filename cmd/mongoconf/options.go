// FILE: davipeterlini/mongo/cmd/mongoconf/options.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newOptionsCommand creates the options subcommand
func newOptionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the server options the other subcommands accept",
		Long: `Options prints every server option the resolve, convert, and check
subcommands understand: its command-line spelling, value placeholder,
and default, grouped by section.

Example:
  mongoconf options`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := serverOptions()
			if err != nil {
				return err
			}
			fmt.Fprint(os.Stdout, opts.Help())
			return nil
		},
	}
}
