// FILE: davipeterlini/mongo/cmd/mongoconf/root.go
package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/davipeterlini/mongo/optionenvironment"
)

func newRootCommand(logger *log.Logger, version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mongoconf",
		Short: "Resolve, convert, and validate server configuration",
		Long: `mongoconf resolves server runtime configuration the same way the server
does at startup: command-line flags, an optional YAML or INI config file,
registered defaults, and accumulating parameters merge into one effective
configuration.

The subcommands print, convert, and validate that configuration without
starting a server. Server options go after a "--" separator so they are
not confused with mongoconf's own flags.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newResolveCommand(logger))
	rootCmd.AddCommand(newConvertCommand(logger))
	rootCmd.AddCommand(newCheckCommand(logger))
	rootCmd.AddCommand(newOptionsCommand())

	return rootCmd
}

// renderEnvironment serializes a resolved Environment in the requested
// output format.
func renderEnvironment(env *optionenvironment.Environment, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return env.ToYAML()
	case "toml":
		return env.ToTOML()
	default:
		return nil, fmt.Errorf("unknown output format '%s' (want yaml or toml)", format)
	}
}
