// FILE: davipeterlini/mongo/cmd/mongoconf/resolve.go
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/davipeterlini/mongo/optionenvironment"
)

// newResolveCommand creates the resolve subcommand
func newResolveCommand(logger *log.Logger) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "resolve [flags] -- [server-option...]",
		Short: "Resolve a full configuration pass and print the effective config",
		Long: `Resolve parses the server options after "--" exactly as the server
would at startup, pulls in the config file named by --config/-f if one
was given, applies defaults and accumulation, and prints the effective
configuration.

Example:
  mongoconf resolve -- --port 28017 --auth
  mongoconf resolve --format toml -- --config /etc/mongod.conf -v`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(logger, args, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or toml")

	return cmd
}

func runResolve(logger *log.Logger, args []string, format string) error {
	env, err := resolveArgs(args)
	if err != nil {
		return err
	}
	logResolved(logger, env)

	out, err := renderEnvironment(env, format)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

// resolveArgs runs one full resolution pass over the server schema.
func resolveArgs(args []string) (*optionenvironment.Environment, error) {
	opts, err := serverOptions()
	if err != nil {
		return nil, err
	}
	parser := &optionenvironment.OptionsParser{}
	return parser.Run(opts, args)
}

// logResolved reports every resolved key at debug level, marking the
// ones that only hold their registered default.
func logResolved(logger *log.Logger, env *optionenvironment.Environment) {
	for _, key := range env.Keys() {
		v, err := env.Get(key)
		if err != nil {
			continue
		}
		logger.Debug("resolved option",
			"key", key, "value", v.String(), "default", env.IsDefault(key))
	}
}
