// FILE: davipeterlini/mongo/cmd/mongoconf/check.go
package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// newCheckCommand creates the check subcommand
func newCheckCommand(logger *log.Logger) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [flags] -- [server-option...]",
		Short: "Resolve a configuration and evaluate its constraints",
		Long: `Check resolves the server options after "--" like resolve does, then
evaluates the schema constraints against the result: required options,
mutually exclusive pairs, and numeric ranges.

A violation is reported as a warning. With --strict it fails the command
instead, for use in startup scripts and CI.

Example:
  mongoconf check -- --config /etc/mongod.conf
  mongoconf check --strict -- --keyFile /etc/mongo.key`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(logger, args, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat constraint violations as errors")

	return cmd
}

func runCheck(logger *log.Logger, args []string, strict bool) error {
	env, err := resolveArgs(args)
	if err != nil {
		return err
	}
	logResolved(logger, env)

	if err := env.Validate(); err != nil {
		if strict {
			return err
		}
		logger.Warn("configuration failed validation", "error", err)
		return nil
	}

	logger.Info("configuration is valid", "options", env.Len())
	return nil
}
