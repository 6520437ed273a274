// FILE: davipeterlini/mongo/cmd/mongoconf/convert.go
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/davipeterlini/mongo/optionenvironment"
)

// newConvertCommand creates the convert subcommand
func newConvertCommand(logger *log.Logger) *cobra.Command {
	var format string
	var outPath string

	cmd := &cobra.Command{
		Use:   "convert [flags] <config-file>",
		Short: "Re-emit a config file as YAML or TOML",
		Long: `Convert reads a YAML or INI config file, checks every key against the
server option schema, and re-emits the parsed configuration in the
requested format.

Example:
  mongoconf convert /etc/mongod.conf
  mongoconf convert --format toml --out mongod.toml legacy.ini`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(logger, args[0], format, outPath)
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or toml")
	cmd.Flags().StringVar(&outPath, "out", "", "write output to this file instead of stdout")

	return cmd
}

func runConvert(logger *log.Logger, path, format, outPath string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	opts, err := serverOptions()
	if err != nil {
		return err
	}
	env, err := optionenvironment.ParseConfig(opts, data)
	if err != nil {
		return err
	}
	logger.Debug("parsed config file", "path", path, "keys", env.Len())

	if outPath != "" {
		switch format {
		case "yaml":
			err = env.WriteYAMLFile(outPath)
		case "toml":
			err = env.WriteTOMLFile(outPath)
		default:
			return fmt.Errorf("unknown output format '%s' (want yaml or toml)", format)
		}
		if err != nil {
			return err
		}
		logger.Info("wrote converted config", "path", outPath, "format", format)
		return nil
	}

	out, err := renderEnvironment(env, format)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
