// File: davipeterlini/mongo/optionenvironment/doc.go

// Package optionenvironment resolves process startup configuration
// from the command line and an optional config file into one typed,
// ordered key-value store.
//
// The owning application declares its options up front in an
// OptionSection schema, then hands the schema and argv to an
// OptionsParser. The parser runs one synchronous pass: parse the
// command line, read and parse the config file named by the reserved
// "config" option (YAML or legacy "key = value" INI, auto-detected),
// merge composing vector options across both sources, inject schema
// defaults, and layer the sources into a final Environment.
//
// Features:
//   - Typed Value model (bool, switch, string, numeric widths, string vector)
//   - Dotted keys with nested YAML addressing ("net.port")
//   - Short single-character aliases via "name,n" registration
//   - Composing options that accumulate across sources instead of overriding
//   - Default tracking: defaults are overridable, explicit values are not
//   - Duplicate and multiple-occurrence detection per source
//   - Constraint attachment with an explicit Validate step
//   - Struct decoding through mapstructure tags
//   - YAML and TOML serialization with atomic file writes
//
// Quick Start:
//
//	opts := optionenvironment.NewOptionSection("general options")
//	opts.AddOption("config", "config", optionenvironment.TypeString, "configuration file")
//	opts.AddOption("net.port", "port", optionenvironment.TypeInt, "listen port").
//	    Default(optionenvironment.IntValue(27017))
//	opts.AddOption("verbose", "verbose,v", optionenvironment.TypeSwitch, "more output")
//
//	var parser optionenvironment.OptionsParser
//	env, err := parser.Run(opts, os.Args[1:])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := env.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
//	port, _ := env.GetInt("net.port")
//
// Precedence (highest to lowest):
//  1. Composed accumulation (composing options only)
//  2. Command-line arguments (--port 9090)
//  3. Configuration file (--config mongod.conf)
//  4. Registered defaults
//
// Concurrency:
// One configuration pass per process startup, single-threaded by
// contract. Environments are not safe for concurrent mutation.
package optionenvironment
