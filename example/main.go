// FILE: davipeterlini/mongo/example/main.go
package main

import (
	"fmt"
	"log"
	"net"
	"os"

	"github.com/davipeterlini/mongo/optionenvironment"
)

// ServerConfig is the typed view of the resolved configuration.
type ServerConfig struct {
	Net struct {
		Port   int32  `config:"port"`
		BindIP net.IP `config:"bindIp"`
	} `config:"net"`
	Storage struct {
		DBPath         string  `config:"dbPath"`
		SyncPeriodSecs float64 `config:"syncPeriodSecs"`
	} `config:"storage"`
	Verbose      bool     `config:"verbose"`
	SetParameter []string `config:"setParameter"`
}

const configFilePath = "mongod-example.conf"

const initialConfig = `storage:
  dbPath: /tmp/mongo-example
net:
  port: 28017
setParameter:
  - enableFlowControl=true
`

func main() {
	// =========================================================================
	// PART 1: INITIAL SETUP
	// Register the option schema and create a config file on disk.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 1: Registering options and creating a config file...")

	// Defer cleanup to run at the very end of the program.
	defer func() {
		log.Println("---")
		log.Println("🧹 Cleaning up...")
		os.Remove(configFilePath)
		log.Printf("Removed %s.", configFilePath)
	}()

	opts := buildServerOptions()

	if err := createInitialConfigFile(opts); err != nil {
		log.Fatalf("❌ Failed to create the config file: %v", err)
	}
	log.Printf("✅ Initial configuration saved to %s.", configFilePath)

	// =========================================================================
	// PART 2: ONE RESOLUTION PASS
	// Command line beats config file beats defaults; composing options
	// accumulate across both sources.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 2: Resolving command line + config file + defaults...")

	// Real arguments take over when given; otherwise run the canned demo line.
	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{
			"--config", configFilePath,
			"--port", "29017",
			"--setParameter", "ttlMonitorEnabled=false",
			"-v",
		}
	}
	log.Printf("   (Command line: %v)", args)

	parser := &optionenvironment.OptionsParser{}
	env, err := parser.Run(opts, args)
	if err != nil {
		log.Fatalf("❌ Resolution failed: %v", err)
	}

	port, _ := env.GetInt("net.port")
	dbPath, _ := env.GetString("storage.dbPath")
	bindIP, _ := env.GetString("net.bindIp")
	params, _ := env.GetStringVector("setParameter")

	log.Println("✅ Resolution finished.")
	log.Printf("   net.port        = %d  (command line beats the file's 28017)", port)
	log.Printf("   storage.dbPath  = %s  (config file beats the registered default)", dbPath)
	log.Printf("   net.bindIp      = %s  (untouched, still the default: %v)", bindIP, env.IsDefault("net.bindIp"))
	log.Printf("   setParameter    = %v  (file values first, then command line)", params)

	if err := env.Validate(); err != nil {
		log.Fatalf("❌ Constraint validation failed unexpectedly: %v", err)
	}
	log.Println("✅ Constraints hold.")

	// =========================================================================
	// PART 3: TYPED ACCESS
	// Decode the resolved Environment into a struct and dump it as YAML.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 3: Decoding into a struct and dumping YAML...")

	target := &ServerConfig{}
	if err := env.Unmarshal(target); err != nil {
		log.Fatalf("❌ Unmarshal failed: %v", err)
	}
	printCurrentState(target, "Resolved Server Configuration")

	out, err := env.ToYAML()
	if err != nil {
		log.Fatalf("❌ YAML dump failed: %v", err)
	}
	log.Println("   Effective configuration as YAML:")
	fmt.Println(string(out))

	// =========================================================================
	// PART 4: A FAILING RESOLUTION
	// Out-of-range values pass the parse but fail constraint validation.
	// =========================================================================
	log.Println("---")
	log.Println("➡️  PART 4: Demonstrating a constraint violation...")

	badEnv, err := parser.Run(opts, []string{"--port", "99999"})
	if err != nil {
		log.Fatalf("❌ Resolution failed before validation: %v", err)
	}
	if err := badEnv.Validate(); err != nil {
		log.Printf("✅ Validation rejected the bad port as expected: %v", err)
	} else {
		log.Fatalf("❌ VERIFICATION FAILED: port 99999 should not validate.")
	}
}

// buildServerOptions registers a small server-style schema: dotted
// config-file keys, command-line spellings, defaults, one accumulating
// option, and a port range constraint.
func buildServerOptions() *optionenvironment.OptionSection {
	opts := optionenvironment.NewOptionSection("example options")

	opts.AddOption("config", "config,f", optionenvironment.TypeString,
		"configuration file specifying additional options")
	opts.AddOption("net.port", "port", optionenvironment.TypeInt,
		"specify port number").
		Default(optionenvironment.IntValue(27017))
	opts.AddOption("net.bindIp", "bind_ip", optionenvironment.TypeString,
		"comma separated list of ip addresses to listen on").
		Default(optionenvironment.StringValue("127.0.0.1"))
	opts.AddOption("verbose", "verbose,v", optionenvironment.TypeSwitch,
		"be more verbose")
	opts.AddOption("storage.dbPath", "dbpath", optionenvironment.TypeString,
		"directory for datafiles").
		Default(optionenvironment.StringValue("/data/db"))
	opts.AddOption("storage.syncPeriodSecs", "syncdelay", optionenvironment.TypeDouble,
		"seconds between disk syncs").
		Default(optionenvironment.DoubleValue(60))
	opts.AddOption("setParameter", "setParameter", optionenvironment.TypeStringVector,
		"set a configurable parameter, name=value").
		Composing()

	opts.AddConstraint(optionenvironment.NewNumericRangeConstraint("net.port", 1, 65535))

	return opts
}

// createInitialConfigFile parses a YAML snippet through the schema and
// saves it back to disk with the atomic file writer.
func createInitialConfigFile(opts *optionenvironment.OptionSection) error {
	env, err := optionenvironment.ParseConfig(opts, []byte(initialConfig))
	if err != nil {
		return err
	}
	return env.WriteYAMLFile(configFilePath)
}

// printCurrentState is a helper to display the typed config state.
func printCurrentState(cfg *ServerConfig, title string) {
	fmt.Println("   --------------------------------------------------")
	fmt.Printf("             %s\n", title)
	fmt.Println("   --------------------------------------------------")
	fmt.Printf("     Port:             %d\n", cfg.Net.Port)
	fmt.Printf("     Bind IP:          %s\n", cfg.Net.BindIP)
	fmt.Printf("     DB Path:          %s\n", cfg.Storage.DBPath)
	fmt.Printf("     Sync Period:      %.0fs\n", cfg.Storage.SyncPeriodSecs)
	fmt.Printf("     Verbose:          %t\n", cfg.Verbose)
	fmt.Printf("     Set Parameters:   %v\n", cfg.SetParameter)
	fmt.Println("   --------------------------------------------------")
}
