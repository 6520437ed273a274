// FILE: davipeterlini/mongo/cmd/mongoconf/schema.go
package main

import (
	"github.com/davipeterlini/mongo/optionenvironment"
)

// serverOptions builds the option schema the subcommands resolve
// against. It mirrors the general server startup surface: every option
// carries both its dotted config-file key and its command-line
// spelling, and the reserved "config" option names the config file
// itself.
func serverOptions() (*optionenvironment.OptionSection, error) {
	opts := optionenvironment.NewOptionSection("general options")

	opts.AddOption("config", "config,f", optionenvironment.TypeString,
		"configuration file specifying additional options")
	opts.AddOption("setParameter", "setParameter", optionenvironment.TypeStringVector,
		"set a configurable parameter, name=value").
		Composing()

	net := optionenvironment.NewOptionSection("net options")
	net.AddOption("net.port", "port", optionenvironment.TypeInt,
		"specify port number").
		Default(optionenvironment.IntValue(27017))
	net.AddOption("net.bindIp", "bind_ip", optionenvironment.TypeString,
		"comma separated list of ip addresses to listen on").
		Default(optionenvironment.StringValue("127.0.0.1"))
	net.AddOption("net.ipv6", "ipv6", optionenvironment.TypeSwitch,
		"enable IPv6 support (disabled by default)")
	net.AddOption("net.maxIncomingConnections", "maxConns", optionenvironment.TypeInt,
		"max number of simultaneous connections").
		Default(optionenvironment.IntValue(65536))
	net.AddConstraint(optionenvironment.NewNumericRangeConstraint("net.port", 1, 65535))

	systemLog := optionenvironment.NewOptionSection("systemlog options")
	systemLog.AddOption("systemLog.verbosity", "verbose,v", optionenvironment.TypeSwitch,
		"be more verbose")
	systemLog.AddOption("systemLog.quiet", "quiet", optionenvironment.TypeSwitch,
		"quieter output")
	systemLog.AddOption("systemLog.path", "logpath", optionenvironment.TypeString,
		"log file to send writes to instead of stdout")
	systemLog.AddOption("systemLog.logAppend", "logappend", optionenvironment.TypeSwitch,
		"append to logpath instead of over-writing")
	systemLog.AddOption("systemLog.traceAllExceptions", "traceExceptions",
		optionenvironment.TypeSwitch, "log stack traces for every exception").Hidden()
	systemLog.AddConstraint(optionenvironment.NewMutuallyExclusiveConstraint(
		"systemLog.quiet", "systemLog.verbosity"))

	storage := optionenvironment.NewOptionSection("storage options")
	storage.AddOption("storage.dbPath", "dbpath", optionenvironment.TypeString,
		"directory for datafiles").
		Default(optionenvironment.StringValue("/data/db"))
	storage.AddOption("storage.syncPeriodSecs", "syncdelay", optionenvironment.TypeDouble,
		"seconds between disk syncs").
		Default(optionenvironment.DoubleValue(60))
	storage.AddOption("storage.journal.enabled", "journal", optionenvironment.TypeBool,
		"enable or disable journaling")

	process := optionenvironment.NewOptionSection("process management options")
	process.AddOption("processManagement.fork", "fork", optionenvironment.TypeSwitch,
		"fork server process")
	process.AddOption("processManagement.pidFilePath", "pidfilepath", optionenvironment.TypeString,
		"full path to pidfile (if not set, no pidfile is created)")

	security := optionenvironment.NewOptionSection("security options")
	security.AddOption("security.authorization", "auth", optionenvironment.TypeSwitch,
		"run with security")
	security.AddOption("security.keyFile", "keyFile", optionenvironment.TypeString,
		"private key for cluster authentication")
	security.AddConstraint(optionenvironment.NewRequiresConstraint(
		"security.keyFile", "security.authorization"))

	replication := optionenvironment.NewOptionSection("replication options")
	replication.AddOption("replication.replSetName", "replSet", optionenvironment.TypeString,
		"name of the replica set this process belongs to")
	replication.AddOption("replication.oplogSizeMB", "oplogSize", optionenvironment.TypeInt,
		"size to use (in MB) for replication op log")

	for _, sub := range []*optionenvironment.OptionSection{
		net, systemLog, storage, process, security, replication,
	} {
		if err := opts.AddSection(sub); err != nil {
			return nil, err
		}
	}
	return opts, nil
}
