// File: davipeterlini/mongo/optionenvironment/source.go
package optionenvironment

// Source identifies where a raw configuration value may come from.
// OptionDescriptions carry a bitmask of these; each adapter consults
// only the options whose mask includes its own source.
type Source uint8

const (
	// SourceCommandLine marks options settable from argv.
	SourceCommandLine Source = 1 << iota
	// SourceINIConfig marks options settable from an INI config file.
	SourceINIConfig
	// SourceYAMLConfig marks options settable from a YAML config file.
	SourceYAMLConfig
)

// Common source combinations.
const (
	SourceAllConfig = SourceINIConfig | SourceYAMLConfig
	SourceAll       = SourceCommandLine | SourceAllConfig
)

// Has reports whether s includes every bit of flag.
func (s Source) Has(flag Source) bool {
	return s&flag == flag
}

func (s Source) String() string {
	switch s {
	case SourceCommandLine:
		return "command line"
	case SourceINIConfig:
		return "INI config"
	case SourceYAMLConfig:
		return "YAML config"
	case SourceAllConfig:
		return "config file"
	case SourceAll:
		return "all sources"
	default:
		return "unknown source"
	}
}
