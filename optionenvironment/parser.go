// File: davipeterlini/mongo/optionenvironment/parser.go
package optionenvironment

import (
	"errors"
	"fmt"
	"os"
)

// configKey is the reserved option that names the config file on the
// command line. Applications register it like any other string option.
const configKey = "config"

// OptionsParser resolves a full configuration pass: command line,
// optional config file, composition, defaults, and layered overwrite,
// in that order. The zero value is ready to use.
type OptionsParser struct {
	// ReadFile overrides config-file reading; nil means os.ReadFile.
	ReadFile func(path string) ([]byte, error)
}

// Run parses args against the schema, pulls in the config file named
// by the reserved "config" option if one was given, and returns the
// resolved Environment. Precedence, lowest to highest: defaults,
// config file, command line, composed accumulation. Constraints are
// attached but not evaluated; call Validate on the result.
//
// Run fails fast. Any stage error aborts the pass and no partially
// merged Environment is returned.
func (p *OptionsParser) Run(section *OptionSection, args []string) (*Environment, error) {
	if err := section.registrationError(); err != nil {
		return nil, err
	}

	cliEnv, err := ParseCommandLine(section, args)
	if err != nil {
		return nil, err
	}

	configEnv := NewEnvironment()
	path, err := cliEnv.GetString(configKey)
	switch {
	case err == nil:
		data, readErr := p.readConfigFile(path)
		if readErr != nil {
			return nil, readErr
		}
		configEnv, err = ParseConfig(section, data)
		if err != nil {
			return nil, err
		}
	case errors.Is(err, ErrNoSuchKey):
		// No config file requested.
	default:
		return nil, fmt.Errorf("%w: the '%s' option must be a string", ErrBadValue, configKey)
	}

	composedEnv, err := composeSources(section, configEnv, cliEnv)
	if err != nil {
		return nil, err
	}

	result := NewEnvironment()
	for _, d := range section.AllOptions() {
		if d.defaultValue.IsEmpty() {
			continue
		}
		if err := result.SetDefault(d.dottedName, d.defaultValue); err != nil {
			return nil, err
		}
	}
	if err := result.SetAll(configEnv); err != nil {
		return nil, err
	}
	if err := result.SetAll(cliEnv); err != nil {
		return nil, err
	}
	if err := result.SetAll(composedEnv); err != nil {
		return nil, err
	}
	for _, c := range section.Constraints() {
		result.AddConstraint(c)
	}
	return result, nil
}

func (p *OptionsParser) readConfigFile(path string) ([]byte, error) {
	read := p.ReadFile
	if read == nil {
		read = os.ReadFile
	}
	data, err := read(path)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading config file '%s': %w", ErrInternal, path, err)
	}
	return data, nil
}

// composeSources concatenates each composing option's config-file
// elements followed by its command-line elements into a separate
// Environment, one set per key. Keys absent from both sources are
// skipped.
func composeSources(section *OptionSection, configEnv, cliEnv *Environment) (*Environment, error) {
	composed := NewEnvironment()
	for _, d := range section.AllOptions() {
		if !d.composing {
			continue
		}
		var merged []string
		found := false
		for _, env := range []*Environment{configEnv, cliEnv} {
			v, err := env.Get(d.dottedName)
			if err != nil {
				continue
			}
			elems, err := v.AsStringVector()
			if err != nil {
				return nil, fmt.Errorf("%w: composing option '%s' does not hold a string vector", ErrInternal, d.dottedName)
			}
			merged = append(merged, elems...)
			found = true
		}
		if !found {
			continue
		}
		if err := composed.Set(d.dottedName, StringVectorValue(merged)); err != nil {
			return nil, err
		}
	}
	return composed, nil
}
