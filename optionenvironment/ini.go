// File: davipeterlini/mongo/optionenvironment/ini.go
package optionenvironment

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// ParseINIConfig reads legacy "key = value" config data against the
// INI-eligible options of the schema. Every key binds an option's
// single name; a "[section]" header prefixes its keys with the section
// name and a dot, and the combined key must still match a single name.
// Repeated keys are rejected for scalar options and become vector
// elements for vector options.
func ParseINIConfig(section *OptionSection, data []byte) (*Environment, error) {
	if err := section.registrationError(); err != nil {
		return nil, err
	}

	f, err := ini.LoadSources(ini.LoadOptions{AllowShadows: true}, data)
	if err != nil {
		return nil, fmt.Errorf("%w: error parsing INI config: %v", ErrBadValue, err)
	}

	env := NewEnvironment()
	for _, sec := range f.Sections() {
		prefix := ""
		if sec.Name() != ini.DefaultSection {
			prefix = sec.Name() + "."
		}
		for _, key := range sec.Keys() {
			name := prefix + key.Name()
			values := key.ValueWithShadows()

			d := section.findSingle(name, SourceINIConfig)
			if d == nil {
				return nil, fmt.Errorf("%w: unrecognized option '%s'", ErrBadValue, name)
			}
			if d.optType.isVector() {
				if err := env.Set(d.dottedName, StringVectorValue(values)); err != nil {
					return nil, err
				}
				continue
			}
			if len(values) > 1 {
				return nil, fmt.Errorf("%w: multiple occurrences of option '%s'", ErrBadValue, name)
			}
			v, err := valueFromScalar(d.optType, values[0], d.dottedName)
			if err != nil {
				return nil, err
			}
			if d.optType == TypeSwitch {
				if b, _ := v.AsBool(); !b {
					continue
				}
			}
			if err := env.Set(d.dottedName, v); err != nil {
				return nil, err
			}
		}
	}
	return env, nil
}
