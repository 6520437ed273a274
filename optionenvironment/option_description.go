// File: davipeterlini/mongo/optionenvironment/option_description.go
package optionenvironment

import (
	"fmt"
	"strings"
)

// OptionDescription is one schema entry: the dotted key an option
// resolves under, its single name for the command line and INI files
// (optionally "name,n" carrying a one-character short alias), its
// declared type, the sources allowed to supply it, and its merge
// behavior. Descriptions are built once through OptionSection.AddOption
// and the chaining setters below, and are read-only while parsing.
type OptionDescription struct {
	dottedName   string
	singleName   string
	optType      OptionType
	description  string
	sources      Source
	composing    bool
	hidden       bool
	defaultValue Value
	posStart     int // 1-based positional slot, 0 when not positional
	posEnd       int // last slot, -1 for unbounded trailing
	owner        *OptionSection
}

// parseSingleName splits a single name into its long form and optional
// one-character short alias. A comma, when present, must sit directly
// before a single trailing character: "verbose,v".
func parseSingleName(single string) (long, short string, err error) {
	i := strings.IndexByte(single, ',')
	if i < 0 {
		return single, "", nil
	}
	if i != len(single)-2 || i == 0 {
		return "", "", fmt.Errorf("malformed single name '%s': a comma must be followed by exactly one alias character", single)
	}
	return single[:i], single[i+1:], nil
}

// longName returns the single name with any short alias stripped.
func (d *OptionDescription) longName() string {
	long, _, _ := parseSingleName(d.singleName)
	return long
}

// shortName returns the one-character alias, or "" when none was given.
func (d *OptionDescription) shortName() string {
	_, short, _ := parseSingleName(d.singleName)
	return short
}

// Default attaches a default Value, injected into the result of a parse
// run below every explicit source. The tag must match the declared
// type; switches take a Bool-tagged default.
func (d *OptionDescription) Default(v Value) *OptionDescription {
	if v.IsEmpty() {
		d.owner.recordErr(fmt.Errorf("option '%s': default value cannot be empty", d.dottedName))
		return d
	}
	if !typeMatches(d.optType, v.Type()) {
		d.owner.recordErr(fmt.Errorf("option '%s': default of type %s does not match declared type %s",
			d.dottedName, v.Type(), d.optType))
		return d
	}
	d.defaultValue = v
	return d
}

// Composing marks the option as accumulating across sources instead of
// overriding: config file elements first, command line elements
// appended. Only vector types can compose.
func (d *OptionDescription) Composing() *OptionDescription {
	if !d.optType.isVector() {
		d.owner.recordErr(fmt.Errorf("option '%s': only vector types can compose, not %s", d.dottedName, d.optType))
		return d
	}
	d.composing = true
	return d
}

// SetSources restricts which sources may supply the option. The default
// from AddOption is SourceAll.
func (d *OptionDescription) SetSources(s Source) *OptionDescription {
	if s == 0 {
		d.owner.recordErr(fmt.Errorf("option '%s': source mask cannot be empty", d.dottedName))
		return d
	}
	d.sources = s
	return d
}

// Hidden excludes the option from user-facing listings. Parsing is
// unaffected.
func (d *OptionDescription) Hidden() *OptionDescription {
	d.hidden = true
	return d
}

// Positional binds the option to positional command-line arguments.
// Slots are 1-based; end == -1 claims every trailing argument. A
// binding spanning more than one slot requires a vector type.
func (d *OptionDescription) Positional(start, end int) *OptionDescription {
	if start < 1 {
		d.owner.recordErr(fmt.Errorf("option '%s': positional start must be >= 1", d.dottedName))
		return d
	}
	if end != -1 && end < start {
		d.owner.recordErr(fmt.Errorf("option '%s': positional end %d precedes start %d", d.dottedName, end, start))
		return d
	}
	if (end == -1 || end > start) && !d.optType.isVector() {
		d.owner.recordErr(fmt.Errorf("option '%s': a positional range needs a vector type, not %s", d.dottedName, d.optType))
		return d
	}
	d.posStart = start
	d.posEnd = end
	return d
}

// helpSpelling renders the command-line form for help output, e.g.
// "--port arg (=27017)" or "--verbose, -v".
func (d *OptionDescription) helpSpelling() string {
	s := "--" + d.longName()
	if short := d.shortName(); short != "" {
		s += ", -" + short
	}
	if d.optType != TypeSwitch {
		s += " arg"
	}
	if !d.defaultValue.IsEmpty() {
		s += fmt.Sprintf(" (=%s)", d.defaultValue)
	}
	return s
}

// typeMatches reports whether a Value tag satisfies a declared option
// type. Switches store Bool-tagged values.
func typeMatches(declared, tag OptionType) bool {
	if declared == TypeSwitch {
		return tag == TypeBool
	}
	return declared == tag
}
