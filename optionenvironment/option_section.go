// File: davipeterlini/mongo/optionenvironment/option_section.go
package optionenvironment

import (
	"fmt"
	"strings"
)

// OptionSection owns the ordered option schema an application registers
// before parsing, plus the constraints attached to the final result.
// Sections nest for grouped registration; lookups and listings flatten
// the tree in registration order. Sections are never mutated while a
// parse is running.
//
// Registration problems (bad names, duplicate keys, a composing
// non-vector) are recorded on the section and reported from the next
// parse call, so schema building can chain without error checks at
// every step.
type OptionSection struct {
	name        string
	options     []*OptionDescription
	subsections []*OptionSection
	constraints []Constraint
	err         error
}

// NewOptionSection creates an empty schema section. The name is only a
// grouping label.
func NewOptionSection(name string) *OptionSection {
	return &OptionSection{name: name}
}

// Name returns the grouping label given at construction.
func (s *OptionSection) Name() string { return s.name }

// recordErr keeps the first registration error for reporting at parse
// time.
func (s *OptionSection) recordErr(err error) {
	if s.err == nil {
		s.err = err
	}
}

// AddOption registers one option and returns its description for
// chaining. dotted is the key the option resolves under; single is the
// command-line/INI name, optionally "name,n" with a one-character short
// alias. Options start eligible for every source.
func (s *OptionSection) AddOption(dotted, single string, t OptionType, description string) *OptionDescription {
	d := &OptionDescription{
		dottedName:  dotted,
		singleName:  single,
		optType:     t,
		description: description,
		sources:     SourceAll,
		owner:       s,
	}
	s.options = append(s.options, d)

	if dotted == "" {
		s.recordErr(fmt.Errorf("option registration: dotted name cannot be empty"))
		return d
	}
	for _, seg := range strings.Split(dotted, ".") {
		if !isValidKeySegment(seg) {
			s.recordErr(fmt.Errorf("option '%s': invalid key segment '%s'", dotted, seg))
			return d
		}
	}
	if single == "" {
		s.recordErr(fmt.Errorf("option '%s': single name cannot be empty", dotted))
		return d
	}
	long, short, err := parseSingleName(single)
	if err != nil {
		s.recordErr(fmt.Errorf("option '%s': %w", dotted, err))
		return d
	}
	for _, seg := range strings.Split(long, ".") {
		if !isValidKeySegment(seg) {
			s.recordErr(fmt.Errorf("option '%s': invalid single name segment '%s'", dotted, seg))
			return d
		}
	}
	if short != "" && !isValidKeySegment(short) {
		s.recordErr(fmt.Errorf("option '%s': invalid short alias '%s'", dotted, short))
		return d
	}
	if t <= typeNone || t > TypeUnsignedLongLong {
		s.recordErr(fmt.Errorf("option '%s': unknown option type %d", dotted, t))
	}
	return d
}

// AddSection attaches a subsection. Its options join this section's
// listings and lookups, after the options already registered here.
func (s *OptionSection) AddSection(sub *OptionSection) error {
	if sub == nil {
		return fmt.Errorf("%w: cannot add a nil section", ErrBadValue)
	}
	if sub == s {
		return fmt.Errorf("%w: cannot add a section to itself", ErrBadValue)
	}
	s.subsections = append(s.subsections, sub)
	return nil
}

// AddConstraint attaches a deferred validation rule. Constraints ride
// along to the final Environment of a parse run and are only evaluated
// by Environment.Validate.
func (s *OptionSection) AddConstraint(c Constraint) {
	if c == nil {
		return
	}
	s.constraints = append(s.constraints, c)
}

// AllOptions returns every registered description in registration
// order, subsections flattened in place.
func (s *OptionSection) AllOptions() []*OptionDescription {
	out := make([]*OptionDescription, 0, len(s.options))
	out = append(out, s.options...)
	for _, sub := range s.subsections {
		out = append(out, sub.AllOptions()...)
	}
	return out
}

// SourceOptions returns the descriptions eligible for one source, in
// registration order.
func (s *OptionSection) SourceOptions(src Source) []*OptionDescription {
	var out []*OptionDescription
	for _, d := range s.AllOptions() {
		if d.sources.Has(src) {
			out = append(out, d)
		}
	}
	return out
}

// Defaults returns the dotted keys that declare defaults, with their
// default Values.
func (s *OptionSection) Defaults() map[string]Value {
	out := make(map[string]Value)
	for _, d := range s.AllOptions() {
		if !d.defaultValue.IsEmpty() {
			out[d.dottedName] = d.defaultValue
		}
	}
	return out
}

// Constraints returns every attached constraint, this section's first,
// then subsections in order.
func (s *OptionSection) Constraints() []Constraint {
	out := make([]Constraint, 0, len(s.constraints))
	out = append(out, s.constraints...)
	for _, sub := range s.subsections {
		out = append(out, sub.Constraints()...)
	}
	return out
}

// Help renders the user-facing option listing: every visible option
// with its command-line spelling, value placeholder, default, and help
// text, grouped under the section names given at registration. Hidden
// options parse normally but are left out.
func (s *OptionSection) Help() string {
	var b strings.Builder
	s.writeHelp(&b)
	return b.String()
}

func (s *OptionSection) writeHelp(b *strings.Builder) {
	visible := make([]*OptionDescription, 0, len(s.options))
	for _, d := range s.options {
		if !d.hidden {
			visible = append(visible, d)
		}
	}
	if len(visible) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "%s:\n", s.name)
		for _, d := range visible {
			if d.description == "" {
				fmt.Fprintf(b, "  %s\n", d.helpSpelling())
				continue
			}
			fmt.Fprintf(b, "  %-34s %s\n", d.helpSpelling(), d.description)
		}
	}
	for _, sub := range s.subsections {
		sub.writeHelp(b)
	}
}

// registrationError surfaces the first recorded registration problem,
// including duplicate names anywhere in the flattened tree. Adapters
// call it before touching any input.
func (s *OptionSection) registrationError() error {
	if s.err != nil {
		return fmt.Errorf("%w: %v", ErrBadValue, s.err)
	}
	for _, sub := range s.subsections {
		if err := sub.registrationError(); err != nil {
			return err
		}
	}
	seenDotted := make(map[string]string)
	seenName := make(map[string]string)
	for _, d := range s.AllOptions() {
		if prev, ok := seenDotted[d.dottedName]; ok {
			return fmt.Errorf("%w: option '%s' registered twice (as '%s' and '%s')",
				ErrBadValue, d.dottedName, prev, d.singleName)
		}
		seenDotted[d.dottedName] = d.singleName
		for _, n := range []string{d.longName(), d.shortName()} {
			if n == "" {
				continue
			}
			if prev, ok := seenName[n]; ok {
				return fmt.Errorf("%w: name '%s' registered twice (for '%s' and '%s')",
					ErrBadValue, n, prev, d.dottedName)
			}
			seenName[n] = d.dottedName
		}
	}
	return nil
}

// findDotted looks an option up by dotted key, restricted to one
// source.
func (s *OptionSection) findDotted(key string, src Source) *OptionDescription {
	for _, d := range s.AllOptions() {
		if d.dottedName == key && d.sources.Has(src) {
			return d
		}
	}
	return nil
}

// findSingle looks an option up by its long single name, restricted to
// one source.
func (s *OptionSection) findSingle(name string, src Source) *OptionDescription {
	for _, d := range s.AllOptions() {
		if d.longName() == name && d.sources.Has(src) {
			return d
		}
	}
	return nil
}
