// File: davipeterlini/mongo/optionenvironment/cli.go
package optionenvironment

import (
	"flag"
	"fmt"
	"io"
	"sort"
)

// flagAccumulator records every raw occurrence of one option. The long
// name and the short alias register the same accumulator, so mixed
// spellings share a single occurrence count.
type flagAccumulator struct {
	desc *OptionDescription
	raw  []string
}

func (a *flagAccumulator) String() string { return "" }

func (a *flagAccumulator) Set(s string) error {
	a.raw = append(a.raw, s)
	return nil
}

// IsBoolFlag lets bare "--quiet" stand for "--quiet=true".
func (a *flagAccumulator) IsBoolFlag() bool {
	return a.desc.optType == TypeSwitch || a.desc.optType == TypeBool
}

// ParseCommandLine tokenizes args against the command-line-eligible
// options of the schema and returns a fresh Environment of typed
// values under dotted keys.
//
// The accepted grammar is strict: no abbreviation guessing, no
// short-flag bundling, long options with one or two dashes,
// "--opt=value" and "--opt value" forms, and a literal "--" ending
// option parsing. An option that repeats without being vector-typed
// fails with a multiple-occurrences error; a switch parsed as false is
// not recorded at all.
func ParseCommandLine(section *OptionSection, args []string) (*Environment, error) {
	if err := section.registrationError(); err != nil {
		return nil, err
	}

	opts := section.SourceOptions(SourceCommandLine)
	fs := flag.NewFlagSet("options", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	accs := make([]*flagAccumulator, 0, len(opts))
	for _, d := range opts {
		acc := &flagAccumulator{desc: d}
		accs = append(accs, acc)
		fs.Var(acc, d.longName(), d.description)
		if short := d.shortName(); short != "" {
			fs.Var(acc, short, d.description)
		}
	}

	// Everything after a literal "--" is positional, untokenized.
	flagArgs := args
	var trailing []string
	for i, a := range args {
		if a == "--" {
			flagArgs = args[:i]
			trailing = args[i+1:]
			break
		}
	}

	// The flag package stops at the first positional; re-parsing the
	// remainder supports interleaved options and positionals.
	var positionals []string
	rest := flagArgs
	for {
		if err := fs.Parse(rest); err != nil {
			return nil, fmt.Errorf("%w: error parsing command line: %v", ErrBadValue, err)
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		positionals = append(positionals, rest[0])
		rest = rest[1:]
	}
	positionals = append(positionals, trailing...)

	env := NewEnvironment()
	for _, acc := range accs {
		d := acc.desc
		if len(acc.raw) == 0 {
			continue
		}
		if len(acc.raw) > 1 && !d.optType.isVector() {
			return nil, fmt.Errorf("%w: multiple occurrences of option '--%s'", ErrBadValue, d.longName())
		}
		if d.optType.isVector() {
			if err := env.Set(d.dottedName, StringVectorValue(acc.raw)); err != nil {
				return nil, err
			}
			continue
		}
		v, err := valueFromScalar(d.optType, acc.raw[0], d.dottedName)
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

	if err := applyPositionals(opts, positionals, env); err != nil {
		return nil, err
	}
	return env, nil
}

// applyPositionals maps leftover arguments onto the options registered
// with positional slots. Slots are 1-based; an unclaimed argument is an
// error.
func applyPositionals(opts []*OptionDescription, positionals []string, env *Environment) error {
	var posDescs []*OptionDescription
	for _, d := range opts {
		if d.posStart > 0 {
			posDescs = append(posDescs, d)
		}
	}
	if len(posDescs) == 0 {
		if len(positionals) > 0 {
			return fmt.Errorf("%w: unexpected positional argument '%s'", ErrBadValue, positionals[0])
		}
		return nil
	}
	sort.SliceStable(posDescs, func(i, j int) bool {
		return posDescs[i].posStart < posDescs[j].posStart
	})

	collected := make(map[*OptionDescription][]string)
	for i, arg := range positionals {
		slot := i + 1
		var d *OptionDescription
		for _, cand := range posDescs {
			if slot >= cand.posStart && (cand.posEnd == -1 || slot <= cand.posEnd) {
				d = cand
				break
			}
		}
		if d == nil {
			return fmt.Errorf("%w: unexpected positional argument '%s'", ErrBadValue, arg)
		}
		collected[d] = append(collected[d], arg)
	}

	for _, d := range posDescs {
		vals, ok := collected[d]
		if !ok {
			continue
		}
		if d.optType.isVector() {
			if err := env.Set(d.dottedName, StringVectorValue(vals)); err != nil {
				return err
			}
			continue
		}
		v, err := valueFromScalar(d.optType, vals[0], d.dottedName)
		if err != nil {
			return err
		}
		if err := env.Set(d.dottedName, v); err != nil {
			return err
		}
	}
	return nil
}
