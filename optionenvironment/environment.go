// File: davipeterlini/mongo/optionenvironment/environment.go
package optionenvironment

import (
	"fmt"
	"strings"
)

// Environment is an ordered key to Value store. One is created per
// source while parsing and discarded after merging; the merged result
// is also an Environment and lives for the configuration's lifetime.
//
// Three rules govern writes:
//   - a key set explicitly never silently reverts to a default;
//   - an explicit re-set of an explicitly set key in the same
//     Environment is a duplicate-key error;
//   - defaults are overwritable by explicit values without error.
//
// SetAll folds a higher-precedence Environment in and force-overwrites,
// because a cross-layer collision is an override, not a duplicate.
type Environment struct {
	values      map[string]Value
	order       []string
	defaultKeys map[string]struct{}
	constraints []Constraint
}

// NewEnvironment creates an empty store.
func NewEnvironment() *Environment {
	return &Environment{
		values:      make(map[string]Value),
		defaultKeys: make(map[string]struct{}),
	}
}

// Set stores an explicit value. Re-setting a key that already holds an
// explicit value fails with a duplicate-key error; overwriting a
// default succeeds and clears its default mark.
func (e *Environment) Set(key string, v Value) error {
	if key == "" {
		return fmt.Errorf("%w: cannot set an empty key", ErrBadValue)
	}
	if v.IsEmpty() {
		return fmt.Errorf("%w: cannot set an empty value for key '%s'", ErrBadValue, key)
	}
	if _, ok := e.values[key]; ok {
		if _, isDefault := e.defaultKeys[key]; !isDefault {
			return fmt.Errorf("%w: duplicate key '%s'", ErrBadValue, key)
		}
		delete(e.defaultKeys, key)
		e.values[key] = v
		return nil
	}
	e.values[key] = v
	e.order = append(e.order, key)
	return nil
}

// SetDefault stores a default value. An explicitly set key is left
// untouched; an existing default is replaced.
func (e *Environment) SetDefault(key string, v Value) error {
	if key == "" {
		return fmt.Errorf("%w: cannot set an empty key", ErrBadValue)
	}
	if v.IsEmpty() {
		return fmt.Errorf("%w: cannot set an empty default for key '%s'", ErrBadValue, key)
	}
	if _, ok := e.values[key]; ok {
		if _, isDefault := e.defaultKeys[key]; !isDefault {
			return nil
		}
		e.values[key] = v
		return nil
	}
	e.values[key] = v
	e.order = append(e.order, key)
	e.defaultKeys[key] = struct{}{}
	return nil
}

// setForce overwrites regardless of what the key holds. New keys keep
// insertion order; overwritten keys keep their position.
func (e *Environment) setForce(key string, v Value) {
	if _, ok := e.values[key]; !ok {
		e.order = append(e.order, key)
	}
	delete(e.defaultKeys, key)
	e.values[key] = v
}

// SetAll applies every value of other onto e in other's insertion
// order, overwriting without duplicate detection. The values arrive as
// explicit, whatever they were in other.
func (e *Environment) SetAll(other *Environment) error {
	if other == nil {
		return nil
	}
	for _, key := range other.order {
		e.setForce(key, other.values[key])
	}
	return nil
}

// Get returns the stored Value for key, or ErrNoSuchKey.
func (e *Environment) Get(key string) (Value, error) {
	v, ok := e.values[key]
	if !ok {
		return Value{}, fmt.Errorf("%w: '%s'", ErrNoSuchKey, key)
	}
	return v, nil
}

// Has reports whether key holds any value, default or explicit.
func (e *Environment) Has(key string) bool {
	_, ok := e.values[key]
	return ok
}

// IsDefault reports whether key currently holds a default value.
func (e *Environment) IsDefault(key string) bool {
	_, ok := e.defaultKeys[key]
	return ok
}

// Keys returns the stored keys in insertion order.
func (e *Environment) Keys() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Len returns the number of stored keys.
func (e *Environment) Len() int { return len(e.values) }

// AddConstraint attaches a borrowed constraint for later Validate
// calls.
func (e *Environment) AddConstraint(c Constraint) {
	if c == nil {
		return
	}
	e.constraints = append(e.constraints, c)
}

// Validate runs every attached constraint against the current contents
// and stops at the first failure.
func (e *Environment) Validate() error {
	for _, c := range e.constraints {
		if err := c.Check(e); err != nil {
			return err
		}
	}
	return nil
}

// String renders the contents in insertion order for debug output.
func (e *Environment) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for i, key := range e.order {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", key, e.values[key])
	}
	b.WriteString(" }")
	return b.String()
}
