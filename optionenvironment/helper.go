// File: davipeterlini/mongo/optionenvironment/helper.go
package optionenvironment

import (
	"fmt"
	"strings"
)

// isValidKeySegment checks one dotted-path segment: ASCII letters,
// digits, underscores and dashes, nothing else, never empty.
func isValidKeySegment(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}

// setNestedValue writes value into nested under a dotted path, creating
// intermediate maps. A path that runs through or lands on an existing
// non-map value is a conflict: the same name cannot hold both a value
// and sub-keys.
func setNestedValue(nested map[string]any, path string, value any) error {
	segments := strings.Split(path, ".")
	current := nested
	for i := 0; i < len(segments)-1; i++ {
		seg := segments[i]
		next, exists := current[seg]
		if !exists {
			m := make(map[string]any)
			current[seg] = m
			current = m
			continue
		}
		m, isMap := next.(map[string]any)
		if !isMap {
			return fmt.Errorf("%w: key '%s' holds both a value and sub-keys",
				ErrBadValue, strings.Join(segments[:i+1], "."))
		}
		current = m
	}
	last := segments[len(segments)-1]
	if _, exists := current[last]; exists {
		return fmt.Errorf("%w: key '%s' holds both a value and sub-keys", ErrBadValue, path)
	}
	current[last] = value
	return nil
}

// valueToAny unwraps a Value into its native Go representation for
// encoders and the struct decoder. Vectors come back as a fresh slice.
func valueToAny(v Value) any {
	if v.Type() == TypeStringVector {
		vs, _ := v.AsStringVector()
		return vs
	}
	return v.data
}

// buildNestedMap unflattens an Environment's dotted keys into nested
// maps, in insertion order, for serialization and struct decoding.
func buildNestedMap(e *Environment) (map[string]any, error) {
	nested := make(map[string]any)
	for _, key := range e.Keys() {
		v, err := e.Get(key)
		if err != nil {
			return nil, fmt.Errorf("%w: key '%s' vanished while building nested map", ErrInternal, key)
		}
		if err := setNestedValue(nested, key, valueToAny(v)); err != nil {
			return nil, err
		}
	}
	return nested, nil
}
