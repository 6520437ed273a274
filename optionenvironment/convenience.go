// File: davipeterlini/mongo/optionenvironment/convenience.go
package optionenvironment

import "fmt"

// Typed getters over Environment.Get. Each returns ErrNoSuchKey for an
// absent key and ErrTypeMismatch when the stored tag differs, with the
// key named in the message.

// GetString reads a String-tagged value.
func (e *Environment) GetString(key string) (string, error) {
	v, err := e.Get(key)
	if err != nil {
		return "", err
	}
	s, err := v.AsString()
	if err != nil {
		return "", fmt.Errorf("key '%s': %w", key, err)
	}
	return s, nil
}

// GetBool reads a Bool-tagged value. Recorded switches read as true
// through this getter.
func (e *Environment) GetBool(key string) (bool, error) {
	v, err := e.Get(key)
	if err != nil {
		return false, err
	}
	b, err := v.AsBool()
	if err != nil {
		return false, fmt.Errorf("key '%s': %w", key, err)
	}
	return b, nil
}

// GetInt reads an Int-tagged value.
func (e *Environment) GetInt(key string) (int32, error) {
	v, err := e.Get(key)
	if err != nil {
		return 0, err
	}
	i, err := v.AsInt()
	if err != nil {
		return 0, fmt.Errorf("key '%s': %w", key, err)
	}
	return i, nil
}

// GetLong reads a Long-tagged value.
func (e *Environment) GetLong(key string) (int64, error) {
	v, err := e.Get(key)
	if err != nil {
		return 0, err
	}
	l, err := v.AsLong()
	if err != nil {
		return 0, fmt.Errorf("key '%s': %w", key, err)
	}
	return l, nil
}

// GetDouble reads a Double-tagged value.
func (e *Environment) GetDouble(key string) (float64, error) {
	v, err := e.Get(key)
	if err != nil {
		return 0, err
	}
	d, err := v.AsDouble()
	if err != nil {
		return 0, fmt.Errorf("key '%s': %w", key, err)
	}
	return d, nil
}

// GetUnsigned reads an Unsigned-tagged value.
func (e *Environment) GetUnsigned(key string) (uint32, error) {
	v, err := e.Get(key)
	if err != nil {
		return 0, err
	}
	u, err := v.AsUnsigned()
	if err != nil {
		return 0, fmt.Errorf("key '%s': %w", key, err)
	}
	return u, nil
}

// GetUnsignedLongLong reads an UnsignedLongLong-tagged value.
func (e *Environment) GetUnsignedLongLong(key string) (uint64, error) {
	v, err := e.Get(key)
	if err != nil {
		return 0, err
	}
	u, err := v.AsUnsignedLongLong()
	if err != nil {
		return 0, fmt.Errorf("key '%s': %w", key, err)
	}
	return u, nil
}

// GetStringVector reads a StringVector-tagged value. The returned slice
// is a copy.
func (e *Environment) GetStringVector(key string) ([]string, error) {
	v, err := e.Get(key)
	if err != nil {
		return nil, err
	}
	vs, err := v.AsStringVector()
	if err != nil {
		return nil, fmt.Errorf("key '%s': %w", key, err)
	}
	return vs, nil
}
