// File: davipeterlini/mongo/optionenvironment/errors.go
package optionenvironment

import "errors"

// Error kinds returned by this package. Callers match them with errors.Is;
// every returned error wraps exactly one of these and carries a message
// naming the offending key or input.
var (
	// ErrBadValue covers malformed input: bad option syntax, type
	// mismatches during coercion, unregistered keys, duplicate keys,
	// repeated non-repeatable options, and constraint violations.
	ErrBadValue = errors.New("bad value")

	// ErrInternal covers broken bookkeeping inside this package
	// (an unreachable type tag, composing-option state that cannot
	// happen) and config file read failures.
	ErrInternal = errors.New("internal error")

	// ErrNoSuchKey is returned by Environment.Get for absent keys.
	ErrNoSuchKey = errors.New("no such key")

	// ErrTypeMismatch is returned when a Value is read under a tag
	// other than the one it was constructed with.
	ErrTypeMismatch = errors.New("type mismatch")
)
