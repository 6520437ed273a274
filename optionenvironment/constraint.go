// File: davipeterlini/mongo/optionenvironment/constraint.go
package optionenvironment

import "fmt"

// Constraint is a deferred validation rule over a resolved Environment.
// Constraints attach to the final Environment of a parse run and are
// evaluated only when the caller invokes Environment.Validate; merging
// never evaluates them. A constraint that touches an absent key passes,
// so optional options stay optional.
type Constraint interface {
	Check(env *Environment) error
}

type requiresConstraint struct {
	key         string
	requiredKey string
}

// NewRequiresConstraint demands that requiredKey is present whenever
// key is.
func NewRequiresConstraint(key, requiredKey string) Constraint {
	return &requiresConstraint{key: key, requiredKey: requiredKey}
}

func (c *requiresConstraint) Check(env *Environment) error {
	if !env.Has(c.key) {
		return nil
	}
	if !env.Has(c.requiredKey) {
		return fmt.Errorf("%w: option '%s' requires option '%s'", ErrBadValue, c.key, c.requiredKey)
	}
	return nil
}

type mutuallyExclusiveConstraint struct {
	keyA string
	keyB string
}

// NewMutuallyExclusiveConstraint forbids both keys from being present
// at once.
func NewMutuallyExclusiveConstraint(keyA, keyB string) Constraint {
	return &mutuallyExclusiveConstraint{keyA: keyA, keyB: keyB}
}

func (c *mutuallyExclusiveConstraint) Check(env *Environment) error {
	if env.Has(c.keyA) && env.Has(c.keyB) {
		return fmt.Errorf("%w: options '%s' and '%s' are mutually exclusive", ErrBadValue, c.keyA, c.keyB)
	}
	return nil
}

type numericRangeConstraint struct {
	key string
	min int64
	max int64
}

// NewNumericRangeConstraint bounds a numeric option inclusively.
func NewNumericRangeConstraint(key string, min, max int64) Constraint {
	return &numericRangeConstraint{key: key, min: min, max: max}
}

func (c *numericRangeConstraint) Check(env *Environment) error {
	v, err := env.Get(c.key)
	if err != nil {
		return nil
	}
	var n int64
	switch v.Type() {
	case TypeInt:
		i, _ := v.AsInt()
		n = int64(i)
	case TypeLong:
		n, _ = v.AsLong()
	case TypeUnsigned:
		u, _ := v.AsUnsigned()
		n = int64(u)
	case TypeUnsignedLongLong:
		u, _ := v.AsUnsignedLongLong()
		if u > 1<<63-1 {
			return fmt.Errorf("%w: value %d for option '%s' must be between %d and %d",
				ErrBadValue, u, c.key, c.min, c.max)
		}
		n = int64(u)
	case TypeDouble:
		d, _ := v.AsDouble()
		if d < float64(c.min) || d > float64(c.max) {
			return fmt.Errorf("%w: value %v for option '%s' must be between %d and %d",
				ErrBadValue, d, c.key, c.min, c.max)
		}
		return nil
	default:
		return fmt.Errorf("%w: range constraint on non-numeric option '%s' (%s)",
			ErrBadValue, c.key, v.Type())
	}
	if n < c.min || n > c.max {
		return fmt.Errorf("%w: value %d for option '%s' must be between %d and %d",
			ErrBadValue, n, c.key, c.min, c.max)
	}
	return nil
}
