// File: davipeterlini/mongo/optionenvironment/value.go
package optionenvironment

import (
	"fmt"
	"strconv"
	"strings"
)

// OptionType enumerates the value kinds an option can be declared with.
// The set is closed: coercion dispatches over it with a plain switch and
// anything outside it is an internal error, not an extension point.
type OptionType int

const (
	typeNone OptionType = iota

	// TypeSwitch is a boolean flag whose falsehood is expressed by
	// absence: a switch parsed as false is never recorded. A recorded
	// switch holds a Bool-tagged Value(true).
	TypeSwitch
	TypeBool
	TypeDouble
	TypeInt
	TypeLong
	TypeString
	TypeStringVector
	TypeUnsigned
	TypeUnsignedLongLong
)

func (t OptionType) String() string {
	switch t {
	case TypeSwitch:
		return "switch"
	case TypeBool:
		return "boolean"
	case TypeDouble:
		return "double"
	case TypeInt:
		return "integer"
	case TypeLong:
		return "long"
	case TypeString:
		return "string"
	case TypeStringVector:
		return "string vector"
	case TypeUnsigned:
		return "unsigned"
	case TypeUnsignedLongLong:
		return "unsigned long long"
	default:
		return "unknown"
	}
}

// isVector reports whether options of this type collect multiple values.
func (t OptionType) isVector() bool {
	return t == TypeStringVector
}

// Value is an immutable tagged union over the supported option types.
// The tag is fixed at construction; reading a Value under a different
// tag fails with ErrTypeMismatch instead of coercing. The zero Value is
// "empty" and belongs to no type.
type Value struct {
	t    OptionType
	data any
}

// BoolValue returns a Bool-tagged Value. Switch options store their
// presence through this constructor as well.
func BoolValue(b bool) Value { return Value{t: TypeBool, data: b} }

// DoubleValue returns a Double-tagged Value.
func DoubleValue(d float64) Value { return Value{t: TypeDouble, data: d} }

// IntValue returns an Int-tagged Value. Int is 32-bit.
func IntValue(i int32) Value { return Value{t: TypeInt, data: i} }

// LongValue returns a Long-tagged Value. Long is 64-bit.
func LongValue(l int64) Value { return Value{t: TypeLong, data: l} }

// StringValue returns a String-tagged Value.
func StringValue(s string) Value { return Value{t: TypeString, data: s} }

// StringVectorValue returns a StringVector-tagged Value holding a copy
// of vs, so later mutation of the argument cannot reach the Value.
func StringVectorValue(vs []string) Value {
	cp := make([]string, len(vs))
	copy(cp, vs)
	return Value{t: TypeStringVector, data: cp}
}

// UnsignedValue returns an Unsigned-tagged Value. Unsigned is 32-bit.
func UnsignedValue(u uint32) Value { return Value{t: TypeUnsigned, data: u} }

// UnsignedLongLongValue returns an UnsignedLongLong-tagged Value (64-bit).
func UnsignedLongLongValue(u uint64) Value { return Value{t: TypeUnsignedLongLong, data: u} }

// Type returns the tag the Value was constructed with.
func (v Value) Type() OptionType { return v.t }

// IsEmpty reports whether v is the zero Value.
func (v Value) IsEmpty() bool { return v.t == typeNone }

func (v Value) mismatch(want OptionType) error {
	return fmt.Errorf("%w: value holds %s, not %s", ErrTypeMismatch, v.t, want)
}

// AsBool reads a Bool-tagged Value.
func (v Value) AsBool() (bool, error) {
	if v.t != TypeBool {
		return false, v.mismatch(TypeBool)
	}
	return v.data.(bool), nil
}

// AsDouble reads a Double-tagged Value.
func (v Value) AsDouble() (float64, error) {
	if v.t != TypeDouble {
		return 0, v.mismatch(TypeDouble)
	}
	return v.data.(float64), nil
}

// AsInt reads an Int-tagged Value.
func (v Value) AsInt() (int32, error) {
	if v.t != TypeInt {
		return 0, v.mismatch(TypeInt)
	}
	return v.data.(int32), nil
}

// AsLong reads a Long-tagged Value.
func (v Value) AsLong() (int64, error) {
	if v.t != TypeLong {
		return 0, v.mismatch(TypeLong)
	}
	return v.data.(int64), nil
}

// AsString reads a String-tagged Value.
func (v Value) AsString() (string, error) {
	if v.t != TypeString {
		return "", v.mismatch(TypeString)
	}
	return v.data.(string), nil
}

// AsStringVector reads a StringVector-tagged Value. The returned slice
// is a copy.
func (v Value) AsStringVector() ([]string, error) {
	if v.t != TypeStringVector {
		return nil, v.mismatch(TypeStringVector)
	}
	src := v.data.([]string)
	cp := make([]string, len(src))
	copy(cp, src)
	return cp, nil
}

// AsUnsigned reads an Unsigned-tagged Value.
func (v Value) AsUnsigned() (uint32, error) {
	if v.t != TypeUnsigned {
		return 0, v.mismatch(TypeUnsigned)
	}
	return v.data.(uint32), nil
}

// AsUnsignedLongLong reads an UnsignedLongLong-tagged Value.
func (v Value) AsUnsignedLongLong() (uint64, error) {
	if v.t != TypeUnsignedLongLong {
		return 0, v.mismatch(TypeUnsignedLongLong)
	}
	return v.data.(uint64), nil
}

// Equal reports whether two Values carry the same tag and the same
// contents. Vectors compare element-wise.
func (v Value) Equal(other Value) bool {
	if v.t != other.t {
		return false
	}
	if v.t == TypeStringVector {
		a := v.data.([]string)
		b := other.data.([]string)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}
	return v.data == other.data
}

// String renders the contents for messages and debug output.
func (v Value) String() string {
	switch v.t {
	case typeNone:
		return "<empty>"
	case TypeString:
		return v.data.(string)
	case TypeStringVector:
		return strings.Join(v.data.([]string), ",")
	default:
		return fmt.Sprintf("%v", v.data)
	}
}

// valueFromScalar converts one raw scalar into a Value of the declared
// type. Every source adapter funnels scalars through here, so malformed
// input and overflow behave identically no matter where the raw text
// came from. Booleans accept exactly the literals "true" and "false".
func valueFromScalar(t OptionType, raw, key string) (Value, error) {
	switch t {
	case TypeSwitch, TypeBool:
		switch raw {
		case "true":
			return BoolValue(true), nil
		case "false":
			return BoolValue(false), nil
		}
		return Value{}, fmt.Errorf("%w: expected boolean, found '%s' for key '%s'", ErrBadValue, raw, key)
	case TypeDouble:
		d, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: expected double, found '%s' for key '%s'", ErrBadValue, raw, key)
		}
		return DoubleValue(d), nil
	case TypeInt:
		i, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return Value{}, fmt.Errorf("%w: expected integer, found '%s' for key '%s'", ErrBadValue, raw, key)
		}
		return IntValue(int32(i)), nil
	case TypeLong:
		l, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: expected long, found '%s' for key '%s'", ErrBadValue, raw, key)
		}
		return LongValue(l), nil
	case TypeString:
		return StringValue(raw), nil
	case TypeUnsigned:
		u, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return Value{}, fmt.Errorf("%w: expected unsigned, found '%s' for key '%s'", ErrBadValue, raw, key)
		}
		return UnsignedValue(uint32(u)), nil
	case TypeUnsignedLongLong:
		u, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: expected unsigned long long, found '%s' for key '%s'", ErrBadValue, raw, key)
		}
		return UnsignedLongLongValue(u), nil
	}
	return Value{}, fmt.Errorf("%w: no coercion for option type %d (key '%s')", ErrInternal, t, key)
}
