// File: davipeterlini/mongo/optionenvironment/decode.go
package optionenvironment

import (
	"fmt"
	"net"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Unmarshal decodes the whole Environment into target, a pointer to a
// struct. Dotted keys map onto nested structs through the "config"
// field tag, with weak typing so a string "27017" fills an int field.
func (e *Environment) Unmarshal(target any) error {
	return e.UnmarshalKey("", target)
}

// UnmarshalKey decodes the subtree under basePath into target. An
// empty basePath decodes the whole Environment; a basePath that names
// a leaf value rather than a section is an error.
func (e *Environment) UnmarshalKey(basePath string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("%w: unmarshal target must be a non-nil pointer, got %T", ErrBadValue, target)
	}

	nested, err := buildNestedMap(e)
	if err != nil {
		return err
	}

	sectionData := navigateToPath(nested, basePath)
	sectionMap, ok := sectionData.(map[string]any)
	if !ok {
		if sectionData == nil {
			sectionMap = make(map[string]any)
		} else {
			return fmt.Errorf("%w: path '%s' refers to a value, not a section", ErrBadValue, basePath)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "config",
		WeaklyTypedInput: true,
		ZeroFields:       true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToNetIPHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("%w: decoder creation failed: %v", ErrInternal, err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("%w: decode failed for path '%s': %v", ErrBadValue, basePath, err)
	}
	return nil
}

// stringToNetIPHookFunc converts bind-address strings into net.IP
// fields during decode.
func stringToNetIPHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(net.IP{}) {
			return data, nil
		}
		str := data.(string)
		ip := net.ParseIP(str)
		if ip == nil {
			return nil, fmt.Errorf("invalid IP address: %s", str)
		}
		return ip, nil
	}
}

// navigateToPath walks the nested map down a dotted path, returning
// nil when any segment is missing.
func navigateToPath(nested map[string]any, path string) any {
	path = strings.TrimSuffix(path, ".")
	if path == "" {
		return nested
	}

	current := any(nested)
	for _, segment := range strings.Split(path, ".") {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		value, exists := currentMap[segment]
		if !exists {
			return nil
		}
		current = value
	}
	return current
}
