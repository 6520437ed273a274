// File: davipeterlini/mongo/optionenvironment/dump.go
package optionenvironment

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ToYAML serializes the Environment as a nested YAML mapping. Dotted
// keys unflatten into nested mappings in insertion order, so identical
// Environments serialize byte-identically.
func (e *Environment) ToYAML() ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range e.Keys() {
		v, err := e.Get(key)
		if err != nil {
			return nil, err
		}
		if err := insertYAMLValue(root, key, strings.Split(key, "."), v); err != nil {
			return nil, err
		}
	}
	out, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("%w: could not encode YAML: %v", ErrInternal, err)
	}
	return out, nil
}

func insertYAMLValue(mapping *yaml.Node, fullKey string, segments []string, v Value) error {
	name := segments[0]
	var child *yaml.Node
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == name {
			child = mapping.Content[i+1]
			break
		}
	}

	if len(segments) == 1 {
		if child != nil {
			return fmt.Errorf("%w: key '%s' holds both a value and sub-keys", ErrBadValue, fullKey)
		}
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			valueYAMLNode(v))
		return nil
	}

	if child == nil {
		child = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			child)
	} else if child.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: key '%s' holds both a value and sub-keys", ErrBadValue, fullKey)
	}
	return insertYAMLValue(child, fullKey, segments[1:], v)
}

// valueYAMLNode renders one Value as a tagged scalar or sequence so
// the dump re-parses to the same typed value under the same schema.
func valueYAMLNode(v Value) *yaml.Node {
	scalar := func(tag, val string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: val}
	}
	switch v.Type() {
	case TypeSwitch, TypeBool:
		b, _ := v.AsBool()
		return scalar("!!bool", strconv.FormatBool(b))
	case TypeDouble:
		d, _ := v.AsDouble()
		s := strconv.FormatFloat(d, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return scalar("!!float", s)
	case TypeInt:
		i, _ := v.AsInt()
		return scalar("!!int", strconv.FormatInt(int64(i), 10))
	case TypeLong:
		l, _ := v.AsLong()
		return scalar("!!int", strconv.FormatInt(l, 10))
	case TypeUnsigned:
		u, _ := v.AsUnsigned()
		return scalar("!!int", strconv.FormatUint(uint64(u), 10))
	case TypeUnsignedLongLong:
		u, _ := v.AsUnsignedLongLong()
		return scalar("!!int", strconv.FormatUint(u, 10))
	case TypeStringVector:
		elems, _ := v.AsStringVector()
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, el := range elems {
			seq.Content = append(seq.Content, scalar("!!str", el))
		}
		return seq
	default:
		s, _ := v.AsString()
		return scalar("!!str", s)
	}
}

// ToTOML serializes the Environment as nested TOML. Keys come out in
// the encoder's sorted order, which is stable across runs.
func (e *Environment) ToTOML() ([]byte, error) {
	nested, err := buildNestedMap(e)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(nested); err != nil {
		return nil, fmt.Errorf("%w: could not encode TOML: %v", ErrInternal, err)
	}
	return buf.Bytes(), nil
}

// WriteYAMLFile serializes to YAML and writes the file atomically.
func (e *Environment) WriteYAMLFile(path string) error {
	data, err := e.ToYAML()
	if err != nil {
		return err
	}
	return atomicWriteFile(path, data)
}

// WriteTOMLFile serializes to TOML and writes the file atomically.
func (e *Environment) WriteTOMLFile(path string) error {
	data, err := e.ToTOML()
	if err != nil {
		return err
	}
	return atomicWriteFile(path, data)
}

// atomicWriteFile writes through a temp file in the target directory
// and renames it over the destination.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
