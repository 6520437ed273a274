// File: davipeterlini/mongo/optionenvironment/yaml.go
package optionenvironment

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// valueSentinel is the reserved leaf key. A mapping nested under an
// option name may carry the actual scalar under this key, so
// "net: { port: { value: 27017 } }" resolves to "net.port".
const valueSentinel = "value"

// ParseConfig detects the config format and dispatches to the matching
// adapter. Data whose YAML document collapses into a single scalar is
// treated as legacy INI, since the permissive YAML grammar swallows an
// entire "key = value" file into one string. Everything else goes to
// the YAML adapter.
func ParseConfig(section *OptionSection, data []byte) (*Environment, error) {
	if err := section.registrationError(); err != nil {
		return nil, err
	}
	root, err := parseYAMLDocument(data)
	if err != nil {
		return nil, err
	}
	if root != nil && root.Kind == yaml.ScalarNode {
		return ParseINIConfig(section, data)
	}
	return yamlRootToEnvironment(section, root)
}

// ParseYAMLConfig reads YAML config data against the
// config-file-eligible options of the schema. The document root must
// be a mapping; nested mappings extend the dotted path, sequences fill
// vector options, and scalars are coerced to the registered type. An
// empty or null document yields an empty Environment.
func ParseYAMLConfig(section *OptionSection, data []byte) (*Environment, error) {
	if err := section.registrationError(); err != nil {
		return nil, err
	}
	root, err := parseYAMLDocument(data)
	if err != nil {
		return nil, err
	}
	if root != nil && root.Kind == yaml.ScalarNode {
		return nil, fmt.Errorf("%w: YAML config must be a mapping at the top level", ErrBadValue)
	}
	return yamlRootToEnvironment(section, root)
}

// parseYAMLDocument returns the document's root content node with
// aliases resolved, or nil for an empty or null document.
func parseYAMLDocument(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: error parsing YAML config: %v", ErrBadValue, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	root := resolveAlias(doc.Content[0])
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil, nil
	}
	return root, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func yamlRootToEnvironment(section *OptionSection, root *yaml.Node) (*Environment, error) {
	env := NewEnvironment()
	if root == nil {
		return env, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: YAML config must be a mapping at the top level", ErrBadValue)
	}
	if err := walkYAMLMapping(section, root, "", env); err != nil {
		return nil, err
	}
	return env, nil
}

// walkYAMLMapping descends one mapping level. Every key extends the
// dotted path except the value sentinel, which keeps the parent path
// so the leaf lands on the enclosing option.
func walkYAMLMapping(section *OptionSection, node *yaml.Node, parentPath string, env *Environment) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := resolveAlias(node.Content[i+1])

		path := parentPath
		if keyNode.Value != valueSentinel {
			if parentPath == "" {
				path = keyNode.Value
			} else {
				path = parentPath + "." + keyNode.Value
			}
		}

		switch valNode.Kind {
		case yaml.MappingNode:
			if err := walkYAMLMapping(section, valNode, path, env); err != nil {
				return err
			}
		case yaml.SequenceNode:
			if err := setYAMLSequence(section, valNode, path, env); err != nil {
				return err
			}
		case yaml.ScalarNode:
			if err := setYAMLScalar(section, valNode, path, env); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: unsupported YAML node for key '%s'", ErrBadValue, path)
		}
	}
	return nil
}

func setYAMLScalar(section *OptionSection, node *yaml.Node, path string, env *Environment) error {
	d := section.findDotted(path, SourceYAMLConfig)
	if d == nil {
		return fmt.Errorf("%w: unrecognized option '%s'", ErrBadValue, path)
	}
	if d.optType.isVector() {
		return fmt.Errorf("%w: expected a sequence for key '%s'", ErrBadValue, path)
	}
	v, err := valueFromScalar(d.optType, node.Value, path)
	if err != nil {
		return err
	}
	if d.optType == TypeSwitch {
		if b, _ := v.AsBool(); !b {
			return nil
		}
	}
	return env.Set(path, v)
}

func setYAMLSequence(section *OptionSection, node *yaml.Node, path string, env *Environment) error {
	d := section.findDotted(path, SourceYAMLConfig)
	if d == nil {
		return fmt.Errorf("%w: unrecognized option '%s'", ErrBadValue, path)
	}
	if !d.optType.isVector() {
		return fmt.Errorf("%w: expected %s, found a sequence for key '%s'", ErrBadValue, d.optType, path)
	}
	elems := make([]string, 0, len(node.Content))
	for _, el := range node.Content {
		el = resolveAlias(el)
		if el.Kind != yaml.ScalarNode {
			return fmt.Errorf("%w: expected a sequence of scalars for key '%s'", ErrBadValue, path)
		}
		elems = append(elems, el.Value)
	}
	return env.Set(path, StringVectorValue(elems))
}
