// Package yamlutil provides strict access to yaml document nodes: every
// lookup verifies node kind and key presence so decode fails on the first
// malformed level instead of zero-filling.
package yamlutil

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"strainstats/pkg/schema"
)

// Root parses data and returns the document's root node. Empty input and a
// lone null document both return nil with no error.
func Root(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &schema.SchemaError{Msg: fmt.Sprintf("malformed yaml: %v", err)}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	n := resolve(doc.Content[0])
	if IsNull(n) {
		return nil, nil
	}
	return n, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// IsNull reports whether n is an explicit null value.
func IsNull(n *yaml.Node) bool {
	n = resolve(n)
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.DocumentNode:
		return "document"
	default:
		return "unknown"
	}
}

// Mapping verifies n is a mapping node and returns it.
func Mapping(n *yaml.Node) (*yaml.Node, error) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		line := 0
		kind := "nothing"
		if n != nil {
			line, kind = n.Line, kindName(n)
		}
		return nil, &schema.SchemaError{Line: line, Msg: "expected a mapping, got " + kind}
	}
	return n, nil
}

// Sequence verifies n is a sequence node and returns its elements.
func Sequence(n *yaml.Node) ([]*yaml.Node, error) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.SequenceNode {
		line := 0
		kind := "nothing"
		if n != nil {
			line, kind = n.Line, kindName(n)
		}
		return nil, &schema.SchemaError{Line: line, Msg: "expected a sequence, got " + kind}
	}
	out := make([]*yaml.Node, 0, len(n.Content))
	for _, c := range n.Content {
		out = append(out, resolve(c))
	}
	return out, nil
}

// Entry returns the value node for key within mapping n.
func Entry(n *yaml.Node, key string) (*yaml.Node, bool) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, false
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return resolve(n.Content[i+1]), true
		}
	}
	return nil, false
}

// Require returns the value node for key, or a SchemaError naming the key.
// The key must be present; its value may still be null.
func Require(n *yaml.Node, key string) (*yaml.Node, error) {
	m, err := Mapping(n)
	if err != nil {
		return nil, err
	}
	v, ok := Entry(m, key)
	if !ok {
		return nil, &schema.SchemaError{Line: m.Line, Key: key, Msg: "missing key"}
	}
	return v, nil
}

// Int decodes the required integer value under key.
func Int(n *yaml.Node, key string) (int, error) {
	v, err := Require(n, key)
	if err != nil {
		return 0, err
	}
	var i int
	if err := v.Decode(&i); err != nil {
		return 0, &schema.SchemaError{Line: v.Line, Key: key, Msg: "expected an integer for"}
	}
	return i, nil
}

// Float decodes the required float value under key. Integer values are
// accepted, matching yaml's numeric coercion.
func Float(n *yaml.Node, key string) (float64, error) {
	v, err := Require(n, key)
	if err != nil {
		return 0, err
	}
	var f float64
	if err := v.Decode(&f); err != nil {
		return 0, &schema.SchemaError{Line: v.Line, Key: key, Msg: "expected a number for"}
	}
	return f, nil
}

// String decodes the required string value under key.
func String(n *yaml.Node, key string) (string, error) {
	v, err := Require(n, key)
	if err != nil {
		return "", err
	}
	var s string
	if err := v.Decode(&s); err != nil {
		return "", &schema.SchemaError{Line: v.Line, Key: key, Msg: "expected a string for"}
	}
	return s, nil
}

// Seq returns the elements of the required sequence value under key.
func Seq(n *yaml.Node, key string) ([]*yaml.Node, error) {
	v, err := Require(n, key)
	if err != nil {
		return nil, err
	}
	items, err := Sequence(v)
	if err != nil {
		return nil, &schema.SchemaError{Line: v.Line, Key: key, Msg: "expected a sequence for"}
	}
	return items, nil
}

// Map returns the required mapping value under key.
func Map(n *yaml.Node, key string) (*yaml.Node, error) {
	v, err := Require(n, key)
	if err != nil {
		return nil, err
	}
	m, err := Mapping(v)
	if err != nil {
		return nil, &schema.SchemaError{Line: v.Line, Key: key, Msg: "expected a mapping for"}
	}
	return m, nil
}
