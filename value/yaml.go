package value

import (
	"encoding/base64"
	"math/big"
	"strings"

	"github.com/speakeasy-api/querystyle/yml"
	"gopkg.in/yaml.v3"
)

// FromYAML converts a YAML node tree to a Value.
//
// Documents resolve to their root and aliases to their anchor. Mappings become maps in
// document order with merge keys expanded, sequences become sequences and scalars are
// typed by their resolved tag: null is None, !!binary is Bytes and integers keep up to
// 128 bits. Scalars with an unknown tag are strings.
func FromYAML(node *yaml.Node) (Value, error) {
	return fromYAML(node, 0)
}

// maxYAMLDepth bounds recursion through nested collections and aliases.
const maxYAMLDepth = 1000

func fromYAML(node *yaml.Node, depth int) (Value, error) {
	if depth > maxYAMLDepth {
		return Value{}, ErrSerialization.Wrapf("yaml nesting exceeds %d levels", maxYAMLDepth)
	}

	node = yml.ResolveDocument(node)
	if node == nil || node.Kind == 0 {
		return None(), nil
	}

	switch node.Kind {
	case yaml.SequenceNode:
		elems := make([]Value, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := fromYAML(item, depth+1)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, v)
		}
		return Seq(elems...), nil
	case yaml.MappingNode:
		var entries []Entry
		for k, v := range yml.MappingPairs(node) {
			key, err := fromYAML(k, depth+1)
			if err != nil {
				return Value{}, err
			}
			val, err := fromYAML(v, depth+1)
			if err != nil {
				return Value{}, err
			}
			entries = append(entries, E(key, val))
		}
		return Map(entries...), nil
	case yaml.ScalarNode:
		return scalarFromYAML(node)
	default:
		return Value{}, ErrSerialization.Wrapf("line %d: unsupported yaml node kind %s", node.Line, yml.NodeKindToString(node.Kind))
	}
}

func scalarFromYAML(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return None(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, ErrSerialization.Wrapf("line %d: %w", node.Line, err)
		}
		return Bool(b), nil
	case "!!int":
		return intFromYAML(node)
	case "!!float":
		// integers beyond 64 bits resolve as floats
		if node.Style&yaml.TaggedStyle == 0 && isDecimalInteger(node.Value) {
			return intFromYAML(node)
		}
		var f float64
		if err := node.Decode(&f); err != nil {
			return Value{}, ErrSerialization.Wrapf("line %d: %w", node.Line, err)
		}
		return Float64(f), nil
	case "!!binary":
		data, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(node.Value), ""))
		if err != nil {
			return Value{}, ErrSerialization.Wrapf("line %d: invalid !!binary: %w", node.Line, err)
		}
		return Bytes(data), nil
	default:
		return String(node.Value), nil
	}
}

func intFromYAML(node *yaml.Node) (Value, error) {
	var i int64
	if err := node.Decode(&i); err == nil {
		return Int(i), nil
	}
	var u uint64
	if err := node.Decode(&u); err == nil {
		return Uint(u), nil
	}

	text := strings.ReplaceAll(node.Value, "_", "")
	b, ok := new(big.Int).SetString(text, 0)
	if !ok {
		return Value{}, ErrSerialization.Wrapf("line %d: invalid integer %q", node.Line, node.Value)
	}
	return bigFromYAML(node, b)
}

func bigFromYAML(node *yaml.Node, b *big.Int) (Value, error) {
	v, err := BigInt(b)
	if err != nil {
		return Value{}, ErrSerialization.Wrapf("line %d: %w", node.Line, err)
	}
	return v, nil
}

func isDecimalInteger(s string) bool {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
