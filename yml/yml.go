// Package yml contains helpers for reading gopkg.in/yaml.v3 node trees.
package yml

import (
	"iter"

	"gopkg.in/yaml.v3"
)

// ResolveAlias follows alias nodes until it reaches the node they refer to.
func ResolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

// ResolveDocument returns the root content of a document node, or node itself for
// any other kind. An empty document resolves to nil.
func ResolveDocument(node *yaml.Node) *yaml.Node {
	node = ResolveAlias(node)
	if node == nil || node.Kind != yaml.DocumentNode {
		return node
	}
	if len(node.Content) == 0 {
		return nil
	}
	return ResolveAlias(node.Content[0])
}

// IsMergeKey returns true if the given node is a YAML merge key (<<).
func IsMergeKey(node *yaml.Node) bool {
	return node != nil && node.Kind == yaml.ScalarNode && node.ShortTag() == "!!merge" && node.Value == "<<"
}

// MappingPairs iterates the key and value nodes of a mapping with merge keys expanded.
//
// Merged pairs come first, followed by the mapping's explicit pairs. A key that is
// written explicitly hides the merged pair of the same name, and when several merged
// mappings share a key the first one listed wins. Merged mappings that merge other
// mappings are flattened recursively.
func MappingPairs(node *yaml.Node) iter.Seq2[*yaml.Node, *yaml.Node] {
	return func(yield func(*yaml.Node, *yaml.Node) bool) {
		node = ResolveAlias(node)
		if node == nil || node.Kind != yaml.MappingNode {
			return
		}
		for _, p := range mappingPairs(node, map[*yaml.Node]bool{}) {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

type pair struct {
	key, value *yaml.Node
}

func mappingPairs(node *yaml.Node, visiting map[*yaml.Node]bool) []pair {
	if visiting[node] {
		return nil
	}
	visiting[node] = true
	defer delete(visiting, node)

	var explicit, merged []pair
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if !IsMergeKey(k) {
			explicit = append(explicit, pair{key: k, value: v})
			continue
		}

		target := ResolveAlias(v)
		if target == nil {
			continue
		}
		switch target.Kind {
		case yaml.MappingNode:
			merged = append(merged, mappingPairs(target, visiting)...)
		case yaml.SequenceNode:
			for _, item := range target.Content {
				if item = ResolveAlias(item); item != nil && item.Kind == yaml.MappingNode {
					merged = append(merged, mappingPairs(item, visiting)...)
				}
			}
		}
	}
	if len(merged) == 0 {
		return explicit
	}

	taken := make(map[string]bool, len(explicit))
	for _, p := range explicit {
		taken[keyText(p.key)] = true
	}

	out := make([]pair, 0, len(merged)+len(explicit))
	for _, p := range merged {
		k := keyText(p.key)
		if taken[k] {
			continue
		}
		taken[k] = true
		out = append(out, p)
	}
	return append(out, explicit...)
}

func keyText(node *yaml.Node) string {
	if resolved := ResolveAlias(node); resolved != nil {
		return resolved.Value
	}
	return ""
}
