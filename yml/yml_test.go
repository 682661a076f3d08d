package yml_test

import (
	"context"
	"testing"

	"github.com/speakeasy-api/querystyle/errors"
	"github.com/speakeasy-api/querystyle/yml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func parse(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	return &doc
}

func pairKeys(node *yaml.Node) []string {
	var keys []string
	for k, v := range yml.MappingPairs(node) {
		keys = append(keys, k.Value+"="+yml.ResolveAlias(v).Value)
	}
	return keys
}

func TestMappingPairs_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		src      string
		expected []string
	}{
		{
			name:     "plain mapping",
			src:      "a: 1\nb: 2\n",
			expected: []string{"a=1", "b=2"},
		},
		{
			name:     "merge key with override",
			src:      "base: &base {a: 1, b: 2}\nv:\n  <<: *base\n  b: 3\n  c: 4\n",
			expected: []string{"a=1", "b=3", "c=4"},
		},
		{
			name:     "merge sequence first wins",
			src:      "x: &x {a: 1}\ny: &y {a: 2, b: 2}\nv:\n  <<: [*x, *y]\n",
			expected: []string{"a=1", "b=2"},
		},
		{
			name:     "nested merge chain",
			src:      "x: &x {a: 1}\ny: &y {<<: *x, b: 2}\nv:\n  <<: *y\n  c: 3\n",
			expected: []string{"a=1", "b=2", "c=3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root := yml.ResolveDocument(parse(t, tt.src))
			target := root
			for k, v := range yml.MappingPairs(root) {
				if k.Value == "v" {
					target = v
				}
			}
			assert.Equal(t, tt.expected, pairKeys(target))
		})
	}
}

func TestMappingPairs_NotMapping_Success(t *testing.T) {
	t.Parallel()
	assert.Empty(t, pairKeys(nil))
	assert.Empty(t, pairKeys(&yaml.Node{Kind: yaml.ScalarNode, Value: "x"}))
}

func TestResolveDocument_Success(t *testing.T) {
	t.Parallel()
	assert.Nil(t, yml.ResolveDocument(&yaml.Node{Kind: yaml.DocumentNode}))

	root := yml.ResolveDocument(parse(t, "[1, 2]"))
	require.NotNil(t, root)
	assert.Equal(t, yaml.SequenceNode, root.Kind)

	scalar := &yaml.Node{Kind: yaml.ScalarNode, Value: "x"}
	assert.Same(t, scalar, yml.ResolveDocument(scalar))
}

func TestResolveAlias_Success(t *testing.T) {
	t.Parallel()
	target := &yaml.Node{Kind: yaml.ScalarNode, Value: "x"}
	alias := &yaml.Node{Kind: yaml.AliasNode, Alias: &yaml.Node{Kind: yaml.AliasNode, Alias: target}}

	assert.Same(t, target, yml.ResolveAlias(alias))
	assert.Nil(t, yml.ResolveAlias(nil))
}

func TestIsMergeKey_Success(t *testing.T) {
	t.Parallel()
	assert.True(t, yml.IsMergeKey(&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!merge", Value: "<<"}))
	assert.False(t, yml.IsMergeKey(&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "<<"}))
	assert.False(t, yml.IsMergeKey(nil))
}

func TestNodeKindToString_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		kind     yaml.Kind
		expected string
	}{
		{kind: yaml.DocumentNode, expected: "document"},
		{kind: yaml.SequenceNode, expected: "sequence"},
		{kind: yaml.MappingNode, expected: "object"},
		{kind: yaml.ScalarNode, expected: "scalar"},
		{kind: yaml.AliasNode, expected: "alias"},
		{kind: yaml.Kind(99), expected: "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, yml.NodeKindToString(tt.kind))
	}
}

func TestWalk_Success(t *testing.T) {
	t.Parallel()
	doc := parse(t, "a: &x [1, 2]\nb: *x\n")

	calls := 0
	maxDepth := 0
	err := yml.Walk(t.Context(), doc, func(_ context.Context, _, _ *yaml.Node, depth int) error {
		calls++
		maxDepth = max(maxDepth, depth)
		return nil
	})
	require.NoError(t, err)
	// document, mapping, two keys, the sequence and its items, then the alias and the
	// sequence and items again
	assert.Equal(t, 11, calls)
	assert.Equal(t, 3, maxDepth)
}

func TestWalk_Terminate_Success(t *testing.T) {
	t.Parallel()
	calls := 0
	err := yml.Walk(t.Context(), parse(t, "[1, 2, 3]"), func(context.Context, *yaml.Node, *yaml.Node, int) error {
		calls++
		if calls == 2 {
			return yml.ErrTerminate
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWalk_Error(t *testing.T) {
	t.Parallel()
	const errBoom = errors.Error("boom")
	err := yml.Walk(t.Context(), parse(t, "a: 1"), func(context.Context, *yaml.Node, *yaml.Node, int) error {
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)
}
