// Package input reads YAML or JSON documents given to the CLI and selects the nodes a
// command renders.
package input

import (
	"context"
	"fmt"
	"io"

	"github.com/speakeasy-api/jsonpath/pkg/jsonpath"
	"github.com/speakeasy-api/jsonpath/pkg/jsonpath/config"
	"github.com/speakeasy-api/querystyle/errors"
	"github.com/speakeasy-api/querystyle/value"
	"github.com/speakeasy-api/querystyle/yml"
	"github.com/vmware-labs/yaml-jsonpath/pkg/yamlpath"
	"gopkg.in/yaml.v3"
)

const (
	// ErrTooLarge is returned when a document holds more nodes than allowed. Aliases are
	// counted each time they are reached.
	ErrTooLarge = errors.Error("input too large")
	// ErrInvalidPath is returned for a path expression that does not parse.
	ErrInvalidPath = errors.Error("invalid path")
	// ErrNoMatch is returned when a path selects nothing.
	ErrNoMatch = errors.Error("path matched no nodes")
)

// DefaultMaxNodes is the node limit used when none is configured.
const DefaultMaxNodes = 100_000

// Read decodes the first document from r and checks it against maxNodes. A
// non-positive maxNodes disables the check. Empty input yields an empty node.
func Read(ctx context.Context, r io.Reader, maxNodes int) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	if maxNodes <= 0 {
		return &doc, nil
	}

	count := 0
	err := yml.Walk(ctx, &doc, func(_ context.Context, _, _ *yaml.Node, _ int) error {
		count++
		if count > maxNodes {
			return ErrTooLarge.Wrapf("more than %d nodes", maxNodes)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Select returns the nodes path selects from root. RFC 9535 JSONPath is used unless
// legacy is set, in which case the older yamlpath dialect is used. An empty path
// selects root.
func Select(root *yaml.Node, path string, legacy bool) ([]*yaml.Node, error) {
	if path == "" {
		return []*yaml.Node{root}, nil
	}

	var nodes []*yaml.Node
	if legacy {
		p, err := yamlpath.NewPath(path)
		if err != nil {
			return nil, ErrInvalidPath.Wrapf("%s: %w", path, err)
		}
		nodes, err = p.Find(root)
		if err != nil {
			return nil, ErrInvalidPath.Wrapf("%s: %w", path, err)
		}
	} else {
		p, err := jsonpath.NewPath(path, config.WithPropertyNameExtension())
		if err != nil {
			return nil, ErrInvalidPath.Wrapf("%s: %w", path, err)
		}
		nodes = p.Query(root)
	}

	if len(nodes) == 0 {
		return nil, ErrNoMatch.Wrapf("%s", path)
	}
	return nodes, nil
}

// Value converts the selected nodes to a value. A single node converts as itself and
// several convert to a sequence in match order.
func Value(nodes []*yaml.Node) (value.Value, error) {
	if len(nodes) == 1 {
		return value.FromYAML(nodes[0])
	}

	items := make([]value.Value, 0, len(nodes))
	for _, node := range nodes {
		v, err := value.FromYAML(node)
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, v)
	}
	return value.Seq(items...), nil
}
