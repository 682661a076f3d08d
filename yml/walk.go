package yml

import (
	"context"

	"github.com/speakeasy-api/querystyle/errors"
	"gopkg.in/yaml.v3"
)

const (
	// ErrTerminate is a sentinel error that can be returned from a Walk function to terminate the walk.
	ErrTerminate = errors.Error("terminate")
)

// VisitFunc is called for each node of a walk with the node, its parent and the
// nesting depth of the node below the root.
type VisitFunc func(ctx context.Context, node, parent *yaml.Node, depth int) error

// Walk visits node and everything below it depth first. Alias nodes are visited and
// then followed, so an aliased subtree is visited once per reference.
func Walk(ctx context.Context, node *yaml.Node, visit VisitFunc) error {
	if err := walkNode(ctx, node, nil, 0, visit); err != nil {
		if errors.Is(err, ErrTerminate) {
			return nil
		}
		return err
	}
	return nil
}

func walkNode(ctx context.Context, node, parent *yaml.Node, depth int, visit VisitFunc) error {
	if node == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := visit(ctx, node, parent, depth); err != nil {
		return err
	}

	if node.Kind == yaml.AliasNode {
		return walkNode(ctx, node.Alias, node, depth, visit)
	}
	for _, child := range node.Content {
		if err := walkNode(ctx, child, node, depth+1, visit); err != nil {
			return err
		}
	}
	return nil
}
