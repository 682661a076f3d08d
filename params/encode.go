package params

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Binding pairs a parameter with the value to render for it.
type Binding struct {
	Parameter *Parameter
	Value     any
}

// Option configures EncodeAll.
type Option func(o *options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger EncodeAll reports progress to.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// EncodeAll renders every binding concurrently, each into its own buffer, and joins
// the fragments with '&' in binding order. Fragments that render empty are skipped.
// It is meant for bindings sharing a query string or form body.
func EncodeAll(ctx context.Context, bindings []Binding, opts ...Option) (string, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	fragments := make([]string, len(bindings))

	g, ctx := errgroup.WithContext(ctx)
	for i, b := range bindings {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			fragment, err := b.Parameter.Encode(b.Value)
			if err != nil {
				name := ""
				if b.Parameter != nil {
					name = b.Parameter.Name
				}
				return fmt.Errorf("encoding parameter %q: %w", name, err)
			}

			o.logger.Debug("encoded parameter",
				zap.String("name", b.Parameter.Name),
				zap.Stringer("in", b.Parameter.In),
				zap.Stringer("style", b.Parameter.GetStyle()),
				zap.Int("length", len(fragment)),
			)
			fragments[i] = fragment
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, fragment := range fragments {
		if fragment == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(fragment)
	}
	return buf.String(), nil
}
