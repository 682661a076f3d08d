// Package style holds what the OpenAPI parameter style encoders share: the style names,
// the error kinds they report, the traversal state machine that enforces a single level
// of nesting, and the scalar text formatting.
//
// The encoders themselves live in the simple, form, deepobject and deepform
// sub-packages.
package style

import (
	"fmt"
	"slices"

	"github.com/speakeasy-api/querystyle/errors"
)

const (
	// ErrUnsupportedNesting is returned when a container is found inside another
	// container, or when a value that is only legal at the top level appears inside one.
	ErrUnsupportedNesting = errors.Error("nested containers not supported")
	// ErrUnsupportedValue is returned when a value shape has no representation in a
	// style, including containers with no members.
	ErrUnsupportedValue = errors.Error("unsupported value")
)

// SerializationStyle represents the serialization style of a parameter.
type SerializationStyle string

var _ fmt.Stringer = (*SerializationStyle)(nil)

const (
	// SerializationStyleSimple represents simple style parameters defined by RFC6570. Valid for path and header parameters.
	SerializationStyleSimple SerializationStyle = "simple"
	// SerializationStyleForm represents form style parameters defined by RFC6570. Valid for query and cookie parameters.
	SerializationStyleForm SerializationStyle = "form"
	// SerializationStyleLabel represents label style parameters defined by RFC6570. Valid for path parameters.
	SerializationStyleLabel SerializationStyle = "label"
	// SerializationStyleMatrix represents matrix style parameters defined by RFC6570. Valid for path parameters.
	SerializationStyleMatrix SerializationStyle = "matrix"
	// SerializationStyleSpaceDelimited represents space-delimited style parameters. Valid for query parameters.
	SerializationStyleSpaceDelimited SerializationStyle = "spaceDelimited"
	// SerializationStylePipeDelimited represents pipe-delimited style parameters. Valid for query parameters.
	SerializationStylePipeDelimited SerializationStyle = "pipeDelimited"
	// SerializationStyleDeepObject represents deep object style parameters. Valid for query parameters.
	SerializationStyleDeepObject SerializationStyle = "deepObject"
	// SerializationStyleDeepForm renders a form body whose selected object fields use deepObject
	// notation. It is not an OpenAPI style and is only produced by this module.
	SerializationStyleDeepForm SerializationStyle = "deepForm"
)

// Styles lists every recognized style name.
var Styles = []SerializationStyle{
	SerializationStyleSimple,
	SerializationStyleForm,
	SerializationStyleLabel,
	SerializationStyleMatrix,
	SerializationStyleSpaceDelimited,
	SerializationStylePipeDelimited,
	SerializationStyleDeepObject,
	SerializationStyleDeepForm,
}

// Rendered lists the styles that have an encoder.
var Rendered = []SerializationStyle{
	SerializationStyleSimple,
	SerializationStyleForm,
	SerializationStyleDeepObject,
	SerializationStyleDeepForm,
}

func (s SerializationStyle) String() string {
	return string(s)
}

// IsRendered reports whether s has an encoder.
func (s SerializationStyle) IsRendered() bool {
	return slices.Contains(Rendered, s)
}
