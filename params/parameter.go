// Package params binds values to OpenAPI style parameter declarations and renders them
// with the encoder their location and style call for.
package params

import (
	"fmt"
	"slices"
	"strings"

	"github.com/speakeasy-api/querystyle/errors"
	"github.com/speakeasy-api/querystyle/escape"
	"github.com/speakeasy-api/querystyle/pointer"
	"github.com/speakeasy-api/querystyle/style"
	"github.com/speakeasy-api/querystyle/style/deepform"
	"github.com/speakeasy-api/querystyle/style/deepobject"
	"github.com/speakeasy-api/querystyle/style/form"
	"github.com/speakeasy-api/querystyle/style/simple"
)

const (
	// ErrUnsupportedStyle is returned for a style with no encoder, or one not valid for the location.
	ErrUnsupportedStyle = errors.Error("unsupported parameter style")
	// ErrMissingName is returned when a style that writes the parameter name is given none.
	ErrMissingName = errors.Error("parameter name is required")
	// ErrUnknownLocation is returned for a location outside ParameterIn's values.
	ErrUnknownLocation = errors.Error("unknown parameter location")
)

// ParameterIn represents the location of a parameter that is passed in the request.
type ParameterIn string

var _ fmt.Stringer = (*ParameterIn)(nil)

func (p ParameterIn) String() string {
	return string(p)
}

const (
	// ParameterInQuery represents the location of a parameter that is passed in the query string.
	ParameterInQuery ParameterIn = "query"
	// ParameterInHeader represents the location of a parameter that is passed in the header.
	ParameterInHeader ParameterIn = "header"
	// ParameterInPath represents the location of a parameter that is passed in the path.
	ParameterInPath ParameterIn = "path"
	// ParameterInCookie represents the location of a parameter that is passed in the cookie.
	ParameterInCookie ParameterIn = "cookie"
	// ParameterInBody represents a field of an application/x-www-form-urlencoded request body.
	ParameterInBody ParameterIn = "body"
)

// DefaultStyle returns the style used for the location when none is set.
func (p ParameterIn) DefaultStyle() style.SerializationStyle {
	switch p {
	case ParameterInHeader, ParameterInPath:
		return style.SerializationStyleSimple
	case ParameterInQuery, ParameterInCookie, ParameterInBody:
		return style.SerializationStyleForm
	default:
		return ""
	}
}

// Locations lists every supported location in request order.
var Locations = []ParameterIn{
	ParameterInPath,
	ParameterInQuery,
	ParameterInHeader,
	ParameterInCookie,
	ParameterInBody,
}

// Parameter describes how a single value is placed in a request.
type Parameter struct {
	// Name is written into query, cookie and body renderings. Simple style ignores it.
	Name string `mapstructure:"name" yaml:"name"`
	// In is the location of the parameter.
	In ParameterIn `mapstructure:"in" yaml:"in"`
	// Style overrides the location's default style.
	Style *style.SerializationStyle `mapstructure:"style" yaml:"style,omitempty"`
	// Explode overrides the style's default explode setting.
	Explode *bool `mapstructure:"explode" yaml:"explode,omitempty"`
	// AllowReserved leaves RFC3986 reserved characters unescaped in query parameters.
	AllowReserved bool `mapstructure:"allowReserved" yaml:"allowReserved,omitempty"`
	// DeepFields names the struct fields deepForm renders in deepObject notation.
	DeepFields []string `mapstructure:"deepFields" yaml:"deepFields,omitempty"`
	// Normalize converts text to Unicode Normalization Form C before escaping.
	Normalize bool `mapstructure:"normalize" yaml:"normalize,omitempty"`
}

// GetStyle returns the value of the Style field. Defaults determined by the In field.
//
// Defaults:
//   - ParameterInQuery: SerializationStyleForm
//   - ParameterInHeader: SerializationStyleSimple
//   - ParameterInPath: SerializationStyleSimple
//   - ParameterInCookie: SerializationStyleForm
//   - ParameterInBody: SerializationStyleForm
func (p *Parameter) GetStyle() style.SerializationStyle {
	if p == nil {
		return ""
	}
	return pointer.ValueOr(p.Style, p.In.DefaultStyle())
}

// GetExplode returns the value of the Explode field. When style is "form" default is true otherwise false.
func (p *Parameter) GetExplode() bool {
	if p == nil {
		return false
	}
	return pointer.ValueOr(p.Explode, p.GetStyle() == style.SerializationStyleForm)
}

// GetEscaper returns the escaping policy for the parameter's location, wrapped with
// escape.NFC when Normalize is set.
func (p *Parameter) GetEscaper() escape.Func {
	if p == nil {
		return escape.Passthrough
	}
	esc := p.locationEscaper()
	if p.Normalize {
		return escape.NFC(esc)
	}
	return esc
}

func (p *Parameter) locationEscaper() escape.Func {
	switch p.In {
	case ParameterInPath:
		return escape.Path
	case ParameterInQuery:
		if p.AllowReserved {
			return escape.QueryAllowReserved
		}
		return escape.Query
	case ParameterInBody:
		return escape.WWWFormURLEncoded
	default:
		return escape.Passthrough
	}
}

// Validate reports whether the parameter can be rendered.
func (p *Parameter) Validate() error {
	if p == nil {
		return ErrMissingName
	}
	if !slices.Contains(Locations, p.In) {
		return ErrUnknownLocation.Wrapf("%q", p.In)
	}

	s := p.GetStyle()
	if !s.IsRendered() {
		return ErrUnsupportedStyle.Wrapf("%q", s)
	}
	if s == style.SerializationStyleDeepObject && p.In != ParameterInQuery {
		return ErrUnsupportedStyle.Wrapf("%s is only valid in query, got %s", s, p.In)
	}
	if s == style.SerializationStyleDeepForm && p.In != ParameterInBody && p.In != ParameterInQuery {
		return ErrUnsupportedStyle.Wrapf("%s is only valid in query or body, got %s", s, p.In)
	}

	if p.Name == "" && s != style.SerializationStyleSimple {
		return ErrMissingName.Wrapf("%s parameter in %s", s, p.In)
	}
	return nil
}

// Encode renders v as the parameter's fragment.
func (p *Parameter) Encode(v any) (string, error) {
	var buf strings.Builder
	if err := p.Extend(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Extend appends the parameter's fragment for v to buf. On error buf may hold a
// partial rendering.
func (p *Parameter) Extend(buf *strings.Builder, v any) error {
	if err := p.Validate(); err != nil {
		return err
	}

	esc := p.GetEscaper()
	switch s := p.GetStyle(); s {
	case style.SerializationStyleSimple:
		return simple.Extend(buf, v, p.GetExplode(), esc)
	case style.SerializationStyleForm:
		return form.Extend(buf, p.Name, v, p.GetExplode(), esc)
	case style.SerializationStyleDeepObject:
		return deepobject.Extend(buf, p.Name, v, esc)
	case style.SerializationStyleDeepForm:
		return deepform.Extend(buf, p.Name, v, esc, deepform.NewFields(p.DeepFields...))
	default:
		return ErrUnsupportedStyle.Wrapf("%q", s)
	}
}
