// Package form renders values in the OpenAPI `form` style used for query and cookie
// parameters, and for application/x-www-form-urlencoded bodies.
//
// Without explode, the parameter name appears once: sequences render as
// `name=item1,item2` and maps and structs as `name=key1,value1,key2,value2`. With
// explode, sequences repeat the name (`name=item1&name=item2`) and maps and structs
// drop it (`key1=value1&key2=value2`). Booleans have no form representation.
package form

import (
	"strings"

	"github.com/speakeasy-api/querystyle/escape"
	"github.com/speakeasy-api/querystyle/style"
	"github.com/speakeasy-api/querystyle/value"
)

// ToString renders v into a new string.
func ToString(name string, v any, explode bool, esc escape.Func) (string, error) {
	var buf strings.Builder
	if err := Extend(&buf, name, v, explode, esc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Extend appends the rendering of v to buf, allowing several parameters to be joined
// into one query string. On error buf may hold a partial rendering.
func Extend(buf *strings.Builder, name string, v any, explode bool, esc escape.Func) error {
	e := &encoder{w: style.NewWriter(buf, esc), name: name, explode: explode}
	return value.Of(v).Serialize(e)
}

type encoder struct {
	w       style.Writer
	name    string
	explode bool
	state   style.State
}

var (
	_ value.Serializer = (*encoder)(nil)
	_ value.Container  = (*encoder)(nil)
)

func (e *encoder) writeName() {
	e.w.Escaped(e.name)
	e.w.Delim("=")
}

func (e *encoder) SerializeBool(bool) error {
	return style.ErrUnsupportedValue
}

func (e *encoder) SerializeInteger(v value.Integer) error {
	return e.SerializeString(style.FormatInteger(v))
}

func (e *encoder) SerializeFloat(v float64, bitSize int) error {
	return e.SerializeString(style.FormatFloat(v, bitSize))
}

func (e *encoder) SerializeChar(v rune) error {
	return e.SerializeString(string(v))
}

func (e *encoder) SerializeString(v string) error {
	if e.state.IsOuter() {
		e.writeName()
	}
	e.w.Escaped(v)
	return nil
}

func (e *encoder) SerializeBytes(v []byte) error {
	return style.SerializeBytes(e, v)
}

// empty renders `name=` for valueless top-level parameters.
func (e *encoder) empty() error {
	if !e.state.IsOuter() {
		return style.ErrUnsupportedNesting
	}
	return e.SerializeString("")
}

func (e *encoder) SerializeNone() error {
	return e.empty()
}

func (e *encoder) SerializeSome(v value.Serializable) error {
	if !e.state.IsOuter() {
		return style.ErrUnsupportedNesting
	}
	return v.Serialize(e)
}

func (e *encoder) SerializeUnit() error {
	return e.empty()
}

func (e *encoder) SerializeUnitStruct(string) error {
	return e.empty()
}

func (e *encoder) SerializeUnitVariant(string, string) error {
	return e.empty()
}

func (e *encoder) SerializeNewtypeStruct(_ string, v value.Serializable) error {
	return v.Serialize(e)
}

func (e *encoder) SerializeNewtypeVariant(_, _ string, v value.Serializable) error {
	return v.Serialize(e)
}

func (e *encoder) Begin(value.ContainerKind, int) (value.Container, error) {
	if err := e.state.Enter(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *encoder) Element(v value.Serializable) error {
	switch {
	case e.state.Next():
		e.writeName()
	case e.explode:
		e.w.Delim("&")
		e.writeName()
	default:
		e.w.Delim(",")
	}
	return v.Serialize(e)
}

func (e *encoder) Key(k value.Serializable) error {
	switch {
	case e.state.Next():
		if !e.explode {
			e.writeName()
		}
	case e.explode:
		e.w.Delim("&")
	default:
		e.w.Delim(",")
	}
	return k.Serialize(e)
}

func (e *encoder) Value(v value.Serializable) error {
	if e.explode {
		e.w.Delim("=")
	} else {
		e.w.Delim(",")
	}
	return v.Serialize(e)
}

func (e *encoder) Field(name string, v value.Serializable) error {
	if err := e.Key(value.String(name)); err != nil {
		return err
	}
	return e.Value(v)
}

func (e *encoder) End() error {
	return e.state.Close()
}
