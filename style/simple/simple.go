// Package simple renders values in the OpenAPI `simple` style used for path and header
// parameters.
//
// Scalars render as their escaped text without a parameter name. Sequences and tuples
// render as comma separated items. Maps and structs render as `key,value,key,value`, or
// as `key=value,key=value` when exploded. Optional and unit values have no simple
// representation.
package simple

import (
	"strings"

	"github.com/speakeasy-api/querystyle/escape"
	"github.com/speakeasy-api/querystyle/style"
	"github.com/speakeasy-api/querystyle/value"
)

// ToString renders v into a new string.
func ToString(v any, explode bool, esc escape.Func) (string, error) {
	var buf strings.Builder
	if err := Extend(&buf, v, explode, esc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Extend appends the rendering of v to buf. On error buf may hold a partial rendering.
func Extend(buf *strings.Builder, v any, explode bool, esc escape.Func) error {
	e := &encoder{w: style.NewWriter(buf, esc), explode: explode}
	return value.Of(v).Serialize(e)
}

type encoder struct {
	w       style.Writer
	explode bool
	state   style.State
}

var (
	_ value.Serializer = (*encoder)(nil)
	_ value.Container  = (*encoder)(nil)
)

func (e *encoder) SerializeBool(v bool) error {
	return e.SerializeString(style.FormatBool(v))
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
	e.w.Escaped(v)
	return nil
}

func (e *encoder) SerializeBytes(v []byte) error {
	return style.SerializeBytes(e, v)
}

func (e *encoder) SerializeNone() error {
	return style.ErrUnsupportedValue
}

func (e *encoder) SerializeSome(value.Serializable) error {
	return style.ErrUnsupportedValue
}

func (e *encoder) SerializeUnit() error {
	return style.ErrUnsupportedValue
}

func (e *encoder) SerializeUnitStruct(string) error {
	return style.ErrUnsupportedValue
}

func (e *encoder) SerializeUnitVariant(string, string) error {
	return style.ErrUnsupportedValue
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
	if !e.state.Next() {
		e.w.Delim(",")
	}
	return v.Serialize(e)
}

func (e *encoder) Key(k value.Serializable) error {
	return e.Element(k)
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
