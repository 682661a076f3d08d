// Package deepobject renders values in the OpenAPI `deepObject` style, where each
// member of an object becomes its own `name[key]=value` query pair.
//
// Only maps, structs and struct variants are objects. Sequences, tuples and byte
// strings cannot be represented. A scalar at the top level degenerates to the
// `name=value` pair that form would produce.
package deepobject

import (
	"strings"

	"github.com/speakeasy-api/querystyle/escape"
	"github.com/speakeasy-api/querystyle/style"
	"github.com/speakeasy-api/querystyle/value"
)

// ToString renders v into a new string.
func ToString(name string, v any, esc escape.Func) (string, error) {
	var buf strings.Builder
	if err := Extend(&buf, name, v, esc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Extend appends the rendering of v to buf. On error buf may hold a partial rendering.
func Extend(buf *strings.Builder, name string, v any, esc escape.Func) error {
	e := &encoder{w: style.NewWriter(buf, esc), name: name}
	return value.Of(v).Serialize(e)
}

type encoder struct {
	w     style.Writer
	name  string
	state style.State
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
	if e.state.IsOuter() {
		e.w.Escaped(e.name)
		e.w.Delim("=")
	}
	e.w.Escaped(v)
	return nil
}

func (e *encoder) SerializeBytes([]byte) error {
	return style.ErrUnsupportedValue
}

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

func (e *encoder) Begin(kind value.ContainerKind, _ int) (value.Container, error) {
	if kind.IsSequence() {
		if !e.state.IsOuter() {
			return nil, style.ErrUnsupportedNesting
		}
		return nil, style.ErrUnsupportedValue
	}
	if err := e.state.Enter(); err != nil {
		return nil, err
	}
	return e, nil
}

// Element is never reached as sequences are rejected by Begin.
func (e *encoder) Element(value.Serializable) error {
	return style.ErrUnsupportedValue
}

func (e *encoder) open() {
	if !e.state.Next() {
		e.w.Delim("&")
	}
	e.w.Escaped(e.name)
	e.w.Delim("[")
}

func (e *encoder) Key(k value.Serializable) error {
	e.open()
	return k.Serialize(e)
}

func (e *encoder) Value(v value.Serializable) error {
	e.w.Delim("]=")
	return v.Serialize(e)
}

func (e *encoder) Field(name string, v value.Serializable) error {
	e.open()
	e.w.Escaped(name)
	return e.Value(v)
}

func (e *encoder) End() error {
	return e.state.Close()
}
