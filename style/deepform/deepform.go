// Package deepform renders a form body in which chosen object fields are written in
// deepObject notation.
//
// Sequences are always exploded (`name=a&name=b`). Maps and structs render as
// `key=value` pairs joined by `&`, except that a struct field or a string map key
// named in the deep set is rendered by the deepobject encoder with that name as the
// object name, giving `field[key]=value` pairs. Unlike form, booleans are allowed.
package deepform

import (
	"strings"

	"github.com/speakeasy-api/querystyle/escape"
	"github.com/speakeasy-api/querystyle/style"
	"github.com/speakeasy-api/querystyle/style/deepobject"
	"github.com/speakeasy-api/querystyle/value"
)

// Fields is a set of struct field names rendered in deepObject notation.
// A nil Fields is empty.
type Fields map[string]struct{}

// NewFields returns the set of names.
func NewFields(names ...string) Fields {
	f := make(Fields, len(names))
	for _, name := range names {
		f[name] = struct{}{}
	}
	return f
}

// Contains reports whether name is in the set.
func (f Fields) Contains(name string) bool {
	_, ok := f[name]
	return ok
}

// ToString renders v into a new string.
func ToString(name string, v any, esc escape.Func, deep Fields) (string, error) {
	var buf strings.Builder
	if err := Extend(&buf, name, v, esc, deep); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Extend appends the rendering of v to buf. On error buf may hold a partial rendering.
func Extend(buf *strings.Builder, name string, v any, esc escape.Func, deep Fields) error {
	e := &encoder{w: style.NewWriter(buf, esc), name: name, deep: deep}
	return value.Of(v).Serialize(e)
}

type encoder struct {
	w     style.Writer
	name  string
	deep  Fields
	state style.State
	// pending is set when the last key named a deep member, held in pendingName.
	pending     bool
	pendingName string
}

var (
	_ value.Serializer = (*encoder)(nil)
	_ value.Container  = (*encoder)(nil)
)

func (e *encoder) writeName() {
	e.w.Escaped(e.name)
	e.w.Delim("=")
}

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
		e.writeName()
	}
	e.w.Escaped(v)
	return nil
}

func (e *encoder) SerializeBytes(v []byte) error {
	return style.SerializeBytes(e, v)
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

func (e *encoder) Begin(value.ContainerKind, int) (value.Container, error) {
	if err := e.state.Enter(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *encoder) Element(v value.Serializable) error {
	if !e.state.Next() {
		e.w.Delim("&")
	}
	e.writeName()
	return v.Serialize(e)
}

func (e *encoder) Key(k value.Serializable) error {
	if !e.state.Next() {
		e.w.Delim("&")
	}
	if len(e.deep) == 0 {
		return k.Serialize(e)
	}

	key, err := style.CaptureKey(k)
	if err != nil {
		return err
	}
	if name, ok := key.Text(); ok && e.deep.Contains(name) {
		e.pending, e.pendingName = true, name
		return nil
	}
	return key.Serialize(e)
}

func (e *encoder) Value(v value.Serializable) error {
	if e.pending {
		name := e.pendingName
		e.pending, e.pendingName = false, ""
		return deepobject.Extend(e.w.Buf, name, v, e.w.Escape)
	}
	e.w.Delim("=")
	return v.Serialize(e)
}

func (e *encoder) Field(name string, v value.Serializable) error {
	if !e.deep.Contains(name) {
		if err := e.Key(value.String(name)); err != nil {
			return err
		}
		return e.Value(v)
	}

	if !e.state.Next() {
		e.w.Delim("&")
	}
	return deepobject.Extend(e.w.Buf, name, v, e.w.Escape)
}

func (e *encoder) End() error {
	return e.state.Close()
}
