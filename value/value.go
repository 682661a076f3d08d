// Package value models the data that can be rendered into an OpenAPI parameter.
//
// A Value is a closed tagged union covering scalars, optional values, unit-like
// markers, newtype wrappers and the compound shapes (sequences, tuples, maps and
// structs). Values are immutable once constructed. Anything that is not a Value can
// still take part by implementing Serializable, and Of and FromYAML build
// Serializables from Go values and YAML documents.
package value

import (
	"math/big"

	"github.com/speakeasy-api/querystyle/sequencedmap"
)

// Value is a single node of the value model. The zero Value is invalid and fails to
// serialize.
type Value struct {
	kind Kind

	b       bool
	i       Integer
	f       float64
	bitSize int
	r       rune
	s       string
	bytes   []byte

	name    string
	variant string
	inner   *Value

	elems   []Value
	entries []Entry
	fields  []Field
}

// Entry is a single key and value pair of a map.
type Entry struct {
	Key   Value
	Value Value
}

// Field is a single named member of a struct.
type Field struct {
	Name  string
	Value Value
}

var _ Serializable = Value{}

// E returns the Entry k: v.
func E(k, v Value) Entry {
	return Entry{Key: k, Value: v}
}

// F returns the Field name: v.
func F(name string, v Value) Field {
	return Field{Name: name, Value: v}
}

// Bool returns a boolean Value.
func Bool(v bool) Value {
	return Value{kind: KindBool, b: v}
}

// Int returns an integer Value.
func Int(v int64) Value {
	return Value{kind: KindInteger, i: IntegerFromInt64(v)}
}

// Uint returns an integer Value.
func Uint(v uint64) Value {
	return Value{kind: KindInteger, i: IntegerFromUint64(v)}
}

// Integer128 returns an integer Value wrapping i.
func Integer128(i Integer) Value {
	return Value{kind: KindInteger, i: i}
}

// BigInt returns an integer Value for v, which must fit in 128 bits of magnitude.
func BigInt(v *big.Int) (Value, error) {
	i, err := IntegerFromBig(v)
	if err != nil {
		return Value{}, err
	}
	return Integer128(i), nil
}

// Float64 returns a double precision float Value.
func Float64(v float64) Value {
	return Value{kind: KindFloat, f: v, bitSize: 64}
}

// Float32 returns a single precision float Value.
func Float32(v float32) Value {
	return Value{kind: KindFloat, f: float64(v), bitSize: 32}
}

// Char returns a single character Value.
func Char(v rune) Value {
	return Value{kind: KindChar, r: v}
}

// String returns a text Value.
func String(v string) Value {
	return Value{kind: KindString, s: v}
}

// Bytes returns a byte string Value.
func Bytes(v []byte) Value {
	return Value{kind: KindBytes, bytes: v}
}

// None returns the absent optional Value.
func None() Value {
	return Value{kind: KindNone}
}

// Some returns a present optional Value wrapping v.
func Some(v Value) Value {
	return Value{kind: KindSome, inner: &v}
}

// Unit returns the Value carrying no data.
func Unit() Value {
	return Value{kind: KindUnit}
}

// UnitStruct returns a named Value carrying no data.
func UnitStruct(name string) Value {
	return Value{kind: KindUnitStruct, name: name}
}

// UnitVariant returns a data-less enumeration case.
func UnitVariant(name, variant string) Value {
	return Value{kind: KindUnitVariant, name: name, variant: variant}
}

// NewtypeStruct returns a named wrapper around v.
func NewtypeStruct(name string, v Value) Value {
	return Value{kind: KindNewtypeStruct, name: name, inner: &v}
}

// NewtypeVariant returns an enumeration case wrapping v.
func NewtypeVariant(name, variant string, v Value) Value {
	return Value{kind: KindNewtypeVariant, name: name, variant: variant, inner: &v}
}

// Seq returns a sequence of values.
func Seq(elems ...Value) Value {
	return Value{kind: KindSeq, elems: elems}
}

// Tuple returns a fixed length sequence of values.
func Tuple(elems ...Value) Value {
	return Value{kind: KindTuple, elems: elems}
}

// TupleStruct returns a named tuple. It is visited exactly like a Tuple.
func TupleStruct(name string, elems ...Value) Value {
	return Value{kind: KindTuple, name: name, elems: elems}
}

// TupleVariant returns an enumeration case holding a tuple. It is visited exactly like a Tuple.
func TupleVariant(name, variant string, elems ...Value) Value {
	return Value{kind: KindTuple, name: name, variant: variant, elems: elems}
}

// Map returns an ordered map. Entries are visited in the order given.
func Map(entries ...Entry) Value {
	return Value{kind: KindMap, entries: entries}
}

// MapOf returns an ordered map with string keys built from m, visited in insertion order.
func MapOf(m *sequencedmap.Map[string, Value]) Value {
	entries := make([]Entry, 0, m.Len())
	for k, v := range m.All() {
		entries = append(entries, E(String(k), v))
	}
	return Map(entries...)
}

// Struct returns a record with named fields. Fields are visited in the order given.
func Struct(name string, fields ...Field) Value {
	return Value{kind: KindStruct, name: name, fields: fields}
}

// StructVariant returns an enumeration case holding named fields.
func StructVariant(name, variant string, fields ...Field) Value {
	return Value{kind: KindStructVariant, name: name, variant: variant, fields: fields}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsValid reports whether v was built by one of the constructors.
func (v Value) IsValid() bool {
	return v.kind != KindInvalid
}

// Len returns the number of members of a compound value and zero otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindSeq, KindTuple:
		return len(v.elems)
	case KindMap:
		return len(v.entries)
	case KindStruct, KindStructVariant:
		return len(v.fields)
	default:
		return 0
	}
}

// Serialize describes v to s.
func (v Value) Serialize(s Serializer) error {
	switch v.kind {
	case KindBool:
		return s.SerializeBool(v.b)
	case KindInteger:
		return s.SerializeInteger(v.i)
	case KindFloat:
		return s.SerializeFloat(v.f, v.bitSize)
	case KindChar:
		return s.SerializeChar(v.r)
	case KindString:
		return s.SerializeString(v.s)
	case KindBytes:
		return s.SerializeBytes(v.bytes)
	case KindNone:
		return s.SerializeNone()
	case KindSome:
		return s.SerializeSome(*v.inner)
	case KindUnit:
		return s.SerializeUnit()
	case KindUnitStruct:
		return s.SerializeUnitStruct(v.name)
	case KindUnitVariant:
		return s.SerializeUnitVariant(v.name, v.variant)
	case KindNewtypeStruct:
		return s.SerializeNewtypeStruct(v.name, *v.inner)
	case KindNewtypeVariant:
		return s.SerializeNewtypeVariant(v.name, v.variant, *v.inner)
	case KindSeq, KindTuple:
		kind := ContainerSeq
		if v.kind == KindTuple {
			kind = ContainerTuple
		}
		c, err := s.Begin(kind, len(v.elems))
		if err != nil {
			return err
		}
		for _, e := range v.elems {
			if err := c.Element(e); err != nil {
				return err
			}
		}
		return c.End()
	case KindMap:
		c, err := s.Begin(ContainerMap, len(v.entries))
		if err != nil {
			return err
		}
		for _, e := range v.entries {
			if err := c.Key(e.Key); err != nil {
				return err
			}
			if err := c.Value(e.Value); err != nil {
				return err
			}
		}
		return c.End()
	case KindStruct, KindStructVariant:
		kind := ContainerStruct
		if v.kind == KindStructVariant {
			kind = ContainerStructVariant
		}
		c, err := s.Begin(kind, len(v.fields))
		if err != nil {
			return err
		}
		for _, f := range v.fields {
			if err := c.Field(f.Name, f.Value); err != nil {
				return err
			}
		}
		return c.End()
	default:
		return ErrSerialization.Wrapf("cannot serialize %s value", v.kind)
	}
}

