package value

import (
	"cmp"
	"encoding"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"
	"sync"
)

// Of returns a Serializable describing an arbitrary Go value.
//
// Pointers and interfaces are followed, with nil producing None. Nil slices and maps
// also produce None. Byte slices are Bytes, other slices are sequences and arrays are
// tuples. Go maps are visited with their keys sorted so output is deterministic, while
// ordered maps such as *sequencedmap.Map keep their insertion order. Structs are
// visited using their `json` tags: the tag name renames a field, "-" skips it,
// omitempty drops empty values and embedded structs are flattened. Values
// implementing Serializable describe themselves and encoding.TextMarshaler values
// are strings. Channels, functions and complex numbers fail with ErrSerialization.
func Of(v any) Serializable {
	if val, ok := v.(Value); ok {
		return val
	}
	return reflected{rv: reflect.ValueOf(v)}
}

type reflected struct {
	rv reflect.Value
}

var _ Serializable = reflected{}

// orderedMap is satisfied by *sequencedmap.Map.
type orderedMap interface {
	Len() int
	AllUntyped() iter.Seq2[any, any]
}

var (
	serializableType  = reflect.TypeFor[Serializable]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
	orderedMapType    = reflect.TypeFor[orderedMap]()
)

func (r reflected) Serialize(s Serializer) error {
	rv := r.rv
	if !rv.IsValid() {
		return s.SerializeNone()
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return s.SerializeNone()
		}
	}

	if rv.CanInterface() {
		t := rv.Type()
		switch {
		case t.Implements(serializableType):
			return rv.Interface().(Serializable).Serialize(s)
		case t.Implements(orderedMapType):
			return serializeOrderedMap(rv.Interface().(orderedMap), s)
		case t.Implements(textMarshalerType):
			text, err := rv.Interface().(encoding.TextMarshaler).MarshalText()
			if err != nil {
				return ErrSerialization.Wrap(err)
			}
			return s.SerializeString(string(text))
		}
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return reflected{rv: rv.Elem()}.Serialize(s)
	case reflect.Bool:
		return s.SerializeBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return s.SerializeInteger(IntegerFromInt64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return s.SerializeInteger(IntegerFromUint64(rv.Uint()))
	case reflect.Float32:
		return s.SerializeFloat(rv.Float(), 32)
	case reflect.Float64:
		return s.SerializeFloat(rv.Float(), 64)
	case reflect.String:
		return s.SerializeString(rv.String())
	case reflect.Slice:
		if rv.IsNil() {
			return s.SerializeNone()
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return s.SerializeBytes(rv.Bytes())
		}
		return serializeElements(rv, ContainerSeq, s)
	case reflect.Array:
		return serializeElements(rv, ContainerTuple, s)
	case reflect.Map:
		if rv.IsNil() {
			return s.SerializeNone()
		}
		return serializeMap(rv, s)
	case reflect.Struct:
		return serializeStruct(rv, s)
	default:
		return ErrSerialization.Wrapf("unsupported type %s", rv.Type())
	}
}

func serializeElements(rv reflect.Value, kind ContainerKind, s Serializer) error {
	c, err := s.Begin(kind, rv.Len())
	if err != nil {
		return err
	}
	for i := 0; i < rv.Len(); i++ {
		if err := c.Element(reflected{rv: rv.Index(i)}); err != nil {
			return err
		}
	}
	return c.End()
}

func serializeMap(rv reflect.Value, s Serializer) error {
	keys := rv.MapKeys()
	slices.SortFunc(keys, compareKeys)

	c, err := s.Begin(ContainerMap, len(keys))
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := c.Key(reflected{rv: k}); err != nil {
			return err
		}
		if err := c.Value(reflected{rv: rv.MapIndex(k)}); err != nil {
			return err
		}
	}
	return c.End()
}

func serializeOrderedMap(m orderedMap, s Serializer) error {
	c, err := s.Begin(ContainerMap, m.Len())
	if err != nil {
		return err
	}
	for k, v := range m.AllUntyped() {
		if err := c.Key(Of(k)); err != nil {
			return err
		}
		if err := c.Value(Of(v)); err != nil {
			return err
		}
	}
	return c.End()
}

func compareKeys(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.String:
		return strings.Compare(a.String(), b.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	default:
		return strings.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	}
}

func serializeStruct(rv reflect.Value, s Serializer) error {
	type member struct {
		name string
		v    reflect.Value
	}

	fields := cachedFields(rv.Type())
	members := make([]member, 0, len(fields))
	for _, f := range fields {
		fv, ok := fieldByIndex(rv, f.index)
		if !ok {
			continue
		}
		if f.omitEmpty && isEmptyValue(fv) {
			continue
		}
		members = append(members, member{name: f.name, v: fv})
	}

	c, err := s.Begin(ContainerStruct, len(members))
	if err != nil {
		return err
	}
	for _, m := range members {
		if err := c.Field(m.name, reflected{rv: m.v}); err != nil {
			return err
		}
	}
	return c.End()
}

// fieldByIndex is reflect.Value.FieldByIndex that reports false when an embedded
// pointer on the path is nil.
func fieldByIndex(rv reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return reflect.Value{}, false
			}
			rv = rv.Elem()
		}
		rv = rv.Field(x)
	}
	return rv, true
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer,
		reflect.Struct:
		return v.IsZero()
	}
	return false
}

type structField struct {
	name      string
	index     []int
	depth     int
	omitEmpty bool
}

var fieldCache sync.Map // map[reflect.Type][]structField

func cachedFields(t reflect.Type) []structField {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]structField)
	}
	f, _ := fieldCache.LoadOrStore(t, typeFields(t))
	return f.([]structField)
}

// typeFields returns the visible fields of t in declaration order. A field hides any
// field of the same name that is embedded more deeply.
func typeFields(t reflect.Type) []structField {
	var all []structField
	collectFields(t, nil, map[reflect.Type]bool{}, &all)

	shallowest := map[string]int{}
	for _, f := range all {
		if d, ok := shallowest[f.name]; !ok || f.depth < d {
			shallowest[f.name] = f.depth
		}
	}

	seen := map[string]bool{}
	fields := make([]structField, 0, len(all))
	for _, f := range all {
		if f.depth != shallowest[f.name] || seen[f.name] {
			continue
		}
		seen[f.name] = true
		fields = append(fields, f)
	}
	return fields
}

func collectFields(t reflect.Type, parent []int, visiting map[reflect.Type]bool, out *[]structField) {
	if visiting[t] {
		return
	}
	visiting[t] = true
	defer delete(visiting, t)

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")

		index := append(slices.Clone(parent), i)

		if sf.Anonymous && name == "" {
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				collectFields(ft, index, visiting, out)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}

		*out = append(*out, structField{
			name:      name,
			index:     index,
			depth:     len(parent),
			omitEmpty: slices.Contains(strings.Split(opts, ","), "omitempty"),
		})
	}
}
