package value

import "github.com/speakeasy-api/querystyle/errors"

// ErrSerialization is returned by a producer that cannot describe its value, or by a
// Serializable that fails for its own reasons. Encoders pass it through unchanged.
const ErrSerialization = errors.Error("serialization error")

// Serializable is implemented by anything that can describe itself to a Serializer.
//
// A Serializable is driven exactly once per call and must not retain the Serializer
// or any Container it is handed.
type Serializable interface {
	Serialize(s Serializer) error
}

// SerializableFunc adapts a function to the Serializable interface.
type SerializableFunc func(s Serializer) error

var _ Serializable = SerializableFunc(nil)

// Serialize calls f(s).
func (f SerializableFunc) Serialize(s Serializer) error {
	return f(s)
}

// Serializer is the consumer side of the value model. Each method is called once per
// value; compound values are described by a Container obtained from Begin.
type Serializer interface {
	SerializeBool(v bool) error
	SerializeInteger(v Integer) error
	// SerializeFloat receives the value and its source precision, 32 or 64 bits.
	SerializeFloat(v float64, bitSize int) error
	SerializeChar(v rune) error
	SerializeString(v string) error
	SerializeBytes(v []byte) error
	SerializeNone() error
	SerializeSome(v Serializable) error
	SerializeUnit() error
	SerializeUnitStruct(name string) error
	SerializeUnitVariant(name, variant string) error
	SerializeNewtypeStruct(name string, v Serializable) error
	SerializeNewtypeVariant(name, variant string, v Serializable) error

	// Begin opens a compound value. sizeHint is the number of members when known,
	// otherwise -1.
	Begin(kind ContainerKind, sizeHint int) (Container, error)
}

// Container receives the members of one compound value followed by a single call to End.
//
// Sequences and tuples use Element, maps use Key followed by Value for each entry, and
// structs and struct variants use Field.
type Container interface {
	Element(v Serializable) error
	Key(k Serializable) error
	Value(v Serializable) error
	Field(name string, v Serializable) error
	End() error
}
