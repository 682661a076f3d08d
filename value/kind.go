package value

import "fmt"

// Kind identifies the variant held by a Value.
type Kind uint8

var _ fmt.Stringer = Kind(0)

const (
	// KindInvalid is the kind of the zero Value.
	KindInvalid Kind = iota
	KindBool
	KindInteger
	KindFloat
	KindChar
	KindString
	KindBytes
	KindNone
	KindSome
	KindUnit
	KindUnitStruct
	KindUnitVariant
	KindNewtypeStruct
	KindNewtypeVariant
	KindSeq
	KindTuple
	KindMap
	KindStruct
	KindStructVariant
)

var kindNames = [...]string{
	KindInvalid:        "invalid",
	KindBool:           "bool",
	KindInteger:        "integer",
	KindFloat:          "float",
	KindChar:           "char",
	KindString:         "string",
	KindBytes:          "bytes",
	KindNone:           "none",
	KindSome:           "some",
	KindUnit:           "unit",
	KindUnitStruct:     "unit struct",
	KindUnitVariant:    "unit variant",
	KindNewtypeStruct:  "newtype struct",
	KindNewtypeVariant: "newtype variant",
	KindSeq:            "sequence",
	KindTuple:          "tuple",
	KindMap:            "map",
	KindStruct:         "struct",
	KindStructVariant:  "struct variant",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ContainerKind identifies the compound shape a Serializer is asked to begin.
type ContainerKind uint8

var _ fmt.Stringer = ContainerKind(0)

const (
	ContainerSeq ContainerKind = iota
	ContainerTuple
	ContainerMap
	ContainerStruct
	ContainerStructVariant
)

func (c ContainerKind) String() string {
	switch c {
	case ContainerSeq:
		return "sequence"
	case ContainerTuple:
		return "tuple"
	case ContainerMap:
		return "map"
	case ContainerStruct:
		return "struct"
	case ContainerStructVariant:
		return "struct variant"
	default:
		return fmt.Sprintf("ContainerKind(%d)", uint8(c))
	}
}

// IsSequence reports whether elements of the container are visited with Container.Element.
func (c ContainerKind) IsSequence() bool {
	return c == ContainerSeq || c == ContainerTuple
}
