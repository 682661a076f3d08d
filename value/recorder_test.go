package value_test

import (
	"strconv"
	"strings"

	"github.com/speakeasy-api/querystyle/value"
)

// recorder renders the calls it receives as a compact trace such as
// `map{str(a):int(1)}` so tests can assert on the exact visit order.
type recorder struct {
	b strings.Builder
}

var _ value.Serializer = (*recorder)(nil)

func trace(v value.Serializable) (string, error) {
	r := &recorder{}
	err := v.Serialize(r)
	return r.b.String(), err
}

func (r *recorder) SerializeBool(v bool) error {
	r.b.WriteString("bool(" + strconv.FormatBool(v) + ")")
	return nil
}

func (r *recorder) SerializeInteger(v value.Integer) error {
	r.b.WriteString("int(" + v.String() + ")")
	return nil
}

func (r *recorder) SerializeFloat(v float64, bitSize int) error {
	r.b.WriteString("f" + strconv.Itoa(bitSize) + "(" + strconv.FormatFloat(v, 'g', -1, bitSize) + ")")
	return nil
}

func (r *recorder) SerializeChar(v rune) error {
	r.b.WriteString("char(" + string(v) + ")")
	return nil
}

func (r *recorder) SerializeString(v string) error {
	r.b.WriteString("str(" + v + ")")
	return nil
}

func (r *recorder) SerializeBytes(v []byte) error {
	r.b.WriteString("bytes(" + string(v) + ")")
	return nil
}

func (r *recorder) SerializeNone() error {
	r.b.WriteString("none")
	return nil
}

func (r *recorder) SerializeSome(v value.Serializable) error {
	r.b.WriteString("some(")
	if err := v.Serialize(r); err != nil {
		return err
	}
	r.b.WriteString(")")
	return nil
}

func (r *recorder) SerializeUnit() error {
	r.b.WriteString("unit")
	return nil
}

func (r *recorder) SerializeUnitStruct(name string) error {
	r.b.WriteString("unit " + name)
	return nil
}

func (r *recorder) SerializeUnitVariant(name, variant string) error {
	r.b.WriteString(name + "::" + variant)
	return nil
}

func (r *recorder) SerializeNewtypeStruct(name string, v value.Serializable) error {
	r.b.WriteString(name + "(")
	if err := v.Serialize(r); err != nil {
		return err
	}
	r.b.WriteString(")")
	return nil
}

func (r *recorder) SerializeNewtypeVariant(name, variant string, v value.Serializable) error {
	r.b.WriteString(name + "::" + variant + "(")
	if err := v.Serialize(r); err != nil {
		return err
	}
	r.b.WriteString(")")
	return nil
}

func (r *recorder) Begin(kind value.ContainerKind, _ int) (value.Container, error) {
	switch kind {
	case value.ContainerSeq:
		r.b.WriteString("seq")
	case value.ContainerTuple:
		r.b.WriteString("tuple")
	case value.ContainerMap:
		r.b.WriteString("map")
	case value.ContainerStruct:
		r.b.WriteString("struct")
	case value.ContainerStructVariant:
		r.b.WriteString("variant")
	}
	r.b.WriteString("{")
	return &recordingContainer{r: r}, nil
}

type recordingContainer struct {
	r     *recorder
	count int
}

func (c *recordingContainer) sep() {
	if c.count > 0 {
		c.r.b.WriteString(",")
	}
	c.count++
}

func (c *recordingContainer) Element(v value.Serializable) error {
	c.sep()
	return v.Serialize(c.r)
}

func (c *recordingContainer) Key(k value.Serializable) error {
	c.sep()
	return k.Serialize(c.r)
}

func (c *recordingContainer) Value(v value.Serializable) error {
	c.r.b.WriteString(":")
	return v.Serialize(c.r)
}

func (c *recordingContainer) Field(name string, v value.Serializable) error {
	c.sep()
	c.r.b.WriteString(name + ":")
	return v.Serialize(c.r)
}

func (c *recordingContainer) End() error {
	c.r.b.WriteString("}")
	return nil
}
