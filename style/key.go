package style

import (
	"github.com/speakeasy-api/querystyle/value"
)

// Key is a map key read once into a value, so an encoder can inspect its text before
// deciding how to render it. Serialize replays the recorded value without reading the
// original key again.
type Key struct {
	value.Value
	text   string
	isText bool
}

// Text returns the key's text when it is a string or a character.
func (k Key) Text() (string, bool) {
	return k.text, k.isText
}

// CaptureKey reads k once, looking through newtype wrappers. Scalars, bytes, None and
// the unit forms are recorded as they are. Some and containers cannot be map keys in
// any style and report ErrUnsupportedNesting.
func CaptureKey(k value.Serializable) (Key, error) {
	var c keyCapture
	if err := k.Serialize(&c); err != nil {
		return Key{}, err
	}
	return c.key, nil
}

type keyCapture struct {
	key Key
}

var _ value.Serializer = (*keyCapture)(nil)

func (c *keyCapture) SerializeString(v string) error {
	c.key = Key{Value: value.String(v), text: v, isText: true}
	return nil
}

func (c *keyCapture) SerializeChar(v rune) error {
	c.key = Key{Value: value.Char(v), text: string(v), isText: true}
	return nil
}

func (c *keyCapture) SerializeBool(v bool) error {
	c.key = Key{Value: value.Bool(v)}
	return nil
}

func (c *keyCapture) SerializeInteger(v value.Integer) error {
	c.key = Key{Value: value.Integer128(v)}
	return nil
}

func (c *keyCapture) SerializeFloat(v float64, bitSize int) error {
	if bitSize == 32 {
		c.key = Key{Value: value.Float32(float32(v))}
		return nil
	}
	c.key = Key{Value: value.Float64(v)}
	return nil
}

func (c *keyCapture) SerializeBytes(v []byte) error {
	c.key = Key{Value: value.Bytes(v)}
	return nil
}

func (c *keyCapture) SerializeNone() error {
	c.key = Key{Value: value.None()}
	return nil
}

func (c *keyCapture) SerializeSome(value.Serializable) error {
	return ErrUnsupportedNesting
}

func (c *keyCapture) SerializeUnit() error {
	c.key = Key{Value: value.Unit()}
	return nil
}

func (c *keyCapture) SerializeUnitStruct(name string) error {
	c.key = Key{Value: value.UnitStruct(name)}
	return nil
}

func (c *keyCapture) SerializeUnitVariant(name, variant string) error {
	c.key = Key{Value: value.UnitVariant(name, variant)}
	return nil
}

func (c *keyCapture) SerializeNewtypeStruct(_ string, v value.Serializable) error {
	return v.Serialize(c)
}

func (c *keyCapture) SerializeNewtypeVariant(_, _ string, v value.Serializable) error {
	return v.Serialize(c)
}

func (c *keyCapture) Begin(value.ContainerKind, int) (value.Container, error) {
	return nil, ErrUnsupportedNesting
}
