package style

import (
	"strings"

	"github.com/speakeasy-api/querystyle/escape"
	"github.com/speakeasy-api/querystyle/value"
)

// Writer appends encoder output to a caller owned buffer, escaping names and values
// with one policy while leaving style delimiters untouched.
type Writer struct {
	Buf    *strings.Builder
	Escape escape.Func
}

// NewWriter returns a Writer appending to buf. A nil policy escapes nothing.
func NewWriter(buf *strings.Builder, esc escape.Func) Writer {
	if esc == nil {
		esc = escape.Passthrough
	}
	return Writer{Buf: buf, Escape: esc}
}

// Escaped appends s after applying the escaping policy.
func (w Writer) Escaped(s string) {
	for chunk := range w.Escape(s) {
		w.Buf.WriteString(chunk)
	}
}

// Delim appends a delimiter verbatim.
func (w Writer) Delim(d string) {
	w.Buf.WriteString(d)
}

// SerializeBytes describes b to s as a sequence of its byte values.
func SerializeBytes(s value.Serializer, b []byte) error {
	c, err := s.Begin(value.ContainerSeq, len(b))
	if err != nil {
		return err
	}
	for _, x := range b {
		if err := c.Element(value.Uint(uint64(x))); err != nil {
			return err
		}
	}
	return c.End()
}
