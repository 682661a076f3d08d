// Package escape provides the character escaping policies used by the style encoders.
//
// A policy is a Func that maps a string to a sequence of fragments whose concatenation
// is the escaped text. Runs of characters that need no escaping are yielded as
// sub-strings of the input so that encoders can copy them without allocating.
package escape

import (
	"iter"

	"golang.org/x/text/unicode/norm"
)

// Func is an escaping policy.
type Func func(s string) iter.Seq[string]

const upperHex = "0123456789ABCDEF"

// percentEncoded holds the "%XX" text for every byte value.
var percentEncoded = func() [256]string {
	var table [256]string
	for i := range table {
		table[i] = string([]byte{'%', upperHex[i>>4], upperHex[i&0x0f]})
	}
	return table
}()

// Encode returns a policy that percent-encodes every byte of its input that is a member of set,
// along with every non-ASCII byte.
func Encode(set Set) Func {
	return func(s string) iter.Seq[string] {
		return func(yield func(string) bool) {
			start := 0
			for i := 0; i < len(s); i++ {
				if !set.ShouldEncode(s[i]) {
					continue
				}
				if start < i && !yield(s[start:i]) {
					return
				}
				if !yield(percentEncoded[s[i]]) {
					return
				}
				start = i + 1
			}
			if start < len(s) {
				yield(s[start:])
			}
		}
	}
}

var (
	// Path encodes a string to allow it to be added to a URL path.
	Path = Encode(PathSet)

	// Query encodes a string to allow it to be added to a URL query.
	Query = Encode(QuerySet)

	// QueryAllowReserved encodes a string to allow it to be added to a URL query, leaving
	// reserved characters unencoded. As `&` and `#` pass through it should only be used when
	// the query carries a single parameter.
	QueryAllowReserved = Encode(QueryAllowReservedSet)

	// WWWFormURLEncoded encodes a string to allow it to be added to an
	// application/x-www-form-urlencoded body.
	WWWFormURLEncoded = Encode(WWWFormSet)
)

// Passthrough does not encode any characters.
func Passthrough(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if s != "" {
			yield(s)
		}
	}
}

// NFC wraps a policy so its input is converted to Unicode Normalization Form C first,
// making canonically equivalent strings escape to the same bytes.
func NFC(f Func) Func {
	return func(s string) iter.Seq[string] {
		return f(norm.NFC.String(s))
	}
}

// String applies f to s and returns the concatenated result.
func String(f Func, s string) string {
	var out []byte
	for chunk := range f(s) {
		out = append(out, chunk...)
	}
	return string(out)
}
