package style

import (
	"math"
	"strconv"

	"github.com/speakeasy-api/querystyle/value"
)

// AppendInteger appends the decimal text of i to dst.
func AppendInteger(dst []byte, i value.Integer) []byte {
	return i.AppendDecimal(dst)
}

// FormatInteger returns the decimal text of i.
func FormatInteger(i value.Integer) string {
	var buf [40]byte
	return string(AppendInteger(buf[:0], i))
}

// AppendFloat appends the shortest text of f that parses back to the same value at
// bitSize precision. Exponent notation is only used when the magnitude is below 1e-6
// or at least 1e21. Infinities are written as inf and -inf, and NaN as NaN.
func AppendFloat(dst []byte, f float64, bitSize int) []byte {
	switch {
	case math.IsNaN(f):
		return append(dst, "NaN"...)
	case math.IsInf(f, 1):
		return append(dst, "inf"...)
	case math.IsInf(f, -1):
		return append(dst, "-inf"...)
	}

	format := byte('f')
	if abs := math.Abs(f); abs != 0 {
		if bitSize == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) ||
			bitSize != 32 && (abs < 1e-6 || abs >= 1e21) {
			format = 'e'
		}
	}
	if bitSize != 32 {
		bitSize = 64
	}

	start := len(dst)
	dst = strconv.AppendFloat(dst, f, format, -1, bitSize)
	if format == 'e' {
		dst = trimExponent(dst, start)
	}
	return dst
}

// FormatFloat returns the text AppendFloat would append.
func FormatFloat(f float64, bitSize int) string {
	var buf [32]byte
	return string(AppendFloat(buf[:0], f, bitSize))
}

// trimExponent rewrites exponents such as e+21 and e-07 as e21 and e-7.
func trimExponent(dst []byte, start int) []byte {
	e := -1
	for i := len(dst) - 1; i >= start; i-- {
		if dst[i] == 'e' {
			e = i
			break
		}
	}
	if e < 0 || e+1 >= len(dst) {
		return dst
	}

	out := dst[:e+1]
	rest := dst[e+1:]
	if rest[0] == '-' {
		out = append(out, '-')
	}
	if rest[0] == '+' || rest[0] == '-' {
		rest = rest[1:]
	}
	for len(rest) > 1 && rest[0] == '0' {
		rest = rest[1:]
	}
	return append(out, rest...)
}

// FormatBool returns "true" or "false".
func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}
