package value

import (
	"encoding/binary"
	"math/big"
	"math/bits"
	"strconv"
)

// Integer is a signed or unsigned integer of up to 128 bits. Every integer width is
// normalized to this one representation so encoders format them identically.
type Integer struct {
	neg    bool
	hi, lo uint64 // magnitude
}

// IntegerFromInt64 returns the Integer for v.
func IntegerFromInt64(v int64) Integer {
	if v < 0 {
		// two's complement negation is also correct for math.MinInt64
		return Integer{neg: true, lo: uint64(-(v + 1)) + 1}
	}
	return Integer{lo: uint64(v)}
}

// IntegerFromUint64 returns the Integer for v.
func IntegerFromUint64(v uint64) Integer {
	return Integer{lo: v}
}

// IntegerFromBig returns the Integer for v. Values whose magnitude needs more than
// 128 bits are rejected with ErrSerialization.
func IntegerFromBig(v *big.Int) (Integer, error) {
	if v == nil {
		return Integer{}, ErrSerialization.Wrapf("nil big.Int")
	}
	if v.BitLen() > 128 {
		return Integer{}, ErrSerialization.Wrapf("integer %s exceeds 128 bits", v.String())
	}

	var buf [16]byte
	new(big.Int).Abs(v).FillBytes(buf[:])

	return Integer{
		neg: v.Sign() < 0,
		hi:  binary.BigEndian.Uint64(buf[:8]),
		lo:  binary.BigEndian.Uint64(buf[8:]),
	}, nil
}

// IsNegative reports whether i is less than zero.
func (i Integer) IsNegative() bool {
	return i.neg
}

// Int64 returns i as an int64 and whether it fits.
func (i Integer) Int64() (int64, bool) {
	if i.hi != 0 {
		return 0, false
	}
	if i.neg {
		if i.lo > 1<<63 {
			return 0, false
		}
		return -int64(i.lo - 1) - 1, true
	}
	if i.lo > 1<<63-1 {
		return 0, false
	}
	return int64(i.lo), true
}

// Big returns i as a big.Int.
func (i Integer) Big() *big.Int {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], i.hi)
	binary.BigEndian.PutUint64(buf[8:], i.lo)
	b := new(big.Int).SetBytes(buf[:])
	if i.neg {
		b.Neg(b)
	}
	return b
}

// tenPow19 is the largest power of ten that fits in a uint64.
const tenPow19 = 10_000_000_000_000_000_000

// AppendDecimal appends the minimal decimal text of i to dst: a leading '-' for
// negative values, no leading zeros and no separators.
func (i Integer) AppendDecimal(dst []byte) []byte {
	if i.neg && (i.hi != 0 || i.lo != 0) {
		dst = append(dst, '-')
	}
	if i.hi == 0 {
		return strconv.AppendUint(dst, i.lo, 10)
	}

	// a 128-bit magnitude has at most 39 digits, three base 10^19 chunks
	var chunks [3]uint64
	n := 0
	hi, lo := i.hi, i.lo
	for hi != 0 || lo != 0 {
		qhi, rhi := hi/tenPow19, hi%tenPow19
		qlo, rem := bits.Div64(rhi, lo, tenPow19)
		chunks[n] = rem
		n++
		hi, lo = qhi, qlo
	}

	dst = strconv.AppendUint(dst, chunks[n-1], 10)
	for j := n - 2; j >= 0; j-- {
		var buf [20]byte
		digits := strconv.AppendUint(buf[:0], chunks[j], 10)
		for pad := len(digits); pad < 19; pad++ {
			dst = append(dst, '0')
		}
		dst = append(dst, digits...)
	}
	return dst
}

func (i Integer) String() string {
	return string(i.AppendDecimal(nil))
}
