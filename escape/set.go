package escape

// Set is a set of ASCII bytes that are percent-encoded. Bytes outside the ASCII range
// are not members of any Set and are always percent-encoded.
type Set [2]uint64

// Add returns a copy of s that also encodes b.
func (s Set) Add(b byte) Set {
	if b < 0x80 {
		s[b/64] |= 1 << (b % 64)
	}
	return s
}

// Remove returns a copy of s that leaves b unencoded.
func (s Set) Remove(b byte) Set {
	if b < 0x80 {
		s[b/64] &^= 1 << (b % 64)
	}
	return s
}

// RemoveAll returns a copy of s that leaves every byte of chars unencoded.
func (s Set) RemoveAll(chars string) Set {
	for i := 0; i < len(chars); i++ {
		s = s.Remove(chars[i])
	}
	return s
}

// ShouldEncode reports whether b is percent-encoded under s.
func (s Set) ShouldEncode(b byte) bool {
	return b >= 0x80 || s[b/64]&(1<<(b%64)) != 0
}

// See https://datatracker.ietf.org/doc/html/rfc3986#appendix-A
var (
	// Controls contains the C0 control characters and DEL.
	Controls = controls()

	// NonAlphanumeric contains every ASCII byte other than ALPHA and DIGIT.
	NonAlphanumeric = nonAlphanumeric()

	// Unreserved leaves the RFC 3986 unreserved characters unencoded.
	Unreserved = NonAlphanumeric.RemoveAll("-._~")

	// PathSet leaves unreserved characters and the pchar sub-delimiters unencoded.
	PathSet = Unreserved.RemoveAll("!$&'()*+,;=:@")

	// QuerySet is PathSet with `/` and `?` left unencoded. `+` is always encoded as it
	// has historically been read as an encoded space.
	QuerySet = PathSet.RemoveAll("/?").Add('+')

	// QueryAllowReservedSet additionally leaves reserved characters unencoded.
	QueryAllowReservedSet = QuerySet.RemoveAll(":/?#[]@")

	// WWWFormSet is the application/x-www-form-urlencoded percent-encode set.
	// See https://url.spec.whatwg.org/#application-x-www-form-urlencoded-percent-encode-set
	WWWFormSet = NonAlphanumeric.RemoveAll("*-._")
)

func controls() Set {
	var s Set
	for b := byte(0); b < 0x20; b++ {
		s = s.Add(b)
	}
	return s.Add(0x7f)
}

func nonAlphanumeric() Set {
	s := controls()
	for b := byte(0x20); b < 0x7f; b++ {
		if !isAlphanumeric(b) {
			s = s.Add(b)
		}
	}
	return s
}

func isAlphanumeric(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}
