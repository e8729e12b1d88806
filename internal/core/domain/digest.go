package domain

import (
	"fmt"
	"strings"
)

const hexDigits = "0123456789abcdef"

// Digest is an immutable byte sequence identifying content, such as a SHA-256 artifact hash
// or a git commit id. Digests compare byte-wise and render as lowercase hex.
//
// The bytes are held in a string so that Digest is comparable and can key maps.
type Digest struct {
	b string
}

// DigestFromBytes returns a Digest holding a copy of raw. No validation is performed.
func DigestFromBytes(raw []byte) Digest {
	return Digest{b: string(raw)}
}

// ParseDigest parses a hex string. Both lower and upper case digits are accepted.
func ParseDigest(text string) (Digest, error) {
	if len(text)%2 != 0 {
		return Digest{}, &DigestError{Length: true, Value: len(text)}
	}
	out := make([]byte, len(text)/2)
	for i := range out {
		high, err := nibble(text[i*2])
		if err != nil {
			return Digest{}, err
		}
		low, err := nibble(text[i*2+1])
		if err != nil {
			return Digest{}, err
		}
		out[i] = high<<4 | low
	}
	return Digest{b: string(out)}, nil
}

// DigestError reports malformed hex: either an odd length or a byte outside [0-9a-fA-F].
type DigestError struct {
	// Length is set for length errors; Value then holds the length instead of the byte.
	Length bool
	Value  int
}

func (e *DigestError) Error() string {
	if e.Length {
		return fmt.Sprintf("%s: invalid length: %d", ErrInvalidDigest, e.Value)
	}
	return fmt.Sprintf("%s: invalid byte: %d", ErrInvalidDigest, e.Value)
}

// Unwrap returns ErrInvalidDigest.
func (e *DigestError) Unwrap() error {
	return ErrInvalidDigest
}

// MustParseDigest is like ParseDigest but panics on malformed input.
// It is intended for constants and tests.
func MustParseDigest(text string) Digest {
	d, err := ParseDigest(text)
	if err != nil {
		panic(err)
	}
	return d
}

func nibble(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, &DigestError{Value: int(c)}
	}
}

// String returns the canonical lowercase hex form.
func (d Digest) String() string {
	out := make([]byte, len(d.b)*2)
	for i := 0; i < len(d.b); i++ {
		out[i*2] = hexDigits[d.b[i]>>4]
		out[i*2+1] = hexDigits[d.b[i]&0xf]
	}
	return string(out)
}

// Bytes returns a copy of the raw bytes.
func (d Digest) Bytes() []byte {
	return []byte(d.b)
}

// Len returns the number of bytes in the digest.
func (d Digest) Len() int {
	return len(d.b)
}

// IsZero reports whether the digest is empty.
func (d Digest) IsZero() bool {
	return d.b == ""
}

// Equal reports whether two digests hold the same bytes.
func (d Digest) Equal(other Digest) bool {
	return d.b == other.b
}

// Compare orders digests byte-wise, returning -1, 0 or +1.
// For digests of equal length this is numeric order of the encoded value.
func (d Digest) Compare(other Digest) int {
	return strings.Compare(d.b, other.b)
}

// MarshalText implements encoding.TextMarshaler.
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Digest) UnmarshalText(text []byte) error {
	parsed, err := ParseDigest(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
