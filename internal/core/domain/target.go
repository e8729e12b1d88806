package domain

import (
	"strings"
	"unique"

	"go.trai.ch/zerr"
)

// UniversalTargetName is the manifest key and text form of the universal target.
const UniversalTargetName = "*"

// Triple is a platform identifier of the form arch-vendor-os[-env].
// Triples repeat for every package in a manifest, so the text is interned.
type Triple struct {
	h unique.Handle[string]
}

// ParseTriple validates s as a platform triple.
// A triple has at least two hyphen-separated components made of letters, digits, '_' and '.'.
func ParseTriple(s string) (Triple, error) {
	parts := strings.Split(s, "-")
	if len(parts) < 2 {
		return Triple{}, zerr.With(zerr.With(ErrTargetParse, "triple", s), "reason", "too few components")
	}
	for _, part := range parts {
		if part == "" {
			return Triple{}, zerr.With(zerr.With(ErrTargetParse, "triple", s), "reason", "empty component")
		}
		for i := 0; i < len(part); i++ {
			if !isTripleByte(part[i]) {
				return Triple{}, zerr.With(zerr.With(ErrTargetParse, "triple", s), "reason", "invalid character")
			}
		}
	}
	return Triple{h: unique.Make(s)}, nil
}

// MustParseTriple is like ParseTriple but panics on malformed input.
func MustParseTriple(s string) Triple {
	t, err := ParseTriple(s)
	if err != nil {
		panic(err)
	}
	return t
}

func isTripleByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '.'
}

// String returns the triple text.
func (t Triple) String() string {
	var zero unique.Handle[string]
	if t.h == zero {
		return ""
	}
	return t.h.Value()
}

// IsZero reports whether t is the zero Triple.
func (t Triple) IsZero() bool {
	var zero unique.Handle[string]
	return t.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (t Triple) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Triple) UnmarshalText(text []byte) error {
	parsed, err := ParseTriple(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// SupportedTarget describes which platforms a build or component applies to:
// either every platform (universal) or exactly one triple.
type SupportedTarget struct {
	triple    Triple
	universal bool
}

// Universal returns the descriptor covering every platform.
func Universal() SupportedTarget {
	return SupportedTarget{universal: true}
}

// Specific returns the descriptor covering only t.
func Specific(t Triple) SupportedTarget {
	return SupportedTarget{triple: t}
}

// ParseSupportedTarget parses "*" as Universal and anything else as a specific triple.
func ParseSupportedTarget(s string) (SupportedTarget, error) {
	if s == UniversalTargetName {
		return Universal(), nil
	}
	t, err := ParseTriple(s)
	if err != nil {
		return SupportedTarget{}, err
	}
	return Specific(t), nil
}

// IsUniversal reports whether the descriptor covers every platform.
func (s SupportedTarget) IsUniversal() bool {
	return s.universal
}

// Triple returns the specific triple and true, or the zero Triple and false for Universal.
func (s SupportedTarget) Triple() (Triple, bool) {
	if s.universal {
		return Triple{}, false
	}
	return s.triple, true
}

// Supports reports whether the descriptor covers platform p.
func (s SupportedTarget) Supports(p Triple) bool {
	if s.universal {
		return true
	}
	return s.triple == p
}

// String returns "*" for Universal and the triple otherwise.
func (s SupportedTarget) String() string {
	if s.universal {
		return UniversalTargetName
	}
	return s.triple.String()
}

// Compare orders Universal before every specific target, and specific targets by triple text.
func (s SupportedTarget) Compare(other SupportedTarget) int {
	switch {
	case s.universal && other.universal:
		return 0
	case s.universal:
		return -1
	case other.universal:
		return 1
	default:
		return strings.Compare(s.triple.String(), other.triple.String())
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s SupportedTarget) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SupportedTarget) UnmarshalText(text []byte) error {
	parsed, err := ParseSupportedTarget(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
