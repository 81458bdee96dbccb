package keyid

import (
	"github.com/google/uuid"
)

// Kind identifies the representation an Identifier holds.
type Kind uint8

const (
	KindNone Kind = iota
	KindNull
	KindUUID
	KindUUIDUpper
	KindBase64 // 16-character order-preserving base-64 token, 96-bit payload
	KindGoog128
	KindBigDec
	KindShortText
	KindText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNull:
		return "null"
	case KindUUID:
		return "uuid"
	case KindUUIDUpper:
		return "uuid-upper"
	case KindBase64:
		return "base64-96"
	case KindGoog128:
		return "goog128"
	case KindBigDec:
		return "bigdec"
	case KindShortText:
		return "short-text"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Identifier is a tagged 128-bit identifier value.
//
// The zero value is the None identifier (the empty string). For every kind
// except Text the payload lives in the two words; Text keeps an owned byte
// buffer instead. The buffer is never mutated after construction, so copies
// of an Identifier may share it safely.
type Identifier struct {
	kind Kind
	lo   uint64
	hi   uint64
	buf  []byte // KindText only
}

// ============================================================
// Constructors
// ============================================================

// FromUint64 returns a BigDec identifier holding v.
func FromUint64(v uint64) Identifier {
	return Identifier{kind: KindBigDec, lo: v}
}

// FromUint128 returns a BigDec identifier holding the 128-bit value whose
// low word is lo and high word is hi.
func FromUint128(lo, hi uint64) Identifier {
	return Identifier{kind: KindBigDec, lo: lo, hi: hi}
}

// NewRandom returns a fresh identifier holding a random version-4 UUID.
func NewRandom() Identifier {
	return Parse(uuid.NewString())
}

func textIdentifier(text string) Identifier {
	return Identifier{kind: KindText, buf: []byte(text)}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the identifier's representation kind.
func (id Identifier) Kind() Kind {
	return id.kind
}

// Words returns the packed 128-bit payload as (lo, hi). Both words are zero
// for Text identifiers, whose payload lives in a private buffer.
func (id Identifier) Words() (lo, hi uint64) {
	return id.lo, id.hi
}

// IsNone reports whether the identifier is the empty identifier.
func (id Identifier) IsNone() bool {
	return id.kind == KindNone
}

// IsNull reports whether the identifier is the literal null marker.
func (id Identifier) IsNull() bool {
	return id.kind == KindNull
}
