package keyid

import (
	"bytes"
)

// ============================================================
// Total Order & Equality
// ============================================================

// Compare returns -1, 0, or +1. Identifiers order by kind first, so all
// values of one kind sort together; within a kind, numeric-like payloads
// compare as 128-bit unsigned integers and text kinds compare bytewise
// (shorter is smaller on common-prefix equality). The cross-kind order is
// a stable partition, not a claim about textual magnitude.
func (id Identifier) Compare(other Identifier) int {
	if id.kind != other.kind {
		if id.kind < other.kind {
			return -1
		}
		return 1
	}
	switch id.kind {
	case KindNone, KindNull:
		return 0
	case KindShortText:
		a, an := id.shortBytes()
		b, bn := other.shortBytes()
		return bytes.Compare(a[:an], b[:bn])
	case KindText:
		return bytes.Compare(id.buf, other.buf)
	default:
		if id.hi != other.hi {
			if id.hi < other.hi {
				return -1
			}
			return 1
		}
		if id.lo != other.lo {
			if id.lo < other.lo {
				return -1
			}
			return 1
		}
		return 0
	}
}

// Less reports whether id orders before other.
func (id Identifier) Less(other Identifier) bool {
	return id.Compare(other) < 0
}

// Equal reports whether two identifiers hold the same value. Equal
// identifiers always share a kind and decode to the same text.
func (id Identifier) Equal(other Identifier) bool {
	return id.Compare(other) == 0
}
