package keyid

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ============================================================
// Hashing & Compound Construction
// ============================================================

// appendHashInput appends the identifier's canonical hash input: the kind
// byte followed by the packed words, or by the text bytes for Text. Equal
// identifiers always produce identical input.
func (id Identifier) appendHashInput(b []byte) []byte {
	b = append(b, byte(id.kind))
	if id.kind == KindText {
		return append(b, id.buf...)
	}
	b = binary.LittleEndian.AppendUint64(b, id.lo)
	b = binary.LittleEndian.AppendUint64(b, id.hi)
	return b
}

// Hash returns a 64-bit hash of the identifier. It is a pure function of
// the kind and payload, so a.Equal(b) implies a.Hash() == b.Hash();
// distinct values hash apart with xxhash's usual distribution. Not
// cryptographic.
func (id Identifier) Hash() uint64 {
	var scratch [64]byte
	return xxhash.Sum64(id.appendHashInput(scratch[:0]))
}

// Combine builds a composite identifier from two parts. The result is a
// BigDec identifier whose 128-bit payload is a deterministic hash-combine
// of both inputs, so the same pair always yields the same key. It is not
// injective; callers must not assume the inputs can be recovered or that
// distinct pairs never collide.
func Combine(a, b Identifier) Identifier {
	var scratch [128]byte
	in := a.appendHashInput(scratch[:0])
	in = b.appendHashInput(in)
	lo := xxhash.Sum64(in)
	hi := xxhash.Sum64(append(in, 1))
	return Identifier{kind: KindBigDec, lo: lo, hi: hi}
}
