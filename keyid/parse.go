package keyid

import (
	"encoding/binary"

	"lukechampine.com/uint128"
)

// ============================================================
// Classifier & Per-Kind Encoders
// ============================================================
//
// Parse tries each packed representation in a fixed order; the first rule
// that fully accepts the input wins. A rule that superficially matches but
// fails strict decoding (a bad Goog128 symbol, a disqualifying leading
// zero, 128-bit overflow, a NUL byte in a short string) falls through
// rather than corrupting the value, so every input lands somewhere and
// re-encoding always reproduces the original text.

const (
	inlineCap  = 16 // bytes a ShortText identifier can hold
	uuidLen    = 36
	base64Len  = 16
	googLen    = 26
	googPrefix = "CAESE"
)

// Parse classifies text and packs it into an Identifier. It is total:
// input that fits no packed representation is stored verbatim as Text,
// so Parse never fails.
func Parse(text string) Identifier {
	if len(text) == 0 {
		return Identifier{kind: KindNone}
	}
	if text == "null" {
		return Identifier{kind: KindNull}
	}
	if len(text) == uuidLen {
		if id, ok := parseUUID(text); ok {
			return id
		}
	}
	if len(text) == base64Len {
		if id, ok := parseBase64(text); ok {
			return id
		}
	}
	if len(text) == googLen {
		if id, ok := parseGoog128(text); ok {
			return id
		}
	}
	if id, ok := parseBigDec(text); ok {
		return id
	}
	if len(text) <= inlineCap {
		if id, ok := parseShortText(text); ok {
			return id
		}
	}
	return textIdentifier(text)
}

// Classify returns the kind Parse would assign to text.
func Classify(text string) Kind {
	return Parse(text).kind
}

// parseUUID accepts 8-4-4-4-12 hex with all hex letters in the same case.
// Mixed-case hex falls through to later rules.
func parseUUID(text string) (Identifier, bool) {
	var lo, hi uint64
	var sawUpper, sawLower bool

	nibble := 0
	for i := 0; i < uuidLen; i++ {
		c := text[i]
		if i == 8 || i == 13 || i == 18 || i == 23 {
			if c != '-' {
				return Identifier{}, false
			}
			continue
		}
		var v uint64
		switch {
		case c >= '0' && c <= '9':
			v = uint64(c - '0')
		case c >= 'a' && c <= 'f':
			v = uint64(c-'a') + 10
			sawLower = true
		case c >= 'A' && c <= 'F':
			v = uint64(c-'A') + 10
			sawUpper = true
		default:
			return Identifier{}, false
		}
		// first nibble is most significant
		if nibble < 16 {
			hi = hi<<4 | v
		} else {
			lo = lo<<4 | v
		}
		nibble++
	}

	if sawUpper && sawLower {
		return Identifier{}, false
	}
	kind := KindUUID
	if sawUpper {
		kind = KindUUIDUpper
	}
	return Identifier{kind: kind, lo: lo, hi: hi}, true
}

// parseBase64 accepts exactly 16 symbols of the order-preserving alphabet,
// read left to right as the most to least significant 6-bit groups of a
// 96-bit big-endian value.
func parseBase64(text string) (Identifier, bool) {
	var lo, hi uint64
	for i := 0; i < base64Len; i++ {
		v := idAlphabetIndex[text[i]]
		if v < 0 {
			return Identifier{}, false
		}
		lo, hi = pack6(lo, hi, byte(v))
	}
	return Identifier{kind: KindBase64, lo: lo, hi: hi}, true
}

// parseGoog128 accepts the external opaque-token family: a fixed CAESE
// prefix followed by 21 URL-safe base-64 symbols (a 126-bit payload).
// A symbol outside the family's alphabet fails the strict decode and the
// input degrades to Text.
func parseGoog128(text string) (Identifier, bool) {
	if text[:len(googPrefix)] != googPrefix {
		return Identifier{}, false
	}
	var lo, hi uint64
	for i := len(googPrefix); i < googLen; i++ {
		v := googAlphabetIndex[text[i]]
		if v < 0 {
			return Identifier{}, false
		}
		lo, hi = pack6(lo, hi, byte(v))
	}
	return Identifier{kind: KindGoog128, lo: lo, hi: hi}, true
}

var maxDiv10 = uint128.Max.Div64(10)

// parseBigDec accepts non-empty ASCII decimal digits with no leading zero
// (unless the whole value is "0") whose value fits in 128 bits. A leading
// zero or overflow falls through so the exact text survives as Text.
func parseBigDec(text string) (Identifier, bool) {
	if text[0] == '0' && len(text) != 1 {
		return Identifier{}, false
	}
	v := uint128.Zero
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			return Identifier{}, false
		}
		d := uint64(c - '0')
		if v.Cmp(maxDiv10) > 0 {
			return Identifier{}, false
		}
		v = v.Mul64(10)
		if v.Cmp(uint128.Max.Sub64(d)) > 0 {
			return Identifier{}, false
		}
		v = v.Add64(d)
	}
	return Identifier{kind: KindBigDec, lo: v.Lo, hi: v.Hi}, true
}

// parseShortText stores up to 16 bytes inline, NUL-padded. The pad byte
// doubles as the length sentinel, so text containing NUL cannot use the
// inline form and degrades to Text.
func parseShortText(text string) (Identifier, bool) {
	var b [inlineCap]byte
	for i := 0; i < len(text); i++ {
		if text[i] == 0 {
			return Identifier{}, false
		}
		b[i] = text[i]
	}
	return Identifier{
		kind: KindShortText,
		lo:   binary.LittleEndian.Uint64(b[0:8]),
		hi:   binary.LittleEndian.Uint64(b[8:16]),
	}, true
}

// shortBytes reconstructs a ShortText identifier's inline bytes and length.
func (id Identifier) shortBytes() ([inlineCap]byte, int) {
	var b [inlineCap]byte
	binary.LittleEndian.PutUint64(b[0:8], id.lo)
	binary.LittleEndian.PutUint64(b[8:16], id.hi)
	n := 0
	for n < inlineCap && b[n] != 0 {
		n++
	}
	return b, n
}
