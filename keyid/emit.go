package keyid

import (
	"lukechampine.com/uint128"
)

// ============================================================
// Decoding (toString) & Length
// ============================================================

const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// String reconstructs the exact text the identifier was parsed from.
// Decoding is the inverse of Parse for every kind.
func (id Identifier) String() string {
	switch id.kind {
	case KindNone:
		return ""
	case KindNull:
		return "null"
	case KindUUID:
		return id.uuidString(hexLower)
	case KindUUIDUpper:
		return id.uuidString(hexUpper)
	case KindBase64:
		var b [base64Len]byte
		for i := 0; i < base64Len; i++ {
			b[i] = idAlphabet[unpack6(id.lo, id.hi, base64Len-1-i)]
		}
		return string(b[:])
	case KindGoog128:
		var b [googLen]byte
		copy(b[:], googPrefix)
		groups := googLen - len(googPrefix)
		for i := 0; i < groups; i++ {
			b[len(googPrefix)+i] = googAlphabet[unpack6(id.lo, id.hi, groups-1-i)]
		}
		return string(b[:])
	case KindBigDec:
		return uint128.New(id.lo, id.hi).String()
	case KindShortText:
		b, n := id.shortBytes()
		return string(b[:n])
	case KindText:
		return string(id.buf)
	default:
		return ""
	}
}

// uuidString renders 32 hex digits with hyphens at the fixed offsets,
// most significant nibble first.
func (id Identifier) uuidString(digits string) string {
	var b [uuidLen]byte
	nibble := 0
	for i := 0; i < uuidLen; i++ {
		if i == 8 || i == 13 || i == 18 || i == 23 {
			b[i] = '-'
			continue
		}
		var v uint64
		if nibble < 16 {
			v = id.hi >> uint(60-4*nibble)
		} else {
			v = id.lo >> uint(60-4*(nibble-16))
		}
		b[i] = digits[v&0xf]
		nibble++
	}
	return string(b[:])
}

// Len returns len(id.String()) without materializing the text.
func (id Identifier) Len() int {
	switch id.kind {
	case KindNone:
		return 0
	case KindNull:
		return 4
	case KindUUID, KindUUIDUpper:
		return uuidLen
	case KindBase64:
		return base64Len
	case KindGoog128:
		return googLen
	case KindBigDec:
		return decimalDigits(uint128.New(id.lo, id.hi))
	case KindShortText:
		_, n := id.shortBytes()
		return n
	case KindText:
		return len(id.buf)
	default:
		return 0
	}
}

// pow10 holds the 128-bit powers of ten; the largest, 10^38, is the last
// one below 2^128.
var pow10 = func() [39]uint128.Uint128 {
	var p [39]uint128.Uint128
	p[0] = uint128.From64(1)
	for i := 1; i < len(p); i++ {
		p[i] = p[i-1].Mul64(10)
	}
	return p
}()

// decimalDigits counts the digits of v's canonical decimal rendering.
func decimalDigits(v uint128.Uint128) int {
	n := 1
	for _, p := range pow10[1:] {
		if v.Cmp(p) < 0 {
			break
		}
		n++
	}
	return n
}
