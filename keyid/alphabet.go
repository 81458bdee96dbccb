package keyid

// ============================================================
// Order-Preserving Alphabet & 6-Bit Packing
// ============================================================

// idAlphabet lists the 64 symbols of the Base64 identifier encoding in
// ascending ASCII order, so byte-wise comparison of encoded text agrees
// with numeric comparison of the packed value.
const idAlphabet = "+/0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// googAlphabet is the URL-safe base-64 symbol set of the Goog128 token
// family. Unlike idAlphabet, its symbol order does not track ASCII order;
// Goog128 values order by payload, not by text.
const googAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

var idAlphabetIndex = invertAlphabet(idAlphabet)
var googAlphabetIndex = invertAlphabet(googAlphabet)

// invertAlphabet builds the symbol → 6-bit value table; -1 marks bytes
// outside the alphabet.
func invertAlphabet(alphabet string) [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		idx[alphabet[i]] = int8(i)
	}
	return idx
}

// pack6 folds one 6-bit group into the low end of a 128-bit (lo, hi)
// accumulator, shifting previous groups up.
func pack6(lo, hi uint64, group byte) (uint64, uint64) {
	hi = hi<<6 | lo>>58
	lo = lo<<6 | uint64(group)
	return lo, hi
}

// unpack6 extracts the 6-bit group at position pos of a 128-bit (lo, hi)
// value, counting groups from the least significant.
func unpack6(lo, hi uint64, pos int) byte {
	shift := uint(6 * pos)
	switch {
	case shift >= 64:
		return byte(hi>>(shift-64)) & 0x3f
	case shift > 58:
		// group straddles the word boundary
		return byte(lo>>shift|hi<<(64-shift)) & 0x3f
	default:
		return byte(lo>>shift) & 0x3f
	}
}
