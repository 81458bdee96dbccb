package keyid

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ============================================================
// JSON Bridge
// ============================================================
//
// BigDec identifiers print width-sensitively: values representable as a
// 32-bit signed integer emit a bare JSON number, anything wider emits the
// decimal digits as a JSON string. Every other kind emits its exact text
// as a JSON string. Decoding accepts both shapes, so readers stay
// compatible across the width boundary.

// ErrInvalidEncoding reports a JSON token that cannot decode to an
// Identifier.
var ErrInvalidEncoding = errors.New("keyid: invalid encoding")

// MarshalJSON implements json.Marshaler.
func (id Identifier) MarshalJSON() ([]byte, error) {
	if id.kind == KindBigDec && id.hi == 0 && id.lo <= math.MaxInt32 {
		return strconv.AppendUint(nil, id.lo, 10), nil
	}
	return json.Marshal(id.String())
}

// UnmarshalJSON implements json.Unmarshaler. A number token must be an
// unsigned integer; a string token decodes through the classifier, so a
// digits-only string yields the same identifier as the equivalent bare
// number. Any other token fails with ErrInvalidEncoding.
func (id *Identifier) UnmarshalJSON(data []byte) error {
	tok := bytes.TrimSpace(data)
	if len(tok) == 0 {
		return fmt.Errorf("%w: empty token", ErrInvalidEncoding)
	}
	switch c := tok[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(tok, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
		}
		*id = Parse(s)
		return nil
	case c >= '0' && c <= '9':
		parsed, ok := parseBigDec(string(tok))
		if !ok {
			return fmt.Errorf("%w: %q is not an unsigned integer", ErrInvalidEncoding, tok)
		}
		*id = parsed
		return nil
	case c == '-':
		return fmt.Errorf("%w: negative number %q", ErrInvalidEncoding, tok)
	default:
		return fmt.Errorf("%w: expected number or string, got %q", ErrInvalidEncoding, tok)
	}
}
