package keyid

import (
	"encoding/json"
	"strings"
	"testing"
)

// checkRoundTrip verifies the core invariants for a single identifier:
// exact text round-trip, closed-form length, JSON round-trip, and
// re-parse stability.
func checkRoundTrip(t *testing.T, id Identifier) {
	t.Helper()

	text := id.String()
	if got := id.Len(); got != len(text) {
		t.Errorf("Len() = %d, want %d for %q", got, len(text), text)
	}
	if got := Classify(text); got != id.Kind() {
		t.Errorf("Classify(%q) = %s, want %s", text, got, id.Kind())
	}

	data, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("Marshal failed for %q: %v", text, err)
	}
	var back Identifier
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal %s failed: %v", data, err)
	}
	if !id.Equal(back) {
		t.Errorf("JSON round-trip changed value: %q -> %s -> %q", text, data, back.String())
	}
	if back.Kind() != id.Kind() {
		t.Errorf("JSON round-trip changed kind: %s -> %s", id.Kind(), back.Kind())
	}
	if back.String() != text {
		t.Errorf("JSON round-trip changed text: %q -> %q", text, back.String())
	}
	if got := back.Len(); got != len(text) {
		t.Errorf("round-tripped Len() = %d, want %d", got, len(text))
	}
}

func TestParse_Classification(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
	}{
		{"empty", "", KindNone},
		{"null literal", "null", KindNull},
		{"uuid lower", "0828398c-5965-11e0-84c8-0026b937c8e1", KindUUID},
		{"uuid upper", "0828398C-5965-11E0-84C8-0026B937C8E1", KindUUIDUpper},
		{"uuid mixed case", "0828398C-5965-11e0-84c8-0026b937c8e1", KindText},
		{"uuid bad hyphen", "0828398c5-965-11e0-84c8-0026b937c8e1", KindText},
		{"goog128", "CAESEAYra3NIxLT9C8twKrzqaA", KindGoog128},
		{"goog128 bad symbol", "CAESEAYra3NIxLT9C8twKrzq+A", KindText},
		{"goog128 wrong prefix", "XAESEAYra3NIxLT9C8twKrzqaA", KindText},
		{"bigdec", "999999999999", KindBigDec},
		{"bigdec 19 digits", "7394206091425759590", KindBigDec},
		{"bigdec 18 digits", "394206091425759590", KindBigDec},
		{"bigdec zero", "0", KindBigDec},
		{"leading zero", "01394206091425759590", KindText},
		{"overflows 128 bits", "2321323942060989898676554598877575564564435434534354345734371425759590", KindText},
		{"max 128-bit value", "340282366920938463463374607431768211455", KindBigDec},
		{"one above max", "340282366920938463463374607431768211456", KindText},
		{"short string", "hello", KindShortText},
		{"16-byte string", "helloworldhello!", KindShortText},
		{"long string", "helloiamaverylongstring", KindText},
		{"base64 token", "++++VpWW999gvYaw", KindBase64},
		{"16 digits is base64", "9999999999999999", KindBase64},
		{"16 chars off alphabet", "hello world, yo!", KindShortText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := Parse(tt.input)
			if id.Kind() != tt.kind {
				t.Fatalf("Parse(%q).Kind() = %s, want %s", tt.input, id.Kind(), tt.kind)
			}
			if got := id.String(); got != tt.input {
				t.Errorf("String() = %q, want %q", got, tt.input)
			}
			checkRoundTrip(t, id)
		})
	}
}

func TestParse_UUIDCaseBoundary(t *testing.T) {
	lower := Parse("0828398c-5965-11e0-84c8-0026b937c8e1")
	upper := Parse("0828398C-5965-11E0-84C8-0026B937C8E1")
	mixed := Parse("0828398C-5965-11e0-84c8-0026b937c8e1")

	if lower.Equal(upper) {
		t.Error("lowercase and uppercase UUID forms must not be equal")
	}
	if lower.Hash() == upper.Hash() {
		t.Error("lowercase and uppercase UUID forms must hash apart")
	}
	if mixed.Equal(lower) || mixed.Equal(upper) {
		t.Error("mixed-case form must not equal either UUID form")
	}

	// the two case variants pack the same 128 bits; only the kind differs
	llo, lhi := lower.Words()
	ulo, uhi := upper.Words()
	if llo != ulo || lhi != uhi {
		t.Errorf("case variants packed differently: (%x,%x) vs (%x,%x)", llo, lhi, ulo, uhi)
	}
}

func TestParse_Base64BitLayout(t *testing.T) {
	tests := []struct {
		input string
		lo    uint64
		hi    uint64
	}{
		{"++++++++++++++++", 0, 0},
		{"+++++++++++++++/", 1, 0},
		{"+++++++++++++++0", 2, 0},
		{"++++/+++++++++++", 0, 1 << (11*6 - 64)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id := Parse(tt.input)
			if id.Kind() != KindBase64 {
				t.Fatalf("kind = %s, want %s", id.Kind(), KindBase64)
			}
			if id.lo != tt.lo || id.hi != tt.hi {
				t.Errorf("words = (%#x, %#x), want (%#x, %#x)", id.lo, id.hi, tt.lo, tt.hi)
			}
			checkRoundTrip(t, id)
		})
	}
}

func TestParse_ShortTextInline(t *testing.T) {
	id := Parse("short1")
	if id.Kind() != KindShortText {
		t.Fatalf("kind = %s, want %s", id.Kind(), KindShortText)
	}
	if id.Len() != 6 {
		t.Errorf("Len() = %d, want 6", id.Len())
	}
	if !id.Equal(id) {
		t.Error("identifier must equal itself")
	}
	if id.Less(id) {
		t.Error("identifier must not order before itself")
	}
	checkRoundTrip(t, id)
}

func TestParse_ShortTextNULByteDegradesToText(t *testing.T) {
	id := Parse("ab\x00cd")
	if id.Kind() != KindText {
		t.Fatalf("kind = %s, want %s", id.Kind(), KindText)
	}
	if id.String() != "ab\x00cd" {
		t.Errorf("String() = %q, want %q", id.String(), "ab\x00cd")
	}
	if id.Len() != 5 {
		t.Errorf("Len() = %d, want 5", id.Len())
	}
}

func TestParse_TextBufferIsOwned(t *testing.T) {
	src := []byte("helloiamaverylongstring")
	id := Parse(string(src))
	src[0] = 'X'
	if id.String() != "helloiamaverylongstring" {
		t.Errorf("identifier observed caller mutation: %q", id.String())
	}
}

func TestNewRandom(t *testing.T) {
	a := NewRandom()
	b := NewRandom()
	if a.Kind() != KindUUID {
		t.Fatalf("kind = %s, want %s", a.Kind(), KindUUID)
	}
	if a.Equal(b) {
		t.Error("two random identifiers should not collide")
	}
	checkRoundTrip(t, a)
}

func TestParse_ReparseStability(t *testing.T) {
	inputs := []string{
		"", "null", "hello", "helloiamaverylongstring",
		"0828398c-5965-11e0-84c8-0026b937c8e1",
		"0828398C-5965-11E0-84C8-0026B937C8E1",
		"CAESEAYra3NIxLT9C8twKrzqaA",
		"999999999999", "0", "01394206091425759590",
		"++++VpWW999gvYaw", "9999999999999999",
		strings.Repeat("7", 39), strings.Repeat("7", 40),
	}
	for _, in := range inputs {
		id := Parse(in)
		if got := Classify(id.String()); got != id.Kind() {
			t.Errorf("Classify(%q) = %s, want stable %s", id.String(), got, id.Kind())
		}
	}
}
