package pokestr

import (
	"errors"
	"fmt"
	"testing"
)

// mustEncode encodes s with the default map, failing the test on any error.
func mustEncode(t *testing.T, s string) Gen4Str {
	t.Helper()
	g, err := Default().Encode(s)
	if err != nil {
		t.Fatalf("Encode(%q): %v", s, err)
	}
	return g
}

func TestEncodeDecodeHello(t *testing.T) {
	g := mustEncode(t, "Hello!")
	if len(g) != 6 {
		t.Fatalf("len(g) = %d, want 6", len(g))
	}
	out, err := Default().Decode(g)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out != "Hello!" {
		t.Fatalf("Decode(Encode(%q)) = %q", "Hello!", out)
	}
}

// TestDecodeUnmappedCodes mirrors the scenario seed: a Gen4Str containing
// two unmapped codes decodes to an escaped string and reports the first
// failure's index and code.
func TestDecodeUnmappedCodes(t *testing.T) {
	m := Default()
	code := func(c rune) uint16 {
		v, ok := m.ToCode(BMP(uint16(c)))
		if !ok {
			t.Fatalf("no code for %q", c)
		}
		return v
	}

	s := Gen4Str{code('H'), 0x08E0, 0xA0A1, code('e'), code('l'), code('l'), 0xA0A1, code('o'), code('!')}
	out, err := m.Decode(s)
	if err == nil {
		t.Fatalf("expected DecodeError")
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("err type = %T, want *DecodeError", err)
	}
	if de.Index != 1 || de.Code != 0x08E0 {
		t.Fatalf("de = %+v, want index=1 code=0x08e0", de)
	}
	want := `H\x08e0\xa0a1ell\xa0a1o!`
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}

	// Re-encoding the escaped output must reproduce the original Gen4Str
	// exactly (lossless round trip via \xHHHH).
	reencoded, err := m.Encode(out)
	if err != nil {
		t.Fatalf("Encode(%q): %v", out, err)
	}
	if len(reencoded) != len(s) {
		t.Fatalf("len(reencoded) = %d, want %d", len(reencoded), len(s))
	}
	for i := range s {
		if reencoded[i] != s[i] {
			t.Fatalf("reencoded[%d] = 0x%04x, want 0x%04x", i, reencoded[i], s[i])
		}
	}
}

func TestEncodeUnmappedGrapheme(t *testing.T) {
	m := Default()
	_, err := m.Encode("Hあi") // U+3042 HIRAGANA LETTER A has no mapping
	var ue *UnmappedGraphemeError
	if !errors.As(err, &ue) {
		t.Fatalf("err type = %T, want *UnmappedGraphemeError", err)
	}
	if ue.Index != 1 {
		t.Fatalf("ue.Index = %d, want 1", ue.Index)
	}
}

func TestEncodeBadEscape(t *testing.T) {
	m := Default()
	_, err := m.Encode(`\q`)
	var be *BadEscapeError
	if !errors.As(err, &be) {
		t.Fatalf("err type = %T, want *BadEscapeError", err)
	}
}

func TestEncodeLiteralBackslash(t *testing.T) {
	m := Default()
	g, err := m.Encode(`a\\b`)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := m.Decode(g)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out != `a\b` {
		t.Fatalf("out = %q, want %q", out, `a\b`)
	}
}

func TestEncodeHexEscapeRequiresLowercase(t *testing.T) {
	m := Default()
	if _, err := m.Encode(`\x08E0`); err == nil {
		t.Fatalf("expected error for uppercase hex digits in escape")
	}
	if _, err := m.Encode(`\x08e0`); err != nil {
		t.Fatalf("Encode(\\x08e0): %v", err)
	}
}

func TestReadWriteFieldRoundTrip(t *testing.T) {
	g := mustEncode(t, "Hi")
	buf := WriteField(g, 8)
	if len(buf) != 16 {
		t.Fatalf("len(buf) = %d, want 16", len(buf))
	}
	got, err := ReadField(buf, 8)
	if err != nil {
		t.Fatalf("ReadField: %v", err)
	}
	if len(got) != len(g) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(g))
	}
	for i := range g {
		if got[i] != g[i] {
			t.Fatalf("got[%d] = 0x%04x, want 0x%04x", i, got[i], g[i])
		}
	}
}

func TestReadFieldNoTerminatorReservesOneWord(t *testing.T) {
	buf := make([]byte, 6) // 3 words, all content, no terminator anywhere
	for i := range buf {
		buf[i] = 0x01
	}
	got, err := ReadField(buf, 3)
	if err != nil {
		t.Fatalf("ReadField: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2 (capacity 3 minus reserved terminator word)", len(got))
	}
}

func TestReadFieldTooShort(t *testing.T) {
	if _, err := ReadField([]byte{0, 0}, 2); err == nil {
		t.Fatalf("expected error for undersized buffer")
	}
}

func ExampleGen4Str() {
	g, _ := Default().Encode("Hi")
	s, _ := Default().Decode(g)
	fmt.Println(s)
	// Output: Hi
}
