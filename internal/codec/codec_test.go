package codec

import (
	"errors"
	"testing"

	"github.com/ericlagergren/ctcodec"
)

const b64Table = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"+/"

var b64 = Variant{
	Bits: 6,
	Enc: []Range{
		{Lo: 0, Hi: 25, Char: 'A'},
		{Lo: 26, Hi: 51, Char: 'a'},
		{Lo: 52, Hi: 61, Char: '0'},
		{Lo: 62, Hi: 62, Char: '+'},
		{Lo: 63, Hi: 63, Char: '/'},
	},
	Pad:        '=',
	BlockBytes: 3,
	BlockSyms:  4,
}

var rawB64 = Variant{
	Bits:       6,
	Enc:        b64.Enc,
	BlockBytes: 3,
	BlockSyms:  4,
}

// TestSymToChar tests the forward mapping against the alphabet
// table.
func TestSymToChar(t *testing.T) {
	for i := 0; i < len(b64Table); i++ {
		if got := b64.symToChar(byte(i)); got != b64Table[i] {
			t.Fatalf("#%d: expected %q, got %q", i, b64Table[i], got)
		}
	}
}

// TestCharToSym tests the reverse mapping for all 256 byte
// values, checking that everything outside the alphabet maps to
// 0xff.
func TestCharToSym(t *testing.T) {
	var m [256]byte
	for i := range m {
		m[i] = 0xff
	}
	for i := 0; i < len(b64Table); i++ {
		m[b64Table[i]] = byte(i)
	}
	for i := 0; i < 256; i++ {
		if got := b64.charToSym(byte(i)); got != m[i] {
			t.Fatalf("#%d: expected %#2x, got %#2x", i, m[i], got)
		}
	}
}

func TestEncodedLen(t *testing.T) {
	for n := 0; n <= 100; n++ {
		if got, want := b64.EncodedLen(n), (n+2)/3*4; got != want {
			t.Fatalf("padded EncodedLen(%d): expected %d, got %d", n, want, got)
		}
		if got, want := rawB64.EncodedLen(n), (n*8+5)/6; got != want {
			t.Fatalf("raw EncodedLen(%d): expected %d, got %d", n, want, got)
		}
	}
}

// TestDecodeStructure checks the strict structural rules on
// minimal inputs.
func TestDecodeStructure(t *testing.T) {
	dst := make([]byte, 16)

	// A lone symbol carries fewer bits than one byte.
	if _, err := rawB64.Decode(dst, []byte("A"), nil); !errors.Is(err, ctcodec.ErrInvalidInput) {
		t.Fatalf(`Decode("A"): expected ErrInvalidInput, got %v`, err)
	}
	// "AA" decodes to a single zero byte with zero trailing bits.
	out, err := rawB64.Decode(dst, []byte("AA"), nil)
	if err != nil {
		t.Fatalf(`Decode("AA"): %v`, err)
	}
	if len(out) != 1 || out[0] != 0 {
		t.Fatalf(`Decode("AA"): expected [0], got %v`, out)
	}
	// "AB" leaves a non-zero trailing bit: same byte, different
	// encoding, so it must be rejected.
	if _, err := rawB64.Decode(dst, []byte("AB"), nil); !errors.Is(err, ctcodec.ErrInvalidInput) {
		t.Fatalf(`Decode("AB"): expected ErrInvalidInput, got %v`, err)
	}
	// The padded variant requires the full block.
	if _, err := b64.Decode(dst, []byte("AA"), nil); !errors.Is(err, ctcodec.ErrInvalidInput) {
		t.Fatalf(`padded Decode("AA"): expected ErrInvalidInput, got %v`, err)
	}
	out, err = b64.Decode(dst, []byte("AA=="), nil)
	if err != nil {
		t.Fatalf(`padded Decode("AA=="): %v`, err)
	}
	if len(out) != 1 || out[0] != 0 {
		t.Fatalf(`padded Decode("AA=="): expected [0], got %v`, out)
	}
	// Padding alone is not a block.
	if _, err := b64.Decode(dst, []byte("===="), nil); !errors.Is(err, ctcodec.ErrInvalidInput) {
		t.Fatalf(`Decode("===="): expected ErrInvalidInput, got %v`, err)
	}
	// Padding in the middle of a block is caught by the mapper.
	if _, err := b64.Decode(dst, []byte("A==A"), nil); !errors.Is(err, ctcodec.ErrInvalidInput) {
		t.Fatalf(`Decode("A==A"): expected ErrInvalidInput, got %v`, err)
	}
	// The unpadded variant rejects padding anywhere.
	if _, err := rawB64.Decode(dst, []byte("AA=="), nil); !errors.Is(err, ctcodec.ErrInvalidInput) {
		t.Fatalf(`raw Decode("AA=="): expected ErrInvalidInput, got %v`, err)
	}
}

// TestDecodeEmpty checks that the empty string decodes to zero
// bytes for both flavors, even into a nil buffer.
func TestDecodeEmpty(t *testing.T) {
	for _, v := range []*Variant{&b64, &rawB64} {
		out, err := v.Decode(nil, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(out) != 0 {
			t.Fatalf("expected empty output, got %v", out)
		}
	}
}

// TestOverflow checks that short destination buffers fail before
// any write.
func TestOverflow(t *testing.T) {
	src := []byte("sensitive")
	n := b64.EncodedLen(len(src))

	dst := make([]byte, n-1)
	if _, err := b64.Encode(dst, src); !errors.Is(err, ctcodec.ErrOverflow) {
		t.Fatalf("Encode: expected ErrOverflow, got %v", err)
	}
	for _, b := range dst {
		if b != 0 {
			t.Fatalf("Encode wrote to dst before failing: %v", dst)
		}
	}

	enc := make([]byte, n)
	out, err := b64.Encode(enc, src)
	if err != nil {
		t.Fatal(err)
	}
	dst = make([]byte, len(src)-1)
	if _, err := b64.Decode(dst, out, nil); !errors.Is(err, ctcodec.ErrOverflow) {
		t.Fatalf("Decode: expected ErrOverflow, got %v", err)
	}
	for _, b := range dst {
		if b != 0 {
			t.Fatalf("Decode wrote to dst before failing: %v", dst)
		}
	}
}
