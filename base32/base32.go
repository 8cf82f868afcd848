// Package base32 implements constant-time Base32 encoding and
// decoding as specified by RFC 4648.
//
// Like the base64 package, decoding is strict: padded encodings
// must carry exactly the padding required to reach a block
// boundary, unpadded encodings may not contain the padding
// character at all, non-zero bits beyond the last whole byte are
// rejected, and only the canonical (uppercase) alphabet is
// accepted so that every byte sequence has exactly one valid
// encoded form.
package base32

import (
	"github.com/ericlagergren/ctcodec/internal/codec"
)

// StdEncoding is the standard, padded Base32 encoding.
//
// It uses the following table:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	234567
var StdEncoding = &Encoding{variant: codec.Variant{
	Bits:       5,
	Enc:        stdRanges,
	Pad:        '=',
	BlockBytes: 5,
	BlockSyms:  8,
}}

// RawStdEncoding is the unpadded standard Base32 encoding.
//
// It uses the same table as StdEncoding.
var RawStdEncoding = &Encoding{variant: codec.Variant{
	Bits:       5,
	Enc:        stdRanges,
	BlockBytes: 5,
	BlockSyms:  8,
}}

// HexEncoding is the padded base32hex encoding, the "Extended
// Hex Alphabet" of RFC 4648.
//
// It uses the following table:
//
//	0123456789
//	ABCDEFGHIJKLMNOPQRSTUV
var HexEncoding = &Encoding{variant: codec.Variant{
	Bits:       5,
	Enc:        hexRanges,
	Pad:        '=',
	BlockBytes: 5,
	BlockSyms:  8,
}}

// RawHexEncoding is the unpadded base32hex encoding.
//
// It uses the same table as HexEncoding.
var RawHexEncoding = &Encoding{variant: codec.Variant{
	Bits:       5,
	Enc:        hexRanges,
	BlockBytes: 5,
	BlockSyms:  8,
}}

var stdRanges = []codec.Range{
	{Lo: 0, Hi: 25, Char: 'A'},
	{Lo: 26, Hi: 31, Char: '2'},
}

var hexRanges = []codec.Range{
	{Lo: 0, Hi: 9, Char: '0'},
	{Lo: 10, Hi: 31, Char: 'A'},
}

// Encoding is a particular Base32 encoding.
type Encoding struct {
	variant codec.Variant
}

// EncodedLen returns the size in bytes of the Base32 encoding of
// n source bytes.
func (e *Encoding) EncodedLen(n int) int {
	return e.variant.EncodedLen(n)
}

// DecodedLen returns the maximum length in bytes of the decoding
// of n Base32-encoded bytes.
func (e *Encoding) DecodedLen(n int) int {
	return e.variant.DecodedLen(n)
}

// Encode encodes src into dst and returns the subslice of dst
// holding the result.
//
// If dst is smaller than EncodedLen(len(src)), Encode returns
// ctcodec.ErrOverflow without writing to dst.
//
// Encode runs in constant time for the length of src.
func (e *Encoding) Encode(dst, src []byte) ([]byte, error) {
	return e.variant.Encode(dst, src)
}

// EncodeToString encodes src.
//
// EncodeToString runs in constant time for the length of src.
func (e *Encoding) EncodeToString(src []byte) string {
	dst := make([]byte, e.EncodedLen(len(src)))
	out, _ := e.variant.Encode(dst, src)
	return string(out)
}

// Decode decodes src into dst, skipping bytes found in ignore,
// and returns the subslice of dst holding the result. A nil
// ignore set skips nothing.
//
// Decode returns ctcodec.ErrOverflow if dst is smaller than the
// exact decoded length, detected before any write, and
// ctcodec.ErrInvalidInput if src is not a strict Base32 encoding
// for this Encoding.
//
// Decode runs in constant time for the length of src: malformed
// payload symbols are detected through an aggregate mask checked
// once per call, so the error does not reveal which byte was at
// fault. Ignore-set membership and padding structure are treated
// as public.
func (e *Encoding) Decode(dst, src, ignore []byte) ([]byte, error) {
	return e.variant.Decode(dst, src, ignore)
}

// DecodeString decodes s, skipping bytes found in ignore.
//
// DecodeString runs in constant time for the length of s.
func (e *Encoding) DecodeString(s string, ignore []byte) ([]byte, error) {
	dst := make([]byte, e.DecodedLen(len(s)))
	return e.variant.Decode(dst, []byte(s), ignore)
}
