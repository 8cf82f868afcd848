package base64

import (
	"github.com/ericlagergren/ctcodec/internal/codec"
)

// StdEncoding is the standard, padded Base64 encoding.
//
// It uses the following table:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	abcdefghijklmnopqrstuvwxyz
//	0123456789
//	+/
var StdEncoding = &Encoding{variant: codec.Variant{
	Bits:       6,
	Enc:        stdRanges,
	Pad:        '=',
	BlockBytes: 3,
	BlockSyms:  4,
}}

// RawStdEncoding is the unpadded standard Base64 encoding.
//
// It uses the same table as StdEncoding.
var RawStdEncoding = &Encoding{variant: codec.Variant{
	Bits:       6,
	Enc:        stdRanges,
	BlockBytes: 3,
	BlockSyms:  4,
}}

// URLEncoding is the padded base64url encoding.
//
// It uses the following table:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	abcdefghijklmnopqrstuvwxyz
//	0123456789
//	-_
var URLEncoding = &Encoding{variant: codec.Variant{
	Bits:       6,
	Enc:        urlRanges,
	Pad:        '=',
	BlockBytes: 3,
	BlockSyms:  4,
}}

// RawURLEncoding is the unpadded base64url encoding.
//
// It uses the same table as URLEncoding.
var RawURLEncoding = &Encoding{variant: codec.Variant{
	Bits:       6,
	Enc:        urlRanges,
	BlockBytes: 3,
	BlockSyms:  4,
}}

var stdRanges = []codec.Range{
	{Lo: 0, Hi: 25, Char: 'A'},
	{Lo: 26, Hi: 51, Char: 'a'},
	{Lo: 52, Hi: 61, Char: '0'},
	{Lo: 62, Hi: 62, Char: '+'},
	{Lo: 63, Hi: 63, Char: '/'},
}

var urlRanges = []codec.Range{
	{Lo: 0, Hi: 25, Char: 'A'},
	{Lo: 26, Hi: 51, Char: 'a'},
	{Lo: 52, Hi: 61, Char: '0'},
	{Lo: 62, Hi: 62, Char: '-'},
	{Lo: 63, Hi: 63, Char: '_'},
}

// Encoding is a particular Base64 encoding.
//
// See the package docs for a comparison with encoding/base64.
type Encoding struct {
	variant codec.Variant
}

// EncodedLen returns the size in bytes of the Base64 encoding of
// n source bytes.
func (e *Encoding) EncodedLen(n int) int {
	return e.variant.EncodedLen(n)
}

// DecodedLen returns the maximum length in bytes of the decoding
// of n Base64-encoded bytes.
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
// ctcodec.ErrInvalidInput if src is not a strict Base64 encoding
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
