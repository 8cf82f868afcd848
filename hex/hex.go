// Package hex implements constant-time hexadecimal encoding and
// decoding.
//
// Encoding uses the lowercase alphabet, and decoding accepts only
// the lowercase alphabet: every byte sequence has exactly one
// valid encoded form. A byte always encodes to exactly two
// characters, so there is no padding and no partial block.
package hex

import (
	"github.com/ericlagergren/ctcodec/internal/codec"
)

var encoding = codec.Variant{
	Bits: 4,
	Enc: []codec.Range{
		{Lo: 0, Hi: 9, Char: '0'},
		{Lo: 10, Hi: 15, Char: 'a'},
	},
	BlockBytes: 1,
	BlockSyms:  2,
}

// EncodedLen returns the length of an encoding of n source bytes.
// Specifically, it returns n * 2.
func EncodedLen(n int) int {
	return encoding.EncodedLen(n)
}

// DecodedLen returns the maximum length in bytes of the decoding
// of n hexadecimal characters.
func DecodedLen(n int) int {
	return encoding.DecodedLen(n)
}

// Encode encodes src into dst and returns the subslice of dst
// holding the result.
//
// If dst is smaller than EncodedLen(len(src)), Encode returns
// ctcodec.ErrOverflow without writing to dst.
//
// Encode runs in constant time for the length of src.
func Encode(dst, src []byte) ([]byte, error) {
	return encoding.Encode(dst, src)
}

// EncodeToString returns the hexadecimal encoding of src.
//
// EncodeToString runs in constant time for the length of src.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	out, _ := encoding.Encode(dst, src)
	return string(out)
}

// Decode decodes src into dst, skipping bytes found in ignore,
// and returns the subslice of dst holding the result. A nil
// ignore set skips nothing.
//
// Decode returns ctcodec.ErrOverflow if dst is smaller than the
// exact decoded length, detected before any write, and
// ctcodec.ErrInvalidInput if src contains characters outside the
// lowercase alphabet and the ignore set or an odd number of
// hexadecimal characters.
//
// Decode runs in constant time for the length of src: malformed
// characters are detected through an aggregate mask checked once
// at the end, so the error does not reveal which byte was at
// fault. Ignore-set membership is treated as public.
func Decode(dst, src, ignore []byte) ([]byte, error) {
	return encoding.Decode(dst, src, ignore)
}

// DecodeString decodes s, skipping bytes found in ignore.
//
// DecodeString runs in constant time for the length of s.
func DecodeString(s string, ignore []byte) ([]byte, error) {
	dst := make([]byte, DecodedLen(len(s)))
	return encoding.Decode(dst, []byte(s), ignore)
}
