// Package codec implements the generic constant-time encode and
// decode engine shared by the base64, base32, and hex packages.
//
// A codec variant is entirely described by a Variant value: the
// number of bits per symbol, the alphabet as a table of contiguous
// sub-ranges, and the padding character. The engine never branches
// on or indexes by a symbol value; the sub-range table is folded
// with mask-and-accumulate arithmetic so every sub-range is
// evaluated for every symbol regardless of its value.
//
// Ignore-set membership and padding structure are public data:
// scanning them may branch. Only the payload symbols are treated
// as secret.
package codec

import (
	"github.com/ericlagergren/ctcodec"
	"github.com/ericlagergren/ctcodec/internal/ct"
)

// Range is one contiguous run of a codec alphabet: the symbol
// values Lo through Hi map to the characters Char through
// Char+(Hi-Lo).
type Range struct {
	Lo, Hi byte
	Char   byte
}

// Variant is an immutable descriptor of one codec flavor.
//
// BlockBytes and BlockSyms are the smallest integers satisfying
// BlockBytes*8 == BlockSyms*Bits, i.e. the input and output sizes
// of one full block.
type Variant struct {
	Bits       uint    // bits carried by one symbol
	Enc        []Range // alphabet sub-range table
	Pad        byte    // padding character, 0 if unpadded
	BlockBytes int
	BlockSyms  int
}

// symToChar maps the Bits-bit value v to its alphabet character.
//
// Every sub-range is evaluated; exactly one mask is all-ones
// because v is always in [0, 1<<Bits).
func (v *Variant) symToChar(s byte) byte {
	var c byte
	for _, r := range v.Enc {
		m := ct.Ge(s, r.Lo) & ct.Le(s, r.Hi)
		c |= m & (s - r.Lo + r.Char)
	}
	return c
}

// charToSym maps an alphabet character back to its symbol value,
// or to 0xff if c is outside the alphabet. Symbol values never
// exceed 0x3f, so bits [7:6] distinguish failure.
func (v *Variant) charToSym(c byte) byte {
	var s, ok byte
	for _, r := range v.Enc {
		lo := r.Char
		hi := r.Char + (r.Hi - r.Lo)
		m := ct.Ge(c, lo) & ct.Le(c, hi)
		s |= m & (c - lo + r.Lo)
		ok |= m
	}
	return s | ^ok
}

// EncodedLen returns the exact size in bytes of the encoding of n
// source bytes.
func (v *Variant) EncodedLen(n int) int {
	if v.Pad == 0 {
		return (n*8 + int(v.Bits) - 1) / int(v.Bits)
	}
	return (n + v.BlockBytes - 1) / v.BlockBytes * v.BlockSyms
}

// DecodedLen returns the maximum size in bytes of the decoding of
// n encoded bytes. The result is exact when the input carries no
// ignored bytes and, for padded variants, a whole number of
// blocks.
func (v *Variant) DecodedLen(n int) int {
	return n * int(v.Bits) / 8
}

// Encode encodes src into dst and returns the subslice of dst
// holding the result. If dst is smaller than EncodedLen(len(src)),
// Encode returns ctcodec.ErrOverflow without writing.
//
// Encode runs in constant time for the length of src.
func (v *Variant) Encode(dst, src []byte) ([]byte, error) {
	n := v.EncodedLen(len(src))
	if len(dst) < n {
		return nil, ctcodec.ErrOverflow
	}

	mask := byte(1)<<v.Bits - 1
	var (
		acc    uint16
		accLen uint
		pos    int
	)
	for _, b := range src {
		acc = acc<<8 | uint16(b)
		accLen += 8
		for accLen >= v.Bits {
			accLen -= v.Bits
			dst[pos] = v.symToChar(byte(acc>>accLen) & mask)
			pos++
		}
	}
	if accLen > 0 {
		// Final partial symbol, missing bits set to zero.
		dst[pos] = v.symToChar(byte(acc<<(v.Bits-accLen)) & mask)
		pos++
	}
	for pos < n {
		dst[pos] = v.Pad
		pos++
	}
	return dst[:pos], nil
}

// Decode decodes src into dst, skipping bytes found in ignore, and
// returns the subslice of dst holding the result.
//
// Decode returns ctcodec.ErrOverflow if dst is smaller than the
// exact decoded length, detected before any write. It returns
// ctcodec.ErrInvalidInput if src is not a strict encoding:
// characters outside the alphabet and the ignore set, a disallowed
// partial-block length, missing or extra padding, or non-zero bits
// beyond the last whole byte.
//
// The symbol-mapping pass runs in constant time for the number of
// symbols: per-symbol validity accumulates into a mask that is
// checked once at the end, never mid-stream. Ignore-set and
// padding scans branch, but only on public data.
func (v *Variant) Decode(dst, src, ignore []byte) ([]byte, error) {
	// Trailing padding, possibly interleaved with ignored bytes,
	// is structural: strip and count it.
	end := len(src)
	pad := 0
	if v.Pad != 0 {
	scan:
		for end > 0 {
			switch c := src[end-1]; {
			case contains(ignore, c):
				end--
			case c == v.Pad:
				pad++
				end--
			default:
				break scan
			}
		}
	}

	nsym := 0
	for _, c := range src[:end] {
		if !contains(ignore, c) {
			nsym++
		}
	}

	// A partial block must carry fewer leftover bits than one
	// symbol, otherwise the same bytes would have a shorter valid
	// encoding.
	bits := nsym * int(v.Bits)
	extra := uint(bits % 8)
	if extra >= v.Bits {
		return nil, ctcodec.ErrInvalidInput
	}
	if v.Pad != 0 {
		want := 0
		if r := nsym % v.BlockSyms; r != 0 {
			want = v.BlockSyms - r
		}
		if pad != want {
			return nil, ctcodec.ErrInvalidInput
		}
	}
	binLen := bits / 8
	if binLen > len(dst) {
		return nil, ctcodec.ErrOverflow
	}

	mask := byte(1)<<v.Bits - 1
	var (
		acc     uint16
		accLen  uint
		pos     int
		invalid byte
	)
	for _, c := range src[:end] {
		if contains(ignore, c) {
			continue
		}
		s := v.charToSym(c)
		invalid |= s
		acc = acc<<v.Bits | uint16(s&mask)
		accLen += v.Bits
		if accLen >= 8 {
			accLen -= 8
			dst[pos] = byte(acc >> accLen)
			pos++
		}
	}
	// Non-zero bits beyond the last whole byte would make the
	// encoding ambiguous.
	invalid |= ct.Nonzero(byte(acc) & (byte(1)<<accLen - 1))
	if invalid&0xc0 != 0 {
		return nil, ctcodec.ErrInvalidInput
	}
	return dst[:binLen], nil
}

// contains reports whether c is in the ignore set. The set is
// caller-supplied public data, so the scan may branch.
func contains(set []byte, c byte) bool {
	for _, b := range set {
		if b == c {
			return true
		}
	}
	return false
}
