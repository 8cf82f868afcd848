// Package base64 implements constant-time Base64 encoding and
// decoding as specified by RFC 4648.
//
// Comparison to encoding/base64
//
// This package is not a drop-in replacement for encoding/base64.
//
// Unlike encoding/base64, decoding is strict: every byte sequence
// has exactly one valid encoded form. Padded encodings must carry
// exactly the padding required to reach a block boundary, unpadded
// encodings may not contain the padding character at all, and any
// non-zero bits beyond the last whole byte are rejected (see
// section 3.5 of RFC 4648).
//
// Unlike encoding/base64, Decode takes an explicit ignore set
// instead of silently accepting '\r' and '\n', and it does not
// return partial results: on malformed input no decoded bytes are
// returned at all, and the error does not reveal which byte was
// at fault.
package base64
