// Package ctcodec implements constant-time text codecs for
// cryptographic code.
//
// The subpackages base64, base32, and hex transform bytes to and
// from their textual representations without any branch or memory
// access that depends on the value of the input bytes, only on its
// length. Decoding is strict: every byte sequence has exactly one
// valid encoded form, and anything else—wrong padding, disallowed
// partial-block lengths, non-zero trailing bits—is rejected.
//
// All operations are pure functions over caller-supplied buffers.
// The library retains no state and never requires an allocation;
// the *ToString and *String conveniences allocate on the caller's
// behalf.
package ctcodec

import (
	"crypto/subtle"
	"errors"
	"runtime"
)

// ErrOverflow is returned when the destination buffer is too small
// for the exact result. It is detected before any write, so the
// destination is left untouched.
var ErrOverflow = errors.New("ctcodec: destination buffer too small")

// ErrInvalidInput is returned when the source text is not a valid,
// strict encoding for the selected variant.
var ErrInvalidInput = errors.New("ctcodec: malformed input")

// Verify reports whether x and y have equal contents.
//
// The time taken is a function of the length of the slices and is
// independent of the contents.
func Verify(x, y []byte) bool {
	return subtle.ConstantTimeCompare(x, y) == 1
}

// Wipe sets every byte in x to zero.
//
//go:noinline
func Wipe(x []byte) {
	// Marked "noinline" so that the compiler won't peer inside it
	// and notice that x can be DCEd.
	for i := range x {
		x[i] = 0
	}
	// KeepAlive should (hopefully) nudge the compiler away from
	// DCEing the for-loop.
	runtime.KeepAlive(x)
}
