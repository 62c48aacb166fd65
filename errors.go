// errors.go - Error kinds recognized at the core boundary (spec §7).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "errors"

var (
	// ErrEntropyUnavailable is returned when the external entropy source
	// failed; the caller's operation cannot proceed. Terminal, per spec §7.
	ErrEntropyUnavailable = errors.New("mlkem: entropy source unavailable")

	// ErrPrimitiveFailure is reserved for a failure of the underlying
	// hash/XOF primitive (spec §7). golang.org/x/crypto/sha3's Write/Read
	// never fail, so nothing in this package returns it today; it exists
	// so a caller-supplied alternate primitive has somewhere to surface
	// a terminal failure.
	ErrPrimitiveFailure = errors.New("mlkem: symmetric primitive failure")

	// ErrInvalidKeySize is returned when a byte-serialized key is the
	// wrong size for its ParameterSet.
	ErrInvalidKeySize = errors.New("mlkem: invalid key size")

	// ErrInvalidCipherTextSize is the value Decapsulate panics with when a
	// byte-serialized ciphertext is the wrong size for its ParameterSet.
	ErrInvalidCipherTextSize = errors.New("mlkem: invalid ciphertext size")

	// ErrInvalidPrivateKey is returned when a byte-serialized private key
	// fails its internal H(pk) consistency check.
	ErrInvalidPrivateKey = errors.New("mlkem: invalid private key")
)
