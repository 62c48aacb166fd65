// const_time.go - Constant-time comparison and conditional move (spec §6).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "crypto/subtle"

// ctEqual reports, in constant time with respect to the contents of a and
// b, whether the two equal-length byte slices are identical. There is no
// ecosystem replacement for crypto/subtle's constant-time primitives in
// the retrieval pack — this is the same call the teacher makes in its FO
// comparison, generalized into the named primitive spec §6 requires.
func ctEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// cmov overwrites dst with src, in constant time with respect to fail, iff
// fail is true. Used by decapsulation's implicit-rejection selection
// (spec §4.7): the branch it replaces must never depend on secret data.
func cmov(dst, src []byte, fail bool) {
	mask := 0
	if fail {
		mask = 1
	}
	subtle.ConstantTimeCopy(mask, dst, src)
}
