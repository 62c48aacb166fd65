// entropy.go - Entropy collaborator (spec §6's entropy_bytes).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "io"

// readEntropy fills all of buf from rng, wrapping a short read or
// error as ErrEntropyUnavailable (spec §7: entropy failures are terminal
// and surfaced as an operation failure, with no partial output).
func readEntropy(rng io.Reader, buf []byte) error {
	if _, err := io.ReadFull(rng, buf); err != nil {
		return ErrEntropyUnavailable
	}
	return nil
}
