// symmetric.go - SHA3/SHAKE symmetric primitives consumed by the core.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "golang.org/x/crypto/sha3"

// shake128Rate is the SHAKE128 sponge's rate in bytes (spec §4.4).
const shake128Rate = 168

// hash256 computes SHA3-256 over the concatenation of parts (spec §4.8).
func hash256(parts ...[]byte) [32]byte {
	h := sha3.New256()
	for _, p := range parts {
		h.Write(p)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// hash512 computes SHA3-512 over the concatenation of parts (spec §4.8).
func hash512(parts ...[]byte) [64]byte {
	h := sha3.New512()
	for _, p := range parts {
		h.Write(p)
	}
	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out
}

// shake256Multi absorbs the concatenation of parts and squeezes outLen
// bytes from SHAKE256 in one shot (spec §4.8's shake256_multi collaborator).
// Used both as the PRF driving CBD sampling and as the implicit-rejection
// "rkprf" in the KEM layer.
func shake256Multi(outLen int, parts ...[]byte) []byte {
	h := sha3.NewShake256()
	for _, p := range parts {
		h.Write(p)
	}
	out := make([]byte, outLen)
	h.Read(out)
	return out
}

// xof wraps a SHAKE128 sponge in the {init, absorbed, squeezing, closed}
// state machine spec §4.9 calls for, used only by matrix expansion
// (spec §4.4). Squeeze may be called repeatedly before Close; Close
// releases the underlying sponge state.
type xof struct {
	h sha3.ShakeHash
}

// newXOF returns an xof in the "absorbed" state: seed has already been
// written and the sponge is ready to squeeze.
func newXOF(seed []byte) *xof {
	h := sha3.NewShake128()
	h.Write(seed)
	return &xof{h: h}
}

// squeezeBlocks reads n whole 168-byte SHAKE128 blocks into buf.
func (x *xof) squeezeBlocks(buf []byte, n int) {
	x.h.Read(buf[:n*shake128Rate])
}

// close releases the xof's underlying sponge state.
func (x *xof) close() {
	x.h = nil
}
