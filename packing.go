// packing.go - Generic little-endian bit packing shared by poly and polyvec.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// bitPack serializes vals (each holding at most d significant bits, LSB
// first) into dst as a little-endian bit string, d*len(vals)/8 bytes long.
// It is the single packer behind poly.compress (d=4,5), polyVec.compress
// (d=10,11), and poly.toBytes (d=12) — the teacher hand-unrolled one
// fixed-width packer per scheme; ML-KEM needs five different widths, so
// those are generalized into one routine here instead of being duplicated.
func bitPack(dst []byte, vals []uint16, d int) {
	var acc uint32
	accBits := 0
	pos := 0
	for _, v := range vals {
		acc |= uint32(v) << uint(accBits)
		accBits += d
		for accBits >= 8 {
			dst[pos] = byte(acc)
			acc >>= 8
			accBits -= 8
			pos++
		}
	}
	if accBits > 0 {
		dst[pos] = byte(acc)
	}
}

// bitUnpack is the inverse of bitPack.
func bitUnpack(vals []uint16, src []byte, d int) {
	var acc uint32
	accBits := 0
	pos := 0
	mask := uint32(1)<<uint(d) - 1
	for i := range vals {
		for accBits < d {
			acc |= uint32(src[pos]) << uint(accBits)
			accBits += 8
			pos++
		}
		vals[i] = uint16(acc & mask)
		acc >>= uint(d)
		accBits -= d
	}
}
