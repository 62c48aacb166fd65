// cbd.go - Centered binomial distribution.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// loadLittleEndian24 loads 3 bytes into a uint32 in little-endian order.
func loadLittleEndian24(x []byte) uint32 {
	return uint32(x[0]) | uint32(x[1])<<8 | uint32(x[2])<<16
}

// loadLittleEndian32 loads 4 bytes into a uint32 in little-endian order.
func loadLittleEndian32(x []byte) uint32 {
	return uint32(x[0]) | uint32(x[1])<<8 | uint32(x[2])<<16 | uint32(x[3])<<24
}

// cbd samples p's coefficients from the centered binomial distribution of
// width eta (eta in {2,3}) given a uniformly random buffer of 64*eta bytes
// (spec §4.4). Each coefficient is Sum_{i<eta} a_i - Sum_{i<eta} b_i for
// uniform bits a_i, b_i, landing in [-eta, eta].
func (p *poly) cbd(buf []byte, eta int) {
	switch eta {
	case 2:
		for i := 0; i < kyberN/8; i++ {
			t := loadLittleEndian32(buf[4*i:])
			d := t & 0x55555555
			d += (t >> 1) & 0x55555555

			for j := 0; j < 8; j++ {
				a := int16((d >> uint(4*j+0)) & 0x3)
				b := int16((d >> uint(4*j+2)) & 0x3)
				p.coeffs[8*i+j] = a - b
			}
		}
	case 3:
		for i := 0; i < kyberN/4; i++ {
			t := loadLittleEndian24(buf[3*i:])
			d := t & 0x00249249
			d += (t >> 1) & 0x00249249
			d += (t >> 2) & 0x00249249

			for j := 0; j < 4; j++ {
				a := int16((d >> uint(6*j+0)) & 0x7)
				b := int16((d >> uint(6*j+3)) & 0x7)
				p.coeffs[4*i+j] = a - b
			}
		}
	default:
		panic("mlkem: eta must be in {2,3}")
	}
}
