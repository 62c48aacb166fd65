// polyvec.go - Vector of ML-KEM polynomials.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// polyVec is an ordered sequence of K ring elements, K in {2,3,4}
// (spec §3).
type polyVec struct {
	vec []*poly
}

// compress compresses and serializes v into r at d bits per coefficient
// (d is 10 or 11 per parameter set; spec §4.3).
func (v *polyVec) compress(r []byte, d int) {
	perPoly := d * kyberN / 8
	for i, p := range v.vec {
		p.compress(r[i*perPoly:], d)
	}
}

// decompress deserializes and decompresses r into v; the approximate
// inverse of compress.
func (v *polyVec) decompress(r []byte, d int) {
	perPoly := d * kyberN / 8
	for i, p := range v.vec {
		p.decompress(r[i*perPoly:], d)
	}
}

// toBytes serializes v uncompressed.
func (v *polyVec) toBytes(r []byte) {
	for i, p := range v.vec {
		p.toBytes(r[i*polyBytes:])
	}
}

// fromBytes deserializes v; the inverse of toBytes.
func (v *polyVec) fromBytes(r []byte) {
	for i, p := range v.vec {
		p.fromBytes(r[i*polyBytes:])
	}
}

// ntt applies the forward NTT to every lane of v.
func (v *polyVec) ntt() {
	for _, p := range v.vec {
		p.ntt()
	}
}

// invntt applies the inverse NTT to every lane of v.
func (v *polyVec) invntt() {
	for _, p := range v.vec {
		p.invntt()
	}
}

// add computes v = a + b lane-wise, without reduction.
func (v *polyVec) add(a, b *polyVec) {
	for i, p := range v.vec {
		p.add(a.vec[i], b.vec[i])
	}
}

// reduce applies Barrett reduction to every coefficient of every lane.
func (v *polyVec) reduce() {
	for _, p := range v.vec {
		p.reduce()
	}
}

// zero overwrites every lane of v with zero coefficients.
func (v *polyVec) zero() {
	for _, p := range v.vec {
		p.zero()
	}
}

// compressedSize returns v's compressed-and-serialized size in bytes at d
// bits per coefficient.
func (v *polyVec) compressedSize(d int) int {
	return len(v.vec) * (d * kyberN / 8)
}

// basemulAccMontgomery computes p = Sum_k a[k]*b[k] in the NTT domain
// (spec §4.5): for each of the 64 degree-2 blocks in a poly, one
// basemul against the even sub-block and one against the odd (negated
// zeta) sub-block, accumulated across the K lanes, followed by a single
// Barrett reduction pass.
func (p *poly) basemulAccMontgomery(a, b *polyVec) {
	var r [2]int16
	for i := 0; i < kyberN; i += 4 {
		zeta := zetas[64+i/4]

		even := (*[2]int16)(p.coeffs[i : i+2])
		odd := (*[2]int16)(p.coeffs[i+2 : i+4])

		basemul(even, (*[2]int16)(a.vec[0].coeffs[i:i+2]), (*[2]int16)(b.vec[0].coeffs[i:i+2]), zeta)
		basemul(odd, (*[2]int16)(a.vec[0].coeffs[i+2:i+4]), (*[2]int16)(b.vec[0].coeffs[i+2:i+4]), -zeta)

		for k := 1; k < len(a.vec); k++ {
			basemul(&r, (*[2]int16)(a.vec[k].coeffs[i:i+2]), (*[2]int16)(b.vec[k].coeffs[i:i+2]), zeta)
			p.coeffs[i] += r[0]
			p.coeffs[i+1] += r[1]

			basemul(&r, (*[2]int16)(a.vec[k].coeffs[i+2:i+4]), (*[2]int16)(b.vec[k].coeffs[i+2:i+4]), -zeta)
			p.coeffs[i+2] += r[0]
			p.coeffs[i+3] += r[1]
		}
	}
	p.reduce()
}
