// poly.go - ML-KEM polynomial.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// poly is an element of R_q = Z_q[X]/(X^n+1): coeffs[0] + X*coeffs[1] +
// ... + X^{n-1}*coeffs[n-1]. Whether a given poly holds coefficients in the
// normal domain or the NTT domain is a property of the data flow, not of
// this type (spec §3).
type poly struct {
	coeffs [kyberN]int16
}

// compress lossily serializes p into r at d bits per coefficient
// (d is 4 or 5 for the ciphertext's v component, and 10 or 11 when
// polyVec.compress calls it for each lane of u; spec §4.3).
// Coefficients must already be Barrett-reduced by the caller.
func (p *poly) compress(r []byte, d int) {
	var vals [kyberN]uint16
	for i, c := range p.coeffs {
		t := toPositive(c)
		vals[i] = uint16((uint32(t)<<uint(d) + kyberQ/2) / kyberQ) & (uint16(1)<<uint(d) - 1)
	}
	bitPack(r, vals[:], d)
}

// decompress deserializes and decompresses r (the approximate inverse of
// compress) at d bits per coefficient.
func (p *poly) decompress(r []byte, d int) {
	var vals [kyberN]uint16
	bitUnpack(vals[:], r, d)
	for i, v := range vals {
		p.coeffs[i] = int16((uint32(kyberQ)*uint32(v) + (1 << uint(d-1))) >> uint(d))
	}
}

// toBytes serializes p uncompressed: 256 coefficients packed 12 bits each
// into 384 bytes (spec §4.3). Coefficients are canonicalized to [0, q)
// on the way out; frombytes performs no such reduction on the way in.
func (p *poly) toBytes(r []byte) {
	var vals [kyberN]uint16
	for i, c := range p.coeffs {
		vals[i] = uint16(toPositive(c))
	}
	bitPack(r, vals[:], 12)
}

// fromBytes deserializes p from its uncompressed 384-byte encoding; the
// inverse of toBytes. Any 12-bit value is accepted without reduction.
func (p *poly) fromBytes(r []byte) {
	var vals [kyberN]uint16
	bitUnpack(vals[:], r, 12)
	for i, v := range vals {
		p.coeffs[i] = int16(v)
	}
}

// fromMsg expands a 32-byte message into a polynomial: bit i becomes
// coefficient (q+1)/2 if set, 0 otherwise (spec §4.3).
func (p *poly) fromMsg(msg []byte) {
	const qHalf = (kyberQ + 1) / 2
	for i, v := range msg[:SymSize] {
		for j := 0; j < 8; j++ {
			mask := -int16((v >> uint(j)) & 1)
			p.coeffs[8*i+j] = mask & qHalf
		}
	}
}

// toMsg rounds p back to a 32-byte message, the approximate inverse of
// fromMsg (spec §4.3).
func (p *poly) toMsg(msg []byte) {
	for i := 0; i < SymSize; i++ {
		msg[i] = 0
		for j := 0; j < 8; j++ {
			x := toPositive(barrettReduce(p.coeffs[8*i+j]))
			t := ((uint32(x)<<1 + kyberQ/2) / kyberQ) & 1
			msg[i] |= byte(t) << uint(j)
		}
	}
}

// getNoise samples p's coefficients from CBD_eta given a 32-byte seed and a
// one-byte nonce (spec §4.4): SHAKE256(seed||nonce, 64*eta bytes), then CBD.
func (p *poly) getNoise(seed []byte, nonce byte, eta int) {
	buf := shake256Multi(64*eta, seed, []byte{nonce})
	p.cbd(buf, eta)
}

// ntt transforms p into the NTT domain in place and Barrett-reduces the
// result (spec §4.2).
func (p *poly) ntt() {
	ntt(&p.coeffs)
	p.reduce()
}

// invntt transforms p out of the NTT domain in place, leaving the result in
// the Montgomery domain (spec §4.2).
func (p *poly) invntt() {
	invntt(&p.coeffs)
}

// add computes p = a + b componentwise, without reduction.
func (p *poly) add(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i] + b.coeffs[i]
	}
}

// sub computes p = a - b componentwise, without reduction.
func (p *poly) sub(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i] - b.coeffs[i]
	}
}

// reduce applies Barrett reduction to every coefficient of p.
func (p *poly) reduce() {
	for i, c := range p.coeffs {
		p.coeffs[i] = barrettReduce(c)
	}
}

// tomont multiplies every coefficient of p by R^2 mod q, converting a
// normal-domain value into its Montgomery-domain representative.
func (p *poly) tomont() {
	const rSquaredModQ = 1353
	for i, c := range p.coeffs {
		p.coeffs[i] = fqmul(c, rSquaredModQ)
	}
}

// zero overwrites p's coefficients with zero, for zeroizing secret
// intermediates on all exit paths (spec §5).
func (p *poly) zero() {
	for i := range p.coeffs {
		p.coeffs[i] = 0
	}
}
