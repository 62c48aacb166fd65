// indcpa.go - ML-KEM IND-CPA public-key encryption scheme.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// packPublicKey serializes the public key as the uncompressed polyvec
// t-hat followed by the 32-byte seed rho used to derive the matrix A.
func packPublicKey(r []byte, t *polyVec, rho []byte) {
	t.toBytes(r)
	copy(r[t.compressedSizeUncompressed():], rho[:SymSize])
}

// compressedSizeUncompressed is the uncompressed polyvec byte size; named
// distinctly from polyVec.compressedSize (which is for the ciphertext's
// lossy u component) to avoid confusing the two packing conventions.
func (v *polyVec) compressedSizeUncompressed() int {
	return len(v.vec) * polyBytes
}

// unpackPublicKey is the inverse of packPublicKey.
func unpackPublicKey(t *polyVec, rho, packedPk []byte) {
	off := t.compressedSizeUncompressed()
	t.fromBytes(packedPk[:off])
	copy(rho, packedPk[off:off+SymSize])
}

// packCiphertext serializes the ciphertext as compressed u followed by
// compressed v.
func packCiphertext(r []byte, u *polyVec, v *poly, du, dv int) {
	u.compress(r, du)
	v.compress(r[u.compressedSize(du):], dv)
}

// unpackCiphertext is the inverse of packCiphertext.
func unpackCiphertext(u *polyVec, v *poly, c []byte, du, dv int) {
	u.decompress(c, du)
	v.decompress(c[u.compressedSize(du):], dv)
}

// genMatrix deterministically expands the K*K matrix A (or its transpose)
// from a 32-byte seed via SHAKE128 rejection sampling (spec §4.4). In
// transposed mode entry (i,j) absorbs rho||j||i; otherwise rho||i||j — the
// two are each other's transpose, which indcpaKeyPair/indcpaEncrypt rely on.
func genMatrix(a []polyVec, rho []byte, transposed bool) {
	const maxBlocks = 4 // 4*168 = 672 bytes covers 256 12-bit samples with overwhelming probability.
	var buf [shake128Rate * maxBlocks]byte
	var seed [SymSize + 2]byte
	copy(seed[:SymSize], rho)

	for i := range a {
		for j, p := range a[i].vec {
			if transposed {
				seed[SymSize] = byte(j)
				seed[SymSize+1] = byte(i)
			} else {
				seed[SymSize] = byte(i)
				seed[SymSize+1] = byte(j)
			}

			x := newXOF(seed[:])
			x.squeezeBlocks(buf[:], maxBlocks)

			ctr, pos, maxPos := 0, 0, len(buf)
			for ctr < kyberN {
				d1 := uint16(buf[pos]) | (uint16(buf[pos+1]&0x0f) << 8)
				d2 := uint16(buf[pos+1]>>4) | (uint16(buf[pos+2]) << 4)
				pos += 3

				if d1 < kyberQ && ctr < kyberN {
					p.coeffs[ctr] = int16(d1)
					ctr++
				}
				if d2 < kyberQ && ctr < kyberN {
					p.coeffs[ctr] = int16(d2)
					ctr++
				}

				if pos+3 > maxPos {
					// Squeeze one more block on the unlikely chance the
					// initial buffer was insufficient (spec §4.4).
					x.squeezeBlocks(buf[:shake128Rate], 1)
					pos, maxPos = 0, shake128Rate
				}
			}
			x.close()
		}
	}
}

// indcpaPublicKey is the packed IND-CPA public key, plus its cached SHA3-256
// digest (embedded in the KEM secret key, spec §3).
type indcpaPublicKey struct {
	packed []byte
	h      [32]byte
}

func (pk *indcpaPublicKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaPublicKeySize {
		return ErrInvalidKeySize
	}
	pk.packed = make([]byte, len(b))
	copy(pk.packed, b)
	pk.h = hash256(pk.packed)
	return nil
}

// indcpaSecretKey is the packed IND-CPA secret key (s-hat).
type indcpaSecretKey struct {
	packed []byte
}

func (sk *indcpaSecretKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaSecretKeySize {
		return ErrInvalidKeySize
	}
	sk.packed = make([]byte, len(b))
	copy(sk.packed, b)
	return nil
}

// indcpaKeyPair implements spec §4.6 KeyGen: derive (rho, sigma) from a
// 32-byte seed d, expand A, sample s and e via CBD_eta1, and form
// t-hat = A-hat * s-hat + e-hat in the NTT domain.
func (p *ParameterSet) indcpaKeyPair(d []byte) (*indcpaPublicKey, *indcpaSecretKey, error) {
	// FIPS-203 domain-separates the seed hash with the module rank K.
	seedHash := hash512(d, []byte{byte(p.k)})
	rho, sigma := seedHash[:SymSize], seedHash[SymSize:]

	a := p.allocMatrix()
	genMatrix(a, rho, false)

	var nonce byte
	skpv := p.allocPolyVec()
	for _, pv := range skpv.vec {
		pv.getNoise(sigma, nonce, p.eta1)
		nonce++
	}
	skpv.ntt()

	e := p.allocPolyVec()
	for _, pv := range e.vec {
		pv.getNoise(sigma, nonce, p.eta1)
		nonce++
	}
	e.ntt()

	pkpv := p.allocPolyVec()
	for i, pv := range pkpv.vec {
		pv.basemulAccMontgomery(&skpv, &a[i])
		pv.tomont()
	}
	pkpv.add(&pkpv, &e)
	pkpv.reduce()

	sk := &indcpaSecretKey{packed: make([]byte, p.indcpaSecretKeySize)}
	skpv.toBytes(sk.packed)

	pk := &indcpaPublicKey{packed: make([]byte, p.indcpaPublicKeySize)}
	packPublicKey(pk.packed, &pkpv, rho)
	pk.h = hash256(pk.packed)

	skpv.zero()
	e.zero()

	return pk, sk, nil
}

// indcpaEncrypt implements spec §4.6 Encrypt: sample r, e1, e2 via CBD from
// coins, form u = A-hat^T * r-hat (inverse-NTT'd) + e1 and
// v = t-hat^T * r-hat (inverse-NTT'd) + e2 + decompress(frommsg(m)).
func (p *ParameterSet) indcpaEncrypt(c, m []byte, pk *indcpaPublicKey, coins []byte) {
	var rho [SymSize]byte
	pkpv := p.allocPolyVec()
	unpackPublicKey(&pkpv, rho[:], pk.packed)

	var k poly
	k.fromMsg(m)

	at := p.allocMatrix()
	genMatrix(at, rho[:], true)

	var nonce byte
	sp := p.allocPolyVec()
	for _, pv := range sp.vec {
		pv.getNoise(coins, nonce, p.eta1)
		nonce++
	}
	sp.ntt()

	ep := p.allocPolyVec()
	for _, pv := range ep.vec {
		pv.getNoise(coins, nonce, eta2)
		nonce++
	}

	var epp poly
	epp.getNoise(coins, nonce, eta2)

	bp := p.allocPolyVec()
	for i, pv := range bp.vec {
		pv.basemulAccMontgomery(&sp, &at[i])
	}
	bp.invntt()

	var v poly
	v.basemulAccMontgomery(&pkpv, &sp)
	v.invntt()

	bp.add(&bp, &ep)
	v.add(&v, &epp)
	v.add(&v, &k)

	bp.reduce()
	v.reduce()

	packCiphertext(c, &bp, &v, p.polyVecCompressD, p.polyCompressD)

	sp.zero()
}

// indcpaDecrypt implements spec §4.6 Decrypt: recompute s-hat^T * NTT(u)
// and subtract it from v, then round back to a message.
func (p *ParameterSet) indcpaDecrypt(m, c []byte, sk *indcpaSecretKey) {
	bp, v := p.allocPolyVec(), new(poly)
	unpackCiphertext(&bp, v, c, p.polyVecCompressD, p.polyCompressD)

	skpv := p.allocPolyVec()
	skpv.fromBytes(sk.packed)

	bp.ntt()

	var mp poly
	mp.basemulAccMontgomery(&skpv, &bp)
	mp.invntt()

	mp.sub(v, &mp)
	mp.reduce()

	mp.toMsg(m)
}

func (p *ParameterSet) allocMatrix() []polyVec {
	m := make([]polyVec, p.k)
	for i := range m {
		m[i] = p.allocPolyVec()
	}
	return m
}

func (p *ParameterSet) allocPolyVec() polyVec {
	vec := make([]*poly, p.k)
	for i := range vec {
		vec[i] = new(poly)
	}
	return polyVec{vec}
}
