// kem.go - ML-KEM key encapsulation mechanism (Fujisaki-Okamoto transform).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"bytes"
	"io"
)

// PublicKey is an ML-KEM public key.
type PublicKey struct {
	pk *indcpaPublicKey
	p  *ParameterSet
}

// Bytes returns the byte serialization of a PublicKey.
func (pk *PublicKey) Bytes() []byte {
	b := make([]byte, len(pk.pk.packed))
	copy(b, pk.pk.packed)
	return b
}

// PublicKeyFromBytes deserializes a byte-serialized PublicKey for the given
// ParameterSet.
func (p *ParameterSet) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	pk := &PublicKey{pk: new(indcpaPublicKey), p: p}
	if err := pk.pk.fromBytes(p, b); err != nil {
		return nil, err
	}
	return pk, nil
}

// PrivateKey is an ML-KEM private key (spec §3's KEM secret key).
type PrivateKey struct {
	PublicKey
	sk *indcpaSecretKey
	z  []byte
}

// Bytes returns the byte serialization of a PrivateKey: the IND-CPA secret
// key, the embedded public key, H(public key), and the rejection seed z,
// concatenated (spec §3, §6).
func (sk *PrivateKey) Bytes() []byte {
	p := sk.PublicKey.p

	b := make([]byte, 0, p.secretKeySize)
	b = append(b, sk.sk.packed...)
	b = append(b, sk.PublicKey.pk.packed...)
	b = append(b, sk.PublicKey.pk.h[:]...)
	b = append(b, sk.z...)

	return b
}

// PrivateKeyFromBytes deserializes a byte-serialized PrivateKey, verifying
// that the embedded H(pk) digest matches the embedded public key.
func (p *ParameterSet) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != p.secretKeySize {
		return nil, ErrInvalidKeySize
	}

	sk := new(PrivateKey)
	sk.sk = new(indcpaSecretKey)
	sk.z = make([]byte, SymSize)
	sk.PublicKey.pk = new(indcpaPublicKey)
	sk.PublicKey.p = p

	// De-serialize the public key first.
	off := p.indcpaSecretKeySize
	if err := sk.PublicKey.pk.fromBytes(p, b[off:off+p.publicKeySize]); err != nil {
		return nil, err
	}
	off += p.publicKeySize
	if !bytes.Equal(sk.PublicKey.pk.h[:], b[off:off+SymSize]) {
		return nil, ErrInvalidPrivateKey
	}
	off += SymSize
	copy(sk.z, b[off:])

	// Then go back to de-serialize the private key.
	if err := sk.sk.fromBytes(p, b[:p.indcpaSecretKeySize]); err != nil {
		return nil, err
	}

	return sk, nil
}

// GenerateKeyPair implements spec §4.7 KEM KeyGen: draw a 32-byte seed d
// and a 32-byte rejection seed z, run IND-CPA.KeyGen(d, K), and assemble
// the KEM secret key around it.
func (p *ParameterSet) GenerateKeyPair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	var d [SymSize]byte
	if err := readEntropy(rng, d[:]); err != nil {
		return nil, nil, err
	}

	kp := new(PrivateKey)
	var err error
	if kp.PublicKey.pk, kp.sk, err = p.indcpaKeyPair(d[:]); err != nil {
		return nil, nil, err
	}
	kp.PublicKey.p = p

	kp.z = make([]byte, SymSize)
	if err := readEntropy(rng, kp.z); err != nil {
		return nil, nil, err
	}

	return &kp.PublicKey, kp, nil
}

// Encapsulate implements spec §4.7 KEM Encapsulate: hash fresh randomness
// into a message m, derive (shared secret, coins) from m and H(pk), and
// IND-CPA-encrypt m under those coins.
func (pk *PublicKey) Encapsulate(rng io.Reader) (cipherText, sharedSecret []byte, err error) {
	var buf [SymSize]byte
	if err = readEntropy(rng, buf[:]); err != nil {
		return nil, nil, err
	}
	m := hash256(buf[:]) // Don't release raw RNG output as the message.

	kr := hash512(m[:], pk.pk.h[:]) // Multitarget countermeasure for coins + contributory KEM.
	kBar, coins := kr[:SymSize], kr[SymSize:]

	cipherText = make([]byte, pk.p.cipherTextSize)
	pk.p.indcpaEncrypt(cipherText, m[:], pk.pk, coins)

	sharedSecret = make([]byte, SymSize)
	copy(sharedSecret, kBar)

	return cipherText, sharedSecret, nil
}

// Decapsulate implements spec §4.7 KEM Decapsulate: re-encrypt under the
// recovered message and compare in constant time, falling back to a
// SHAKE256-derived rejection secret on mismatch.
//
// Decapsulate never returns an error. A malformed or tampered ciphertext
// yields a deterministic but unusable shared secret instead of a failure
// (spec §4.10, §7 implicit rejection). Providing a cipherText that is the
// wrong length for the ParameterSet panics, since that is a caller
// programming error, not a cryptographic one.
func (sk *PrivateKey) Decapsulate(cipherText []byte) (sharedSecret []byte) {
	p := sk.PublicKey.p
	if len(cipherText) != p.cipherTextSize {
		panic(ErrInvalidCipherTextSize)
	}

	var mPrime [SymSize]byte
	p.indcpaDecrypt(mPrime[:], cipherText, sk.sk)

	kr := hash512(mPrime[:], sk.PublicKey.pk.h[:])
	kBarPrime, coinsPrime := kr[:SymSize], kr[SymSize:]

	ctPrime := make([]byte, p.cipherTextSize)
	p.indcpaEncrypt(ctPrime, mPrime[:], sk.PublicKey.pk, coinsPrime)

	kRej := shake256Multi(SymSize, sk.z, cipherText)
	fail := !ctEqual(cipherText, ctPrime)

	sharedSecret = make([]byte, SymSize)
	copy(sharedSecret, kBarPrime)
	cmov(sharedSecret, kRej, fail)

	return sharedSecret
}
