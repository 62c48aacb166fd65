// params.go - ML-KEM parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "fmt"

const (
	// SymSize is the size of the shared secret (and certain internal
	// parameters such as hashes and seeds) in bytes.
	SymSize = 32

	kyberN = 256
	kyberQ = 3329

	// polyBytes is the uncompressed, serialized size of a single
	// polynomial: 256 coefficients packed 12 bits each.
	polyBytes = 384

	eta2 = 2
)

// AlgorithmID names a fixed ML-KEM parameter set, per spec §6.
type AlgorithmID int

const (
	// MLKEM512 is ML-KEM-512 (NIST security category 1, K=2).
	MLKEM512 AlgorithmID = iota
	// MLKEM768 is ML-KEM-768 (NIST security category 3, K=3).
	MLKEM768
	// MLKEM1024 is ML-KEM-1024 (NIST security category 5, K=4).
	MLKEM1024
)

func (a AlgorithmID) String() string {
	switch a {
	case MLKEM512:
		return "ML-KEM-512"
	case MLKEM768:
		return "ML-KEM-768"
	case MLKEM1024:
		return "ML-KEM-1024"
	default:
		return fmt.Sprintf("ML-KEM(unknown=%d)", int(a))
	}
}

var (
	// paramsMLKEM512 is the ML-KEM-512 parameter set.
	//
	// This parameter set has a 1632 byte private key, 800 byte public key,
	// and a 768 byte ciphertext.
	paramsMLKEM512 = newParameterSet(MLKEM512, 2)

	// paramsMLKEM768 is the ML-KEM-768 parameter set.
	//
	// This parameter set has a 2400 byte private key, 1184 byte public key,
	// and a 1088 byte ciphertext.
	paramsMLKEM768 = newParameterSet(MLKEM768, 3)

	// paramsMLKEM1024 is the ML-KEM-1024 parameter set.
	//
	// This parameter set has a 3168 byte private key, 1568 byte public key,
	// and a 1568 byte ciphertext.
	paramsMLKEM1024 = newParameterSet(MLKEM1024, 4)
)

// ParameterSet is an immutable ML-KEM parameter set (spec §3).
type ParameterSet struct {
	id AlgorithmID

	k    int
	eta1 int

	// polyCompressD and polyVecCompressD are the number of bits per
	// coefficient used to compress the ciphertext's v and u components,
	// respectively (spec §4.3).
	polyCompressD    int
	polyVecCompressD int

	polyVecSize           int
	polyVecCompressedSize int

	indcpaPublicKeySize int
	indcpaSecretKeySize int
	indcpaSize          int

	publicKeySize  int
	secretKeySize  int
	cipherTextSize int
}

// ByAlgorithm returns the ParameterSet for a given AlgorithmID, and false if
// the tag is not recognized. Per spec §9's Open Question, this package
// chooses explicit rejection over the historical "default to 768" host
// convention; callers wanting that convention implement it themselves.
func ByAlgorithm(id AlgorithmID) (*ParameterSet, bool) {
	switch id {
	case MLKEM512:
		return paramsMLKEM512, true
	case MLKEM768:
		return paramsMLKEM768, true
	case MLKEM1024:
		return paramsMLKEM1024, true
	default:
		return nil, false
	}
}

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.id.String()
}

// PublicKeySize returns the size of a public key in bytes.
func (p *ParameterSet) PublicKeySize() int {
	return p.publicKeySize
}

// PrivateKeySize returns the size of a private key in bytes.
func (p *ParameterSet) PrivateKeySize() int {
	return p.secretKeySize
}

// CipherTextSize returns the size of a ciphertext in bytes.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextSize
}

func newParameterSet(id AlgorithmID, k int) *ParameterSet {
	var p ParameterSet

	p.id = id
	p.k = k

	switch k {
	case 2:
		p.eta1 = 3
	case 3, 4:
		p.eta1 = 2
	default:
		panic("mlkem: k must be in {2,3,4}")
	}

	// du, the bits per coefficient used to compress the ciphertext's u
	// component, is 10 for K in {2,3} and 11 for K=4 (spec.md §3/§6).
	switch k {
	case 2, 3:
		p.polyCompressD = 4
		p.polyVecCompressD = 10
	case 4:
		p.polyCompressD = 5
		p.polyVecCompressD = 11
	}

	p.polyVecSize = k * polyBytes
	p.polyVecCompressedSize = k * (p.polyVecCompressD * kyberN / 8)

	p.indcpaPublicKeySize = p.polyVecSize + SymSize
	p.indcpaSecretKeySize = p.polyVecSize
	p.indcpaSize = p.polyVecCompressedSize + (p.polyCompressD * kyberN / 8)

	p.publicKeySize = p.indcpaPublicKeySize
	p.secretKeySize = p.indcpaSecretKeySize + p.indcpaPublicKeySize + 2*SymSize // H(pk) and the rejection seed z
	p.cipherTextSize = p.indcpaSize

	return &p
}
