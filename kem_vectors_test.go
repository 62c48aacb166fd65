// kem_vectors_test.go - ML-KEM deterministic-entropy KEM tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// nrTestVectors is the number of deterministic-RNG trials run per parameter
// set. Unlike the upstream reference implementation, no external known-
// answer-test corpus is checked into this repository, so TestKEMVectors
// exercises an embedded deterministic generator and asserts ML-KEM's
// internal invariants instead of comparing against golden digests.
const nrTestVectors = 200

func TestKEMVectors(t *testing.T) {
	for _, p := range allParams {
		t.Run(p.Name(), func(t *testing.T) { doTestKEMVectors(t, p) })
	}
}

func doTestKEMVectors(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	rng := newTestRng()
	for idx := 0; idx < nrTestVectors; idx++ {
		pk, sk, err := p.GenerateKeyPair(rng)
		require.NoError(err, "GenerateKeyPair(): %v", idx)
		require.Len(pk.Bytes(), p.PublicKeySize(), "pk: %v", idx)
		require.Len(sk.Bytes(), p.PrivateKeySize(), "sk: %v", idx)

		// Re-running GenerateKeyPair() against the same deterministic RNG
		// draws must never repeat a (d, z) pair, so consecutive key pairs
		// must differ.
		if idx > 0 {
			require.NotEqual(pk.Bytes(), prevPk, "pk: %v: repeated across iterations", idx)
		}
		prevPk = pk.Bytes()

		ct, ssB, err := pk.Encapsulate(rng)
		require.NoError(err, "Encapsulate(): %v", idx)
		require.Len(ct, p.CipherTextSize(), "ct: %v", idx)
		require.Len(ssB, SymSize, "ssB: %v", idx)

		ssA := sk.Decapsulate(ct)
		require.Equal(ssB, ssA, "Decapsulate(): %v", idx)
	}
}

var prevPk []byte

// testRNG is a deterministic, seeded byte stream (a Go port of the surf
// generator the reference implementation's test vectors are drawn from),
// used so TestKEMVectors is reproducible across runs without requiring a
// checked-in test corpus.
type testRNG struct {
	seed    [32]uint32
	in      [12]uint32
	out     [8]uint32
	outleft int
}

func newTestRng() *testRNG {
	r := new(testRNG)
	r.seed = [32]uint32{
		3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9, 3, 2, 3, 8, 4, 6, 2, 6, 4, 3, 3, 8, 3, 2, 7, 9, 5,
	}
	return r
}

func (r *testRNG) surf() {
	var t [12]uint32
	var sum uint32

	for i, v := range r.in {
		t[i] = v ^ r.seed[12+i]
	}
	for i := range r.out {
		r.out[i] = r.seed[24+i]
	}
	x := t[11]
	rotate := func(x uint32, b uint) uint32 {
		return (x << b) | (x >> (32 - b))
	}
	mush := func(i int, b uint) {
		t[i] += ((x ^ r.seed[i]) + sum) ^ rotate(x, b)
		x = t[i]
	}
	for loop := 0; loop < 2; loop++ {
		for rr := 0; rr < 16; rr++ {
			sum += 0x9e3779b9
			mush(0, 5)
			mush(1, 7)
			mush(2, 9)
			mush(3, 13)
			mush(4, 5)
			mush(5, 7)
			mush(6, 9)
			mush(7, 13)
			mush(8, 5)
			mush(9, 7)
			mush(10, 9)
			mush(11, 13)
		}
		for i := range r.out {
			r.out[i] ^= t[i+4]
		}
	}
}

func (r *testRNG) Read(x []byte) (n int, err error) {
	ret := len(x)
	for len(x) > 0 {
		if r.outleft == 0 {
			r.in[0]++
			if r.in[0] == 0 {
				r.in[1]++
				if r.in[1] == 0 {
					r.in[2]++
					if r.in[2] == 0 {
						r.in[3]++
					}
				}
			}
			r.surf()
			r.outleft = 8
		}
		r.outleft--
		x[0] = byte(r.out[r.outleft])
		x = x[1:]
	}

	return ret, nil
}
