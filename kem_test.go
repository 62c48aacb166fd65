// kem_test.go - ML-KEM KEM tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const nTests = 100

var allParams []*ParameterSet

func init() {
	for _, id := range []AlgorithmID{MLKEM512, MLKEM768, MLKEM1024} {
		p, ok := ByAlgorithm(id)
		if !ok {
			panic("mlkem: ByAlgorithm() rejected a well-known AlgorithmID")
		}
		allParams = append(allParams, p)
	}
}

func TestKEM(t *testing.T) {
	for _, p := range allParams {
		t.Run(p.Name()+"_Keys", func(t *testing.T) { doTestKEMKeys(t, p) })
		t.Run(p.Name()+"_Invalid_SecretKey", func(t *testing.T) { doTestKEMInvalidSk(t, p) })
		t.Run(p.Name()+"_Invalid_CipherText", func(t *testing.T) { doTestKEMInvalidCipherText(t, p) })
	}
}

func doTestKEMKeys(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	t.Logf("PrivateKeySize(): %v", p.PrivateKeySize())
	t.Logf("PublicKeySize(): %v", p.PublicKeySize())
	t.Logf("CipherTextSize(): %v", p.CipherTextSize())

	for i := 0; i < nTests; i++ {
		// Generate a key pair.
		pk, sk, err := p.GenerateKeyPair(rand.Reader)
		require.NoError(err, "GenerateKeyPair()")

		// Test serialization.
		b := sk.Bytes()
		require.Len(b, p.PrivateKeySize(), "sk.Bytes(): Length")
		sk2, err := p.PrivateKeyFromBytes(b)
		require.NoError(err, "PrivateKeyFromBytes(b)")
		requirePrivateKeyEqual(require, sk, sk2)

		b = pk.Bytes()
		require.Len(b, p.PublicKeySize(), "pk.Bytes(): Length")
		pk2, err := p.PublicKeyFromBytes(b)
		require.NoError(err, "PublicKeyFromBytes(b)")
		requirePublicKeyEqual(require, pk, pk2)

		// Test encapsulate/decapsulate.
		ct, ss, err := pk.Encapsulate(rand.Reader)
		require.NoError(err, "Encapsulate()")
		require.Len(ct, p.CipherTextSize(), "Encapsulate(): ct Length")
		require.Len(ss, SymSize, "Encapsulate(): ss Length")

		ss2 := sk.Decapsulate(ct)
		require.Equal(ss, ss2, "Decapsulate(): ss")
	}
}

// doTestKEMInvalidSk exercises decapsulation's implicit-rejection path: a
// secret key that no longer matches the ciphertext it is handed must yield
// a shared secret that disagrees with the encapsulating party's, never an
// error (spec §4.10).
func doTestKEMInvalidSk(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	for i := 0; i < nTests; i++ {
		// Alice generates a public key.
		pk, skA, err := p.GenerateKeyPair(rand.Reader)
		require.NoError(err, "GenerateKeyPair()")

		// Bob encapsulates against Alice's public key.
		sendB, keyB, err := pk.Encapsulate(rand.Reader)
		require.NoError(err, "Encapsulate()")

		// Corrupt Alice's IND-CPA secret key in place.
		_, err = rand.Read(skA.sk.packed)
		require.NoError(err, "rand.Read()")

		// Alice decapsulates Bob's ciphertext with the corrupted key.
		keyA := skA.Decapsulate(sendB)
		require.NotEqual(keyA, keyB, "Decapsulate(): ss")
	}
}

func doTestKEMInvalidCipherText(t *testing.T, p *ParameterSet) {
	require := require.New(t)
	var rawPos [2]byte

	ciphertextSize := p.CipherTextSize()

	for i := 0; i < nTests; i++ {
		_, err := rand.Read(rawPos[:])
		require.NoError(err, "rand.Read()")
		pos := (int(rawPos[0]) << 8) | int(rawPos[1])

		// Alice generates a public key.
		pk, skA, err := p.GenerateKeyPair(rand.Reader)
		require.NoError(err, "GenerateKeyPair()")

		// Bob encapsulates against Alice's public key.
		sendB, keyB, err := pk.Encapsulate(rand.Reader)
		require.NoError(err, "Encapsulate()")

		// Flip four bits of one byte somewhere in the ciphertext.
		sendB[pos%ciphertextSize] ^= 23

		// Alice decapsulates the tampered ciphertext.
		keyA := skA.Decapsulate(sendB)
		require.NotEqual(keyA, keyB, "Decapsulate(): ss")
	}
}

func requirePrivateKeyEqual(require *require.Assertions, a, b *PrivateKey) {
	require.EqualValues(a.sk, b.sk, "sk (indcpaSecretKey)")
	require.Equal(a.z, b.z, "z (random bytes)")
	requirePublicKeyEqual(require, &a.PublicKey, &b.PublicKey)
}

func requirePublicKeyEqual(require *require.Assertions, a, b *PublicKey) {
	require.EqualValues(a.pk, b.pk, "pk (indcpaPublicKey)")
	require.Equal(a.p, b.p, "p (ParameterSet)")
}

func BenchmarkKEM(b *testing.B) {
	for _, p := range allParams {
		b.Run(p.Name()+"_GenerateKeyPair", func(b *testing.B) { doBenchKEMGenerateKeyPair(b, p) })
		b.Run(p.Name()+"_Encapsulate", func(b *testing.B) { doBenchKEMEncDec(b, p, true) })
		b.Run(p.Name()+"_Decapsulate", func(b *testing.B) { doBenchKEMEncDec(b, p, false) })
	}
}

func doBenchKEMGenerateKeyPair(b *testing.B, p *ParameterSet) {
	for i := 0; i < b.N; i++ {
		_, _, err := p.GenerateKeyPair(rand.Reader)
		if err != nil {
			b.Fatalf("GenerateKeyPair(): %v", err)
		}
	}
}

func doBenchKEMEncDec(b *testing.B, p *ParameterSet, isEnc bool) {
	b.StopTimer()
	for i := 0; i < b.N; i++ {
		pk, skA, err := p.GenerateKeyPair(rand.Reader)
		if err != nil {
			b.Fatalf("GenerateKeyPair(): %v", err)
		}

		if isEnc {
			b.StartTimer()
		}

		sendB, keyB, err := pk.Encapsulate(rand.Reader)
		if err != nil {
			b.Fatalf("Encapsulate(): %v", err)
		}
		if isEnc {
			b.StopTimer()
		} else {
			b.StartTimer()
		}

		keyA := skA.Decapsulate(sendB)
		if !isEnc {
			b.StopTimer()
		}

		if !bytes.Equal(keyA, keyB) {
			b.Fatalf("Decapsulate(): key mismatch")
		}
	}
}
