// params_test.go - ML-KEM parameter set size tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParameterSetSizes(t *testing.T) {
	for _, v := range []struct {
		id         AlgorithmID
		privateKey int
		publicKey  int
		cipherText int
	}{
		{MLKEM512, 1632, 800, 768},
		{MLKEM768, 2400, 1184, 1088},
		{MLKEM1024, 3168, 1568, 1568},
	} {
		p, ok := ByAlgorithm(v.id)
		if !ok {
			t.Fatalf("ByAlgorithm(%v): not found", v.id)
		}
		if got := p.PrivateKeySize(); got != v.privateKey {
			t.Errorf("%v: PrivateKeySize() = %v, want %v", v.id, got, v.privateKey)
		}
		if got := p.PublicKeySize(); got != v.publicKey {
			t.Errorf("%v: PublicKeySize() = %v, want %v", v.id, got, v.publicKey)
		}
		if got := p.CipherTextSize(); got != v.cipherText {
			t.Errorf("%v: CipherTextSize() = %v, want %v", v.id, got, v.cipherText)
		}
	}
}

func TestByAlgorithmRejectsUnknown(t *testing.T) {
	if _, ok := ByAlgorithm(AlgorithmID(99)); ok {
		t.Fatal("ByAlgorithm(99): expected rejection, got a ParameterSet")
	}
}

// TestByAlgorithmStable checks that repeated lookups of the same
// AlgorithmID return an identically-configured ParameterSet, with a
// field-by-field diff on failure rather than a bare boolean mismatch.
func TestByAlgorithmStable(t *testing.T) {
	for _, id := range []AlgorithmID{MLKEM512, MLKEM768, MLKEM1024} {
		a, _ := ByAlgorithm(id)
		b, _ := ByAlgorithm(id)
		if diff := cmp.Diff(a, b, cmp.AllowUnexported(ParameterSet{})); diff != "" {
			t.Errorf("%v: ByAlgorithm() not stable (-first +second):\n%s", id, diff)
		}
	}
}
