// doc.go - ML-KEM godoc extras.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package mlkem implements ML-KEM, the NIST-standardized (FIPS 203)
// post-quantum key encapsulation mechanism, based on the hardness of the
// module learning-with-errors (MLWE) problem over module lattices.
//
// This implementation follows FIPS 203 directly: the Number-Theoretic
// Transform over Z_q[X]/(X^256+1) with q=3329, Montgomery and Barrett
// modular reduction, centered binomial noise sampling, SHAKE128-based
// rejection sampling of the public matrix, and the Fujisaki-Okamoto
// transform that upgrades the underlying IND-CPA public-key scheme to an
// IND-CCA2 KEM with implicit rejection.
//
// Three parameter sets are provided: MLKEM512, MLKEM768, and MLKEM1024,
// corresponding to module rank K = 2, 3, 4. Each exposes exactly three
// operations: GenerateKeyPair, Encapsulate, and Decapsulate.
//
// For more information, see https://csrc.nist.gov/pubs/fips/203/final.
package mlkem
