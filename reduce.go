// reduce.go - Montgomery and Barrett reduction.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

const (
	qinv = -3327 // q^-1 mod 2^16
	mont = -1044 // 2^16 mod q, signed representative

	barrettConst = 20159 // floor(2^26/q + 1/2)
)

// montgomeryReduce computes a value congruent to a*R^-1 mod q, R=2^16, for
// |a| < q*2^15. The result lies in (-q, q).
func montgomeryReduce(a int32) int16 {
	t := int16(a) * qinv
	return int16((a - int32(t)*kyberQ) >> 16)
}

// barrettReduce computes a value congruent to a mod q in the centered range
// [-(q-1)/2, (q-1)/2]; toPositive maps it into [0, q).
func barrettReduce(a int16) int16 {
	t := int16((int32(barrettConst)*int32(a) + (1 << 25)) >> 26)
	return a - t*kyberQ
}

// fqmul is Montgomery multiplication: montgomeryReduce(a*b).
func fqmul(a, b int16) int16 {
	return montgomeryReduce(int32(a) * int32(b))
}

// toPositive canonicalizes a coefficient that may hold a negative
// representative (as produced by barrett-reduced subtraction) into [0, q),
// without a full reduction: t += (t>>15) & q.
func toPositive(t int16) int16 {
	return t + ((t >> 15) & kyberQ)
}
