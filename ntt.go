// ntt.go - Number-Theoretic Transform.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// zetas holds precomputed powers of the primitive 256th root of unity
// zeta=17 modulo q, in Montgomery form, indexed the way the butterfly
// network below consumes them (spec §4.2).
var zetas = [128]int16{
	-1044, -758, -359, -1517, 1493, 1422, 287, 202,
	-171, 622, 1577, 182, 962, -1202, -1474, 1468,
	573, -1325, 264, 383, -829, 1458, -1602, -130,
	-681, 1017, 732, 608, -1542, 411, -205, -1571,
	1223, 652, -552, 1015, -1293, 1491, -282, -1544,
	516, -8, -320, -666, -1618, -1162, 126, 1469,
	-853, -90, -271, 830, 107, -1421, -247, -951,
	-398, 961, -1508, -725, 448, -1065, 677, -1275,
	-1103, 430, 555, 843, -1251, 871, 1550, 105,
	422, 587, 177, -235, -291, -460, 1574, 1653,
	-246, 778, 1159, -147, -777, 1483, -602, 1119,
	-1590, 644, -872, 349, 418, 329, -156, -75,
	817, 1097, 603, 610, 1322, -1285, -1465, 384,
	-1215, -136, 1218, -1335, -874, 220, -1187, -1659,
	-1185, -1530, -1278, 794, -1510, -854, -870, 478,
	-108, -308, 996, 991, 958, -1460, 1522, 1628,
}

// ntt computes the forward negacyclic NTT of a polynomial (256 coefficients)
// in place: 7 layers of Cooley-Tukey butterflies, with butterfly distance
// decreasing from 128 down to 2. The result is not reduced here; poly.ntt
// Barrett-reduces it afterward (spec §4.2).
func ntt(r *[kyberN]int16) {
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := fqmul(zeta, r[j+length])
				r[j+length] = r[j] - t
				r[j] = r[j] + t
			}
		}
	}
}

// invntt computes the inverse negacyclic NTT in place: 7 layers of
// Gentleman-Sande butterflies, with the final scaling by
// f = 1441 = mont^2/128 mod q folded in. The output is left in the
// Montgomery domain (spec §4.2).
func invntt(r *[kyberN]int16) {
	const f = 1441

	k := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			zeta := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := r[j]
				r[j] = barrettReduce(t + r[j+length])
				r[j+length] = r[j+length] - t
				r[j+length] = fqmul(zeta, r[j+length])
			}
		}
	}

	for j := range r {
		r[j] = fqmul(r[j], f)
	}
}

// basemul computes the product of two degree-1 polynomials a0+a1*X and
// b0+b1*X modulo X^2-zeta, the base case of NTT-domain polynomial
// multiplication (spec §4.2).
func basemul(r, a, b *[2]int16, zeta int16) {
	r[0] = fqmul(a[1], b[1])
	r[0] = fqmul(r[0], zeta)
	r[0] += fqmul(a[0], b[0])

	r[1] = fqmul(a[0], b[1])
	r[1] += fqmul(a[1], b[0])
}
