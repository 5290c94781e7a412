package point

import "math/big"

// Ladder sets p = k*base, with k taken modulo the curve order n, using a
// double-and-add-always ladder: at every bit of k the accumulator pair
// (r0, r1) is conditionally swapped, advanced by one add and one double,
// and swapped back, so the sequence of point operations performed is
// independent of k's bits. This is the scalar-mult path used for
// secret-scalar x secret-point work (ecdsa.Verify's u2*Q term,
// elgamal.Decrypt) and also for elgamal.Encrypt's k*G; BaseMult is used
// for the generator terms of ecdsa.Sign and ecdsa.Verify.
func (p *Point) Ladder(base *Point, k *big.Int) *Point {
	nbits := base.curve.N.BitLen()
	k = new(big.Int).Mod(k, base.curve.N)

	r0 := Identity(base.curve)
	r1 := new(Point).Set(base)

	for i := nbits - 1; i >= 0; i-- {
		bit := uint(k.Bit(i))

		r0.CondSwap(r1, bit)

		dbl := new(Point).Double(r0)
		sum := new(Point).Add(r0, r1)

		r0.Set(dbl)
		r1.Set(sum)

		r0.CondSwap(r1, bit)
	}

	return p.Set(r0)
}
