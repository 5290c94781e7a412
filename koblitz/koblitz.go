// Copyright 2010 The Go Authors. All rights reserved.
// Copyright 2011 ThePiachu. All rights reserved.
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package koblitz

// References:
//   [SECG]: Recommended Elliptic Curve Domain Parameters
//     http://www.secg.org/sec2-v2.pdf
//
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)

// KoblitzCurve used to carry its own from-scratch Jacobian field
// arithmetic (fieldVal, addJacobian, doubleJacobian, the split-K/NAF
// endomorphism path, and a hardcoded bytePoints table) specific to
// secp256k1. That arithmetic now lives, generalized to every curve shape
// in the registry, in the field/curve/point packages; this type is kept
// as a crypto/elliptic.Curve-compatible adapter in front of them, for
// callers (e.g. code built against the standard library's Curve
// interface) that want a KoblitzCurve value rather than this library's
// own curve.Params/point.Point API.

import (
	"crypto/elliptic"
	"math/big"
	"sync"

	"github.com/sammyne/ecc/curve"
	"github.com/sammyne/ecc/point"
)

// KoblitzCurve adapts this library's generic secp256k1 parameters and
// point engine to the crypto/elliptic.Curve interface.
type KoblitzCurve struct {
	*elliptic.CurveParams
	params *curve.Params
	g      *point.Point
}

// Add returns the sum of (x1,y1) and (x2,y2). Part of the elliptic.Curve
// interface. A coordinate pair of (0,0) denotes the point at infinity,
// per that interface's convention.
func (c *KoblitzCurve) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	if x1.Sign() == 0 && y1.Sign() == 0 {
		return x2, y2
	}
	if x2.Sign() == 0 && y2.Sign() == 0 {
		return x1, y1
	}

	p1, err := point.FromAffine(c.params, x1, y1)
	if err != nil {
		return new(big.Int), new(big.Int)
	}
	p2, err := point.FromAffine(c.params, x2, y2)
	if err != nil {
		return new(big.Int), new(big.Int)
	}

	sum := new(point.Point).Add(p1, p2)
	return c.affineOrInfinity(sum)
}

// Double returns 2*(x1,y1). Part of the elliptic.Curve interface.
func (c *KoblitzCurve) Double(x1, y1 *big.Int) (*big.Int, *big.Int) {
	p1, err := point.FromAffine(c.params, x1, y1)
	if err != nil {
		return new(big.Int), new(big.Int)
	}
	dbl := new(point.Point).Double(p1)
	return c.affineOrInfinity(dbl)
}

// IsOnCurve returns boolean if the point (x,y) is on the curve. Part of
// the elliptic.Curve interface.
func (c *KoblitzCurve) IsOnCurve(x, y *big.Int) bool {
	_, err := point.FromAffine(c.params, x, y)
	return err == nil
}

// Params returns the parameters for the curve.
func (c *KoblitzCurve) Params() *elliptic.CurveParams {
	return c.CurveParams
}

// ScalarMult returns k*(Bx, By) where k is a big endian integer. Part of
// the elliptic.Curve interface; runs the constant-time ladder since the
// point operand here is caller-supplied and may be secret.
func (c *KoblitzCurve) ScalarMult(Bx, By *big.Int, k []byte) (*big.Int, *big.Int) {
	base, err := point.FromAffine(c.params, Bx, By)
	if err != nil {
		return new(big.Int), new(big.Int)
	}
	scalar := new(big.Int).SetBytes(k)
	r := new(point.Point).Ladder(base, scalar)
	return c.affineOrInfinity(r)
}

// ScalarBaseMult returns k*G where G is the base point of the group and
// k is a big endian integer. Part of the elliptic.Curve interface; rides
// the windowed precomputed table built once in initS256.
func (c *KoblitzCurve) ScalarBaseMult(k []byte) (*big.Int, *big.Int) {
	scalar := new(big.Int).SetBytes(k)
	r := c.g.BaseMult(scalar)
	return c.affineOrInfinity(r)
}

// affineOrInfinity exports p's affine coordinates, or (0,0) per the
// elliptic.Curve convention for the point at infinity.
func (c *KoblitzCurve) affineOrInfinity(p *point.Point) (*big.Int, *big.Int) {
	x, y, err := p.Affine()
	if err != nil {
		return new(big.Int), new(big.Int)
	}
	return x, y
}

var initonce sync.Once
var secp256k1 KoblitzCurve

func initAll() {
	initS256()
}

func initS256() {
	params, err := curve.Lookup("secp256k1")
	if err != nil {
		panic(err)
	}

	secp256k1.CurveParams = &elliptic.CurveParams{
		P:       params.Field.Modulus(),
		N:       params.N,
		B:       params.CoeffB.BigInt(),
		Gx:      params.Gx,
		Gy:      params.Gy,
		BitSize: params.Bits,
		Name:    params.Name,
	}
	secp256k1.params = params

	g, err := point.Generator(params)
	if err != nil {
		panic(err)
	}
	if err := g.SetupTable(); err != nil {
		panic(err)
	}
	secp256k1.g = g
}

// S256 returns a Curve which implements secp256k1.
func S256() *KoblitzCurve {
	initonce.Do(initAll)
	return &secp256k1
}
