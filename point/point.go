// Package point implements the curve-point engine shared by every curve
// shape in the registry: Jacobian coordinates for ShortWeierstrass (and,
// via an isomorphic transform, Montgomery) curves, and projective
// coordinates for Edwards and TwistedEdwards curves.
//
// A Point is bound to a *curve.Params the way a field.Element is bound
// to a *field.Field. Methods follow field.Element's calling convention:
// the receiver holds the result, so `p.Add(a, b)` sets p = a+b and
// returns p, letting calls chain and letting a result alias an operand.
package point

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/sammyne/ecc/curve"
	"github.com/sammyne/ecc/eccerr"
	"github.com/sammyne/ecc/field"
	"github.com/sammyne/ecc/safememory"
)

// Point is a curve point carrying Jacobian (ShortWeierstrass, Montgomery)
// or projective (Edwards, TwistedEdwards) coordinates, plus an optional
// memoized base-point table built by SetupTable.
type Point struct {
	curve   *curve.Params
	x, y, z *field.Element
	neutral bool

	tableMu sync.Mutex
	table   [][]*Point
}

// groupShape returns the shape the group law actually runs in: Montgomery
// curves are imported into an isomorphic short-Weierstrass form for
// addition/doubling and exported back out on affine access.
func groupShape(params *curve.Params) curve.Shape {
	if params.Shape == curve.Montgomery {
		return curve.ShortWeierstrass
	}
	return params.Shape
}

func groupCoeffs(params *curve.Params) (a, b *field.Element) {
	if params.Shape == curve.Montgomery {
		return params.WsA, params.WsB
	}
	return params.CoeffA, params.CoeffB
}

// Identity returns the neutral element of params' group.
func Identity(params *curve.Params) *Point {
	fp := params.Field
	p := &Point{curve: params, neutral: true}
	switch params.Shape {
	case ShapeEdwards, ShapeTwistedEdwards:
		// (0, c) is the identity of x^2+y^2=c^2(1+dx^2y^2); (0, 1) is
		// the identity of the twisted form (c == 1 there).
		p.x = new(field.Element).SetUint64(fp, 0)
		if params.Shape == ShapeEdwards {
			p.y = new(field.Element).Set(params.CoeffA)
		} else {
			p.y = new(field.Element).SetUint64(fp, 1)
		}
		p.z = new(field.Element).SetUint64(fp, 1)
	default:
		p.x = new(field.Element).SetUint64(fp, 0)
		p.y = new(field.Element).SetUint64(fp, 1)
		p.z = new(field.Element).SetUint64(fp, 0)
	}
	return p
}

// Shape aliases, kept local so this file reads top-to-bottom without an
// import-qualified Shape on every line below.
const (
	ShapeShortWeierstrass = curve.ShortWeierstrass
	ShapeEdwards          = curve.Edwards
	ShapeMontgomery       = curve.Montgomery
	ShapeTwistedEdwards   = curve.TwistedEdwards
)

// Generator returns the registered base point of params.
func Generator(params *curve.Params) (*Point, error) {
	return FromAffine(params, params.Gx, params.Gy)
}

// FromAffine imports an affine (x, y) coordinate pair, rejecting points
// that fail the curve equation (eccerr.ErrPointNotOnCurve).
func FromAffine(params *curve.Params, x, y *big.Int) (*Point, error) {
	fp := params.Field
	xe := new(field.Element).SetBigInt(fp, x)
	ye := new(field.Element).SetBigInt(fp, y)

	if !curve.IsOnCurve(params, xe, ye) {
		return nil, fmt.Errorf("ecc/point: from-affine: %w", eccerr.ErrPointNotOnCurve)
	}

	p := &Point{curve: params, neutral: false}

	if params.Shape == ShapeMontgomery {
		// u = (x + A/3) * B^-1, v = y * B^-1
		u := new(field.Element).Mul(new(field.Element).Add(xe, params.AOver3), params.BInv)
		v := new(field.Element).Mul(ye, params.BInv)
		p.x, p.y, p.z = u, v, new(field.Element).SetUint64(fp, 1)
		return p, nil
	}

	p.x, p.y, p.z = xe, ye, new(field.Element).SetUint64(fp, 1)
	return p, nil
}

// Affine exports p's affine coordinates. ShortWeierstrass and Montgomery
// points at infinity have no affine representative and return
// eccerr.ErrPointIsNeutral; Edwards/TwistedEdwards identities are
// ordinary affine points and export normally.
func (p *Point) Affine() (*big.Int, *big.Int, error) {
	params := p.curve

	if p.neutral && groupShape(params) == ShapeShortWeierstrass {
		return nil, nil, fmt.Errorf("ecc/point: affine: %w", eccerr.ErrPointIsNeutral)
	}

	var zInv field.Element
	if err := zInv.Inverse(p.z); err != nil {
		return nil, nil, fmt.Errorf("ecc/point: affine: %w", err)
	}

	var u, v field.Element
	switch groupShape(params) {
	case ShapeShortWeierstrass:
		zInv2 := new(field.Element).Square(&zInv)
		zInv3 := new(field.Element).Mul(zInv2, &zInv)
		u.Mul(p.x, zInv2)
		v.Mul(p.y, zInv3)
	default: // Edwards / TwistedEdwards: affine projective (X/Z, Y/Z)
		u.Mul(p.x, &zInv)
		v.Mul(p.y, &zInv)
	}

	if params.Shape == ShapeMontgomery {
		// x = u*B - A/3, y = v*B
		x := new(field.Element).Sub(new(field.Element).Mul(&u, params.CoeffA), params.AOver3)
		y := new(field.Element).Mul(&v, params.CoeffA)
		return x.BigInt(), y.BigInt(), nil
	}

	return u.BigInt(), v.BigInt(), nil
}

func (p *Point) Curve() *curve.Params { return p.curve }

// IsNeutral reports whether p is the group identity.
func (p *Point) IsNeutral() bool { return p.neutral }

func (p *Point) invalidate() {
	p.tableMu.Lock()
	p.table = nil
	p.tableMu.Unlock()
}

// Set copies src into p, including its curve binding. Any table
// memoized on p is dropped.
func (p *Point) Set(src *Point) *Point {
	p.invalidate()
	p.curve = src.curve
	p.x = new(field.Element).Set(src.x)
	p.y = new(field.Element).Set(src.y)
	p.z = new(field.Element).Set(src.z)
	p.neutral = src.neutral
	return p
}

// CondSwap exchanges p and other iff cond == 1, using field.Element's
// constant-time swap for the coordinates. The neutral flags are folded
// in with the same XOR-mask discipline rather than a branch on cond,
// since cond is expected to be a secret scalar bit in Ladder.
func (p *Point) CondSwap(other *Point, cond uint) {
	if !p.curve.Field.Equal(other.curve.Field) {
		panic(fmt.Errorf("ecc/point: cswap: %w", eccerr.ErrCurveMismatch))
	}
	p.invalidate()
	other.invalidate()

	p.x.CondSwap(other.x, cond)
	p.y.CondSwap(other.y, cond)
	p.z.CondSwap(other.z, cond)

	mask := cond & 1
	pn, on := boolToUint(p.neutral), boolToUint(other.neutral)
	t := (pn ^ on) & mask
	p.neutral = (pn ^ t) == 1
	other.neutral = (on ^ t) == 1
}

func boolToUint(b bool) uint {
	if b {
		return 1
	}
	return 0
}

// Neg sets p = -a. ShortWeierstrass and Montgomery negate y:
// -(x,y) = (x,-y). Edwards and twisted-Edwards negate x instead:
// -(x,y) = (-x,y); negating y there instead gives (x,-y), which adds
// with a to the 2-torsion point (0,-c), not the identity.
func (p *Point) Neg(a *Point) *Point {
	p.invalidate()
	p.curve = a.curve
	switch groupShape(a.curve) {
	case ShapeEdwards, ShapeTwistedEdwards:
		p.x = new(field.Element).Neg(a.x)
		p.y = new(field.Element).Set(a.y)
	default:
		p.x = new(field.Element).Set(a.x)
		p.y = new(field.Element).Neg(a.y)
	}
	p.z = new(field.Element).Set(a.z)
	p.neutral = a.neutral
	return p
}

// Clear zeroizes p's coordinate scratch when safememory has been
// installed and resets p to the neutral element of its curve.
func (p *Point) Clear() {
	if safememory.Enabled() {
		p.x.Clear()
		p.y.Clear()
		p.z.Clear()
	}
	id := Identity(p.curve)
	p.Set(id)
}
