// Package curve holds the named-curve registry and the per-shape curve
// parameter block: coefficients, field, order, cofactor, generator, and
// (for Montgomery curves) the precomputed isomorphic short-Weierstrass
// form used internally by the point engine.
package curve

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/sammyne/ecc/eccerr"
	"github.com/sammyne/ecc/field"
)

// Shape is the closed set of curve equation forms this library supports.
type Shape int

const (
	ShortWeierstrass Shape = iota
	Edwards
	Montgomery
	TwistedEdwards
)

func (s Shape) String() string {
	switch s {
	case ShortWeierstrass:
		return "short-weierstrass"
	case Edwards:
		return "edwards"
	case Montgomery:
		return "montgomery"
	case TwistedEdwards:
		return "twisted-edwards"
	default:
		return fmt.Sprintf("curve.Shape(%d)", int(s))
	}
}

// Params is a curve parameter block. Which of CoeffA/CoeffB hold which
// named coefficient depends on Shape:
//
//	ShortWeierstrass: CoeffA = a, CoeffB = b     (y^2 = x^3 + a x + b)
//	Edwards:          CoeffA = c, CoeffB = d     (x^2+y^2 = c^2(1+d x^2 y^2))
//	Montgomery:       CoeffA = B, CoeffB = A     (B y^2 = x^3 + A x^2 + x)
//	TwistedEdwards:   CoeffA = a, CoeffB = d     (a x^2+y^2 = 1+d x^2 y^2)
//
// Montgomery curves additionally carry the derived short-Weierstrass
// coefficients (WsA, WsB) and the transform constants (BInv, AOver3)
// used to move points into and out of the internal Weierstrass-Jacobian
// representation on import/export.
type Params struct {
	Name  string
	Shape Shape
	Field *field.Field

	CoeffA *field.Element
	CoeffB *field.Element

	WsA, WsB *field.Element
	BInv     *field.Element
	AOver3   *field.Element

	N  *big.Int
	H  *big.Int
	Gx *big.Int
	Gy *big.Int

	Bits int
}

var (
	registryMu sync.Mutex
	registry   = map[string]*Params{}
)

func register(p *Params) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[p.Name] = p
}

// Lookup returns the named curve's parameter block. Names are exact and
// case-sensitive; a miss returns eccerr.ErrUnknownCurve.
func Lookup(name string) (*Params, error) {
	registryMu.Lock()
	defer registryMu.Unlock()
	p, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("ecc/curve: lookup %q: %w", name, eccerr.ErrUnknownCurve)
	}
	return p, nil
}

// Names returns every curve name currently registered, for
// test/discovery purposes.
func Names() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	return out
}

func bitsOf(fp *field.Field) int {
	return fp.BitLen()
}

// NewShortWeierstrass builds (and registers, if name != "") a
// y^2 = x^3 + a x + b curve.
func NewShortWeierstrass(name string, p, a, b, n, h, gx, gy *big.Int) (*Params, error) {
	fp, err := field.Intern(p)
	if err != nil {
		return nil, err
	}
	params := &Params{
		Name:   name,
		Shape:  ShortWeierstrass,
		Field:  fp,
		CoeffA: new(field.Element).SetBigInt(fp, a),
		CoeffB: new(field.Element).SetBigInt(fp, b),
		N:      new(big.Int).Set(n),
		H:      new(big.Int).Set(h),
		Gx:     new(big.Int).Set(gx),
		Gy:     new(big.Int).Set(gy),
		Bits:   bitsOf(fp),
	}
	if err := checkOnCurve(params, gx, gy); err != nil {
		return nil, err
	}
	if name != "" {
		register(params)
	}
	return params, nil
}

// NewEdwards builds an x^2+y^2 = c^2(1+d x^2 y^2) curve.
func NewEdwards(name string, p, c, d, n, h, gx, gy *big.Int) (*Params, error) {
	fp, err := field.Intern(p)
	if err != nil {
		return nil, err
	}
	params := &Params{
		Name:   name,
		Shape:  Edwards,
		Field:  fp,
		CoeffA: new(field.Element).SetBigInt(fp, c),
		CoeffB: new(field.Element).SetBigInt(fp, d),
		N:      new(big.Int).Set(n),
		H:      new(big.Int).Set(h),
		Gx:     new(big.Int).Set(gx),
		Gy:     new(big.Int).Set(gy),
		Bits:   bitsOf(fp),
	}
	if err := checkOnCurve(params, gx, gy); err != nil {
		return nil, err
	}
	if name != "" {
		register(params)
	}
	return params, nil
}

// NewTwistedEdwards builds an a x^2+y^2 = 1+d x^2 y^2 curve.
func NewTwistedEdwards(name string, p, a, d, n, h, gx, gy *big.Int) (*Params, error) {
	fp, err := field.Intern(p)
	if err != nil {
		return nil, err
	}
	params := &Params{
		Name:   name,
		Shape:  TwistedEdwards,
		Field:  fp,
		CoeffA: new(field.Element).SetBigInt(fp, a),
		CoeffB: new(field.Element).SetBigInt(fp, d),
		N:      new(big.Int).Set(n),
		H:      new(big.Int).Set(h),
		Gx:     new(big.Int).Set(gx),
		Gy:     new(big.Int).Set(gy),
		Bits:   bitsOf(fp),
	}
	if err := checkOnCurve(params, gx, gy); err != nil {
		return nil, err
	}
	if name != "" {
		register(params)
	}
	return params, nil
}

// NewMontgomery builds a B y^2 = x^3 + A x^2 + x curve, deriving the
// internal isomorphic short-Weierstrass coefficients per spec.md section 4.C:
//
//	ws_a = (3 - A^2) / (3 B^2)
//	ws_b = (2 A^3 - 9 A) / (27 B^3)
func NewMontgomery(name string, p, bCoeff, aCoeff, n, h, gx, gy *big.Int) (*Params, error) {
	fp, err := field.Intern(p)
	if err != nil {
		return nil, err
	}

	A := new(field.Element).SetBigInt(fp, aCoeff)
	B := new(field.Element).SetBigInt(fp, bCoeff)

	three := new(field.Element).SetUint64(fp, 3)
	nine := new(field.Element).SetUint64(fp, 9)
	twentySeven := new(field.Element).SetUint64(fp, 27)
	two := new(field.Element).SetUint64(fp, 2)

	var bInv field.Element
	if err := bInv.Inverse(B); err != nil {
		return nil, fmt.Errorf("ecc/curve: montgomery %q: B not invertible: %w", name, err)
	}

	aSquared := new(field.Element).Square(A)
	wsANum := new(field.Element).Sub(three, aSquared)
	bSquared := new(field.Element).Square(B)
	wsADen := new(field.Element).Mul(three, bSquared)
	var wsADenInv field.Element
	if err := wsADenInv.Inverse(wsADen); err != nil {
		return nil, fmt.Errorf("ecc/curve: montgomery %q: 3B^2 not invertible: %w", name, err)
	}
	wsA := new(field.Element).Mul(wsANum, &wsADenInv)

	aCubed := new(field.Element).Mul(aSquared, A)
	wsBNum := new(field.Element).Sub(
		new(field.Element).Mul(two, aCubed),
		new(field.Element).Mul(nine, A),
	)
	bCubed := new(field.Element).Mul(bSquared, B)
	wsBDen := new(field.Element).Mul(twentySeven, bCubed)
	var wsBDenInv field.Element
	if err := wsBDenInv.Inverse(wsBDen); err != nil {
		return nil, fmt.Errorf("ecc/curve: montgomery %q: 27B^3 not invertible: %w", name, err)
	}
	wsB := new(field.Element).Mul(wsBNum, &wsBDenInv)

	aOver3 := new(field.Element).Mul(A, invert3(fp))

	params := &Params{
		Name:   name,
		Shape:  Montgomery,
		Field:  fp,
		CoeffA: B,
		CoeffB: A,
		WsA:    wsA,
		WsB:    wsB,
		BInv:   &bInv,
		AOver3: aOver3,
		N:      new(big.Int).Set(n),
		H:      new(big.Int).Set(h),
		Gx:     new(big.Int).Set(gx),
		Gy:     new(big.Int).Set(gy),
		Bits:   bitsOf(fp),
	}
	if err := checkOnCurve(params, gx, gy); err != nil {
		return nil, err
	}
	if name != "" {
		register(params)
	}
	return params, nil
}

func invert3(fp *field.Field) *field.Element {
	three := new(field.Element).SetUint64(fp, 3)
	var inv field.Element
	if err := inv.Inverse(three); err != nil {
		panic(fmt.Errorf("ecc/curve: 3 not invertible mod field: %w", err))
	}
	return &inv
}

// IsOnCurve evaluates the curve equation for params.Shape at the affine
// point (x, y), both given as field elements of params.Field.
func IsOnCurve(params *Params, x, y *field.Element) bool {
	switch params.Shape {
	case ShortWeierstrass:
		// y^2 = x^3 + a x + b
		lhs := new(field.Element).Square(y)
		x2 := new(field.Element).Square(x)
		x3 := new(field.Element).Mul(x2, x)
		ax := new(field.Element).Mul(params.CoeffA, x)
		rhs := new(field.Element).Add(x3, ax)
		rhs.Add(rhs, params.CoeffB)
		return lhs.Equal(rhs)
	case Edwards:
		// x^2 + y^2 = c^2 (1 + d x^2 y^2)
		x2 := new(field.Element).Square(x)
		y2 := new(field.Element).Square(y)
		lhs := new(field.Element).Add(x2, y2)
		c2 := new(field.Element).Square(params.CoeffA)
		dx2y2 := new(field.Element).Mul(params.CoeffB, new(field.Element).Mul(x2, y2))
		one := new(field.Element).SetUint64(params.Field, 1)
		inner := new(field.Element).Add(one, dx2y2)
		rhs := new(field.Element).Mul(c2, inner)
		return lhs.Equal(rhs)
	case Montgomery:
		// B y^2 = x^3 + A x^2 + x
		lhs := new(field.Element).Mul(params.CoeffA, new(field.Element).Square(y))
		x2 := new(field.Element).Square(x)
		x3 := new(field.Element).Mul(x2, x)
		ax2 := new(field.Element).Mul(params.CoeffB, x2)
		rhs := new(field.Element).Add(x3, ax2)
		rhs.Add(rhs, x)
		return lhs.Equal(rhs)
	case TwistedEdwards:
		// a x^2 + y^2 = 1 + d x^2 y^2
		x2 := new(field.Element).Square(x)
		y2 := new(field.Element).Square(y)
		lhs := new(field.Element).Add(new(field.Element).Mul(params.CoeffA, x2), y2)
		one := new(field.Element).SetUint64(params.Field, 1)
		dx2y2 := new(field.Element).Mul(params.CoeffB, new(field.Element).Mul(x2, y2))
		rhs := new(field.Element).Add(one, dx2y2)
		return lhs.Equal(rhs)
	default:
		return false
	}
}

func checkOnCurve(params *Params, gx, gy *big.Int) error {
	x := new(field.Element).SetBigInt(params.Field, gx)
	y := new(field.Element).SetBigInt(params.Field, gy)
	if !IsOnCurve(params, x, y) {
		return fmt.Errorf("ecc/curve: %q: generator: %w", params.Name, eccerr.ErrPointNotOnCurve)
	}
	return nil
}

// Equal compares tag, field identity, coefficients, order, cofactor, and
// generator.
func Equal(a, b *Params) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Shape != b.Shape || !a.Field.Equal(b.Field) {
		return false
	}
	if !a.CoeffA.Equal(b.CoeffA) || !a.CoeffB.Equal(b.CoeffB) {
		return false
	}
	if a.N.Cmp(b.N) != 0 || a.H.Cmp(b.H) != 0 {
		return false
	}
	return a.Gx.Cmp(b.Gx) == 0 && a.Gy.Cmp(b.Gy) == 0
}
