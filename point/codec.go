package point

import (
	"fmt"
	"math/big"

	"github.com/sammyne/ecc/curve"
	"github.com/sammyne/ecc/eccerr"
	"github.com/sammyne/ecc/field"
)

// Encode serializes p in SEC1 style: a single 0x00 byte for the
// ShortWeierstrass/Montgomery neutral element (Edwards-family identities
// are ordinary affine points and encode like any other point),
// 0x02/0x03 || x for compressed form (the trailing bit of the
// tag carries y's parity), or 0x04 || x || y for uncompressed form. x
// and y are left-zero-padded to the field's byte length.
func Encode(p *Point, compressed bool) ([]byte, error) {
	if p.neutral && groupShape(p.curve) == ShapeShortWeierstrass {
		return []byte{0x00}, nil
	}

	x, y, err := p.Affine()
	if err != nil {
		return nil, fmt.Errorf("ecc/point: encode: %w", err)
	}

	sz := p.curve.Field.ByteLen()
	xb := leftPad(x, sz)

	if compressed {
		tag := byte(0x02)
		if y.Bit(0) == 1 {
			tag = 0x03
		}
		out := make([]byte, 1+sz)
		out[0] = tag
		copy(out[1:], xb)
		return out, nil
	}

	yb := leftPad(y, sz)
	out := make([]byte, 1+2*sz)
	out[0] = 0x04
	copy(out[1:1+sz], xb)
	copy(out[1+sz:], yb)
	return out, nil
}

// Decode parses the SEC1-style encoding Encode produces, validating the
// result is on-curve (eccerr.ErrPointNotOnCurve) and rejecting malformed
// buffers (eccerr.ErrShortBuffer).
func Decode(params *curve.Params, data []byte) (*Point, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("ecc/point: decode: %w", eccerr.ErrShortBuffer)
	}

	sz := params.Field.ByteLen()

	switch data[0] {
	case 0x00:
		if len(data) != 1 {
			return nil, fmt.Errorf("ecc/point: decode: %w", eccerr.ErrShortBuffer)
		}
		return Identity(params), nil

	case 0x02, 0x03:
		if len(data) != 1+sz {
			return nil, fmt.Errorf("ecc/point: decode: %w", eccerr.ErrShortBuffer)
		}
		x := new(big.Int).SetBytes(data[1:])
		y, err := yFromX(params, x)
		if err != nil {
			return nil, fmt.Errorf("ecc/point: decode: %w", err)
		}
		wantOdd := data[0] == 0x03
		if (y.Bit(0) == 1) != wantOdd {
			y = new(big.Int).Sub(params.Field.Modulus(), y)
		}
		return FromAffine(params, x, y)

	case 0x04:
		if len(data) != 1+2*sz {
			return nil, fmt.Errorf("ecc/point: decode: %w", eccerr.ErrShortBuffer)
		}
		x := new(big.Int).SetBytes(data[1 : 1+sz])
		y := new(big.Int).SetBytes(data[1+sz:])
		return FromAffine(params, x, y)

	default:
		return nil, fmt.Errorf("ecc/point: decode: unrecognized tag 0x%02x: %w", data[0], eccerr.ErrShortBuffer)
	}
}

// yFromX solves the curve equation for y^2 at x and returns one square
// root (parity is fixed up by the caller).
func yFromX(params *curve.Params, x *big.Int) (*big.Int, error) {
	fp := params.Field
	xe := new(field.Element).SetBigInt(fp, x)
	one := new(field.Element).SetUint64(fp, 1)

	var ySq field.Element
	switch params.Shape {
	case ShapeShortWeierstrass:
		x2 := new(field.Element).Square(xe)
		x3 := new(field.Element).Mul(x2, xe)
		ax := new(field.Element).Mul(params.CoeffA, xe)
		ySq.Add(x3, ax)
		ySq.Add(&ySq, params.CoeffB)

	case ShapeMontgomery:
		x2 := new(field.Element).Square(xe)
		x3 := new(field.Element).Mul(x2, xe)
		ax2 := new(field.Element).Mul(params.CoeffB, x2)
		num := new(field.Element).Add(x3, ax2)
		num.Add(num, xe)
		ySq.Mul(num, params.BInv)

	case ShapeEdwards:
		x2 := new(field.Element).Square(xe)
		c2 := new(field.Element).Square(params.CoeffA)
		num := new(field.Element).Sub(c2, x2)
		den := new(field.Element).Sub(one, new(field.Element).Mul(c2, new(field.Element).Mul(params.CoeffB, x2)))
		var denInv field.Element
		if err := denInv.Inverse(den); err != nil {
			return nil, err
		}
		ySq.Mul(num, &denInv)

	case ShapeTwistedEdwards:
		x2 := new(field.Element).Square(xe)
		num := new(field.Element).Sub(one, new(field.Element).Mul(params.CoeffA, x2))
		den := new(field.Element).Sub(one, new(field.Element).Mul(params.CoeffB, x2))
		var denInv field.Element
		if err := denInv.Inverse(den); err != nil {
			return nil, err
		}
		ySq.Mul(num, &denInv)
	}

	var y field.Element
	if err := y.Sqrt(&ySq); err != nil {
		return nil, err
	}
	return y.BigInt(), nil
}

func leftPad(x *big.Int, n int) []byte {
	out := make([]byte, n)
	raw := x.Bytes()
	copy(out[n-len(raw):], raw)
	return out
}
