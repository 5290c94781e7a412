package curve_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sammyne/ecc/curve"
	"github.com/sammyne/ecc/eccerr"
	"github.com/sammyne/ecc/field"
)

func TestNamed_GeneratorsOnCurve(t *testing.T) {
	for _, name := range curve.Names() {
		params, err := curve.Lookup(name)
		require.NoError(t, err, name)
		require.NotNil(t, params.Field, name)
		require.True(t, params.Bits > 0, name)
		x := new(field.Element).SetBigInt(params.Field, params.Gx)
		y := new(field.Element).SetBigInt(params.Field, params.Gy)
		require.True(t, curve.IsOnCurve(params, x, y), name)
	}
}

func TestLookup_UnknownCurve(t *testing.T) {
	_, err := curve.Lookup("does-not-exist")
	require.ErrorIs(t, err, eccerr.ErrUnknownCurve)
}

func TestLookup_KnownCurves(t *testing.T) {
	for _, name := range []string{
		"P224", "P256", "P384", "P521", "secp256k1",
		"Curve25519", "Ed25519", "test-edwards151",
	} {
		_, err := curve.Lookup(name)
		require.NoError(t, err, name)
	}
}

func TestEqual_SameCurveTwiceByName(t *testing.T) {
	a, err := curve.Lookup("secp256k1")
	require.NoError(t, err)
	b, err := curve.Lookup("secp256k1")
	require.NoError(t, err)
	require.True(t, curve.Equal(a, b))
}

func TestEqual_DifferentCurvesNotEqual(t *testing.T) {
	a, err := curve.Lookup("P256")
	require.NoError(t, err)
	b, err := curve.Lookup("secp256k1")
	require.NoError(t, err)
	require.False(t, curve.Equal(a, b))
}

func TestNewShortWeierstrass_RejectsOffCurveGenerator(t *testing.T) {
	p := big.NewInt(101)
	_, err := curve.NewShortWeierstrass("", p, big.NewInt(2), big.NewInt(3),
		big.NewInt(97), big.NewInt(1), big.NewInt(1), big.NewInt(1))
	require.ErrorIs(t, err, eccerr.ErrPointNotOnCurve)
}

func TestNewMontgomery_DerivesWeierstrassForm(t *testing.T) {
	params, err := curve.Lookup("Curve25519")
	require.NoError(t, err)
	require.NotNil(t, params.WsA)
	require.NotNil(t, params.WsB)
	require.NotNil(t, params.BInv)
	require.NotNil(t, params.AOver3)
}

func TestNewEdwards_SmallVerifiedCurve(t *testing.T) {
	// test-edwards151: p=151, c=1, d=3, subgroup order 41, cofactor 4,
	// generator (136, 44) -- independently brute-forced.
	params, err := curve.Lookup("test-edwards151")
	require.NoError(t, err)
	require.Equal(t, curve.Edwards, params.Shape)
	require.Equal(t, int64(41), params.N.Int64())
	require.Equal(t, int64(4), params.H.Int64())
}

func TestShape_String(t *testing.T) {
	require.Equal(t, "short-weierstrass", curve.ShortWeierstrass.String())
	require.Equal(t, "edwards", curve.Edwards.String())
	require.Equal(t, "montgomery", curve.Montgomery.String())
	require.Equal(t, "twisted-edwards", curve.TwistedEdwards.String())
}

func TestNames_NoDuplicates(t *testing.T) {
	names := curve.Names()
	require.GreaterOrEqual(t, len(names), 8)
	seen := map[string]bool{}
	for _, n := range names {
		require.False(t, seen[n], "duplicate name %q", n)
		seen[n] = true
	}
}
