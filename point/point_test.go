package point_test

import (
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/sammyne/ecc/curve"
	"github.com/sammyne/ecc/eccerr"
	"github.com/sammyne/ecc/point"
)

func hex(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok)
	return v
}

func TestGenerator_AllCurvesRoundTrip(t *testing.T) {
	for _, name := range curve.Names() {
		params, err := curve.Lookup(name)
		require.NoError(t, err, name)

		g, err := point.Generator(params)
		require.NoError(t, err, name)

		x, y, err := g.Affine()
		require.NoError(t, err, name)
		require.Equal(t, 0, x.Cmp(params.Gx), name)
		require.Equal(t, 0, y.Cmp(params.Gy), name)
	}
}

func TestSecp256k1_2GAnd3G(t *testing.T) {
	params, err := curve.Lookup("secp256k1")
	require.NoError(t, err)
	g, err := point.Generator(params)
	require.NoError(t, err)

	g2 := new(point.Point).Double(g)
	g3 := new(point.Point).Add(g2, g)

	x2, y2, err := g2.Affine()
	require.NoError(t, err)
	x3, y3, err := g3.Affine()
	require.NoError(t, err)

	wantX2 := hex(t, "C6047F9441ED7D6D3045406E95C07CD85C778E4B8CEF3CA7ABAC09B95C709EE5")
	wantY2 := hex(t, "1AE168FEA63DC339A3C58419466CEAEEF7F632653266D0E1236431A950CFE52A")
	wantX3 := hex(t, "F9308A019258C31049344F85F89D5229B531C845836F99B08601F113BCE036F9")
	wantY3 := hex(t, "388F7B0F632DE8140FE337E62A37F3566500A99934C2231B6CB9FD7584B8E672")

	require.Equal(t, 0, x2.Cmp(wantX2))
	require.Equal(t, 0, y2.Cmp(wantY2))
	require.Equal(t, 0, x3.Cmp(wantX3))
	require.Equal(t, 0, y3.Cmp(wantY3))
}

func TestIdentity_IsAdditiveUnit(t *testing.T) {
	for _, name := range []string{"secp256k1", "P256", "test-edwards151", "Ed25519"} {
		params, err := curve.Lookup(name)
		require.NoError(t, err, name)

		g, err := point.Generator(params)
		require.NoError(t, err, name)

		id := point.Identity(params)
		sum := new(point.Point).Add(id, g)
		require.True(t, point.Equal(sum, g), name)

		sum2 := new(point.Point).Add(g, id)
		require.True(t, point.Equal(sum2, g), name)
	}
}

func TestNeg_CancelsToIdentity(t *testing.T) {
	for _, name := range curve.Names() {
		params, err := curve.Lookup(name)
		require.NoError(t, err, name)

		g, err := point.Generator(params)
		require.NoError(t, err, name)

		negG := new(point.Point).Neg(g)
		sum := new(point.Point).Add(g, negG)

		require.True(t, sum.IsNeutral() || point.Equal(sum, point.Identity(params)), name)
	}
}

func TestLadder_MatchesRepeatedAddition(t *testing.T) {
	params, err := curve.Lookup("test-edwards151")
	require.NoError(t, err)
	g, err := point.Generator(params)
	require.NoError(t, err)

	acc := point.Identity(params)
	for k := int64(0); k < int64(params.N.Int64()); k++ {
		got := new(point.Point).Ladder(g, big.NewInt(k))
		require.Truef(t, point.Equal(got, acc), "k=%d\ngot:  %s\nwant: %s", k, spew.Sdump(got), spew.Sdump(acc))
		acc.Add(acc, g)
	}
}

// TestLadder_OrderTimesGeneratorIsIdentity exercises spec section 8's
// mandatory n*G == neutral invariant against every registered curve,
// Montgomery (Curve25519) and twisted-Edwards (Ed25519) included.
func TestLadder_OrderTimesGeneratorIsIdentity(t *testing.T) {
	for _, name := range curve.Names() {
		params, err := curve.Lookup(name)
		require.NoError(t, err, name)
		g, err := point.Generator(params)
		require.NoError(t, err, name)

		nG := new(point.Point).Ladder(g, params.N)
		require.True(t, nG.IsNeutral() || point.Equal(nG, point.Identity(params)), name)
	}
}

// TestLadder_MatchesRepeatedAdditionSmallScalars checks the ladder
// against naive repeated addition for a handful of small scalars on
// every registered curve, so the Montgomery and twisted-Edwards group
// laws (Curve25519, Ed25519) get an actual arithmetic check beyond the
// affine round-trip in TestGenerator_AllCurvesRoundTrip.
func TestLadder_MatchesRepeatedAdditionSmallScalars(t *testing.T) {
	for _, name := range curve.Names() {
		params, err := curve.Lookup(name)
		require.NoError(t, err, name)
		g, err := point.Generator(params)
		require.NoError(t, err, name)

		acc := point.Identity(params)
		for k := int64(0); k < 9; k++ {
			got := new(point.Point).Ladder(g, big.NewInt(k))
			require.Truef(t, point.Equal(got, acc), "%s: k=%d\ngot:  %s\nwant: %s",
				name, k, spew.Sdump(got), spew.Sdump(acc))
			acc.Add(acc, g)
		}
	}
}

// TestBaseMult_MatchesLadder checks the windowed base-point table
// against the constant-time ladder on every registered curve.
func TestBaseMult_MatchesLadder(t *testing.T) {
	for _, name := range curve.Names() {
		params, err := curve.Lookup(name)
		require.NoError(t, err, name)
		g, err := point.Generator(params)
		require.NoError(t, err, name)

		require.NoError(t, g.SetupTable(), name)

		k := new(big.Int).Mod(big.NewInt(123456789), params.N)
		want := new(point.Point).Ladder(g, k)
		got := g.BaseMult(k)

		require.True(t, point.Equal(want, got), name)
	}
}

func TestCodec_CompressedRoundTrip(t *testing.T) {
	for _, name := range []string{"secp256k1", "P256", "test-edwards151"} {
		params, err := curve.Lookup(name)
		require.NoError(t, err, name)
		g, err := point.Generator(params)
		require.NoError(t, err, name)

		enc, err := point.Encode(g, true)
		require.NoError(t, err, name)

		dec, err := point.Decode(params, enc)
		require.NoError(t, err, name)

		require.True(t, point.Equal(g, dec), name)
	}
}

func TestCodec_UncompressedRoundTrip(t *testing.T) {
	params, err := curve.Lookup("secp256k1")
	require.NoError(t, err)
	g, err := point.Generator(params)
	require.NoError(t, err)

	enc, err := point.Encode(g, false)
	require.NoError(t, err)
	require.Equal(t, byte(0x04), enc[0])

	dec, err := point.Decode(params, enc)
	require.NoError(t, err)
	require.True(t, point.Equal(g, dec))
}

func TestCodec_NeutralRoundTrip(t *testing.T) {
	params, err := curve.Lookup("secp256k1")
	require.NoError(t, err)

	id := point.Identity(params)
	enc, err := point.Encode(id, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, enc)

	dec, err := point.Decode(params, enc)
	require.NoError(t, err)
	require.True(t, dec.IsNeutral())
}

func TestDecode_RejectsShortBuffer(t *testing.T) {
	params, err := curve.Lookup("secp256k1")
	require.NoError(t, err)

	_, err = point.Decode(params, []byte{0x02, 0x01})
	require.ErrorIs(t, err, eccerr.ErrShortBuffer)
}

func TestDecode_RejectsNonResidueX(t *testing.T) {
	// mod 7, y^2 = x^3 + 2x + 3 has no point with x=0: the right-hand
	// side is 3, and the quadratic residues mod 7 are {0,1,2,4}.
	params, err := curve.NewShortWeierstrass("", big.NewInt(7), big.NewInt(2), big.NewInt(3),
		big.NewInt(6), big.NewInt(1), big.NewInt(2), big.NewInt(1))
	require.NoError(t, err)

	_, derr := point.Decode(params, []byte{0x02, 0x00})
	require.Error(t, derr)
}
