package elgamal_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sammyne/ecc/curve"
	"github.com/sammyne/ecc/elgamal"
	"github.com/sammyne/ecc/point"
	"github.com/sammyne/ecc/random"
)

func genKeyPair(t *testing.T, params *curve.Params) (*big.Int, *point.Point) {
	t.Helper()
	d, err := random.NonzeroBelow(params.N)
	require.NoError(t, err)

	g, err := point.Generator(params)
	require.NoError(t, err)
	Q := new(point.Point).Ladder(g, d)
	return d, Q
}

func randomPoint(t *testing.T, params *curve.Params) *point.Point {
	t.Helper()
	k, err := random.NonzeroBelow(params.N)
	require.NoError(t, err)
	g, err := point.Generator(params)
	require.NoError(t, err)
	return new(point.Point).Ladder(g, k)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	for _, name := range []string{"secp256k1", "test-edwards151"} {
		params, err := curve.Lookup(name)
		require.NoError(t, err, name)

		d, Q := genKeyPair(t, params)
		M := randomPoint(t, params)

		ct, err := elgamal.Encrypt(params, Q, M)
		require.NoError(t, err, name)

		got, err := elgamal.Decrypt(params, d, ct)
		require.NoError(t, err, name)
		require.True(t, point.Equal(got, M), name)
	}
}

func TestEncrypt_FreshNonceEachCall(t *testing.T) {
	params, err := curve.Lookup("secp256k1")
	require.NoError(t, err)

	_, Q := genKeyPair(t, params)
	M := randomPoint(t, params)

	ct1, err := elgamal.Encrypt(params, Q, M)
	require.NoError(t, err)
	ct2, err := elgamal.Encrypt(params, Q, M)
	require.NoError(t, err)

	require.False(t, point.Equal(ct1.C, ct2.C))
	require.False(t, point.Equal(ct1.D, ct2.D))
}

func TestAdd_IsHomomorphicOverPlaintexts(t *testing.T) {
	params, err := curve.Lookup("secp256k1")
	require.NoError(t, err)

	d, Q := genKeyPair(t, params)
	m1 := randomPoint(t, params)
	m2 := randomPoint(t, params)

	ct1, err := elgamal.Encrypt(params, Q, m1)
	require.NoError(t, err)
	ct2, err := elgamal.Encrypt(params, Q, m2)
	require.NoError(t, err)

	sum, err := elgamal.Add(ct1, ct2)
	require.NoError(t, err)

	got, err := elgamal.Decrypt(params, d, sum)
	require.NoError(t, err)

	want := new(point.Point).Add(m1, m2)
	require.True(t, point.Equal(got, want))
}

func TestDecrypt_RejectsScalarOutOfRange(t *testing.T) {
	params, err := curve.Lookup("secp256k1")
	require.NoError(t, err)

	_, Q := genKeyPair(t, params)
	M := randomPoint(t, params)

	ct, err := elgamal.Encrypt(params, Q, M)
	require.NoError(t, err)

	_, err = elgamal.Decrypt(params, params.N, ct)
	require.Error(t, err)
}

func TestEncrypt_RejectsCurveMismatch(t *testing.T) {
	params, err := curve.Lookup("secp256k1")
	require.NoError(t, err)
	other, err := curve.Lookup("P256")
	require.NoError(t, err)

	_, Q := genKeyPair(t, params)
	M := randomPoint(t, other)

	_, err = elgamal.Encrypt(params, Q, M)
	require.Error(t, err)
}
