package ecdsa_test

import (
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sammyne/ecc/curve"
	"github.com/sammyne/ecc/ecdsa"
	"github.com/sammyne/ecc/point"
	"github.com/sammyne/ecc/random"
)

// sha256Hash adapts crypto/sha256 to the ecdsa.Hash collaborator
// interface; it stands in for whatever digest a real caller wires in.
type sha256Hash struct{}

func (sha256Hash) Size() int { return sha256.Size }
func (sha256Hash) Sum(msg []byte) []byte {
	sum := sha256.Sum256(msg)
	return sum[:]
}

func newScheme(t *testing.T, name string) (*ecdsa.Scheme, *curve.Params) {
	t.Helper()
	params, err := curve.Lookup(name)
	require.NoError(t, err)
	s, err := ecdsa.New(params, sha256Hash{})
	require.NoError(t, err)
	return s, params
}

func genKeyPair(t *testing.T, params *curve.Params) (*big.Int, *point.Point) {
	t.Helper()
	d, err := random.NonzeroBelow(params.N)
	require.NoError(t, err)

	g, err := point.Generator(params)
	require.NoError(t, err)
	Q := new(point.Point).Ladder(g, d)
	return d, Q
}

func TestSignVerify_RoundTrip(t *testing.T) {
	s, params := newScheme(t, "secp256k1")
	d, Q := genKeyPair(t, params)

	msg := []byte("the quick brown fox jumps over the lazy dog")
	sig, err := s.Sign(d, msg)
	require.NoError(t, err)

	ok, err := s.Verify(Q, sig, msg)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerify_RejectsTamperedMessage(t *testing.T) {
	s, params := newScheme(t, "secp256k1")
	d, Q := genKeyPair(t, params)

	msg := []byte("attack at dawn")
	sig, err := s.Sign(d, msg)
	require.NoError(t, err)

	ok, err := s.Verify(Q, sig, []byte("attack at dusk"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerify_RejectsTamperedSignature(t *testing.T) {
	s, params := newScheme(t, "secp256k1")
	d, Q := genKeyPair(t, params)

	msg := []byte("attack at dawn")
	sig, err := s.Sign(d, msg)
	require.NoError(t, err)

	tampered := &ecdsa.Signature{R: sig.R, S: new(big.Int).Xor(sig.S, big.NewInt(1))}
	ok, err := s.Verify(Q, tampered, msg)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerify_RejectsOutOfRangeComponents(t *testing.T) {
	s, params := newScheme(t, "secp256k1")
	_, Q := genKeyPair(t, params)

	msg := []byte("attack at dawn")

	ok, err := s.Verify(Q, &ecdsa.Signature{R: big.NewInt(0), S: big.NewInt(1)}, msg)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = s.Verify(Q, &ecdsa.Signature{R: big.NewInt(1), S: params.N}, msg)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerify_RejectsCurveMismatch(t *testing.T) {
	s, params := newScheme(t, "secp256k1")
	_, _ = genKeyPair(t, params)

	other, err := curve.Lookup("P256")
	require.NoError(t, err)
	otherG, err := point.Generator(other)
	require.NoError(t, err)

	_, err = s.Verify(otherG, &ecdsa.Signature{R: big.NewInt(1), S: big.NewInt(1)}, []byte("x"))
	require.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	s, params := newScheme(t, "secp256k1")
	d, _ := genKeyPair(t, params)

	sig, err := s.Sign(d, []byte("round trip"))
	require.NoError(t, err)

	wire := s.Marshal(sig)
	got, err := s.Unmarshal(wire)
	require.NoError(t, err)
	require.Equal(t, 0, sig.R.Cmp(got.R))
	require.Equal(t, 0, sig.S.Cmp(got.S))

	hexStr := s.MarshalHex(sig)
	got2, err := s.UnmarshalHex(hexStr)
	require.NoError(t, err)
	require.Equal(t, 0, sig.R.Cmp(got2.R))
	require.Equal(t, 0, sig.S.Cmp(got2.S))
}

func TestUnmarshal_RejectsShortBuffer(t *testing.T) {
	s, _ := newScheme(t, "secp256k1")
	_, err := s.Unmarshal([]byte{0x01, 0x02})
	require.Error(t, err)
}

func TestNew_RejectsUndersizedHash(t *testing.T) {
	params, err := curve.Lookup("P521")
	require.NoError(t, err)

	_, err = ecdsa.New(params, sha256Hash{})
	require.Error(t, err)
}
