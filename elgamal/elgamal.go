// Package elgamal implements the two-point EC-Elgamal cryptosystem: a
// plaintext point is blinded by a fresh nonce and the recipient's public
// key, and recovered with the matching secret scalar. It is additively
// homomorphic and not IND-CCA2; callers needing non-malleability must
// layer their own MAC over the ciphertext.
package elgamal

import (
	"fmt"
	"math/big"

	"github.com/sammyne/ecc/curve"
	"github.com/sammyne/ecc/eccerr"
	"github.com/sammyne/ecc/point"
	"github.com/sammyne/ecc/random"
)

// Ciphertext is the (C, D) point pair EC-Elgamal encrypts a plaintext
// point into.
type Ciphertext struct {
	C, D *point.Point
}

// Encrypt draws a fresh nonzero nonce k and returns (k*G, k*Q + M) for the
// public key Q = d*G. A fresh k is drawn on every call; callers must never
// reuse an Encrypt-produced nonce across messages.
func Encrypt(params *curve.Params, Q, M *point.Point) (*Ciphertext, error) {
	if !curve.Equal(Q.Curve(), params) || !curve.Equal(M.Curve(), params) {
		return nil, fmt.Errorf("ecc/elgamal: encrypt: %w", eccerr.ErrCurveMismatch)
	}

	g, err := point.Generator(params)
	if err != nil {
		return nil, fmt.Errorf("ecc/elgamal: encrypt: %w", err)
	}

	k, err := random.NonzeroBelow(params.N)
	if err != nil {
		return nil, fmt.Errorf("ecc/elgamal: encrypt: %w", err)
	}

	C := new(point.Point).Ladder(g, k)
	kQ := new(point.Point).Ladder(Q, k)
	D := new(point.Point).Add(kQ, M)

	return &Ciphertext{C: C, D: D}, nil
}

// Decrypt recovers the plaintext point M = D - d*C under the secret
// scalar d, which must lie in Fn for params' curve. It requires C and D
// to share params' curve.
func Decrypt(params *curve.Params, d *big.Int, ct *Ciphertext) (*point.Point, error) {
	if !curve.Equal(ct.C.Curve(), params) || !curve.Equal(ct.D.Curve(), params) {
		return nil, fmt.Errorf("ecc/elgamal: decrypt: %w", eccerr.ErrCurveMismatch)
	}
	if d.Sign() <= 0 || d.Cmp(params.N) >= 0 {
		return nil, fmt.Errorf("ecc/elgamal: decrypt: scalar not in Fn: %w", eccerr.ErrBadSignature)
	}

	dC := new(point.Point).Ladder(ct.C, d)
	negDC := new(point.Point).Neg(dC)

	return new(point.Point).Add(ct.D, negDC), nil
}

// Add combines two ciphertexts encrypted under the same public key,
// yielding a ciphertext for the componentwise sum of their plaintexts:
// given Encrypt(Q, M1) and Encrypt(Q, M2), Add's result decrypts to
// M1 + M2 under d. This is the homomorphism EC-Elgamal trades for
// IND-CCA2 security.
func Add(a, b *Ciphertext) (*Ciphertext, error) {
	if !curve.Equal(a.C.Curve(), b.C.Curve()) {
		return nil, fmt.Errorf("ecc/elgamal: add: %w", eccerr.ErrCurveMismatch)
	}

	C := new(point.Point).Add(a.C, b.C)
	D := new(point.Point).Add(a.D, b.D)
	return &Ciphertext{C: C, D: D}, nil
}
