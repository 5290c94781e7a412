// Package ecdsa implements sign/verify over any registered curve shape,
// parameterized by an external hash collaborator and accelerated by a
// windowed base-point table built once at scheme construction.
package ecdsa

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/sammyne/ecc/curve"
	"github.com/sammyne/ecc/eccerr"
	"github.com/sammyne/ecc/point"
	"github.com/sammyne/ecc/random"
	"github.com/sammyne/ecc/safememory"
)

// Hash is the external digest collaborator a Scheme is built on. The core
// requires only a fixed digest size and a way to run it; DER/ASN.1 framing
// and the choice of algorithm are left to the caller, per the library's
// stated scope.
type Hash interface {
	// Size returns the digest length in bytes.
	Size() int
	// Sum returns the digest of msg.
	Sum(msg []byte) []byte
}

// Scheme binds a curve and a hash into a ready-to-use ECDSA instance. Build
// one per (curve, hash) pair and reuse it: construction precomputes the
// base-point table that Sign and Verify both ride on.
type Scheme struct {
	curve *curve.Params
	hash  Hash
	nsz   int
	g     *point.Point
}

// New validates that the hash's digest is at least ceil(log2(n)/8) bytes
// wide, since a shorter digest would waste entropy the curve's order can
// absorb, and precomputes the base-point table used by every Sign/Verify
// call.
func New(params *curve.Params, h Hash) (*Scheme, error) {
	nsz := (params.N.BitLen() + 7) / 8
	if h.Size() < nsz {
		return nil, fmt.Errorf("ecc/ecdsa: new: digest is %d bytes, need at least %d: %w",
			h.Size(), nsz, eccerr.ErrShortBuffer)
	}

	g, err := point.Generator(params)
	if err != nil {
		return nil, fmt.Errorf("ecc/ecdsa: new: %w", err)
	}
	if err := g.SetupTable(); err != nil {
		return nil, fmt.Errorf("ecc/ecdsa: new: %w", err)
	}

	return &Scheme{curve: params, hash: h, nsz: nsz, g: g}, nil
}

// Signature is a (r, s) pair in Z/n.
type Signature struct {
	R, S *big.Int
}

// hashToScalar reduces the leftmost nsz bytes of H(msg), read big-endian,
// modulo n, per FIPS 186-4 section 6.4.
func (s *Scheme) hashToScalar(msg []byte) *big.Int {
	digest := s.hash.Sum(msg)
	e := new(big.Int).SetBytes(digest[:s.nsz])
	return e.Mod(e, s.curve.N)
}

// Sign produces a signature over msg under the secret scalar d, which must
// lie in [1, n-1]. A fresh nonce is drawn from the platform RNG on every
// attempt; the loop rejects r == 0, s == 0, and a non-invertible nonce,
// retrying with a new draw each time.
func (s *Scheme) Sign(d *big.Int, msg []byte) (*Signature, error) {
	n := s.curve.N
	if d.Sign() <= 0 || d.Cmp(n) >= 0 {
		return nil, fmt.Errorf("ecc/ecdsa: sign: %w", eccerr.ErrBadSignature)
	}

	e := s.hashToScalar(msg)

	for {
		k, err := random.NonzeroBelow(n)
		if err != nil {
			return nil, fmt.Errorf("ecc/ecdsa: sign: %w", err)
		}

		R := s.g.BaseMult(k)
		rx, _, err := R.Affine()
		if err != nil {
			// R landed on the neutral element; redraw.
			continue
		}

		r := new(big.Int).Mod(rx, n)
		if r.Sign() == 0 {
			continue
		}

		kInv := new(big.Int).ModInverse(k, n)
		if kInv == nil {
			continue
		}

		rd := new(big.Int).Mul(r, d)
		sVal := new(big.Int).Add(e, rd)
		sVal.Mul(sVal, kInv)
		sVal.Mod(sVal, n)
		if sVal.Sign() == 0 {
			continue
		}

		safememory.WipeWords(k.Bits())
		return &Signature{R: r, S: sVal}, nil
	}
}

// Verify reports whether sig is a valid signature over msg under the
// public point Q. Q is assumed to have entered the program through
// point.FromAffine or point.Decode, both of which reject off-curve
// coordinates at construction; Verify's own curve check is limited to
// rejecting the neutral element, which Decode (tag 0x00) and
// point.Identity can produce.
func (s *Scheme) Verify(Q *point.Point, sig *Signature, msg []byte) (bool, error) {
	n := s.curve.N
	one := big.NewInt(1)

	if sig.R.Cmp(one) < 0 || sig.R.Cmp(n) >= 0 {
		return false, nil
	}
	if sig.S.Cmp(one) < 0 || sig.S.Cmp(n) >= 0 {
		return false, nil
	}
	if !curve.Equal(Q.Curve(), s.curve) {
		return false, fmt.Errorf("ecc/ecdsa: verify: %w", eccerr.ErrCurveMismatch)
	}
	if point.Equal(Q, point.Identity(s.curve)) {
		// Q is the neutral element, which is never a valid public key.
		return false, nil
	}

	e := s.hashToScalar(msg)

	w := new(big.Int).ModInverse(sig.S, n)
	if w == nil {
		return false, nil
	}

	u1 := new(big.Int).Mul(e, w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, n)

	p1 := s.g.BaseMult(u1)
	p2 := new(point.Point).Ladder(Q, u2)
	sum := new(point.Point).Add(p1, p2)

	if sum.IsNeutral() {
		return false, nil
	}

	vx, _, err := sum.Affine()
	if err != nil {
		return false, nil
	}
	v := new(big.Int).Mod(vx, n)

	return v.Cmp(sig.R) == 0, nil
}

// Marshal serializes sig as r || s, each big-endian and left-zero-padded
// to nsz bytes.
func (s *Scheme) Marshal(sig *Signature) []byte {
	out := make([]byte, 2*s.nsz)
	rb := sig.R.Bytes()
	sb := sig.S.Bytes()
	copy(out[s.nsz-len(rb):s.nsz], rb)
	copy(out[2*s.nsz-len(sb):], sb)
	return out
}

// MarshalHex renders Marshal's output as upper-case hex.
func (s *Scheme) MarshalHex(sig *Signature) string {
	return fmt.Sprintf("%X", s.Marshal(sig))
}

// Unmarshal parses the fixed-width r || s encoding Marshal produces,
// rejecting a short buffer or an out-of-range component.
func (s *Scheme) Unmarshal(data []byte) (*Signature, error) {
	if len(data) != 2*s.nsz {
		return nil, fmt.Errorf("ecc/ecdsa: unmarshal: %w", eccerr.ErrShortBuffer)
	}

	r := new(big.Int).SetBytes(data[:s.nsz])
	sVal := new(big.Int).SetBytes(data[s.nsz:])

	if r.Sign() == 0 || r.Cmp(s.curve.N) >= 0 {
		return nil, fmt.Errorf("ecc/ecdsa: unmarshal: %w", eccerr.ErrBadSignature)
	}
	if sVal.Sign() == 0 || sVal.Cmp(s.curve.N) >= 0 {
		return nil, fmt.Errorf("ecc/ecdsa: unmarshal: %w", eccerr.ErrBadSignature)
	}

	return &Signature{R: r, S: sVal}, nil
}

// UnmarshalHex is Unmarshal over a hex string as produced by MarshalHex.
func (s *Scheme) UnmarshalHex(str string) (*Signature, error) {
	data, err := hex.DecodeString(str)
	if err != nil {
		return nil, fmt.Errorf("ecc/ecdsa: unmarshal-hex: %w", eccerr.ErrShortBuffer)
	}
	return s.Unmarshal(data)
}
