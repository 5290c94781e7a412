// Package random draws uniformly distributed big integers from the
// platform cryptographic random facility. It is the sole source of
// entropy used by nonce generation and key generation elsewhere in the
// library; no seeding interface is exposed.
package random

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/sammyne/ecc/eccerr"
)

// log is the package-wide logger. Reassign via SetLogger in a program's
// init path to route entropy-failure diagnostics elsewhere; the default is
// silent (zap.NewNop).
var log = zap.NewNop()

// SetLogger installs the logger used to report RNG failures before they
// are surfaced to the caller as ErrRandomFailure.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// Below draws a uniform integer in [0, n) by reading 2*ceil(bitlen(n)/8)
// cryptographically random bytes and reducing modulo n. The 2x
// oversampling keeps the modulo bias on the result negligible. n must be
// positive.
func Below(n *big.Int) (*big.Int, error) {
	if n.Sign() <= 0 {
		return nil, fmt.Errorf("ecc/random: below: modulus must be positive")
	}

	nbytes := (n.BitLen() + 7) / 8
	buf := make([]byte, 2*nbytes)
	if _, err := rand.Read(buf); err != nil {
		log.Error("failed reading platform RNG", zap.Error(err))
		return nil, fmt.Errorf("ecc/random: below: %w: %s", eccerr.ErrRandomFailure, err)
	}

	k := new(big.Int).SetBytes(buf)
	return k.Mod(k, n), nil
}

// NonzeroBelow is Below, rejection-sampled until the draw is nonzero. It is
// the primitive used everywhere a secret scalar or nonce must not be zero.
func NonzeroBelow(n *big.Int) (*big.Int, error) {
	for {
		k, err := Below(n)
		if err != nil {
			return nil, err
		}
		if k.Sign() != 0 {
			return k, nil
		}
	}
}
