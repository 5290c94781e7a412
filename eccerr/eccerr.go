// Package eccerr collects the sentinel errors shared by every layer of the
// library, so callers can use errors.Is regardless of which package raised
// the condition.
package eccerr

import "errors"

var (
	// ErrInvalidModulus is returned when a field is constructed from a
	// modulus that is zero, one, or even.
	ErrInvalidModulus = errors.New("ecc: invalid modulus")

	// ErrFieldMismatch is returned when a binary field operation is given
	// operands interned to different moduli.
	ErrFieldMismatch = errors.New("ecc: field mismatch")

	// ErrNotInvertible is returned by field inversion on a zero input.
	ErrNotInvertible = errors.New("ecc: element not invertible")

	// ErrNotAResidue is returned by field square root on a non-residue.
	ErrNotAResidue = errors.New("ecc: not a quadratic residue")

	// ErrPointNotOnCurve is returned by point import/decompression and by
	// ECDSA public-key validation.
	ErrPointNotOnCurve = errors.New("ecc: point not on curve")

	// ErrCurveMismatch is returned by operations spanning two points or
	// scalars bound to different curves.
	ErrCurveMismatch = errors.New("ecc: curve mismatch")

	// ErrUnknownCurve is returned by a registry lookup miss.
	ErrUnknownCurve = errors.New("ecc: unknown curve")

	// ErrBadSignature is returned when r or s fall outside [1, n-1], or
	// when the verification equation fails.
	ErrBadSignature = errors.New("ecc: bad signature")

	// ErrRandomFailure is returned when the platform RNG fails to fill a
	// buffer. Per spec this condition is treated as fatal by callers that
	// cannot proceed without entropy.
	ErrRandomFailure = errors.New("ecc: random source failure")

	// ErrPointIsNeutral is returned where an affine export or a codec
	// operation is asked to produce coordinates for the neutral element,
	// which has none.
	ErrPointIsNeutral = errors.New("ecc: point is the neutral element")

	// ErrShortBuffer is returned by point/signature decoders given a
	// buffer of the wrong length.
	ErrShortBuffer = errors.New("ecc: buffer has the wrong length")
)
