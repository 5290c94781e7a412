// Package safememory is the Go realization of the C library's safe-memory
// hook: a process-wide, opt-in switch that zeroizes sensitive scratch
// (scalars, nonces, shared-secret points) before it is released.
//
// The C source replaces GMP's allocator with a pair of realloc/free
// shims that zero a block before it moves or is freed. math/big exposes
// no allocator-replacement hook, so this package instead provides
// explicit wipe primitives that the field, point, and ecdsa packages
// call on their own scratch once Install has been called. Install is a
// no-op switch: code that never calls it keeps today's math/big
// behavior, matching "no-op if not installed" in spec.md section 4.H.
package safememory

import (
	"math/big"
	"sync/atomic"
)

var enabled atomic.Bool

// Install turns on zeroization of sensitive scratch across the library.
// It is idempotent and safe to call from multiple goroutines; callers
// that handle secret key material should call it once at startup.
func Install() {
	enabled.Store(true)
}

// Enabled reports whether Install has been called.
func Enabled() bool {
	return enabled.Load()
}

// Wipe overwrites b with zeros in place. It is a no-op unless Install has
// been called, so call sites can invoke it unconditionally.
func Wipe(b []byte) {
	if !enabled.Load() {
		return
	}
	for i := range b {
		b[i] = 0
	}
}

// WipeWords zeros a big.Int's limb storage in place. Call it with
// x.Bits() before resetting x itself (e.g. x.SetInt64(0)); see
// field.Element.Clear for the call site.
func WipeWords(words []big.Word) {
	if !enabled.Load() {
		return
	}
	for i := range words {
		words[i] = 0
	}
}
