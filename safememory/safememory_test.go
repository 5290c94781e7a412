package safememory_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sammyne/ecc/safememory"
)

func TestWipe_NoopUntilInstalled(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	safememory.Wipe(b)
	require.Equal(t, []byte{1, 2, 3, 4}, b)
}

func TestWipe_ZeroesAfterInstall(t *testing.T) {
	safememory.Install()
	b := []byte{1, 2, 3, 4}
	safememory.Wipe(b)
	require.Equal(t, []byte{0, 0, 0, 0}, b)
}

func TestWipeWords_ZeroesBigIntLimbs(t *testing.T) {
	safememory.Install()
	x := big.NewInt(123456789)
	words := x.Bits()
	safememory.WipeWords(words)
	x.SetInt64(0)
	require.Equal(t, 0, x.Sign())
}
