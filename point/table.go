package point

import (
	"math/big"
)

// SetupTable precomputes a windowed width-8 table for accelerated
// multiples of p: table[i] holds {0, base, 2*base, ..., 255*base} where
// base = 256^i * p, one row per byte of the scalar. This is the direct
// generalization of the teacher's secp256k1-specific bytePoints table to
// an arbitrary curve/field width. The table is memoized on p and dropped
// by any later mutation of p (see invalidate).
func (p *Point) SetupTable() error {
	p.tableMu.Lock()
	defer p.tableMu.Unlock()
	if p.table != nil {
		return nil
	}

	windows := (p.curve.N.BitLen() + 7) / 8
	if windows == 0 {
		windows = 1
	}

	table := make([][]*Point, windows)
	base := new(Point).Set(p)

	for i := 0; i < windows; i++ {
		row := make([]*Point, 256)
		row[0] = Identity(p.curve)
		row[1] = new(Point).Set(base)
		for v := 2; v < 256; v++ {
			row[v] = new(Point).Add(row[v-1], base)
		}
		table[i] = row

		if i != windows-1 {
			next := new(Point).Set(base)
			for b := 0; b < 8; b++ {
				next.Double(next)
			}
			base = next
		}
	}

	p.table = table
	return nil
}

// BaseMult returns k*p using the table built by SetupTable. It is not
// hardened against cache-timing side channels (the table row lookup is
// indexed directly by each byte of k); per this library's scope, use it
// only for the caller-chosen fixed generator, and use Ladder wherever
// the point operand is itself secret. Calling BaseMult before SetupTable
// is a programming error and panics, the same discipline field.Element
// applies to a field mismatch.
func (p *Point) BaseMult(k *big.Int) *Point {
	p.tableMu.Lock()
	table := p.table
	p.tableMu.Unlock()
	if table == nil {
		panic("ecc/point: base-mult: SetupTable was never called")
	}

	windows := len(table)
	kr := new(big.Int).Mod(k, p.curve.N)
	kb := make([]byte, windows)
	raw := kr.Bytes()
	copy(kb[windows-len(raw):], raw)

	acc := Identity(p.curve)
	for i := 0; i < windows; i++ {
		byteVal := kb[windows-1-i]
		acc.Add(acc, table[i][byteVal])
	}
	return acc
}
