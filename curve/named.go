package curve

import "math/big"

func hex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("ecc/curve: invalid hex constant: " + s)
	}
	return v
}

func dec(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("ecc/curve: invalid decimal constant: " + s)
	}
	return v
}

func mustNamed(err error) {
	if err != nil {
		panic("ecc/curve: named-curve registration failed: " + err.Error())
	}
}

// init populates the name registry with the curves this build ships.
// Each constructor checks its generator against the curve equation, and
// mustNamed panics if that check fails; see SPEC_FULL.md section 4.C for
// the decision to ship this subset rather than the full coverage list in
// spec.md section 4.C.
func init() {
	_, err := NewShortWeierstrass("P224",
		hex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF000000000000000000000001"),
		hex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFE"),
		hex("B4050A850C04B3ABF54132565044B0B7D7BFD8BA270B39432355FFB4"),
		hex("FFFFFFFFFFFFFFFFFFFFFFFFFFFF16A2E0B8F03E13DD29455C5C2A3D"),
		big.NewInt(1),
		hex("B70E0CBD6BB4BF7F321390B94A03C1D356C21122343280D6115C1D21"),
		hex("BD376388B5F723FB4C22DFE6CD4375A05A07476444D5819985007E34"),
	)
	mustNamed(err)

	_, err = NewShortWeierstrass("P256",
		hex("FFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFF"),
		hex("FFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFC"),
		hex("5AC635D8AA3A93E7B3EBBD55769886BC651D06B0CC53B0F63BCE3C3E27D2604B"),
		hex("FFFFFFFF00000000FFFFFFFFFFFFFFFFBCE6FAADA7179E84F3B9CAC2FC632551"),
		big.NewInt(1),
		hex("6B17D1F2E12C4247F8BCE6E563A440F277037D812DEB33A0F4A13945D898C296"),
		hex("4FE342E2FE1A7F9B8EE7EB4A7C0F9E162BCE33576B315ECECBB6406837BF51F5"),
	)
	mustNamed(err)

	_, err = NewShortWeierstrass("P384",
		hex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFF0000000000000000FFFFFFFF"),
		hex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFF0000000000000000FFFFFFFC"),
		hex("B3312FA7E23EE7E4988E056BE3F82D19181D9C6EFE8141120314088F5013875AC656398D8A2ED19D2A85C8EDD3EC2AEF"),
		hex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFC7634D81F4372DDF581A0DB248B0A77AECEC196ACCC52973"),
		big.NewInt(1),
		hex("AA87CA22BE8B05378EB1C71EF320AD746E1D3B628BA79B9859F741E082542A385502F25DBF55296C3A545E3872760AB7"),
		hex("3617DE4A96262C6F5D9E98BF9292DC29F8F41DBD289A147CE9DA3113B5F0B8C00A60B1CE1D7E819D7A431D7C90EA0E5F"),
	)
	mustNamed(err)

	_, err = NewShortWeierstrass("P521",
		hex("01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"),
		hex("01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFC"),
		hex("0051953EB9618E1C9A1F929A21A0B68540EEA2DA725B99B315F3B8B489918EF109E156193951EC7E937B1652C0BD3BB1BF073573DF883D2C34F1EF451FD46B503F00"),
		hex("01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFA51868783BF2F966B7FCC0148F709A5D03BB5C9B8899C47AEBB6FB71E91386409"),
		big.NewInt(1),
		hex("00C6858E06B70404E9CD9E3ECB662395B4429C648139053FB521F828AF606B4D3DBAA14B5E77EFE75928FE1DC127A2FFA8DE3348B3C1856A429BF97E7E31C2E5BD66"),
		hex("011839296A789A3BC0045C8A5FB42C7D1BD998F54449579B446817AFBD17273E662C97EE72995EF42640C550B9013FAD0761353C7086A272C24088BE94769FD16650"),
	)
	mustNamed(err)

	_, err = NewShortWeierstrass("secp256k1",
		hex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"),
		big.NewInt(0),
		big.NewInt(7),
		hex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"),
		big.NewInt(1),
		hex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
		hex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"),
	)
	mustNamed(err)

	_, err = NewMontgomery("Curve25519",
		hex("7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFED"),
		big.NewInt(1),      // B
		big.NewInt(486662), // A
		hex("1000000000000000000000000000000014DEF9DEA2F79CD65812631A5CF5D3ED"),
		big.NewInt(8),
		big.NewInt(9),
		dec("14781619447589544791020593568409986887264606134616475288964881837755586237401"),
	)
	mustNamed(err)

	_, err = NewTwistedEdwards("Ed25519",
		hex("7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFED"),
		hex("7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEC"), // a = -1 mod p
		dec("37095705934669439343138083508754565189542113879843219016388785533085940283555"),
		hex("1000000000000000000000000000000014DEF9DEA2F79CD65812631A5CF5D3ED"),
		big.NewInt(8),
		dec("15112221349535400772501151409588531511454012693041857206046113283949847762202"),
		dec("46316835694926478169428394003475163141307993866256225615783033603165251855960"),
	)
	mustNamed(err)

	_, err = NewEdwards("test-edwards151",
		big.NewInt(151),
		big.NewInt(1), // c
		big.NewInt(3), // d
		big.NewInt(41),
		big.NewInt(4),
		big.NewInt(136),
		big.NewInt(44),
	)
	mustNamed(err)
}
