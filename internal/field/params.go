package field

import "github.com/itzmeanjan/secp256k1-go/internal/montgomery"

// baseParams instantiates the Montgomery engine over the secp256k1
// base field prime p = 2^256 - 2^32 - 977. Because 2^256 = 2^32 + 977
// (mod p), the fold constant is just that identity spelled out in
// limbs: limb 0 gets 977, limb 1 gets the carried 2^32.
var baseParams = &montgomery.Params{
	M: [8]uint32{
		0xfffffc2f, 0xfffffffe, 0xffffffff, 0xffffffff,
		0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff,
	},
	Mu: 0xd2253531,
	R2: [8]uint32{954529, 1954, 1, 0, 0, 0, 0, 0},
	Fold: [8]uint32{
		977, 1, 0, 0, 0, 0, 0, 0,
	},
}

// scalarParams instantiates the Montgomery engine over the secp256k1
// group order n. 2^256 mod n does not collapse to two limbs the way
// the base field does, so the fold constant spans five limbs.
var scalarParams = &montgomery.Params{
	M: [8]uint32{
		3493216577, 3218235020, 2940772411, 3132021990,
		4294967294, 4294967295, 4294967295, 4294967295,
	},
	Mu: 0x5588b13f,
	R2: [8]uint32{
		1742197056, 2305618452, 243071096, 1947506370,
		1540163526, 3868718564, 2177276869, 2640780501,
	},
	Fold: [8]uint32{
		801750719, 1076732275, 1354194884, 1162945305, 1, 0, 0, 0,
	},
}
