// Package field implements the two Montgomery-form field element types
// secp256k1 needs: BaseField (mod p, the curve's coordinate field) and
// ScalarField (mod n, the order of the generator subgroup that
// signatures live in). Both share one arithmetic core (common.go) and
// differ only in which montgomery.Params they are built on.
package field

import (
	"encoding/hex"
	"errors"

	"github.com/itzmeanjan/secp256k1-go/internal/limb"
	"github.com/itzmeanjan/secp256k1-go/internal/montgomery"
)

// ErrOutOfRange is returned when decoding bytes that encode an integer
// outside [0, m) for the relevant modulus.
var ErrOutOfRange = errors.New("field: value out of range")

// elem is the shared Montgomery-form representation backing both
// BaseField and ScalarField. It is never exported directly; each public
// type wraps one and nails down which Params it is interpreted against,
// so the two fields can never be silently mixed.
type elem struct {
	limbs [limb.Width]uint32
}

func commonAdd(p *montgomery.Params, a, b elem) elem {
	return elem{montgomery.Add(p, a.limbs, b.limbs)}
}

func commonSubtract(p *montgomery.Params, a, b elem) elem {
	return elem{montgomery.Subtract(p, a.limbs, b.limbs)}
}

func commonNegate(p *montgomery.Params, a elem) elem {
	return elem{montgomery.Negate(p, a.limbs)}
}

func commonMultiply(p *montgomery.Params, a, b elem) elem {
	return elem{montgomery.Mul(p, a.limbs, b.limbs)}
}

func commonSquare(p *montgomery.Params, a elem) elem {
	return elem{montgomery.Mul(p, a.limbs, a.limbs)}
}

func commonInvert(p *montgomery.Params, a elem) elem {
	return elem{montgomery.Invert(p, a.limbs)}
}

func commonEqual(a, b elem) uint64 {
	if limb.Equal(a.limbs, b.limbs) {
		return 1
	}
	return 0
}

func commonIsZero(a elem) uint64 {
	if limb.IsZero(a.limbs) {
		return 1
	}
	return 0
}

func commonFromCanonicalBytes(p *montgomery.Params, src *[32]byte) (elem, error) {
	raw := limb.FromBytes(src)
	if !limb.Less(raw, p.M) {
		return elem{}, ErrOutOfRange
	}
	return elem{montgomery.ToMontgomery(p, raw)}, nil
}

func commonBytes(p *montgomery.Params, a elem) []byte {
	raw := montgomery.FromMontgomery(p, a.limbs)
	b := limb.ToBytes(raw)
	return b[:]
}

func commonFromUint64s(p *montgomery.Params, w3, w2, w1, w0 uint64) elem {
	raw := limb.FromUint64s(w3, w2, w1, w0)
	if !limb.Less(raw, p.M) {
		panic("field: constant out of range")
	}
	return elem{montgomery.ToMontgomery(p, raw)}
}

func commonString(p *montgomery.Params, a elem) string {
	return hex.EncodeToString(commonBytes(p, a))
}

// rawFromBytes decodes a 32-byte big-endian encoding into radix-2^32
// limbs without any range check; callers that need a canonical field
// element must reduce (see reduceOnce) before entering Montgomery form.
func rawFromBytes(src *[32]byte) [limb.Width]uint32 {
	return limb.FromBytes(src)
}

// reduceOnce subtracts m from raw in place if raw >= m, and reports
// whether it did. A single conditional subtraction suffices because
// SetBytesReducing's caller-supplied input is always already < 2^256,
// i.e. less than 2m for either secp256k1 modulus.
func reduceOnce(raw *[limb.Width]uint32, m [limb.Width]uint32) bool {
	if limb.Less(*raw, m) {
		return false
	}

	var diff [limb.Width]uint32
	var borrow uint32
	for k := 0; k < limb.Width; k++ {
		diff[k], borrow = limb.Sbb(raw[k], m[k], borrow)
	}
	*raw = diff
	return true
}

// mulMontgomery is montgomery.Mul exposed for the rare case (scalar
// digest reduction) where a field type needs to enter Montgomery form
// from limbs it has already reduced itself, rather than going through
// commonFromCanonicalBytes.
func mulMontgomery(p *montgomery.Params, a, b [limb.Width]uint32) [limb.Width]uint32 {
	return montgomery.Mul(p, a, b)
}
