package field

import "github.com/itzmeanjan/secp256k1-go/internal/disalloweq"

// ScalarFieldSize is the size in bytes of a canonical ScalarField
// encoding.
const ScalarFieldSize = 32

// ScalarField is an element of GF(n), n the order of the secp256k1
// generator subgroup. Signatures, secret keys, and ECDSA nonces all
// live in this field. The zero value is the canonical field element 0.
type ScalarField struct {
	disalloweq.DisallowEqual

	e elem
}

// Zero sets fe = 0 and returns fe.
func (fe *ScalarField) Zero() *ScalarField {
	fe.e = elem{}
	return fe
}

// One sets fe = 1 and returns fe.
func (fe *ScalarField) One() *ScalarField {
	fe.e = commonFromUint64s(scalarParams, 0, 0, 0, 1)
	return fe
}

// Set sets fe = a and returns fe.
func (fe *ScalarField) Set(a *ScalarField) *ScalarField {
	fe.e = a.e
	return fe
}

// Add sets fe = a + b and returns fe.
func (fe *ScalarField) Add(a, b *ScalarField) *ScalarField {
	fe.e = commonAdd(scalarParams, a.e, b.e)
	return fe
}

// Subtract sets fe = a - b and returns fe.
func (fe *ScalarField) Subtract(a, b *ScalarField) *ScalarField {
	fe.e = commonSubtract(scalarParams, a.e, b.e)
	return fe
}

// Negate sets fe = -a and returns fe.
func (fe *ScalarField) Negate(a *ScalarField) *ScalarField {
	fe.e = commonNegate(scalarParams, a.e)
	return fe
}

// Multiply sets fe = a * b and returns fe.
func (fe *ScalarField) Multiply(a, b *ScalarField) *ScalarField {
	fe.e = commonMultiply(scalarParams, a.e, b.e)
	return fe
}

// Square sets fe = a * a and returns fe.
func (fe *ScalarField) Square(a *ScalarField) *ScalarField {
	fe.e = commonSquare(scalarParams, a.e)
	return fe
}

// Invert sets fe = a^-1 and returns fe. Invert(0) yields 0.
func (fe *ScalarField) Invert(a *ScalarField) *ScalarField {
	fe.e = commonInvert(scalarParams, a.e)
	return fe
}

// Equal returns 1 iff fe == a, 0 otherwise.
func (fe *ScalarField) Equal(a *ScalarField) uint64 {
	return commonEqual(fe.e, a.e)
}

// IsZero returns 1 iff fe == 0, 0 otherwise.
func (fe *ScalarField) IsZero() uint64 {
	return commonIsZero(fe.e)
}

// SetCanonicalBytes sets fe to the big-endian 32-byte encoding src. If
// src does not encode a value in [0, n), it returns ErrOutOfRange and
// leaves fe unchanged.
func (fe *ScalarField) SetCanonicalBytes(src *[ScalarFieldSize]byte) (*ScalarField, error) {
	e, err := commonFromCanonicalBytes(scalarParams, src)
	if err != nil {
		return nil, err
	}
	fe.e = e
	return fe, nil
}

// SetBytesReducing sets fe to the big-endian 32-byte encoding src,
// reduced modulo n, and reports whether a reduction was necessary. Used
// to turn a digest or an affine x-coordinate into a scalar per SEC 1.
func (fe *ScalarField) SetBytesReducing(src *[ScalarFieldSize]byte) (didReduce bool) {
	raw := rawFromBytes(src)
	didReduce = reduceOnce(&raw, scalarParams.M)
	fe.e = elem{mulMontgomery(scalarParams, raw, scalarParams.R2)}
	return didReduce
}

// Bytes returns the canonical big-endian encoding of fe.
func (fe *ScalarField) Bytes() []byte {
	return commonBytes(scalarParams, fe.e)
}

// String returns the big-endian hex encoding of fe.
func (fe *ScalarField) String() string {
	return commonString(scalarParams, fe.e)
}

// NewScalarField returns a new zero-valued ScalarField.
func NewScalarField() *ScalarField {
	return &ScalarField{}
}

// NewScalarFieldFromUint64s builds a ScalarField constant from four
// big-endian 64-bit words (w3 most significant). Panics if the value is
// not less than n: this constructor is for hardcoded constants, not
// caller-controlled input.
func NewScalarFieldFromUint64s(w3, w2, w1, w0 uint64) *ScalarField {
	return &ScalarField{e: commonFromUint64s(scalarParams, w3, w2, w1, w0)}
}

// NewScalarFieldFromCanonicalBytes builds a ScalarField from its
// canonical big-endian byte encoding.
func NewScalarFieldFromCanonicalBytes(src *[ScalarFieldSize]byte) (*ScalarField, error) {
	return NewScalarField().SetCanonicalBytes(src)
}
