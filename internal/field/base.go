package field

import "github.com/itzmeanjan/secp256k1-go/internal/disalloweq"

// BaseFieldSize is the size in bytes of a canonical BaseField encoding.
const BaseFieldSize = 32

// BaseField is an element of GF(p), p = 2^256 - 2^32 - 977, the
// coordinate field secp256k1 points live in. The zero value is the
// canonical field element 0.
type BaseField struct {
	disalloweq.DisallowEqual

	e elem
}

// Zero sets fe = 0 and returns fe.
func (fe *BaseField) Zero() *BaseField {
	fe.e = elem{}
	return fe
}

// One sets fe = 1 and returns fe.
func (fe *BaseField) One() *BaseField {
	fe.e = commonFromUint64s(baseParams, 0, 0, 0, 1)
	return fe
}

// Set sets fe = a and returns fe.
func (fe *BaseField) Set(a *BaseField) *BaseField {
	fe.e = a.e
	return fe
}

// Add sets fe = a + b and returns fe.
func (fe *BaseField) Add(a, b *BaseField) *BaseField {
	fe.e = commonAdd(baseParams, a.e, b.e)
	return fe
}

// Subtract sets fe = a - b and returns fe.
func (fe *BaseField) Subtract(a, b *BaseField) *BaseField {
	fe.e = commonSubtract(baseParams, a.e, b.e)
	return fe
}

// Negate sets fe = -a and returns fe.
func (fe *BaseField) Negate(a *BaseField) *BaseField {
	fe.e = commonNegate(baseParams, a.e)
	return fe
}

// Multiply sets fe = a * b and returns fe.
func (fe *BaseField) Multiply(a, b *BaseField) *BaseField {
	fe.e = commonMultiply(baseParams, a.e, b.e)
	return fe
}

// Square sets fe = a * a and returns fe.
func (fe *BaseField) Square(a *BaseField) *BaseField {
	fe.e = commonSquare(baseParams, a.e)
	return fe
}

// Invert sets fe = a^-1 and returns fe. Invert(0) yields 0.
func (fe *BaseField) Invert(a *BaseField) *BaseField {
	fe.e = commonInvert(baseParams, a.e)
	return fe
}

// Equal returns 1 iff fe == a, 0 otherwise.
func (fe *BaseField) Equal(a *BaseField) uint64 {
	return commonEqual(fe.e, a.e)
}

// IsZero returns 1 iff fe == 0, 0 otherwise.
func (fe *BaseField) IsZero() uint64 {
	return commonIsZero(fe.e)
}

// SetCanonicalBytes sets fe to the big-endian 32-byte encoding src. If
// src does not encode a value in [0, p), it returns ErrOutOfRange and
// leaves fe unchanged.
func (fe *BaseField) SetCanonicalBytes(src *[BaseFieldSize]byte) (*BaseField, error) {
	e, err := commonFromCanonicalBytes(baseParams, src)
	if err != nil {
		return nil, err
	}
	fe.e = e
	return fe, nil
}

// Bytes returns the canonical big-endian encoding of fe.
func (fe *BaseField) Bytes() []byte {
	return commonBytes(baseParams, fe.e)
}

// String returns the big-endian hex encoding of fe.
func (fe *BaseField) String() string {
	return commonString(baseParams, fe.e)
}

// NewBaseField returns a new zero-valued BaseField.
func NewBaseField() *BaseField {
	return &BaseField{}
}

// NewBaseFieldFromUint64s builds a BaseField constant from four
// big-endian 64-bit words (w3 most significant). Panics if the value is
// not less than p: this constructor is for hardcoded constants, not
// caller-controlled input.
func NewBaseFieldFromUint64s(w3, w2, w1, w0 uint64) *BaseField {
	return &BaseField{e: commonFromUint64s(baseParams, w3, w2, w1, w0)}
}

// NewBaseFieldFromCanonicalBytes builds a BaseField from its canonical
// big-endian byte encoding.
func NewBaseFieldFromCanonicalBytes(src *[BaseFieldSize]byte) (*BaseField, error) {
	return NewBaseField().SetCanonicalBytes(src)
}
