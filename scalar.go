package secp256k1

import (
	"github.com/itzmeanjan/secp256k1-go/internal/disalloweq"
	"github.com/itzmeanjan/secp256k1-go/internal/field"
)

// ScalarSize is the size in bytes of a canonical Scalar encoding.
const ScalarSize = field.ScalarFieldSize

// Scalar is an element of GF(n), n the order of the generator subgroup.
// Private keys, nonces, and signature components are all Scalars. The zero
// value is the canonical scalar 0 and can be used both as a receiver and
// as an operand; NewScalar returns exactly that value.
type Scalar struct {
	disalloweq.DisallowEqual

	fe field.ScalarField
}

// Zero sets s = 0, and returns s.
func (s *Scalar) Zero() *Scalar {
	s.fe.Zero()
	return s
}

// One sets s = 1, and returns s.
func (s *Scalar) One() *Scalar {
	s.fe.One()
	return s
}

// Set sets s = a, and returns s.
func (s *Scalar) Set(a *Scalar) *Scalar {
	s.fe.Set(&a.fe)
	return s
}

// Add sets s = a + b, and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.fe.Add(&a.fe, &b.fe)
	return s
}

// Subtract sets s = a - b, and returns s.
func (s *Scalar) Subtract(a, b *Scalar) *Scalar {
	s.fe.Subtract(&a.fe, &b.fe)
	return s
}

// Negate sets s = -a, and returns s.
func (s *Scalar) Negate(a *Scalar) *Scalar {
	s.fe.Negate(&a.fe)
	return s
}

// Multiply sets s = a * b, and returns s.
func (s *Scalar) Multiply(a, b *Scalar) *Scalar {
	s.fe.Multiply(&a.fe, &b.fe)
	return s
}

// Invert sets s = a^-1, and returns s. Invert(0) yields 0.
func (s *Scalar) Invert(a *Scalar) *Scalar {
	s.fe.Invert(&a.fe)
	return s
}

// Equal returns 1 iff s == a, 0 otherwise.
func (s *Scalar) Equal(a *Scalar) uint64 {
	return s.fe.Equal(&a.fe)
}

// IsZero returns 1 iff s == 0, 0 otherwise.
func (s *Scalar) IsZero() uint64 {
	return s.fe.IsZero()
}

// SetCanonicalBytes sets s to the big-endian 32-byte encoding src. If src
// does not encode a value in [0, n), it returns ErrOutOfRange and leaves s
// unchanged.
func (s *Scalar) SetCanonicalBytes(src *[ScalarSize]byte) (*Scalar, error) {
	if _, err := s.fe.SetCanonicalBytes(src); err != nil {
		return nil, err
	}
	return s, nil
}

// SetBytesReducing sets s to the big-endian 32-byte encoding src, reduced
// modulo n, and reports whether a reduction was necessary.
func (s *Scalar) SetBytesReducing(src *[ScalarSize]byte) (didReduce bool) {
	return s.fe.SetBytesReducing(src)
}

// Bytes returns the canonical big-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	return s.fe.Bytes()
}

// String returns the big-endian hex encoding of s.
func (s *Scalar) String() string {
	return s.fe.String()
}

// NewScalar returns a new zero-valued Scalar.
func NewScalar() *Scalar {
	return &Scalar{}
}

// NewScalarFromCanonicalBytes builds a Scalar from its canonical big-endian
// byte encoding.
func NewScalarFromCanonicalBytes(src *[ScalarSize]byte) (*Scalar, error) {
	return NewScalar().SetCanonicalBytes(src)
}
