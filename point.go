// Package secp256k1 implements the secp256k1 elliptic curve: field and
// scalar arithmetic, the group law in projective coordinates, and scalar
// multiplication. Signatures live in the ecdsa subpackage, which is built
// on top of the types here.
package secp256k1

import (
	"github.com/itzmeanjan/secp256k1-go/internal/disalloweq"
	"github.com/itzmeanjan/secp256k1-go/internal/field"
)

// curveB3 is 3*b, the curve's Weierstrass constant (y^2 = x^3 + 7) scaled
// by 3, a shared subexpression in the Renes-Costello-Batina formulas below.
var curveB3 = field.NewBaseFieldFromUint64s(0, 0, 0, 21)

var (
	// gX is the x-coordinate of the generator.
	gX = field.NewBaseFieldFromUint64s(0x79be667ef9dcbbac, 0x55a06295ce870b07, 0x029bfcdb2dce28d9, 0x59f2815b16f81798)

	// gY is the y-coordinate of the generator.
	gY = field.NewBaseFieldFromUint64s(0x483ada7726a3c465, 0x5da4fbfc0e1108a8, 0xfd17b448a6855419, 0x9c47d08ffb10d4b8)
)

// Point represents a point on the secp256k1 curve in projective coordinates
// (X, Y, Z), where x = X/Z and y = Y/Z. All arguments and receivers are
// allowed to alias. The zero value is NOT valid and may only be used as a
// receiver.
type Point struct {
	disalloweq.DisallowEqual

	x, y, z field.BaseField

	isValid bool
}

// Identity sets v = the point at infinity, and returns v.
func (v *Point) Identity() *Point {
	v.x.Zero()
	v.y.One()
	v.z.Zero()

	v.isValid = true
	return v
}

// Generator sets v = G, the canonical base point, and returns v.
func (v *Point) Generator() *Point {
	v.x.Set(gX)
	v.y.Set(gY)
	v.z.One()

	v.isValid = true
	return v
}

// Add sets v = p + q using the complete (exception-free) addition formula
// of Renes, Costello, and Batina (https://eprint.iacr.org/2015/1060.pdf,
// Algorithm 7, specialized to a=0), and returns v.
func (v *Point) Add(p, q *Point) *Point {
	assertPointsValid(p, q)
	v.addComplete(p, q)
	v.isValid = p.isValid && q.isValid
	return v
}

// Double sets v = p + p, and returns v. This is faster than Add(p, p).
func (v *Point) Double(p *Point) *Point {
	assertPointsValid(p)
	v.doubleComplete(p)
	v.isValid = p.isValid
	return v
}

// Subtract sets v = p - q, and returns v.
func (v *Point) Subtract(p, q *Point) *Point {
	assertPointsValid(p, q)
	return v.Add(p, newPointRcvr().Negate(q))
}

// Negate sets v = -p, and returns v.
func (v *Point) Negate(p *Point) *Point {
	assertPointsValid(p)

	// Affine negation: -(x, y) = (x, -y).
	v.x.Set(&p.x)
	v.y.Negate(&p.y)
	v.z.Set(&p.z)

	v.isValid = p.isValid
	return v
}

// Equal returns 1 iff v and p denote the same curve point, 0 otherwise.
// Comparison cross-multiplies through Z rather than comparing limbs
// directly, since the same affine point has infinitely many projective
// representations.
func (v *Point) Equal(p *Point) uint64 {
	assertPointsValid(v, p)

	x1z2 := field.NewBaseField().Multiply(&v.x, &p.z)
	x2z1 := field.NewBaseField().Multiply(&p.x, &v.z)

	y1z2 := field.NewBaseField().Multiply(&v.y, &p.z)
	y2z1 := field.NewBaseField().Multiply(&p.y, &v.z)

	return x1z2.Equal(x2z1) & y1z2.Equal(y2z1)
}

// IsIdentity returns 1 iff v is the point at infinity, 0 otherwise.
func (v *Point) IsIdentity() uint64 {
	assertPointsValid(v)
	return v.z.IsZero()
}

// Set sets v = p, and returns v.
func (v *Point) Set(p *Point) *Point {
	assertPointsValid(p)

	v.x.Set(&p.x)
	v.y.Set(&p.y)
	v.z.Set(&p.z)
	v.isValid = p.isValid

	return v
}

// Affine returns the affine (x, y) coordinates of v. The point at infinity
// maps to (0, 0), which is not itself a curve point; callers that care
// about the identity case should check IsIdentity first.
func (v *Point) Affine() (x, y *field.BaseField) {
	assertPointsValid(v)

	invZ := field.NewBaseField().Invert(&v.z)

	x = field.NewBaseField().Multiply(&v.x, invZ)
	y = field.NewBaseField().Multiply(&v.y, invZ)
	return
}

// SetAffine sets v to the point with affine coordinates (x, y), and
// returns v. The caller is responsible for x, y denoting a point on the
// curve.
func (v *Point) SetAffine(x, y *field.BaseField) *Point {
	v.x.Set(x)
	v.y.Set(y)
	v.z.One()

	v.isValid = true
	return v
}

// addComplete implements Algorithm 7 of Renes-Costello-Batina, specialized
// to secp256k1's a=0, straight-line, no branches on input.
func (v *Point) addComplete(p, q *Point) {
	x1, y1, z1 := &p.x, &p.y, &p.z
	x2, y2, z2 := &q.x, &q.y, &q.z

	var t0, t1, t2, t3, t4, x3, y3, z3 field.BaseField

	t0.Multiply(x1, x2)
	t1.Multiply(y1, y2)
	t2.Multiply(z1, z2)

	t3.Add(x1, y1)
	t4.Add(x2, y2)
	t3.Multiply(&t3, &t4)

	t4.Add(&t0, &t1)
	t3.Subtract(&t3, &t4)
	t4.Add(y1, z1)

	x3.Add(y2, z2)
	t4.Multiply(&t4, &x3)
	x3.Add(&t1, &t2)

	t4.Subtract(&t4, &x3)
	x3.Add(x1, z1)
	y3.Add(x2, z2)

	x3.Multiply(&x3, &y3)
	y3.Add(&t0, &t2)
	y3.Subtract(&x3, &y3)

	x3.Add(&t0, &t0)
	t0.Add(&x3, &t0)
	t2.Multiply(curveB3, &t2)

	z3.Add(&t1, &t2)
	t1.Subtract(&t1, &t2)
	y3.Multiply(curveB3, &y3)

	x3.Multiply(&t4, &y3)
	t2.Multiply(&t3, &t1)
	x3.Subtract(&t2, &x3)

	y3.Multiply(&y3, &t0)
	t1.Multiply(&t1, &z3)
	y3.Add(&t1, &y3)

	t0.Multiply(&t0, &t3)
	z3.Multiply(&z3, &t4)
	z3.Add(&z3, &t0)

	v.x.Set(&x3)
	v.y.Set(&y3)
	v.z.Set(&z3)
}

// doubleComplete implements Algorithm 9 of Renes-Costello-Batina,
// specialized to secp256k1's a=0.
func (v *Point) doubleComplete(p *Point) {
	x, y, z := &p.x, &p.y, &p.z

	var t0, t1, t2, x3, y3, z3 field.BaseField

	t0.Multiply(y, y)
	z3.Add(&t0, &t0)
	z3.Add(&z3, &z3)

	z3.Add(&z3, &z3)
	t1.Multiply(y, z)
	t2.Multiply(z, z)

	t2.Multiply(curveB3, &t2)
	x3.Multiply(&t2, &z3)
	y3.Add(&t0, &t2)

	z3.Multiply(&t1, &z3)
	t1.Add(&t2, &t2)
	t2.Add(&t1, &t2)

	t0.Subtract(&t0, &t2)
	y3.Multiply(&t0, &y3)
	y3.Add(&x3, &y3)

	t1.Multiply(x, y)
	x3.Multiply(&t0, &t1)
	x3.Add(&x3, &x3)

	v.x.Set(&x3)
	v.y.Set(&y3)
	v.z.Set(&z3)
}

// NewGeneratorPoint returns a new Point set to the canonical generator.
func NewGeneratorPoint() *Point {
	return newPointRcvr().Generator()
}

// NewIdentityPoint returns a new Point set to the identity (point at
// infinity).
func NewIdentityPoint() *Point {
	return newPointRcvr().Identity()
}

// NewPointFrom creates a new Point from another.
func NewPointFrom(p *Point) *Point {
	assertPointsValid(p)
	return newPointRcvr().Set(p)
}

// assertPointsValid ensures that the points have been initialized.
func assertPointsValid(points ...*Point) {
	for _, p := range points {
		if !p.isValid {
			panic("secp256k1: use of uninitialized Point")
		}
	}
}

func newPointRcvr() *Point {
	return &Point{}
}
