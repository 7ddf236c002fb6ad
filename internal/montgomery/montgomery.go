// Package montgomery implements CIOS-style Montgomery multiplication
// (Algorithm 2 of Koç, Acar & Kaliski 1996, as presented in section 2.3.2
// of https://eprint.iacr.org/2017/1057.pdf) over 8 x 32-bit limbs,
// generic over the modulus.
//
// The engine is intentionally "duck-typed" over a single Params value:
// the base field and the scalar field of secp256k1 are both pseudo-
// Mersenne-ish primes close to 2^256, so one multiplication routine
// plus a per-modulus folding constant covers both, instead of code-
// generating a dedicated multiply per field.
package montgomery

import "github.com/itzmeanjan/secp256k1-go/internal/limb"

// Params pins the constants a Montgomery-form field needs: the modulus
// itself, the Montgomery magic mu (mu*M[0] = -1 mod 2^32), R^2 mod M
// (R = 2^256, used to enter Montgomery form), and a folding constant
// used to collapse the CIOS engine's final carry back into range.
//
// Fold must equal 2^256 mod M, expressed in little-endian 32-bit limbs.
// Because both secp256k1 primes are within a small constant of 2^256,
// Fold always fits in a handful of low limbs, which is what lets a
// carry out of 2^256 be folded back with one multiply-accumulate pass.
type Params struct {
	M    [limb.Width]uint32
	Mu   uint32
	R2   [limb.Width]uint32
	Fold [limb.Width]uint32
}

// Mul computes (a * b) / R mod M, i.e. Montgomery multiplication: if a
// and b are Montgomery-form residues (x*R mod M), the result is also a
// Montgomery-form residue representing (a*b/R)*R = ab mod M in the
// normal sense once converted back. Inputs and output are canonical
// (< M).
func Mul(p *Params, a, b [limb.Width]uint32) [limb.Width]uint32 {
	var c [2 * limb.Width]uint32
	var pc uint32

	for i := 0; i < limb.Width; i++ {
		// Row 1: c[i:i+8] += a[i] * b, carrying the overflow into the
		// untouched limb c[i+8].
		var carry uint32
		for k := 0; k < limb.Width; k++ {
			c[i+k], carry = limb.Mac(c[i+k], a[i], b[k], carry)
		}
		c[i+limb.Width] = carry

		// Row 2: q is chosen so that c[i] + q*M[0] == 0 mod 2^32, which
		// is exactly what Mu was built for; adding q*M across the row
		// cancels c[i] and leaves the rest of the row, plus carry, to
		// fold into c[i+8] together with the previous round's overflow.
		q := p.Mu * c[i]

		var carry2 uint32
		_, carry2 = limb.Mac(c[i], q, p.M[0], 0)
		for k := 1; k < limb.Width; k++ {
			c[i+k], carry2 = limb.Mac(c[i+k], q, p.M[k], carry2)
		}
		c[i+limb.Width], pc = limb.Adc(c[i+limb.Width], pc, carry2)
	}

	var result [limb.Width]uint32
	copy(result[:], c[limb.Width:])

	// Fold the final round's carry back in using the pseudo-Mersenne
	// structure of the modulus (2^256 mod M == Fold). A result that did
	// not carry but still lies in [M, 2^256) gets one subtraction of M.
	var carry uint32
	for k := 0; k < limb.Width; k++ {
		result[k], carry = limb.Mac(result[k], p.Fold[k], pc, carry)
	}
	if !limb.Less(result, p.M) {
		var borrow uint32
		for k := 0; k < limb.Width; k++ {
			result[k], borrow = limb.Sbb(result[k], p.M[k], borrow)
		}
	}

	return result
}

// ToMontgomery converts a radix-2^32 integer a (a < M) into its
// Montgomery-form residue a*R mod M.
func ToMontgomery(p *Params, a [limb.Width]uint32) [limb.Width]uint32 {
	return Mul(p, a, p.R2)
}

// FromMontgomery converts a Montgomery-form residue back to a plain
// radix-2^32 integer.
func FromMontgomery(p *Params, a [limb.Width]uint32) [limb.Width]uint32 {
	var one [limb.Width]uint32
	one[0] = 1
	return Mul(p, a, one)
}

// Add computes (a + b) mod M for canonical Montgomery-form a, b,
// folding the carry-out the same way Mul folds its final round: the
// sum of two values each < M is always < 2M, and 2^256's distance past
// M is exactly Fold, so a sum that carries out of 2^256 folds straight
// to sum - M. A sum that does not carry but is still >= M (for example
// a + (M - a) = M) gets one conditional subtraction of M.
func Add(p *Params, a, b [limb.Width]uint32) [limb.Width]uint32 {
	var c [limb.Width]uint32
	var carry uint32
	for k := 0; k < limb.Width; k++ {
		c[k], carry = limb.Adc(a[k], b[k], carry)
	}

	var carry2 uint32
	for k := 0; k < limb.Width; k++ {
		c[k], carry2 = limb.Mac(c[k], p.Fold[k], carry, carry2)
	}
	if !limb.Less(c, p.M) {
		var borrow uint32
		for k := 0; k < limb.Width; k++ {
			c[k], borrow = limb.Sbb(c[k], p.M[k], borrow)
		}
	}

	return c
}

// Negate computes (M - a) mod M. a = 0 is special-cased to return
// canonical 0 rather than the limb pattern for M itself: a naive sbb
// chain on a zero operand yields M unchanged, which is congruent to
// zero but is not the canonical in-range representative, and would
// break every subsequent canonical-range invariant (including
// limb-wise Equal).
func Negate(p *Params, a [limb.Width]uint32) [limb.Width]uint32 {
	if limb.IsZero(a) {
		return [limb.Width]uint32{}
	}

	var c [limb.Width]uint32
	var borrow uint32
	for k := 0; k < limb.Width; k++ {
		c[k], borrow = limb.Sbb(p.M[k], a[k], borrow)
	}
	return c
}

// Subtract computes (a - b) mod M as a + Negate(b).
func Subtract(p *Params, a, b [limb.Width]uint32) [limb.Width]uint32 {
	return Add(p, a, Negate(p, b))
}

// Invert computes a^-1 mod M via Fermat's little theorem, a^(M-2) mod
// M, using a most-significant-bit-first square-and-multiply ladder over
// the (public) bits of M-2. Invert(0) is 0: raising 0 to the nonzero
// power M-2 is 0 mod M with no special-casing required.
func Invert(p *Params, a [limb.Width]uint32) [limb.Width]uint32 {
	expMinus2 := exponentMinus2(p.M)

	res := montOne(p)
	for i := 255; i >= 0; i-- {
		res = Mul(p, res, res)
		if limb.Bit(expMinus2, i) == 1 {
			res = Mul(p, res, a)
		}
	}
	return res
}

// montOne returns the Montgomery-form representation of 1, i.e. R mod M.
func montOne(p *Params) [limb.Width]uint32 {
	var one [limb.Width]uint32
	one[0] = 1
	return ToMontgomery(p, one)
}

// exponentMinus2 computes M-2 in radix-2^32, for use as a (public)
// exponent in Invert's square-and-multiply ladder.
func exponentMinus2(m [limb.Width]uint32) [limb.Width]uint32 {
	var two [limb.Width]uint32
	two[0] = 2

	var c [limb.Width]uint32
	var borrow uint32
	for k := 0; k < limb.Width; k++ {
		c[k], borrow = limb.Sbb(m[k], two[k], borrow)
	}
	return c
}
