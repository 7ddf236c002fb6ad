// Package ecdsa implements key generation, signing, and verification for
// plain ECDSA over secp256k1, per SEC 1, Version 2.0, Sections 4.1.3 and
// 4.1.4.
//
// This is deliberately narrower than what a typical secp256k1 signing
// library offers: no ASN.1/DER encoding, no low-S / BIP-0066 malleability
// normalization, no public key recovery, no Schnorr signatures, no ECDH.
// Those are all orthogonal concerns layered on top of plain sign/verify,
// and are out of scope here.
package ecdsa

import (
	"errors"
	"fmt"
	"math/big"

	secp256k1 "github.com/itzmeanjan/secp256k1-go"
)

// groupOrderN is n, the order of the secp256k1 generator subgroup, used
// to bound RNG draws for private keys and nonces.
var groupOrderN, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

const maxNonceResamples = 8

var (
	errEntropySource     = errors.New("secp256k1/ecdsa: entropy source failure")
	errRejectionSampling = errors.New("secp256k1/ecdsa: failed rejection sampling")
)

// PrivateKey is a secp256k1 ECDSA private key: a scalar sk in [1, n).
type PrivateKey struct {
	scalar    *secp256k1.Scalar
	publicKey *PublicKey
}

// Scalar returns a copy of the scalar underlying k.
func (k *PrivateKey) Scalar() *secp256k1.Scalar {
	return secp256k1.NewScalar().Set(k.scalar)
}

// PublicKey returns the public key corresponding to k.
func (k *PrivateKey) PublicKey() *PublicKey {
	return k.publicKey
}

// Bytes returns the canonical big-endian encoding of the private scalar.
func (k *PrivateKey) Bytes() []byte {
	return k.scalar.Bytes()
}

// PublicKey is a secp256k1 ECDSA public key: a point pk = sk * G, never
// the point at infinity.
type PublicKey struct {
	point *secp256k1.Point
}

// Point returns a copy of the point underlying k.
func (k *PublicKey) Point() *secp256k1.Point {
	return secp256k1.NewPointFrom(k.point)
}

// NewPublicKeyFromPoint builds a PublicKey from point, which must not be
// the point at infinity.
func NewPublicKeyFromPoint(point *secp256k1.Point) (*PublicKey, error) {
	if point.IsIdentity() != 0 {
		return nil, errors.New("secp256k1/ecdsa: public key is the point at infinity")
	}
	return &PublicKey{point: secp256k1.NewPointFrom(point)}, nil
}

// Signature is an ECDSA signature: a pair (r, s) of scalars, each in
// [1, n).
type Signature struct {
	R *secp256k1.Scalar
	S *secp256k1.Scalar
}

// GenerateKey draws sk uniformly from [1, n) using rng and computes
// pk = sk * G.
func GenerateKey(rng RNG) (*PrivateKey, error) {
	sk, err := sampleScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("secp256k1/ecdsa: generate key: %w", err)
	}
	return newPrivateKeyFromScalar(sk), nil
}

// NewPrivateKeyFromScalar builds a PrivateKey from an already-sampled
// nonzero scalar. The caller is responsible for sk being secret and
// uniformly distributed.
func NewPrivateKeyFromScalar(sk *secp256k1.Scalar) (*PrivateKey, error) {
	if sk.IsZero() != 0 {
		return nil, errors.New("secp256k1/ecdsa: private key scalar is zero")
	}
	return newPrivateKeyFromScalar(secp256k1.NewScalar().Set(sk)), nil
}

func newPrivateKeyFromScalar(sk *secp256k1.Scalar) *PrivateKey {
	pk := secp256k1.NewIdentityPoint().ScalarBaseMult(sk)
	return &PrivateKey{
		scalar:    sk,
		publicKey: &PublicKey{point: pk},
	}
}

// Sign signs msg's digest under k, following SEC 1, Version 2.0,
// Section 4.1.3:
//
//  1. h = digest(msg), interpreted big-endian and reduced mod n.
//  2. Draw a nonce k_e in [1, n).
//  3. R = k_e * G; r = Rx mod n. If r = 0, go back to 2.
//  4. s = k_e^-1 * (h + r*sk) mod n. If s = 0, go back to 2.
//  5. Return (r, s).
func (k *PrivateKey) Sign(rng RNG, digest Digest, msg []byte) (*Signature, error) {
	h := hashToScalar(digest, msg)

	for i := 0; i < maxNonceResamples; i++ {
		nonce, err := sampleScalar(rng)
		if err != nil {
			return nil, fmt.Errorf("secp256k1/ecdsa: sample nonce: %w", err)
		}

		R := secp256k1.NewIdentityPoint().ScalarBaseMult(nonce)
		rx, _ := R.Affine()

		var rxBytes [secp256k1.ScalarSize]byte
		copy(rxBytes[:], rx.Bytes())

		r := secp256k1.NewScalar()
		r.SetBytesReducing(&rxBytes)
		if r.IsZero() != 0 {
			continue
		}

		nonceInv := secp256k1.NewScalar().Invert(nonce)
		s := secp256k1.NewScalar().Multiply(r, k.scalar)
		s.Add(s, h)
		s.Multiply(s, nonceInv)
		if s.IsZero() != 0 {
			continue
		}

		return &Signature{R: r, S: s}, nil
	}

	return nil, errRejectionSampling
}

// Verify checks sig against msg's digest under k, following SEC 1,
// Version 2.0, Section 4.1.4:
//
//  1. Reject unless r, s are both in [1, n).
//  2. h = digest(msg) mod n.
//  3. w = s^-1 mod n; u1 = h*w mod n; u2 = r*w mod n.
//  4. X = u1*G + u2*pk; reject if X is the identity.
//  5. Accept iff Xx mod n == r.
func (k *PublicKey) Verify(digest Digest, msg []byte, sig *Signature) bool {
	if sig == nil || sig.R == nil || sig.S == nil {
		return false
	}
	if sig.R.IsZero() != 0 || sig.S.IsZero() != 0 {
		return false
	}

	h := hashToScalar(digest, msg)

	w := secp256k1.NewScalar().Invert(sig.S)
	u1 := secp256k1.NewScalar().Multiply(h, w)
	u2 := secp256k1.NewScalar().Multiply(sig.R, w)

	uG := secp256k1.NewIdentityPoint().ScalarBaseMult(u1)
	uPk := secp256k1.NewIdentityPoint().ScalarMult(u2, k.point)
	X := secp256k1.NewIdentityPoint().Add(uG, uPk)
	if X.IsIdentity() != 0 {
		return false
	}

	xx, _ := X.Affine()
	var xxBytes [secp256k1.ScalarSize]byte
	copy(xxBytes[:], xx.Bytes())

	v := secp256k1.NewScalar()
	v.SetBytesReducing(&xxBytes)

	return v.Equal(sig.R) == 1
}

// hashToScalar reduces digest(msg) modulo n, per spec: the digest must
// never be reduced modulo the base field prime, only modulo the scalar
// field order.
func hashToScalar(digest Digest, msg []byte) *secp256k1.Scalar {
	h := digest(msg)

	s := secp256k1.NewScalar()
	s.SetBytesReducing(&h)
	return s
}

// sampleScalar draws a scalar uniformly from [1, n) via rng, rejecting
// and resampling the (astronomically unlikely) zero outcome.
func sampleScalar(rng RNG) (*secp256k1.Scalar, error) {
	for i := 0; i < maxNonceResamples; i++ {
		v, err := rng.UniformBelow(groupOrderN)
		if err != nil {
			return nil, errors.Join(errEntropySource, err)
		}

		var b [secp256k1.ScalarSize]byte
		v.FillBytes(b[:])

		s, err := secp256k1.NewScalarFromCanonicalBytes(&b)
		if err != nil {
			// v < groupOrderN by construction, so this is a contract
			// violation by rng, not an expected outcome.
			return nil, fmt.Errorf("secp256k1/ecdsa: rng returned out-of-range value: %w", err)
		}
		if s.IsZero() == 0 {
			return s, nil
		}
	}

	return nil, errRejectionSampling
}
