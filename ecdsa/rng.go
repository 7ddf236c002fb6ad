package ecdsa

import (
	csrand "crypto/rand"
	"fmt"
	"io"
	"math/big"

	"gitlab.com/yawning/tuplehash"
)

// RNG draws a cryptographically secure uniform integer in [0, m).
// GenerateKey and Sign both use this to produce secret scalars (private
// keys and nonces, respectively); callers must supply an implementation
// that is at least as secure as crypto/rand.
type RNG interface {
	UniformBelow(m *big.Int) (*big.Int, error)
}

// SystemRNG is the default RNG, backed directly by crypto/rand.
type SystemRNG struct{}

// UniformBelow implements RNG.
func (SystemRNG) UniformBelow(m *big.Int) (*big.Int, error) {
	v, err := csrand.Int(csrand.Reader, m)
	if err != nil {
		return nil, fmt.Errorf("secp256k1/ecdsa: system entropy source: %w", err)
	}
	return v, nil
}

// wantedEntropyBytes is 32, the length of one fresh entropy draw of the
// kind NewDeterministicRNG accepts as extraEntropy. DeterministicRNG does
// not read system entropy itself, and no code in this package uses this
// constant.
const wantedEntropyBytes = 32

// DeterministicRNG hardens nonce generation against a broken or biased
// system RNG, in the spirit of RFC 6979: instead of trusting a single
// entropy draw, it mixes the private key, the message digest, and any
// caller-supplied extra entropy through TupleHash, then treats the
// resulting XOF output as the uniform source for UniformBelow.
//
// This matters because even a small bias (<1 bit) in ECDSA nonces is
// enough to recover a private key from a handful of signatures; see
// https://eprint.iacr.org/2019/1155.pdf.
type DeterministicRNG struct {
	xof io.Reader
}

// NewDeterministicRNG derives a DeterministicRNG for signing under sk over
// msgDigest. If extraEntropy is non-nil it is mixed in as well (e.g. a
// fresh draw from crypto/rand, to retain resistance to a fully
// compromised deterministic seed); pass nil to get RFC 6979-style pure
// determinism.
func NewDeterministicRNG(domainSep string, sk, msgDigest, extraEntropy []byte) *DeterministicRNG {
	// TupleHash's XOF variant is, like sha3.ShakeHash, both an
	// io.Writer (absorb) and an io.Reader (squeeze); unlike naive
	// concatenation it keeps sk/msgDigest/extraEntropy unambiguously
	// separated regardless of their individual lengths.
	h := tuplehash.NewTupleHashXOF256([]byte("secp256k1-ecdsa-nonce:" + domainSep))
	_, _ = h.Write(sk)
	_, _ = h.Write(msgDigest)
	if extraEntropy != nil {
		_, _ = h.Write(extraEntropy)
	}

	return &DeterministicRNG{xof: h}
}

// UniformBelow implements RNG by rejection-sampling bytes drawn from the
// derived TupleHash XOF.
func (d *DeterministicRNG) UniformBelow(m *big.Int) (*big.Int, error) {
	byteLen := (m.BitLen() + 7) / 8
	if byteLen == 0 {
		return big.NewInt(0), nil
	}

	buf := make([]byte, byteLen)
	for {
		if _, err := io.ReadFull(d.xof, buf); err != nil {
			return nil, fmt.Errorf("secp256k1/ecdsa: deterministic xof: %w", err)
		}

		v := new(big.Int).SetBytes(buf)
		if v.Cmp(m) < 0 {
			return v, nil
		}
	}
}
