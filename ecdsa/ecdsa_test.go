package ecdsa

import (
	"math/big"
	"testing"

	secp256k1 "github.com/itzmeanjan/secp256k1-go"
	"github.com/stretchr/testify/require"
)

// counterRNG is a deterministic, test-only RNG: each draw returns the next
// value from a fixed script, mod m. It exists so sign/verify tests don't
// depend on crypto/rand for reproducibility.
type counterRNG struct {
	script []int64
	pos    int
}

func (c *counterRNG) UniformBelow(m *big.Int) (*big.Int, error) {
	v := big.NewInt(c.script[c.pos%len(c.script)])
	c.pos++
	return new(big.Int).Mod(v, m), nil
}

func newCounterRNG(seeds ...int64) *counterRNG {
	return &counterRNG{script: seeds}
}

func testKey(t *testing.T) *PrivateKey {
	t.Helper()
	k, err := GenerateKey(newCounterRNG(424242))
	require.NoError(t, err)
	return k
}

func TestGenerateKeyRejectsZero(t *testing.T) {
	// First draw is 0 (rejected), second is nonzero.
	k, err := GenerateKey(newCounterRNG(0, 7))
	require.NoError(t, err)
	require.Equal(t, uint64(0), k.Scalar().IsZero())
}

func TestSignVerifyRoundTrip(t *testing.T) {
	k := testKey(t)
	msg := []byte("the quick brown fox jumps over the lazy dog")

	sig, err := k.Sign(newCounterRNG(99991), SHA3256, msg)
	require.NoError(t, err)

	ok := k.PublicKey().Verify(SHA3256, msg, sig)
	require.True(t, ok)
}

func TestSignRejectsZeroNonce(t *testing.T) {
	k := testKey(t)
	msg := []byte("zero nonce should be skipped, not crash")

	// First nonce draw is 0 (must be rejected and resampled).
	sig, err := k.Sign(newCounterRNG(0, 13371337), SHA3256, msg)
	require.NoError(t, err)
	require.True(t, k.PublicKey().Verify(SHA3256, msg, sig))
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	k := testKey(t)
	msg := []byte("original message")

	sig, err := k.Sign(newCounterRNG(1212121), SHA3256, msg)
	require.NoError(t, err)

	require.False(t, k.PublicKey().Verify(SHA3256, []byte("tampered message"), sig))
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	k := testKey(t)
	msg := []byte("sign me")

	sig, err := k.Sign(newCounterRNG(555555), SHA3256, msg)
	require.NoError(t, err)

	bumpedS := secp256k1.NewScalar().Add(sig.S, secp256k1.NewScalar().One())
	tampered := &Signature{R: sig.R, S: bumpedS}
	require.False(t, k.PublicKey().Verify(SHA3256, msg, tampered))
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	k1 := testKey(t)
	k2, err := GenerateKey(newCounterRNG(909090))
	require.NoError(t, err)

	msg := []byte("signed by k1")
	sig, err := k1.Sign(newCounterRNG(31415), SHA3256, msg)
	require.NoError(t, err)

	require.False(t, k2.PublicKey().Verify(SHA3256, msg, sig))
}

func TestVerifyRejectsOutOfRangeComponents(t *testing.T) {
	k := testKey(t)
	msg := []byte("msg")

	require.False(t, k.PublicKey().Verify(SHA3256, msg, nil))
	require.False(t, k.PublicKey().Verify(SHA3256, msg, &Signature{}))

	// r = 0 and s = 0 lie outside [1, n).
	one := secp256k1.NewScalar().One()
	require.False(t, k.PublicKey().Verify(SHA3256, msg, &Signature{R: secp256k1.NewScalar(), S: one}))
	require.False(t, k.PublicKey().Verify(SHA3256, msg, &Signature{R: one, S: secp256k1.NewScalar()}))
}

func TestDeterministicRNGIsReproducible(t *testing.T) {
	sk := []byte("a 32-byte-ish fake private key..")
	digest := []byte("a fake 32-byte message digest...")

	a := NewDeterministicRNG("test", sk, digest, nil)
	b := NewDeterministicRNG("test", sk, digest, nil)

	n := big.NewInt(1)
	n.Lsh(n, 256)

	va, err := a.UniformBelow(n)
	require.NoError(t, err)
	vb, err := b.UniformBelow(n)
	require.NoError(t, err)

	require.Equal(t, 0, va.Cmp(vb))
}

func TestDeterministicRNGDiffersByDomainSep(t *testing.T) {
	sk := []byte("a 32-byte-ish fake private key..")
	digest := []byte("a fake 32-byte message digest...")

	a := NewDeterministicRNG("domain-a", sk, digest, nil)
	b := NewDeterministicRNG("domain-b", sk, digest, nil)

	n := big.NewInt(1)
	n.Lsh(n, 256)

	va, err := a.UniformBelow(n)
	require.NoError(t, err)
	vb, err := b.UniformBelow(n)
	require.NoError(t, err)

	require.NotEqual(t, 0, va.Cmp(vb))
}

func TestSystemRNGProducesInRangeValues(t *testing.T) {
	var rng SystemRNG
	m := big.NewInt(1000003)

	for i := 0; i < 32; i++ {
		v, err := rng.UniformBelow(m)
		require.NoError(t, err)
		require.True(t, v.Sign() >= 0 && v.Cmp(m) < 0)
	}
}
