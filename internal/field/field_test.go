package field

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomBaseField(rng *rand.Rand) *BaseField {
	var b [BaseFieldSize]byte
	for {
		for i := range b {
			b[i] = byte(rng.Uint32())
		}
		if fe, err := NewBaseFieldFromCanonicalBytes(&b); err == nil {
			return fe
		}
	}
}

func randomScalarField(rng *rand.Rand) *ScalarField {
	var b [ScalarFieldSize]byte
	for {
		for i := range b {
			b[i] = byte(rng.Uint32())
		}
		if fe, err := NewScalarFieldFromCanonicalBytes(&b); err == nil {
			return fe
		}
	}
}

func TestBaseFieldRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 256; i++ {
		a := randomBaseField(rng)
		var b [BaseFieldSize]byte
		copy(b[:], a.Bytes())

		got, err := NewBaseFieldFromCanonicalBytes(&b)
		require.NoError(t, err)
		require.Equal(t, uint64(1), got.Equal(a))
	}
}

func TestBaseFieldArithmetic(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 256; i++ {
		a, b := randomBaseField(rng), randomBaseField(rng)

		sum := NewBaseField().Add(a, b)
		back := NewBaseField().Subtract(sum, b)
		require.Equal(t, uint64(1), back.Equal(a))

		prod := NewBaseField().Multiply(a, b)
		sq := NewBaseField().Square(a)
		require.Equal(t, uint64(1), sq.Equal(NewBaseField().Multiply(a, a)))
		_ = prod

		neg := NewBaseField().Negate(a)
		zero := NewBaseField().Add(a, neg)
		require.Equal(t, uint64(1), zero.IsZero())
	}
}

func TestBaseFieldInvert(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	one := NewBaseField().One()
	for i := 0; i < 256; i++ {
		a := randomBaseField(rng)
		if a.IsZero() == 1 {
			continue
		}
		inv := NewBaseField().Invert(a)
		got := NewBaseField().Multiply(a, inv)
		require.Equal(t, uint64(1), got.Equal(one))
	}

	var zero BaseField
	require.Equal(t, uint64(1), NewBaseField().Invert(&zero).IsZero())
}

func TestBaseFieldNegateZero(t *testing.T) {
	var zero BaseField
	neg := NewBaseField().Negate(&zero)
	require.Equal(t, uint64(1), neg.IsZero())
	require.Equal(t, uint64(1), neg.Equal(&zero))
}

func TestBaseFieldTwoInverse(t *testing.T) {
	two := NewBaseFieldFromUint64s(0, 0, 0, 2)
	inv := NewBaseField().Invert(two)
	got := NewBaseField().Multiply(inv, two)
	require.Equal(t, uint64(1), got.Equal(NewBaseField().One()))
}

func TestScalarFieldArithmetic(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for i := 0; i < 256; i++ {
		a, b := randomScalarField(rng), randomScalarField(rng)

		sum := NewScalarField().Add(a, b)
		back := NewScalarField().Subtract(sum, b)
		require.Equal(t, uint64(1), back.Equal(a))
	}
}

func TestScalarFieldInvert(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	one := NewScalarField().One()
	for i := 0; i < 64; i++ {
		a := randomScalarField(rng)
		if a.IsZero() == 1 {
			continue
		}
		inv := NewScalarField().Invert(a)
		got := NewScalarField().Multiply(a, inv)
		require.Equal(t, uint64(1), got.Equal(one))
	}
}

func TestScalarFieldTwoInverse(t *testing.T) {
	two := NewScalarFieldFromUint64s(0, 0, 0, 2)
	inv := NewScalarField().Invert(two)
	got := NewScalarField().Multiply(inv, two)
	require.Equal(t, uint64(1), got.Equal(NewScalarField().One()))
}

func TestScalarFieldSetBytesReducing(t *testing.T) {
	// n itself (0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141)
	// must reduce to 0.
	nBytes := [ScalarFieldSize]byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe,
		0xba, 0xae, 0xdc, 0xe6, 0xaf, 0x48, 0xa0, 0x3b,
		0xbf, 0xd2, 0x5e, 0x8c, 0xd0, 0x36, 0x41, 0x41,
	}

	var fe ScalarField
	reduced := fe.SetBytesReducing(&nBytes)
	require.True(t, reduced)
	require.Equal(t, uint64(1), fe.IsZero())
}
