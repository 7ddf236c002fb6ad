package secp256k1

// ScalarMult sets v = s * p using plain LSB-first double-and-add over all
// 256 bits of s, and returns v. This is not constant-time: it branches on
// each bit of s, so s's bits leak through timing. The ecdsa package calls
// it with secret scalars (private keys and signing nonces, via
// ScalarBaseMult) as well as with public ones.
func (v *Point) ScalarMult(s *Scalar, p *Point) *Point {
	assertPointsValid(p)

	res := newPointRcvr().Identity()
	tmp := newPointRcvr().Set(p)

	b := s.Bytes()
	for i := 0; i < 256; i++ {
		byteIdx := 31 - i/8
		bitIdx := uint(i % 8)
		if (b[byteIdx]>>bitIdx)&1 == 1 {
			res.Add(res, tmp)
		}
		tmp.doubleComplete(tmp)
	}

	return v.Set(res)
}

// ScalarBaseMult sets v = s * G, where G is the generator, and returns v.
func (v *Point) ScalarBaseMult(s *Scalar) *Point {
	return v.ScalarMult(s, NewGeneratorPoint())
}
