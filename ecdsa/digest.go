package ecdsa

import "golang.org/x/crypto/sha3"

// Digest hashes msg to a 32-byte digest. The digest is interpreted as a
// big-endian 256-bit integer and reduced modulo n (never modulo the base
// field prime) before use in Sign or Verify.
type Digest func(msg []byte) [32]byte

// SHA3256 is the canonical Digest: SHA3-256 (not Keccak-256).
func SHA3256(msg []byte) [32]byte {
	return sha3.Sum256(msg)
}
