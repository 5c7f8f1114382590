package cryptoalg

// Blake3Processor handles BLAKE3 keyed-hash signing.
// The same 32-byte key signs and verifies; this is a symmetric integrity scheme.
type Blake3Processor interface {
	// GenerateKey generates a 32-byte key from a random password using all character classes.
	GenerateKey() ([]byte, error)

	// Sign computes the 32-byte keyed hash of data.
	Sign(data, key []byte) ([]byte, error)

	// Verify recomputes the keyed hash and compares it to signature in constant time.
	// A signature that is not 32 bytes long is a format error.
	Verify(data, key, signature []byte) (bool, error)
}
