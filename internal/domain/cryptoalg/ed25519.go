package cryptoalg

// Ed25519Processor handles Ed25519 digital signatures.
type Ed25519Processor interface {
	// GenerateKeys generates a key pair and returns the 32-byte seed and the 32-byte public key.
	GenerateKeys() (seed []byte, publicKey []byte, err error)

	// Sign creates a deterministic 64-byte signature of data with the 32-byte seed.
	Sign(data, seed []byte) ([]byte, error)

	// Verify checks signature against data with the 32-byte public key.
	// Wrong public key or signature lengths are format errors raised before verification.
	Verify(data, publicKey, signature []byte) (bool, error)
}
