package cryptoalg

// ChaCha20Processor handles ChaCha20-Poly1305 authenticated encryption.
// A (key, nonce) pair must never encrypt more than one message.
type ChaCha20Processor interface {
	// GenerateKey generates a random 32-byte key.
	GenerateKey() ([]byte, error)

	// GenerateNonce generates a random 12-byte nonce.
	GenerateNonce() ([]byte, error)

	// Encrypt seals plaintext and returns ciphertext with the 16-byte tag appended.
	Encrypt(plaintext, key, nonce []byte) ([]byte, error)

	// Decrypt opens ciphertext+tag. A tag mismatch is a crypto error and yields no plaintext.
	Decrypt(ciphertext, key, nonce []byte) ([]byte, error)
}
