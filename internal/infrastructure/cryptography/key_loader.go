package cryptography

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
)

// LoadKeyMaterial reads the file at path and keeps its first size bytes.
// A shorter file is a length error. Trailing bytes beyond size (such as the newline
// of a text key file) are dropped without notice.
func LoadKeyMaterial(path string, size int) (*SecretBytes, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read key file %s: %v", crypto.ErrIO, path, err)
	}
	defer zeroBytes(raw)

	if len(raw) < size {
		return nil, fmt.Errorf("%w: %s holds %d bytes, need %d", crypto.ErrLength, path, len(raw), size)
	}

	material := make([]byte, size)
	copy(material, raw[:size])
	return NewSecretBytes(material), nil
}

// LoadSigningKey loads a BLAKE3 key or an Ed25519 seed.
func LoadSigningKey(path string) (*SecretBytes, error) {
	return LoadKeyMaterial(path, crypto.Blake3KeySize)
}

// LoadVerifyingKey loads a BLAKE3 key or an Ed25519 public key.
func LoadVerifyingKey(path string) (*SecretBytes, error) {
	return LoadKeyMaterial(path, crypto.Ed25519PublicKeySize)
}

// LoadSymmetricKey loads a ChaCha20-Poly1305 key.
func LoadSymmetricKey(path string) (*SecretBytes, error) {
	return LoadKeyMaterial(path, crypto.Chacha20KeySize)
}

// LoadNonce loads a ChaCha20-Poly1305 nonce.
func LoadNonce(path string) (*SecretBytes, error) {
	return LoadKeyMaterial(path, crypto.Chacha20NonceSize)
}
