package cryptoalg

import (
	"io"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
)

// TextProcessor performs file-based text operations: it drains the input, loads key material
// from paths, dispatches on the selected format and produces textual output.
type TextProcessor interface {
	// Sign signs the input with the key at keyPath and returns the base64 signature.
	Sign(input io.Reader, keyPath string, format crypto.SignFormat) (string, error)

	// Verify checks the base64 signature of the input against the key at keyPath.
	Verify(input io.Reader, keyPath string, format crypto.SignFormat, signature string) (bool, error)

	// GenerateKeys generates fresh key material for the format. BLAKE3 yields [key],
	// Ed25519 yields [seed, public key].
	GenerateKeys(format crypto.SignFormat) ([][]byte, error)

	// SaveKeys generates key material for the format and writes it into dir.
	// It returns the written file paths.
	SaveKeys(format crypto.SignFormat, dir string, unique bool) ([]string, error)

	// Encrypt encrypts the input. An empty noncePath generates a fresh nonce and prepends it.
	Encrypt(input io.Reader, keyPath, noncePath string, format crypto.CipherFormat) (string, error)

	// Decrypt decrypts base64 input. An empty noncePath reads the nonce from the input prefix.
	Decrypt(input io.Reader, keyPath, noncePath string, format crypto.CipherFormat) (string, error)

	// SaveCipherKey generates a cipher key (and optionally a nonce) and writes it into dir.
	SaveCipherKey(dir string, withNonce, unique bool) ([]string, error)
}
