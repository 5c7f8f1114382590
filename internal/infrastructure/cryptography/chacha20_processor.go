package cryptography

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"

	"golang.org/x/crypto/chacha20poly1305"
)

// chacha20Processor struct that implements the ChaCha20Processor interface
type chacha20Processor struct {
	logger logger.Logger
}

// NewChaCha20Processor creates and returns a new instance of chacha20Processor
func NewChaCha20Processor(logger logger.Logger) (cryptoalg.ChaCha20Processor, error) {
	return &chacha20Processor{
		logger: logger,
	}, nil
}

// GenerateKey generates a random 32-byte key.
func (c *chacha20Processor) GenerateKey() ([]byte, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate ChaCha20-Poly1305 key: %w", err)
	}

	c.logger.Info("Generated ChaCha20-Poly1305 key")
	return key, nil
}

// GenerateNonce generates a random 12-byte nonce.
func (c *chacha20Processor) GenerateNonce() ([]byte, error) {
	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate ChaCha20-Poly1305 nonce: %w", err)
	}
	return nonce, nil
}

// Encrypt seals plaintext and returns ciphertext with the tag appended.
func (c *chacha20Processor) Encrypt(plaintext, key, nonce []byte) ([]byte, error) {
	aead, err := c.newAEAD(key, nonce)
	if err != nil {
		return nil, err
	}

	ciphertext := aead.Seal(nil, nonce, plaintext, nil)

	c.logger.Debug("ChaCha20-Poly1305 encryption succeeded")
	return ciphertext, nil
}

// Decrypt opens ciphertext+tag. Any authentication failure yields ErrCrypto and no plaintext.
func (c *chacha20Processor) Decrypt(ciphertext, key, nonce []byte) ([]byte, error) {
	aead, err := c.newAEAD(key, nonce)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < aead.Overhead() {
		return nil, fmt.Errorf("%w: ciphertext of %d bytes is shorter than the %d-byte tag", crypto.ErrLength, len(ciphertext), aead.Overhead())
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: message authentication failed", crypto.ErrCrypto)
	}

	c.logger.Debug("ChaCha20-Poly1305 decryption succeeded")
	return plaintext, nil
}

func (c *chacha20Processor) newAEAD(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", crypto.ErrLength, chacha20poly1305.KeySize, len(key))
	}
	if len(nonce) != chacha20poly1305.NonceSize {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", crypto.ErrLength, chacha20poly1305.NonceSize, len(nonce))
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create cipher: %v", crypto.ErrCrypto, err)
	}
	return aead, nil
}
