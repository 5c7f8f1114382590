package cryptography

import (
	"crypto/rand"
	"fmt"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"

	"github.com/cloudflare/circl/sign/ed25519"
)

// ed25519Processor struct that implements the Ed25519Processor interface
type ed25519Processor struct {
	logger logger.Logger
}

// NewEd25519Processor creates and returns a new instance of ed25519Processor
func NewEd25519Processor(logger logger.Logger) (cryptoalg.Ed25519Processor, error) {
	return &ed25519Processor{
		logger: logger,
	}, nil
}

// GenerateKeys generates a key pair from crypto/rand and returns the seed and the public key.
func (e *ed25519Processor) GenerateKeys() ([]byte, []byte, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate Ed25519 keys: %w", err)
	}
	defer zeroBytes(privateKey)

	seed := make([]byte, crypto.Ed25519SeedSize)
	copy(seed, privateKey.Seed())

	e.logger.Info("Generated Ed25519 key pair")
	return seed, []byte(publicKey), nil
}

// Sign creates a deterministic signature of data with the key derived from seed.
func (e *ed25519Processor) Sign(data, seed []byte) ([]byte, error) {
	if len(seed) != crypto.Ed25519SeedSize {
		return nil, fmt.Errorf("%w: Ed25519 secret key must be %d bytes, got %d", crypto.ErrLength, crypto.Ed25519SeedSize, len(seed))
	}

	privateKey := ed25519.NewKeyFromSeed(seed)
	defer zeroBytes(privateKey)

	signature := ed25519.Sign(privateKey, data)

	e.logger.Debug("Ed25519 signing succeeded")
	return signature, nil
}

// Verify checks signature against data. Malformed key or signature lengths are rejected
// before any curve operation runs.
func (e *ed25519Processor) Verify(data, publicKey, signature []byte) (bool, error) {
	if len(publicKey) != crypto.Ed25519PublicKeySize {
		return false, fmt.Errorf("%w: Ed25519 public key must be %d bytes, got %d", crypto.ErrFormat, crypto.Ed25519PublicKeySize, len(publicKey))
	}
	if len(signature) != crypto.Ed25519SignatureSize {
		return false, fmt.Errorf("%w: Ed25519 signature must be %d bytes, got %d", crypto.ErrFormat, crypto.Ed25519SignatureSize, len(signature))
	}

	valid := ed25519.Verify(ed25519.PublicKey(publicKey), data, signature)

	e.logger.Debug("Ed25519 verification finished")
	return valid, nil
}
