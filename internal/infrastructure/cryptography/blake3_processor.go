package cryptography

import (
	"crypto/subtle"
	"fmt"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-vault/internal/pkg/genpass"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"

	"lukechampine.com/blake3"
)

// blake3Processor struct that implements the Blake3Processor interface
type blake3Processor struct {
	logger logger.Logger
}

// NewBlake3Processor creates and returns a new instance of blake3Processor
func NewBlake3Processor(logger logger.Logger) (cryptoalg.Blake3Processor, error) {
	return &blake3Processor{
		logger: logger,
	}, nil
}

// GenerateKey generates a 32-byte key from a random password drawn from all character classes.
func (b *blake3Processor) GenerateKey() ([]byte, error) {
	password, err := genpass.Generate(genpass.AllClasses(crypto.Blake3KeySize))
	if err != nil {
		return nil, fmt.Errorf("failed to generate BLAKE3 key: %w", err)
	}

	b.logger.Info("Generated BLAKE3 key")
	return []byte(password), nil
}

// Sign computes the 32-byte BLAKE3 keyed hash of data.
func (b *blake3Processor) Sign(data, key []byte) ([]byte, error) {
	if len(key) != crypto.Blake3KeySize {
		return nil, fmt.Errorf("%w: BLAKE3 key must be %d bytes, got %d", crypto.ErrLength, crypto.Blake3KeySize, len(key))
	}

	h := blake3.New(crypto.Blake3SignatureSize, key)
	// hash.Hash writes never fail
	_, _ = h.Write(data)
	signature := h.Sum(nil)

	b.logger.Debug("BLAKE3 signing succeeded")
	return signature, nil
}

// Verify recomputes the keyed hash and compares it with signature in constant time.
func (b *blake3Processor) Verify(data, key, signature []byte) (bool, error) {
	if len(signature) != crypto.Blake3SignatureSize {
		return false, fmt.Errorf("%w: BLAKE3 signature must be %d bytes, got %d", crypto.ErrFormat, crypto.Blake3SignatureSize, len(signature))
	}

	expected, err := b.Sign(data, key)
	if err != nil {
		return false, err
	}

	valid := subtle.ConstantTimeCompare(expected, signature) == 1

	b.logger.Debug("BLAKE3 verification finished")
	return valid, nil
}
