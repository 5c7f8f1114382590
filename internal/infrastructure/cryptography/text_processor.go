package cryptography

import (
	"fmt"
	"io"
	"path/filepath"
	"unicode/utf8"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-vault/internal/pkg/codec"
	"github.com/MGTheTrain/text-vault/internal/pkg/fileutil"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"

	"github.com/google/uuid"
)

// textProcessor struct that implements the TextProcessor interface
type textProcessor struct {
	blake3   cryptoalg.Blake3Processor
	ed25519  cryptoalg.Ed25519Processor
	chacha20 cryptoalg.ChaCha20Processor
	logger   logger.Logger
}

// NewTextProcessor creates a text processor backed by the BLAKE3, Ed25519 and ChaCha20-Poly1305 processors
func NewTextProcessor(logger logger.Logger) (cryptoalg.TextProcessor, error) {
	blake3Processor, err := NewBlake3Processor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create BLAKE3 processor: %w", err)
	}

	ed25519Processor, err := NewEd25519Processor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ed25519 processor: %w", err)
	}

	chacha20Processor, err := NewChaCha20Processor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 processor: %w", err)
	}

	return &textProcessor{
		blake3:   blake3Processor,
		ed25519:  ed25519Processor,
		chacha20: chacha20Processor,
		logger:   logger,
	}, nil
}

// Sign signs the input with the key at keyPath and returns the base64 signature.
func (p *textProcessor) Sign(input io.Reader, keyPath string, format crypto.SignFormat) (string, error) {
	key, err := LoadSigningKey(keyPath)
	if err != nil {
		return "", err
	}
	defer key.Destroy()

	data, err := readInput(input)
	if err != nil {
		return "", err
	}

	var signature []byte
	switch format {
	case crypto.SignFormatBlake3:
		signature, err = p.blake3.Sign(data, key.Bytes())
	case crypto.SignFormatEd25519:
		signature, err = p.ed25519.Sign(data, key.Bytes())
	default:
		return "", fmt.Errorf("%w: unsupported sign format %s", crypto.ErrFormat, format)
	}
	if err != nil {
		return "", err
	}

	p.logger.Info("Signed ", len(data), " bytes with ", format)
	return codec.Encode(signature), nil
}

// Verify checks the base64 signature of the input against the key at keyPath.
func (p *textProcessor) Verify(input io.Reader, keyPath string, format crypto.SignFormat, signature string) (bool, error) {
	sig, err := codec.Decode(signature)
	if err != nil {
		return false, err
	}

	key, err := LoadVerifyingKey(keyPath)
	if err != nil {
		return false, err
	}
	defer key.Destroy()

	data, err := readInput(input)
	if err != nil {
		return false, err
	}

	var valid bool
	switch format {
	case crypto.SignFormatBlake3:
		valid, err = p.blake3.Verify(data, key.Bytes(), sig)
	case crypto.SignFormatEd25519:
		valid, err = p.ed25519.Verify(data, key.Bytes(), sig)
	default:
		return false, fmt.Errorf("%w: unsupported sign format %s", crypto.ErrFormat, format)
	}
	if err != nil {
		return false, err
	}

	p.logger.Info("Verified ", format, " signature: ", valid)
	return valid, nil
}

// GenerateKeys generates fresh key material for the format.
func (p *textProcessor) GenerateKeys(format crypto.SignFormat) ([][]byte, error) {
	switch format {
	case crypto.SignFormatBlake3:
		key, err := p.blake3.GenerateKey()
		if err != nil {
			return nil, err
		}
		return [][]byte{key}, nil
	case crypto.SignFormatEd25519:
		seed, publicKey, err := p.ed25519.GenerateKeys()
		if err != nil {
			return nil, err
		}
		return [][]byte{seed, publicKey}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported sign format %s", crypto.ErrFormat, format)
	}
}

// SaveKeys generates key material for the format and writes it into dir.
func (p *textProcessor) SaveKeys(format crypto.SignFormat, dir string, unique bool) ([]string, error) {
	var names []string
	switch format {
	case crypto.SignFormatBlake3:
		names = []string{crypto.Blake3KeyFileName}
	case crypto.SignFormatEd25519:
		names = []string{crypto.Ed25519SecretKeyFileName, crypto.Ed25519PublicKeyFileName}
	default:
		return nil, fmt.Errorf("%w: unsupported sign format %s", crypto.ErrFormat, format)
	}

	keys, err := p.GenerateKeys(format)
	if err != nil {
		return nil, err
	}
	defer zeroAll(keys...)

	return p.writeKeyFiles(dir, unique, names, keys)
}

// Encrypt encrypts the input. Without a nonce file a fresh nonce is generated and
// prepended to the ciphertext, so every call uses a new (key, nonce) pair.
func (p *textProcessor) Encrypt(input io.Reader, keyPath, noncePath string, format crypto.CipherFormat) (string, error) {
	if format != crypto.CipherFormatChacha20 {
		return "", fmt.Errorf("%w: unsupported cipher format %s", crypto.ErrFormat, format)
	}

	key, err := LoadSymmetricKey(keyPath)
	if err != nil {
		return "", err
	}
	defer key.Destroy()

	sealed := noncePath == ""
	var nonce *SecretBytes
	if sealed {
		fresh, err := p.chacha20.GenerateNonce()
		if err != nil {
			return "", err
		}
		nonce = NewSecretBytes(fresh)
	} else {
		nonce, err = LoadNonce(noncePath)
		if err != nil {
			return "", err
		}
		p.logger.Warn("Encrypting with nonce file ", noncePath, "; never reuse it with the same key")
	}
	defer nonce.Destroy()

	plaintext, err := readInput(input)
	if err != nil {
		return "", err
	}
	defer zeroBytes(plaintext)

	ciphertext, err := p.chacha20.Encrypt(plaintext, key.Bytes(), nonce.Bytes())
	if err != nil {
		return "", err
	}

	if sealed {
		out := make([]byte, 0, nonce.Len()+len(ciphertext))
		out = append(out, nonce.Bytes()...)
		ciphertext = append(out, ciphertext...)
	}

	p.logger.Info("Encrypted ", len(plaintext), " bytes with ", format)
	return codec.Encode(ciphertext), nil
}

// Decrypt decrypts base64 input. Without a nonce file the first 12 decoded bytes are the nonce.
// Plaintext that is not valid UTF-8 is rejected.
func (p *textProcessor) Decrypt(input io.Reader, keyPath, noncePath string, format crypto.CipherFormat) (string, error) {
	if format != crypto.CipherFormatChacha20 {
		return "", fmt.Errorf("%w: unsupported cipher format %s", crypto.ErrFormat, format)
	}

	key, err := LoadSymmetricKey(keyPath)
	if err != nil {
		return "", err
	}
	defer key.Destroy()

	encoded, err := readInput(input)
	if err != nil {
		return "", err
	}

	ciphertext, err := codec.Decode(string(encoded))
	if err != nil {
		return "", err
	}

	var nonce *SecretBytes
	if noncePath == "" {
		if len(ciphertext) < crypto.Chacha20NonceSize+crypto.Chacha20TagSize {
			return "", fmt.Errorf("%w: sealed ciphertext of %d bytes is too short", crypto.ErrLength, len(ciphertext))
		}
		n := make([]byte, crypto.Chacha20NonceSize)
		copy(n, ciphertext[:crypto.Chacha20NonceSize])
		nonce = NewSecretBytes(n)
		ciphertext = ciphertext[crypto.Chacha20NonceSize:]
	} else {
		nonce, err = LoadNonce(noncePath)
		if err != nil {
			return "", err
		}
	}
	defer nonce.Destroy()

	plaintext, err := p.chacha20.Decrypt(ciphertext, key.Bytes(), nonce.Bytes())
	if err != nil {
		return "", err
	}
	defer zeroBytes(plaintext)

	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: decrypted data is not valid UTF-8", crypto.ErrFormat)
	}

	p.logger.Info("Decrypted ", len(plaintext), " bytes with ", format)
	return string(plaintext), nil
}

// SaveCipherKey generates a ChaCha20-Poly1305 key, and a nonce when withNonce is set, and writes them into dir.
func (p *textProcessor) SaveCipherKey(dir string, withNonce, unique bool) ([]string, error) {
	key, err := p.chacha20.GenerateKey()
	if err != nil {
		return nil, err
	}
	names := []string{crypto.Chacha20KeyFileName}
	material := [][]byte{key}

	if withNonce {
		nonce, err := p.chacha20.GenerateNonce()
		if err != nil {
			zeroBytes(key)
			return nil, err
		}
		names = append(names, crypto.Chacha20NonceFileName)
		material = append(material, nonce)
	}
	defer zeroAll(material...)

	return p.writeKeyFiles(dir, unique, names, material)
}

func (p *textProcessor) writeKeyFiles(dir string, unique bool, names []string, material [][]byte) ([]string, error) {
	prefix := ""
	if unique {
		prefix = uuid.New().String() + "-"
	}

	paths := make([]string, 0, len(names))
	for i, name := range names {
		path := filepath.Join(dir, prefix+name)
		if err := fileutil.WriteSecretFile(path, material[i]); err != nil {
			return nil, err
		}
		p.logger.Info("Saved key file ", path)
		paths = append(paths, path)
	}
	return paths, nil
}

func readInput(input io.Reader) ([]byte, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: no input source", crypto.ErrIO)
	}
	data, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read input: %v", crypto.ErrIO, err)
	}
	return data, nil
}
