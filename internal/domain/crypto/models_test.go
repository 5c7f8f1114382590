//go:build unit
// +build unit

package crypto

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignOptionsValidation(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("hello"), 0600))

	tests := []struct {
		name    string
		opts    SignOptions
		wantErr error
	}{
		{"stdin blake3", SignOptions{Input: "-", Key: "k", Format: AlgorithmBlake3}, nil},
		{"file ed25519", SignOptions{Input: input, Key: "k", Format: AlgorithmEd25519}, nil},
		{"unknown format", SignOptions{Input: "-", Key: "k", Format: "rsa"}, ErrFormat},
		{"missing key", SignOptions{Input: "-", Format: AlgorithmBlake3}, ErrFormat},
		{"missing input file", SignOptions{Input: filepath.Join(tmpDir, "nope"), Key: "k", Format: AlgorithmBlake3}, ErrIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVerifyOptionsValidation(t *testing.T) {
	valid := VerifyOptions{Input: "-", Key: "k", Signature: "abc", Format: AlgorithmEd25519}
	assert.NoError(t, valid.Validate())

	missingSig := VerifyOptions{Input: "-", Key: "k", Format: AlgorithmEd25519}
	assert.ErrorIs(t, missingSig.Validate(), ErrFormat)
}

func TestGenerateKeyOptionsValidation(t *testing.T) {
	tmpDir := t.TempDir()

	valid := GenerateKeyOptions{Format: AlgorithmBlake3, OutputDir: tmpDir}
	assert.NoError(t, valid.Validate())

	badDir := GenerateKeyOptions{Format: AlgorithmBlake3, OutputDir: filepath.Join(tmpDir, "missing")}
	assert.ErrorIs(t, badDir.Validate(), ErrIO)

	badFormat := GenerateKeyOptions{Format: AlgorithmChacha20, OutputDir: tmpDir}
	assert.ErrorIs(t, badFormat.Validate(), ErrFormat)
}

func TestCipherOptionsValidation(t *testing.T) {
	sealed := CipherOptions{Input: "-", Key: "k", Format: AlgorithmChacha20}
	assert.NoError(t, sealed.Validate())

	withNonce := CipherOptions{Input: "-", Key: "k", Nonce: "n", Format: AlgorithmChacha20}
	assert.NoError(t, withNonce.Validate())

	badFormat := CipherOptions{Input: "-", Key: "k", Format: "aes"}
	assert.ErrorIs(t, badFormat.Validate(), ErrFormat)
}

func TestGenerateCipherKeyOptionsValidation(t *testing.T) {
	opts := GenerateCipherKeyOptions{OutputDir: t.TempDir(), WithNonce: true}
	assert.NoError(t, opts.Validate())

	empty := GenerateCipherKeyOptions{}
	assert.ErrorIs(t, empty.Validate(), ErrFormat)
}
