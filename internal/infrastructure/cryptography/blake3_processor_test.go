//go:build unit
// +build unit

package cryptography

import (
	"encoding/hex"
	"testing"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-vault/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// BLAKE3 keyed hash of "hello" under an all-zero 32-byte key.
const blake3HelloZeroKey = "e0f68bfec361216ec02fc15736643a70471d96260b0fe6f273a909bb8b6dbd81"

func setupBlake3Processor(t *testing.T) cryptoalg.Blake3Processor {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	processor, err := NewBlake3Processor(logger)
	require.NoError(t, err)
	return processor
}

func TestBlake3Processor(t *testing.T) {
	processor := setupBlake3Processor(t)
	zeroKey := make([]byte, crypto.Blake3KeySize)

	t.Run("GoldenValue", func(t *testing.T) {
		sig, err := processor.Sign([]byte("hello"), zeroKey)
		require.NoError(t, err)
		assert.Equal(t, blake3HelloZeroKey, hex.EncodeToString(sig))
	})

	t.Run("OfficialKeyedVector", func(t *testing.T) {
		sig, err := processor.Sign(nil, []byte("whats the Elvish word for friend"))
		require.NoError(t, err)
		assert.Equal(t, "92b2b75604ed3c761f9d6f62392c8a9227ad0ea3f09573e783f1498a4ed60d26", hex.EncodeToString(sig))
	})

	t.Run("SignVerify", func(t *testing.T) {
		key, err := processor.GenerateKey()
		require.NoError(t, err)

		msg := []byte("This is a test message.")
		sig, err := processor.Sign(msg, key)
		require.NoError(t, err)
		assert.Len(t, sig, crypto.Blake3SignatureSize)

		valid, err := processor.Verify(msg, key, sig)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("SingleBitFlipFailsVerification", func(t *testing.T) {
		msg := []byte("integrity matters")
		sig, err := processor.Sign(msg, zeroKey)
		require.NoError(t, err)

		for i := 0; i < len(msg)*8; i += 7 {
			mutated := append([]byte(nil), msg...)
			mutated[i/8] ^= 1 << (i % 8)

			valid, err := processor.Verify(mutated, zeroKey, sig)
			require.NoError(t, err)
			assert.False(t, valid, "bit %d", i)
		}
	})

	t.Run("WrongKeyFailsVerification", func(t *testing.T) {
		msg := []byte("hello")
		sig, err := processor.Sign(msg, zeroKey)
		require.NoError(t, err)

		otherKey := make([]byte, crypto.Blake3KeySize)
		otherKey[0] = 1
		valid, err := processor.Verify(msg, otherKey, sig)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("MalformedSignatureLength", func(t *testing.T) {
		_, err := processor.Verify([]byte("hello"), zeroKey, make([]byte, 31))
		assert.ErrorIs(t, err, crypto.ErrFormat)
	})

	t.Run("InvalidKeyLength", func(t *testing.T) {
		_, err := processor.Sign([]byte("hello"), []byte("shortkey"))
		assert.ErrorIs(t, err, crypto.ErrLength)
	})

	t.Run("GenerateKey", func(t *testing.T) {
		first, err := processor.GenerateKey()
		require.NoError(t, err)
		second, err := processor.GenerateKey()
		require.NoError(t, err)

		assert.Len(t, first, crypto.Blake3KeySize)
		assert.Len(t, second, crypto.Blake3KeySize)
		assert.NotEqual(t, first, second)
	})
}
