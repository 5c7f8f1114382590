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

// RFC 8032 section 7.1, test 1
const (
	rfc8032Seed      = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	rfc8032PublicKey = "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	rfc8032Signature = "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b"
)

func setupEd25519Processor(t *testing.T) cryptoalg.Ed25519Processor {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	processor, err := NewEd25519Processor(logger)
	require.NoError(t, err)
	return processor
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestEd25519Processor(t *testing.T) {
	processor := setupEd25519Processor(t)

	t.Run("RFC8032Vector", func(t *testing.T) {
		sig, err := processor.Sign([]byte{}, mustHex(t, rfc8032Seed))
		require.NoError(t, err)
		assert.Equal(t, rfc8032Signature, hex.EncodeToString(sig))

		valid, err := processor.Verify([]byte{}, mustHex(t, rfc8032PublicKey), sig)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("GenerateKeysSignVerify", func(t *testing.T) {
		seed, pub, err := processor.GenerateKeys()
		require.NoError(t, err)
		assert.Len(t, seed, crypto.Ed25519SeedSize)
		assert.Len(t, pub, crypto.Ed25519PublicKeySize)

		msg := []byte("This is a test message.")
		sig, err := processor.Sign(msg, seed)
		require.NoError(t, err)
		assert.Len(t, sig, crypto.Ed25519SignatureSize)

		valid, err := processor.Verify(msg, pub, sig)
		require.NoError(t, err)
		assert.True(t, valid)

		valid, err = processor.Verify([]byte("Modified message."), pub, sig)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("Deterministic", func(t *testing.T) {
		seed, _, err := processor.GenerateKeys()
		require.NoError(t, err)

		first, err := processor.Sign([]byte("hello"), seed)
		require.NoError(t, err)
		second, err := processor.Sign([]byte("hello"), seed)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("SingleBitFlipFailsVerification", func(t *testing.T) {
		seed, pub, err := processor.GenerateKeys()
		require.NoError(t, err)

		msg := []byte("asymmetric integrity")
		sig, err := processor.Sign(msg, seed)
		require.NoError(t, err)

		for i := 0; i < len(msg)*8; i += 11 {
			mutated := append([]byte(nil), msg...)
			mutated[i/8] ^= 1 << (i % 8)

			valid, err := processor.Verify(mutated, pub, sig)
			require.NoError(t, err)
			assert.False(t, valid, "bit %d", i)
		}
	})

	t.Run("MalformedLengthsAreFormatErrors", func(t *testing.T) {
		pub := mustHex(t, rfc8032PublicKey)
		sig := mustHex(t, rfc8032Signature)

		_, err := processor.Verify(nil, pub[:31], sig)
		assert.ErrorIs(t, err, crypto.ErrFormat)

		_, err = processor.Verify(nil, pub, sig[:63])
		assert.ErrorIs(t, err, crypto.ErrFormat)

		_, err = processor.Verify(nil, pub, append(sig, 0))
		assert.ErrorIs(t, err, crypto.ErrFormat)
	})

	t.Run("InvalidSeedLength", func(t *testing.T) {
		_, err := processor.Sign([]byte("hello"), make([]byte, 16))
		assert.ErrorIs(t, err, crypto.ErrLength)
	})
}
