package crypto

import "errors"

var (
	// ErrIO is returned when an input, key or nonce source is missing or unreadable.
	ErrIO = errors.New("io error")

	// ErrFormat is returned for unknown algorithm selectors, malformed base64,
	// malformed signatures or public keys and non-UTF-8 plaintext.
	ErrFormat = errors.New("format error")

	// ErrLength is returned when loaded key material is shorter than the algorithm requires.
	ErrLength = errors.New("length error")

	// ErrCrypto is returned when AEAD authentication fails or a primitive rejects its input.
	ErrCrypto = errors.New("crypto error")
)
