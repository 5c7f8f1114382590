// Package cryptography implements the algorithm processors (BLAKE3, Ed25519, ChaCha20-Poly1305),
// scoped key material loading and the text processor that dispatches between them.
package cryptography
