// Package cryptoalg defines the processor interfaces for the supported algorithms:
// BLAKE3 keyed-hash and Ed25519 signing, ChaCha20-Poly1305 authenticated encryption,
// and the text-level processor that dispatches between them.
package cryptoalg
