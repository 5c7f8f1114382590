package crypto

// AlgorithmBlake3 represents the BLAKE3 keyed-hash signing scheme
const AlgorithmBlake3 = "blake3"

// AlgorithmEd25519 represents the Ed25519 signature scheme
const AlgorithmEd25519 = "ed25519"

// AlgorithmChacha20 represents the ChaCha20-Poly1305 AEAD cipher
const AlgorithmChacha20 = "chacha20"

// Blake3KeySize is the BLAKE3 keyed-hash key size in bytes
const Blake3KeySize = 32

// Blake3SignatureSize is the BLAKE3 keyed-hash digest size in bytes
const Blake3SignatureSize = 32

// Ed25519SeedSize is the Ed25519 secret key (seed) size in bytes
const Ed25519SeedSize = 32

// Ed25519PublicKeySize is the Ed25519 public key size in bytes
const Ed25519PublicKeySize = 32

// Ed25519SignatureSize is the Ed25519 signature size in bytes
const Ed25519SignatureSize = 64

// Chacha20KeySize is the ChaCha20-Poly1305 key size in bytes
const Chacha20KeySize = 32

// Chacha20NonceSize is the ChaCha20-Poly1305 nonce size in bytes
const Chacha20NonceSize = 12

// StdinInput is the input source sentinel selecting standard input
const StdinInput = "-"

// Blake3KeyFileName is the default file name of a generated BLAKE3 key
const Blake3KeyFileName = "blake3.txt"

// Ed25519SecretKeyFileName is the default file name of a generated Ed25519 secret key
const Ed25519SecretKeyFileName = "ed25519.sk"

// Ed25519PublicKeyFileName is the default file name of a generated Ed25519 public key
const Ed25519PublicKeyFileName = "ed25519.pk"

// Chacha20KeyFileName is the default file name of a generated ChaCha20-Poly1305 key
const Chacha20KeyFileName = "chacha20.key"

// Chacha20NonceFileName is the default file name of a generated ChaCha20-Poly1305 nonce
const Chacha20NonceFileName = "chacha20.nonce"

// Chacha20TagSize is the Poly1305 authentication tag size in bytes
const Chacha20TagSize = 16
