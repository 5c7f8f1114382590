// Package crypto defines the core constants, error taxonomy and command models for text signing,
// verification, key generation, encryption and decryption.
package crypto
