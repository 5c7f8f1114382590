// Package codec converts binary signatures and ciphertexts to and from their textual
// form: URL-safe base64 without padding (RFC 4648 §5).
package codec

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
)

// Encode encodes bytes to URL-safe base64 without padding.
func Encode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// Decode trims surrounding whitespace and decodes URL-safe base64 without padding.
// Invalid input yields ErrFormat and no data.
func Decode(s string) ([]byte, error) {
	data, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", crypto.ErrFormat, err)
	}
	return data, nil
}
