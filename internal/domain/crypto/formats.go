package crypto

import "fmt"

// SignFormat selects the signing scheme. The set is closed: every switch over it
// must handle SignFormatBlake3 and SignFormatEd25519.
type SignFormat int

const (
	// SignFormatBlake3 selects BLAKE3 keyed-hash signing
	SignFormatBlake3 SignFormat = iota
	// SignFormatEd25519 selects Ed25519 signatures
	SignFormatEd25519
)

// ParseSignFormat parses a signing scheme selector.
func ParseSignFormat(s string) (SignFormat, error) {
	switch s {
	case AlgorithmBlake3:
		return SignFormatBlake3, nil
	case AlgorithmEd25519:
		return SignFormatEd25519, nil
	default:
		return 0, fmt.Errorf("%w: invalid sign format %q", ErrFormat, s)
	}
}

func (f SignFormat) String() string {
	switch f {
	case SignFormatBlake3:
		return AlgorithmBlake3
	case SignFormatEd25519:
		return AlgorithmEd25519
	default:
		return fmt.Sprintf("SignFormat(%d)", int(f))
	}
}

// CipherFormat selects the symmetric cipher. ChaCha20-Poly1305 is the only member.
type CipherFormat int

const (
	// CipherFormatChacha20 selects ChaCha20-Poly1305
	CipherFormatChacha20 CipherFormat = iota
)

// ParseCipherFormat parses a cipher selector.
func ParseCipherFormat(s string) (CipherFormat, error) {
	switch s {
	case AlgorithmChacha20:
		return CipherFormatChacha20, nil
	default:
		return 0, fmt.Errorf("%w: invalid cipher format %q", ErrFormat, s)
	}
}

func (f CipherFormat) String() string {
	switch f {
	case CipherFormatChacha20:
		return AlgorithmChacha20
	default:
		return fmt.Sprintf("CipherFormat(%d)", int(f))
	}
}
