// Package genpass generates random passwords from configurable character classes.
// Ambiguous glyphs (0, O, o, 1, l, I) are left out of every class.
package genpass

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/nbutton23/zxcvbn-go"
)

const (
	upperChars  = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowerChars  = "abcdefghijkmnpqrstuvwxyz"
	numberChars = "23456789"
	symbolChars = "!@#$%^&*_"
)

// ErrInvalidOptions is returned when no character class is enabled or the length
// cannot hold one character of every enabled class.
var ErrInvalidOptions = errors.New("invalid password options")

// Options selects the password length and character classes.
type Options struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Number    bool
	Symbol    bool
}

// AllClasses returns options with every character class enabled.
func AllClasses(length int) Options {
	return Options{
		Length:    length,
		Uppercase: true,
		Lowercase: true,
		Number:    true,
		Symbol:    true,
	}
}

// Generate returns a password holding at least one character of every enabled class.
func Generate(opts Options) (string, error) {
	var classes []string
	if opts.Uppercase {
		classes = append(classes, upperChars)
	}
	if opts.Lowercase {
		classes = append(classes, lowerChars)
	}
	if opts.Number {
		classes = append(classes, numberChars)
	}
	if opts.Symbol {
		classes = append(classes, symbolChars)
	}

	if len(classes) == 0 {
		return "", fmt.Errorf("%w: at least one character class is required", ErrInvalidOptions)
	}
	if opts.Length < len(classes) {
		return "", fmt.Errorf("%w: length %d is shorter than %d enabled classes", ErrInvalidOptions, opts.Length, len(classes))
	}

	password := make([]byte, 0, opts.Length)
	var alphabet string
	for _, class := range classes {
		c, err := pick(class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
		alphabet += class
	}

	for len(password) < opts.Length {
		c, err := pick(alphabet)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := shuffle(password); err != nil {
		return "", err
	}
	return string(password), nil
}

// Strength returns the zxcvbn score of password, from 0 (weakest) to 4.
func Strength(password string) int {
	return zxcvbn.PasswordStrength(password, nil).Score
}

func pick(chars string) (byte, error) {
	n, err := randIndex(len(chars))
	if err != nil {
		return 0, err
	}
	return chars[n], nil
}

// shuffle is a Fisher-Yates shuffle driven by crypto/rand.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randIndex(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func randIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random number: %w", err)
	}
	return int(v.Int64()), nil
}
