package crypto

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/text-vault/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// SignOptions holds the inputs of a sign operation
type SignOptions struct {
	Input  string `validate:"required,inputsource"`
	Key    string `validate:"required"`
	Format string `validate:"required,oneof=blake3 ed25519"`
}

// Validate for validating SignOptions struct
func (o *SignOptions) Validate() error {
	return validateStruct(o)
}

// VerifyOptions holds the inputs of a verify operation. Signature is the base64 text form.
type VerifyOptions struct {
	Input     string `validate:"required,inputsource"`
	Key       string `validate:"required"`
	Signature string `validate:"required"`
	Format    string `validate:"required,oneof=blake3 ed25519"`
}

// Validate for validating VerifyOptions struct
func (o *VerifyOptions) Validate() error {
	return validateStruct(o)
}

// GenerateKeyOptions holds the inputs of a signing key generation
type GenerateKeyOptions struct {
	Format    string `validate:"required,oneof=blake3 ed25519"`
	OutputDir string `validate:"required,outputdir"`
	Unique    bool
}

// Validate for validating GenerateKeyOptions struct
func (o *GenerateKeyOptions) Validate() error {
	return validateStruct(o)
}

// CipherOptions holds the inputs of an encrypt or decrypt operation.
// An empty Nonce selects sealed mode, where the nonce travels with the ciphertext.
type CipherOptions struct {
	Input  string `validate:"required,inputsource"`
	Key    string `validate:"required"`
	Nonce  string
	Format string `validate:"required,oneof=chacha20"`
}

// Validate for validating CipherOptions struct
func (o *CipherOptions) Validate() error {
	return validateStruct(o)
}

// GenerateCipherKeyOptions holds the inputs of a cipher key generation
type GenerateCipherKeyOptions struct {
	OutputDir string `validate:"required,outputdir"`
	WithNonce bool
	Unique    bool
}

// Validate for validating GenerateCipherKeyOptions struct
func (o *GenerateCipherKeyOptions) Validate() error {
	return validateStruct(o)
}

// validateStruct maps path rule failures to ErrIO and everything else to ErrFormat.
func validateStruct(s interface{}) error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	err = validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: validation error: %v", ErrFormat, err)
	}

	sentinel := ErrFormat
	var messages []string
	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "inputsource", "outputdir":
			sentinel = ErrIO
		}
		messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
	}
	return fmt.Errorf("%w: validation failed: %v", sentinel, messages)
}
