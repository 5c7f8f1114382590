// Package fileutil resolves input sources to readers and writes key files.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
)

// Stdin is the reader used for the "-" input source.
var Stdin io.Reader = os.Stdin

// GetReader opens the input source. "-" selects standard input, whose Close is a no-op.
func GetReader(input string) (io.ReadCloser, error) {
	if input == crypto.StdinInput {
		return io.NopCloser(Stdin), nil
	}

	file, err := os.Open(filepath.Clean(input))
	if err != nil {
		return nil, fmt.Errorf("%w: unable to open input %s: %v", crypto.ErrIO, input, err)
	}
	return file, nil
}

// ReadAll drains the input source into memory and releases its handle.
func ReadAll(input string) (data []byte, err error) {
	reader, err := GetReader(input)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: failed to close input %s: %v", crypto.ErrIO, input, closeErr)
		}
	}()

	data, err = io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read input %s: %v", crypto.ErrIO, input, err)
	}
	return data, nil
}

// WriteSecretFile writes data to path with owner-only permissions.
func WriteSecretFile(path string, data []byte) error {
	if err := os.WriteFile(filepath.Clean(path), data, 0600); err != nil {
		return fmt.Errorf("%w: failed to write %s: %v", crypto.ErrIO, path, err)
	}
	return nil
}
