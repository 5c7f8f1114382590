//go:build unit
// +build unit

package fileutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0600))

	reader, err := GetReader(path)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestGetReader_Stdin(t *testing.T) {
	original := Stdin
	t.Cleanup(func() { Stdin = original })
	Stdin = strings.NewReader("from stdin")

	data, err := ReadAll("-")
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(data))
}

func TestGetReader_Missing(t *testing.T) {
	_, err := GetReader(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, crypto.ErrIO)

	_, err = ReadAll(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, crypto.ErrIO)
}

func TestWriteSecretFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.bin")
	require.NoError(t, WriteSecretFile(path, []byte{1, 2, 3}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	err = WriteSecretFile(filepath.Join(t.TempDir(), "missing", "secret.bin"), []byte{1})
	assert.ErrorIs(t, err, crypto.ErrIO)
}
