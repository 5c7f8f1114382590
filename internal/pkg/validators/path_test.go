//go:build unit
// +build unit

package validators

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sourceSample struct {
	Input string `validate:"inputsource"`
}

type dirSample struct {
	Dir string `validate:"outputdir"`
}

func TestInputSourceValidation(t *testing.T) {
	validate, err := New()
	require.NoError(t, err)

	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "input.txt")
	require.NoError(t, os.WriteFile(existing, []byte("hello"), 0600))

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"stdin sentinel", "-", false},
		{"existing file", existing, false},
		{"missing file", filepath.Join(tmpDir, "missing.txt"), true},
		{"directory", tmpDir, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(sourceSample{Input: tt.input})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOutputDirValidation(t *testing.T) {
	validate, err := New()
	require.NoError(t, err)

	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	assert.NoError(t, validate.Struct(dirSample{Dir: tmpDir}))
	assert.Error(t, validate.Struct(dirSample{Dir: file}))
	assert.Error(t, validate.Struct(dirSample{Dir: filepath.Join(tmpDir, "nope")}))
}
