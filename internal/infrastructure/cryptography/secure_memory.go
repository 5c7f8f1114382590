package cryptography

import "runtime"

// SecretBytes owns a key or nonce buffer for the duration of one operation.
// Callers defer Destroy so the buffer is zeroed on every exit path.
type SecretBytes struct {
	b []byte
}

// NewSecretBytes takes ownership of b.
func NewSecretBytes(b []byte) *SecretBytes {
	return &SecretBytes{b: b}
}

// Bytes returns the underlying buffer. It is nil after Destroy.
func (s *SecretBytes) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.b
}

// Len returns the buffer length.
func (s *SecretBytes) Len() int {
	return len(s.Bytes())
}

// Destroy zeroes the buffer and drops it. Safe to call more than once.
func (s *SecretBytes) Destroy() {
	if s == nil {
		return
	}
	zeroBytes(s.b)
	s.b = nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

func zeroAll(buffers ...[]byte) {
	for _, b := range buffers {
		zeroBytes(b)
	}
}
