// Package logger provides the process-wide logger used by processors and commands.
// Console output goes to stderr so that stdout stays reserved for signatures,
// ciphertexts and plaintexts.
package logger

// Logger defines the logging interface
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
