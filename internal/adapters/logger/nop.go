package logger

import "github.com/baditaflorin/go_newsletter_extract/internal/ports"

// NopLogger discards all log output. Handy in tests and benchmarks where the
// async standard logger would only add noise.
type NopLogger struct{}

// NewNopLogger creates a logger that discards everything.
func NewNopLogger() ports.Logger {
	return &NopLogger{}
}

func (n *NopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (n *NopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (n *NopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (n *NopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (n *NopLogger) Close() error                                   { return nil }
