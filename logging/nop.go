package logging

// NopLogger discards all log messages. It is the default logger of every
// option set in this module.
type NopLogger struct{}

// Compile-time assertion that NopLogger implements Logger.
var _ Logger = (*NopLogger)(nil)

// NewNop creates a logger that performs no operations.
func NewNop() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message.
func (n *NopLogger) Debug(_ string, _ ...any) {}

// Info discards the message.
func (n *NopLogger) Info(_ string, _ ...any) {}

// Warn discards the message.
func (n *NopLogger) Warn(_ string, _ ...any) {}

// Error discards the message.
func (n *NopLogger) Error(_ string, _ ...any) {}
