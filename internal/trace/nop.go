package trace

// Nop is a Tracer that records nothing.
type Nop struct{}

// NewNop creates a new no-op tracer.
func NewNop() *Nop {
	return &Nop{}
}

// Printf does nothing.
func (t *Nop) Printf(format string, args ...interface{}) {}

// Enabled always returns false.
func (t *Nop) Enabled() bool {
	return false
}

// Close does nothing and returns nil error.
func (t *Nop) Close() error {
	return nil
}

var _ Tracer = (*Nop)(nil)
