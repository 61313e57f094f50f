// Package trace records a writemsg session to a file for diagnosing
// the tool itself. It is separate from the message file sink: trace
// records describe what the CLI did, not what the user asked it to
// print.
package trace

// Tracer records session events.
type Tracer interface {
	// Printf formats and records one trace event.
	Printf(format string, args ...interface{})
	// Enabled returns true if events are actually being recorded.
	Enabled() bool
	// Close flushes pending events and releases the underlying file.
	Close() error
}
