package message

import (
	"fmt"
	"strings"
)

// Category is the severity/kind of a message. The set is closed: values
// outside the six constants below are rejected at the boundary by
// ParseCategory and never reach the formatter.
type Category int

const (
	// Debug messages are emitted only when Prefs.DebugEnabled is set.
	Debug Category = iota
	// Verbose messages are emitted only when Prefs.VerboseEnabled is set.
	Verbose
	// Info messages are always emitted and carry no category tag.
	Info
	// Success messages are always emitted.
	Success
	// Warning messages are always emitted. "warn" parses to this value too.
	Warning
	// Error messages are always emitted. Emitting one is purely
	// informational; it does not fail the call or the process.
	Error
)

// String returns the lowercase name of the category.
func (c Category) String() string {
	switch c {
	case Debug:
		return "debug"
	case Verbose:
		return "verbose"
	case Info:
		return "info"
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Tag returns the bracketed prefix for the category, including the
// trailing space, e.g. "[ERROR] ". Info has no tag and returns "".
func (c Category) Tag() string {
	switch c {
	case Debug:
		return "[DEBUG] "
	case Verbose:
		return "[VERBOSE] "
	case Success:
		return "[SUCCESS] "
	case Warning:
		return "[WARNING] "
	case Error:
		return "[ERROR] "
	default:
		return ""
	}
}

// valid reports whether c is one of the six defined categories.
func (c Category) valid() bool {
	return c >= Debug && c <= Error
}

// ParseCategory converts a string to a Category. Matching is
// case-insensitive and "warn" is accepted as an alias for "warning".
// Anything else is an error.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "debug":
		return Debug, nil
	case "verbose":
		return Verbose, nil
	case "info":
		return Info, nil
	case "success":
		return Success, nil
	case "warn", "warning":
		return Warning, nil
	case "error":
		return Error, nil
	default:
		return Info, fmt.Errorf("invalid category %q (expected debug, verbose, info, success, warn, warning, or error)", s)
	}
}
