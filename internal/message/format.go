// Package message formats timestamped, optionally colorized console
// messages. Each call is independent: the formatter keeps no state
// beyond the explicit preferences passed in.
package message

import (
	"fmt"
	"time"
)

// TimestampLayout is the fixed layout for the line timestamp
// ("Mon Jan _2 15:04:05 2006"). The formatted value is bracketed and
// followed by a single space.
const TimestampLayout = time.ANSIC

// Prefs gates the Debug and Verbose categories. The hosting program
// resolves these once (flags, env, config) and passes them in; the
// formatter never reads process-wide state.
type Prefs struct {
	DebugEnabled   bool
	VerboseEnabled bool
}

// Options holds the per-call knobs for Format and the configuration for
// an Emitter.
type Options struct {
	Prefs Prefs

	// StripStyling suppresses ANSI sequences in the console form. The
	// file form is always plain regardless.
	StripStyling bool

	// OutFile, when non-empty, is the path the Emitter appends the
	// plain form to, one line per call.
	OutFile string

	// Now supplies the timestamp; nil means time.Now.
	Now func() time.Time
}

// Result is the outcome of formatting one message. Both forms derive
// from the same (timestamp, category, message) triple.
type Result struct {
	// Line is the console form: styled, or equal to Plain when styling
	// is stripped. Empty when Suppressed.
	Line string

	// Plain is the unstyled form, "[timestamp] [TAG] message". This is
	// what goes to the file sink. Empty when Suppressed.
	Plain string

	// Suppressed is true when gating (Debug/Verbose with the matching
	// preference off) produced no output.
	Suppressed bool

	// SinkErr records a file-append failure. Set only by Emitter.Emit;
	// always non-fatal.
	SinkErr error
}

// Format produces the console and plain forms for one message. It
// performs no I/O. The returned error is non-nil only for a category
// outside the defined set, in which case nothing is formatted.
func Format(msg string, cat Category, opts Options) (Result, error) {
	if !cat.valid() {
		return Result{}, fmt.Errorf("invalid category %d", int(cat))
	}

	switch cat {
	case Debug:
		if !opts.Prefs.DebugEnabled {
			return Result{Suppressed: true}, nil
		}
	case Verbose:
		if !opts.Prefs.VerboseEnabled {
			return Result{Suppressed: true}, nil
		}
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	plain := fmt.Sprintf("[%s] %s%s", now().Format(TimestampLayout), cat.Tag(), msg)

	res := Result{Plain: plain}
	if opts.StripStyling {
		res.Line = plain
	} else {
		res.Line = render(cat, plain)
	}
	return res, nil
}
