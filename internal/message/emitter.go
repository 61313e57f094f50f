package message

import (
	"fmt"
	"io"
	"os"
)

// Emitter writes formatted messages to a console writer and, when
// configured, appends the plain form to a file. It holds no file
// handle: each append opens, writes one line, and closes, relying on
// O_APPEND for line-granularity atomicity. The Emitter itself takes no
// locks; callers that share an Emitter across goroutines get whatever
// interleaving the underlying writer gives them.
type Emitter struct {
	out  io.Writer
	opts Options
}

// NewEmitter returns an Emitter writing console output to out.
func NewEmitter(out io.Writer, opts Options) *Emitter {
	return &Emitter{out: out, opts: opts}
}

// Emit formats msg, writes the console form to the Emitter's writer,
// and appends the plain form to the configured OutFile. A file failure
// never propagates: it is reported as one plain error line on the
// console and recorded in Result.SinkErr, and the call still returns
// its normal Result. The returned error is non-nil only for an invalid
// category or a failed console write.
func (e *Emitter) Emit(msg string, cat Category) (Result, error) {
	res, err := Format(msg, cat, e.opts)
	if err != nil {
		return Result{}, err
	}
	if res.Suppressed {
		return res, nil
	}

	if _, err := fmt.Fprintln(e.out, res.Line); err != nil {
		return res, fmt.Errorf("writing console output: %w", err)
	}

	if e.opts.OutFile != "" {
		if err := appendLine(e.opts.OutFile, res.Plain); err != nil {
			res.SinkErr = err
			// Report on the console only; the sink failure is not an
			// error of the call itself.
			fmt.Fprintf(e.out, "[ERROR] failed to write to %s: %v\n", e.opts.OutFile, err)
		}
	}

	return res, nil
}

// appendLine appends one line to the file at path, creating it if
// needed. Open flags and permissions match a log sink: append-only,
// 0640.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return err
	}
	_, werr := f.WriteString(line + "\n")
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}
