package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/slashwq/writemsg/internal/config"
	"github.com/slashwq/writemsg/internal/message"
	"github.com/slashwq/writemsg/internal/trace"
)

// App wires the resolved configuration to the message emitter and the
// session tracer for one invocation.
type App struct {
	cfg     *config.Config
	in      io.Reader
	out     io.Writer
	emitter *message.Emitter
	tracer  trace.Tracer
}

// NewApp builds an App for the given configuration. Console output goes
// to out; in is read line by line when no message arguments are given.
func NewApp(cfg *config.Config, in io.Reader, out io.Writer) (*App, error) {
	// Initialize the tracer first so everything after it is recorded.
	var tracer trace.Tracer = trace.NewNop()
	if cfg.Trace {
		tracePath := cfg.TraceFile
		if tracePath == "" {
			tracePath = defaultTracePath()
		}
		ft, err := trace.NewFileTracer(tracePath)
		if err != nil {
			return nil, fmt.Errorf("error creating trace file: %w", err)
		}
		tracer = ft
		updateLatestTraceSymlink(tracePath)
		tracer.Printf("--- writemsg session start --- version: %s, commit: %s", Version, GitCommit)
		tracer.Printf("config: debug=%t verbose=%t no_color=%t out_file=%q", cfg.Debug, cfg.Verbose, cfg.NoColor, cfg.OutFile)
	}

	emitter := message.NewEmitter(out, message.Options{
		Prefs: message.Prefs{
			DebugEnabled:   cfg.Debug,
			VerboseEnabled: cfg.Verbose,
		},
		StripStyling: stripStyling(cfg, out),
		OutFile:      cfg.OutFile,
	})

	return &App{
		cfg:     cfg,
		in:      in,
		out:     out,
		emitter: emitter,
		tracer:  tracer,
	}, nil
}

// Run emits the argument message, or each stdin line when there are no
// arguments. The category is validated before anything is emitted.
func (a *App) Run(categoryStr string, args []string) error {
	cat, err := message.ParseCategory(categoryStr)
	if err != nil {
		a.tracer.Printf("rejected category %q: %v", categoryStr, err)
		return err
	}

	if len(args) > 0 {
		return a.emit(strings.Join(args, " "), cat)
	}

	scanner := bufio.NewScanner(a.in)
	for scanner.Scan() {
		if err := a.emit(scanner.Text(), cat); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	return nil
}

func (a *App) emit(msg string, cat message.Category) error {
	res, err := a.emitter.Emit(msg, cat)
	if err != nil {
		a.tracer.Printf("emit failed: %v", err)
		return err
	}
	switch {
	case res.Suppressed:
		a.tracer.Printf("suppressed %s message", cat)
	case res.SinkErr != nil:
		a.tracer.Printf("emitted %s message, sink failure: %v", cat, res.SinkErr)
	default:
		a.tracer.Printf("emitted %s message", cat)
	}
	return nil
}

// Close flushes and closes the session tracer.
func (a *App) Close() error {
	a.tracer.Printf("--- writemsg session end ---")
	return a.tracer.Close()
}

// stripStyling decides whether console output gets ANSI styling. Color
// is dropped when disabled explicitly, when NO_COLOR is set, or when
// stdout is not a terminal.
func stripStyling(cfg *config.Config, out io.Writer) bool {
	if cfg.NoColor {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	if f, ok := out.(*os.File); ok {
		return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// defaultTracePath returns the timestamped trace file path under the
// user cache directory.
func defaultTracePath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not get user cache directory: %v. Tracing to current dir.\n", err)
		cacheDir = "."
	}
	traceDir := filepath.Join(cacheDir, "writemsg", "logs")
	traceFile := fmt.Sprintf("writemsg-%s.log", time.Now().Format("20060102-150405"))
	return filepath.Join(traceDir, traceFile)
}

// updateLatestTraceSymlink attempts to create or update the latest.log symlink.
func updateLatestTraceSymlink(tracePath string) {
	if runtime.GOOS == "windows" {
		// Symlinks are tricky on Windows, skip for now.
		return
	}
	traceDir := filepath.Dir(tracePath)
	linkPath := filepath.Join(traceDir, "latest.log")

	_ = os.Remove(linkPath) // Ignore error if it doesn't exist

	if err := os.Symlink(filepath.Base(tracePath), linkPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to create/update latest.log symlink: %v\n", err)
	}
}
