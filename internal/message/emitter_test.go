package message

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmitWritesConsoleLine(t *testing.T) {
	var out bytes.Buffer
	e := NewEmitter(&out, Options{StripStyling: true, Now: fixedClock()})

	res, err := e.Emit("Hello world!", Info)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	want := "[Tue Mar  5 14:30:09 2024] Hello world!\n"
	if out.String() != want {
		t.Errorf("console output = %q, want %q", out.String(), want)
	}
	if res.SinkErr != nil {
		t.Errorf("unexpected sink error: %v", res.SinkErr)
	}
}

func TestEmitAppendsOneLinePerCall(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "messages.log")

	var out bytes.Buffer
	e := NewEmitter(&out, Options{OutFile: outFile, Now: fixedClock()})

	if _, err := e.Emit("first", Success); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if _, err := e.Emit("second", Error); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("reading out file: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("out file has %d lines, want 2: %q", len(lines), string(data))
	}
	if lines[0] != "[Tue Mar  5 14:30:09 2024] [SUCCESS] first" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != "[Tue Mar  5 14:30:09 2024] [ERROR] second" {
		t.Errorf("second line = %q", lines[1])
	}
	// File form is plain even though console styling was on.
	if ansiSeq.Match(data) {
		t.Errorf("out file contains ANSI sequences: %q", string(data))
	}
}

func TestEmitSuppressedProducesNothing(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "messages.log")

	var out bytes.Buffer
	e := NewEmitter(&out, Options{OutFile: outFile, Now: fixedClock()})

	res, err := e.Emit("hidden", Debug)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if !res.Suppressed {
		t.Error("debug message was not suppressed")
	}
	if out.Len() != 0 {
		t.Errorf("suppressed emit wrote console output: %q", out.String())
	}
	if _, err := os.Stat(outFile); !os.IsNotExist(err) {
		t.Errorf("suppressed emit created the out file (stat err: %v)", err)
	}
}

func TestEmitSinkFailureDegrades(t *testing.T) {
	// Parent directory does not exist, so the append must fail.
	outFile := filepath.Join(t.TempDir(), "missing", "messages.log")

	var out bytes.Buffer
	e := NewEmitter(&out, Options{StripStyling: true, OutFile: outFile, Now: fixedClock()})

	res, err := e.Emit("Build complete", Success)
	if err != nil {
		t.Fatalf("Emit returned error for a sink failure: %v", err)
	}
	if res.SinkErr == nil {
		t.Fatal("SinkErr is nil, want the append failure")
	}

	want := "[Tue Mar  5 14:30:09 2024] [SUCCESS] Build complete"
	if res.Line != want {
		t.Errorf("Line = %q, want %q", res.Line, want)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("console has %d lines, want message + failure report: %q", len(lines), out.String())
	}
	if lines[0] != want {
		t.Errorf("console line = %q, want %q", lines[0], want)
	}
	if !strings.HasPrefix(lines[1], "[ERROR] failed to write to ") {
		t.Errorf("failure report = %q", lines[1])
	}
}

func TestEmitInvalidCategoryNoOutput(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "messages.log")

	var out bytes.Buffer
	e := NewEmitter(&out, Options{OutFile: outFile, Now: fixedClock()})

	if _, err := e.Emit("x", Category(-1)); err == nil {
		t.Fatal("Emit with invalid category succeeded, want error")
	}
	if out.Len() != 0 {
		t.Errorf("invalid category wrote console output: %q", out.String())
	}
	if _, err := os.Stat(outFile); !os.IsNotExist(err) {
		t.Errorf("invalid category created the out file (stat err: %v)", err)
	}
}
