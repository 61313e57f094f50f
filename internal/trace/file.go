package trace

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// FileTracer writes trace records asynchronously to a file. Records are
// timestamped with the same layout the formatter uses, so a trace file
// and an output file from the same session line up visually.
type FileTracer struct {
	recChan chan string
	file    *os.File
	waiter  sync.WaitGroup
	mu      sync.Mutex // Protects file handle during close
	dropped atomic.Int64
}

// NewFileTracer creates a tracer that appends to the file at path,
// creating the parent directory if needed.
func NewFileTracer(path string) (*FileTracer, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create trace directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file %s: %w", path, err)
	}

	t := &FileTracer{
		recChan: make(chan string, 100),
		file:    f,
	}

	t.waiter.Add(1)
	go t.writer()

	return t, nil
}

// writer runs in a background goroutine, draining recChan into the file.
func (t *FileTracer) writer() {
	defer t.waiter.Done()
	for rec := range t.recChan {
		t.mu.Lock()
		if t.file != nil {
			_, _ = t.file.WriteString(rec)
		}
		t.mu.Unlock()
	}
}

// Printf formats one record and queues it. When the buffer is full the
// record is dropped and counted; Close reports the total.
func (t *FileTracer) Printf(format string, args ...interface{}) {
	rec := fmt.Sprintf("[%s] %s\n", time.Now().Format(time.ANSIC), fmt.Sprintf(format, args...))

	select {
	case t.recChan <- rec:
	default:
		t.dropped.Add(1)
	}
}

// Enabled returns true for FileTracer.
func (t *FileTracer) Enabled() bool {
	return true
}

// Close drains pending records, notes any drops, and closes the file.
func (t *FileTracer) Close() error {
	if n := t.dropped.Load(); n > 0 {
		// Best effort; the channel may be full again.
		select {
		case t.recChan <- fmt.Sprintf("[%s] %d trace records dropped\n", time.Now().Format(time.ANSIC), n):
		default:
		}
	}

	close(t.recChan)
	t.waiter.Wait()

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.file != nil {
		err := t.file.Close()
		t.file = nil // Prevent further writes
		return err
	}
	return nil
}

var _ Tracer = (*FileTracer)(nil)
