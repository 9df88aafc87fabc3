//go:build !tinygo

package hal

import (
	"io"
	"os"
	"sync"
)

// NewLogger returns a line logger writing to stderr.
func NewLogger() Logger {
	return &hostLogger{w: os.Stderr}
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.w, s)
	io.WriteString(l.w, "\n")
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	io.WriteString(l.w, "\n")
}
