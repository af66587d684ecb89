// Package iotest provides IO utilities for tests.
package iotest

import (
	"bytes"
	"io"
	"sync"
	"testing"
)

// Writer builds an io.Writer that writes to the given testing.TB,
// one t.Logf call per line.
//
// Partial lines are held until a newline arrives
// or the test finishes.
func Writer(t testing.TB) io.Writer {
	w := &writer{t: t}
	t.Cleanup(w.flush)
	return w
}

type writer struct {
	t testing.TB

	mu   sync.Mutex
	buff bytes.Buffer // partial line from an earlier write
}

func (w *writer) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	total := len(b)
	for len(b) > 0 {
		idx := bytes.IndexByte(b, '\n')
		if idx < 0 {
			w.buff.Write(b)
			break
		}

		w.buff.Write(b[:idx])
		w.t.Logf("%s", w.buff.Bytes())
		w.buff.Reset()
		b = b[idx+1:]
	}
	return total, nil
}

func (w *writer) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buff.Len() > 0 {
		w.t.Logf("%s", w.buff.Bytes())
		w.buff.Reset()
	}
}
