package debug

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a bytes.Buffer shared with logger goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitFor(t *testing.T, buf *syncBuffer, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), msg) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("%q not logged; got %q", msg, buf.String())
}

func TestLoggersEmit(t *testing.T) {
	buf := &syncBuffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartGoroutineLogger(ctx, 10*time.Millisecond, logger)
	StartMemLogger(ctx, 10*time.Millisecond, logger)
	waitFor(t, buf, "goroutine-stacks")
	waitFor(t, buf, "memstats")
}

func TestNilLoggerIsNoop(t *testing.T) {
	StartGoroutineLogger(context.Background(), time.Millisecond, nil)
	StartMemLogger(context.Background(), time.Millisecond, nil)
}
