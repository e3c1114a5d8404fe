package debug

// Goroutine and stack logger, started only when config.Debug is true.
// Confirms the frontend does not leak goroutines (the terminal event pump is the only extra one).

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// StartGoroutineLogger logs goroutine count and stack memory every interval until ctx is done.
func StartGoroutineLogger(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	if logger == nil {
		return
	}
	if interval <= 0 {
		interval = time.Second
	}
	samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
	go tick(ctx, interval, func() {
		metrics.Read(samples)
		var goroutines uint64
		if samples[0].Value.Kind() == metrics.KindUint64 {
			goroutines = samples[0].Value.Uint64()
		}
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		logger.Info("goroutine-stacks",
			slog.Uint64("goroutines", goroutines),
			slog.Uint64("stack_inuse", ms.StackInuse),
			slog.Uint64("stack_sys", ms.StackSys),
		)
	})
}

func tick(ctx context.Context, interval time.Duration, fn func()) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			fn()
		}
	}
}
