package jobs

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the reading tick period
const DefaultInterval = time.Second

// Ticker calls fn once per interval on its own goroutine until stopped.
// The first call happens one interval after Start.
type Ticker struct {
	fn       func(ctx context.Context)
	interval time.Duration
	stopCh   chan struct{}
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// NewTicker creates a stopped ticker
func NewTicker(interval time.Duration, fn func(ctx context.Context)) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Ticker{fn: fn, interval: interval}
}

// Start begins ticking. Calling Start on a running ticker does nothing.
func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}
	t.running = true
	t.stopCh = make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel

	t.wg.Add(1)
	go t.run(ctx, t.stopCh)
}

// Stop halts the ticker and waits for an in-flight call to return.
// No call to fn begins after Stop returns. The context passed to an
// in-flight call stays live until that call returns.
func (t *Ticker) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	close(t.stopCh)
	cancel := t.cancel
	t.mu.Unlock()

	t.wg.Wait()
	cancel()
}

func (t *Ticker) run(ctx context.Context, stopCh <-chan struct{}) {
	defer t.wg.Done()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Stop may race the tick; prefer stopping
			select {
			case <-stopCh:
				return
			default:
			}
			t.fn(ctx)
		case <-stopCh:
			return
		}
	}
}

// RunOnce calls fn synchronously (for testing or manual trigger)
func (t *Ticker) RunOnce(ctx context.Context) {
	t.fn(ctx)
}

// IsRunning returns whether the ticker is running
func (t *Ticker) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}
