// Package asynchook moves basecodec.Hooks calls off the caller's goroutine.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    InvalidCharEvery: 10, // sample logs: ~every 10th rejected decode
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	c := basecodec.New(basecodec.Options{Hooks: hooks})
//
// Events are dropped, never blocked on, when the queue is full.
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/basecodec"
)

type Hooks struct {
	inner   basecodec.Hooks
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

var _ basecodec.Hooks = (*Hooks)(nil)

func New(inner basecodec.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}
	if inner == nil {
		inner = basecodec.NopHooks{}
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Events after Close are
// dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

// Dropped reports how many events were discarded.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default: // drop
		h.dropped.Add(1)
	}
}

func (h *Hooks) SizeRejected(op basecodec.Op, enc basecodec.Encoding, n, max int) {
	h.try(func() { h.inner.SizeRejected(op, enc, n, max) })
}
func (h *Hooks) InvalidCharacter(enc basecodec.Encoding, c rune, pos int) {
	h.try(func() { h.inner.InvalidCharacter(enc, c, pos) })
}
func (h *Hooks) ConversionFailed(op basecodec.Op, enc basecodec.Encoding, err error) {
	h.try(func() { h.inner.ConversionFailed(op, enc, err) })
}
func (h *Hooks) StoreSelfHeal(k, r string) { h.try(func() { h.inner.StoreSelfHeal(k, r) }) }
