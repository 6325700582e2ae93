// Package carousel implements the circular slide rotation used by the hero
// sections. A Rotator tracks the active index over n slides and can advance
// itself on a ticker.
package carousel

import (
	"sync"
	"time"
)

// Rotator cycles an index over a fixed number of slides. It is safe for
// concurrent use.
type Rotator struct {
	mu    sync.Mutex
	count int
	index int

	onChange func(int)
	ticker   *time.Ticker
	done     chan struct{}
}

// New returns a Rotator over count slides starting at index 0.
func New(count int) *Rotator {
	if count < 0 {
		count = 0
	}
	return &Rotator{count: count}
}

// OnChange registers a callback invoked with the new index after every
// advance, manual or ticker-driven.
func (r *Rotator) OnChange(fn func(int)) {
	r.mu.Lock()
	r.onChange = fn
	r.mu.Unlock()
}

// Index returns the active slide index.
func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// Count returns the number of slides.
func (r *Rotator) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// SetCount resizes the rotation, clamping the index into range.
func (r *Rotator) SetCount(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if count < 0 {
		count = 0
	}
	r.count = count
	if count == 0 {
		r.index = 0
	} else if r.index >= count {
		r.index = r.index % count
	}
}

// Next advances to the following slide, wrapping past the last one, and
// returns the new index.
func (r *Rotator) Next() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.advance(1)
}

// Prev moves to the preceding slide, wrapping before the first one, and
// returns the new index.
func (r *Rotator) Prev() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.advance(-1)
}

// advance shifts the index by delta with modular wraparound. Callers must
// hold the lock.
func (r *Rotator) advance(delta int) int {
	if r.count == 0 {
		return 0
	}
	r.index = ((r.index+delta)%r.count + r.count) % r.count
	if r.onChange != nil {
		r.onChange(r.index)
	}
	return r.index
}

// Start auto-advances the rotation every interval until Stop is called.
// Calling Start while running restarts the ticker with the new interval.
func (r *Rotator) Start(interval time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()

	r.ticker = time.NewTicker(interval)
	r.done = make(chan struct{})

	go func(ticker *time.Ticker, done chan struct{}) {
		for {
			select {
			case <-ticker.C:
				r.mu.Lock()
				r.advance(1)
				r.mu.Unlock()
			case <-done:
				return
			}
		}
	}(r.ticker, r.done)
}

// Stop cancels the auto-advance ticker. Safe to call when not running.
func (r *Rotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

func (r *Rotator) stopLocked() {
	if r.ticker != nil {
		r.ticker.Stop()
		r.ticker = nil
	}
	if r.done != nil {
		close(r.done)
		r.done = nil
	}
}
