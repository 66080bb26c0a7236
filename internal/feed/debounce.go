package feed

import (
	"sync"
	"time"
)

const (
	DefaultWindow    = 400 * time.Millisecond
	DefaultMaxBuffer = 256
)

// Debouncer collects events and emits them in one batch when the window
// expires or the buffer fills, coalescing a burst of page mutations into a
// single pass.
type Debouncer struct {
	window time.Duration
	max    int
	flush  func([]Event)

	mu     sync.Mutex
	events []Event
	timer  *time.Timer
}

func NewDebouncer(window time.Duration, maxBuffer int, flush func([]Event)) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	if maxBuffer <= 0 {
		maxBuffer = DefaultMaxBuffer
	}

	return &Debouncer{
		window: window,
		max:    maxBuffer,
		flush:  flush,
	}
}

// Add buffers an event and (re)arms the window timer. A full buffer flushes
// immediately.
func (d *Debouncer) Add(events ...Event) {
	d.mu.Lock()
	d.events = append(d.events, events...)

	if len(d.events) >= d.max {
		batch := d.take()
		d.mu.Unlock()
		d.flush(batch)
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.Flush)
	d.mu.Unlock()
}

// Flush emits whatever is buffered, if anything.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	batch := d.take()
	d.mu.Unlock()

	if len(batch) > 0 {
		d.flush(batch)
	}
}

func (d *Debouncer) take() []Event {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	batch := d.events
	d.events = nil
	return batch
}
