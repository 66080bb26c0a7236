// Package feed models page changes as a stream of discrete events consumed
// by a debounced scheduler. Producers vary (a poller diffing snapshots, a
// test feeding synthetic batches); the consumer is always one full
// reconversion pass, which is idempotent by construction.
package feed

import (
	"strings"
	"time"
)

type Op int

const (
	// OpInsert: a new element appeared in the page.
	OpInsert Op = iota
	// OpText: text content changed somewhere in the page.
	OpText
)

type Event struct {
	Op Op
	// Text is the inserted subtree's text content (OpInsert).
	Text string
	// Container is the boundary selector the change occurred under (OpText).
	Container string
}

// Relevant reports whether an event should trigger a reconversion pass:
// inserted content that mentions WPM, or a text change inside one of the
// known stat-container boundaries.
func Relevant(ev Event, boundaries []string) bool {
	switch ev.Op {
	case OpInsert:
		return strings.Contains(ev.Text, "WPM")
	case OpText:
		for _, b := range boundaries {
			if ev.Container == b {
				return true
			}
		}
	}

	return false
}

// Watcher filters a change feed down to relevant events and schedules a
// debounced reconversion pass when any survive.
type Watcher struct {
	boundaries []string
	deb        *Debouncer
}

func NewWatcher(boundaries []string, window time.Duration, maxBuffer int, pass func()) *Watcher {
	return &Watcher{
		boundaries: boundaries,
		deb:        NewDebouncer(window, maxBuffer, func([]Event) { pass() }),
	}
}

// Offer pushes a batch of events into the watcher and returns how many were
// relevant. Irrelevant batches schedule nothing.
func (w *Watcher) Offer(events []Event) int {
	n := 0
	for _, ev := range events {
		if Relevant(ev, w.boundaries) {
			w.deb.Add(ev)
			n++
		}
	}

	return n
}

// Flush forces any pending pass to run now.
func (w *Watcher) Flush() {
	w.deb.Flush()
}
