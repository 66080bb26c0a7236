package ui

import "sync/atomic"

type Stats struct {
	TotalPasses   atomic.Int64
	TotalRewrites atomic.Int64
	TotalBytes    atomic.Int64
}
