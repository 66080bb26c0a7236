package ui

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/tpsify/tpsify/internal/util"
)

// SessionView renders a single live status line for a watch session:
// passes run, elements rewritten, bytes fetched, elapsed time.
type SessionView struct {
	p   *mpb.Progress
	bar *mpb.Bar

	passes   atomic.Int64
	rewrites atomic.Int64
	bytes    atomic.Int64

	start time.Time
	final atomic.Bool
}

func NewSessionView(host string) *SessionView {
	v := &SessionView{
		p: mpb.New(
			mpb.WithWidth(16),
			mpb.WithOutput(os.Stdout),
			mpb.WithRefreshRate(120*time.Millisecond),
		),
		start: time.Now(),
	}

	v.bar = v.p.New(
		0,
		mpb.SpinnerStyle(),

		mpb.PrependDecorators(
			decor.Name("watching "+host+"  "),
		),

		mpb.AppendDecorators(
			decor.Any(func(_ decor.Statistics) string {
				return fmt.Sprintf(" passes: %d", v.passes.Load())
			}),
			decor.Any(func(_ decor.Statistics) string {
				return fmt.Sprintf(" | rewrites: %d", v.rewrites.Load())
			}),
			decor.Any(func(_ decor.Statistics) string {
				return " | " + util.Human(v.bytes.Load())
			}),
			decor.Any(func(_ decor.Statistics) string {
				return fmt.Sprintf(" | %ds", int(time.Since(v.start).Seconds()))
			}),
		),
	)

	return v
}

func (v *SessionView) Pass(rewrites int) {
	if v.final.Load() {
		return
	}

	v.passes.Add(1)
	v.rewrites.Add(int64(rewrites))
	v.bar.Increment()
}

func (v *SessionView) AddBytes(n int64) {
	v.bytes.Add(n)
}

func (v *SessionView) Close() {
	if v.final.Swap(true) {
		return
	}

	// Dynamic total: completes the spinner at its current count.
	v.bar.SetTotal(-1, true)
	v.p.Wait()
}
