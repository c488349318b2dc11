package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Registry groups the terminal counters exposed on /api/stats.
type Registry struct {
	Checkouts     Counter
	ItemsSold     Counter
	PrintAttempts Counter
	PrintFailures Counter
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Snapshot returns a point-in-time copy of all counter values.
func (r *Registry) Snapshot() map[string]uint64 {
	return map[string]uint64{
		"checkouts":      r.Checkouts.Load(),
		"items_sold":     r.ItemsSold.Load(),
		"print_attempts": r.PrintAttempts.Load(),
		"print_failures": r.PrintFailures.Load(),
	}
}
