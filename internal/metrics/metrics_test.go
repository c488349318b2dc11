package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	var c Counter
	c.Inc()
	c.Add(4)
	assert.Equal(t, uint64(5), c.Load())
}

func TestCounterConcurrent(t *testing.T) {
	var c Counter
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Inc()
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(50), c.Load())
}

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()
	r.Checkouts.Inc()
	r.ItemsSold.Add(3)
	r.PrintAttempts.Inc()

	snap := r.Snapshot()

	assert.Equal(t, uint64(1), snap["checkouts"])
	assert.Equal(t, uint64(3), snap["items_sold"])
	assert.Equal(t, uint64(1), snap["print_attempts"])
	assert.Equal(t, uint64(0), snap["print_failures"])
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	assert.GreaterOrEqual(t, timer.Duration().Nanoseconds(), int64(0))
}
