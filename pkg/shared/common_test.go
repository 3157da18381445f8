package shared

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForEveryStringWithBoundedGoroutines(t *testing.T) {
	values := []string{"a", "b", "c", "d", "e", "f", "g"}
	out := make([]string, len(values))

	var running, peak int32
	ForEveryStringWithBoundedGoroutines(2, values, func(i int, value string) {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		out[i] = value
		atomic.AddInt32(&running, -1)
	})

	assert.Equal(t, values, out)
	assert.LessOrEqual(t, peak, int32(2))
}

func TestForEveryStringWithBoundedGoroutinesZeroLimit(t *testing.T) {
	var calls int32
	ForEveryStringWithBoundedGoroutines(0, []string{"x", "y"}, func(int, string) {
		atomic.AddInt32(&calls, 1)
	})
	assert.Equal(t, int32(2), calls)
}
