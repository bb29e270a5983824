package parallel

import "sync/atomic"
import "testing"

import "github.com/stretchr/testify/assert"

func TestForEachVisitsEveryIndexOnce(t *testing.T) {
	for _, tc := range []struct{ length, limit int }{
		{0, 4}, {1, 4}, {7, 3}, {100, 0}, {100, -1}, {5, 100}, {1000, 7},
	} {
		var seen = make([]int32, tc.length)
		var calls atomic.Int64
		ForEach(tc.length, tc.limit, func(i int) {
			atomic.AddInt32(&seen[i], 1)
			calls.Add(1)
		})
		assert.Equal(t, int64(tc.length), calls.Load(), "length %d limit %d", tc.length, tc.limit)
		for i, n := range seen {
			assert.Equal(t, int32(1), n, "index %d", i)
		}
	}
}

func TestForEachBoundsConcurrency(t *testing.T) {
	var running, peak atomic.Int32
	ForEach(64, 4, func(i int) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		running.Add(-1)
	})
	assert.LessOrEqual(t, peak.Load(), int32(4))
}
