// Package parallel contains a bounded parallel ForEach used to decode and transform datasets.
package parallel

import "runtime"
import "sync"

// ForEach calls body for every integer from 0 to length, using at most limit goroutines.
// The range is cut into contiguous chunks, one per goroutine, so cheap bodies over large
// datasets do not pay for a goroutine each.
// A limit of zero or less means runtime.NumCPU().
func ForEach(length, limit int, body func(i int)) {
	if length <= 0 {
		return
	}
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	if limit > length {
		limit = length
	}

	var chunk = (length + limit - 1) / limit
	var wg sync.WaitGroup
	for start := 0; start < length; start += chunk {
		end := start + chunk
		if end > length {
			end = length
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				body(i)
			}
		}(start, end)
	}
	wg.Wait()
}
