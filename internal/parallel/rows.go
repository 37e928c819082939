// Package parallel splits per-pixel work into horizontal bands that run
// on separate goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// MinBand is the smallest number of rows given to one goroutine. Images
// shorter than this are processed on the calling goroutine.
const MinBand = 32

// Rows calls fn for contiguous, non-overlapping bands [y0, y1) that
// together cover [0, height). At most workers bands run concurrently;
// workers <= 0 uses GOMAXPROCS. Rows returns after every band is done.
//
// fn must only touch rows inside its band.
func Rows(height, workers int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	bands := min(workers, (height+MinBand-1)/MinBand)
	if bands <= 1 {
		fn(0, height)
		return
	}

	size := (height + bands - 1) / bands
	var wg sync.WaitGroup
	for y0 := 0; y0 < height; y0 += size {
		y1 := min(y0+size, height)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(y0, y1)
		}()
	}
	wg.Wait()
}
