/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

// Package scheduler distributes an output image's rows (or six multi-face
// sub-renders' rows) across worker goroutines, forwarding progress to the
// calling goroutine one completed line at a time and supporting
// best-effort cooperative cancellation.
package scheduler

/****************************************************************************************************************/

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

/****************************************************************************************************************/

// LineFunc renders one output line. It returns false to signal a fatal,
// per-line render failure, which sets the scheduler's stop flag exactly as
// a false return from ProgressFunc does.
type LineFunc func(lineIndex int) bool

// ProgressFunc is invoked on the calling goroutine after each line
// completes, with a numerator/denominator pair that is monotonically
// non-decreasing across one Schedule call's own contribution. Returning
// false requests cancellation.
type ProgressFunc func(numerator, denominator int) bool

/****************************************************************************************************************/

// Schedule invokes lineFn exactly once for each line in [0, lineCount),
// across up to runtime.GOMAXPROCS(0) worker goroutines (capped to
// lineCount), reporting progress after each completion. subIndex/subCount
// let a multi-face sink (six sub-renders) report progress against the
// whole job, not just the current face: numerator is
// subIndex*lineCount + completedSoFar, denominator is subCount*lineCount.
//
// It returns true iff every line ran to completion and neither lineFn nor
// progressFn ever requested a stop. Cancellation is cooperative: once
// requested (by a false return, or ctx being done), no new lines are
// dispatched, but lines already in flight run to completion.
func Schedule(
	ctx context.Context,
	lineCount, subIndex, subCount int,
	lineFn LineFunc,
	progressFn ProgressFunc,
) bool {
	if lineCount <= 0 {
		return true
	}

	release := KeepAwake()
	defer release()

	workers := int64(runtime.GOMAXPROCS(0))
	if workers > int64(lineCount) {
		workers = int64(lineCount)
	}
	if workers < 1 {
		workers = 1
	}

	sem := semaphore.NewWeighted(workers)

	var stop atomic.Bool
	var wg sync.WaitGroup
	done := make(chan struct{})

	// Dispatch runs on its own goroutine so that the progress-draining loop
	// below observes a requested stop in real time, instead of only after
	// every line has already been launched.
	dispatchDone := make(chan struct{})
	go func() {
		defer close(dispatchDone)
		for i := 0; i < lineCount; i++ {
			if stop.Load() || ctx.Err() != nil {
				return
			}
			if err := sem.Acquire(ctx, 1); err != nil {
				return
			}

			wg.Add(1)
			go func(line int) {
				defer wg.Done()
				defer sem.Release(1)

				if !stop.Load() {
					if !lineFn(line) {
						stop.Store(true)
					}
				}
				done <- struct{}{}
			}(i)
		}
	}()

	go func() {
		<-dispatchDone
		wg.Wait()
		close(done)
	}()

	completed := 0
	for range done {
		completed++
		numerator := subIndex*lineCount + completed
		denominator := subCount * lineCount
		if !progressFn(numerator, denominator) {
			stop.Store(true)
		}
	}

	<-dispatchDone

	return !stop.Load() && completed == lineCount
}

/****************************************************************************************************************/

// SerialSchedule is the required single-threaded reference implementation:
// it runs lines 0..N-1 in order on the calling goroutine, invoking
// progressFn synchronously after each.
func SerialSchedule(
	ctx context.Context,
	lineCount, subIndex, subCount int,
	lineFn LineFunc,
	progressFn ProgressFunc,
) bool {
	release := KeepAwake()
	defer release()

	for i := 0; i < lineCount; i++ {
		if ctx.Err() != nil {
			return false
		}

		if !lineFn(i) {
			return false
		}

		numerator := subIndex*lineCount + i + 1
		denominator := subCount * lineCount
		if !progressFn(numerator, denominator) {
			return false
		}
	}

	return true
}

/****************************************************************************************************************/
