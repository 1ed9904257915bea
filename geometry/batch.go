package geometry

import (
	"iter"
	"runtime"
	"sync"
)

// RunBatch executes every work item on a bounded pool of workers.
//
// The items sequence is consumed exactly once, through a single shared
// cursor: each worker repeatedly pulls the next unclaimed item, runs it, and
// appends the result to its own group. Every item is executed exactly once
// for any concurrency bound, including a bound larger than the item count.
//
// Results come back grouped by worker, so the aggregate order bears no
// relation to input order. Callers must treat the flattened result as an
// unordered collection.
//
// Failure is all-or-nothing: a panic escaping any work item stops the
// cursor, lets the remaining workers wind down, and then rethrows the panic
// on the calling goroutine, so no partial results are observable. Work items
// are expected to absorb routine conditions (degenerate lines, parallel
// lines) internally and reserve panics for structural faults.
//
// A concurrency bound of zero or less means one worker per available CPU.
func RunBatch[T any](items iter.Seq[func() T], concurrency int) [][]T {
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	cursor := make(chan func() T)
	abort := make(chan struct{})

	// Feed the lazy sequence through the shared cursor. The cursor is
	// unbuffered, so items are claimed one at a time, and nothing is pulled
	// from the sequence after an abort.
	go func() {
		defer close(cursor)
		for item := range items {
			select {
			case cursor <- item:
			case <-abort:
				return
			}
		}
	}()

	groups := make([][]T, concurrency)
	var (
		wg        sync.WaitGroup
		faultOnce sync.Once
		fault     interface{}
	)

	wg.Add(concurrency)
	for w := range concurrency {
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					// First fault wins; it also stops the feeder so no
					// further items are claimed.
					faultOnce.Do(func() {
						fault = r
						close(abort)
					})
				}
			}()
			for item := range cursor {
				groups[w] = append(groups[w], item())
			}
		}()
	}
	wg.Wait()

	if fault != nil {
		panic(fault)
	}
	return groups
}

// Flatten concatenates the per-worker groups returned by RunBatch. The
// result inherits the groups' arbitrary order.
func Flatten[T any](groups [][]T) []T {
	var n int
	for _, group := range groups {
		n += len(group)
	}
	flat := make([]T, 0, n)
	for _, group := range groups {
		flat = append(flat, group...)
	}
	return flat
}
