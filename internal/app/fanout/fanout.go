// Package fanout runs a function across a slice of items with a fixed number
// of worker goroutines, preserving input order in the results. The todo
// service uses it to submit bulk imports as independent commands.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Failure is a failed Result together with its input position.
type Failure struct {
	Index int
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent
// goroutines. Results are returned in input order.
//
// A goroutine still waiting for a slot when ctx is canceled records ctx.Err()
// without calling fn. Goroutines that already hold a slot run to completion.
//
// Run blocks until every goroutine finishes. Empty input yields an empty
// non-nil slice. maxWorkers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, it)
			results[idx] = Result[R]{Value: val, Err: err}
		}(i, item)
	}

	wg.Wait()
	return results
}

// Failures returns the failed results in input order and the number that
// succeeded.
func Failures[R any](results []Result[R]) (failed []Failure, succeeded int) {
	for i, r := range results {
		if r.Err != nil {
			failed = append(failed, Failure{Index: i, Err: r.Err})
			continue
		}
		succeeded++
	}
	return failed, succeeded
}
