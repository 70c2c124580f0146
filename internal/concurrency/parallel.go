package concurrency

import (
	"context"
	"sync"
)

// Settle runs itemFunc for every item in parallel and waits until every call
// has either returned or failed. Nothing short-circuits: one item failing
// never cancels or delays the others. Results and errors come back aligned
// with the input slice, so callers can attribute each failure to its item.
func Settle[T any, R any](
	ctx context.Context,
	items []T,
	itemFunc func(ctx context.Context, index int, item T) (R, error),
) ([]R, []error) {
	results := make([]R, len(items))
	errs := make([]error, len(items))

	if len(items) == 0 {
		return results, errs
	}

	var wg sync.WaitGroup
	for i := range items {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = itemFunc(ctx, idx, items[idx])
		}(i)
	}
	wg.Wait()

	return results, errs
}
