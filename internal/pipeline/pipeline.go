package pipeline

import (
	"runtime"
	"sync"
)

// Task handles the item at position index.
type Task[T any] func(index int, item T) error

// Run calls fn once per item on up to workers goroutines and returns the
// non-nil errors in completion order. workers <= 0 means one per CPU.
func Run[T any](items []T, workers int, fn Task[T]) []error {
	if len(items) == 0 || fn == nil {
		return nil
	}
	if workers <= 0 {
		workers = max(runtime.NumCPU(), 1)
	}
	workers = min(workers, len(items))

	type job struct {
		index int
		item  T
	}
	jobs := make(chan job)
	errs := make(chan error, len(items))
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if err := fn(j.index, j.item); err != nil {
					errs <- err
				}
			}
		}()
	}

	for i, item := range items {
		jobs <- job{index: i, item: item}
	}
	close(jobs)
	wg.Wait()
	close(errs)

	out := make([]error, 0, len(errs))
	for err := range errs {
		out = append(out, err)
	}
	return out
}
