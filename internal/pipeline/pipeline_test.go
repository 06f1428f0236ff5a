package pipeline

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestRun(t *testing.T) {
	items := []string{"a", "b", "c"}

	var called int32
	seen := make([]string, len(items))
	errs := Run(items, 2, func(i int, item string) error {
		atomic.AddInt32(&called, 1)
		seen[i] = item
		if i == 1 {
			return errors.New("test error")
		}
		return nil
	})

	if called != int32(len(items)) {
		t.Fatalf("expected %d calls, got %d", len(items), called)
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	for i, item := range items {
		if seen[i] != item {
			t.Fatalf("expected %q at %d, got %q", item, i, seen[i])
		}
	}
}

func TestRunDefaultsWorkers(t *testing.T) {
	items := make([]int, 50)
	var sum int64
	errs := Run(items, 0, func(i int, _ int) error {
		atomic.AddInt64(&sum, int64(i))
		return nil
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if sum != 49*50/2 {
		t.Fatalf("expected every index once, got sum %d", sum)
	}
	if Run[int](nil, 4, func(int, int) error { return nil }) != nil {
		t.Fatal("expected nil for no items")
	}
}
