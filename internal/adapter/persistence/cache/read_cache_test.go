package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestFetch_CachesUntilInvalidated(t *testing.T) {
	s := NewStore()
	var calls int32

	load := func(ctx context.Context) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		return []string{"a", "b"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := Fetch(context.Background(), s, CollectionKey("customers"), load)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("unexpected value: %v", got)
		}
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected single load, got %d", calls)
	}

	s.InvalidateEntity("customers")

	if _, err := Fetch(context.Background(), s, CollectionKey("customers"), load); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Fatalf("expected reload after invalidation, got %d", calls)
	}
}

func TestFetch_DoesNotCacheErrors(t *testing.T) {
	s := NewStore()
	var calls int32

	load := func(ctx context.Context) (string, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return "", errors.New("store down")
		}
		return "row", nil
	}

	if _, err := Fetch(context.Background(), s, ItemKey("estimates", "e1"), load); err == nil {
		t.Fatalf("expected error on first fetch")
	}
	got, err := Fetch(context.Background(), s, ItemKey("estimates", "e1"), load)
	if err != nil || got != "row" {
		t.Fatalf("expected retry to succeed, got %q err %v", got, err)
	}
}

func TestFetch_SharesInFlightLoad(t *testing.T) {
	s := NewStore()
	var calls int32
	release := make(chan struct{})

	load := func(ctx context.Context) (int, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return 42, nil
	}

	const readers = 8
	var wg sync.WaitGroup
	results := make([]int, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := Fetch(context.Background(), s, CollectionKey("advisors"), load)
			if err != nil {
				t.Errorf("reader %d: %v", i, err)
			}
			results[i] = v
		}(i)
	}
	close(release)
	wg.Wait()

	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected one shared load, got %d", calls)
	}
	for i, v := range results {
		if v != 42 {
			t.Fatalf("reader %d got %d", i, v)
		}
	}
}

func TestFetch_InvalidationDuringLoadIsNotLost(t *testing.T) {
	s := NewStore()
	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})

	load := func(ctx context.Context) ([]string, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
			<-release
			return []string{"old"}, nil
		}
		return []string{"old", "new"}, nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := Fetch(context.Background(), s, CollectionKey("customers"), load); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	}()

	// A row is written while the list fetch is still in flight. The fetch
	// result predates the write and must not stick in the cache.
	<-started
	s.InvalidateEntity("customers")
	close(release)
	<-done

	got, err := Fetch(context.Background(), s, CollectionKey("customers"), load)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Fatalf("expected reload after mid-flight invalidation, got %d loads", calls)
	}
	if len(got) != 2 {
		t.Fatalf("stale value served: %v", got)
	}
}

func TestFetch_ItemInvalidationDuringEntityWideDrop(t *testing.T) {
	s := NewStore()
	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})

	load := func(ctx context.Context) (string, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
			<-release
			return "old", nil
		}
		return "new", nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := Fetch(context.Background(), s, ItemKey("customers", "c1"), load); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	}()

	<-started
	s.InvalidateEntity("customers")
	close(release)
	<-done

	got, err := Fetch(context.Background(), s, ItemKey("customers", "c1"), load)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "new" || atomic.LoadInt32(&calls) != 2 {
		t.Fatalf("expected reloaded row, got %q after %d loads", got, calls)
	}
}

func TestInvalidateItem_DropsItemAndCollection(t *testing.T) {
	s := NewStore()
	var itemCalls, listCalls int32

	loadItem := func(ctx context.Context) (string, error) {
		atomic.AddInt32(&itemCalls, 1)
		return "row", nil
	}
	loadList := func(ctx context.Context) ([]string, error) {
		atomic.AddInt32(&listCalls, 1)
		return []string{"row"}, nil
	}

	if _, err := Fetch(context.Background(), s, ItemKey("jobs", "j1"), loadItem); err != nil {
		t.Fatal(err)
	}
	if _, err := Fetch(context.Background(), s, CollectionKey("jobs"), loadList); err != nil {
		t.Fatal(err)
	}

	s.InvalidateItem("jobs", "j1")

	if _, err := Fetch(context.Background(), s, ItemKey("jobs", "j1"), loadItem); err != nil {
		t.Fatal(err)
	}
	if _, err := Fetch(context.Background(), s, CollectionKey("jobs"), loadList); err != nil {
		t.Fatal(err)
	}
	if itemCalls != 2 || listCalls != 2 {
		t.Fatalf("expected both keys reloaded, got item=%d list=%d", itemCalls, listCalls)
	}
}
