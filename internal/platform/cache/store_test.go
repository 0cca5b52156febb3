package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("transient")
		}
		return "recovered", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err == nil {
		t.Fatal("expected first load to fail")
	}

	v, err := store.GetOrLoad(context.Background(), "k", loader)
	if err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}
	if v != "recovered" {
		t.Fatalf("unexpected value: %v", v)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2", got)
	}
}

func TestStore_Get_ExpiresEntries(t *testing.T) {
	store := NewStore(time.Minute)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	store.Set(context.Background(), "dashboard:t1", "summary")
	if _, ok := store.Get(context.Background(), "dashboard:t1"); !ok {
		t.Fatal("expected entry before expiry")
	}

	store.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, ok := store.Get(context.Background(), "dashboard:t1"); ok {
		t.Fatal("expected entry gone after ttl")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	store := NewStore(time.Minute)

	store.Set(context.Background(), "dashboard:t1", 1)
	store.Set(context.Background(), "dashboard:t2", 2)
	store.Set(context.Background(), "lineup:t1", 3)

	store.DeletePrefix(context.Background(), "dashboard:")

	if _, ok := store.Get(context.Background(), "dashboard:t1"); ok {
		t.Fatal("expected dashboard:t1 dropped")
	}
	if _, ok := store.Get(context.Background(), "dashboard:t2"); ok {
		t.Fatal("expected dashboard:t2 dropped")
	}
	if _, ok := store.Get(context.Background(), "lineup:t1"); !ok {
		t.Fatal("expected other prefixes kept")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
