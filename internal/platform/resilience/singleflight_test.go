package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight
	var counter atomic.Int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := g.Do("dashboard-key", func() (any, error) {
				counter.Add(1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if got, _ := v.(string); got != "ok" {
				t.Errorf("unexpected shared value: %v", v)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := counter.Load(); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_Do_PropagatesErrors(t *testing.T) {
	var g SingleFlight
	wantErr := errors.New("load failed")

	if _, err := g.Do("k", func() (any, error) { return nil, wantErr }); !errors.Is(err, wantErr) {
		t.Fatalf("expected shared error, got %v", err)
	}

	// The key is released once the call finishes.
	v, err := g.Do("k", func() (any, error) { return 42, nil })
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if v != 42 {
		t.Fatalf("unexpected value: %v", v)
	}
}
