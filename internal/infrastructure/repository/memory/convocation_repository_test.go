package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/canterahq/cantera/internal/domain/convocation"
)

func jersey(n int) *int {
	return &n
}

func TestConvocationRepository_CreateBatch_ConcurrentJerseyClaims(t *testing.T) {
	repo := NewConvocationRepository(NewPlayerRepository(SeedPlayers()), NewMatchRepository(SeedMatches()))

	const workers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	var mu sync.Mutex
	succeeded := 0
	conflicts := 0

	for i := 0; i < workers; i++ {
		entry := convocation.Convocation{
			ID:           fmt.Sprintf("conv-%03d", i),
			TenantID:     TenantIDLaCantera,
			MatchID:      "lc-match-01",
			PlayerID:     fmt.Sprintf("racer-%03d", i),
			Status:       convocation.StatusCalled,
			JerseyNumber: jersey(10),
			CreatedAt:    time.Now().UTC(),
			UpdatedAt:    time.Now().UTC(),
		}
		go func() {
			defer wg.Done()
			<-start
			_, err := repo.CreateBatch(context.Background(), TenantIDLaCantera, "lc-match-01", []convocation.Convocation{entry})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, convocation.ErrJerseyTaken):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if succeeded != 1 {
		t.Fatalf("expected exactly one batch to claim jersey 10, got %d", succeeded)
	}
	if conflicts != workers-1 {
		t.Fatalf("expected %d jersey conflicts, got %d", workers-1, conflicts)
	}
}

func TestConvocationRepository_CreateBatch_ConcurrentSamePlayer(t *testing.T) {
	repo := NewConvocationRepository(NewPlayerRepository(SeedPlayers()), NewMatchRepository(SeedMatches()))

	const workers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	var mu sync.Mutex
	succeeded := 0

	for i := 0; i < workers; i++ {
		entry := convocation.Convocation{
			ID:        fmt.Sprintf("conv-%03d", i),
			TenantID:  TenantIDLaCantera,
			MatchID:   "lc-match-01",
			PlayerID:  "lc-player-01",
			Status:    convocation.StatusCalled,
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		}
		go func() {
			defer wg.Done()
			<-start
			_, err := repo.CreateBatch(context.Background(), TenantIDLaCantera, "lc-match-01", []convocation.Convocation{entry})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, convocation.ErrDuplicate):
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if succeeded != 1 {
		t.Fatalf("expected exactly one batch to win, got %d", succeeded)
	}

	rows, err := repo.ListByMatch(context.Background(), TenantIDLaCantera, "lc-match-01", nil)
	if err != nil {
		t.Fatalf("list convocations: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected a single persisted row, got %d", len(rows))
	}
}
