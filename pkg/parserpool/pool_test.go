package parserpool_test

import (
	"sync"
	"testing"

	"github.com/gnames/ednamap/pkg/parserpool"
)

// TestNewPool verifies pool creation with default and custom sizes.
func TestNewPool(t *testing.T) {
	tests := []struct {
		name    string
		jobsNum int
	}{
		{name: "default size (0 = NumCPU)", jobsNum: 0},
		{name: "custom size 4", jobsNum: 4},
		{name: "custom size 1", jobsNum: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := parserpool.NewPool(tt.jobsNum)
			if pool == nil {
				t.Fatal("NewPool returned nil")
			}
			defer pool.Close()

			if got := pool.Canonical("Gadus morhua"); got == "" {
				t.Error("expected non-empty canonical for a valid name")
			}
		})
	}
}

// TestCanonical verifies canonicalization of typical survey names.
func TestCanonical(t *testing.T) {
	pool := parserpool.NewPool(2)
	defer pool.Close()

	tests := []struct {
		name       string
		nameString string
		want       string
	}{
		{
			name:       "simple binomial",
			nameString: "Zacco platypus",
			want:       "Zacco platypus",
		},
		{
			name:       "name with author and year",
			nameString: "Cyprinus carpio Linnaeus, 1758",
			want:       "Cyprinus carpio",
		},
		{
			name:       "trinomial",
			nameString: "Passer domesticus domesticus",
			want:       "Passer domesticus domesticus",
		},
		{
			name:       "unparseable vernacular string",
			nameString: "붕어 (crucian carp)",
			want:       "",
		},
		{
			name:       "empty input",
			nameString: "",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pool.Canonical(tt.nameString); got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q",
					tt.nameString, got, tt.want)
			}
		})
	}
}

// TestCanonical_Concurrent verifies thread-safety with many goroutines.
func TestCanonical_Concurrent(t *testing.T) {
	pool := parserpool.NewPool(4)
	defer pool.Close()

	numGoroutines := 20
	namesPerGoroutine := 10

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < namesPerGoroutine; j++ {
				if got := pool.Canonical("Gadus morhua"); got != "Gadus morhua" {
					t.Errorf("goroutine %d: got %q", id, got)
					return
				}
			}
		}(i)
	}

	wg.Wait()
}

// TestCanonical_PoolBlocking verifies the pool serializes access when
// more callers than parsers exist.
func TestCanonical_PoolBlocking(t *testing.T) {
	pool := parserpool.NewPool(1)
	defer pool.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			pool.Canonical("Anguilla japonica")
		}
		close(done)
	}()

	for i := 0; i < 10; i++ {
		pool.Canonical("Clupea pallasii")
	}
	<-done
}

// TestClose verifies proper cleanup of resources.
func TestClose(t *testing.T) {
	pool := parserpool.NewPool(2)

	if got := pool.Canonical("Gadus morhua"); got == "" {
		t.Fatal("parse before close failed")
	}

	// Close should not panic. Parsing after Close would panic, which is
	// expected - Close is called once when the pool is retired.
	pool.Close()
}
