package cache

import (
	"errors"
	"sync"
	"testing"
)

func TestResultCache_Do(t *testing.T) {
	t.Run("computes once for identical keys", func(t *testing.T) {
		c := NewResultCache()
		calls := 0

		for i := 0; i < 3; i++ {
			value, err := c.Do("latest|5|EUR|BRL", func() (any, error) {
				calls++
				return 27.35, nil
			})
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if value.(float64) != 27.35 {
				t.Errorf("Expected 27.35, got %v", value)
			}
		}

		if calls != 1 {
			t.Errorf("Expected 1 computation, got %d", calls)
		}
	})

	t.Run("different keys compute independently", func(t *testing.T) {
		c := NewResultCache()
		calls := 0
		compute := func() (any, error) {
			calls++
			return calls, nil
		}

		//nolint:errcheck
		c.Do("latest|5|EUR|BRL", compute)
		//nolint:errcheck
		c.Do("latest|10|EUR|BRL", compute)

		if calls != 2 {
			t.Errorf("Expected 2 computations for distinct keys, got %d", calls)
		}
	})

	t.Run("failures are never cached", func(t *testing.T) {
		c := NewResultCache()
		calls := 0
		boom := errors.New("provider down")

		for i := 0; i < 2; i++ {
			_, err := c.Do("latest|5|EUR|BRL", func() (any, error) {
				calls++
				return nil, boom
			})
			if !errors.Is(err, boom) {
				t.Fatalf("Expected the compute error, got %v", err)
			}
		}

		if calls != 2 {
			t.Errorf("Expected failed calls to be retried, got %d computations", calls)
		}
		if c.Len() != 0 {
			t.Errorf("Expected no cached entries after failures, got %d", c.Len())
		}

		// A later success with the same key must be storable.
		value, err := c.Do("latest|5|EUR|BRL", func() (any, error) {
			return 27.35, nil
		})
		if err != nil || value.(float64) != 27.35 {
			t.Errorf("Expected recovery after failure, got %v, %v", value, err)
		}
	})

	t.Run("concurrent identical lookups share one computation", func(t *testing.T) {
		c := NewResultCache()
		var mu sync.Mutex
		calls := 0

		release := make(chan struct{})
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-release
				//nolint:errcheck
				c.Do("series|2024-01-01|2024-12-31|EUR|BRL", func() (any, error) {
					mu.Lock()
					calls++
					mu.Unlock()
					return "series", nil
				})
			}()
		}
		close(release)
		wg.Wait()

		mu.Lock()
		defer mu.Unlock()
		if calls != 1 {
			t.Errorf("Expected concurrent callers to share 1 computation, got %d", calls)
		}
	})

	t.Run("flush clears every entry", func(t *testing.T) {
		c := NewResultCache()
		calls := 0
		compute := func() (any, error) {
			calls++
			return "v", nil
		}

		//nolint:errcheck
		c.Do("a", compute)
		//nolint:errcheck
		c.Do("b", compute)
		c.Flush()

		if c.Len() != 0 {
			t.Errorf("Expected empty cache after flush, got %d entries", c.Len())
		}

		//nolint:errcheck
		c.Do("a", compute)
		if calls != 3 {
			t.Errorf("Expected recomputation after flush, got %d calls", calls)
		}
	})
}
