// cache/memory_test.go
package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestMemoryStoreGetPut(t *testing.T) {
	store := NewMemoryStore()

	if _, ok := store.Get("vienna"); ok {
		t.Error("Get on empty store reported a hit")
	}

	store.Put("vienna", "VIE")
	code, ok := store.Get("vienna")
	if !ok || code != "VIE" {
		t.Errorf("Get(\"vienna\") = (%q, %v), want (VIE, true)", code, ok)
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
}

func TestMemoryStoreLastWriteWins(t *testing.T) {
	store := NewMemoryStore()
	store.Put("rome", "FCO")
	store.Put("rome", "CIA")

	code, _ := store.Get("rome")
	if code != "CIA" {
		t.Errorf("Get(\"rome\") = %q, want last written value CIA", code)
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1 entry per key", store.Len())
	}
}

func TestMemoryStoreEvictsOldestBeyondCapacity(t *testing.T) {
	store := NewMemoryStore()
	store.Put("vienna", "VIE")

	for i := 0; i < defaultCapacity; i++ {
		store.Put(fmt.Sprintf("city-%d", i), "GRZ")
	}

	if store.Len() != defaultCapacity {
		t.Errorf("Len() = %d, want bounded at %d", store.Len(), defaultCapacity)
	}
	if _, ok := store.Get("vienna"); ok {
		t.Error("oldest entry survived past capacity, want it evicted")
	}
	if code, ok := store.Get(fmt.Sprintf("city-%d", defaultCapacity-1)); !ok || code != "GRZ" {
		t.Error("most recent entry missing after eviction")
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			store.Put(fmt.Sprintf("city-%d", n), "VIE")
		}(i)
		go func(n int) {
			defer wg.Done()
			store.Get(fmt.Sprintf("city-%d", n))
		}(i)
	}
	wg.Wait()

	if store.Len() != 50 {
		t.Errorf("Len() = %d after concurrent writes, want 50", store.Len())
	}
}
