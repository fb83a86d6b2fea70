package props

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
)

func countingCollection(calls *atomic.Int32) *Collection[int] {
	return NewCollection(func(context.Context) map[string]int {
		calls.Add(1)
		return map[string]int{"b": 2, "a": 1, "c": 3}
	})
}

func TestCollectionSeedsOnFirstTouch(t *testing.T) {
	var calls atomic.Int32
	c := countingCollection(&calls)

	if c.Initialized() {
		t.Fatal("collection initialized before first use")
	}
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = %d, %v; want 1, true", v, ok)
	}
	c.Len()
	c.Keys()
	if calls.Load() != 1 {
		t.Fatalf("seed calls = %d, want 1", calls.Load())
	}
	if c.Seed(context.Background()) {
		t.Fatal("second Seed reported seeding")
	}
}

func TestCollectionSeedsOnceUnderContention(t *testing.T) {
	var calls atomic.Int32
	c := countingCollection(&calls)

	var wg sync.WaitGroup
	var partial atomic.Int32
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Len() != 3 {
				partial.Add(1)
			}
		}()
	}
	wg.Wait()

	if calls.Load() != 1 {
		t.Fatalf("seed calls = %d, want 1", calls.Load())
	}
	if partial.Load() != 0 {
		t.Fatalf("%d readers saw a partially seeded collection", partial.Load())
	}
}

func TestCollectionClearedStaysEmpty(t *testing.T) {
	var calls atomic.Int32
	c := countingCollection(&calls)

	if !c.Replace(map[string]int{}) {
		t.Fatal("replace with empty map rejected")
	}
	if c.Len() != 0 {
		t.Fatalf("len = %d, want 0", c.Len())
	}
	if c.Seed(context.Background()) {
		t.Fatal("cleared collection was reseeded")
	}
	if calls.Load() != 0 {
		t.Fatalf("seed calls = %d, want 0", calls.Load())
	}
}

func TestCollectionDeleteAllDoesNotReseed(t *testing.T) {
	var calls atomic.Int32
	c := countingCollection(&calls)
	for _, k := range c.Keys() {
		c.Delete(k)
	}
	if c.Len() != 0 || calls.Load() != 1 {
		t.Fatalf("len = %d, seeds = %d; want 0, 1", c.Len(), calls.Load())
	}
}

func TestCollectionReplaceNilIsNoop(t *testing.T) {
	var calls atomic.Int32
	c := countingCollection(&calls)
	c.Put("d", 4)

	if c.Replace(nil) {
		t.Fatal("nil replace reported success")
	}
	if c.Len() != 4 {
		t.Fatalf("len = %d, want 4", c.Len())
	}
}

func TestCollectionReplaceCopiesInput(t *testing.T) {
	c := NewCollection[int](nil)
	in := map[string]int{"x": 1}
	c.Replace(in)
	in["y"] = 2

	if c.Len() != 1 {
		t.Fatalf("len = %d, want 1", c.Len())
	}
}

func TestCollectionKeysAndRange(t *testing.T) {
	var calls atomic.Int32
	c := countingCollection(&calls)

	keys := c.Keys()
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Fatalf("keys = %v, want [a b c]", keys)
	}

	var seen []string
	c.Range(func(k string, v int) bool {
		seen = append(seen, k)
		c.Put(k+"!", v)
		return len(seen) < 2
	})
	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Fatalf("range = %v, want [a b]", seen)
	}
	if c.Len() != 5 {
		t.Fatalf("len = %d, want 5 after writes during range", c.Len())
	}
}

func TestCollectionPutAllOverwrites(t *testing.T) {
	var calls atomic.Int32
	c := countingCollection(&calls)
	c.PutAll(map[string]int{"a": 10, "z": 26})

	if v, _ := c.Get("a"); v != 10 {
		t.Fatalf("a = %d, want 10", v)
	}
	if c.Len() != 4 {
		t.Fatalf("len = %d, want 4", c.Len())
	}
	if c.Delete("missing") {
		t.Fatal("delete of missing key reported true")
	}
}

func TestCollectionSnapshotIsIsolated(t *testing.T) {
	var calls atomic.Int32
	c := countingCollection(&calls)
	snap := c.Snapshot()
	snap["a"] = 100

	if v, _ := c.Get("a"); v != 1 {
		t.Fatalf("a = %d, want 1", v)
	}
}

func TestRepositoryList(t *testing.T) {
	l := NewRepositoryList("https://a.example", " https://b.example ", "https://a.example", "")

	if got := l.Values(); len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("values = %v", got)
	}
	if l.Add("https://b.example") {
		t.Fatal("duplicate add reported true")
	}
	if added := l.AddAll("https://c.example", "https://a.example"); added != 1 {
		t.Fatalf("added = %d, want 1", added)
	}
	if !l.Contains("https://c.example") || l.Len() != 3 {
		t.Fatalf("values = %v", l.Values())
	}
	if l.Values()[2] != "https://c.example" {
		t.Fatalf("values = %v, want c last", l.Values())
	}
}

func TestRepositoryListReplace(t *testing.T) {
	l := NewRepositoryList("a")

	if l.Replace(nil) || l.Len() != 1 {
		t.Fatal("nil replace must be a no-op")
	}
	if !l.Replace([]string{"x", "y", "x"}) {
		t.Fatal("replace rejected")
	}
	if got := l.Values(); len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Fatalf("values = %v, want [x y]", got)
	}
	if l.Contains("a") {
		t.Fatal("old value survived replace")
	}
}
