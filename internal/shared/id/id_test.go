package id

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntryID(t *testing.T) {
	eid := NewEntryID()

	assert.True(t, strings.HasPrefix(eid.String(), "ent_"))
	assert.True(t, IsValidEntryID(eid.String()))
}

func TestEntryIDUniqueness(t *testing.T) {
	seen := make(map[EntryID]bool)
	for i := 0; i < 1000; i++ {
		eid := NewEntryID()
		require.False(t, seen[eid], "duplicate ID generated: %s", eid)
		seen[eid] = true
	}
}

func TestEntryIDOrdering(t *testing.T) {
	first := NewEntryID()
	time.Sleep(2 * time.Millisecond)
	second := NewEntryID()

	// ULIDs are lexicographically ordered by creation time.
	assert.Less(t, first.String(), second.String())
}

func TestEntryIDOrderingSameMillisecond(t *testing.T) {
	g := NewGenerator()

	// Monotonic entropy keeps generation order even when many IDs land in
	// the same millisecond.
	prev := g.Generate().String()
	for i := 0; i < 1000; i++ {
		next := g.Generate().String()
		require.Less(t, prev, next)
		prev = next
	}
}

func TestIsValidEntryID(t *testing.T) {
	assert.False(t, IsValidEntryID(""))
	assert.False(t, IsValidEntryID("ent_"))
	assert.False(t, IsValidEntryID("ent_not-a-ulid"))
	assert.False(t, IsValidEntryID("app_01ARZ3NDEKTSV4RRFFQ69G5FAV"))
	assert.True(t, IsValidEntryID("ent_01ARZ3NDEKTSV4RRFFQ69G5FAV"))
}

func TestTimestamp(t *testing.T) {
	before := time.Now().Add(-time.Second)
	eid := NewEntryID()
	after := time.Now().Add(time.Second)

	ts, err := Timestamp(eid.String())
	require.NoError(t, err)
	assert.True(t, ts.After(before) && ts.Before(after))
}

func TestConcurrentGeneration(t *testing.T) {
	const goroutines = 16
	const perGoroutine = 100

	var mu sync.Mutex
	seen := make(map[EntryID]bool)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				eid := NewEntryID()
				mu.Lock()
				seen[eid] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, goroutines*perGoroutine)
}
