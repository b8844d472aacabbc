package booking

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockKeys(t *testing.T) {
	keys := lockKeys([]string{"p1", "p2"}, "2025-09-10", "2025-09-11")
	assert.ElementsMatch(t, []string{
		"p1|2025-09-10", "p1|2025-09-11",
		"p2|2025-09-10", "p2|2025-09-11",
	}, keys)
}

func TestLockTable_DuplicateKeysDoNotDeadlock(t *testing.T) {
	table := newLockTable()
	unlock := table.acquire([]string{"a", "a", "b", "a"})
	unlock()

	// Reacquirable after release.
	unlock = table.acquire([]string{"a", "b"})
	unlock()
}

func TestLockTable_OverlappingAcquisitionOrderIsSafe(t *testing.T) {
	table := newLockTable()

	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unlock := table.acquire([]string{"a", "b"})
			counter++
			unlock()
		}()
		go func() {
			defer wg.Done()
			unlock := table.acquire([]string{"b", "a"})
			counter++
			unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, counter)
}
