package booking

import (
	"sort"
	"sync"
)

// lockTable hands out one mutex per (professional, date) pair so that the
// check-then-flip sequence in create/update runs exclusively against the
// slots it touches. Entries are never evicted; the key space is bounded by
// the active roster.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]*sync.Mutex)}
}

func (t *lockTable) get(key string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.locks[key]
	if !ok {
		l = &sync.Mutex{}
		t.locks[key] = l
	}
	return l
}

// acquire locks every key in sorted order and returns the release func.
// Sorting gives a global lock order, so two bookings sharing professionals
// cannot deadlock each other.
func (t *lockTable) acquire(keys []string) func() {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)

	held := make([]*sync.Mutex, 0, len(sorted))
	for i, key := range sorted {
		if i > 0 && key == sorted[i-1] {
			continue
		}
		l := t.get(key)
		l.Lock()
		held = append(held, l)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

// lockKeys builds the (professional, date) lock keys for a booking touching
// the given dates.
func lockKeys(professionalIDs []string, dates ...string) []string {
	keys := make([]string, 0, len(professionalIDs)*len(dates))
	for _, id := range professionalIDs {
		for _, date := range dates {
			keys = append(keys, id+"|"+date)
		}
	}
	return keys
}
