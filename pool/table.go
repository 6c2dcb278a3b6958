package pool

import (
	"sync"

	"github.com/wippyai/ownership/shared"
)

// ID is an opaque reference to a pooled share. ID 0 is reserved and
// always invalid.
type ID uint32

type slot[T any] struct {
	share *shared.Handle[T]
	valid bool
}

// Table keeps shared handles alive under integer IDs. The table owns one
// share per entry; Get clones that share out to callers, so an entry can
// be removed at any time without invalidating handles already handed out.
//
// The table serializes its own operations, count mutations included, so
// concurrent Put, Get and Remove are safe. The handles it returns follow
// the usual single-goroutine rule: using one concurrently with table
// operations on the same value is still a data race.
type Table[T any] struct {
	entries  []slot[T]
	freeList []ID
	mu       sync.RWMutex
	closed   bool
}

// New creates an empty table.
func New[T any]() *Table[T] {
	return &Table[T]{
		entries:  make([]slot[T], 0, 64),
		freeList: make([]ID, 0, 16),
	}
}

// Put stores the table's own share of h and returns an ID for it. The
// caller's handle is untouched and remains the caller's to drop. Returns
// 0 when h is empty or the table is closed.
func (t *Table[T]) Put(h *shared.Handle[T]) ID {
	if h.Empty() {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0
	}

	s := slot[T]{share: h.Clone(), valid: true}

	if len(t.freeList) > 0 {
		id := t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.entries[id-1] = s
		return id
	}

	t.entries = append(t.entries, s)
	return ID(len(t.entries))
}

// Get returns a fresh share of the value under id. The caller owns the
// returned handle and drops it when done. Returns (nil, false) when id is
// not live.
func (t *Table[T]) Get(id ID) (*shared.Handle[T], bool) {
	if id == 0 {
		return nil, false
	}

	// Cloning mutates the shared counter, so lookups take the write lock.
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := id - 1
	if int(idx) >= len(t.entries) || !t.entries[idx].valid {
		return nil, false
	}
	return t.entries[idx].share.Clone(), true
}

// Remove drops the table's share under id and recycles the slot. The
// value itself dies only when no other handle shares it.
func (t *Table[T]) Remove(id ID) bool {
	if id == 0 {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := id - 1
	if int(idx) >= len(t.entries) || !t.entries[idx].valid {
		return false
	}

	s := &t.entries[idx]
	s.share.Drop()
	s.share = nil
	s.valid = false
	t.freeList = append(t.freeList, id)
	return true
}

// Len returns the number of live entries.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, s := range t.entries {
		if s.valid {
			count++
		}
	}
	return count
}

// Each iterates over live entries with a borrowed pointer for each. The
// pointer is good while the entry stays in the table; take a share from
// Get, outside the iteration, to hold the value longer. Return false to
// stop early.
func (t *Table[T]) Each(fn func(ID, *T) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i, s := range t.entries {
		if s.valid {
			if !fn(ID(i+1), s.share.Get()) {
				break
			}
		}
	}
}

// Clear drops every share in the table. Slots are recycled as usual.
func (t *Table[T]) Clear() {
	// Collect IDs first to avoid holding the read lock during Remove.
	var live []ID
	t.mu.RLock()
	for i, s := range t.entries {
		if s.valid {
			live = append(live, ID(i+1))
		}
	}
	t.mu.RUnlock()

	for _, id := range live {
		t.Remove(id)
	}
}

// Close drops every share and stops accepting operations. A second Close
// is a no-op.
func (t *Table[T]) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true

	for i := range t.entries {
		if t.entries[i].valid {
			t.entries[i].share.Drop()
			t.entries[i].share = nil
			t.entries[i].valid = false
		}
	}
	t.entries = nil
	t.freeList = nil
	return nil
}
