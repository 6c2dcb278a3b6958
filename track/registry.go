package track

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/ownership"
	"github.com/wippyai/ownership/errors"
)

// Handle identifies a tracked subject inside a Registry. Handle 0 is
// never issued.
type Handle uint32

// Stats tallies lifecycle events seen by a registry. Event counts only
// ever grow; the live set they imply is available through Len and Each.
type Stats struct {
	Adopted     int
	Destroyed   int
	Released    int
	Blocks      int
	BlocksFreed int
}

type entry struct {
	subject any
	kind    string
	block   bool
	valid   bool
}

// Registry is a lifecycle observer that maintains the set of live values
// and control blocks. Slots are recycled through a free list, so long
// test runs do not grow the table past their peak live count.
type Registry struct {
	entries   []entry
	freeList  []Handle
	index     map[any]Handle
	stats     Stats
	anomalies []error
	mu        sync.RWMutex
	closed    bool
}

// New creates an empty registry. Install it with Install or
// ownership.SetObserver to start recording.
func New() *Registry {
	return &Registry{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
		index:    make(map[any]Handle, 64),
	}
}

// Install registers r as the process lifecycle observer and returns a
// function that removes it again:
//
//	defer track.Install(reg)()
func Install(r *Registry) func() {
	ownership.SetObserver(r)
	return func() { ownership.SetObserver(nil) }
}

// OnLifecycleEvent records one event. Implements ownership.Observer.
func (r *Registry) OnLifecycleEvent(e ownership.Event) {
	switch e.Type {
	case ownership.EventAdopted:
		r.add(normalize(e.Subject), false)
	case ownership.EventBlockAllocated:
		r.add(e.Subject, true)
	case ownership.EventDestroyed:
		r.remove(normalize(e.Subject), false)
	case ownership.EventBlockFreed:
		r.remove(e.Subject, true)
	case ownership.EventReleased:
		r.release(normalize(e.Subject))
	}
}

func (r *Registry) add(subject any, block bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	if block {
		r.stats.Blocks++
	} else {
		r.stats.Adopted++
	}

	kind := fmt.Sprintf("%T", subject)
	if h, ok := r.index[subject]; ok && r.entries[h-1].valid {
		r.anomalies = append(r.anomalies, errors.DoubleAdopt(kind, subject))
		Logger().Warn("subject adopted while already live",
			zap.String("type", kind),
			zap.Uint32("handle", uint32(h)))
		return
	}

	e := entry{
		subject: subject,
		kind:    kind,
		block:   block,
		valid:   true,
	}

	var h Handle
	if len(r.freeList) > 0 {
		h = r.freeList[len(r.freeList)-1]
		r.freeList = r.freeList[:len(r.freeList)-1]
		r.entries[h-1] = e
	} else {
		r.entries = append(r.entries, e)
		h = Handle(len(r.entries))
	}
	r.index[subject] = h
}

func (r *Registry) remove(subject any, block bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	if block {
		r.stats.BlocksFreed++
	} else {
		r.stats.Destroyed++
	}

	h, ok := r.index[subject]
	if !ok || !r.entries[h-1].valid {
		kind := fmt.Sprintf("%T", subject)
		r.anomalies = append(r.anomalies, errors.DoubleFree(kind, subject))
		Logger().Warn("destroyed subject was not tracked as live",
			zap.String("type", kind))
		return
	}

	r.evict(h, subject)
}

func (r *Registry) release(subject any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	r.stats.Released++

	h, ok := r.index[subject]
	if !ok || !r.entries[h-1].valid {
		Logger().Warn("released subject was not tracked as live",
			zap.String("type", fmt.Sprintf("%T", subject)))
		return
	}

	r.evict(h, subject)
}

// evict clears one slot and recycles its handle. Callers hold the lock.
func (r *Registry) evict(h Handle, subject any) {
	e := &r.entries[h-1]
	e.valid = false
	e.subject = nil
	delete(r.index, subject)
	r.freeList = append(r.freeList, h)
}

// Len returns the number of live entries, values and blocks together.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, e := range r.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Each iterates over all live entries. Return false to stop early.
func (r *Registry) Each(fn func(h Handle, kind string, subject any) bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i, e := range r.entries {
		if e.valid {
			if !fn(Handle(i+1), e.kind, e.subject) {
				break
			}
		}
	}
}

// Stats returns a snapshot of the event tallies.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.stats
}

// Close stops recording and reports everything wrong with the run: one
// leak error per live entry plus every anomaly recorded along the way,
// combined into a single error. A clean run returns nil, and so does a
// second Close. The registry never destroys the leaked values; they stay
// whatever they were.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	var err error
	for i := range r.entries {
		if !r.entries[i].valid {
			continue
		}
		Logger().Warn("subject still live at close",
			zap.String("type", r.entries[i].kind),
			zap.Uint32("handle", uint32(i+1)))
		err = multierr.Append(err, errors.Leak(r.entries[i].kind, r.entries[i].subject))
	}
	for _, a := range r.anomalies {
		err = multierr.Append(err, a)
	}

	r.entries = nil
	r.freeList = nil
	r.index = nil
	r.anomalies = nil
	return err
}

// normalize collapses a pointer to interface into the concrete pointer it
// carries. A value adopted as *T and later destroyed through a converted
// handle then keys to the same entry.
func normalize(subject any) any {
	v := reflect.ValueOf(subject)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return subject
	}
	if v.Elem().Kind() != reflect.Interface || v.Elem().IsNil() {
		return subject
	}
	return v.Elem().Elem().Interface()
}
