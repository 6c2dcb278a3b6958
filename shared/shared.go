package shared

import (
	"fmt"
	"reflect"

	"github.com/wippyai/ownership"
	"github.com/wippyai/ownership/errors"
	"github.com/wippyai/ownership/refcount"
)

// Handle is a counted owner of the value at its pointer. Clones share one
// control block; the value dies when the last strong handle releases it,
// and the block is released once no weak observer holds it either. The
// zero value is an empty handle.
type Handle[T any] struct {
	ptr *T
	ctl *refcount.Counter
}

// New adopts the value at p under a fresh control block with one strong
// reference. A nil p yields an empty handle with no block at all.
func New[T any](p *T) *Handle[T] {
	h := &Handle[T]{}
	h.adopt(p)
	return h
}

// adopt binds p to a fresh control block. Callers release any previous
// value first.
func (h *Handle[T]) adopt(p *T) {
	if p == nil {
		return
	}
	ctl := refcount.New()
	ctl.IncRef()
	h.ptr, h.ctl = p, ctl
	notify(ownership.EventAdopted, p)
	notify(ownership.EventBlockAllocated, ctl)
}

// detach runs the strong release protocol: drop one strong reference,
// destroy the value if it was the last, and free the block if no weak
// observers remain. The handle empties either way.
func (h *Handle[T]) detach() {
	if h.ctl != nil && h.ctl.DecRef() == 0 {
		ownership.Destroy(h.ptr)
		if h.ctl.WeakRefs() == 0 {
			notify(ownership.EventBlockFreed, h.ctl)
		}
	}
	h.ptr, h.ctl = nil, nil
}

// Get returns the shared pointer without affecting the counts. Returns nil
// when the handle is empty.
func (h *Handle[T]) Get() *T {
	return h.ptr
}

// Elem returns the shared value. Calling Elem on an empty handle panics
// the same way dereferencing a nil pointer does.
func (h *Handle[T]) Elem() T {
	return *h.ptr
}

// Empty reports whether the handle owns nothing.
func (h *Handle[T]) Empty() bool {
	return h.ctl == nil
}

// UseCount returns the number of strong handles sharing the value, or 0
// for an empty handle.
func (h *Handle[T]) UseCount() int {
	if h.ctl == nil {
		return 0
	}
	return h.ctl.Refs()
}

// Clone returns a new handle sharing the value; the strong count rises by
// one. Cloning an empty handle yields an empty handle.
func (h *Handle[T]) Clone() *Handle[T] {
	if h.ctl != nil {
		h.ctl.IncRef()
	}
	return &Handle[T]{ptr: h.ptr, ctl: h.ctl}
}

// Move transfers the share into a new handle and empties the receiver.
// Counts are unchanged.
func (h *Handle[T]) Move() *Handle[T] {
	n := &Handle[T]{ptr: h.ptr, ctl: h.ctl}
	h.ptr, h.ctl = nil, nil
	return n
}

// Assign replaces the receiver's share with a share of other's, releasing
// the previous one first. Assigning a handle to itself is a no-op;
// assigning from an empty handle empties the receiver.
func (h *Handle[T]) Assign(other *Handle[T]) {
	if h == other {
		return
	}
	if other.ctl != nil {
		other.ctl.IncRef()
	}
	ptr, ctl := other.ptr, other.ctl
	h.detach()
	h.ptr, h.ctl = ptr, ctl
}

// Take releases the receiver's share and moves other's into it, leaving
// other empty. Counts are unchanged beyond the release. Taking from the
// receiver itself is a no-op.
func (h *Handle[T]) Take(other *Handle[T]) {
	if h == other {
		return
	}
	ptr, ctl := other.ptr, other.ctl
	other.ptr, other.ctl = nil, nil
	h.detach()
	h.ptr, h.ctl = ptr, ctl
}

// Reset releases the current share and adopts p under a fresh control
// block. A nil p leaves the handle empty.
func (h *Handle[T]) Reset(p *T) {
	h.detach()
	h.adopt(p)
}

// Drop releases the share and empties the handle. Dropping an empty
// handle is a no-op, so a second Drop is always safe.
func (h *Handle[T]) Drop() {
	h.detach()
}

// Swap exchanges the shares of two handles. Counts are unchanged.
func (h *Handle[T]) Swap(other *Handle[T]) {
	h.ptr, other.ptr = other.ptr, h.ptr
	h.ctl, other.ctl = other.ctl, h.ctl
}

// Downgrade returns a weak observer over the same value. The strong count
// is untouched and the weak count rises by one. Downgrading an empty
// handle yields an empty observer.
func (h *Handle[T]) Downgrade() *Weak[T] {
	if h.ctl != nil {
		h.ctl.IncWeak()
	}
	return &Weak[T]{ptr: h.ptr, ctl: h.ctl}
}

// As converts a counted handle over a concrete type into one over B,
// which is normally an interface type the concrete value satisfies. The
// new handle shares the same control block and the counts are unchanged;
// on success src is emptied. Destruction keeps dispatching to the
// concrete value's Drop method through B.
//
// If the shared pointer does not satisfy B the conversion fails with a
// type_mismatch error and src keeps its share. Converting an empty handle
// yields an empty handle.
func As[B, T any](src *Handle[T]) (*Handle[B], error) {
	if src.ctl == nil {
		return &Handle[B]{}, nil
	}
	b, ok := any(src.ptr).(B)
	if !ok {
		return nil, errors.TypeMismatch(
			fmt.Sprintf("%T", src.ptr),
			reflect.TypeOf((*B)(nil)).Elem().String(),
		)
	}
	cell := new(B)
	*cell = b
	dst := &Handle[B]{ptr: cell, ctl: src.ctl}
	src.ptr, src.ctl = nil, nil
	return dst, nil
}

func notify(t ownership.EventType, subject any) {
	ownership.Notify(ownership.Event{Subject: subject, Type: t})
}
