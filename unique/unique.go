package unique

import (
	"fmt"
	"reflect"

	"github.com/wippyai/ownership"
	"github.com/wippyai/ownership/errors"
)

// Handle is an exclusive owner of the value at its pointer. When a handle
// holding a value is dropped, reset, or overwritten by Take, the value is
// destroyed via ownership.Destroy. The zero value is an empty handle.
//
// Handles are NOT thread-safe. Confine a handle to one goroutine, or move
// ownership across a channel and use it on the receiving side only.
type Handle[T any] struct {
	ptr *T
}

// New returns a handle owning the value at p. A nil p yields an empty
// handle.
func New[T any](p *T) *Handle[T] {
	if p != nil {
		notify(ownership.EventAdopted, p)
	}
	return &Handle[T]{ptr: p}
}

// Get returns the owned pointer without affecting ownership. Returns nil
// when the handle is empty.
func (h *Handle[T]) Get() *T {
	return h.ptr
}

// Elem returns the owned value. Calling Elem on an empty handle panics the
// same way dereferencing a nil pointer does.
func (h *Handle[T]) Elem() T {
	return *h.ptr
}

// Empty reports whether the handle owns nothing.
func (h *Handle[T]) Empty() bool {
	return h.ptr == nil
}

// Release relinquishes ownership without destroying the value. The handle
// empties and the caller becomes responsible for the returned pointer.
// Returns nil when the handle was already empty.
func (h *Handle[T]) Release() *T {
	p := h.ptr
	h.ptr = nil
	if p != nil {
		notify(ownership.EventReleased, p)
	}
	return p
}

// Reset destroys the currently owned value, if any, then adopts p. A nil p
// leaves the handle empty.
func (h *Handle[T]) Reset(p *T) {
	ownership.Destroy(h.ptr)
	h.ptr = p
	if p != nil {
		notify(ownership.EventAdopted, p)
	}
}

// Drop destroys the owned value and empties the handle. Dropping an empty
// handle is a no-op, so a second Drop is always safe.
func (h *Handle[T]) Drop() {
	ownership.Destroy(h.ptr)
	h.ptr = nil
}

// Swap exchanges the owned values of two handles. Neither value is
// destroyed.
func (h *Handle[T]) Swap(other *Handle[T]) {
	h.ptr, other.ptr = other.ptr, h.ptr
}

// Move transfers ownership into a new handle and empties the receiver.
func (h *Handle[T]) Move() *Handle[T] {
	p := h.ptr
	h.ptr = nil
	return &Handle[T]{ptr: p}
}

// Take destroys the receiver's current value, if any, and moves other's
// value into the receiver, emptying other. Taking from the receiver itself
// is a no-op.
func (h *Handle[T]) Take(other *Handle[T]) {
	if h == other {
		return
	}
	ownership.Destroy(h.ptr)
	h.ptr = other.ptr
	other.ptr = nil
}

// As converts an exclusive handle over a concrete type into one over B,
// which is normally an interface type the concrete value satisfies.
// Destruction of the converted handle dispatches through B's dynamic value,
// so a Drop method on the concrete type still runs.
//
// On success src is emptied and the new handle owns the value. If the
// owned pointer does not satisfy B, the conversion fails with a
// type_mismatch error and src keeps ownership. Converting an empty handle
// yields an empty handle.
func As[B, T any](src *Handle[T]) (*Handle[B], error) {
	if src.ptr == nil {
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
	src.ptr = nil
	return &Handle[B]{ptr: cell}, nil
}

func notify(t ownership.EventType, subject any) {
	ownership.Notify(ownership.Event{Subject: subject, Type: t})
}
