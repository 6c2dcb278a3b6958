package shared

import (
	"github.com/wippyai/ownership"
	"github.com/wippyai/ownership/refcount"
)

// Weak observes a shared value without keeping it alive. Once the last
// strong handle lets go the value dies and the observer reports Expired;
// the control block itself stays allocated until the last observer
// releases it too. The zero value is an empty observer.
type Weak[T any] struct {
	ptr *T
	ctl *refcount.Counter
}

// detach runs the weak release protocol: the weak count always drops, and
// the block is freed when neither strong nor weak references remain.
func (w *Weak[T]) detach() {
	if w.ctl != nil && w.ctl.DecWeak() == 0 && w.ctl.Refs() == 0 {
		notify(ownership.EventBlockFreed, w.ctl)
	}
	w.ptr, w.ctl = nil, nil
}

// Empty reports whether the observer watches nothing. An expired observer
// is not empty; it still holds the control block.
func (w *Weak[T]) Empty() bool {
	return w.ctl == nil
}

// UseCount returns the number of strong handles still sharing the value,
// or 0 for an empty observer.
func (w *Weak[T]) UseCount() int {
	if w.ctl == nil {
		return 0
	}
	return w.ctl.Refs()
}

// Expired reports whether the observed value is gone. An empty observer
// is expired.
func (w *Weak[T]) Expired() bool {
	return w.UseCount() == 0
}

// Upgrade promotes the observer to a strong handle. While the value is
// alive the handle shares it and the strong count rises by one; after
// expiry, and on an empty observer, Upgrade returns an empty handle.
func (w *Weak[T]) Upgrade() *Handle[T] {
	if w.ctl == nil || w.ctl.Refs() == 0 {
		return &Handle[T]{}
	}
	w.ctl.IncRef()
	return &Handle[T]{ptr: w.ptr, ctl: w.ctl}
}

// Watch redirects the observer at the value owned by h, releasing the
// previous observation first. Watching an empty handle empties the
// observer.
func (w *Weak[T]) Watch(h *Handle[T]) {
	if h.ctl != nil {
		h.ctl.IncWeak()
	}
	ptr, ctl := h.ptr, h.ctl
	w.detach()
	w.ptr, w.ctl = ptr, ctl
}

// Clone returns a new observer over the same value; the weak count rises
// by one. Cloning an empty observer yields an empty observer.
func (w *Weak[T]) Clone() *Weak[T] {
	if w.ctl != nil {
		w.ctl.IncWeak()
	}
	return &Weak[T]{ptr: w.ptr, ctl: w.ctl}
}

// Move transfers the observation into a new observer and empties the
// receiver. Counts are unchanged.
func (w *Weak[T]) Move() *Weak[T] {
	n := &Weak[T]{ptr: w.ptr, ctl: w.ctl}
	w.ptr, w.ctl = nil, nil
	return n
}

// Assign replaces the observation with a share of other's, releasing the
// previous one first. Self-assignment is a no-op; assigning from an empty
// observer empties the receiver.
func (w *Weak[T]) Assign(other *Weak[T]) {
	if w == other {
		return
	}
	if other.ctl != nil {
		other.ctl.IncWeak()
	}
	ptr, ctl := other.ptr, other.ctl
	w.detach()
	w.ptr, w.ctl = ptr, ctl
}

// Take releases the current observation and moves other's into the
// receiver, leaving other empty. Taking from the receiver itself is a
// no-op.
func (w *Weak[T]) Take(other *Weak[T]) {
	if w == other {
		return
	}
	ptr, ctl := other.ptr, other.ctl
	other.ptr, other.ctl = nil, nil
	w.detach()
	w.ptr, w.ctl = ptr, ctl
}

// Reset releases the observation and empties the observer.
func (w *Weak[T]) Reset() {
	w.detach()
}

// Drop releases the observation, freeing the control block when it held
// the last reference of either kind. Dropping an empty observer is a
// no-op.
func (w *Weak[T]) Drop() {
	w.detach()
}

// Swap exchanges the observations of two observers.
func (w *Weak[T]) Swap(other *Weak[T]) {
	w.ptr, other.ptr = other.ptr, w.ptr
	w.ctl, other.ctl = other.ctl, w.ctl
}
