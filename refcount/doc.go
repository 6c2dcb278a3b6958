// Package refcount provides the control block shared by all owners and
// observers of one value.
//
// A Counter holds two plain integer counts: strong (owning references) and
// weak (observing references). It knows nothing about the value it guards
// and never frees itself; handle implementations read the counts returned
// by DecRef and DecWeak to decide when the value dies and when the block
// itself is done. Keeping the block type-unaware is what lets differently
// typed handles share one allocation.
//
// Counts are not atomic. See the root package documentation for the
// threading model.
package refcount
