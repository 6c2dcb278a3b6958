// Package unique provides an exclusive-ownership handle.
//
// A Handle owns at most one value, and at most one live handle may own a
// given value. There is no copy operation: ownership moves between handles
// with Move and Take, and leaves the library entirely with Release. The
// owned value's destructor (its Drop method, if it has one) runs exactly
// once, when the owning handle is dropped or reset over it.
//
//	p := new(Buffer)
//	h := unique.New(p)
//	defer h.Drop()
//
// The zero value Handle is a valid empty handle. Handles are manipulated
// through their pointer. Assigning a live handle's struct to a second
// variable duplicates ownership and will destroy the value twice; use Move
// or Take to transfer instead.
package unique
