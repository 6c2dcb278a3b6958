// Package shared provides a counted ownership handle and a weak observer
// over it.
//
// A Handle shares its value with every clone through one control block, a
// refcount.Counter carrying a strong and a weak count. The value is
// destroyed, via its Drop method when it has one, the moment the last
// strong handle releases it. The control block outlives the value while
// Weak observers still reference it and is released when the last of them
// lets go, in either order.
//
//	h := shared.New(conn)
//	defer h.Drop()
//
//	w := h.Downgrade()
//	if s := w.Upgrade(); !s.Empty() {
//		defer s.Drop()
//		s.Get().Ping()
//	}
//
// A Weak never extends the value's lifetime. Upgrade is the only way to
// reach the value through one, and it fails closed: after expiry it
// returns an empty handle.
//
// The zero values of Handle and Weak are valid empty instances. Neither
// type is thread-safe; clone a handle and hand the clone to another
// goroutine rather than sharing one handle between two.
package shared
