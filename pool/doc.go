// Package pool parks shared handles under opaque integer IDs.
//
// Callback registries, wire protocols and foreign interfaces often cannot
// carry a Go pointer, let alone a counted handle. A Table holds its own
// share of each value and hands out a small ID instead; whoever meets the
// ID later clones the share back out through Get. The value stays alive
// at least as long as its table entry and dies under the usual counting
// rules once the entry is removed.
//
//	tbl := pool.New[Conn]()
//	id := tbl.Put(h)
//
//	if s, ok := tbl.Get(id); ok {
//		defer s.Drop()
//		s.Get().Ping()
//	}
//
// ID 0 is never issued and always invalid. Removed slots are recycled, so
// an ID is only meaningful while its entry is live.
package pool
