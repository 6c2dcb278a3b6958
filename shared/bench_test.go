package shared

import "testing"

func BenchmarkNewDrop(b *testing.B) {
	v := 0

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := New(&v)
		h.Drop()
	}
}

func BenchmarkCloneDrop(b *testing.B) {
	v := 0
	h := New(&v)
	defer h.Drop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := h.Clone()
		c.Drop()
	}
}

func BenchmarkDowngradeDrop(b *testing.B) {
	v := 0
	h := New(&v)
	defer h.Drop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := h.Downgrade()
		w.Drop()
	}
}

func BenchmarkUpgradeDrop(b *testing.B) {
	v := 0
	h := New(&v)
	defer h.Drop()
	w := h.Downgrade()
	defer w.Drop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := w.Upgrade()
		s.Drop()
	}
}

func BenchmarkSwap(b *testing.B) {
	x, y := 1, 2
	h1 := New(&x)
	h2 := New(&y)
	defer h1.Drop()
	defer h2.Drop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h1.Swap(h2)
	}
}
