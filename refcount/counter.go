package refcount

// Counter tracks strong and weak references to one shared value. The zero
// value is a valid counter with both counts at zero.
type Counter struct {
	strong int
	weak   int
}

// New returns a counter with both counts at zero.
func New() *Counter {
	return &Counter{}
}

// IncRef increments the strong count.
func (c *Counter) IncRef() {
	c.strong++
}

// DecRef decrements the strong count and returns the new count. The value
// dies when DecRef returns 0. Decrementing past zero is a programmer error
// and panics.
func (c *Counter) DecRef() int {
	c.strong--
	if c.strong < 0 {
		panic("refcount: decremented strong count below zero")
	}
	return c.strong
}

// IncWeak increments the weak count.
func (c *Counter) IncWeak() {
	c.weak++
}

// DecWeak decrements the weak count and returns the new count. The block is
// done when both DecWeak returns 0 and Refs is already 0. Decrementing past
// zero is a programmer error and panics.
func (c *Counter) DecWeak() int {
	c.weak--
	if c.weak < 0 {
		panic("refcount: decremented weak count below zero")
	}
	return c.weak
}

// Refs returns the current strong count.
func (c *Counter) Refs() int {
	return c.strong
}

// WeakRefs returns the current weak count.
func (c *Counter) WeakRefs() int {
	return c.weak
}
