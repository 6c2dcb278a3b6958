// Package ownership provides single-owner and reference-counted handles for
// values that need deterministic destruction.
//
// Go's garbage collector reclaims memory, but it makes no promise about when
// cleanup runs, or whether it runs at all, for values that hold more than
// memory: native allocations, pooled buffers, descriptors, guest-side state.
// This library owns the other half of the problem: running a value's
// destructor exactly once, at the moment its last owner lets go, across
// copy, move, self-assignment and reset.
//
// # Architecture Overview
//
// The library is organized into small packages with distinct responsibilities:
//
//	ownership/           Root package with the Dropper destructor contract
//	│                    and lifecycle event plumbing
//	├── unique/          Exclusive-ownership handle; move-only
//	├── shared/          Reference-counted handle and its weak observer
//	├── refcount/        The two-count control block shared by owners and
//	│                    observers of one value
//	├── pool/            Table parking shared handles under integer IDs
//	├── track/           Allocation-tracking registry for leak detection
//	└── errors/          Structured error types
//
// # Quick Start
//
// Exclusive ownership:
//
//	p := new(Buffer)
//	h := unique.New(p)
//	defer h.Drop()
//
//	use(h.Get())
//
// Shared ownership with a weak observer:
//
//	s := shared.New(new(Conn))
//	w := s.Downgrade()
//
//	s2 := s.Clone()     // use count 2
//	s.Drop()            // use count 1, value still alive
//	s2.Drop()           // destructor runs here
//
//	if w.Expired() {
//	    // the value is gone; w.Upgrade() returns an empty handle
//	}
//
// # Destruction Protocol
//
// A value's destructor is its own Drop method. When the last owner of a value
// releases it, the library calls Drop if the value implements Dropper;
// otherwise destruction is trivial. There are no custom deleter hooks: a type
// that needs cleanup declares it, exactly once, on itself.
//
// When a handle is instantiated with an interface type, Drop dispatches
// through the interface to the concrete value. A concrete type stored behind
// an interface-typed handle must therefore carry its own Drop; the library
// performs no further check.
//
// # Thread Safety
//
// Handles and counters are NOT thread-safe. Reference counts are plain
// integers by design; sharing one value's handles across goroutines without
// external synchronization is undefined behavior (lost updates, double
// destruction). Confine a value's handles to one goroutine, or serialize
// every operation on them.
//
// # Lifecycle Events
//
// Construction, destruction and control-block allocation emit events through
// an optional package-global Observer. The track package provides a Registry
// observer that mirrors live allocations for leak detection:
//
//	reg := track.New()
//	defer track.Install(reg)()
//
//	// ... exercise handles ...
//
//	if err := reg.Close(); err != nil {
//	    // one leak error per live allocation
//	}
//
// The observer is nil by default and costs nothing when unset.
package ownership
