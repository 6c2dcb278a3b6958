// Package errors provides structured error types for the ownership library.
//
// Handle operations themselves never return errors: the deleter protocol is
// structural, and empty-handle dereference deliberately propagates nil-pointer
// semantics. Errors exist at the two edges that can genuinely fail, checked
// cross-type conversion and the allocation-tracking audit, and are
// categorized by Phase (where) and Kind (what).
//
// Use the Builder for structured construction:
//
//	err := errors.New(errors.PhaseTrack, errors.KindLeak).
//		Type("*demo.Conn").
//		Detail("still live at close").
//		Build()
//
// Or the convenience constructors for the common cases:
//
//	err := errors.TypeMismatch("*os.File", "io.Reader")
//	err := errors.Leak("*demo.Conn", subject)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
