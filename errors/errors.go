package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the handle lifecycle the error occurred
type Phase string

const (
	PhaseConvert Phase = "convert" // cross-type handle conversion
	PhaseTrack   Phase = "track"   // allocation tracking and leak audit
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch Kind = "type_mismatch"
	KindNilPointer   Kind = "nil_pointer"
	KindLeak         Kind = "leak"
	KindDoubleFree   Kind = "double_free"
	KindDoubleAdopt  Kind = "double_adopt"
)

// Error is the structured error type used throughout the library
type Error struct {
	Subject any   // offending value or control block, when known
	Cause   error
	Phase   Phase
	Kind    Kind
	Type    string // Go type name of the subject
	Detail  string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Type sets the Go type name of the subject
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Subject sets the offending value or control block
func (b *Builder) Subject(v any) *Builder {
	b.err.Subject = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a checked-conversion failure error
func TypeMismatch(got, want string) *Error {
	return &Error{
		Phase:  PhaseConvert,
		Kind:   KindTypeMismatch,
		Type:   got,
		Detail: fmt.Sprintf("cannot store %s as %s", got, want),
	}
}

// NilPointer creates a nil pointer error
func NilPointer(typeName string) *Error {
	return &Error{
		Phase:  PhaseConvert,
		Kind:   KindNilPointer,
		Type:   typeName,
		Detail: "nil pointer",
	}
}

// Leak creates an error for an allocation still live at audit close
func Leak(typeName string, subject any) *Error {
	return &Error{
		Phase:   PhaseTrack,
		Kind:    KindLeak,
		Type:    typeName,
		Subject: subject,
		Detail:  "still live at close",
	}
}

// DoubleFree creates an error for a subject destroyed or freed more than once
func DoubleFree(typeName string, subject any) *Error {
	return &Error{
		Phase:   PhaseTrack,
		Kind:    KindDoubleFree,
		Type:    typeName,
		Subject: subject,
		Detail:  "destroyed while not tracked as live",
	}
}

// DoubleAdopt creates an error for a subject adopted while already live
func DoubleAdopt(typeName string, subject any) *Error {
	return &Error{
		Phase:   PhaseTrack,
		Kind:    KindDoubleAdopt,
		Type:    typeName,
		Subject: subject,
		Detail:  "adopted while already live",
	}
}
