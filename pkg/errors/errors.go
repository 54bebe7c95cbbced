// Package errors provides structured error handling for the visualkit widgets.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Sentinel causes wrapped by VisualError.
var (
	// ErrInvalidArgument marks a rejected configuration value.
	ErrInvalidArgument = stderrors.New("invalid argument")
	// ErrOutOfRange marks a numeric setting outside its allowed bounds.
	ErrOutOfRange = stderrors.New("value out of range")
	// ErrUnknownTheme marks a theme identifier missing from the registry.
	ErrUnknownTheme = stderrors.New("unknown theme")
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidConfiguration indicates a rejected setter value or theme id.
	KindInvalidConfiguration
	// KindProgramming indicates a defect in caller logic.
	KindProgramming
	// KindPointer indicates a transient pointer-tracking failure.
	KindPointer
	// KindRender indicates a rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidConfiguration:
		return "invalid_configuration"
	case KindProgramming:
		return "programming"
	case KindPointer:
		return "pointer"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// VisualError represents a structured error raised by a widget, the theme
// manager or a canvas.
type VisualError struct {
	// Op is the operation that failed (e.g., "theme.Manager.SetTheme").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Widget is the widget type involved, if any.
	Widget string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *VisualError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *VisualError) Unwrap() error {
	return e.Err
}

// Invalid returns a KindInvalidConfiguration error for op.
func Invalid(op string, err error) *VisualError {
	return &VisualError{Op: op, Kind: KindInvalidConfiguration, Err: err}
}

// OutOfRange returns a KindInvalidConfiguration error describing a value
// that fell outside [lo, hi].
func OutOfRange[T int | float64](op string, value, lo, hi T) *VisualError {
	return Invalid(op, fmt.Errorf("%w: %v not in [%v, %v]", ErrOutOfRange, value, lo, hi))
}

// KindOf returns the kind of the first VisualError in err's chain.
func KindOf(err error) ErrorKind {
	var ve *VisualError
	if stderrors.As(err, &ve) {
		return ve.Kind
	}
	return KindUnknown
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// ProgrammingError is the panic value for states that correct callers can
// never produce, such as an enum value with no matching case.
type ProgrammingError struct {
	// Op is the operation that hit the impossible state.
	Op string
	// Value is the offending value.
	Value any
}

func (e *ProgrammingError) Error() string {
	return fmt.Sprintf("unreachable in %s: unexpected %T(%v)", e.Op, e.Value, e.Value)
}

// Unreachable panics with a ProgrammingError.
func Unreachable(op string, value any) {
	panic(&ProgrammingError{Op: op, Value: value})
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "widgets.Button.Paint").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *VisualError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
