package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs h as the process-wide handler and returns the one it
// replaced, so tests can restore it. Nil installs a LogHandler on stderr.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	handler = h
	return prev
}

// Handler returns the installed handler.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report stamps err with the current time, if unset, and hands it to the
// installed handler.
func Report(err *VisualError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic hands a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in op instead of letting it unwind into the host's
// event loop. Use it deferred at paint entry points:
//
//	defer errors.Recover("widgets.Button.Paint")
//
// A *ProgrammingError is panicked again: it marks a caller defect.
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	if pe, ok := r.(*ProgrammingError); ok {
		panic(pe)
	}
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
}

// CaptureStack formats the caller's stack, one "function\n\tfile:line" entry
// per frame, starting above CaptureStack and its caller.
func CaptureStack() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			return sb.String()
		}
	}
}

// Collector is an ErrorHandler that keeps everything it receives. It is
// safe for concurrent use.
type Collector struct {
	mu     sync.Mutex
	errs   []*VisualError
	panics []*PanicError
}

// HandleError records err.
func (c *Collector) HandleError(err *VisualError) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = append(c.errs, err)
}

// HandlePanic records err.
func (c *Collector) HandlePanic(err *PanicError) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.panics = append(c.panics, err)
}

// Errors returns the recorded errors in arrival order.
func (c *Collector) Errors() []*VisualError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*VisualError(nil), c.errs...)
}

// Panics returns the recorded panics in arrival order.
func (c *Collector) Panics() []*PanicError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*PanicError(nil), c.panics...)
}
