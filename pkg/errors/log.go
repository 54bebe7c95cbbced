package errors

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// LogHandler writes one line per report to Out, or stderr when Out is nil.
//
// Plain lines read "visualkit: error op: err" and "visualkit: panic op: v".
// Verbose lines add the kind and widget, followed by the stack trace when
// one was captured.
type LogHandler struct {
	Verbose bool
	Out     io.Writer
}

func (h *LogHandler) writer() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

// HandleError logs err.
func (h *LogHandler) HandleError(err *VisualError) {
	if err == nil {
		return
	}
	var sb strings.Builder
	sb.WriteString("visualkit: error ")
	sb.WriteString(err.Op)
	if h.Verbose {
		fmt.Fprintf(&sb, " kind=%s", err.Kind)
		if err.Widget != "" {
			fmt.Fprintf(&sb, " widget=%s", err.Widget)
		}
	}
	fmt.Fprintf(&sb, ": %v\n", err.Err)
	h.write(sb.String(), err.StackTrace)
}

// HandlePanic logs err.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	line := fmt.Sprintf("visualkit: panic: %v\n", err.Value)
	if err.Op != "" {
		line = fmt.Sprintf("visualkit: panic %s: %v\n", err.Op, err.Value)
	}
	h.write(line, err.StackTrace)
}

func (h *LogHandler) write(line, stack string) {
	w := h.writer()
	io.WriteString(w, line)
	if h.Verbose && stack != "" {
		io.WriteString(w, stack)
		if !strings.HasSuffix(stack, "\n") {
			io.WriteString(w, "\n")
		}
	}
}
